// Package cli provides the interactive Memory Vault command-line client.
//
// It wires configuration, the storage engine, the application services and
// the local viewer behind a read-eval-print loop. The logged-in identity is
// remembered in the store, so a new run starts where the last one ended.
//
// Commands:
//   - register / login / logout
//   - upload <path>: admit an image or video, compressing large images
//   - list, view <id>, download <id> [dir], share <id>
//   - delete <id>, clear
//   - serve: start the viewer that share links point at
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
