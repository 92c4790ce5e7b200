// Package config builds the vault runtime configuration.
//
// Sources are applied in order, later ones overriding earlier ones:
// built-in defaults, environment variables (VAULT_*, optionally loaded from a
// .env file), a JSON file named by -c/-config or $VAULT_CONFIG, and finally
// command-line flags.
package config
