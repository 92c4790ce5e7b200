package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the command surface the REPL needs. The real App
// satisfies it; tests provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Upload(ctx context.Context, path string) error
	List(ctx context.Context) error
	View(ctx context.Context, id string) error
	Download(ctx context.Context, id, dir string) error
	Share(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
	Clear(ctx context.Context) error
	Serve(ctx context.Context) error
}

const (
	helpLoggedOut = "Available commands: register, login, serve, exit"
	helpLoggedIn  = "Available commands: upload <path>, (l)ist, view <id>, download <id> [dir], share <id>, delete <id>, clear, serve, logout, exit"
)

// runREPL reads commands line by line from reader and dispatches them to a.
// The first token is the command, the rest are its arguments. Handler errors
// are reported to the user and the loop carries on. It returns on EOF or
// when the user types "exit" or "quit".
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("vault%s> ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn(helpLoggedIn)
			} else {
				printlnFn(helpLoggedOut)
			}

		case "register":
			report(a.Register(ctx))

		case "login":
			report(a.Login(ctx))

		case "logout":
			report(a.Logout(ctx))

		case "upload":
			if len(args) == 0 {
				printlnFn("Usage: upload <path>")
				continue
			}
			// paths may contain spaces
			report(a.Upload(ctx, strings.Join(args, " ")))

		case "l", "list":
			report(a.List(ctx))

		case "view", "share", "delete":
			if len(args) != 1 {
				printlnFn(fmt.Sprintf("Usage: %s <id>", cmd))
				continue
			}
			switch cmd {
			case "view":
				report(a.View(ctx, args[0]))
			case "share":
				report(a.Share(ctx, args[0]))
			case "delete":
				report(a.Delete(ctx, args[0]))
			}

		case "download":
			if len(args) == 0 || len(args) > 2 {
				printlnFn("Usage: download <id> [dir]")
				continue
			}
			dir := ""
			if len(args) == 2 {
				dir = args[1]
			}
			report(a.Download(ctx, args[0], dir))

		case "clear":
			report(a.Clear(ctx))

		case "serve":
			report(a.Serve(ctx))

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

func report(err error) {
	if err != nil {
		printlnFn("Error:", describeError(err))
	}
}
