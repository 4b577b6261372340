package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

const (
	helpLoggedOut = "Available commands: home, back, signup, login, whoami, exit"
	helpLoggedIn  = "Available commands: home, categories, refresh, category <name|number>, back, whoami, logout, exit"
)

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Home(ctx context.Context) error
	Signup(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Categories(ctx context.Context) error
	Refresh(ctx context.Context) error
	OpenCategory(ctx context.Context, arg string) error
	Back(ctx context.Context) error
	WhoAmI(ctx context.Context) error
}

// runREPL starts a simple read-eval-print loop for the storefront CLI.
//
// It reads a line from reader, parses the first token as the command, and
// dispatches to methods on 'a'. Unknown commands are reported back to the
// user. The loop exits on EOF or when the user types "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Always:
//	  - help                         show available commands
//	  - home                         go to the home screen
//	  - categories                   list categories (cached)
//	  - refresh                      refetch categories
//	  - category <name|number>       open a category
//	  - back                         previous screen
//	  - whoami                       show the logged in user
//	  - exit | quit                  leave the program
//
//	Not logged in:
//	  - signup                       create an account
//	  - login                        log in
//
//	Logged in:
//	  - logout                       log out
//
// Any errors returned by command handlers are ignored here; handlers
// report to the user and log on their own.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("storefront %s> ", statusFn()))
		line, err := readLine(reader)
		if err != nil {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn(helpLoggedIn)
			} else {
				printlnFn(helpLoggedOut)
			}

		case "home":
			_ = a.Home(ctx)

		case "signup":
			_ = a.Signup(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "categories":
			_ = a.Categories(ctx)

		case "refresh":
			_ = a.Refresh(ctx)

		case "category":
			if len(args) == 0 {
				printlnFn("Usage: category <name|number>")
				continue
			}
			_ = a.OpenCategory(ctx, strings.Join(args, " "))

		case "back":
			_ = a.Back(ctx)

		case "whoami":
			_ = a.WhoAmI(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
