package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for REPL output.
var printlnFn = fmt.Println

// execIface is the command surface the REPL dispatches to. *App satisfies
// it; tests use a recording stub.
type execIface interface {
	isLoggedIn(ctx context.Context) bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Whoami(ctx context.Context) error
	List(ctx context.Context) error
	Search(ctx context.Context, args []string) error
	Filter(ctx context.Context, args []string) error
	Clear(ctx context.Context) error
	Facets(ctx context.Context) error
	Cart(ctx context.Context) error
	Add(ctx context.Context, args []string) error
	Decrement(ctx context.Context, args []string) error
	Remove(ctx context.Context, args []string) error
	Promo(ctx context.Context, args []string) error
	Subscribe(ctx context.Context) error
	Contact(ctx context.Context) error
}

const (
	helpCommon    = "list, search, filter, clear, facets, cart, add, dec, remove, promo, subscribe, contact, exit"
	helpAnonymous = "Available commands: register, login, " + helpCommon
	helpLoggedIn  = "Available commands: whoami, logout, " + helpCommon
)

// runREPL reads commands from reader until EOF, "exit" or "quit", or until
// ctx is cancelled. Command prompts share the same reader, so their input
// is consumed in order.
//
// Handler errors are not printed here; handlers notify the user themselves.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		if ctx.Err() != nil {
			return
		}
		printlnFn(fmt.Sprintf("techmarket %s > ", statusFn()))

		line, err := readLine(reader)
		if err != nil {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := strings.ToLower(parts[0]), parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn(ctx) {
				printlnFn(helpLoggedIn)
			} else {
				printlnFn(helpAnonymous)
			}
		case "register":
			_ = a.Register(ctx)
		case "login":
			_ = a.Login(ctx)
		case "logout":
			_ = a.Logout(ctx)
		case "whoami":
			_ = a.Whoami(ctx)
		case "l", "list":
			_ = a.List(ctx)
		case "search":
			_ = a.Search(ctx, args)
		case "filter":
			_ = a.Filter(ctx, args)
		case "clear":
			_ = a.Clear(ctx)
		case "facets":
			_ = a.Facets(ctx)
		case "cart":
			_ = a.Cart(ctx)
		case "add":
			_ = a.Add(ctx, args)
		case "dec":
			_ = a.Decrement(ctx, args)
		case "remove", "rm":
			_ = a.Remove(ctx, args)
		case "promo":
			_ = a.Promo(ctx, args)
		case "subscribe":
			_ = a.Subscribe(ctx)
		case "contact":
			_ = a.Contact(ctx)
		case "exit", "quit":
			printlnFn("Bye!")
			return
		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
