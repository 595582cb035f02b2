package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output.
var printlnFn = fmt.Println

// execIface is the command surface the REPL dispatches to.
type execIface interface {
	Scan(ctx context.Context, args []string) error
	Exit(ctx context.Context, args []string) error
	Sync(ctx context.Context, args []string) error
	Drain(ctx context.Context, args []string) error
	Status(ctx context.Context, args []string) error
	Lists(ctx context.Context, args []string) error
	Token(ctx context.Context, args []string) error
}

const helpText = "Available commands: scan, exit, sync, drain, status, lists, token, help, quit"

// runREPL reads commands from scanner until EOF, "quit" or ctx is done.
// Command errors are printed and the loop goes on.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		if ctx.Err() != nil {
			return
		}
		printlnFn(fmt.Sprintf("scan %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		var err error
		switch cmd {
		case "help", "?":
			printlnFn(helpText)
		case "scan", "s":
			err = a.Scan(ctx, args)
		case "exit":
			err = a.Exit(ctx, args)
		case "sync":
			err = a.Sync(ctx, args)
		case "drain":
			err = a.Drain(ctx, args)
		case "status":
			err = a.Status(ctx, args)
		case "lists":
			err = a.Lists(ctx, args)
		case "token":
			err = a.Token(ctx, args)
		case "quit", "q":
			printlnFn("Bye!")
			return
		default:
			printlnFn("Unknown command:", cmd)
		}
		if err != nil {
			printlnFn("error:", err)
		}
	}
}
