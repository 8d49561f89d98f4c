package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	Select(ctx context.Context, path string) error
	Upload(ctx context.Context) error
	Fields(ctx context.Context) error
	Set(ctx context.Context, name, value string) error
	Fill(ctx context.Context) error
	Generate(ctx context.Context) error
	Download(ctx context.Context) error
	Status(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the template fill CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Commands:
//
//	help                — show available commands
//	select <path>       — pick a PDF file to work with
//	upload              — upload the selected file to the template service
//	fields              — list placeholders and their current values
//	set <name> <value>  — set one placeholder value
//	fill                — walk through all placeholders interactively
//	generate            — generate the document (requires all fields filled)
//	download            — save the generated document to disk
//	status              — show the full workflow state
//	exit | quit         — leave the program
//
// Any errors returned by command handlers are ignored here; handlers report
// their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("pdf %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			printlnFn("Available commands: select <path>, upload, fields, set <name> <value>, fill, generate, download, status, exit")

		case "select":
			if len(args) == 0 {
				printlnFn("Usage: select <path-to-pdf>")
				continue
			}
			_ = a.Select(ctx, args[0])

		case "upload":
			_ = a.Upload(ctx)

		case "fields":
			_ = a.Fields(ctx)

		case "set":
			if len(args) < 2 {
				printlnFn("Usage: set <name> <value>")
				continue
			}
			_ = a.Set(ctx, args[0], strings.Join(args[1:], " "))

		case "fill":
			_ = a.Fill(ctx)

		case "generate":
			_ = a.Generate(ctx)

		case "download":
			_ = a.Download(ctx)

		case "status":
			_ = a.Status(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
