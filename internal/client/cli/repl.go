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
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	AddReminder(ctx context.Context) error
	List(ctx context.Context) error
	TodayList(ctx context.Context) error
	Done(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
	Edit(ctx context.Context, id string) error
	Stats(ctx context.Context) error
	Settings(ctx context.Context) error
	DarkMode(ctx context.Context) error
	Chat(ctx context.Context) error
	Say(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the HealthMate CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Not logged in:
//	  - help           — show available commands
//	  - register       — create an account
//	  - login          — authenticate
//	  - exit | quit    — leave the program
//
//	Logged in:
//	  - help           — show available commands
//	  - add            — add a reminder (interactive prompts)
//	  - list           — list all reminders
//	  - today          — list today's reminders
//	  - done <id>      — toggle completion
//	  - edit <id>      — edit a reminder (interactive prompts)
//	  - delete <id>    — delete a reminder
//	  - stats          — show streak and progress
//	  - settings       — toggle settings
//	  - darkmode       — flip dark mode
//	  - chat           — talk to the assistant
//	  - say            — speak the daily summary
//	  - logout         — log out
//	  - exit | quit    — leave the program
//
// Any errors returned by command handlers are ignored here; handlers should
// log their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("healthmate %s> ", statusFn()))
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

		if !a.isLoggedIn() {
			switch cmd {
			case "help":
				printlnFn("Available commands: register, login, exit")
			case "register":
				_ = a.Register(ctx)
			case "login":
				_ = a.Login(ctx)
			case "exit", "quit":
				printlnFn("Bye!")
				return
			default:
				printlnFn("Unknown command:", cmd)
			}
			continue
		}

		switch cmd {
		case "help":
			printlnFn("Available commands: add, (l)ist, today, done <id>, edit <id>, delete <id>, stats, settings, darkmode, chat, say, logout, exit")

		case "add":
			_ = a.AddReminder(ctx)

		case "l", "list":
			_ = a.List(ctx)

		case "today":
			_ = a.TodayList(ctx)

		case "done":
			if len(args) == 0 {
				printlnFn("Usage: done <id>")
				continue
			}
			_ = a.Done(ctx, args[0])

		case "edit":
			if len(args) == 0 {
				printlnFn("Usage: edit <id>")
				continue
			}
			_ = a.Edit(ctx, args[0])

		case "delete":
			if len(args) == 0 {
				printlnFn("Usage: delete <id>")
				continue
			}
			_ = a.Delete(ctx, args[0])

		case "stats":
			_ = a.Stats(ctx)

		case "settings":
			_ = a.Settings(ctx)

		case "darkmode":
			_ = a.DarkMode(ctx)

		case "chat":
			_ = a.Chat(ctx)

		case "say":
			_ = a.Say(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
