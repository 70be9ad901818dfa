package cli

import (
	"context"
	"errors"
	"io"
	"strings"
)

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	status() string
	Report(ctx context.Context, err error) error

	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Whoami(ctx context.Context) error

	Add(ctx context.Context) error
	List(ctx context.Context) error
	Search(ctx context.Context) error
	Edit(ctx context.Context) error
	Delete(ctx context.Context) error
	Done(ctx context.Context) error
}

// runREPL starts a simple read-eval-print loop over the todo commands.
//
// It reads a line through t, takes the first word as the command and
// dispatches to a. The loop ends on end of input or when the user types
// "exit" or "quit".
//
//	Not logged in:
//	  - help             show available commands
//	  - register         create an account
//	  - login            authenticate
//	  - exit | quit      leave the program
//
//	Logged in:
//	  - help             show available commands
//	  - add              add a task
//	  - list | l         list tasks
//	  - search           find tasks
//	  - edit             edit a task
//	  - delete           delete a task
//	  - done             mark a task completed
//	  - whoami           show the current user
//	  - logout           log out
//	  - exit | quit      leave the program
//
// Recoverable errors are reported by the App and the loop continues. Any
// other error ends the loop and is returned.
func runREPL(ctx context.Context, a execIface, t Terminal) error {
	for {
		line, err := t.Prompt("todo " + a.status())
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		var cmdErr error
		switch cmd {
		case "help":
			if a.isLoggedIn() {
				t.DisplayMessage("Available commands: add, (l)ist, search, edit, delete, done, whoami, logout, exit", SeverityInfo)
			} else {
				t.DisplayMessage("Available commands: register, login, logout, whoami, exit", SeverityInfo)
			}

		case "register":
			cmdErr = a.Register(ctx)

		case "login":
			cmdErr = a.Login(ctx)

		case "logout":
			cmdErr = a.Logout(ctx)

		case "whoami":
			cmdErr = a.Whoami(ctx)

		case "add":
			cmdErr = a.Add(ctx)

		case "l", "list":
			cmdErr = a.List(ctx)

		case "search":
			cmdErr = a.Search(ctx)

		case "edit":
			cmdErr = a.Edit(ctx)

		case "delete":
			cmdErr = a.Delete(ctx)

		case "done":
			cmdErr = a.Done(ctx)

		case "exit", "quit":
			t.DisplayMessage("Bye!", SeverityInfo)
			return nil

		default:
			t.DisplayMessage("Unknown command: "+cmd, SeverityError)
		}

		if err := a.Report(ctx, cmdErr); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
	}
}
