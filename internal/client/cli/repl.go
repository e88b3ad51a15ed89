package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// execIface defines the minimal command surface the REPL needs to operate.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Logout(ctx context.Context) error
}

// runREPL reads commands line by line and dispatches them to a until EOF
// or "exit"/"quit". A failing command is reported and the loop goes on.
// Commands prompting for input read from the same reader.
//
//	Not logged in: help, register, login, exit
//	Logged in:     help, whoami, logout, exit
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader, w io.Writer) {
	for {
		fmt.Fprintf(w, "gophauth %s> ", statusFn())

		line, rerr := reader.ReadString('\n')
		if rerr != nil && line == "" {
			fmt.Fprintln(w)
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		var err error
		switch cmd := parts[0]; cmd {
		case "help":
			if a.isLoggedIn() {
				fmt.Fprintln(w, "Available commands: whoami, logout, login, exit")
			} else {
				fmt.Fprintln(w, "Available commands: register, login, exit")
			}
		case "register":
			err = a.Register(ctx)
		case "login":
			err = a.Login(ctx)
		case "whoami":
			err = a.WhoAmI(ctx)
		case "logout":
			err = a.Logout(ctx)
		case "exit", "quit":
			fmt.Fprintln(w, "Bye!")
			return
		default:
			fmt.Fprintln(w, "Unknown command:", cmd)
		}

		if err != nil {
			fmt.Fprintln(w, "Error:", describe(err))
		}
	}
}

// Shell runs the interactive loop over the app's own input.
func (a *App) Shell(ctx context.Context) {
	a.println("gophauth client (type 'help' for commands)")
	runREPL(ctx, a, a.getStatus, a.reader, a.out)
}
