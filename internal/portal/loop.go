package portal

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// execIface defines the minimal command surface the loop needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isSignedIn() bool
	isAdmin() bool
	Home(ctx context.Context)
	FacultyPage(ctx context.Context)
	AboutPage(ctx context.Context)
	ViewProfile(ctx context.Context, id int)
	Back(ctx context.Context)
	Forward(ctx context.Context)
	Login(ctx context.Context) error
	Guest(ctx context.Context)
	Overview(ctx context.Context)
	MyProfile(ctx context.Context)
	EditProfile(ctx context.Context) error
	UsersPage(ctx context.Context)
	AddUser(ctx context.Context) error
	DeleteUser(ctx context.Context, id int) error
	Logout(ctx context.Context)
}

// runLoop reads a line from the provided scanner, parses the first token as
// the command, and dispatches to methods on 'a'. Unknown commands are
// reported back to the user. The loop exits on scanner EOF or when the user
// types "exit" or "quit".
//
// The prompt shows the current actor (from statusFn) and accepts commands:
//
//	Public:
//	  - home | faculty | about  — navigate
//	  - view <id>               — open a faculty profile
//	  - back | forward          — walk profile history
//	  - login                   — sign in
//	  - guest                   — continue as guest
//	  - help, exit | quit
//
//	Signed in (additionally):
//	  - overview | profile      — navigate the member area
//	  - edit                    — edit own profile
//	  - logout
//
//	Admins (additionally):
//	  - users                   — manage users
//	  - add | del <id>          — create / remove a user
//
// Any errors returned by command handlers are ignored here; handlers should
// report their own errors. This keeps the loop resilient and focused on I/O.
// All loop output goes to out, the same writer the handlers print to.
func runLoop(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner, out io.Writer) {
	for {
		fmt.Fprintf(out, "portal %s> \n", statusFn())
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			switch {
			case a.isAdmin():
				fmt.Fprintln(out, "Available commands: overview, profile, edit, users, add, del <id>, home, faculty, about, view <id>, back, forward, logout, exit")
			case a.isSignedIn():
				fmt.Fprintln(out, "Available commands: overview, profile, edit, home, faculty, about, view <id>, back, forward, logout, exit")
			default:
				fmt.Fprintln(out, "Available commands: home, faculty, about, view <id>, back, forward, login, guest, exit")
			}

		case "home":
			a.Home(ctx)

		case "faculty":
			a.FacultyPage(ctx)

		case "about":
			a.AboutPage(ctx)

		case "view":
			id, ok := idArg(parts)
			if !ok {
				fmt.Fprintln(out, "Usage: view <id>")
				continue
			}
			a.ViewProfile(ctx, id)

		case "back":
			a.Back(ctx)

		case "forward":
			a.Forward(ctx)

		case "login":
			_ = a.Login(ctx)

		case "guest":
			a.Guest(ctx)

		case "overview":
			a.Overview(ctx)

		case "profile":
			a.MyProfile(ctx)

		case "edit":
			_ = a.EditProfile(ctx)

		case "users":
			a.UsersPage(ctx)

		case "add":
			_ = a.AddUser(ctx)

		case "del":
			id, ok := idArg(parts)
			if !ok {
				fmt.Fprintln(out, "Usage: del <id>")
				continue
			}
			_ = a.DeleteUser(ctx, id)

		case "logout":
			a.Logout(ctx)

		case "exit", "quit":
			fmt.Fprintln(out, "Bye!")
			return

		default:
			fmt.Fprintln(out, "Unknown command:", cmd)
		}
	}
}

func idArg(parts []string) (int, bool) {
	if len(parts) < 2 {
		return 0, false
	}
	id, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, false
	}
	return id, true
}
