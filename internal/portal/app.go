// Package portal wires the portal together and drives it from an
// interactive command loop. One command runs to completion at a time; the
// loop is the only writer, so the data layers need no locking.
package portal

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"

	"github.com/mshakil/ictportal/internal/config"
	"github.com/mshakil/ictportal/internal/directory"
	"github.com/mshakil/ictportal/internal/logging"
	"github.com/mshakil/ictportal/internal/models"
	"github.com/mshakil/ictportal/internal/router"
	"github.com/mshakil/ictportal/internal/seed"
	"github.com/mshakil/ictportal/internal/session"
	"github.com/mshakil/ictportal/internal/store"
)

type App struct {
	config   *config.Config
	log      logging.Logger
	db       *sql.DB
	dir      *directory.Repository
	sessions *session.Manager
	router   *router.Router
	reader   *bufio.Reader
	out      io.Writer
}

// NewApp opens the local document store, loads (or seeds) the directory,
// restores any persisted session, and wires the router.
func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	st, db, err := store.InitDatabase(ctx, cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open document store: %w", err)
	}

	dir, err := directory.Load(ctx, st, seed.Users(), log)
	if err != nil {
		db.Close()
		return nil, err
	}

	sessions, err := session.Load(ctx, st, dir, log)
	if err != nil {
		db.Close()
		return nil, err
	}

	out := os.Stdout
	a := &App{
		config:   cfg,
		log:      log,
		db:       db,
		dir:      dir,
		sessions: sessions,
		reader:   bufio.NewReader(os.Stdin),
		out:      out,
	}
	a.router = router.New(sessions, dir, pagePrinter{out: out}, log, nil)
	return a, nil
}

// Run restores the startup deep link (if any) and hands control to the
// command loop until EOF or an exit command.
func (a *App) Run(ctx context.Context) {
	fmt.Fprintln(a.out, "ICT Department Portal (type 'help' for commands)")
	a.router.RestoreFragment(ctx, a.config.StartFragment)

	scanner := bufio.NewScanner(os.Stdin)
	runLoop(ctx, a, a.status, scanner, a.out)
}

// Close releases the store.
func (a *App) Close() error {
	return a.db.Close()
}

func (a *App) status() string {
	actor, ok := a.sessions.Actor()
	if !ok {
		return ""
	}
	return fmt.Sprintf("(%s %s)", actor.Name, actor.Role)
}

func (a *App) isSignedIn() bool {
	return a.sessions.State() == session.Authenticated
}

func (a *App) isAdmin() bool {
	actor, ok := a.sessions.Actor()
	return ok && actor.Role == models.RoleAdmin
}
