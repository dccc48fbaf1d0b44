package portal

import (
	"context"
	"errors"

	"github.com/mshakil/ictportal/internal/common"
	"github.com/mshakil/ictportal/internal/router"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login shows the sign-in page, prompts for credentials, and attempts to
// authenticate. A wrong email or password re-renders the sign-in page with
// an error banner and leaves the session untouched; on success the router
// switches to the member area.
func (a *App) Login(ctx context.Context) error {
	a.router.ShowLogin(ctx)

	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}

	if err := a.sessions.SignIn(ctx, email, string(password)); err != nil {
		if errors.Is(err, common.ErrInvalidCredentials) {
			a.router.LoginFailed(ctx)
			return nil
		}
		return err
	}

	a.router.Refresh(ctx)
	return nil
}

// Guest continues browsing anonymously. The guest session persists like a
// signed-in one but never unlocks the member area.
func (a *App) Guest(ctx context.Context) {
	if err := a.sessions.BecomeGuest(ctx); err != nil {
		a.log.Error(ctx, "failed to persist guest session", "error", err)
	}
	a.router.NavigatePublic(ctx, router.PageHome)
}

// Logout clears the persisted session and returns to the public site.
func (a *App) Logout(ctx context.Context) {
	if err := a.sessions.SignOut(ctx); err != nil {
		a.log.Error(ctx, "failed to clear session", "error", err)
	}
	a.router.Refresh(ctx)
}
