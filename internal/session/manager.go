// Package session tracks the active actor: nobody, an anonymous guest, or
// a signed-in directory record. The snapshot is persisted so a session
// survives restarts.
package session

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mshakil/ictportal/internal/common"
	"github.com/mshakil/ictportal/internal/directory"
	"github.com/mshakil/ictportal/internal/logging"
	"github.com/mshakil/ictportal/internal/models"
	"github.com/mshakil/ictportal/internal/store"
)

// State classifies the current actor.
type State int

const (
	None State = iota
	Guest
	Authenticated
)

// Manager owns the active-actor snapshot. The snapshot is a copy, never a
// live directory reference; profile edits are written back to both the
// snapshot and the directory to keep the two consistent.
type Manager struct {
	store   store.Adapter
	dir     *directory.Repository
	current *models.User
	log     logging.Logger
}

// guestActor is the session-only pseudo-record for anonymous visitors.
// It is never written into the directory.
func guestActor() models.User {
	return models.User{
		Name:       "Guest Visitor",
		Role:       models.RoleGuest,
		Department: "Public Visitor",
	}
}

// Load restores the persisted session, if any. An unreadable session
// document is cleared and treated as signed out.
func Load(ctx context.Context, st store.Adapter, dir *directory.Repository, log logging.Logger) (*Manager, error) {
	m := &Manager{store: st, dir: dir, log: log}

	raw, err := st.Load(ctx, store.KeySession)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return m, nil
	}

	var u models.User
	if err := json.Unmarshal(raw, &u); err != nil {
		log.Warn(ctx, "session document unreadable, clearing",
			"error", fmt.Errorf("%w: %v", common.ErrCorruptState, err))
		if err := st.Clear(ctx, store.KeySession); err != nil {
			return nil, err
		}
		return m, nil
	}

	m.current = &u
	return m, nil
}

// State reports whether anybody is signed in, and how.
func (m *Manager) State() State {
	switch {
	case m.current == nil:
		return None
	case m.current.Role == models.RoleGuest:
		return Guest
	default:
		return Authenticated
	}
}

// Actor returns a copy of the current actor. ok is false when the state
// is None.
func (m *Manager) Actor() (actor models.User, ok bool) {
	if m.current == nil {
		return models.User{}, false
	}
	return m.current.Clone(), true
}

func (m *Manager) persist(ctx context.Context) error {
	raw, err := json.Marshal(m.current)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}
	return m.store.Save(ctx, store.KeySession, raw)
}

// SignIn matches email and password against the directory, both exact and
// case-sensitive. On success the actor becomes a copy of the record and
// the session is persisted. On failure the state is left untouched and
// common.ErrInvalidCredentials is returned; callers surface it inline.
func (m *Manager) SignIn(ctx context.Context, email, password string) error {
	u, ok := m.dir.FindByEmail(email)
	if !ok || u.Password != password {
		return common.ErrInvalidCredentials
	}

	m.current = &u
	return m.persist(ctx)
}

// SignOut clears the actor and the persisted session.
func (m *Manager) SignOut(ctx context.Context) error {
	m.current = nil
	return m.store.Clear(ctx, store.KeySession)
}

// BecomeGuest switches to the anonymous guest pseudo-actor and persists it.
func (m *Manager) BecomeGuest(ctx context.Context) error {
	g := guestActor()
	m.current = &g
	return m.persist(ctx)
}

// UpdateActor merges patch into the signed-in actor, persists the session
// snapshot, and propagates the same patch into the directory keyed by the
// actor's id. Fails with common.ErrNotAuthenticated for None or Guest.
func (m *Manager) UpdateActor(ctx context.Context, patch models.ProfileUpdate) error {
	if m.State() != Authenticated {
		return common.ErrNotAuthenticated
	}

	m.current.Apply(patch)
	if err := m.persist(ctx); err != nil {
		return err
	}
	return m.dir.Update(ctx, m.current.Id, patch)
}
