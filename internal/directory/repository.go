// Package directory owns the user/faculty record collection: an in-memory
// slice loaded from the document store once at startup and written back
// after every mutation.
package directory

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mshakil/ictportal/internal/common"
	"github.com/mshakil/ictportal/internal/logging"
	"github.com/mshakil/ictportal/internal/models"
	"github.com/mshakil/ictportal/internal/store"
)

// document is the persisted directory shape.
type document struct {
	Users []models.User `json:"users"`
}

// Repository is the single writer over the directory. All access runs on
// the interactive loop, so no locking is needed.
type Repository struct {
	store store.Adapter
	users []models.User
	log   logging.Logger
}

// Load reads the directory document from the store. An absent document is
// seeded from fixture; an unreadable one is treated as absent and reseeded
// rather than crashing, with a warning.
func Load(ctx context.Context, st store.Adapter, fixture []models.User, log logging.Logger) (*Repository, error) {
	r := &Repository{store: st, log: log}

	raw, err := st.Load(ctx, store.KeyDirectory)
	if err != nil {
		return nil, err
	}

	if raw != nil {
		var doc document
		if err := json.Unmarshal(raw, &doc); err == nil {
			r.users = doc.Users
			return r, nil
		}
		log.Warn(ctx, "directory document unreadable, reseeding",
			"error", fmt.Errorf("%w: %v", common.ErrCorruptState, err))
	}

	r.users = make([]models.User, len(fixture))
	for i, u := range fixture {
		r.users[i] = u.Clone()
	}
	if err := r.persist(ctx); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *Repository) persist(ctx context.Context) error {
	raw, err := json.Marshal(document{Users: r.users})
	if err != nil {
		return fmt.Errorf("failed to encode directory: %w", err)
	}
	return r.store.Save(ctx, store.KeyDirectory, raw)
}

// Create appends a new record with the next id (max existing + 1) and
// persists. Fails with common.ErrDuplicateEmail when the email is already
// taken; the comparison is case-sensitive, like sign-in.
func (r *Repository) Create(ctx context.Context, u models.User) (models.User, error) {
	for _, existing := range r.users {
		if existing.Email == u.Email {
			return models.User{}, common.ErrDuplicateEmail
		}
	}

	maxId := 0
	for _, existing := range r.users {
		if existing.Id > maxId {
			maxId = existing.Id
		}
	}
	u.Id = maxId + 1

	r.users = append(r.users, u.Clone())
	if err := r.persist(ctx); err != nil {
		return models.User{}, err
	}
	return u, nil
}

// Update merges patch over the record with the given id and persists.
// An unknown id is a silent no-op, matching the historical behavior the
// rest of the portal leans on (see tests).
func (r *Repository) Update(ctx context.Context, id int, patch models.ProfileUpdate) error {
	for i := range r.users {
		if r.users[i].Id == id {
			r.users[i].Apply(patch)
			return r.persist(ctx)
		}
	}
	return nil
}

// Delete removes the record with the given id and persists. Deleting an
// unknown id is a no-op. Interactive confirmation is the caller's concern.
func (r *Repository) Delete(ctx context.Context, id int) error {
	for i := range r.users {
		if r.users[i].Id == id {
			r.users = append(r.users[:i], r.users[i+1:]...)
			return r.persist(ctx)
		}
	}
	return nil
}

// Find returns a copy of the record with the given id.
func (r *Repository) Find(id int) (models.User, bool) {
	for _, u := range r.users {
		if u.Id == id {
			return u.Clone(), true
		}
	}
	return models.User{}, false
}

// FindByEmail returns a copy of the record with the given email.
func (r *Repository) FindByEmail(email string) (models.User, bool) {
	for _, u := range r.users {
		if u.Email == email {
			return u.Clone(), true
		}
	}
	return models.User{}, false
}

// List returns copies of the records matching filter, in insertion order.
// A nil filter matches everything.
func (r *Repository) List(filter func(models.User) bool) []models.User {
	var out []models.User
	for _, u := range r.users {
		if filter == nil || filter(u) {
			out = append(out, u.Clone())
		}
	}
	return out
}

// Faculty returns all non-admin records, the public faculty listing.
func (r *Repository) Faculty() []models.User {
	return r.List(func(u models.User) bool { return u.Role != models.RoleAdmin })
}

// Chairman returns the first admin record, shown in the chairman section
// of the public site. Having exactly one admin is seed convention, not an
// enforced invariant.
func (r *Repository) Chairman() (models.User, bool) {
	for _, u := range r.users {
		if u.Role == models.RoleAdmin {
			return u.Clone(), true
		}
	}
	return models.User{}, false
}

// Count returns the number of records.
func (r *Repository) Count() int {
	return len(r.users)
}
