package router

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mshakil/ictportal/internal/directory"
	"github.com/mshakil/ictportal/internal/logging"
	"github.com/mshakil/ictportal/internal/seed"
	"github.com/mshakil/ictportal/internal/session"
	"github.com/mshakil/ictportal/internal/view"
)

type memStore struct {
	docs map[string][]byte
}

func newMemStore() *memStore {
	return &memStore{docs: map[string][]byte{}}
}

func (m *memStore) Load(_ context.Context, key string) ([]byte, error) {
	v, ok := m.docs[key]
	if !ok {
		return nil, nil
	}
	return v, nil
}

func (m *memStore) Save(_ context.Context, key string, doc []byte) error {
	m.docs[key] = doc
	return nil
}

func (m *memStore) Clear(_ context.Context, key string) error {
	delete(m.docs, key)
	return nil
}

// recorder captures every rendered page.
type recorder struct {
	pages []view.Page
}

func (r *recorder) Show(p view.Page) {
	r.pages = append(r.pages, p)
}

func (r *recorder) last(t *testing.T) view.Page {
	t.Helper()
	require.NotEmpty(t, r.pages)
	return r.pages[len(r.pages)-1]
}

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func setup(t *testing.T) (*Router, *session.Manager, *recorder) {
	t.Helper()
	ctx := context.Background()
	st := newMemStore()

	dir, err := directory.Load(ctx, st, seed.Users(), testLogger())
	require.NoError(t, err)
	sessions, err := session.Load(ctx, st, dir, testLogger())
	require.NoError(t, err)

	rec := &recorder{}
	now := func() time.Time { return time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC) }
	return New(sessions, dir, rec, testLogger(), now), sessions, rec
}

func TestRefresh_DefaultIsPublicHome(t *testing.T) {
	r, _, rec := setup(t)

	r.Refresh(context.Background())

	assert.Equal(t, ContextPublic, r.ActiveContext())
	assert.Equal(t, "Home", rec.last(t).Title)
}

func TestNavigatePublic(t *testing.T) {
	r, _, rec := setup(t)
	ctx := context.Background()

	r.NavigatePublic(ctx, PageAbout)
	assert.Equal(t, "About", rec.last(t).Title)

	r.NavigatePublic(ctx, PageFaculty)
	assert.Equal(t, "Faculty", rec.last(t).Title)

	page, _ := r.PublicState()
	assert.Equal(t, PageFaculty, page)
}

func TestOpenProfile_RendersRecord(t *testing.T) {
	r, _, rec := setup(t)

	r.OpenProfile(context.Background(), 3)

	assert.Equal(t, "Sarah Smith", rec.last(t).Title)
	page, id := r.PublicState()
	assert.Equal(t, PageProfile, page)
	assert.Equal(t, 3, id)
}

func TestOpenProfile_UnknownId_FallsBackToHome(t *testing.T) {
	r, _, rec := setup(t)

	r.OpenProfile(context.Background(), 42)

	assert.Equal(t, "Home", rec.last(t).Title)
	page, _ := r.PublicState()
	assert.Equal(t, PageHome, page)
}

func TestBackForward_WalksProfileHistory(t *testing.T) {
	r, _, rec := setup(t)
	ctx := context.Background()

	r.OpenProfile(ctx, 2)
	r.OpenProfile(ctx, 3)

	r.Back(ctx)
	assert.Equal(t, "John Doe", rec.last(t).Title)

	r.Back(ctx)
	assert.Equal(t, "Home", rec.last(t).Title)

	r.Forward(ctx)
	assert.Equal(t, "John Doe", rec.last(t).Title)

	r.Forward(ctx)
	assert.Equal(t, "Sarah Smith", rec.last(t).Title)
}

func TestBack_WithNoHistory_DoesNothing(t *testing.T) {
	r, _, rec := setup(t)

	r.Back(context.Background())
	assert.Empty(t, rec.pages)
}

func TestOpenProfile_DiscardsForwardEntries(t *testing.T) {
	r, _, rec := setup(t)
	ctx := context.Background()

	r.OpenProfile(ctx, 2)
	r.OpenProfile(ctx, 3)
	r.Back(ctx)
	r.OpenProfile(ctx, 4)

	rendered := len(rec.pages)
	r.Forward(ctx)
	assert.Len(t, rec.pages, rendered)

	r.Back(ctx)
	assert.Equal(t, "John Doe", rec.last(t).Title)
}

func TestRestoreFragment(t *testing.T) {
	tests := []struct {
		name      string
		fragment  string
		wantTitle string
	}{
		{"with hash", "#faculty-3", "Sarah Smith"},
		{"without hash", "faculty-2", "John Doe"},
		{"unknown id", "#faculty-99", "Home"},
		{"unrecognized", "#contact", "Home"},
		{"empty", "", "Home"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, _, rec := setup(t)
			r.RestoreFragment(context.Background(), tt.fragment)
			assert.Equal(t, tt.wantTitle, rec.last(t).Title)
		})
	}
}

func TestLoginFailed_StaysOnLoginWithNotice(t *testing.T) {
	r, _, rec := setup(t)
	ctx := context.Background()

	r.ShowLogin(ctx)
	assert.NotContains(t, rec.last(t).Body, "Invalid credentials")

	r.LoginFailed(ctx)
	p := rec.last(t)
	assert.Equal(t, "Login", p.Title)
	assert.Contains(t, p.Body, "Invalid credentials")

	page, _ := r.PublicState()
	assert.Equal(t, PageLogin, page)
}

func TestSignIn_SwitchesToAdminOverview(t *testing.T) {
	r, sessions, rec := setup(t)
	ctx := context.Background()

	r.ShowLogin(ctx)
	require.NoError(t, sessions.SignIn(ctx, "admin@ict.com", "admin123"))
	r.Refresh(ctx)

	assert.Equal(t, ContextAdmin, r.ActiveContext())
	assert.Equal(t, "Overview", rec.last(t).Title)
}

func TestNavigateAdmin_UsersPage_AdminOnly(t *testing.T) {
	r, sessions, rec := setup(t)
	ctx := context.Background()

	require.NoError(t, sessions.SignIn(ctx, "john.doe@ict.com", "user123"))
	r.Refresh(ctx)

	rendered := len(rec.pages)
	r.NavigateAdmin(ctx, PageUsers)

	// refused silently: no navigation, no render
	assert.Equal(t, PageOverview, r.AdminState())
	assert.Len(t, rec.pages, rendered)
}

func TestNavigateAdmin_UsersPage_ForAdmin(t *testing.T) {
	r, sessions, rec := setup(t)
	ctx := context.Background()

	require.NoError(t, sessions.SignIn(ctx, "admin@ict.com", "admin123"))
	r.Refresh(ctx)

	r.NavigateAdmin(ctx, PageUsers)
	assert.Equal(t, "User Management", rec.last(t).Title)
	assert.Equal(t, PageUsers, r.AdminState())
}

func TestNavigatePublic_IgnoredWhileSignedIn(t *testing.T) {
	r, sessions, rec := setup(t)
	ctx := context.Background()

	require.NoError(t, sessions.SignIn(ctx, "admin@ict.com", "admin123"))
	r.Refresh(ctx)

	rendered := len(rec.pages)
	r.NavigatePublic(ctx, PageAbout)
	assert.Len(t, rec.pages, rendered)
}

func TestLogout_ReturnsToPublicHome(t *testing.T) {
	r, sessions, rec := setup(t)
	ctx := context.Background()

	require.NoError(t, sessions.SignIn(ctx, "admin@ict.com", "admin123"))
	r.Refresh(ctx)
	r.NavigateAdmin(ctx, PageMyProfile)

	require.NoError(t, sessions.SignOut(ctx))
	r.Refresh(ctx)

	assert.Equal(t, ContextPublic, r.ActiveContext())
	assert.Equal(t, "Home", rec.last(t).Title)

	// a later sign-in starts back at the overview
	require.NoError(t, sessions.SignIn(ctx, "admin@ict.com", "admin123"))
	r.Refresh(ctx)
	assert.Equal(t, PageOverview, r.AdminState())
}

func TestGuest_StaysPublic(t *testing.T) {
	r, sessions, rec := setup(t)
	ctx := context.Background()

	require.NoError(t, sessions.BecomeGuest(ctx))
	r.Refresh(ctx)

	assert.Equal(t, ContextPublic, r.ActiveContext())
	assert.Equal(t, "Home", rec.last(t).Title)
}

func TestProfileRecordDeleted_RendersHomeFallback(t *testing.T) {
	ctx := context.Background()
	st := newMemStore()
	dir, err := directory.Load(ctx, st, seed.Users(), testLogger())
	require.NoError(t, err)
	sessions, err := session.Load(ctx, st, dir, testLogger())
	require.NoError(t, err)

	rec := &recorder{}
	r := New(sessions, dir, rec, testLogger(), nil)

	r.OpenProfile(ctx, 4)
	require.NoError(t, dir.Delete(ctx, 4))
	r.Refresh(ctx)

	assert.Equal(t, "Home", rec.last(t).Title)
}
