// Package router maps logical page identifiers to render functions. It
// keeps two independent navigation contexts — the public site and the
// admin dashboard — and picks between them from session state alone, so
// the displayed context can never drift from who is signed in.
package router

import (
	"context"
	"regexp"
	"strconv"
	"time"

	"github.com/mshakil/ictportal/internal/directory"
	"github.com/mshakil/ictportal/internal/logging"
	"github.com/mshakil/ictportal/internal/models"
	"github.com/mshakil/ictportal/internal/session"
	"github.com/mshakil/ictportal/internal/view"
)

// PublicPage identifies a page of the public site.
type PublicPage string

const (
	PageHome    PublicPage = "home"
	PageFaculty PublicPage = "faculty"
	PageProfile PublicPage = "faculty-profile"
	PageAbout   PublicPage = "about"
	PageLogin   PublicPage = "login"
)

// AdminPage identifies a page of the admin dashboard.
type AdminPage string

const (
	PageOverview  AdminPage = "overview"
	PageMyProfile AdminPage = "profile"
	PageUsers     AdminPage = "users"
)

// Context selects which navigation context is live.
type Context int

const (
	ContextPublic Context = iota
	ContextAdmin
)

// Sink receives each rendered page. The interactive loop prints pages;
// tests capture them.
type Sink interface {
	Show(p view.Page)
}

// fragmentPattern matches the deep-link form "faculty-<id>", with or
// without the leading '#'.
var fragmentPattern = regexp.MustCompile(`^#?faculty-(\d+)$`)

// Router resolves navigation requests against the active context and
// renders through the Sink. Every state-changing operation elsewhere ends
// in Refresh here; pages are always re-rendered whole.
type Router struct {
	sessions *session.Manager
	dir      *directory.Repository
	sink     Sink
	log      logging.Logger
	now      func() time.Time

	publicPage  PublicPage
	profileId   int
	loginFailed bool
	adminPage   AdminPage

	// Profile pages are the only ones that push history, mirroring the
	// original's pushState usage. position -1 means "before the first
	// entry", i.e. the baseline public page.
	history  []int
	position int

	// rendered tracks the last rendered context, only so a context switch
	// can reset that context's default page. The displayed context itself
	// is recomputed from session state on every render.
	rendered Context
	started  bool
}

// New wires a Router. now is injectable for tests; nil means time.Now.
func New(sessions *session.Manager, dir *directory.Repository, sink Sink, log logging.Logger, now func() time.Time) *Router {
	if now == nil {
		now = time.Now
	}
	return &Router{
		sessions:   sessions,
		dir:        dir,
		sink:       sink,
		log:        log,
		now:        now,
		publicPage: PageHome,
		adminPage:  PageOverview,
		position:   -1,
	}
}

// ActiveContext derives the live context from session state: nobody or a
// guest sees the public site, a signed-in actor the admin dashboard.
func (r *Router) ActiveContext() Context {
	switch r.sessions.State() {
	case session.None, session.Guest:
		return ContextPublic
	default:
		return ContextAdmin
	}
}

// PublicState returns the current public-context page (and profile id when
// on a profile page).
func (r *Router) PublicState() (PublicPage, int) {
	return r.publicPage, r.profileId
}

// AdminState returns the current admin-context page.
func (r *Router) AdminState() AdminPage {
	return r.adminPage
}

// Refresh re-derives the active context and renders its current page.
// When the context changed since the last render (sign-in, logout), the
// newly entered context starts at its default page.
func (r *Router) Refresh(ctx context.Context) {
	active := r.ActiveContext()
	if r.started && active != r.rendered {
		r.publicPage = PageHome
		r.adminPage = PageOverview
		r.loginFailed = false
	}
	r.render(ctx)
}

// NavigatePublic moves the public context to a named page. Requests are
// ignored while the admin context is live.
func (r *Router) NavigatePublic(ctx context.Context, page PublicPage) {
	if r.ActiveContext() != ContextPublic {
		return
	}
	r.publicPage = page
	r.loginFailed = false
	r.render(ctx)
}

// OpenProfile navigates to the public profile page for id, pushing a
// history entry so Back returns here. An unknown id falls back to home
// silently.
func (r *Router) OpenProfile(ctx context.Context, id int) {
	if r.ActiveContext() != ContextPublic {
		return
	}
	if _, ok := r.dir.Find(id); !ok {
		r.log.Debug(ctx, "profile deep link target missing", "id", id)
		r.publicPage = PageHome
		r.render(ctx)
		return
	}

	// Opening a profile discards any forward entries, like pushState.
	r.history = append(r.history[:r.position+1], id)
	r.position = len(r.history) - 1

	r.publicPage = PageProfile
	r.profileId = id
	r.render(ctx)
}

// Back walks one step back through the profile history; below the first
// entry it lands on home, matching the original popstate default.
func (r *Router) Back(ctx context.Context) {
	if r.ActiveContext() != ContextPublic || r.position < 0 {
		return
	}
	r.position--
	if r.position < 0 {
		r.publicPage = PageHome
	} else {
		r.publicPage = PageProfile
		r.profileId = r.history[r.position]
	}
	r.render(ctx)
}

// Forward re-enters the next profile history entry, if any.
func (r *Router) Forward(ctx context.Context) {
	if r.ActiveContext() != ContextPublic || r.position >= len(r.history)-1 {
		return
	}
	r.position++
	r.publicPage = PageProfile
	r.profileId = r.history[r.position]
	r.render(ctx)
}

// RestoreFragment restores a deep link on startup. Only the
// "faculty-<id>" form is recognized; anything else, or a missing record,
// renders the default page silently.
func (r *Router) RestoreFragment(ctx context.Context, fragment string) {
	if r.ActiveContext() != ContextPublic || fragment == "" {
		r.Refresh(ctx)
		return
	}

	m := fragmentPattern.FindStringSubmatch(fragment)
	if m == nil {
		r.log.Debug(ctx, "ignoring unrecognized fragment", "fragment", fragment)
		r.Refresh(ctx)
		return
	}

	id, err := strconv.Atoi(m[1])
	if err != nil {
		r.Refresh(ctx)
		return
	}
	r.OpenProfile(ctx, id)
}

// ShowLogin enters the login page.
func (r *Router) ShowLogin(ctx context.Context) {
	if r.ActiveContext() != ContextPublic {
		return
	}
	r.publicPage = PageLogin
	r.loginFailed = false
	r.render(ctx)
}

// LoginFailed re-renders the login page with the inline error. The caller
// stays on the login page with prior data intact.
func (r *Router) LoginFailed(ctx context.Context) {
	if r.ActiveContext() != ContextPublic {
		return
	}
	r.publicPage = PageLogin
	r.loginFailed = true
	r.render(ctx)
}

// NavigateAdmin moves the admin context to a named page. The users page is
// refused silently — no navigation occurs — unless the actor's role is
// admin, independent of whether the sidebar offered the entry.
func (r *Router) NavigateAdmin(ctx context.Context, page AdminPage) {
	if r.ActiveContext() != ContextAdmin {
		return
	}
	if page == PageUsers {
		actor, ok := r.sessions.Actor()
		if !ok || actor.Role != models.RoleAdmin {
			r.log.Debug(ctx, "refusing users page for non-admin")
			return
		}
	}
	r.adminPage = page
	r.render(ctx)
}

func (r *Router) render(ctx context.Context) {
	active := r.ActiveContext()
	r.rendered = active
	r.started = true

	if active == ContextPublic {
		r.sink.Show(r.renderPublic(ctx))
		return
	}
	r.sink.Show(r.renderAdmin())
}

func (r *Router) renderPublic(ctx context.Context) view.Page {
	switch r.publicPage {
	case PageFaculty:
		var chairman *models.User
		if c, ok := r.dir.Chairman(); ok {
			chairman = &c
		}
		return view.FacultyList(chairman, r.dir.Faculty())
	case PageProfile:
		u, ok := r.dir.Find(r.profileId)
		if !ok {
			r.log.Debug(ctx, "profile record gone, falling back to home", "id", r.profileId)
			r.publicPage = PageHome
			return view.Home()
		}
		return view.FacultyProfile(u)
	case PageAbout:
		return view.About()
	case PageLogin:
		return view.Login(r.loginFailed)
	default:
		return view.Home()
	}
}

func (r *Router) renderAdmin() view.Page {
	actor, _ := r.sessions.Actor()
	switch r.adminPage {
	case PageMyProfile:
		return view.Profile(actor)
	case PageUsers:
		return view.Users(actor, r.dir.List(nil))
	default:
		return view.Overview(actor, r.dir.Count(), r.now())
	}
}
