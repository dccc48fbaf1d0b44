package portal

import (
	"context"

	"github.com/mshakil/ictportal/internal/router"
)

// Navigation commands delegate straight to the router, which decides what
// the current session is allowed to see.

func (a *App) Home(ctx context.Context) {
	a.router.NavigatePublic(ctx, router.PageHome)
}

func (a *App) FacultyPage(ctx context.Context) {
	a.router.NavigatePublic(ctx, router.PageFaculty)
}

func (a *App) AboutPage(ctx context.Context) {
	a.router.NavigatePublic(ctx, router.PageAbout)
}

func (a *App) ViewProfile(ctx context.Context, id int) {
	a.router.OpenProfile(ctx, id)
}

func (a *App) Back(ctx context.Context) {
	a.router.Back(ctx)
}

func (a *App) Forward(ctx context.Context) {
	a.router.Forward(ctx)
}

func (a *App) Overview(ctx context.Context) {
	a.router.NavigateAdmin(ctx, router.PageOverview)
}

func (a *App) MyProfile(ctx context.Context) {
	a.router.NavigateAdmin(ctx, router.PageMyProfile)
}

func (a *App) UsersPage(ctx context.Context) {
	a.router.NavigateAdmin(ctx, router.PageUsers)
}
