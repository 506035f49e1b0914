// Package guard decides whether a navigation may proceed based on session state.
package guard

import "strings"

// Well-known routes consulted by the guard policies.
const (
	LandingPath   = "/"
	LoginPath     = "/login"
	DashboardPath = "/dashboard"

	apiPrefix = "/api"
)

// Decision is the outcome of a guard check: either the navigation proceeds or
// it is redirected.
type Decision struct {
	Allowed    bool
	RedirectTo string
}

func allow() Decision { return Decision{Allowed: true} }

func redirect(path string) Decision { return Decision{RedirectTo: path} }

// Session is the view of the session manager the guard needs. The guard never
// mutates session state beyond triggering lazy initialization.
type Session interface {
	Initialized() bool
	Initialize()
	IsAuthenticated() bool
}

// Guard evaluates navigation attempts against a session. It must never decide
// on an uninitialized session, so both policies force initialization first.
type Guard struct {
	session Session
}

// New constructs a Guard over the given session.
func New(session Session) *Guard {
	return &Guard{session: session}
}

// PublicLanding is the variant with a public home page: API paths skip the
// guard entirely, the landing page is always reachable, and every other path
// requires an authenticated session or redirects to the landing page.
func (g *Guard) PublicLanding(path string) Decision {
	if strings.HasPrefix(path, apiPrefix) {
		return allow()
	}
	if !g.session.Initialized() {
		g.session.Initialize()
	}
	if path == LandingPath {
		return allow()
	}
	if !g.session.IsAuthenticated() {
		return redirect(LandingPath)
	}
	return allow()
}

// ProtectedApp is the fully gated variant: anonymous users are sent to the
// login page, and an authenticated user asking for the login page is sent to
// the dashboard instead of re-entering the login flow.
func (g *Guard) ProtectedApp(path string) Decision {
	if !g.session.Initialized() {
		g.session.Initialize()
	}

	authenticated := g.session.IsAuthenticated()
	if !authenticated && path != LoginPath {
		return redirect(LoginPath)
	}
	if authenticated && path == LoginPath {
		return redirect(DashboardPath)
	}
	return allow()
}
