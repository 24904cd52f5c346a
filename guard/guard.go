// Package guard decides whether a navigation to a protected view may render.
package guard

import (
	"strings"

	"medicare/models"
	"medicare/store/session"
)

const (
	LoginPath = "/login"
	HomePath  = "/"
)

// Outcome of a guard check.
type Outcome int

const (
	Render Outcome = iota
	RedirectLogin
	RedirectHome
)

func (o Outcome) String() string {
	switch o {
	case RedirectLogin:
		return "redirect_login"
	case RedirectHome:
		return "redirect_home"
	default:
		return "render"
	}
}

// Decision is the result of Evaluate. Location is empty when rendering.
type Decision struct {
	Outcome  Outcome
	Location string
}

// Input is everything a decision depends on. A nil AllowedRoles means any
// authenticated role may view the path.
type Input struct {
	Token        string
	ContextRole  models.Role
	StoredRole   models.Role
	Path         string
	AllowedRoles []models.Role
}

// Evaluate is the guard decision. It has no side effects and is run on every
// navigation. The stored role wins over the context role when both are set.
func Evaluate(in Input) Decision {
	if in.Token == "" {
		return Decision{Outcome: RedirectLogin, Location: LoginPath}
	}
	effective := in.StoredRole
	if effective == "" {
		effective = in.ContextRole
	}
	if in.AllowedRoles != nil && !hasRole(in.AllowedRoles, effective) {
		return Decision{Outcome: RedirectHome, Location: HomePath}
	}
	return Decision{Outcome: Render}
}

func hasRole(roles []models.Role, role models.Role) bool {
	for _, r := range roles {
		if r == role {
			return true
		}
	}
	return false
}

// Rule protects a path, and everything below it unless Exact is set.
type Rule struct {
	Path  string
	Exact bool
	Roles []models.Role
}

// RouteTable lists the protected views. The longest matching rule applies.
type RouteTable []Rule

// DefaultRoutes are the console's protected views.
func DefaultRoutes() RouteTable {
	return RouteTable{
		{Path: "/profile", Roles: []models.Role{models.RolePatient}},
		{Path: "/doctor/profile", Roles: []models.Role{models.RoleDoctor}},
		{Path: "/admin", Roles: []models.Role{models.RoleAdmin}},
	}
}

// Match returns the rule protecting path.
func (t RouteTable) Match(path string) (Rule, bool) {
	path = "/" + strings.Trim(path, "/")
	var best Rule
	found := false
	for _, r := range t {
		if !covers(r, path) {
			continue
		}
		if !found || len(r.Path) > len(best.Path) {
			best, found = r, true
		}
	}
	return best, found
}

func covers(r Rule, path string) bool {
	if path == r.Path {
		return true
	}
	return !r.Exact && strings.HasPrefix(path, strings.TrimSuffix(r.Path, "/")+"/")
}

// SessionReader exposes the session snapshot.
type SessionReader interface {
	Snapshot() session.State
}

// Guard evaluates navigations against the live session.
type Guard struct {
	sessions SessionReader
	routes   RouteTable
}

func New(sessions SessionReader, routes RouteTable) *Guard {
	if routes == nil {
		routes = DefaultRoutes()
	}
	return &Guard{sessions: sessions, routes: routes}
}

// Protected reports whether path needs a session.
func (g *Guard) Protected(path string) bool {
	_, ok := g.routes.Match(path)
	return ok
}

// Check decides a navigation to path. Unprotected paths always render. The
// store is the only writer of durable storage, so its snapshot serves as both
// the context role and the stored role.
func (g *Guard) Check(path string) Decision {
	rule, ok := g.routes.Match(path)
	if !ok {
		return Decision{Outcome: Render}
	}
	st := g.sessions.Snapshot()
	return Evaluate(Input{
		Token:        st.Token,
		ContextRole:  st.Role,
		StoredRole:   st.Role,
		Path:         path,
		AllowedRoles: rule.Roles,
	})
}
