package authz

import "strings"

// Well-known view paths.
const (
	LoginPath    = "/login"
	RegisterPath = "/register"
	UserHome     = "/"
	AdminHome    = "/admin/dashboard"
)

// adminViews is the admin subtree. Anything else an admin requests
// redirects to AdminHome.
var adminViews = map[string]struct{}{
	"/admin/dashboard": {},
	"/admin/orders":    {},
	"/admin/members":   {},
	"/admin/stores":    {},
}

// Action is the outcome kind of a route resolution.
type Action int

const (
	// ActionAllow serves the requested view.
	ActionAllow Action = iota
	// ActionRedirect sends the caller to Decision.Location.
	ActionRedirect
	// ActionNotFound renders the scoped not-found view.
	ActionNotFound
	// ActionUnavailable blocks the request until restore completes.
	ActionUnavailable
)

// Decision is the resolved outcome for one (scope, path) pair.
type Decision struct {
	Action   Action
	Location string
}

func allow() Decision             { return Decision{Action: ActionAllow} }
func redirect(to string) Decision { return Decision{Action: ActionRedirect, Location: to} }
func notFound() Decision          { return Decision{Action: ActionNotFound} }
func unavailable() Decision       { return Decision{Action: ActionUnavailable} }

// Resolve maps a requested path to a decision under the given scope.
func Resolve(scope Scope, path string) Decision {
	path = normalize(path)

	switch scope {
	case ScopeRestoring:
		return unavailable()

	case ScopeUnauthenticated:
		if path == LoginPath || path == RegisterPath {
			return allow()
		}
		return redirect(LoginPath)

	case ScopeAdmin:
		if _, ok := adminViews[path]; ok {
			return allow()
		}
		return redirect(AdminHome)

	case ScopeUser:
		switch path {
		case UserHome:
			return allow()
		case LoginPath, RegisterPath:
			return redirect(UserHome)
		default:
			// Scoped not-found: unknown paths stay inside user access
			// instead of redirecting.
			return notFound()
		}
	}

	// Unreachable: ScopeFor is total over the four scopes above.
	return notFound()
}

func normalize(path string) string {
	if path == "" {
		return UserHome
	}
	if len(path) > 1 {
		path = strings.TrimRight(path, "/")
		if path == "" {
			return UserHome
		}
	}
	return path
}
