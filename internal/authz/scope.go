// Package authz maps session state to the reachable route tree. It is
// pure decision logic: it never mutates the session and performs no I/O.
package authz

import (
	"github.com/storegate/console/internal/session"
	"github.com/storegate/console/pkg/enums"
)

// Scope is the route-tree access state derived from a session snapshot.
// The four values are exhaustive and mutually exclusive over every
// possible snapshot.
type Scope string

const (
	// ScopeRestoring blocks all views while the initial restore or an
	// authentication attempt is in flight.
	ScopeRestoring Scope = "restoring"
	// ScopeUnauthenticated reaches login and register only.
	ScopeUnauthenticated Scope = "unauthenticated"
	// ScopeAdmin reaches the admin subtree only.
	ScopeAdmin Scope = "admin"
	// ScopeUser reaches the storefront view only.
	ScopeUser Scope = "user"
)

// String implements fmt.Stringer.
func (s Scope) String() string {
	return string(s)
}

// ScopeFor derives the scope for a snapshot. Transition between scopes is
// driven entirely by session mutation; this function is total.
func ScopeFor(snap session.Snapshot) Scope {
	switch {
	case snap.Loading:
		return ScopeRestoring
	case snap.User == nil:
		return ScopeUnauthenticated
	case snap.User.Role == enums.RoleAdmin:
		return ScopeAdmin
	default:
		return ScopeUser
	}
}
