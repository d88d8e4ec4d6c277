// Package session owns the single authenticated session of a running
// console instance. The manager is the only component that mutates the
// session or the credential store; everything else reads snapshots.
package session

import (
	"github.com/storegate/console/internal/identity"
)

// Credential store keys. The pair is written user-first and purged
// token-first so the store never holds a token without a matching user.
const (
	keyToken = "token"
	keyUser  = "user"
)

// Snapshot is the read-only projection of the session handed to the
// authorizer and the view layer. Token is set if and only if User is set.
type Snapshot struct {
	User    *identity.Identity
	Token   string
	Loading bool
}

// Authenticated reports whether the snapshot carries an identity.
func (s Snapshot) Authenticated() bool {
	return s.User != nil
}
