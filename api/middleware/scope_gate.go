package middleware

import (
	"net/http"
	"strings"

	"github.com/storegate/console/api/responses"
	"github.com/storegate/console/internal/authz"
	"github.com/storegate/console/internal/session"
	pkgerrors "github.com/storegate/console/pkg/errors"
	"github.com/storegate/console/pkg/logger"
)

// sessionSource is the read-only surface the gate needs from the manager.
type sessionSource interface {
	Snapshot() session.Snapshot
}

// Paths the gate never touches: the auth operations themselves plus the
// operational endpoints.
var gateExemptPrefixes = []string{
	"/api/",
	"/health",
	"/metrics",
}

// ScopeGate resolves every view request against the current session
// scope: redirects become 302s, the scoped not-found is a 404, and
// requests during restore get a 503 with Retry-After.
func ScopeGate(sessions sessionSource, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if gateExempt(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			snap := sessions.Snapshot()
			scope := authz.ScopeFor(snap)

			ctx := r.Context()
			if logg != nil {
				ctx = logg.WithScope(ctx, scope.String())
				if snap.User != nil {
					ctx = logg.WithActor(ctx, snap.User.Email, snap.User.Role.String())
				}
			}

			switch decision := authz.Resolve(scope, r.URL.Path); decision.Action {
			case authz.ActionAllow:
				next.ServeHTTP(w, r.WithContext(ctx))
			case authz.ActionRedirect:
				http.Redirect(w, r, decision.Location, http.StatusFound)
			case authz.ActionNotFound:
				responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "view not found"))
			case authz.ActionUnavailable:
				w.Header().Set("Retry-After", "1")
				responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeDependency, "session restoring"))
			}
		})
	}
}

func gateExempt(path string) bool {
	for _, prefix := range gateExemptPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}
