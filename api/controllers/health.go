package controllers

import (
	"net/http"

	"github.com/storegate/console/api/responses"
	"github.com/storegate/console/internal/credstore"
	"github.com/storegate/console/pkg/config"
	pkgerrors "github.com/storegate/console/pkg/errors"
	"github.com/storegate/console/pkg/logger"
)

// HealthLive reports process liveness.
func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, map[string]string{
			"status": "ok",
			"env":    cfg.App.Env,
		})
	}
}

// HealthReady reports whether the credential store is reachable. The
// identity service is deliberately not probed: the console stays usable
// without it through the offline fallback.
func HealthReady(cfg *config.Config, logg *logger.Logger, store credstore.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if pinger, ok := store.(credstore.Pinger); ok {
			if err := pinger.Ping(r.Context()); err != nil {
				responses.WriteError(r.Context(), logg, w,
					pkgerrors.Wrap(pkgerrors.CodeDependency, err, "credential store unreachable"))
				return
			}
		}
		responses.WriteSuccess(w, map[string]string{"status": "ready"})
	}
}
