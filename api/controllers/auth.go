package controllers

import (
	"net/http"

	"github.com/storegate/console/api/responses"
	"github.com/storegate/console/api/validators"
	"github.com/storegate/console/internal/identity"
	"github.com/storegate/console/internal/session"
	pkgerrors "github.com/storegate/console/pkg/errors"
	"github.com/storegate/console/pkg/logger"
)

// LoginRequest captures the credentials sent to the login endpoint.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RegisterRequest captures the registration payload.
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Name     string `json:"name" validate:"required"`
}

// SessionResponse is the read-only session projection exposed to the
// view layer.
type SessionResponse struct {
	User    *identity.Identity `json:"user"`
	Token   string             `json:"token,omitempty"`
	Loading bool               `json:"loading"`
}

func sessionPayload(snap session.Snapshot) SessionResponse {
	return SessionResponse{
		User:    snap.User,
		Token:   snap.Token,
		Loading: snap.Loading,
	}
}

// AuthLogin wires the login operation into the HTTP layer.
func AuthLogin(sessions *session.Manager, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if sessions == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "session manager unavailable"))
			return
		}

		var body LoginRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		snap, err := sessions.Login(r.Context(), body.Email, body.Password)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, sessionPayload(snap))
	}
}

// AuthRegister wires the register operation into the HTTP layer.
func AuthRegister(sessions *session.Manager, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if sessions == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "session manager unavailable"))
			return
		}

		var body RegisterRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		snap, err := sessions.Register(r.Context(), body.Email, body.Password, body.Name)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, sessionPayload(snap))
	}
}

// AuthLogout clears the session. Idempotent; always succeeds.
func AuthLogout(sessions *session.Manager, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if sessions == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "session manager unavailable"))
			return
		}

		sessions.Logout(r.Context())
		responses.WriteSuccess(w, sessionPayload(sessions.Snapshot()))
	}
}

// AuthSession exposes the current session projection.
func AuthSession(sessions *session.Manager, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if sessions == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "session manager unavailable"))
			return
		}

		responses.WriteSuccess(w, sessionPayload(sessions.Snapshot()))
	}
}
