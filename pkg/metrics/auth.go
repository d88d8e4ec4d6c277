package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Auth outcome labels.
const (
	OutcomeSuccess         = "success"
	OutcomeRejected        = "rejected"
	OutcomeInvalidResponse = "invalid_response"
	OutcomeFallback        = "fallback"
	OutcomeError           = "error"
)

// Restore outcome labels.
const (
	RestoreHit     = "hit"
	RestoreEmpty   = "empty"
	RestoreCorrupt = "corrupt"
	RestoreExpired = "expired"
)

// AuthMetrics records authentication attempt and restore outcomes.
type AuthMetrics struct {
	attempts *prometheus.CounterVec
	restores *prometheus.CounterVec
}

// NewAuthMetrics registers the auth metrics on the provided registerer.
func NewAuthMetrics(reg prometheus.Registerer) *AuthMetrics {
	if reg == nil {
		return &AuthMetrics{}
	}
	attempts := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "auth_attempts_total",
		Help: "Authentication attempts by operation and outcome.",
	}, []string{"operation", "outcome"})
	restores := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "session_restores_total",
		Help: "Session restore attempts by outcome.",
	}, []string{"outcome"})
	reg.MustRegister(attempts, restores)
	return &AuthMetrics{
		attempts: attempts,
		restores: restores,
	}
}

// IncAttempt increments the attempt counter for the given operation/outcome.
func (a *AuthMetrics) IncAttempt(operation, outcome string) {
	if a == nil || a.attempts == nil {
		return
	}
	a.attempts.WithLabelValues(normalizeLabel(operation), normalizeLabel(outcome)).Inc()
}

// IncRestore increments the restore counter for the given outcome.
func (a *AuthMetrics) IncRestore(outcome string) {
	if a == nil || a.restores == nil {
		return
	}
	a.restores.WithLabelValues(normalizeLabel(outcome)).Inc()
}

func normalizeLabel(value string) string {
	if value == "" {
		return "unknown"
	}
	return value
}
