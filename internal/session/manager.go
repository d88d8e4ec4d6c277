package session

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/storegate/console/internal/credstore"
	"github.com/storegate/console/internal/identity"
	pkgerrors "github.com/storegate/console/pkg/errors"
	"github.com/storegate/console/pkg/logger"
	"github.com/storegate/console/pkg/metrics"
)

// ErrAuthInFlight rejects a login/register issued while another attempt
// or the initial restore is still running.
var ErrAuthInFlight = pkgerrors.New(pkgerrors.CodeConflict, "authentication already in flight")

type identityClient interface {
	Login(ctx context.Context, email, password string) (*identity.Identity, string, error)
	Register(ctx context.Context, email, password, name string) (*identity.Identity, string, error)
}

// ManagerParams bundles the dependencies required to build a session manager.
type ManagerParams struct {
	Store           credstore.Store
	Identity        identityClient
	OfflineFallback bool
	Logger          *logger.Logger
	Metrics         *metrics.AuthMetrics
	Now             func() time.Time
}

// Manager holds the process-wide session. It starts loading until
// Restore has run once; serve traffic only after that.
type Manager struct {
	mu      sync.Mutex
	user    *identity.Identity
	token   string
	loading bool

	store           credstore.Store
	idc             identityClient
	offlineFallback bool
	logg            *logger.Logger
	metrics         *metrics.AuthMetrics
	now             func() time.Time
}

// NewManager constructs a session manager with the provided dependencies.
func NewManager(params ManagerParams) (*Manager, error) {
	if params.Store == nil {
		return nil, fmt.Errorf("credential store is required")
	}
	if params.Identity == nil {
		return nil, fmt.Errorf("identity client is required")
	}
	now := params.Now
	if now == nil {
		now = time.Now
	}
	return &Manager{
		loading:         true,
		store:           params.Store,
		idc:             params.Identity,
		offlineFallback: params.OfflineFallback,
		logg:            params.Logger,
		metrics:         params.Metrics,
		now:             now,
	}, nil
}

// Snapshot returns the current read-only session projection.
func (m *Manager) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snapshotLocked()
}

func (m *Manager) snapshotLocked() Snapshot {
	snap := Snapshot{Token: m.token, Loading: m.loading}
	if m.user != nil {
		u := *m.user
		snap.User = &u
	}
	return snap
}

// Restore hydrates the session from the credential store. It runs once
// per process, before routing decisions are made. A malformed or
// half-present record is purged and never surfaced; the session simply
// starts unauthenticated.
func (m *Manager) Restore(ctx context.Context) error {
	m.mu.Lock()
	defer func() {
		m.loading = false
		m.mu.Unlock()
	}()

	token, haveToken, err := m.store.Get(ctx, keyToken)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "read credential store")
	}
	rawUser, haveUser, err := m.store.Get(ctx, keyUser)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "read credential store")
	}

	if !haveToken && !haveUser {
		m.metrics.IncRestore(metrics.RestoreEmpty)
		return nil
	}
	if !haveToken || !haveUser {
		m.purgeLocked(ctx)
		m.metrics.IncRestore(metrics.RestoreCorrupt)
		m.warn(ctx, "half-present credential record purged")
		return nil
	}

	var user identity.Identity
	if err := json.Unmarshal([]byte(rawUser), &user); err != nil || !user.Valid() {
		m.purgeLocked(ctx)
		m.metrics.IncRestore(metrics.RestoreCorrupt)
		m.warn(ctx, "corrupt credential record purged")
		return nil
	}

	if tokenExpired(token, m.now()) {
		m.purgeLocked(ctx)
		m.metrics.IncRestore(metrics.RestoreExpired)
		m.warn(ctx, "expired session token purged")
		return nil
	}

	m.user = &user
	m.token = token
	m.metrics.IncRestore(metrics.RestoreHit)
	return nil
}

// Login authenticates against the identity service. On transport failure
// with the offline fallback enabled it issues a local mock session; on an
// HTTP rejection or malformed body the error propagates and the session
// is left untouched.
func (m *Manager) Login(ctx context.Context, email, password string) (Snapshot, error) {
	return m.authenticate(ctx, "login", func() (*identity.Identity, string, error) {
		return m.idc.Login(ctx, email, password)
	}, func() (*identity.Identity, string) {
		return m.offlineLoginIdentity(email)
	})
}

// Register creates a standard-role identity, with the same success,
// failure, and fallback rules as Login.
func (m *Manager) Register(ctx context.Context, email, password, name string) (Snapshot, error) {
	return m.authenticate(ctx, "register", func() (*identity.Identity, string, error) {
		return m.idc.Register(ctx, email, password, name)
	}, func() (*identity.Identity, string) {
		return m.offlineRegisterIdentity(email, name)
	})
}

func (m *Manager) authenticate(
	ctx context.Context,
	operation string,
	remote func() (*identity.Identity, string, error),
	offline func() (*identity.Identity, string),
) (Snapshot, error) {
	if err := m.begin(); err != nil {
		return m.Snapshot(), err
	}

	user, token, err := remote()
	if err != nil {
		if !identity.IsUnreachable(err) {
			m.metrics.IncAttempt(operation, attemptOutcome(err))
			m.finish()
			return m.Snapshot(), err
		}
		if !m.offlineFallback {
			m.metrics.IncAttempt(operation, metrics.OutcomeError)
			m.finish()
			return m.Snapshot(), pkgerrors.Wrap(pkgerrors.CodeDependency, err, "identity service unreachable")
		}
		user, token = offline()
		m.metrics.IncAttempt(operation, metrics.OutcomeFallback)
		m.warn(ctx, "identity service unreachable, issuing offline session")
	} else {
		m.metrics.IncAttempt(operation, metrics.OutcomeSuccess)
	}

	m.commit(ctx, user, token)
	return m.Snapshot(), nil
}

// Logout clears the session and erases the credential record. It is
// synchronous, idempotent, and never fails; store errors are logged and
// swallowed because the in-memory state is already clear.
func (m *Manager) Logout(ctx context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.user = nil
	m.token = ""
	m.purgeLocked(ctx)
}

// begin flips loading on, rejecting overlapping attempts.
func (m *Manager) begin() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.loading {
		return ErrAuthInFlight
	}
	m.loading = true
	return nil
}

// finish ends a failed attempt; the session was never touched.
func (m *Manager) finish() {
	m.mu.Lock()
	m.loading = false
	m.mu.Unlock()
}

// commit installs the new identity, persists the credential record, and
// only then clears loading, so no reader observes a half-updated pair.
func (m *Manager) commit(ctx context.Context, user *identity.Identity, token string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.user = user
	m.token = token

	encoded, err := json.Marshal(user)
	if err != nil {
		m.error(ctx, "encode credential record", err)
	} else if err := m.store.Set(ctx, keyUser, string(encoded)); err != nil {
		m.error(ctx, "persist user record", err)
	} else if err := m.store.Set(ctx, keyToken, token); err != nil {
		m.error(ctx, "persist session token", err)
	}

	m.loading = false
}

// purgeLocked erases the credential record, token first. Callers hold mu.
func (m *Manager) purgeLocked(ctx context.Context) {
	if err := m.store.Remove(ctx, keyToken); err != nil {
		m.error(ctx, "remove session token", err)
	}
	if err := m.store.Remove(ctx, keyUser); err != nil {
		m.error(ctx, "remove user record", err)
	}
}

func (m *Manager) warn(ctx context.Context, msg string) {
	if m.logg != nil {
		m.logg.Warn(ctx, msg)
	}
}

func (m *Manager) error(ctx context.Context, msg string, err error) {
	if m.logg != nil {
		m.logg.Error(ctx, msg, err)
	}
}

func attemptOutcome(err error) string {
	switch {
	case pkgerrors.Is(err, pkgerrors.CodeAuthRejected):
		return metrics.OutcomeRejected
	case pkgerrors.Is(err, pkgerrors.CodeInvalidResponse):
		return metrics.OutcomeInvalidResponse
	default:
		return metrics.OutcomeError
	}
}
