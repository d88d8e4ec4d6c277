// Package credstore provides durable key/value persistence for session
// credentials. It is not a trust boundary: values are stored in plaintext
// and readable by anything with access to the backing storage.
package credstore

import (
	"context"
	"fmt"
	"strings"

	"github.com/storegate/console/pkg/config"
	"github.com/storegate/console/pkg/logger"
)

// Store is the persistence port the session manager writes through. The
// underlying backends offer no multi-key transaction, so callers are
// responsible for sequencing writes and removals.
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
	Close() error
}

// Pinger exposes the health-check surface of backends that have one.
type Pinger interface {
	Ping(ctx context.Context) error
}

// New builds the store backend selected by configuration.
func New(ctx context.Context, cfg config.StoreConfig, logg *logger.Logger) (Store, error) {
	switch strings.ToLower(cfg.Backend) {
	case config.StoreBackendRedis:
		return NewRedisStore(ctx, cfg)
	case config.StoreBackendSQLite:
		return NewSQLiteStore(cfg.SQLitePath)
	case config.StoreBackendMemory:
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.Backend)
	}
}
