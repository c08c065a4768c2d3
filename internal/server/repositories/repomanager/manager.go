// Package repomanager selects, opens and prepares the account store backend
// named in the server configuration.
package repomanager

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/accountregistry/internal/server/config"
	"github.com/dmitrijs2005/accountregistry/internal/server/repositories/accounts"
)

// RepositoryManager owns the connection behind an account store.
type RepositoryManager interface {
	// RunMigrations prepares the backend schema, if it has one.
	RunMigrations(ctx context.Context) error
	Accounts() accounts.Repository
	Close() error
}

// NewRepositoryManager opens the backend chosen by cfg.StorageType.
func NewRepositoryManager(ctx context.Context, cfg *config.Config) (RepositoryManager, error) {
	switch cfg.StorageType {
	case config.StoragePostgres:
		db, err := OpenPostgres(ctx, cfg.DatabaseDSN)
		if err != nil {
			return nil, err
		}
		return NewPostgresRepositoryManager(db), nil
	case config.StorageRedis:
		client, err := OpenRedis(ctx, cfg.RedisURL)
		if err != nil {
			return nil, err
		}
		return NewRedisRepositoryManager(client, cfg.RedisKeyPrefix), nil
	case config.StorageMemory:
		return NewMemoryRepositoryManager(), nil
	default:
		return nil, fmt.Errorf("unknown storage type %q", cfg.StorageType)
	}
}
