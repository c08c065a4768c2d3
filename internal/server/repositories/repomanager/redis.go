package repomanager

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/accountregistry/internal/server/repositories/accounts"
	"github.com/redis/go-redis/v9"
)

// RedisRepositoryManager vends the Redis account store.
type RedisRepositoryManager struct {
	client   *redis.Client
	accounts *accounts.RedisRepository
}

// OpenRedis parses url, connects and pings the server.
func OpenRedis(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return client, nil
}

func NewRedisRepositoryManager(client *redis.Client, keyPrefix string) *RedisRepositoryManager {
	return &RedisRepositoryManager{client: client, accounts: accounts.NewRedisRepository(client, keyPrefix)}
}

func (m *RedisRepositoryManager) Accounts() accounts.Repository {
	return m.accounts
}

// RunMigrations only checks connectivity; Redis has no schema.
func (m *RedisRepositoryManager) RunMigrations(ctx context.Context) error {
	return m.client.Ping(ctx).Err()
}

func (m *RedisRepositoryManager) Close() error {
	return m.client.Close()
}
