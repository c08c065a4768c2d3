package accounts

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/accountregistry/internal/common"
	"github.com/dmitrijs2005/accountregistry/internal/server/models"
	"github.com/redis/go-redis/v9"
)

// RedisRepository stores each account as a JSON document under a key derived
// from the normalized email. Insert uses SETNX on that key, which makes the
// uniqueness check and the write a single atomic command.
type RedisRepository struct {
	client    *redis.Client
	keyPrefix string
	now       func() time.Time
}

func NewRedisRepository(client *redis.Client, keyPrefix string) *RedisRepository {
	return &RedisRepository{client: client, keyPrefix: keyPrefix, now: time.Now}
}

var _ Repository = (*RedisRepository)(nil)

func (r *RedisRepository) emailKey(email string) string {
	return r.keyPrefix + ":email:" + models.NormalizeEmail(email)
}

func (r *RedisRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	n, err := r.client.Exists(ctx, r.emailKey(email)).Result()
	if err != nil {
		return false, fmt.Errorf("%w: %w", common.ErrorStorage, err)
	}
	return n > 0, nil
}

func (r *RedisRepository) FindByEmail(ctx context.Context, email string) (*models.Account, error) {
	data, err := r.client.Get(ctx, r.emailKey(email)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("%w: %w", common.ErrorStorage, err)
	}

	a := &models.Account{}
	if err := json.Unmarshal(data, a); err != nil {
		return nil, fmt.Errorf("%w: decode account: %w", common.ErrorStorage, err)
	}

	return a, nil
}

func (r *RedisRepository) Insert(ctx context.Context, account *models.Account) (*models.Account, error) {
	stored := *account
	stored.ID = newID()
	stored.CreatedAt = r.now().UTC()

	data, err := json.Marshal(&stored)
	if err != nil {
		return nil, fmt.Errorf("%w: encode account: %w", common.ErrorStorage, err)
	}

	ok, err := r.client.SetNX(ctx, r.emailKey(stored.Email), data, 0).Result()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrorStorage, err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s", common.ErrorAlreadyExists, account.Email)
	}

	return &stored, nil
}
