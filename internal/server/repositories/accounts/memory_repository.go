package accounts

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/accountregistry/internal/common"
	"github.com/dmitrijs2005/accountregistry/internal/server/models"
)

// MemoryRepository keeps accounts in process memory. Insert holds the write
// lock across the uniqueness check and the write.
type MemoryRepository struct {
	mu         sync.RWMutex
	accounts   map[string]*models.Account
	emailIndex map[string]string
	now        func() time.Time
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		accounts:   make(map[string]*models.Account),
		emailIndex: make(map[string]string),
		now:        time.Now,
	}
}

var _ Repository = (*MemoryRepository)(nil)

func (r *MemoryRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.emailIndex[models.NormalizeEmail(email)]
	return ok, nil
}

func (r *MemoryRepository) FindByEmail(ctx context.Context, email string) (*models.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.emailIndex[models.NormalizeEmail(email)]
	if !ok {
		return nil, common.ErrorNotFound
	}

	a := *r.accounts[id]
	return &a, nil
}

func (r *MemoryRepository) Insert(ctx context.Context, account *models.Account) (*models.Account, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrorStorage, err)
	}

	key := models.NormalizeEmail(account.Email)

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.emailIndex[key]; ok {
		return nil, fmt.Errorf("%w: %s", common.ErrorAlreadyExists, account.Email)
	}

	stored := *account
	stored.ID = newID()
	stored.CreatedAt = r.now().UTC()

	r.accounts[stored.ID] = &stored
	r.emailIndex[key] = stored.ID

	out := stored
	return &out, nil
}

// Len returns the number of stored accounts.
func (r *MemoryRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.accounts)
}
