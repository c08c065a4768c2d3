package repomanager

import (
	"context"

	"github.com/dmitrijs2005/accountregistry/internal/server/repositories/accounts"
)

// MemoryRepositoryManager keeps accounts in process memory. Data is lost on
// restart.
type MemoryRepositoryManager struct {
	accounts *accounts.MemoryRepository
}

func NewMemoryRepositoryManager() *MemoryRepositoryManager {
	return &MemoryRepositoryManager{accounts: accounts.NewMemoryRepository()}
}

func (m *MemoryRepositoryManager) Accounts() accounts.Repository {
	return m.accounts
}

func (m *MemoryRepositoryManager) RunMigrations(context.Context) error { return nil }

func (m *MemoryRepositoryManager) Close() error { return nil }
