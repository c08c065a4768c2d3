// Package accounts contains the account store: a repository interface and
// PostgreSQL, Redis and in-memory implementations of it.
//
// Every implementation matches emails case-insensitively and enforces email
// uniqueness atomically in Insert, so two concurrent inserts with
// case-insensitive-equal emails can never both succeed. The losing insert
// returns an error matching common.ErrorAlreadyExists.
package accounts

import (
	"context"

	"github.com/dmitrijs2005/accountregistry/internal/server/models"
)

type Repository interface {
	// ExistsByEmail reports whether an account with a case-insensitive-equal
	// email has been stored.
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// FindByEmail returns the account with a case-insensitive-equal email or
	// common.ErrorNotFound.
	FindByEmail(ctx context.Context, email string) (*models.Account, error)

	// Insert assigns ID and CreatedAt, persists the account and returns the
	// stored record. The argument is left untouched.
	Insert(ctx context.Context, account *models.Account) (*models.Account, error)
}
