package accounts

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/accountregistry/internal/common"
	"github.com/dmitrijs2005/accountregistry/internal/server/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

// uniqueViolation is the SQLSTATE raised when ux_accounts_email_lower rejects
// an insert.
const uniqueViolation = "23505"

// DBTX is the subset of database/sql used by the repository.
// Both *sql.DB and *sql.Tx satisfy this interface.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// newID is a seam for tests.
var newID = uuid.NewString

// PostgresRepository stores accounts in the accounts table. Uniqueness relies
// on the unique index over lower(email) created by the migrations.
type PostgresRepository struct {
	db DBTX
}

func NewPostgresRepository(db DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

var _ Repository = (*PostgresRepository)(nil)

func (r *PostgresRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	query :=
		`SELECT EXISTS (SELECT 1 FROM accounts WHERE lower(email) = lower($1))`

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, email).Scan(&exists); err != nil {
		return false, fmt.Errorf("%w: %w", common.ErrorStorage, err)
	}

	return exists, nil
}

func (r *PostgresRepository) FindByEmail(ctx context.Context, email string) (*models.Account, error) {
	query :=
		`SELECT id, email, first_name, last_name, password_hash, semester, created_at FROM accounts
		 WHERE lower(email) = lower($1)
		 `

	a := &models.Account{}
	err := r.db.QueryRowContext(ctx, query, email).
		Scan(&a.ID, &a.Email, &a.FirstName, &a.LastName, &a.PasswordHash, &a.Semester, &a.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("%w: %w", common.ErrorStorage, err)
	}

	return a, nil
}

func (r *PostgresRepository) Insert(ctx context.Context, account *models.Account) (*models.Account, error) {
	query :=
		`INSERT INTO accounts (id, email, first_name, last_name, password_hash, semester)
         VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING created_at
		 `

	stored := *account
	stored.ID = newID()

	err := r.db.QueryRowContext(ctx, query,
		stored.ID, stored.Email, stored.FirstName, stored.LastName, stored.PasswordHash, int32(stored.Semester)).
		Scan(&stored.CreatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, fmt.Errorf("%w: %s", common.ErrorAlreadyExists, account.Email)
		}
		return nil, fmt.Errorf("%w: %w", common.ErrorStorage, err)
	}

	stored.CreatedAt = stored.CreatedAt.UTC()
	return &stored, nil
}
