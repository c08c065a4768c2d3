// Package services contains server-side business logic. AccountService
// registers accounts and looks them up by email.
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/accountregistry/internal/common"
	"github.com/dmitrijs2005/accountregistry/internal/server/models"
	"github.com/dmitrijs2005/accountregistry/internal/server/repositories/accounts"
)

// AccountService validates input and runs the duplicate-check-then-insert
// protocol against an accounts.Repository. It keeps no state between calls.
type AccountService struct {
	repo accounts.Repository
}

func NewAccountService(repo accounts.Repository) *AccountService {
	return &AccountService{repo: repo}
}

// Register creates an account for email.
//
// A case-insensitive collision yields *DuplicateEmailError, both when the
// pre-check sees an existing account and when the store rejects the insert
// because a concurrent registration got there first. Invalid input yields
// *ValidationError and never reaches the store.
func (s *AccountService) Register(ctx context.Context, email, firstName, lastName, passwordHash string, semester uint16) (*models.Account, error) {
	if err := validateRegistration(registration{Email: email, FirstName: firstName, LastName: lastName}); err != nil {
		return nil, err
	}

	exists, err := s.repo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("check email: %w", err)
	}
	if exists {
		return nil, &DuplicateEmailError{Email: email}
	}

	created, err := s.repo.Insert(ctx, &models.Account{
		Email:        email,
		FirstName:    firstName,
		LastName:     lastName,
		PasswordHash: passwordHash,
		Semester:     semester,
	})
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, &DuplicateEmailError{Email: email}
		}
		return nil, fmt.Errorf("insert account: %w", err)
	}

	return created, nil
}

// Lookup returns the account whose email matches, ignoring case, or
// *NotFoundError.
func (s *AccountService) Lookup(ctx context.Context, email string) (*models.Account, error) {
	acc, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, &NotFoundError{Email: email}
		}
		return nil, fmt.Errorf("find account: %w", err)
	}
	return acc, nil
}
