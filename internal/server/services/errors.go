package services

import (
	"fmt"
	"strings"

	"github.com/dmitrijs2005/accountregistry/internal/common"
)

// DuplicateEmailError reports a registration whose email collides, ignoring
// case, with an existing account.
type DuplicateEmailError struct {
	Email string
}

func (e *DuplicateEmailError) Error() string {
	return fmt.Sprintf("account with email %q already exists", e.Email)
}

func (e *DuplicateEmailError) Unwrap() error { return common.ErrorAlreadyExists }

// NotFoundError reports a lookup that matched no account.
type NotFoundError struct {
	Email string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("account with email %q not found", e.Email)
}

func (e *NotFoundError) Unwrap() error { return common.ErrorNotFound }

// FieldViolation describes one rejected input field.
type FieldViolation struct {
	Field   string
	Message string
}

// ValidationError lists every field that failed validation.
type ValidationError struct {
	Violations []FieldViolation
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, v.Field+": "+v.Message)
	}
	return "invalid account: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error { return common.ErrorValidation }
