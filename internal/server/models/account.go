package models

import (
	"strings"
	"time"
)

// Account is a registered user record. ID and CreatedAt are assigned by the
// store on insert and never change afterwards.
type Account struct {
	ID           string    `json:"id" db:"id"`
	Email        string    `json:"email" db:"email"`
	FirstName    string    `json:"first_name" db:"first_name"`
	LastName     string    `json:"last_name" db:"last_name"`
	PasswordHash string    `json:"password_hash" db:"password_hash"`
	Semester     uint16    `json:"semester" db:"semester"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// NormalizeEmail returns the key under which email uniqueness is enforced.
// It uses Go's Unicode lower-casing; PostgreSQL's lower() depends on the
// database collation, so the backends may disagree on non-ASCII addresses
// (U+212A KELVIN SIGN lowers to "k" here).
func NormalizeEmail(email string) string {
	return strings.ToLower(email)
}
