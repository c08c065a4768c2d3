package client

import "time"

// NewAccount is the input of CreateAccount. PasswordHash is sent as is; the
// server never inspects it.
type NewAccount struct {
	Email        string
	FirstName    string
	LastName     string
	PasswordHash string
	Semester     uint16
}

// Account is a registered account as returned by the server.
type Account struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	PasswordHash string    `json:"-"`
	Semester     uint16    `json:"semester"`
	CreatedAt    time.Time `json:"created_at"`
}
