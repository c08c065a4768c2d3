package client

import "errors"

var (
	ErrUnavailable     = errors.New("server unavailable")
	ErrAlreadyExists   = errors.New("account already exists")
	ErrNotFound        = errors.New("account not found")
	ErrInvalidArgument = errors.New("invalid argument")
)
