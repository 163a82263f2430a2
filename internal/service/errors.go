package service

import "errors"

var (
	ErrInvalidInput       = errors.New("missing or invalid field")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrItemNotFound       = errors.New("item not found in cart")

	// errNoChange aborts a mutation without a write; the mutation still
	// reports success (idempotent removals, favorite re-adds).
	errNoChange = errors.New("no change")
)
