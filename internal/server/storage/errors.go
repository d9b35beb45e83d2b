package storage

import "errors"

// Common storage errors
var (
	// ErrAccountNotFound indicates that account was not found in storage
	ErrAccountNotFound = errors.New("account not found")

	// ErrAccountExists indicates that account with this id already exists
	ErrAccountExists = errors.New("account already exists")

	// ErrTransferNotFound indicates that transfer was not found
	ErrTransferNotFound = errors.New("transfer not found")

	// ErrConflict indicates that a generated unique value (token, auth code,
	// transfer id) collided with an existing row
	ErrConflict = errors.New("unique constraint conflict")
)
