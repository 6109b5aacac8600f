package domain

import "errors"

var (
	// ErrKeyNotFound is returned by a Store when a key has never been written.
	ErrKeyNotFound = errors.New("key not found")

	ErrUserNotFound   = errors.New("user not found")
	ErrUserBanned     = errors.New("user is banned")
	ErrRecordNotFound = errors.New("record not found")
	ErrNoSession      = errors.New("no active session")
	ErrForbidden      = errors.New("access forbidden")
)
