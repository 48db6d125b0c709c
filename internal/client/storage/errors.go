package storage

import "errors"

// Common client storage errors
var (
	// ErrTokensNotFound indicates that no credential pair is stored
	ErrTokensNotFound = errors.New("tokens not found")

	// ErrUserNotFound indicates that no cached user profile exists
	ErrUserNotFound = errors.New("cached user not found")

	// ErrItemNotFound indicates that a queue item does not exist
	ErrItemNotFound = errors.New("queue item not found")

	// ErrStorageClosed indicates that storage is closed
	ErrStorageClosed = errors.New("storage is closed")
)
