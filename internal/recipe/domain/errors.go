package domain

import "errors"

var (
	// ErrNotFound is returned when a valid request matches no record
	ErrNotFound = errors.New("recipe not found")

	// ErrRemoteUnavailable is returned when the recipe API cannot be reached
	// or returns an unusable response; the caller may retry
	ErrRemoteUnavailable = errors.New("recipe API unavailable")

	// ErrLocalStore is returned when the local cache database fails
	ErrLocalStore = errors.New("local store error")

	// ErrPermissionDenied is returned when the cloud store rejects an
	// operation; it signals an identity or session problem and must not be
	// silently retried
	ErrPermissionDenied = errors.New("cloud store permission denied")

	// ErrInvalidState is returned when an operation requires an
	// authenticated user and none is present
	ErrInvalidState = errors.New("no authenticated user")
)
