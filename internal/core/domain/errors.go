package domain

import "errors"

// Common domain errors
var (
	ErrNotFound       = errors.New("resource not found")
	ErrInvalidInput   = errors.New("invalid input")
	ErrUnauthorized   = errors.New("unauthorized")
	ErrForbidden      = errors.New("forbidden")
	ErrDuplicateEntry = errors.New("duplicate entry")
)

// Catalog errors
var (
	ErrProductNotFound = errors.New("product not found in the archive")
)

// Auth errors. The two user-facing messages are fixed copy surfaced
// verbatim by the auth endpoints.
var (
	ErrCredentialsNotRecognized = errors.New("credentials not recognized in the archive")
	ErrIdentityArchived         = errors.New("this identity is already archived")
	ErrUserNotFound             = errors.New("user not found")
)
