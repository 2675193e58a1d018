package domain

import "errors"

// Authentication and authorization.
var (
	ErrUnauthenticated    = errors.New("not authenticated")
	ErrExpiredToken       = errors.New("token expired")
	ErrInvalidToken       = errors.New("invalid token")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountDisabled    = errors.New("user account is disabled")
	ErrForbidden          = errors.New("admin access required")
)

// Lookups and writes.
var (
	ErrUserNotFound      = errors.New("user not found")
	ErrMenuItemNotFound  = errors.New("menu item not found")
	ErrDuplicateUsername = errors.New("username already exists")
	ErrSelfDelete        = errors.New("cannot delete yourself")
)

// Input validation.
var (
	ErrInvalidRole     = errors.New("role must be one of: admin, editor")
	ErrInvalidCategory = errors.New("category must be one of: breakfast, lunch, dinner")
	ErrInvalidInput    = errors.New("invalid input")
)

// ErrUnavailable means the backing store could not be reached in time.
var ErrUnavailable = errors.New("database unavailable")
