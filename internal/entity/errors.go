// Package entity defines the entities and errors used in the application.
// Concrete errors wrap one of the category errors, so callers can branch on
// the category with errors.Is without knowing every specific failure.
package entity

import (
	"errors"
	"fmt"
)

// Error categories.
var (
	// ErrValidation marks malformed input the caller can correct.
	ErrValidation = errors.New("validation failed")
	// ErrConflict marks a uniqueness violation.
	ErrConflict = errors.New("conflict")
	// ErrNotFound marks an unknown id or slug on an owner-scoped lookup.
	ErrNotFound = errors.New("not found")
	// ErrStorage marks an unreachable or failing datastore.
	ErrStorage = errors.New("storage unavailable")
	// ErrUnauthorized marks a missing or invalid identity.
	ErrUnauthorized = errors.New("unauthorized")
)

var (
	ErrInvalidSlug = fmt.Errorf("%w: slug must match [a-zA-Z0-9-_]+", ErrValidation)
	ErrInvalidName = fmt.Errorf("%w: name must be between 1 and %d characters", ErrValidation, MaxNameLength)
	ErrInvalidURL  = fmt.Errorf("%w: url must be an absolute http(s) url", ErrValidation)

	ErrSlugExists        = fmt.Errorf("%w: already have a QR code with this slug", ErrConflict)
	ErrEmailExists       = fmt.Errorf("%w: email is already registered", ErrConflict)
	ErrNamespaceAssigned = fmt.Errorf("%w: namespace is already assigned", ErrConflict)
	ErrNamespaceExists   = fmt.Errorf("%w: namespace is taken", ErrConflict)

	ErrUserNotFound     = fmt.Errorf("%w: user not found", ErrNotFound)
	ErrQRCodeNotFound   = fmt.Errorf("%w: qr code not found", ErrNotFound)
	ErrNoActiveRedirect = fmt.Errorf("%w: no active redirect", ErrNotFound)

	ErrInvalidCredentials = fmt.Errorf("%w: invalid email or password", ErrUnauthorized)
	ErrInvalidToken       = fmt.Errorf("%w: invalid token", ErrUnauthorized)
)
