package entity

import (
	"regexp"
	"time"
	"unicode/utf8"
)

const (
	// MaxSlugLength is the maximum length of a slug in bytes.
	MaxSlugLength = 64
	// MaxNameLength is the maximum length of a QR code name in characters.
	MaxNameLength = 100
)

var slugRe = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// QRCode represents a named code owned by a user and addressed by namespace/slug.
type QRCode struct {
	ID             int64     // ID is the unique identifier of the QR code in the database.
	UserID         int64     // UserID is the owner of the QR code.
	Name           string    // Name is the display name of the QR code.
	Slug           string    // Slug is unique within the owner's namespace only.
	Namespace      string    // Namespace is the owner's namespace token.
	ActiveRedirect *Redirect // ActiveRedirect is the current resolution target, if any.
	CreatedAt      time.Time // CreatedAt is the timestamp when the QR code was created.
}

// Address returns the fully-qualified address of the QR code.
func (q *QRCode) Address() string {
	return q.Namespace + "/" + q.Slug
}

// ValidateSlug checks the slug against the allowed character set.
func ValidateSlug(slug string) error {
	if slug == "" || len(slug) > MaxSlugLength || !slugRe.MatchString(slug) {
		return ErrInvalidSlug
	}
	return nil
}

// ValidateName checks that the display name is present and not too long.
func ValidateName(name string) error {
	n := utf8.RuneCountInString(name)
	if n == 0 || n > MaxNameLength {
		return ErrInvalidName
	}
	return nil
}
