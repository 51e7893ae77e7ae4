package entity

import (
	"net/url"
	"time"
)

// Redirect represents one destination in a QR code's append-only history.
// VisitCount is the only field mutated after creation.
type Redirect struct {
	ID         int64     // ID is the unique identifier of the redirect in the database.
	QRCodeID   int64     // QRCodeID is the QR code the redirect belongs to.
	URL        string    // URL is the destination of the redirect.
	IsActive   bool      // IsActive marks the single current resolution target.
	VisitCount int64     // VisitCount is the number of successful resolutions.
	CreatedAt  time.Time // CreatedAt is the timestamp when the redirect was created.
}

// Resolution is the outcome of resolving a public address.
type Resolution struct {
	URL      string    // URL is where the visitor is sent.
	Fallback bool      // Fallback is set when no active redirect was found.
	Redirect *Redirect // Redirect is the counted redirect, nil on fallback.
}

// ValidateURL checks that raw is an absolute http or https URL with a host.
func ValidateURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil || !u.IsAbs() || u.Host == "" {
		return ErrInvalidURL
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return ErrInvalidURL
	}
	return nil
}
