package entity

import "time"

// User represents a registered account.
type User struct {
	ID           int64     // ID is the unique identifier of the user in the database.
	Email        string    // Email is the login of the user, unique across accounts.
	PasswordHash string    // PasswordHash is the encoded argon2id hash of the password.
	Name         string    // Name is the display name of the user.
	Namespace    *string   // Namespace is the opaque token qualifying the user's slugs. Nil until assigned.
	CreatedAt    time.Time // CreatedAt is the timestamp when the user registered.
	UpdatedAt    time.Time // UpdatedAt is the timestamp when the user was last updated.
}

// HasNamespace reports whether a namespace has been assigned to the user.
func (u *User) HasNamespace() bool {
	return u.Namespace != nil && *u.Namespace != ""
}
