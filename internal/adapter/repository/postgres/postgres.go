// Package postgres implements the user, QR code and redirect repositories on
// top of sqlx and the pgx driver.
package postgres

import (
	"errors"
	"fmt"

	"github.com/vadimbarashkov/qr-redirect/internal/entity"
)

const (
	usersEmailKey        = "users_email_key"
	usersNamespaceKey    = "users_namespace_key"
	qrCodesUserIDSlugKey = "qr_codes_user_id_slug_key"
)

// storageError wraps err as an entity.ErrStorage unless it already carries a
// domain category.
func storageError(op, msg string, err error) error {
	if isDomainError(err) {
		return fmt.Errorf("%s: %w", op, err)
	}
	return fmt.Errorf("%s: %s: %w: %w", op, msg, entity.ErrStorage, err)
}

func isDomainError(err error) bool {
	return errors.Is(err, entity.ErrNotFound) ||
		errors.Is(err, entity.ErrConflict) ||
		errors.Is(err, entity.ErrValidation)
}
