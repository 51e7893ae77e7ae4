package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	uniqueViolationErrCode     = "23505"
	foreignKeyViolationErrCode = "23503"
)

// IsUniqueViolation reports whether err is a unique constraint violation.
// When constraint is not empty, the violated constraint must match it.
func IsUniqueViolation(err error, constraint string) bool {
	return isViolation(err, uniqueViolationErrCode, constraint)
}

// IsForeignKeyViolation reports whether err is a foreign key violation.
func IsForeignKeyViolation(err error) bool {
	return isViolation(err, foreignKeyViolationErrCode, "")
}

func isViolation(err error, code, constraint string) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.SQLState() != code {
		return false
	}
	return constraint == "" || pgErr.ConstraintName == constraint
}
