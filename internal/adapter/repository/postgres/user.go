package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/vadimbarashkov/qr-redirect/internal/entity"
	"github.com/vadimbarashkov/qr-redirect/pkg/postgres"
)

const userColumns = `id, email, password_hash, name, namespace, created_at, updated_at`

type userDB struct {
	ID           int64          `db:"id"`
	Email        string         `db:"email"`
	PasswordHash string         `db:"password_hash"`
	Name         string         `db:"name"`
	Namespace    sql.NullString `db:"namespace"`
	CreatedAt    time.Time      `db:"created_at"`
	UpdatedAt    time.Time      `db:"updated_at"`
}

func (u *userDB) toEntity() *entity.User {
	user := &entity.User{
		ID:           u.ID,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Name:         u.Name,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
	if u.Namespace.Valid {
		ns := u.Namespace.String
		user.Namespace = &ns
	}
	return user
}

type UserRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Save inserts a new user. An empty namespace is stored as NULL.
func (r *UserRepository) Save(ctx context.Context, email, passwordHash, name, namespace string) (*entity.User, error) {
	const op = "adapter.repository.postgres.UserRepository.Save"
	const query = `INSERT INTO users(email, password_hash, name, namespace)
		VALUES ($1, $2, $3, NULLIF($4, ''))
		RETURNING ` + userColumns

	var user userDB

	if err := r.db.GetContext(ctx, &user, query, email, passwordHash, name, namespace); err != nil {
		switch {
		case postgres.IsUniqueViolation(err, usersEmailKey):
			return nil, fmt.Errorf("%s: %w", op, entity.ErrEmailExists)
		case postgres.IsUniqueViolation(err, usersNamespaceKey):
			return nil, fmt.Errorf("%s: %w", op, entity.ErrNamespaceExists)
		}

		return nil, storageError(op, "failed to insert into users table", err)
	}

	return user.toEntity(), nil
}

func (r *UserRepository) RetrieveByID(ctx context.Context, id int64) (*entity.User, error) {
	const op = "adapter.repository.postgres.UserRepository.RetrieveByID"
	const query = `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	var user userDB

	if err := r.db.GetContext(ctx, &user, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, entity.ErrUserNotFound)
		}

		return nil, storageError(op, "failed to get row from users table", err)
	}

	return user.toEntity(), nil
}

func (r *UserRepository) RetrieveByEmail(ctx context.Context, email string) (*entity.User, error) {
	const op = "adapter.repository.postgres.UserRepository.RetrieveByEmail"
	const query = `SELECT ` + userColumns + ` FROM users WHERE email = $1`

	var user userDB

	if err := r.db.GetContext(ctx, &user, query, email); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, entity.ErrUserNotFound)
		}

		return nil, storageError(op, "failed to get row from users table", err)
	}

	return user.toEntity(), nil
}

// UpdateNamespace stores namespace on a user that has none yet. A user that
// already owns a namespace is left untouched and entity.ErrNamespaceAssigned
// is returned.
func (r *UserRepository) UpdateNamespace(ctx context.Context, id int64, namespace string) (*entity.User, error) {
	const op = "adapter.repository.postgres.UserRepository.UpdateNamespace"
	const query = `UPDATE users
		SET namespace = $1, updated_at = NOW()
		WHERE id = $2 AND namespace IS NULL
		RETURNING ` + userColumns
	const existsQuery = `SELECT EXISTS(SELECT 1 FROM users WHERE id = $1)`

	var user userDB

	err := r.db.GetContext(ctx, &user, query, namespace, id)
	if err == nil {
		return user.toEntity(), nil
	}

	if postgres.IsUniqueViolation(err, usersNamespaceKey) {
		return nil, fmt.Errorf("%s: %w", op, entity.ErrNamespaceExists)
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, storageError(op, "failed to update users table row", err)
	}

	var exists bool
	if err := r.db.GetContext(ctx, &exists, existsQuery, id); err != nil {
		return nil, storageError(op, "failed to check user existence", err)
	}
	if !exists {
		return nil, fmt.Errorf("%s: %w", op, entity.ErrUserNotFound)
	}

	return nil, fmt.Errorf("%s: %w", op, entity.ErrNamespaceAssigned)
}
