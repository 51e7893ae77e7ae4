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

const redirectColumns = `id, qr_code_id, url, is_active, visit_count, created_at`

type redirectDB struct {
	ID         int64     `db:"id"`
	QRCodeID   int64     `db:"qr_code_id"`
	URL        string    `db:"url"`
	IsActive   bool      `db:"is_active"`
	VisitCount int64     `db:"visit_count"`
	CreatedAt  time.Time `db:"created_at"`
}

func (r *redirectDB) toEntity() *entity.Redirect {
	return &entity.Redirect{
		ID:         r.ID,
		QRCodeID:   r.QRCodeID,
		URL:        r.URL,
		IsActive:   r.IsActive,
		VisitCount: r.VisitCount,
		CreatedAt:  r.CreatedAt,
	}
}

// RedirectRepository owns the two operations that must be atomic: switching
// the active redirect and counting a visit.
//
// Both lock the parent qr_codes row first, FOR UPDATE when switching and
// FOR SHARE when resolving. Under READ COMMITTED a resolver that waited for a
// switch re-reads redirects with a fresh snapshot, so it sees exactly one
// active redirect: the old one before the switch commits, the new one after.
type RedirectRepository struct {
	db *sqlx.DB
}

func NewRedirectRepository(db *sqlx.DB) *RedirectRepository {
	return &RedirectRepository{db: db}
}

// SwitchActive deactivates every active redirect of the QR code and inserts a
// new active one with a zero visit count, in one transaction.
func (r *RedirectRepository) SwitchActive(ctx context.Context, userID, qrCodeID int64, url string) (*entity.Redirect, error) {
	const op = "adapter.repository.postgres.RedirectRepository.SwitchActive"
	const lockQuery = `SELECT id FROM qr_codes WHERE id = $1 AND user_id = $2 FOR UPDATE`
	const deactivateQuery = `UPDATE redirects SET is_active = FALSE WHERE qr_code_id = $1 AND is_active`
	const insertQuery = `INSERT INTO redirects(qr_code_id, url, is_active, visit_count)
		VALUES ($1, $2, TRUE, 0)
		RETURNING ` + redirectColumns

	var redirect redirectDB

	err := postgres.WithTx(ctx, r.db, nil, func(tx *sqlx.Tx) error {
		var id int64
		if err := tx.GetContext(ctx, &id, lockQuery, qrCodeID, userID); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return entity.ErrQRCodeNotFound
			}
			return fmt.Errorf("failed to lock qr_codes table row: %w", err)
		}

		if _, err := tx.ExecContext(ctx, deactivateQuery, qrCodeID); err != nil {
			return fmt.Errorf("failed to deactivate redirects: %w", err)
		}

		if err := tx.GetContext(ctx, &redirect, insertQuery, qrCodeID, url); err != nil {
			return fmt.Errorf("failed to insert into redirects table: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, storageError(op, "failed to switch active redirect", err)
	}

	return redirect.toEntity(), nil
}

// ResolveAndCount finds the active redirect of namespace/slug and increments
// its visit count by one, returning the updated row.
func (r *RedirectRepository) ResolveAndCount(ctx context.Context, namespace, slug string) (*entity.Redirect, error) {
	const op = "adapter.repository.postgres.RedirectRepository.ResolveAndCount"
	const lockQuery = `SELECT q.id
		FROM qr_codes q
		JOIN users u ON u.id = q.user_id
		WHERE u.namespace = $1 AND q.slug = $2
		FOR SHARE OF q`
	const countQuery = `UPDATE redirects
		SET visit_count = visit_count + 1
		WHERE id = (
			SELECT id FROM redirects
			WHERE qr_code_id = $1 AND is_active
			ORDER BY created_at DESC, id DESC
			LIMIT 1
		)
		RETURNING ` + redirectColumns

	var redirect redirectDB

	err := postgres.WithTx(ctx, r.db, nil, func(tx *sqlx.Tx) error {
		var qrCodeID int64
		if err := tx.GetContext(ctx, &qrCodeID, lockQuery, namespace, slug); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return entity.ErrQRCodeNotFound
			}
			return fmt.Errorf("failed to lock qr_codes table row: %w", err)
		}

		if err := tx.GetContext(ctx, &redirect, countQuery, qrCodeID); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return entity.ErrNoActiveRedirect
			}
			return fmt.Errorf("failed to update redirects table row: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, storageError(op, "failed to resolve redirect", err)
	}

	return redirect.toEntity(), nil
}

// ListByQRCode returns the redirect history of a QR code, newest first.
func (r *RedirectRepository) ListByQRCode(ctx context.Context, qrCodeID int64) ([]*entity.Redirect, error) {
	const op = "adapter.repository.postgres.RedirectRepository.ListByQRCode"
	const query = `SELECT ` + redirectColumns + `
		FROM redirects
		WHERE qr_code_id = $1
		ORDER BY created_at DESC, id DESC`

	var rows []redirectDB

	if err := r.db.SelectContext(ctx, &rows, query, qrCodeID); err != nil {
		return nil, storageError(op, "failed to select rows from redirects table", err)
	}

	redirects := make([]*entity.Redirect, 0, len(rows))
	for i := range rows {
		redirects = append(redirects, rows[i].toEntity())
	}

	return redirects, nil
}
