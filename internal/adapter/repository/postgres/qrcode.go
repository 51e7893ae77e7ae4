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

// qrCodeSelect joins the owner's namespace and the active redirect, if any.
const qrCodeSelect = `SELECT q.id, q.user_id, q.name, q.slug, u.namespace, q.created_at,
		r.id AS redirect_id, r.url AS redirect_url,
		r.visit_count AS redirect_visit_count, r.created_at AS redirect_created_at
	FROM qr_codes q
	JOIN users u ON u.id = q.user_id
	LEFT JOIN redirects r ON r.qr_code_id = q.id AND r.is_active`

type qrCodeDB struct {
	ID                 int64          `db:"id"`
	UserID             int64          `db:"user_id"`
	Name               string         `db:"name"`
	Slug               string         `db:"slug"`
	Namespace          sql.NullString `db:"namespace"`
	CreatedAt          time.Time      `db:"created_at"`
	RedirectID         sql.NullInt64  `db:"redirect_id"`
	RedirectURL        sql.NullString `db:"redirect_url"`
	RedirectVisitCount sql.NullInt64  `db:"redirect_visit_count"`
	RedirectCreatedAt  sql.NullTime   `db:"redirect_created_at"`
}

func (q *qrCodeDB) toEntity() *entity.QRCode {
	qr := &entity.QRCode{
		ID:        q.ID,
		UserID:    q.UserID,
		Name:      q.Name,
		Slug:      q.Slug,
		Namespace: q.Namespace.String,
		CreatedAt: q.CreatedAt,
	}
	if q.RedirectID.Valid {
		qr.ActiveRedirect = &entity.Redirect{
			ID:         q.RedirectID.Int64,
			QRCodeID:   q.ID,
			URL:        q.RedirectURL.String,
			IsActive:   true,
			VisitCount: q.RedirectVisitCount.Int64,
			CreatedAt:  q.RedirectCreatedAt.Time,
		}
	}
	return qr
}

type QRCodeRepository struct {
	db *sqlx.DB
}

func NewQRCodeRepository(db *sqlx.DB) *QRCodeRepository {
	return &QRCodeRepository{db: db}
}

// Save inserts a QR code for the user. The (user_id, slug) unique constraint
// turns a duplicate slug of the same user into entity.ErrSlugExists.
func (r *QRCodeRepository) Save(ctx context.Context, userID int64, name, slug string) (*entity.QRCode, error) {
	const op = "adapter.repository.postgres.QRCodeRepository.Save"
	const query = `WITH ins AS (
			INSERT INTO qr_codes(user_id, name, slug)
			VALUES ($1, $2, $3)
			RETURNING id, user_id, name, slug, created_at
		)
		SELECT ins.id, ins.user_id, ins.name, ins.slug, u.namespace, ins.created_at
		FROM ins
		JOIN users u ON u.id = ins.user_id`

	var qr qrCodeDB

	if err := r.db.GetContext(ctx, &qr, query, userID, name, slug); err != nil {
		switch {
		case postgres.IsUniqueViolation(err, qrCodesUserIDSlugKey):
			return nil, fmt.Errorf("%s: %w", op, entity.ErrSlugExists)
		case postgres.IsForeignKeyViolation(err):
			return nil, fmt.Errorf("%s: %w", op, entity.ErrUserNotFound)
		}

		return nil, storageError(op, "failed to insert into qr_codes table", err)
	}

	return qr.toEntity(), nil
}

// RetrieveByID returns the QR code only when it belongs to userID.
func (r *QRCodeRepository) RetrieveByID(ctx context.Context, userID, id int64) (*entity.QRCode, error) {
	const op = "adapter.repository.postgres.QRCodeRepository.RetrieveByID"
	const query = qrCodeSelect + ` WHERE q.id = $1 AND q.user_id = $2`

	var qr qrCodeDB

	if err := r.db.GetContext(ctx, &qr, query, id, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, entity.ErrQRCodeNotFound)
		}

		return nil, storageError(op, "failed to get row from qr_codes table", err)
	}

	return qr.toEntity(), nil
}

func (r *QRCodeRepository) ListByUser(ctx context.Context, userID int64) ([]*entity.QRCode, error) {
	const op = "adapter.repository.postgres.QRCodeRepository.ListByUser"
	const query = qrCodeSelect + ` WHERE q.user_id = $1 ORDER BY q.created_at DESC, q.id DESC`

	var rows []qrCodeDB

	if err := r.db.SelectContext(ctx, &rows, query, userID); err != nil {
		return nil, storageError(op, "failed to select rows from qr_codes table", err)
	}

	qrs := make([]*entity.QRCode, 0, len(rows))
	for i := range rows {
		qrs = append(qrs, rows[i].toEntity())
	}

	return qrs, nil
}
