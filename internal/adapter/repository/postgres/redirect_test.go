package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/suite"
	"github.com/vadimbarashkov/qr-redirect/internal/entity"
)

type RedirectRepositoryTestSuite struct {
	repositoryTestSuite
	columns []string
	repo    *RedirectRepository
}

func (suite *RedirectRepositoryTestSuite) SetupSuite() {
	suite.repositoryTestSuite.SetupSuite()
	suite.columns = []string{"id", "qr_code_id", "url", "is_active", "visit_count", "created_at"}
}

func (suite *RedirectRepositoryTestSuite) SetupSubTest() {
	suite.setupDB()
	suite.repo = NewRedirectRepository(suite.db)
}

func (suite *RedirectRepositoryTestSuite) TestSwitchActive() {
	suite.Run("qr code not found", func() {
		suite.mock.ExpectBegin()
		suite.mock.ExpectQuery(`SELECT id FROM qr_codes (.+) FOR UPDATE`).
			WithArgs(int64(7), int64(1)).
			WillReturnError(sql.ErrNoRows)
		suite.mock.ExpectRollback()

		redirect, err := suite.repo.SwitchActive(context.Background(), 1, 7, "https://dest.example")

		suite.ErrorIs(err, entity.ErrQRCodeNotFound)
		suite.NotErrorIs(err, entity.ErrStorage)
		suite.Nil(redirect)
	})

	suite.Run("deactivate error", func() {
		suite.mock.ExpectBegin()
		suite.mock.ExpectQuery(`SELECT id FROM qr_codes (.+) FOR UPDATE`).
			WithArgs(int64(7), int64(1)).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))
		suite.mock.ExpectExec(`UPDATE redirects SET is_active = FALSE`).
			WithArgs(int64(7)).
			WillReturnError(suite.errUnknown)
		suite.mock.ExpectRollback()

		redirect, err := suite.repo.SwitchActive(context.Background(), 1, 7, "https://dest.example")

		suite.ErrorIs(err, suite.errUnknown)
		suite.ErrorIs(err, entity.ErrStorage)
		suite.Nil(redirect)
	})

	suite.Run("insert error", func() {
		suite.mock.ExpectBegin()
		suite.mock.ExpectQuery(`SELECT id FROM qr_codes (.+) FOR UPDATE`).
			WithArgs(int64(7), int64(1)).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))
		suite.mock.ExpectExec(`UPDATE redirects SET is_active = FALSE`).
			WithArgs(int64(7)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		suite.mock.ExpectQuery(`INSERT INTO redirects`).
			WithArgs(int64(7), "https://dest.example").
			WillReturnError(suite.errUnknown)
		suite.mock.ExpectRollback()

		redirect, err := suite.repo.SwitchActive(context.Background(), 1, 7, "https://dest.example")

		suite.ErrorIs(err, entity.ErrStorage)
		suite.Nil(redirect)
	})

	suite.Run("commit error", func() {
		suite.mock.ExpectBegin()
		suite.mock.ExpectQuery(`SELECT id FROM qr_codes (.+) FOR UPDATE`).
			WithArgs(int64(7), int64(1)).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))
		suite.mock.ExpectExec(`UPDATE redirects SET is_active = FALSE`).
			WithArgs(int64(7)).
			WillReturnResult(sqlmock.NewResult(0, 0))
		suite.mock.ExpectQuery(`INSERT INTO redirects`).
			WithArgs(int64(7), "https://dest.example").
			WillReturnRows(sqlmock.NewRows(suite.columns).
				AddRow(3, 7, "https://dest.example", true, 0, time.Time{}))
		suite.mock.ExpectCommit().WillReturnError(suite.errUnknown)

		redirect, err := suite.repo.SwitchActive(context.Background(), 1, 7, "https://dest.example")

		suite.ErrorIs(err, entity.ErrStorage)
		suite.Nil(redirect)
	})

	suite.Run("success", func() {
		suite.mock.ExpectBegin()
		suite.mock.ExpectQuery(`SELECT id FROM qr_codes (.+) FOR UPDATE`).
			WithArgs(int64(7), int64(1)).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))
		suite.mock.ExpectExec(`UPDATE redirects SET is_active = FALSE`).
			WithArgs(int64(7)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		suite.mock.ExpectQuery(`INSERT INTO redirects`).
			WithArgs(int64(7), "https://dest.example").
			WillReturnRows(sqlmock.NewRows(suite.columns).
				AddRow(3, 7, "https://dest.example", true, 0, time.Time{}))
		suite.mock.ExpectCommit()

		redirect, err := suite.repo.SwitchActive(context.Background(), 1, 7, "https://dest.example")

		suite.NoError(err)
		suite.Equal(int64(3), redirect.ID)
		suite.True(redirect.IsActive)
		suite.Zero(redirect.VisitCount)
	})
}

func (suite *RedirectRepositoryTestSuite) TestResolveAndCount() {
	suite.Run("qr code not found", func() {
		suite.mock.ExpectBegin()
		suite.mock.ExpectQuery(`SELECT q.id (.+) FOR SHARE OF q`).
			WithArgs("ns1", "my-slug").
			WillReturnError(sql.ErrNoRows)
		suite.mock.ExpectRollback()

		redirect, err := suite.repo.ResolveAndCount(context.Background(), "ns1", "my-slug")

		suite.ErrorIs(err, entity.ErrQRCodeNotFound)
		suite.Nil(redirect)
	})

	suite.Run("no active redirect", func() {
		suite.mock.ExpectBegin()
		suite.mock.ExpectQuery(`SELECT q.id (.+) FOR SHARE OF q`).
			WithArgs("ns1", "my-slug").
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))
		suite.mock.ExpectQuery(`UPDATE redirects (.+) visit_count = visit_count \+ 1`).
			WithArgs(int64(7)).
			WillReturnError(sql.ErrNoRows)
		suite.mock.ExpectRollback()

		redirect, err := suite.repo.ResolveAndCount(context.Background(), "ns1", "my-slug")

		suite.ErrorIs(err, entity.ErrNoActiveRedirect)
		suite.ErrorIs(err, entity.ErrNotFound)
		suite.Nil(redirect)
	})

	suite.Run("unknown error", func() {
		suite.mock.ExpectBegin()
		suite.mock.ExpectQuery(`SELECT q.id (.+) FOR SHARE OF q`).
			WithArgs("ns1", "my-slug").
			WillReturnError(suite.errUnknown)
		suite.mock.ExpectRollback()

		redirect, err := suite.repo.ResolveAndCount(context.Background(), "ns1", "my-slug")

		suite.ErrorIs(err, suite.errUnknown)
		suite.ErrorIs(err, entity.ErrStorage)
		suite.Nil(redirect)
	})

	suite.Run("begin error", func() {
		suite.mock.ExpectBegin().WillReturnError(suite.errUnknown)

		redirect, err := suite.repo.ResolveAndCount(context.Background(), "ns1", "my-slug")

		suite.ErrorIs(err, entity.ErrStorage)
		suite.Nil(redirect)
	})

	suite.Run("success", func() {
		suite.mock.ExpectBegin()
		suite.mock.ExpectQuery(`SELECT q.id (.+) FOR SHARE OF q`).
			WithArgs("ns1", "my-slug").
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))
		suite.mock.ExpectQuery(`UPDATE redirects (.+) visit_count = visit_count \+ 1`).
			WithArgs(int64(7)).
			WillReturnRows(sqlmock.NewRows(suite.columns).
				AddRow(3, 7, "https://dest.example", true, 42, time.Time{}))
		suite.mock.ExpectCommit()

		redirect, err := suite.repo.ResolveAndCount(context.Background(), "ns1", "my-slug")

		suite.NoError(err)
		suite.Equal("https://dest.example", redirect.URL)
		suite.Equal(int64(42), redirect.VisitCount)
	})
}

func (suite *RedirectRepositoryTestSuite) TestListByQRCode() {
	suite.Run("unknown error", func() {
		suite.mock.ExpectQuery(`SELECT (.+) FROM redirects`).
			WithArgs(int64(7)).
			WillReturnError(suite.errUnknown)

		redirects, err := suite.repo.ListByQRCode(context.Background(), 7)

		suite.ErrorIs(err, entity.ErrStorage)
		suite.Nil(redirects)
	})

	suite.Run("success", func() {
		rows := sqlmock.NewRows(suite.columns).
			AddRow(4, 7, "https://new.example", true, 1, time.Time{}).
			AddRow(3, 7, "https://old.example", false, 9, time.Time{})

		suite.mock.ExpectQuery(`SELECT (.+) FROM redirects`).
			WithArgs(int64(7)).
			WillReturnRows(rows)

		redirects, err := suite.repo.ListByQRCode(context.Background(), 7)

		suite.NoError(err)
		suite.Len(redirects, 2)
		suite.True(redirects[0].IsActive)
		suite.False(redirects[1].IsActive)
	})
}

func TestRedirectRepository(t *testing.T) {
	suite.Run(t, new(RedirectRepositoryTestSuite))
}
