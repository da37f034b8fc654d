package infra_postgres_user

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	usecase_user "github.com/mblais/connect4/core/internal/usecase/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDriver(t *testing.T) (*Driver, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return New(sqlx.NewDb(db, "sqlmock")), mock
}

func TestGetByUsername(t *testing.T) {
	t.Parallel()

	query := regexp.QuoteMeta(`SELECT id, username, hash_pwd FROM users`)

	t.Run("finds the user regardless of case", func(t *testing.T) {
		driver, mock := newDriver(t)

		mock.ExpectQuery(query).
			WithArgs("Alice").
			WillReturnRows(sqlmock.NewRows([]string{"id", "username", "hash_pwd"}).
				AddRow(int64(1), "alice", "$2a$10$hash"))

		user, err := driver.GetByUsername(context.Background(), "Alice")

		assert.NoError(t, err)
		assert.Equal(t, "alice", user.Username)
		assert.Equal(t, "$2a$10$hash", user.HashPwd)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("reports an unknown user", func(t *testing.T) {
		driver, mock := newDriver(t)

		mock.ExpectQuery(query).
			WithArgs("nobody").
			WillReturnRows(sqlmock.NewRows([]string{"id", "username", "hash_pwd"}))

		_, err := driver.GetByUsername(context.Background(), "nobody")

		assert.ErrorIs(t, err, usecase_user.ErrUserNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
