package infra_postgres_user

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/mblais/connect4/core/internal/model"
	usecase_user "github.com/mblais/connect4/core/internal/usecase/user"
)

type Driver struct {
	db *sqlx.DB
}

func New(
	db *sqlx.DB,
) *Driver {
	return &Driver{db: db}
}

type userDTO struct {
	ID       int64  `db:"id"`
	Username string `db:"username"`
	HashPwd  string `db:"hash_pwd"`
}

func (d *Driver) GetByUsername(ctx context.Context, username string) (model.User, error) {
	var dto userDTO

	query := `
        SELECT id, username, hash_pwd
        FROM users
        WHERE lower(username) = lower($1)
    `

	err := d.db.GetContext(ctx, &dto, query, username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.User{}, usecase_user.ErrUserNotFound
		}
		return model.User{}, err
	}

	return model.User{
		ID:       dto.ID,
		Username: dto.Username,
		HashPwd:  dto.HashPwd,
	}, nil
}
