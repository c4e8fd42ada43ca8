package userrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/nikosgrigo/Bookstore-API-PostgreSQL/model"
	"github.com/nikosgrigo/Bookstore-API-PostgreSQL/util/database"
)

type Repo interface {
	Create(ctx context.Context, u *model.User) error
	ByEmail(ctx context.Context, email string) (*model.User, error)
	ByID(ctx context.Context, id int64) (*model.User, error)
}

type repo struct{ db *database.DB }

func New(db *database.DB) Repo { return &repo{db} }

func (r *repo) Create(ctx context.Context, u *model.User) error {
	return r.db.Pool.QueryRow(ctx, `
		INSERT INTO users(username, email, password_hash, is_admin)
		VALUES ($1,$2,$3,$4)
		RETURNING id`,
		u.Username, u.Email, u.PasswordHash, u.IsAdmin,
	).Scan(&u.ID)
}

func (r *repo) ByEmail(ctx context.Context, email string) (*model.User, error) {
	return r.scanOne(r.db.Pool.QueryRow(ctx, `
        SELECT id, username, email, password_hash, is_admin
        FROM users
        WHERE lower(email) = lower($1)`,
		email,
	))
}

func (r *repo) ByID(ctx context.Context, id int64) (*model.User, error) {
	return r.scanOne(r.db.Pool.QueryRow(ctx, `
        SELECT id, username, email, password_hash, is_admin
        FROM users
        WHERE id = $1`,
		id,
	))
}

func (r *repo) scanOne(row pgx.Row) (*model.User, error) {
	u := &model.User{}
	err := row.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.IsAdmin)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}
