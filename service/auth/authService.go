package authsvc

import (
	"context"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/nikosgrigo/Bookstore-API-PostgreSQL/model"
	userrepo "github.com/nikosgrigo/Bookstore-API-PostgreSQL/repository/user"
	"github.com/nikosgrigo/Bookstore-API-PostgreSQL/util/hash"
	jwtutil "github.com/nikosgrigo/Bookstore-API-PostgreSQL/util/jwt"
)

type ErrCode string

const (
	ErrUserTaken    ErrCode = "USER_TAKEN"
	ErrUserNotFound ErrCode = "USER_NOT_FOUND"
	ErrInvalidCreds ErrCode = "INVALID_CREDENTIALS"
)

type codedError struct{ code ErrCode }

func (e codedError) Error() string { return string(e.code) }
func (e codedError) Code() ErrCode { return e.code }
func makeErr(c ErrCode) error      { return codedError{code: c} }

// Code extracts error code
func Code(err error) ErrCode {
	var ce interface{ Code() ErrCode }
	if errors.As(err, &ce) {
		return ce.Code()
	}
	return ""
}

const tokenTTLHours = 24

type Service interface {
	Register(ctx context.Context, req model.RegisterReq) (*model.User, error)
	Login(ctx context.Context, req model.LoginReq) (string, error)
}

type service struct {
	ur     userrepo.Repo
	secret string
}

func New(ur userrepo.Repo, secret string) Service { return &service{ur: ur, secret: secret} }

func (s *service) Register(ctx context.Context, req model.RegisterReq) (*model.User, error) {
	hashed, err := hash.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	u := &model.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hashed,
	}

	if err := s.ur.Create(ctx, u); err != nil {
		if isUniqueViolation(err) {
			return nil, makeErr(ErrUserTaken)
		}
		return nil, err
	}
	return u, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}

func (s *service) Login(ctx context.Context, req model.LoginReq) (string, error) {
	u, err := s.ur.ByEmail(ctx, req.Email)
	if err != nil {
		return "", err
	}
	if u == nil {
		return "", makeErr(ErrUserNotFound)
	}
	if !hash.Check(u.PasswordHash, req.Password) {
		return "", makeErr(ErrInvalidCreds)
	}
	return jwtutil.Issue(s.secret, u.ID, u.IsAdmin, tokenTTLHours)
}
