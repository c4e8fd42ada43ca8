package usersvc

import (
	"context"
	"errors"

	"github.com/nikosgrigo/Bookstore-API-PostgreSQL/model"
)

type ErrCode string

const ErrNotFound ErrCode = "NOT_FOUND"

type codedError struct{ code ErrCode }

func (e codedError) Error() string { return string(e.code) }
func (e codedError) Code() ErrCode { return e.code }

// Code extracts error code
func Code(err error) ErrCode {
	var ce interface{ Code() ErrCode }
	if errors.As(err, &ce) {
		return ce.Code()
	}
	return ""
}

type Users interface {
	ByID(ctx context.Context, id int64) (*model.User, error)
}

type Ledger interface {
	OpenBooksForUser(ctx context.Context, userID int64) ([]model.Book, error)
}

// Detail is a user profile together with the books they currently hold.
type Detail struct {
	User        *model.User  `json:"user"`
	RentedBooks []model.Book `json:"rented_books"`
}

type Service interface {
	Detail(ctx context.Context, id int64) (*Detail, error)
}

type service struct {
	u Users
	l Ledger
}

func New(u Users, l Ledger) Service { return &service{u: u, l: l} }

func (s *service) Detail(ctx context.Context, id int64) (*Detail, error) {
	u, err := s.u.ByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, codedError{code: ErrNotFound}
	}
	books, err := s.l.OpenBooksForUser(ctx, id)
	if err != nil {
		return nil, err
	}
	return &Detail{User: u, RentedBooks: books}, nil
}
