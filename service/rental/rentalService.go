package rental

import (
	"context"
	"errors"
	"time"

	"github.com/nikosgrigo/Bookstore-API-PostgreSQL/model"
	rrepo "github.com/nikosgrigo/Bookstore-API-PostgreSQL/repository/rental"
	"github.com/nikosgrigo/Bookstore-API-PostgreSQL/util/datex"
)

// errors used by controllers

type ErrCode string

const (
	ErrNotAvailable ErrCode = "NOT_AVAILABLE"
	ErrNotRented    ErrCode = "NOT_RENTED"
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

type Service interface {
	// Rent checks the book out for the user, flipping availability and
	// opening a ledger record in one transaction.
	Rent(ctx context.Context, isbn string, userID int64) error

	// Return closes the open ledger record for the book, finalizes the
	// fee and makes the book available again. Returns the fee.
	Return(ctx context.Context, isbn string) (float64, error)
}

type service struct {
	r     rrepo.Repo
	today func() time.Time
}

func New(r rrepo.Repo) Service {
	return &service{r: r, today: datex.Today}
}

func (s *service) Rent(ctx context.Context, isbn string, userID int64) error {
	return s.r.WithBookTx(ctx, isbn, func(book *model.Book, tx rrepo.Tx) error {
		// A missing book and an unavailable one are the same recoverable
		// condition to the caller.
		if book == nil || !book.IsAvailable {
			return makeErr(ErrNotAvailable)
		}
		if err := tx.SetAvailability(ctx, isbn, false); err != nil {
			return err
		}
		rec := &model.Rental{
			ISBN:      isbn,
			UserID:    userID,
			StartDate: s.today(),
			TotalCost: 0,
		}
		return tx.InsertRental(ctx, rec)
	})
}

func (s *service) Return(ctx context.Context, isbn string) (float64, error) {
	var fee float64
	err := s.r.WithBookTx(ctx, isbn, func(book *model.Book, tx rrepo.Tx) error {
		if book == nil {
			return makeErr(ErrNotRented)
		}
		rec, err := tx.OpenRental(ctx, isbn)
		if err != nil {
			return err
		}
		if rec == nil {
			return makeErr(ErrNotRented)
		}

		end := s.today()
		fee = Fee(rec.StartDate, end)

		if err := tx.CloseRental(ctx, rec.ID, end, fee); err != nil {
			return err
		}
		return tx.SetAvailability(ctx, isbn, true)
	})
	if err != nil {
		return 0, err
	}
	return fee, nil
}
