package report

import (
	"context"
	"time"

	"github.com/nikosgrigo/Bookstore-API-PostgreSQL/model"
)

// Shape picks the presentation of a period report; the selection
// predicate is identical for both.
type Shape string

const (
	ShapeBooks   Shape = "books"
	ShapeRecords Shape = "records"
)

// Ledger is the read-only slice of the rental repository the reporting
// engine needs.
type Ledger interface {
	ListForPeriod(ctx context.Context, start, end time.Time) ([]model.Rental, error)
	BooksForPeriod(ctx context.Context, start, end time.Time) ([]model.Book, error)
	ListOpen(ctx context.Context) ([]model.Rental, error)
}

type Service interface {
	RecordsInPeriod(ctx context.Context, start, end time.Time) ([]model.Rental, error)
	BooksInPeriod(ctx context.Context, start, end time.Time) ([]model.Book, error)
	TotalFeeForPeriod(ctx context.Context, start, end time.Time) (float64, error)
	OpenRentals(ctx context.Context) ([]model.Rental, error)
}

type service struct{ l Ledger }

func New(l Ledger) Service { return &service{l: l} }

func (s *service) RecordsInPeriod(ctx context.Context, start, end time.Time) ([]model.Rental, error) {
	return s.l.ListForPeriod(ctx, start, end)
}

func (s *service) BooksInPeriod(ctx context.Context, start, end time.Time) ([]model.Book, error) {
	return s.l.BooksForPeriod(ctx, start, end)
}

// TotalFeeForPeriod sums finalized fees over the period selection. Open
// records are skipped outright: their fee is not known yet and must not
// be projected. An empty window is a 0 total, not an error.
func (s *service) TotalFeeForPeriod(ctx context.Context, start, end time.Time) (float64, error) {
	recs, err := s.l.ListForPeriod(ctx, start, end)
	if err != nil {
		return 0, err
	}
	var total float64
	for _, rec := range recs {
		if rec.Open() {
			continue
		}
		total += rec.TotalCost
	}
	return total, nil
}

func (s *service) OpenRentals(ctx context.Context) ([]model.Rental, error) {
	return s.l.ListOpen(ctx)
}
