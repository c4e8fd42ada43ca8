package backup

import (
	"context"
	"errors"
	"path/filepath"

	"github.com/nikosgrigo/Bookstore-API-PostgreSQL/model"
	"github.com/nikosgrigo/Bookstore-API-PostgreSQL/util/csvx"
)

type ErrCode string

const ErrNothingToBackup ErrCode = "NOTHING_TO_BACKUP"

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

// Ledger is the read-only slice of the rental repository backups need.
type Ledger interface {
	ListOpen(ctx context.Context) ([]model.Rental, error)
}

type Service interface {
	// SnapshotOpenRentals dumps all currently open rentals to Backup.csv
	// and returns the written path.
	SnapshotOpenRentals(ctx context.Context) (string, error)

	// ExportRentals / ExportRevenue mirror the admin reports to CSV.
	// They are side-writes: callers log failures and still serve the
	// report.
	ExportRentals(books []model.Book) error
	ExportRevenue(total float64) error
}

type service struct {
	l   Ledger
	dir string
}

func New(l Ledger, outputDir string) Service { return &service{l: l, dir: outputDir} }

func (s *service) SnapshotOpenRentals(ctx context.Context) (string, error) {
	open, err := s.l.ListOpen(ctx)
	if err != nil {
		return "", err
	}
	if len(open) == 0 {
		return "", codedError{code: ErrNothingToBackup}
	}
	path := filepath.Join(s.dir, "Backup.csv")
	if err := csvx.WriteRentals(path, open); err != nil {
		return "", err
	}
	return path, nil
}

func (s *service) ExportRentals(books []model.Book) error {
	return csvx.WriteBooks(filepath.Join(s.dir, "Rentals.csv"), books)
}

func (s *service) ExportRevenue(total float64) error {
	return csvx.WriteRevenue(filepath.Join(s.dir, "TotalRevenue.csv"), total)
}
