package booksvc

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"strconv"

	"github.com/nikosgrigo/Bookstore-API-PostgreSQL/model"
	repo "github.com/nikosgrigo/Bookstore-API-PostgreSQL/repository/book"
	"github.com/nikosgrigo/Bookstore-API-PostgreSQL/util/csvx"
)

type Book = model.Book

type ErrCode string

const (
	ErrNotFound  ErrCode = "NOT_FOUND"
	ErrBadFilter ErrCode = "BAD_FILTER"
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

type Repo interface {
	ListAvailable(ctx context.Context) ([]Book, error)
	ByISBN(ctx context.Context, isbn string) (*Book, error)
	ByFilter(ctx context.Context, f repo.Filter) ([]Book, error)
	Count(ctx context.Context) (int64, error)
	BulkInsert(ctx context.Context, books []Book) (int64, error)
}

type Service interface {
	ListAvailable(ctx context.Context) ([]Book, error)
	ByISBN(ctx context.Context, isbn string) (*Book, error)
	ByField(ctx context.Context, field, value string) ([]Book, error)
	Seed(ctx context.Context, csvPath string) error
}

type service struct{ r Repo }

func New(r Repo) Service { return &service{r: r} }

func (s *service) ListAvailable(ctx context.Context) ([]Book, error) {
	return s.r.ListAvailable(ctx)
}

func (s *service) ByISBN(ctx context.Context, isbn string) (*Book, error) {
	b, err := s.r.ByISBN(ctx, isbn)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, makeErr(ErrNotFound)
	}
	return b, nil
}

// ByField resolves an attribute filter against the closed field set;
// anything outside it, or a non-numeric year, is a bad request.
func (s *service) ByField(ctx context.Context, field, value string) ([]Book, error) {
	var f repo.Filter
	switch repo.Field(field) {
	case repo.FieldAuthor:
		f = repo.Filter{Field: repo.FieldAuthor, Value: value}
	case repo.FieldPublisher:
		f = repo.Filter{Field: repo.FieldPublisher, Value: value}
	case repo.FieldYear:
		year, err := strconv.Atoi(value)
		if err != nil {
			return nil, makeErr(ErrBadFilter)
		}
		f = repo.Filter{Field: repo.FieldYear, Value: year}
	case repo.FieldISBN:
		f = repo.Filter{Field: repo.FieldISBN, Value: value}
	default:
		return nil, makeErr(ErrBadFilter)
	}
	return s.r.ByFilter(ctx, f)
}

// Seed bulk-loads the catalog from a Books.csv dump the first time the
// service boots against an empty table. A missing file is not fatal.
func (s *service) Seed(ctx context.Context, csvPath string) error {
	n, err := s.r.Count(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	books, err := csvx.ReadBooks(csvPath)
	if err != nil {
		if os.IsNotExist(err) {
			slog.Warn("catalog seed skipped, csv not found", "path", csvPath)
			return nil
		}
		return err
	}
	if len(books) == 0 {
		return nil
	}

	inserted, err := s.r.BulkInsert(ctx, books)
	if err != nil {
		return err
	}
	slog.Info("catalog seeded", "books", inserted, "path", csvPath)
	return nil
}
