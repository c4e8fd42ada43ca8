package bookrepo

import (
	"context"
	"errors"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // dialect registration
	"github.com/jackc/pgx/v5"

	"github.com/nikosgrigo/Bookstore-API-PostgreSQL/model"
	"github.com/nikosgrigo/Bookstore-API-PostgreSQL/util/database"
)

// Field is the closed set of catalog attributes a caller may filter on.
// Anything else is rejected before a query is built.
type Field string

const (
	FieldAuthor    Field = "author"
	FieldPublisher Field = "publisher"
	FieldYear      Field = "year"
	FieldISBN      Field = "isbn"
)

// Filter is one attribute/value comparison against the catalog.
type Filter struct {
	Field Field
	Value any
}

type Repo interface {
	ListAvailable(ctx context.Context) ([]model.Book, error)
	ByISBN(ctx context.Context, isbn string) (*model.Book, error)
	ByFilter(ctx context.Context, f Filter) ([]model.Book, error)
	Count(ctx context.Context) (int64, error)
	BulkInsert(ctx context.Context, books []model.Book) (int64, error)
}

type repo struct{ db *database.DB }

func New(db *database.DB) Repo { return &repo{db} }

var dialect = goqu.Dialect("postgres")

var bookCols = []any{
	"isbn", "title", "author", "year_of_publication", "publisher",
	"image_url_s", "image_url_m", "image_url_l", "rating", "is_available",
}

func selectBooks() *goqu.SelectDataset {
	return dialect.From("books").Select(bookCols...)
}

// column maps a filter field to its table column. The switch is the whole
// point: no caller-supplied identifier ever reaches the SQL text.
func column(f Field) (string, bool) {
	switch f {
	case FieldAuthor:
		return "author", true
	case FieldPublisher:
		return "publisher", true
	case FieldYear:
		return "year_of_publication", true
	case FieldISBN:
		return "isbn", true
	}
	return "", false
}

func (r *repo) ListAvailable(ctx context.Context) ([]model.Book, error) {
	ds := selectBooks().Where(goqu.C("is_available").IsTrue())
	return r.queryBooks(ctx, ds)
}

// ByISBN is a direct key lookup; a missing book yields (nil, nil).
func (r *repo) ByISBN(ctx context.Context, isbn string) (*model.Book, error) {
	ds := selectBooks().Where(goqu.C("isbn").Eq(isbn))
	books, err := r.queryBooks(ctx, ds)
	if err != nil {
		return nil, err
	}
	if len(books) == 0 {
		return nil, nil
	}
	return &books[0], nil
}

func (r *repo) ByFilter(ctx context.Context, f Filter) ([]model.Book, error) {
	col, ok := column(f.Field)
	if !ok {
		return nil, errors.New("unknown filter field")
	}
	ds := selectBooks().Where(goqu.C(col).Eq(f.Value))
	return r.queryBooks(ctx, ds)
}

func (r *repo) Count(ctx context.Context) (int64, error) {
	sqlStr, args, err := dialect.From("books").Select(goqu.COUNT(goqu.Star())).Prepared(true).ToSQL()
	if err != nil {
		return 0, err
	}
	var n int64
	err = r.db.Pool.QueryRow(ctx, sqlStr, args...).Scan(&n)
	return n, err
}

// BulkInsert loads catalog rows with COPY; used only by the seed import.
func (r *repo) BulkInsert(ctx context.Context, books []model.Book) (int64, error) {
	cols := []string{
		"isbn", "title", "author", "year_of_publication", "publisher",
		"image_url_s", "image_url_m", "image_url_l", "rating", "is_available",
	}
	return r.db.Pool.CopyFrom(ctx, pgx.Identifier{"books"}, cols,
		pgx.CopyFromSlice(len(books), func(i int) ([]any, error) {
			b := books[i]
			return []any{
				b.ISBN, b.Title, b.Author, b.YearOfPublication, b.Publisher,
				b.ImageURLS, b.ImageURLM, b.ImageURLL, b.Rating, b.IsAvailable,
			}, nil
		}),
	)
}

func (r *repo) queryBooks(ctx context.Context, ds *goqu.SelectDataset) ([]model.Book, error) {
	sqlStr, args, err := ds.Prepared(true).ToSQL()
	if err != nil {
		return nil, err
	}
	rows, err := r.db.Pool.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Book
	for rows.Next() {
		var b model.Book
		if err := rows.Scan(
			&b.ISBN, &b.Title, &b.Author, &b.YearOfPublication, &b.Publisher,
			&b.ImageURLS, &b.ImageURLM, &b.ImageURLL, &b.Rating, &b.IsAvailable,
		); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}
