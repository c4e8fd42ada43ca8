// repository/rental/repo.go
package rental

import (
	"context"
	"errors"
	"time"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // dialect registration
	"github.com/jackc/pgx/v5"

	"github.com/nikosgrigo/Bookstore-API-PostgreSQL/model"
	"github.com/nikosgrigo/Bookstore-API-PostgreSQL/util/database"
)

// Tx is the set of ledger mutations available inside a per-book
// transaction scope. All of them run on the transaction opened by
// WithBookTx, so a failed callback rolls every effect back together.
type Tx interface {
	SetAvailability(ctx context.Context, isbn string, available bool) error
	OpenRental(ctx context.Context, isbn string) (*model.Rental, error)
	InsertRental(ctx context.Context, r *model.Rental) error
	CloseRental(ctx context.Context, id int64, end time.Time, fee float64) error
}

type Repo interface {
	// WithBookTx runs fn inside a transaction holding a row lock on the
	// given book, serializing all rent/return work per book. The locked
	// book is handed to fn; nil means no such book exists.
	WithBookTx(ctx context.Context, isbn string, fn func(book *model.Book, tx Tx) error) error

	// Reporting reads; no locks, no side effects.
	ListForPeriod(ctx context.Context, start, end time.Time) ([]model.Rental, error)
	BooksForPeriod(ctx context.Context, start, end time.Time) ([]model.Book, error)
	ListOpen(ctx context.Context) ([]model.Rental, error)
	OpenBooksForUser(ctx context.Context, userID int64) ([]model.Book, error)
}

type repo struct{ db *database.DB }

func New(db *database.DB) Repo { return &repo{db: db} }

var dialect = goqu.Dialect("postgres")

func (r *repo) WithBookTx(ctx context.Context, isbn string, fn func(book *model.Book, tx Tx) error) (err error) {
	pgtx, err := r.db.Pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = pgtx.Rollback(ctx)
		}
	}()

	const q = `
		SELECT isbn, title, author, year_of_publication, publisher,
		       image_url_s, image_url_m, image_url_l, rating, is_available
		FROM books
		WHERE isbn = $1
		FOR UPDATE`
	var b model.Book
	book := &b
	scanErr := pgtx.QueryRow(ctx, q, isbn).Scan(
		&b.ISBN, &b.Title, &b.Author, &b.YearOfPublication, &b.Publisher,
		&b.ImageURLS, &b.ImageURLM, &b.ImageURLL, &b.Rating, &b.IsAvailable,
	)
	if scanErr != nil {
		if !errors.Is(scanErr, pgx.ErrNoRows) {
			err = scanErr
			return err
		}
		book = nil
	}

	if err = fn(book, &bookTx{tx: pgtx}); err != nil {
		return err
	}
	return pgtx.Commit(ctx)
}

type bookTx struct{ tx pgx.Tx }

func (t *bookTx) SetAvailability(ctx context.Context, isbn string, available bool) error {
	const q = `
		UPDATE books
		SET is_available = $2
		WHERE isbn = $1`
	_, err := t.tx.Exec(ctx, q, isbn, available)
	return err
}

// OpenRental finds the at-most-one open ledger row for a book.
// Returns (nil, nil) when the book is not currently rented.
func (t *bookTx) OpenRental(ctx context.Context, isbn string) (*model.Rental, error) {
	const q = `
		SELECT id, isbn, user_id, start_date, end_date, total_cost
		FROM history
		WHERE isbn = $1 AND end_date IS NULL
		FOR UPDATE`
	var rec model.Rental
	err := t.tx.QueryRow(ctx, q, isbn).Scan(
		&rec.ID, &rec.ISBN, &rec.UserID, &rec.StartDate, &rec.EndDate, &rec.TotalCost,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (t *bookTx) InsertRental(ctx context.Context, rec *model.Rental) error {
	const q = `
		INSERT INTO history (isbn, user_id, start_date, end_date, total_cost)
		VALUES ($1, $2, $3, NULL, $4)
		RETURNING id`
	return t.tx.QueryRow(ctx, q, rec.ISBN, rec.UserID, rec.StartDate, rec.TotalCost).Scan(&rec.ID)
}

func (t *bookTx) CloseRental(ctx context.Context, id int64, end time.Time, fee float64) error {
	const q = `
		UPDATE history
		SET end_date = $2,
		    total_cost = $3
		WHERE id = $1`
	_, err := t.tx.Exec(ctx, q, id, end, fee)
	return err
}

// periodWhere is the single selection predicate shared by both report
// shapes: the rental started inside the window, and either finished
// inside it too or is still open.
func periodWhere(start, end time.Time) []goqu.Expression {
	return []goqu.Expression{
		goqu.I("h.start_date").Gte(start),
		goqu.I("h.start_date").Lte(end),
		goqu.Or(
			goqu.And(goqu.I("h.end_date").Gte(start), goqu.I("h.end_date").Lte(end)),
			goqu.I("h.end_date").IsNull(),
		),
	}
}

func (r *repo) ListForPeriod(ctx context.Context, start, end time.Time) ([]model.Rental, error) {
	ds := dialect.From(goqu.T("history").As("h")).
		Select("h.id", "h.isbn", "h.user_id", "h.start_date", "h.end_date", "h.total_cost").
		Where(periodWhere(start, end)...)
	return r.queryRentals(ctx, ds)
}

func (r *repo) BooksForPeriod(ctx context.Context, start, end time.Time) ([]model.Book, error) {
	ds := dialect.From(goqu.T("history").As("h")).
		Join(goqu.T("books").As("b"), goqu.On(goqu.I("b.isbn").Eq(goqu.I("h.isbn")))).
		Select("b.isbn", "b.title", "b.author", "b.year_of_publication", "b.publisher",
			"b.image_url_s", "b.image_url_m", "b.image_url_l", "b.rating", "b.is_available").
		Where(periodWhere(start, end)...)
	return r.queryBooks(ctx, ds)
}

func (r *repo) ListOpen(ctx context.Context) ([]model.Rental, error) {
	ds := dialect.From(goqu.T("history").As("h")).
		Select("h.id", "h.isbn", "h.user_id", "h.start_date", "h.end_date", "h.total_cost").
		Where(goqu.I("h.end_date").IsNull())
	return r.queryRentals(ctx, ds)
}

func (r *repo) OpenBooksForUser(ctx context.Context, userID int64) ([]model.Book, error) {
	ds := dialect.From(goqu.T("history").As("h")).
		Join(goqu.T("books").As("b"), goqu.On(goqu.I("b.isbn").Eq(goqu.I("h.isbn")))).
		Select("b.isbn", "b.title", "b.author", "b.year_of_publication", "b.publisher",
			"b.image_url_s", "b.image_url_m", "b.image_url_l", "b.rating", "b.is_available").
		Where(goqu.I("h.user_id").Eq(userID), goqu.I("h.end_date").IsNull())
	return r.queryBooks(ctx, ds)
}

func (r *repo) queryRentals(ctx context.Context, ds *goqu.SelectDataset) ([]model.Rental, error) {
	sqlStr, args, err := ds.Prepared(true).ToSQL()
	if err != nil {
		return nil, err
	}
	rows, err := r.db.Pool.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Rental
	for rows.Next() {
		var rec model.Rental
		if err := rows.Scan(&rec.ID, &rec.ISBN, &rec.UserID, &rec.StartDate, &rec.EndDate, &rec.TotalCost); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
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
