// service/book/book_service_test.go
package booksvc_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	repo "github.com/nikosgrigo/Bookstore-API-PostgreSQL/repository/book"
	booksvc "github.com/nikosgrigo/Bookstore-API-PostgreSQL/service/book"
)

type repoMock struct {
	listFn   func(ctx context.Context) ([]booksvc.Book, error)
	byISBNFn func(ctx context.Context, isbn string) (*booksvc.Book, error)
	filterFn func(ctx context.Context, f repo.Filter) ([]booksvc.Book, error)
	countFn  func(ctx context.Context) (int64, error)
	bulkFn   func(ctx context.Context, books []booksvc.Book) (int64, error)
}

func (m *repoMock) ListAvailable(ctx context.Context) ([]booksvc.Book, error) { return m.listFn(ctx) }
func (m *repoMock) ByISBN(ctx context.Context, isbn string) (*booksvc.Book, error) {
	return m.byISBNFn(ctx, isbn)
}
func (m *repoMock) ByFilter(ctx context.Context, f repo.Filter) ([]booksvc.Book, error) {
	return m.filterFn(ctx, f)
}
func (m *repoMock) Count(ctx context.Context) (int64, error) { return m.countFn(ctx) }
func (m *repoMock) BulkInsert(ctx context.Context, books []booksvc.Book) (int64, error) {
	return m.bulkFn(ctx, books)
}

func TestByISBN_NotFound(t *testing.T) {
	m := &repoMock{
		byISBNFn: func(ctx context.Context, isbn string) (*booksvc.Book, error) { return nil, nil },
	}
	s := booksvc.New(m)

	_, err := s.ByISBN(context.Background(), "0000000000")
	require.Equal(t, booksvc.ErrNotFound, booksvc.Code(err))
}

func TestByField_EnumeratedFields(t *testing.T) {
	var got repo.Filter
	m := &repoMock{
		filterFn: func(ctx context.Context, f repo.Filter) ([]booksvc.Book, error) {
			got = f
			return []booksvc.Book{{ISBN: "1111111111"}}, nil
		},
	}
	s := booksvc.New(m)

	_, err := s.ByField(context.Background(), "author", "Agatha Christie")
	require.NoError(t, err)
	require.Equal(t, repo.Filter{Field: repo.FieldAuthor, Value: "Agatha Christie"}, got)

	_, err = s.ByField(context.Background(), "publisher", "Penguin")
	require.NoError(t, err)
	require.Equal(t, repo.FieldPublisher, got.Field)

	_, err = s.ByField(context.Background(), "year", "2004")
	require.NoError(t, err)
	require.Equal(t, repo.Filter{Field: repo.FieldYear, Value: 2004}, got)
}

func TestByField_RejectsUnknownField(t *testing.T) {
	s := booksvc.New(&repoMock{})

	_, err := s.ByField(context.Background(), "title", "anything")
	require.Equal(t, booksvc.ErrBadFilter, booksvc.Code(err))
}

func TestByField_RejectsNonNumericYear(t *testing.T) {
	s := booksvc.New(&repoMock{})

	_, err := s.ByField(context.Background(), "year", "not-a-year")
	require.Equal(t, booksvc.ErrBadFilter, booksvc.Code(err))
}

func TestSeed_SkipsNonEmptyCatalog(t *testing.T) {
	bulkCalled := false
	m := &repoMock{
		countFn: func(ctx context.Context) (int64, error) { return 271379, nil },
		bulkFn: func(ctx context.Context, books []booksvc.Book) (int64, error) {
			bulkCalled = true
			return 0, nil
		},
	}
	s := booksvc.New(m)

	require.NoError(t, s.Seed(context.Background(), "does-not-matter.csv"))
	require.False(t, bulkCalled)
}

func TestSeed_MissingFileIsNotFatal(t *testing.T) {
	m := &repoMock{
		countFn: func(ctx context.Context) (int64, error) { return 0, nil },
	}
	s := booksvc.New(m)

	require.NoError(t, s.Seed(context.Background(), "/definitely/not/here/Books.csv"))
}
