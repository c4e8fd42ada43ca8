package csvx

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/nikosgrigo/Bookstore-API-PostgreSQL/model"
)

func TestReadBooks(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "Books.csv")
	csv := "ISBN,Book-Title,Book-Author,Year-Of-Publication,Publisher,Image-URL-S,Image-URL-M,Image-URL-L,User-ID,Book-Rating\n" +
		"0195153448,Classical Mythology,Mark P. O. Morford,2002,Oxford University Press,http://s.example/1.jpg,http://m.example/1.jpg,http://l.example/1.jpg,0,0\n" +
		"0002005018,Clara Callan,Richard Bruce Wright,2001,HarperFlamingo Canada,http://s.example/2.jpg,http://m.example/2.jpg,http://l.example/2.jpg,8,5\n"
	require.NoError(t, os.WriteFile(path, []byte(csv), 0o644))

	books, err := ReadBooks(path)
	require.NoError(t, err)
	require.Len(t, books, 2)

	require.Equal(t, "0195153448", books[0].ISBN)
	require.Equal(t, "Classical Mythology", books[0].Title)
	require.Equal(t, 2002, books[0].YearOfPublication)
	require.True(t, books[0].IsAvailable)
	require.Equal(t, 5, books[1].Rating)
}

func TestReadBooks_MissingColumn(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "Books.csv")
	require.NoError(t, os.WriteFile(path, []byte("Title,Author\na,b\n"), 0o644))

	_, err := ReadBooks(path)
	require.Error(t, err)
}

func TestReadBooks_MissingFile(t *testing.T) {
	_, err := ReadBooks(filepath.Join(t.TempDir(), "nope.csv"))
	require.True(t, os.IsNotExist(err))
}

func TestWriteRentals(t *testing.T) {
	start := time.Date(2023, 12, 18, 0, 0, 0, 0, time.UTC)
	end := time.Date(2023, 12, 23, 0, 0, 0, 0, time.UTC)

	path := filepath.Join(t.TempDir(), "out", "Rentals.csv")
	rentals := []model.Rental{
		{ID: 1, ISBN: "1111111111", UserID: 7, StartDate: start, EndDate: &end, TotalCost: 4},
		{ID: 2, ISBN: "2222222222", UserID: 8, StartDate: start},
	}
	require.NoError(t, WriteRentals(path, rentals))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(raw)
	require.Contains(t, out, "1,1111111111,7,2023-12-18,2023-12-23,4")
	// open rental has a blank end_date
	require.Contains(t, out, "2,2222222222,8,2023-12-18,,0")
}
