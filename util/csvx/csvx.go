// Package csvx covers the file interchange edges of the API: the catalog
// seed import and the admin report/backup exports.
package csvx

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/nikosgrigo/Bookstore-API-PostgreSQL/model"
	"github.com/nikosgrigo/Bookstore-API-PostgreSQL/util/datex"
)

// ReadBooks loads catalog rows from a Books.csv dump. Columns are resolved
// by header name so extra columns in the dump are ignored.
func ReadBooks(path string) ([]model.Book, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	rows, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) < 2 {
		return nil, nil
	}

	col := map[string]int{}
	for i, name := range rows[0] {
		col[name] = i
	}
	for _, required := range []string{"ISBN", "Book-Title", "Book-Author"} {
		if _, ok := col[required]; !ok {
			return nil, fmt.Errorf("csvx: missing column %q", required)
		}
	}

	field := func(row []string, name string) string {
		i, ok := col[name]
		if !ok || i >= len(row) {
			return ""
		}
		return row[i]
	}

	var out []model.Book
	for _, row := range rows[1:] {
		year, _ := strconv.Atoi(field(row, "Year-Of-Publication"))
		rating, _ := strconv.Atoi(field(row, "Book-Rating"))
		out = append(out, model.Book{
			ISBN:              field(row, "ISBN"),
			Title:             field(row, "Book-Title"),
			Author:            field(row, "Book-Author"),
			YearOfPublication: year,
			Publisher:         field(row, "Publisher"),
			ImageURLS:         field(row, "Image-URL-S"),
			ImageURLM:         field(row, "Image-URL-M"),
			ImageURLL:         field(row, "Image-URL-L"),
			Rating:            rating,
			IsAvailable:       true,
		})
	}
	return out, nil
}

// WriteBooks exports catalog rows, one line per book.
func WriteBooks(path string, books []model.Book) error {
	return write(path, func(w *csv.Writer) error {
		if err := w.Write([]string{"isbn", "title", "author", "year_of_publication", "publisher"}); err != nil {
			return err
		}
		for _, b := range books {
			err := w.Write([]string{b.ISBN, b.Title, b.Author, strconv.Itoa(b.YearOfPublication), b.Publisher})
			if err != nil {
				return err
			}
		}
		return nil
	})
}

// WriteRentals exports ledger rows; open records leave end_date blank.
func WriteRentals(path string, rentals []model.Rental) error {
	return write(path, func(w *csv.Writer) error {
		if err := w.Write([]string{"id", "isbn", "user_id", "start_date", "end_date", "total_cost"}); err != nil {
			return err
		}
		for _, r := range rentals {
			end := ""
			if r.EndDate != nil {
				end = datex.Format(*r.EndDate)
			}
			err := w.Write([]string{
				strconv.FormatInt(r.ID, 10),
				r.ISBN,
				strconv.FormatInt(r.UserID, 10),
				datex.Format(r.StartDate),
				end,
				strconv.FormatFloat(r.TotalCost, 'f', -1, 64),
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
}

// WriteRevenue exports a single aggregated total.
func WriteRevenue(path string, total float64) error {
	return write(path, func(w *csv.Writer) error {
		if err := w.Write([]string{"total_revenue"}); err != nil {
			return err
		}
		return w.Write([]string{strconv.FormatFloat(total, 'f', -1, 64)})
	})
}

func write(path string, fn func(w *csv.Writer) error) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := fn(w); err != nil {
		return err
	}
	w.Flush()
	return w.Error()
}
