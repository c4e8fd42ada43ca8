// model/book.go
package model

// Book is a catalog entry. ISBN is the primary key and never changes;
// IsAvailable is the single source of truth for whether the book can be
// rented and is mutated only by the rental service.
type Book struct {
	ISBN              string `json:"isbn"`
	Title             string `json:"title"`
	Author            string `json:"author"`
	YearOfPublication int    `json:"year_of_publication"`
	Publisher         string `json:"publisher"`
	ImageURLS         string `json:"image_url_s"`
	ImageURLM         string `json:"image_url_m"`
	ImageURLL         string `json:"image_url_l"`
	Rating            int    `json:"-"`
	IsAvailable       bool   `json:"-"`
}
