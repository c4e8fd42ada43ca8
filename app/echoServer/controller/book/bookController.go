package book

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nikosgrigo/Bookstore-API-PostgreSQL/app/echoServer/respond"
	booksvc "github.com/nikosgrigo/Bookstore-API-PostgreSQL/service/book"
)

type Controller struct {
	Svc booksvc.Service
	Log *slog.Logger
}

// GET /books
func (h *Controller) List(c echo.Context) error {
	rows, err := h.Svc.ListAvailable(c.Request().Context())
	if err != nil {
		h.Log.Error("book list", "err", err)
		return respond.Message(c, http.StatusInternalServerError, "internal error")
	}
	return respond.Data(c, http.StatusOK, rows)
}

// GET /book/:isbn
func (h *Controller) ByISBN(c echo.Context) error {
	row, err := h.Svc.ByISBN(c.Request().Context(), c.Param("isbn"))
	if err != nil {
		if booksvc.Code(err) == booksvc.ErrNotFound {
			return respond.Message(c, http.StatusNotFound, "Book not found")
		}
		h.Log.Error("book detail", "err", err)
		return respond.Message(c, http.StatusInternalServerError, "internal error")
	}
	return respond.Data(c, http.StatusOK, row)
}

// GET /author/:author
func (h *Controller) ByAuthor(c echo.Context) error {
	return h.byField(c, "author", c.Param("author"))
}

// GET /publisher/:publisher
func (h *Controller) ByPublisher(c echo.Context) error {
	return h.byField(c, "publisher", c.Param("publisher"))
}

// GET /date/:year
func (h *Controller) ByYear(c echo.Context) error {
	return h.byField(c, "year", c.Param("year"))
}

func (h *Controller) byField(c echo.Context, field, value string) error {
	rows, err := h.Svc.ByField(c.Request().Context(), field, value)
	if err != nil {
		if booksvc.Code(err) == booksvc.ErrBadFilter {
			return respond.Message(c, http.StatusBadRequest, "invalid filter value")
		}
		h.Log.Error("book filter", "field", field, "err", err)
		return respond.Message(c, http.StatusInternalServerError, "internal error")
	}
	return respond.Data(c, http.StatusOK, rows)
}
