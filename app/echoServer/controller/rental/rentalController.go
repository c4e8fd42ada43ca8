package rental

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nikosgrigo/Bookstore-API-PostgreSQL/app/echoServer/jwtx"
	"github.com/nikosgrigo/Bookstore-API-PostgreSQL/app/echoServer/respond"
	rs "github.com/nikosgrigo/Bookstore-API-PostgreSQL/service/rental"
)

type Controller struct {
	Svc rs.Service
	Log *slog.Logger
}

// POST /rent/:isbn
func (h *Controller) Rent(c echo.Context) error {
	ac, ok := jwtx.FromContext(c)
	if !ok {
		return respond.Message(c, http.StatusUnauthorized, "unauthorized")
	}
	isbn := c.Param("isbn")

	if err := h.Svc.Rent(c.Request().Context(), isbn, ac.UserID); err != nil {
		switch rs.Code(err) {
		case rs.ErrNotAvailable:
			return respond.Message(c, http.StatusBadRequest, "Book not available for rent")
		default:
			h.Log.Error("rent", "isbn", isbn, "err", err)
			return respond.Message(c, http.StatusInternalServerError, "internal error")
		}
	}
	return respond.Message(c, http.StatusOK, "Book rented successfully")
}

// PUT /return/:isbn  (admin only, enforced by RequireAdmin)
func (h *Controller) Return(c echo.Context) error {
	isbn := c.Param("isbn")

	fee, err := h.Svc.Return(c.Request().Context(), isbn)
	if err != nil {
		switch rs.Code(err) {
		case rs.ErrNotRented:
			return respond.Message(c, http.StatusBadRequest, "Book not found or not currently rented")
		default:
			h.Log.Error("return", "isbn", isbn, "err", err)
			return respond.Message(c, http.StatusInternalServerError, "internal error")
		}
	}
	return respond.RentalFee(c, http.StatusOK, "Book returned successfully", fee)
}
