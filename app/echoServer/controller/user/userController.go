package user

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/nikosgrigo/Bookstore-API-PostgreSQL/app/echoServer/respond"
	usersvc "github.com/nikosgrigo/Bookstore-API-PostgreSQL/service/user"
)

type Controller struct {
	Svc usersvc.Service
	Log *slog.Logger
}

// GET /users/:id  (admin only)
func (h *Controller) Detail(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return respond.Message(c, http.StatusBadRequest, "invalid id")
	}

	detail, err := h.Svc.Detail(c.Request().Context(), id)
	if err != nil {
		if usersvc.Code(err) == usersvc.ErrNotFound {
			return respond.Message(c, http.StatusNotFound, "User not found")
		}
		h.Log.Error("user detail", "err", err)
		return respond.Message(c, http.StatusInternalServerError, "internal error")
	}
	return respond.Data(c, http.StatusOK, detail)
}
