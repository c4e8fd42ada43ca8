package report

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nikosgrigo/Bookstore-API-PostgreSQL/app/echoServer/respond"
	backupsvc "github.com/nikosgrigo/Bookstore-API-PostgreSQL/service/backup"
	reportsvc "github.com/nikosgrigo/Bookstore-API-PostgreSQL/service/report"
	"github.com/nikosgrigo/Bookstore-API-PostgreSQL/util/datex"
)

type Controller struct {
	Svc    reportsvc.Service
	Backup backupsvc.Service
	Log    *slog.Logger
}

// GET /rentals?start&end[&shape]  (admin only)
func (h *Controller) Rentals(c echo.Context) error {
	start, end, err := datex.ParseRange(c.QueryParam("start"), c.QueryParam("end"))
	if err != nil {
		return respond.Message(c, http.StatusBadRequest, "Please provide valid dates")
	}

	if reportsvc.Shape(c.QueryParam("shape")) == reportsvc.ShapeRecords {
		rows, err := h.Svc.RecordsInPeriod(c.Request().Context(), start, end)
		if err != nil {
			h.Log.Error("rentals report", "err", err)
			return respond.Message(c, http.StatusInternalServerError, "internal error")
		}
		return respond.Data(c, http.StatusOK, rows)
	}

	books, err := h.Svc.BooksInPeriod(c.Request().Context(), start, end)
	if err != nil {
		h.Log.Error("rentals report", "err", err)
		return respond.Message(c, http.StatusInternalServerError, "internal error")
	}
	// Side-write; the report is still served if the export fails.
	if err := h.Backup.ExportRentals(books); err != nil {
		h.Log.Warn("rentals csv export", "err", err)
	}
	return respond.Data(c, http.StatusOK, books)
}

// GET /revenue?start&end  (admin only)
func (h *Controller) Revenue(c echo.Context) error {
	start, end, err := datex.ParseRange(c.QueryParam("start"), c.QueryParam("end"))
	if err != nil {
		return respond.Message(c, http.StatusBadRequest, "Please provide valid dates")
	}

	total, err := h.Svc.TotalFeeForPeriod(c.Request().Context(), start, end)
	if err != nil {
		h.Log.Error("revenue report", "err", err)
		return respond.Message(c, http.StatusInternalServerError, "internal error")
	}
	if err := h.Backup.ExportRevenue(total); err != nil {
		h.Log.Warn("revenue csv export", "err", err)
	}
	return respond.Data(c, http.StatusOK, total)
}

// GET /backup  (admin only)
func (h *Controller) Snapshot(c echo.Context) error {
	path, err := h.Backup.SnapshotOpenRentals(c.Request().Context())
	if err != nil {
		if backupsvc.Code(err) == backupsvc.ErrNothingToBackup {
			return respond.Message(c, http.StatusNotFound, "Back up could not be created")
		}
		h.Log.Error("backup", "err", err)
		return respond.Message(c, http.StatusInternalServerError, "internal error")
	}
	h.Log.Info("backup written", "path", path)
	return respond.Message(c, http.StatusOK, "Back up successfully created")
}
