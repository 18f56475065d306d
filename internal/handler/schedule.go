package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/nmartinas/theater-box-office/internal/theater"
)

// ScheduleHandler exposes the day's programme, both as a JSON document and
// as the classic printed schedule.
type ScheduleHandler struct {
	Theater *theater.Theater
}

// GetSchedule handles GET /v1/schedule. The body is an object keyed by the
// current date, each showing carrying its resolved finalShowingPrice.
func (h *ScheduleHandler) GetSchedule(c echo.Context) error {
	doc, err := h.Theater.ScheduleJSON()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not render schedule"})
	}
	return c.JSONBlob(http.StatusOK, doc)
}

// PrintSchedule handles GET /v1/schedule/print with a text/plain rendering,
// one line per showing.
func (h *ScheduleHandler) PrintSchedule(c echo.Context) error {
	var b strings.Builder
	if err := h.Theater.WriteSchedule(&b); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not render schedule"})
	}
	return c.String(http.StatusOK, b.String())
}
