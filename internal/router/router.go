// Package router defines how HTTP routes are registered for the API.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/nmartinas/theater-box-office/internal/handler"
)

// RegisterRoutes wires all endpoints onto the Echo instance. The schedule
// endpoints are public read-only views; reservations live under /v1 too but
// accept writes.
func RegisterRoutes(e *echo.Echo, schedule *handler.ScheduleHandler, reservations *handler.ReservationHandler) {
	e.GET("/healthz", handler.Health)

	v1 := e.Group("/v1")
	v1.GET("/schedule", schedule.GetSchedule)
	v1.GET("/schedule/print", schedule.PrintSchedule)

	v1.POST("/reservations", reservations.Create)
	v1.GET("/reservations", reservations.List)
	v1.GET("/reservations/:id", reservations.Get)
	v1.PATCH("/reservations/:id", reservations.Update)
}
