package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/nmartinas/theater-box-office/internal/model"
	"github.com/nmartinas/theater-box-office/internal/queue"
	"github.com/nmartinas/theater-box-office/internal/repository"
	"github.com/nmartinas/theater-box-office/internal/theater"
)

// ReservationHandler serves creation, lookup and mutation of reservations
// against the day's schedule.
type ReservationHandler struct {
	Theater *theater.Theater
	Store   *repository.ReservationStore
	Logger  zerolog.Logger
	// Publish sends a confirmation event after a reservation is created.
	// nil disables eventing; failures are logged and never fail the request.
	Publish func(context.Context, queue.ReservationConfirmedEvent) error
}

type createReservationRequest struct {
	CustomerName string `json:"customer_name"`
	CustomerID   string `json:"customer_id"`
	Sequence     int    `json:"sequence"`
	TicketAmount int    `json:"ticket_amount"`
}

type updateReservationRequest struct {
	TicketAmount *int `json:"ticket_amount"`
	Sequence     *int `json:"sequence"`
}

type reservationView struct {
	ID            string      `json:"id"`
	CustomerName  string      `json:"customer_name"`
	CustomerID    string      `json:"customer_id"`
	MovieTitle    string      `json:"movie_title"`
	SequenceOfDay int         `json:"sequence_of_day"`
	StartTime     string      `json:"start_time"`
	AudienceCount int         `json:"audience_count"`
	FinalPrice    json.Number `json:"final_price"`
	TotalFee      json.Number `json:"total_fee"`
}

// Create handles POST /v1/reservations. It books tickets for a showing
// addressed by its 1-based sequence and returns the priced reservation.
func (h *ReservationHandler) Create(c echo.Context) error {
	var req createReservationRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}

	customer := model.NewCustomer(req.CustomerName, req.CustomerID)
	res, err := h.Theater.CreateReservation(customer, req.Sequence, req.TicketAmount)
	if err != nil {
		return h.mapDomainError(c, err)
	}

	id := h.Store.Add(res)
	view, err := h.buildView(id, res)
	if err != nil {
		return h.mapDomainError(c, err)
	}

	h.publishConfirmed(id, res, view.TotalFee)
	return c.JSON(http.StatusCreated, view)
}

// Get handles GET /v1/reservations/:id.
func (h *ReservationHandler) Get(c echo.Context) error {
	res, err := h.Store.Get(c.Param("id"))
	if err != nil {
		return h.mapDomainError(c, err)
	}
	view, err := h.buildView(c.Param("id"), res)
	if err != nil {
		return h.mapDomainError(c, err)
	}
	return c.JSON(http.StatusOK, view)
}

// List handles GET /v1/reservations, in creation order.
func (h *ReservationHandler) List(c echo.Context) error {
	entries := h.Store.List()
	views := make([]reservationView, 0, len(entries))
	for _, e := range entries {
		view, err := h.buildView(e.ID, e.Reservation)
		if err != nil {
			return h.mapDomainError(c, err)
		}
		views = append(views, view)
	}
	return c.JSON(http.StatusOK, views)
}

// Update handles PATCH /v1/reservations/:id. ticket_amount changes the party
// size; sequence moves the reservation to another showing on the schedule.
func (h *ReservationHandler) Update(c echo.Context) error {
	var req updateReservationRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}

	id := c.Param("id")
	res, err := h.Store.Update(id, func(r *model.Reservation) error {
		// Stage the showing lookup before touching the reservation and let
		// SetAudienceCount fail first, so a rejected request leaves the
		// reservation exactly as it was.
		var showing *model.Showing
		if req.Sequence != nil {
			s, err := h.Theater.ShowingBySequence(*req.Sequence)
			if err != nil {
				return err
			}
			showing = s
		}
		if req.TicketAmount != nil {
			if err := r.SetAudienceCount(*req.TicketAmount); err != nil {
				return err
			}
		}
		if showing != nil {
			r.SetShowing(showing)
		}
		return nil
	})
	if err != nil {
		return h.mapDomainError(c, err)
	}

	view, err := h.buildView(id, res)
	if err != nil {
		return h.mapDomainError(c, err)
	}
	return c.JSON(http.StatusOK, view)
}

func (h *ReservationHandler) buildView(id string, res *model.Reservation) (reservationView, error) {
	now := h.Theater.Now()
	showing := res.Showing()
	price, err := showing.FinalPrice(now)
	if err != nil {
		return reservationView{}, err
	}
	total, err := res.TotalFee(now)
	if err != nil {
		return reservationView{}, err
	}
	return reservationView{
		ID:            id,
		CustomerName:  res.Customer().Name,
		CustomerID:    res.Customer().ID,
		MovieTitle:    showing.Movie.Title,
		SequenceOfDay: showing.SequenceOfDay,
		StartTime:     showing.StartTime.Format(time.RFC3339),
		AudienceCount: res.AudienceCount(),
		FinalPrice:    json.Number(price.StringFixed(2)),
		TotalFee:      json.Number(total.StringFixed(2)),
	}, nil
}

func (h *ReservationHandler) publishConfirmed(id string, res *model.Reservation, totalFee json.Number) {
	if h.Publish == nil {
		return
	}
	showing := res.Showing()
	event := queue.ReservationConfirmedEvent{
		ReservationID: id,
		CustomerID:    res.Customer().ID,
		CustomerName:  res.Customer().Name,
		MovieTitle:    showing.Movie.Title,
		SequenceOfDay: showing.SequenceOfDay,
		StartsAt:      showing.StartTime.Format(time.RFC3339),
		AudienceCount: res.AudienceCount(),
		TotalFee:      string(totalFee),
		ConfirmedAt:   time.Now().UTC().Format(time.RFC3339),
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := h.Publish(ctx, event); err != nil {
			h.Logger.Warn().Err(err).Str("reservation_id", id).Msg("reservation event not published")
		}
	}()
}

func (h *ReservationHandler) mapDomainError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, model.ErrInvalidInput):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	case errors.Is(err, theater.ErrShowingNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": err.Error()})
	case errors.Is(err, repository.ErrReservationNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": "reservation not found"})
	}
	h.Logger.Error().Err(err).Msg("reservation request failed")
	return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal error"})
}
