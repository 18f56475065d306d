package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nmartinas/theater-box-office/internal/model"
	"github.com/nmartinas/theater-box-office/internal/queue"
	"github.com/nmartinas/theater-box-office/internal/repository"
	"github.com/nmartinas/theater-box-office/internal/theater"
)

var testDay = time.Date(2022, 3, 20, 10, 0, 0, 0, time.UTC)

func newTestHandler() *ReservationHandler {
	special := model.NewMovie("Spider-Man: No Way Home", "Spider-Man movie description.", 90*time.Minute, decimal.RequireFromString("22.5"), 1)
	regular := model.NewMovie("Turning Red", "This is a Disney movie.", 85*time.Minute, decimal.NewFromInt(11), 0)
	at := func(hour, min int) time.Time {
		return time.Date(2022, 3, 20, hour, min, 0, 0, time.UTC)
	}
	schedule := []*model.Showing{
		model.NewShowing(regular, 1, at(9, 0)),
		model.NewShowing(special, 2, at(18, 0)),
	}
	th := theater.New(schedule, theater.WithClock(func() time.Time { return testDay }))
	return &ReservationHandler{
		Theater: th,
		Store:   repository.NewReservationStore(),
		Logger:  zerolog.Nop(),
	}
}

func doJSON(t *testing.T, h echo.HandlerFunc, method, target, body string, params map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	for k, v := range params {
		c.SetParamNames(k)
		c.SetParamValues(v)
	}
	require.NoError(t, h(c))
	return rec
}

func TestCreateReservation(t *testing.T) {
	h := newTestHandler()

	rec := doJSON(t, h.Create, http.MethodPost, "/v1/reservations",
		`{"customer_name":"Ada","customer_id":"c-1","sequence":2,"ticket_amount":5}`, nil)

	require.Equal(t, http.StatusCreated, rec.Code)

	var view struct {
		ID            string      `json:"id"`
		MovieTitle    string      `json:"movie_title"`
		AudienceCount int         `json:"audience_count"`
		FinalPrice    json.Number `json:"final_price"`
		TotalFee      json.Number `json:"total_fee"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))

	assert.NotEmpty(t, view.ID)
	assert.Equal(t, "Spider-Man: No Way Home", view.MovieTitle)
	assert.Equal(t, 5, view.AudienceCount)
	// 20% off $22.50 -> $18.00 per ticket, $90.00 for five.
	assert.Equal(t, json.Number("18.00"), view.FinalPrice)
	assert.Equal(t, json.Number("90.00"), view.TotalFee)

	stored, err := h.Store.Get(view.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, stored.AudienceCount())
}

func TestCreateReservationSequenceNotFound(t *testing.T) {
	h := newTestHandler()

	rec := doJSON(t, h.Create, http.MethodPost, "/v1/reservations",
		`{"customer_name":"Ada","customer_id":"c-1","sequence":9,"ticket_amount":2}`, nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateReservationInvalidTicketAmount(t *testing.T) {
	h := newTestHandler()

	rec := doJSON(t, h.Create, http.MethodPost, "/v1/reservations",
		`{"customer_name":"Ada","customer_id":"c-1","sequence":1,"ticket_amount":0}`, nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateReservationPublishesEvent(t *testing.T) {
	h := newTestHandler()

	var (
		mu        sync.Mutex
		published []queue.ReservationConfirmedEvent
		done      = make(chan struct{})
	)
	h.Publish = func(_ context.Context, e queue.ReservationConfirmedEvent) error {
		mu.Lock()
		published = append(published, e)
		mu.Unlock()
		close(done)
		return nil
	}

	rec := doJSON(t, h.Create, http.MethodPost, "/v1/reservations",
		`{"customer_name":"Ada","customer_id":"c-1","sequence":1,"ticket_amount":2}`, nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("event was not published")
	}

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, published, 1)
	assert.Equal(t, "Turning Red", published[0].MovieTitle)
	// First slot: flat $3 off $11, two tickets -> $16.00.
	assert.Equal(t, "16.00", published[0].TotalFee)
}

func TestGetReservation(t *testing.T) {
	h := newTestHandler()
	res, err := h.Theater.CreateReservation(model.NewCustomer("Ada", "c-1"), 1, 2)
	require.NoError(t, err)
	id := h.Store.Add(res)

	rec := doJSON(t, h.Get, http.MethodGet, "/v1/reservations/"+id, "", map[string]string{"id": id})
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, h.Get, http.MethodGet, "/v1/reservations/missing", "", map[string]string{"id": "missing"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListReservations(t *testing.T) {
	h := newTestHandler()
	for i := 0; i < 2; i++ {
		res, err := h.Theater.CreateReservation(model.NewCustomer("Ada", "c-1"), 1, 1)
		require.NoError(t, err)
		h.Store.Add(res)
	}

	rec := doJSON(t, h.List, http.MethodGet, "/v1/reservations", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var views []json.RawMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &views))
	assert.Len(t, views, 2)
}

func TestUpdateReservation(t *testing.T) {
	h := newTestHandler()
	res, err := h.Theater.CreateReservation(model.NewCustomer("Ada", "c-1"), 1, 2)
	require.NoError(t, err)
	id := h.Store.Add(res)

	t.Run("change party size and showing", func(t *testing.T) {
		rec := doJSON(t, h.Update, http.MethodPatch, "/v1/reservations/"+id,
			`{"ticket_amount":3,"sequence":2}`, map[string]string{"id": id})
		require.Equal(t, http.StatusOK, rec.Code)

		var view struct {
			SequenceOfDay int         `json:"sequence_of_day"`
			AudienceCount int         `json:"audience_count"`
			TotalFee      json.Number `json:"total_fee"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
		assert.Equal(t, 2, view.SequenceOfDay)
		assert.Equal(t, 3, view.AudienceCount)
		assert.Equal(t, json.Number("54.00"), view.TotalFee)
	})

	t.Run("invalid party size is rejected", func(t *testing.T) {
		rec := doJSON(t, h.Update, http.MethodPatch, "/v1/reservations/"+id,
			`{"ticket_amount":0}`, map[string]string{"id": id})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("rejected update applies nothing", func(t *testing.T) {
		before, err := h.Store.Get(id)
		require.NoError(t, err)
		showing := before.Showing()
		count := before.AudienceCount()

		// A valid sequence next to an invalid party size must not move the
		// reservation to the new showing.
		rec := doJSON(t, h.Update, http.MethodPatch, "/v1/reservations/"+id,
			`{"sequence":1,"ticket_amount":0}`, map[string]string{"id": id})
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		after, err := h.Store.Get(id)
		require.NoError(t, err)
		assert.Same(t, showing, after.Showing())
		assert.Equal(t, count, after.AudienceCount())

		// And a valid party size next to an unknown sequence must not change
		// the count.
		rec = doJSON(t, h.Update, http.MethodPatch, "/v1/reservations/"+id,
			`{"sequence":42,"ticket_amount":9}`, map[string]string{"id": id})
		assert.Equal(t, http.StatusNotFound, rec.Code)

		after, err = h.Store.Get(id)
		require.NoError(t, err)
		assert.Same(t, showing, after.Showing())
		assert.Equal(t, count, after.AudienceCount())
	})

	t.Run("unknown sequence is rejected", func(t *testing.T) {
		rec := doJSON(t, h.Update, http.MethodPatch, "/v1/reservations/"+id,
			`{"sequence":42}`, map[string]string{"id": id})
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("unknown reservation", func(t *testing.T) {
		rec := doJSON(t, h.Update, http.MethodPatch, "/v1/reservations/missing",
			`{"ticket_amount":1}`, map[string]string{"id": "missing"})
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
