// Package theater holds a single day's schedule of showings and acts as the
// factory for reservations against it. Position in the schedule is addressed
// by the customer-facing 1-based sequence number; whether a showing's own
// SequenceOfDay agrees with its slot is the schedule builder's problem and
// is deliberately not re-checked here.
package theater

import (
	"errors"
	"fmt"
	"time"

	"github.com/nmartinas/theater-box-office/internal/model"
)

// ErrShowingNotFound is returned when a requested sequence has no showing
// in the day's schedule.
var ErrShowingNotFound = errors.New("showing not found")

// Theater owns the day's ordered schedule and the clock used to price it.
type Theater struct {
	schedule []*model.Showing
	now      func() time.Time
}

// Option configures a Theater.
type Option func(*Theater)

// WithClock replaces the time source. Pricing depends on the current date
// for the midday discount window, so tests pin this to a fixed instant.
func WithClock(now func() time.Time) Option {
	return func(t *Theater) { t.now = now }
}

// New builds a theater over the given schedule. The slice is kept as-is;
// ordering is the caller's responsibility.
func New(schedule []*model.Showing, opts ...Option) *Theater {
	t := &Theater{schedule: schedule, now: time.Now}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Schedule returns the day's showings in order.
func (t *Theater) Schedule() []*model.Showing { return t.schedule }

// SetSchedule swaps in a new day's schedule.
func (t *Theater) SetSchedule(schedule []*model.Showing) { t.schedule = schedule }

// Now reports the theater's current time. Handlers use it so every price in
// one request is evaluated against the same instant.
func (t *Theater) Now() time.Time { return t.now() }

// ShowingBySequence looks up the showing at the 1-based schedule position.
func (t *Theater) ShowingBySequence(sequence int) (*model.Showing, error) {
	if sequence < 1 || sequence > len(t.schedule) {
		return nil, fmt.Errorf("%w: no showing for sequence %d", ErrShowingNotFound, sequence)
	}
	return t.schedule[sequence-1], nil
}

// CreateReservation books ticketAmount seats for the showing at the given
// sequence. A non-positive ticketAmount fails with model.ErrInvalidInput;
// a sequence outside the schedule fails with ErrShowingNotFound.
func (t *Theater) CreateReservation(customer *model.Customer, sequence, ticketAmount int) (*model.Reservation, error) {
	if ticketAmount <= 0 {
		return nil, fmt.Errorf("%w: ticket amount must be at least 1, got %d", model.ErrInvalidInput, ticketAmount)
	}
	showing, err := t.ShowingBySequence(sequence)
	if err != nil {
		return nil, err
	}
	return model.NewReservation(customer, showing, ticketAmount)
}
