package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Showing schedules one screening of a movie within a single day.
//
// Fields:
//
//	Movie         – the film being screened; shared with other showings.
//	SequenceOfDay – 1-based slot within the day's schedule. Zero means
//	                unset and is rejected by the discount policy.
//	StartTime     – when the screening begins.
type Showing struct {
	Movie         *Movie
	SequenceOfDay int
	StartTime     time.Time
}

// NewShowing constructs an immutable showing.
func NewShowing(movie *Movie, sequenceOfDay int, startTime time.Time) *Showing {
	return &Showing{Movie: movie, SequenceOfDay: sequenceOfDay, StartTime: startTime}
}

// FinalPrice resolves the per-ticket price at the given evaluation time:
// the movie's base ticket price minus the best applicable discount, rounded
// to two decimals half-up. No floor is applied; pricing keeps the raw
// subtraction even if a flat discount exceeds a very cheap ticket.
func (s *Showing) FinalPrice(now time.Time) (decimal.Decimal, error) {
	discount, err := TicketDiscount(s, now)
	if err != nil {
		return decimal.Zero, err
	}
	return s.Movie.TicketPrice.Sub(discount).Round(2), nil
}
