package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Movie describes a film on the day's programme. All fields are set at
// construction and never change; showings share a single *Movie between them.
//
// Fields:
//
//	Title       – display title of the film.
//	Description – short blurb shown on the schedule.
//	RunningTime – total running time of the film.
//	TicketPrice – base per-ticket price before any discount.
//	SpecialCode – promo flag; code 1 marks a special movie eligible
//	              for the percentage discount.
type Movie struct {
	Title       string
	Description string
	RunningTime time.Duration
	TicketPrice decimal.Decimal
	SpecialCode int
}

// NewMovie constructs an immutable movie record.
func NewMovie(title, description string, runningTime time.Duration, ticketPrice decimal.Decimal, specialCode int) *Movie {
	return &Movie{
		Title:       title,
		Description: description,
		RunningTime: runningTime,
		TicketPrice: ticketPrice,
		SpecialCode: specialCode,
	}
}

// Equal reports whether two movies match field for field. Ticket prices are
// compared by numeric value, so a movie priced 12.5 equals one priced 12.50.
func (m *Movie) Equal(other *Movie) bool {
	if m == nil || other == nil {
		return m == other
	}
	return m.Title == other.Title &&
		m.Description == other.Description &&
		m.RunningTime == other.RunningTime &&
		m.SpecialCode == other.SpecialCode &&
		m.TicketPrice.Equal(other.TicketPrice)
}
