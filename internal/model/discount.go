package model

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// specialMovieCode flags a movie as eligible for the percentage discount.
const specialMovieCode = 1

// Midday window bounds, built on the current calendar day. A showing that
// starts strictly inside the window gets the percentage discount.
const (
	middayWindowStartHour = 11
	middayWindowEndHour   = 16
)

var (
	specialMovieRate = decimal.NewFromFloat(0.20)
	middayRate       = decimal.NewFromFloat(0.25)

	firstShowingDiscount   = decimal.NewFromInt(3)
	secondShowingDiscount  = decimal.NewFromInt(2)
	seventhShowingDiscount = decimal.NewFromInt(1)
)

// TicketDiscount returns the largest single discount the showing qualifies
// for at the given evaluation time. Candidates are never stacked: a special
// movie on the first slot inside the midday window still gets only the best
// of the three. The zero discount is always a candidate, so the result is
// never negative.
//
// The midday comparison uses bounds built from now's calendar date, not the
// showing's own date. Callers inject now so the policy stays deterministic
// under test.
func TicketDiscount(s *Showing, now time.Time) (decimal.Decimal, error) {
	if s == nil || s.SequenceOfDay == 0 {
		return decimal.Zero, fmt.Errorf("%w: showing with a non-zero sequence of day is required", ErrInvalidInput)
	}
	movie := s.Movie
	if movie == nil || movie.TicketPrice.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: movie with a valid ticket price is required", ErrInvalidInput)
	}

	discount := decimal.Zero

	if movie.SpecialCode == specialMovieCode {
		discount = decimal.Max(discount, movie.TicketPrice.Mul(specialMovieRate))
	}

	switch s.SequenceOfDay {
	case 1:
		discount = decimal.Max(discount, firstShowingDiscount)
	case 2:
		discount = decimal.Max(discount, secondShowingDiscount)
	case 7:
		discount = decimal.Max(discount, seventhShowingDiscount)
	}

	lower := time.Date(now.Year(), now.Month(), now.Day(), middayWindowStartHour, 0, 0, 0, now.Location())
	upper := time.Date(now.Year(), now.Month(), now.Day(), middayWindowEndHour, 0, 0, 0, now.Location())
	if s.StartTime.After(lower) && s.StartTime.Before(upper) {
		discount = decimal.Max(discount, movie.TicketPrice.Mul(middayRate))
	}

	return discount, nil
}
