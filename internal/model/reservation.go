package model

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Reservation groups a party of customers under one showing. The showing and
// the party size may be reassigned after construction; the customer may not.
// The audienceCount >= 1 invariant is enforced on every write, which is why
// the mutable fields stay unexported.
type Reservation struct {
	customer      *Customer
	showing       *Showing
	audienceCount int
}

// NewReservation constructs a reservation for the given party size.
// A party size below 1 fails with ErrInvalidInput.
func NewReservation(customer *Customer, showing *Showing, audienceCount int) (*Reservation, error) {
	r := &Reservation{customer: customer, showing: showing}
	if err := r.SetAudienceCount(audienceCount); err != nil {
		return nil, err
	}
	return r, nil
}

// Customer returns the customer holding the reservation.
func (r *Reservation) Customer() *Customer { return r.customer }

// Showing returns the showing the reservation is for.
func (r *Reservation) Showing() *Showing { return r.showing }

// SetShowing moves the reservation to another showing. The new showing is
// taken as-is; compatibility with the old one is not checked.
func (r *Reservation) SetShowing(s *Showing) { r.showing = s }

// AudienceCount returns the party size.
func (r *Reservation) AudienceCount() int { return r.audienceCount }

// SetAudienceCount changes the party size, rejecting values below 1.
func (r *Reservation) SetAudienceCount(n int) error {
	if n <= 0 {
		return fmt.Errorf("%w: audience count must be at least 1, got %d", ErrInvalidInput, n)
	}
	r.audienceCount = n
	return nil
}

// TotalFee is the final showing price multiplied by the party size, rounded
// to two decimals half-up. The showing price is itself already rounded, so
// the total rounds twice, matching the published fee schedule exactly.
func (r *Reservation) TotalFee(now time.Time) (decimal.Decimal, error) {
	price, err := r.showing.FinalPrice(now)
	if err != nil {
		return decimal.Zero, err
	}
	return price.Mul(decimal.NewFromInt(int64(r.audienceCount))).Round(2), nil
}
