package repository

import "errors"

// ErrReservationNotFound is returned when no reservation exists for an id.
var ErrReservationNotFound = errors.New("reservation not found")
