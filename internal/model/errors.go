package model

import "errors"

// ErrInvalidInput marks validation failures: missing required references,
// a zero sequence of day, or a non-positive party size. Callers match it
// with errors.Is; the wrapped message carries the detail.
var ErrInvalidInput = errors.New("invalid input")
