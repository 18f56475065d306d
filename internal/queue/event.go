// Package queue defines message payloads exchanged over the message broker.
package queue

// ReservationConfirmedEvent is published after a reservation is created.
// It carries enough for downstream consumers (notifications, analytics) to
// act without calling back into the box office. Money travels as a
// two-decimal string to keep the exact figure across languages.
type ReservationConfirmedEvent struct {
	ReservationID string `json:"reservation_id"`
	CustomerID    string `json:"customer_id"`
	CustomerName  string `json:"customer_name"`
	MovieTitle    string `json:"movie_title"`
	SequenceOfDay int    `json:"sequence_of_day"`
	StartsAt      string `json:"starts_at"`
	AudienceCount int    `json:"audience_count"`
	TotalFee      string `json:"total_fee"`
	ConfirmedAt   string `json:"confirmed_at"`
}
