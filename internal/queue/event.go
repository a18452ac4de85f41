// Package queue defines message payloads exchanged over the message broker.
package queue

// Queue names used by the publisher and the background consumer.
const (
	BookingConfirmedQueue = "booking.confirmed"
	BookingCancelledQueue = "booking.cancelled"
)

// BookingConfirmedEvent is published after a booking commits.  It
// carries enough for downstream consumers to log, notify or feed
// analytics without querying the service.
type BookingConfirmedEvent struct {
	BookingID     int64  `json:"booking_id"`
	UserID        int64  `json:"user_id"`
	ShowID        int64  `json:"show_id"`
	SeatsBooked   int    `json:"seats_booked"`
	AmountCharged int64  `json:"amount_charged"`
	ConfirmedAt   string `json:"confirmed_at"`
}

// BookingCancelledEvent is published after a booking is cancelled and
// its seats and amount have been returned.
type BookingCancelledEvent struct {
	BookingID      int64  `json:"booking_id"`
	UserID         int64  `json:"user_id"`
	ShowID         int64  `json:"show_id"`
	SeatsReleased  int    `json:"seats_released"`
	AmountRefunded int64  `json:"amount_refunded"`
	CancelledAt    string `json:"cancelled_at"`
}
