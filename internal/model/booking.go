package model

// Booking records a committed reservation: a user holding seats in a
// show and the amount debited for them.  Bookings are immutable once
// created; cancellation removes the record after releasing its seats
// and refunding its amount.  AmountCharged is kept for the refund on
// cancellation and is not part of the wire format.
type Booking struct {
	ID            int64 `json:"id"`
	ShowID        int64 `json:"show_id"`
	UserID        int64 `json:"user_id"`
	SeatsBooked   int   `json:"seats_booked"`
	AmountCharged int64 `json:"-"`
}
