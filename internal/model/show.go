package model

// Show represents a screening that seats can be booked for.  Seat
// counts only move through the show repository's reserve/release
// primitives, which keep 0 <= SeatsAvailable <= the show's original
// capacity at all times.
//
// Fields:
//  ID             – primary identifier.
//  TheatreID      – venue hosting the show.
//  Title          – movie title or an external reference.
//  Price          – price per seat in currency minor units.
//  SeatsAvailable – seats currently open for booking.
type Show struct {
	ID             int64  `json:"id"`
	TheatreID      int64  `json:"theatre_id"`
	Title          string `json:"title"`
	Price          int64  `json:"price"`
	SeatsAvailable int    `json:"seats_available"`
}
