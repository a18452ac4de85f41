package model

// Theatre is a venue hosting shows.  Theatres are read-only reference
// data seeded at startup; they are never created or mutated through
// the HTTP surface.
type Theatre struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location"`
}
