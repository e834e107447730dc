package models

import "time"

type BookingState string

const (
	StateConfirmed BookingState = "confirmed"
	StateElapsed   BookingState = "elapsed"
)

type Booking struct {
	ID       int64     `json:"id"`
	User     string    `json:"user"`
	Resource Resource  `json:"resource"`
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
}

// Overlaps reports whether the half-open intervals [Start, End) intersect.
func (b Booking) Overlaps(start, end time.Time) bool {
	return b.Start.Before(end) && start.Before(b.End)
}

// State of a stored booking. Cancelled bookings are not stored, so they have no state here.
func (b Booking) State(now time.Time) BookingState {
	if now.After(b.End) {
		return StateElapsed
	}

	return StateConfirmed
}

// SameDay reports whether a falls on b's calendar day, in b's location.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.In(b.Location()).Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
