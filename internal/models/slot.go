package models

import "time"

// Slot is a free [Start, End) interval, computed on demand and never stored.
type Slot struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Contains reports whether [start, end) lies within the slot.
func (s Slot) Contains(start, end time.Time) bool {
	return !start.Before(s.Start) && !end.After(s.End)
}
