package models

import (
	"fmt"
	"time"
)

type Kind string

const (
	KindWorkspace      Kind = "workspace"
	KindConferenceRoom Kind = "conference_room"
)

func (k Kind) Valid() bool {
	return k == KindWorkspace || k == KindConferenceRoom
}

// Resource is anything bookable. Identity is the (Kind, ID) pair.
type Resource struct {
	ID       int64  `json:"id"`
	Kind     Kind   `json:"kind"`
	Name     string `json:"name"`
	Capacity int    `json:"capacity"`
}

type ResourceKey struct {
	Kind Kind
	ID   int64
}

func (r Resource) Key() ResourceKey {
	return ResourceKey{Kind: r.Kind, ID: r.ID}
}

func (k ResourceKey) String() string {
	return fmt.Sprintf("%s/%d", k.Kind, k.ID)
}

// TimeOfDay is a wall-clock time within a day, stored as minutes since midnight.
type TimeOfDay int

func NewTimeOfDay(hour, minute int) TimeOfDay {
	return TimeOfDay(hour*60 + minute)
}

// ParseTimeOfDay accepts "HH:MM".
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, fmt.Errorf("invalid time of day %q: %w", s, err)
	}

	return NewTimeOfDay(t.Hour(), t.Minute()), nil
}

func (t TimeOfDay) Hour() int   { return int(t) / 60 }
func (t TimeOfDay) Minute() int { return int(t) % 60 }

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

// On returns the instant of t on the calendar day of date, in date's location.
func (t TimeOfDay) On(date time.Time) time.Time {
	y, m, d := date.Date()
	return time.Date(y, m, d, t.Hour(), t.Minute(), 0, 0, date.Location())
}

// Window is the bookable part of a day for a resource kind.
type Window struct {
	Start TimeOfDay
	End   TimeOfDay
}

func (w Window) String() string {
	return w.Start.String() + "-" + w.End.String()
}

// WindowPolicy maps a resource kind to its day window.
type WindowPolicy map[Kind]Window

func DefaultWindowPolicy() WindowPolicy {
	return WindowPolicy{
		KindWorkspace:      {Start: NewTimeOfDay(0, 0), End: NewTimeOfDay(23, 59)},
		KindConferenceRoom: {Start: NewTimeOfDay(9, 0), End: NewTimeOfDay(18, 0)},
	}
}

// Window falls back to the default policy for kinds the receiver does not set.
func (p WindowPolicy) Window(k Kind) Window {
	if w, ok := p[k]; ok {
		return w
	}

	return DefaultWindowPolicy()[k]
}
