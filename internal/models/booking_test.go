package models

import (
	"github.com/stretchr/testify/assert"
	"testing"
	"time"
)

func TestSameDay(t *testing.T) {
	t.Parallel()

	plusTwo := time.FixedZone("UTC+2", 2*60*60)
	day := time.Date(2030, 6, 20, 0, 0, 0, 0, time.UTC)

	testCases := []struct {
		name     string
		at       time.Time
		expected bool
	}{
		{name: "Same UTC day", at: time.Date(2030, 6, 20, 23, 0, 0, 0, time.UTC), expected: true},
		{name: "Late evening in another zone", at: time.Date(2030, 6, 21, 1, 0, 0, 0, plusTwo), expected: true},
		{name: "Early morning in another zone", at: time.Date(2030, 6, 20, 1, 0, 0, 0, plusTwo), expected: false},
		{name: "Next day", at: time.Date(2030, 6, 21, 0, 0, 0, 0, time.UTC), expected: false},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, SameDay(tc.at, day), tc.name)
	}
}

func TestBookingOverlapsAndState(t *testing.T) {
	t.Parallel()

	start := time.Date(2030, 6, 20, 10, 0, 0, 0, time.UTC)
	b := Booking{ID: 1, Start: start, End: start.Add(time.Hour)}

	assert.True(t, b.Overlaps(start.Add(30*time.Minute), start.Add(2*time.Hour)))
	assert.False(t, b.Overlaps(b.End, b.End.Add(time.Hour)), "touching intervals do not overlap")
	assert.False(t, b.Overlaps(start.Add(-time.Hour), start))

	assert.Equal(t, StateConfirmed, b.State(b.End))
	assert.Equal(t, StateElapsed, b.State(b.End.Add(time.Nanosecond)))
}
