package memory

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"roomBooker/internal/models"
	"roomBooker/internal/storage"
	"testing"
	"time"
)

var (
	testNow   = time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)
	testDay   = time.Date(2024, 6, 20, 0, 0, 0, 0, time.UTC)
	workspace = models.Resource{ID: 1, Kind: models.KindWorkspace, Name: "Workspace 1", Capacity: 6}
	room      = models.Resource{ID: 1, Kind: models.KindConferenceRoom, Name: "Conference Room 1", Capacity: 11}
)

func newTestStorage() *Storage {
	return New(WithClock(func() time.Time { return testNow }))
}

func at(hour, minute int) time.Time {
	return time.Date(2024, 6, 20, hour, minute, 0, 0, time.UTC)
}

func booking(id int64, r models.Resource, from, to time.Time) models.Booking {
	return models.Booking{ID: id, User: "user1", Resource: r, Start: from, End: to}
}

func TestGetFreeSlots(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		bookings []models.Booking
		resource models.Resource
		expected []models.Slot
	}{
		{
			name:     "Empty store workspace",
			resource: workspace,
			expected: []models.Slot{{Start: at(0, 0), End: at(23, 59)}},
		},
		{
			name:     "Empty store conference room",
			resource: room,
			expected: []models.Slot{{Start: at(9, 0), End: at(18, 0)}},
		},
		{
			name:     "Room with one booking",
			bookings: []models.Booking{booking(1, room, at(10, 0), at(12, 0))},
			resource: room,
			expected: []models.Slot{
				{Start: at(9, 0), End: at(10, 0)},
				{Start: at(12, 0), End: at(18, 0)},
			},
		},
		{
			name: "Adjacent bookings leave no gap between them",
			bookings: []models.Booking{
				booking(1, room, at(13, 0), at(14, 0)),
				booking(2, room, at(9, 0), at(11, 0)),
				booking(3, room, at(11, 0), at(13, 0)),
			},
			resource: room,
			expected: []models.Slot{{Start: at(14, 0), End: at(18, 0)}},
		},
		{
			name:     "Booking filling the whole window",
			bookings: []models.Booking{booking(1, room, at(9, 0), at(18, 0))},
			resource: room,
			expected: nil,
		},
		{
			name: "Other resource and other day are ignored",
			bookings: []models.Booking{
				booking(1, workspace, at(10, 0), at(12, 0)),
				booking(2, room, at(10, 0).AddDate(0, 0, 1), at(12, 0).AddDate(0, 0, 1)),
			},
			resource: room,
			expected: []models.Slot{{Start: at(9, 0), End: at(18, 0)}},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			s := newTestStorage()
			for _, b := range tc.bookings {
				require.NoError(t, s.CreateBooking(b))
			}

			assert.Equal(t, tc.expected, s.GetFreeSlots(testDay, tc.resource))
		})
	}
}

func TestFreeSlotsCoverWindow(t *testing.T) {
	t.Parallel()

	s := newTestStorage()
	require.NoError(t, s.CreateBooking(booking(1, room, at(9, 30), at(10, 0))))
	require.NoError(t, s.CreateBooking(booking(2, room, at(12, 15), at(13, 45))))
	require.NoError(t, s.CreateBooking(booking(3, room, at(17, 0), at(18, 0))))

	type interval struct{ start, end time.Time }
	var parts []interval
	for _, slot := range s.GetFreeSlots(testDay, room) {
		parts = append(parts, interval{slot.Start, slot.End})
	}
	for _, b := range s.GetAllBookings() {
		parts = append(parts, interval{b.Start, b.End})
	}

	var covered time.Duration
	for i, p := range parts {
		covered += p.end.Sub(p.start)
		for _, q := range parts[i+1:] {
			assert.False(t, p.start.Before(q.end) && q.start.Before(p.end), "double coverage")
		}
	}

	assert.Equal(t, 9*time.Hour, covered)
}

func TestFreeSlotsIgnoreBookingsOutsideWindow(t *testing.T) {
	t.Parallel()

	s := newTestStorage()
	require.NoError(t, s.Restore([]models.Booking{
		booking(1, room, at(6, 0), at(7, 0)),
		booking(2, room, at(8, 0), at(9, 30)),
		booking(3, room, at(12, 0), at(13, 0)),
		booking(4, room, at(17, 30), at(19, 0)),
		booking(5, room, at(19, 0), at(20, 0)),
	}))

	assert.Equal(t, []models.Slot{
		{Start: at(9, 30), End: at(12, 0)},
		{Start: at(13, 0), End: at(17, 30)},
	}, s.GetFreeSlots(testDay, room))

	require.NoError(t, s.Restore([]models.Booking{booking(6, workspace, at(10, 0), at(12, 0))}))
	require.NoError(t, s.UpdateBooking(booking(6, workspace, at(9, 0), at(10, 0))))

	assert.Equal(t, []models.Slot{
		{Start: at(0, 0), End: at(9, 0)},
		{Start: at(10, 0), End: at(23, 59)},
	}, s.GetFreeSlots(testDay, workspace), "update is reflected in coverage")
}

func TestFreeSlotsTimeZones(t *testing.T) {
	t.Parallel()

	plusTwo := time.FixedZone("UTC+2", 2*60*60)
	late := booking(1, workspace, at(23, 0).In(plusTwo), at(23, 30).In(plusTwo))

	s := newTestStorage()
	require.NoError(t, s.Restore([]models.Booking{late}))

	slots := s.GetFreeSlots(testDay, workspace)
	require.Len(t, slots, 2)
	assert.True(t, slots[0].Start.Equal(at(0, 0)))
	assert.True(t, slots[0].End.Equal(at(23, 0)))
	assert.True(t, slots[1].Start.Equal(at(23, 30)))
	assert.True(t, slots[1].End.Equal(at(23, 59)))

	next := testDay.AddDate(0, 0, 1)
	assert.Equal(t, []models.Slot{{Start: next, End: next.Add(23*time.Hour + 59*time.Minute)}},
		s.GetFreeSlots(next, workspace), "booking belongs to the UTC day it starts on")
}

func TestCreateBooking(t *testing.T) {
	t.Parallel()

	t.Run("Past start time", func(t *testing.T) {
		t.Parallel()

		s := New()
		past := time.Date(2020, 1, 1, 10, 0, 0, 0, time.UTC)
		err := s.CreateBooking(booking(1, room, past, past.Add(time.Hour)))

		assert.ErrorIs(t, err, storage.ErrPastStartTime)
		assert.Empty(t, s.GetAllBookings())
	})

	t.Run("Overlapping interval on same resource", func(t *testing.T) {
		t.Parallel()

		s := newTestStorage()
		first := booking(1, room, at(10, 0), at(12, 0))
		require.NoError(t, s.CreateBooking(first))

		err := s.CreateBooking(booking(2, room, at(11, 0), at(13, 0)))

		assert.ErrorIs(t, err, storage.ErrTimeConflict)
		assert.Equal(t, []models.Booking{first}, s.GetAllBookings())
	})

	t.Run("Same time on another resource", func(t *testing.T) {
		t.Parallel()

		s := newTestStorage()
		require.NoError(t, s.CreateBooking(booking(1, room, at(10, 0), at(12, 0))))

		assert.NoError(t, s.CreateBooking(booking(2, workspace, at(10, 0), at(12, 0))))
	})

	t.Run("Touching intervals do not overlap", func(t *testing.T) {
		t.Parallel()

		s := newTestStorage()
		require.NoError(t, s.CreateBooking(booking(1, room, at(10, 0), at(12, 0))))

		assert.NoError(t, s.CreateBooking(booking(2, room, at(12, 0), at(13, 0))))
	})

	t.Run("Duplicate id fails regardless of payload", func(t *testing.T) {
		t.Parallel()

		s := newTestStorage()
		require.NoError(t, s.CreateBooking(booking(1, room, at(10, 0), at(12, 0))))

		err := s.CreateBooking(booking(1, workspace, at(15, 0), at(16, 0)))
		assert.ErrorIs(t, err, storage.ErrDuplicateID)

		err = s.CreateBooking(booking(1, room, at(10, 0), at(12, 0)))
		assert.ErrorIs(t, err, storage.ErrDuplicateID)
	})

	t.Run("Empty interval", func(t *testing.T) {
		t.Parallel()

		s := newTestStorage()
		err := s.CreateBooking(booking(1, room, at(10, 0), at(10, 0)))

		assert.ErrorIs(t, err, storage.ErrInvalidInterval)
	})
}

func TestUpdateBooking(t *testing.T) {
	t.Parallel()

	s := newTestStorage()
	require.NoError(t, s.CreateBooking(booking(1, room, at(10, 0), at(12, 0))))
	require.NoError(t, s.CreateBooking(booking(2, room, at(14, 0), at(15, 0))))

	moved := booking(1, room, at(10, 30), at(12, 30))
	require.NoError(t, s.UpdateBooking(moved), "own interval must not conflict")

	got, err := s.GetBooking(1)
	require.NoError(t, err)
	assert.Equal(t, moved, got)

	err = s.UpdateBooking(booking(1, room, at(13, 0), at(14, 30)))
	assert.ErrorIs(t, err, storage.ErrTimeConflict)

	got, err = s.GetBooking(1)
	require.NoError(t, err)
	assert.Equal(t, moved, got, "failed update must not mutate")

	err = s.UpdateBooking(booking(42, room, at(16, 0), at(17, 0)))
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestDeleteAndGetBooking(t *testing.T) {
	t.Parallel()

	s := newTestStorage()
	require.NoError(t, s.CreateBooking(booking(1, room, at(10, 0), at(12, 0))))

	require.NoError(t, s.DeleteBooking(1))
	assert.ErrorIs(t, s.DeleteBooking(1), storage.ErrNotFound)

	_, err := s.GetBooking(1)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestGetBookingsForUser(t *testing.T) {
	t.Parallel()

	s := newTestStorage()
	b1 := booking(1, room, at(10, 0), at(11, 0))
	b2 := booking(2, workspace, at(10, 0), at(11, 0))
	b2.User = "user2"
	b3 := booking(3, workspace, at(12, 0), at(13, 0))
	for _, b := range []models.Booking{b1, b2, b3} {
		require.NoError(t, s.CreateBooking(b))
	}

	assert.Equal(t, []models.Booking{b1, b3}, s.GetBookingsForUser("user1"))
	assert.Equal(t, []models.Booking{b2}, s.GetBookingsForUser("user2"))
	assert.Empty(t, s.GetBookingsForUser("nobody"))
}

func TestGetNextBookingID(t *testing.T) {
	t.Parallel()

	s := newTestStorage()
	assert.Equal(t, int64(1), s.GetNextBookingID())

	require.NoError(t, s.CreateBooking(booking(7, room, at(10, 0), at(11, 0))))
	require.NoError(t, s.CreateBooking(booking(3, room, at(11, 0), at(12, 0))))
	assert.Equal(t, int64(8), s.GetNextBookingID())

	require.NoError(t, s.DeleteBooking(7))
	assert.Equal(t, int64(4), s.GetNextBookingID())
}

func TestRestore(t *testing.T) {
	t.Parallel()

	s := newTestStorage()
	past := booking(1, room, at(10, 0).AddDate(-1, 0, 0), at(11, 0).AddDate(-1, 0, 0))
	future := booking(2, room, at(10, 0), at(11, 0))

	require.NoError(t, s.Restore([]models.Booking{past, future}))
	assert.Len(t, s.GetAllBookings(), 2)

	err := s.Restore([]models.Booking{booking(3, room, at(10, 30), at(11, 30)), booking(4, room, at(15, 0), at(16, 0))})
	assert.ErrorIs(t, err, storage.ErrTimeConflict)
	assert.Len(t, s.GetAllBookings(), 2, "failed restore must not mutate")
}

func TestCustomWindows(t *testing.T) {
	t.Parallel()

	s := New(
		WithClock(func() time.Time { return testNow }),
		WithWindows(models.WindowPolicy{
			models.KindConferenceRoom: {Start: models.NewTimeOfDay(8, 0), End: models.NewTimeOfDay(20, 0)},
		}),
	)

	assert.Equal(t, []models.Slot{{Start: at(8, 0), End: at(20, 0)}}, s.GetFreeSlots(testDay, room))
	assert.Equal(t, []models.Slot{{Start: at(0, 0), End: at(23, 59)}}, s.GetFreeSlots(testDay, workspace))
}
