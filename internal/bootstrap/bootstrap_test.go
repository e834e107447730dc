package bootstrap

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"roomBooker/internal/models"
	"roomBooker/internal/storage/catalog"
	"roomBooker/internal/storage/memory"
	"testing"
	"time"
)

func TestSeed(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 6, 1, 15, 30, 0, 0, time.UTC)
	resources := catalog.New()
	bookings := memory.New(memory.WithClock(func() time.Time { return now }))

	require.NoError(t, Seed(resources, bookings, now))

	assert.Len(t, resources.List(models.KindWorkspace), 10)
	assert.Len(t, resources.List(models.KindConferenceRoom), 10)

	all := bookings.GetAllBookings()
	require.Len(t, all, 20)
	assert.Equal(t, int64(21), bookings.GetNextBookingID())

	first := all[0]
	assert.Equal(t, "user1", first.User)
	assert.Equal(t, models.KindWorkspace, first.Resource.Kind)
	assert.Equal(t, time.Date(2024, 6, 2, 10, 0, 0, 0, time.UTC), first.Start)
	assert.Equal(t, time.Date(2024, 6, 2, 13, 0, 0, 0, time.UTC), first.End)

	room := all[10]
	assert.Equal(t, models.KindConferenceRoom, room.Resource.Kind)
	assert.Equal(t, "user1", room.User)

	assert.Error(t, Seed(resources, bookings, now), "seeding twice collides")
}
