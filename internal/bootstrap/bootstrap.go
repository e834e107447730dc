package bootstrap

import (
	"fmt"
	"roomBooker/internal/models"
	"time"
)

const (
	seedCount    = 10
	seedHour     = 10
	seedDuration = 3 * time.Hour
)

type ResourceCreator interface {
	Create(r models.Resource) error
}

type BookingCreator interface {
	CreateBooking(b models.Booking) error
	GetNextBookingID() int64
}

// Seed fills an empty service with demo data: ten workspaces, ten
// conference rooms and one three hour booking per resource on the
// following days, owned by user1..user10.
func Seed(resources ResourceCreator, bookings BookingCreator, now time.Time) error {
	const op = "bootstrap.Seed"

	var seeded []models.Resource

	for i := 1; i <= seedCount; i++ {
		seeded = append(seeded, models.Resource{
			ID:       int64(i),
			Kind:     models.KindWorkspace,
			Name:     fmt.Sprintf("Workspace %d", i),
			Capacity: 5 + i,
		})
	}

	for i := 1; i <= seedCount; i++ {
		seeded = append(seeded, models.Resource{
			ID:       int64(i),
			Kind:     models.KindConferenceRoom,
			Name:     fmt.Sprintf("Conference Room %d", i),
			Capacity: 10 + i,
		})
	}

	for i, r := range seeded {
		if err := resources.Create(r); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}

		day := now.AddDate(0, 0, i+1)
		start := models.NewTimeOfDay(seedHour, 0).On(day)

		b := models.Booking{
			ID:       bookings.GetNextBookingID(),
			User:     fmt.Sprintf("user%d", i%seedCount+1),
			Resource: r,
			Start:    start,
			End:      start.Add(seedDuration),
		}

		if err := bookings.CreateBooking(b); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
	}

	return nil
}
