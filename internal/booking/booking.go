package booking

import (
	"errors"
	"fmt"
	"log/slog"
	"roomBooker/internal/models"
	"roomBooker/internal/storage"
	"sync"
	"time"
)

var (
	ErrNoAvailability    = errors.New("no available slots for the selected date and resource")
	ErrInvalidRefinement = errors.New("booking times must lie within the selected slot")
	ErrAlreadyElapsed    = errors.New("booking end time has already passed")
)

type IntervalStore interface {
	CreateBooking(b models.Booking) error
	UpdateBooking(b models.Booking) error
	DeleteBooking(id int64) error
	GetBooking(id int64) (models.Booking, error)
	GetAllBookings() []models.Booking
	GetBookingsForUser(user string) []models.Booking
	GetFreeSlots(date time.Time, resource models.Resource) []models.Slot
	GetNextBookingID() int64
	DayWindow(kind models.Kind) models.Window
}

// Service drives a booking from slot selection to confirmation or
// cancellation. All mutations go through one lock, so reading free slots,
// allocating an id and inserting happen as a single step.
type Service struct {
	log   *slog.Logger
	store IntervalStore
	now   func() time.Time

	mu sync.Mutex
}

type Option func(*Service)

func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

func New(log *slog.Logger, store IntervalStore, opts ...Option) *Service {
	s := &Service{
		log:   log,
		store: store,
		now:   time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

type Request struct {
	Resource models.Resource
	User     string
	Date     time.Time
}

// Selection is a proposed booking: one of the offered slots, optionally
// narrowed to [Start, End).
type Selection struct {
	Resource models.Resource
	User     string
	Slot     models.Slot
	Start    time.Time
	End      time.Time
}

// RequestBooking returns the free slots a user may choose from.
func (s *Service) RequestBooking(req Request) ([]models.Slot, error) {
	const op = "booking.RequestBooking"

	slots := s.store.GetFreeSlots(req.Date, req.Resource)
	if len(slots) == 0 {
		return nil, fmt.Errorf("%s: %s on %s: %w", op, req.Resource.Key(), req.Date.Format(time.DateOnly), ErrNoAvailability)
	}

	return slots, nil
}

// ConfirmBooking validates the selection and stores it under the next free id.
func (s *Service) ConfirmBooking(sel Selection) (models.Booking, error) {
	const op = "booking.ConfirmBooking"

	if !sel.Start.Before(sel.End) || !sel.Slot.Contains(sel.Start, sel.End) {
		return models.Booking{}, fmt.Errorf("%s: %w", op, ErrInvalidRefinement)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.stillFree(sel) {
		return models.Booking{}, fmt.Errorf("%s: slot %s-%s is no longer free: %w",
			op, sel.Start.Format(time.TimeOnly), sel.End.Format(time.TimeOnly), storage.ErrTimeConflict)
	}

	b := models.Booking{
		ID:       s.store.GetNextBookingID(),
		User:     sel.User,
		Resource: sel.Resource,
		Start:    sel.Start,
		End:      sel.End,
	}

	if err := s.store.CreateBooking(b); err != nil {
		return models.Booking{}, fmt.Errorf("%s: %w", op, err)
	}

	s.log.Debug("booking confirmed",
		slog.Int64("id", b.ID),
		slog.String("user", b.User),
		slog.String("resource", b.Resource.Key().String()),
	)

	return b, nil
}

// CancelBooking removes a booking whose end time has not passed yet.
func (s *Service) CancelBooking(id int64) error {
	const op = "booking.CancelBooking"

	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := s.store.GetBooking(id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if b.State(s.now()) == models.StateElapsed {
		return fmt.Errorf("%s: id %d: %w", op, id, ErrAlreadyElapsed)
	}

	if err = s.store.DeleteBooking(id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.log.Debug("booking cancelled", slog.Int64("id", id))

	return nil
}

// RescheduleBooking moves a confirmed booking to a new interval. Elapsed
// bookings cannot be changed.
func (s *Service) RescheduleBooking(b models.Booking) error {
	const op = "booking.RescheduleBooking"

	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.store.GetBooking(b.ID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if current.State(s.now()) == models.StateElapsed {
		return fmt.Errorf("%s: id %d: %w", op, b.ID, ErrAlreadyElapsed)
	}

	if b.Start.Before(b.End) && !s.withinWindow(b) {
		return fmt.Errorf("%s: %s-%s is outside the %s window: %w",
			op, b.Start.Format(time.TimeOnly), b.End.Format(time.TimeOnly), b.Resource.Kind, storage.ErrTimeConflict)
	}

	if err = s.store.UpdateBooking(b); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// RemoveBooking deletes a booking regardless of its state. Used by
// administrators, who may also clear elapsed bookings.
func (s *Service) RemoveBooking(id int64) error {
	const op = "booking.RemoveBooking"

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.DeleteBooking(id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.log.Debug("booking removed", slog.Int64("id", id))

	return nil
}

func (s *Service) Booking(id int64) (models.Booking, error) {
	return s.store.GetBooking(id)
}

func (s *Service) AllBookings() []models.Booking {
	return s.store.GetAllBookings()
}

func (s *Service) BookingsForUser(user string) []models.Booking {
	return s.store.GetBookingsForUser(user)
}

// stillFree reports whether the selection fits inside one of the slots
// currently free for its resource.
func (s *Service) stillFree(sel Selection) bool {
	for _, slot := range s.store.GetFreeSlots(sel.Start, sel.Resource) {
		if slot.Contains(sel.Start, sel.End) {
			return true
		}
	}

	return false
}

// withinWindow reports whether b lies inside its kind's day window on the
// day it starts.
func (s *Service) withinWindow(b models.Booking) bool {
	window := s.store.DayWindow(b.Resource.Kind)

	return !b.Start.Before(window.Start.On(b.Start)) && !b.End.After(window.End.On(b.Start))
}
