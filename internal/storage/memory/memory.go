package memory

import (
	"fmt"
	"roomBooker/internal/models"
	"roomBooker/internal/storage"
	"sort"
	"sync"
	"time"
)

// Storage keeps every booking in process memory and is the only place
// where the no-overlap rule for a resource is enforced.
type Storage struct {
	mu       sync.RWMutex
	bookings map[int64]models.Booking
	windows  models.WindowPolicy
	now      func() time.Time
}

type Option func(*Storage)

// WithClock replaces time.Now for past-time checks.
func WithClock(now func() time.Time) Option {
	return func(s *Storage) {
		s.now = now
	}
}

func WithWindows(p models.WindowPolicy) Option {
	return func(s *Storage) {
		s.windows = p
	}
}

func New(opts ...Option) *Storage {
	s := &Storage{
		bookings: make(map[int64]models.Booking),
		windows:  models.DefaultWindowPolicy(),
		now:      time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *Storage) CreateBooking(b models.Booking) error {
	const op = "storage.memory.CreateBooking"

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.bookings[b.ID]; ok {
		return fmt.Errorf("%s: id %d: %w", op, b.ID, storage.ErrDuplicateID)
	}

	if !b.Start.Before(b.End) {
		return fmt.Errorf("%s: %w", op, storage.ErrInvalidInterval)
	}

	if b.Start.Before(s.now()) {
		return fmt.Errorf("%s: %w", op, storage.ErrPastStartTime)
	}

	if s.conflicts(b, false) {
		return fmt.Errorf("%s: %w", op, storage.ErrTimeConflict)
	}

	s.bookings[b.ID] = b

	return nil
}

// UpdateBooking replaces a stored booking. The booking's own previous
// interval is not considered a conflict.
func (s *Storage) UpdateBooking(b models.Booking) error {
	const op = "storage.memory.UpdateBooking"

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.bookings[b.ID]; !ok {
		return fmt.Errorf("%s: id %d: %w", op, b.ID, storage.ErrNotFound)
	}

	if !b.Start.Before(b.End) {
		return fmt.Errorf("%s: %w", op, storage.ErrInvalidInterval)
	}

	if s.conflicts(b, true) {
		return fmt.Errorf("%s: %w", op, storage.ErrTimeConflict)
	}

	s.bookings[b.ID] = b

	return nil
}

func (s *Storage) DeleteBooking(id int64) error {
	const op = "storage.memory.DeleteBooking"

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.bookings[id]; !ok {
		return fmt.Errorf("%s: id %d: %w", op, id, storage.ErrNotFound)
	}

	delete(s.bookings, id)

	return nil
}

func (s *Storage) GetBooking(id int64) (models.Booking, error) {
	const op = "storage.memory.GetBooking"

	s.mu.RLock()
	defer s.mu.RUnlock()

	b, ok := s.bookings[id]
	if !ok {
		return models.Booking{}, fmt.Errorf("%s: id %d: %w", op, id, storage.ErrNotFound)
	}

	return b, nil
}

// GetAllBookings returns a snapshot ordered by id.
func (s *Storage) GetAllBookings() []models.Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.collect(func(models.Booking) bool { return true })
}

func (s *Storage) GetBookingsForUser(user string) []models.Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.collect(func(b models.Booking) bool { return b.User == user })
}

// GetFreeSlots sweeps the resource's bookings on date in start order and
// returns the gaps inside the resource kind's day window.
func (s *Storage) GetFreeSlots(date time.Time, resource models.Resource) []models.Slot {
	window := s.DayWindow(resource.Kind)
	windowStart := window.Start.On(date)
	windowEnd := window.End.On(date)
	key := resource.Key()

	s.mu.RLock()
	var day []models.Booking
	for _, b := range s.bookings {
		if b.Resource.Key() == key && models.SameDay(b.Start, date) {
			day = append(day, b)
		}
	}
	s.mu.RUnlock()

	sort.Slice(day, func(i, j int) bool {
		return day[i].Start.Before(day[j].Start)
	})

	var slots []models.Slot
	cursor := windowStart
	for _, b := range day {
		if !cursor.Before(windowEnd) {
			break
		}
		if cursor.Before(b.Start) {
			end := b.Start
			if end.After(windowEnd) {
				end = windowEnd
			}
			slots = append(slots, models.Slot{Start: cursor, End: end})
		}
		if b.End.After(cursor) {
			cursor = b.End
		}
	}

	if cursor.Before(windowEnd) {
		slots = append(slots, models.Slot{Start: cursor, End: windowEnd})
	}

	return slots
}

// DayWindow returns the bookable hours for a resource kind.
func (s *Storage) DayWindow(kind models.Kind) models.Window {
	return s.windows.Window(kind)
}

func (s *Storage) GetNextBookingID() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.nextID()
}

// Restore loads previously archived bookings, skipping the past-time check.
// Duplicate ids and overlaps are still rejected; nothing is stored on error.
func (s *Storage) Restore(bookings []models.Booking) error {
	const op = "storage.memory.Restore"

	s.mu.Lock()
	defer s.mu.Unlock()

	staged := make(map[int64]models.Booking, len(s.bookings)+len(bookings))
	for id, b := range s.bookings {
		staged[id] = b
	}

	for _, b := range bookings {
		if _, ok := staged[b.ID]; ok {
			return fmt.Errorf("%s: id %d: %w", op, b.ID, storage.ErrDuplicateID)
		}
		if !b.Start.Before(b.End) {
			return fmt.Errorf("%s: id %d: %w", op, b.ID, storage.ErrInvalidInterval)
		}
		for _, other := range staged {
			if other.Resource.Key() == b.Resource.Key() && other.Overlaps(b.Start, b.End) {
				return fmt.Errorf("%s: id %d: %w", op, b.ID, storage.ErrTimeConflict)
			}
		}
		staged[b.ID] = b
	}

	s.bookings = staged

	return nil
}

// conflicts must be called with s.mu held.
func (s *Storage) conflicts(b models.Booking, excludeSelf bool) bool {
	key := b.Resource.Key()
	for id, other := range s.bookings {
		if excludeSelf && id == b.ID {
			continue
		}
		if other.Resource.Key() == key && other.Overlaps(b.Start, b.End) {
			return true
		}
	}

	return false
}

func (s *Storage) nextID() int64 {
	var max int64
	for id := range s.bookings {
		if id > max {
			max = id
		}
	}

	return max + 1
}

func (s *Storage) collect(match func(models.Booking) bool) []models.Booking {
	out := make([]models.Booking, 0, len(s.bookings))
	for _, b := range s.bookings {
		if match(b) {
			out = append(out, b)
		}
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].ID < out[j].ID
	})

	return out
}
