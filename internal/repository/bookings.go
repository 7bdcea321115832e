package repository

import (
	"context"
	"errors"
	"sync"

	domain "playo/internal/domain/bookings"
)

// BookingsRepo is the in-memory source of truth for bookings. Insertion order
// is preserved so per-user listings come back in a stable order. The store
// lives as long as the process; bookings are never physically deleted,
// cancellation is a terminal status.
type BookingsRepo struct {
	mu       sync.RWMutex
	bookings map[string]domain.Booking
	order    []string
}

func NewBookingsRepo() *BookingsRepo {
	return &BookingsRepo{
		bookings: make(map[string]domain.Booking),
	}
}

// Put inserts or replaces the booking under its id.
func (r *BookingsRepo) Put(ctx context.Context, booking domain.Booking) error {
	if booking.ID == "" {
		return errors.New("booking id is empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.bookings[booking.ID]; !exists {
		r.order = append(r.order, booking.ID)
	}
	r.bookings[booking.ID] = booking

	return nil
}

func (r *BookingsRepo) Get(ctx context.Context, id string) (domain.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	booking, ok := r.bookings[id]
	if !ok {
		return domain.Booking{}, domain.ErrBookingNotFound
	}

	return booking, nil
}

func (r *BookingsRepo) ListByUserEmail(ctx context.Context, email string) ([]domain.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []domain.Booking
	for _, id := range r.order {
		if b := r.bookings[id]; b.UserEmail == email {
			result = append(result, b)
		}
	}

	return result, nil
}
