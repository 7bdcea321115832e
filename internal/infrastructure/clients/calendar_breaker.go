package clients

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sony/gobreaker"

	domain "playo/internal/domain/bookings"
)

// CalendarBreaker wraps a calendar backend with a circuit breaker. The
// calendar is an unreliable external collaborator; once it fails repeatedly
// the breaker opens and callers get ErrCalendarUnavailable immediately
// instead of piling up on a dead service. Scheduling is idempotent, so the
// caller can simply retry the same call later.
type CalendarBreaker struct {
	inner CalendarAPI
	cb    *gobreaker.CircuitBreaker
}

func NewCalendarBreaker(inner CalendarAPI) *CalendarBreaker {
	return &CalendarBreaker{
		inner: inner,
		cb: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:        "google-calendar",
			MaxRequests: 1,
			Timeout:     30 * time.Second,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= 3
			},
			// a missing event is a caller error, not a sign the service is down
			IsSuccessful: func(err error) bool {
				return err == nil || errors.Is(err, ErrEventNotFound)
			},
		}),
	}
}

func (b *CalendarBreaker) CreateEvent(ctx context.Context, req domain.CalendarEventRequest) (domain.CalendarEvent, error) {
	v, err := b.cb.Execute(func() (interface{}, error) {
		return b.inner.CreateEvent(ctx, req)
	})
	if err != nil {
		return domain.CalendarEvent{}, wrapBreakerErr(err)
	}

	return v.(domain.CalendarEvent), nil
}

func (b *CalendarBreaker) RemoveEvent(ctx context.Context, eventID string) error {
	_, err := b.cb.Execute(func() (interface{}, error) {
		return nil, b.inner.RemoveEvent(ctx, eventID)
	})
	if err != nil {
		return wrapBreakerErr(err)
	}

	return nil
}

func (b *CalendarBreaker) ListUpcoming(ctx context.Context, maxResults int, daysAhead int) ([]domain.CalendarEvent, error) {
	v, err := b.cb.Execute(func() (interface{}, error) {
		return b.inner.ListUpcoming(ctx, maxResults, daysAhead)
	})
	if err != nil {
		return nil, wrapBreakerErr(err)
	}

	return v.([]domain.CalendarEvent), nil
}

func wrapBreakerErr(err error) error {
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return fmt.Errorf("%w: circuit breaker is open", domain.ErrCalendarUnavailable)
	}
	return err
}
