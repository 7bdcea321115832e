package services

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "playo/internal/domain/bookings"
	"playo/internal/entities"
	"playo/internal/identifier"
	"playo/internal/infrastructure/clients"
	"playo/internal/repository"
)

type eventCollector struct {
	mu     sync.Mutex
	events []any
}

func (c *eventCollector) Publish(ctx context.Context, event any) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = append(c.events, event)
	return nil
}

func (c *eventCollector) All() []any {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]any(nil), c.events...)
}

type flakyCalendar struct {
	clients.CalendarAPI

	mu          sync.Mutex
	createCalls int
	failCreate  error
}

func (f *flakyCalendar) CreateEvent(ctx context.Context, req domain.CalendarEventRequest) (domain.CalendarEvent, error) {
	f.mu.Lock()
	f.createCalls++
	failErr := f.failCreate
	f.mu.Unlock()

	if failErr != nil {
		return domain.CalendarEvent{}, failErr
	}
	return f.CalendarAPI.CreateEvent(ctx, req)
}

func (f *flakyCalendar) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.createCalls
}

type fixture struct {
	service  *BookingService
	repo     *repository.BookingsRepo
	bus      *eventCollector
	calendar *flakyCalendar
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	ids := identifier.NewGenerator()
	repo := repository.NewBookingsRepo()
	bus := &eventCollector{}
	calendar := &flakyCalendar{CalendarAPI: clients.NewCalendarSimulator()}

	return &fixture{
		service:  NewBookingService(repo, clients.NewPaymentSimulator(ids), calendar, bus, ids),
		repo:     repo,
		bus:      bus,
		calendar: calendar,
	}
}

func validInput() CreateBookingInput {
	return CreateBookingInput{
		UserName:      "Ravi Kumar",
		UserEmail:     "ravi@example.com",
		UserPhone:     "+911234567890",
		ActivityID:    "ACT123",
		ActivityName:  "Evening Badminton",
		VenueName:     "Play Arena",
		VenueAddress:  "Sarjapur Road, Bangalore",
		SportType:     "Badminton",
		Date:          "2026-09-01",
		TimeSlot:      "6:00 PM - 7:00 PM",
		DurationHours: 1.5,
		PricePerHour:  500,
		NumPlayers:    4,
	}
}

func TestCreate(t *testing.T) {
	f := newFixture(t)

	booking, err := f.service.Create(context.Background(), validInput())
	require.NoError(t, err)

	assert.NotEmpty(t, booking.ID)
	assert.Equal(t, domain.StatusCreated, booking.Status)
	assert.Equal(t, 750.0, booking.TotalPrice)
	assert.Nil(t, booking.Payment)
	assert.False(t, booking.CreatedAt.IsZero())

	stored, err := f.repo.Get(context.Background(), booking.ID)
	require.NoError(t, err)
	assert.Equal(t, booking, stored)
}

func TestCreate_ValidationListsFields(t *testing.T) {
	f := newFixture(t)

	input := validInput()
	input.UserEmail = ""
	input.DurationHours = 0

	_, err := f.service.Create(context.Background(), input)

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "user_email")
	assert.Contains(t, verr.Fields, "duration_hours")
}

func TestProcessPayment_Success(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	booking, err := f.service.Create(ctx, validInput())
	require.NoError(t, err)

	paid, err := f.service.ProcessPayment(ctx, booking.ID, "upi", "ravi@okhdfc")
	require.NoError(t, err)

	assert.Equal(t, domain.StatusConfirmed, paid.Status)
	require.NotNil(t, paid.Payment)
	assert.Equal(t, domain.PaymentSuccess, paid.Payment.Outcome)
	assert.Equal(t, 750.0, paid.Payment.Amount)

	events := f.bus.All()
	require.Len(t, events, 1)
	confirmed, ok := events[0].(entities.BookingConfirmed_v1)
	require.True(t, ok)
	assert.Equal(t, booking.ID, confirmed.BookingID)
	assert.Equal(t, 750.0, confirmed.Amount)
	assert.NotEmpty(t, confirmed.Header.IdempotencyKey)
}

func TestProcessPayment_Declined(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	input := validInput()
	input.PricePerHour = 0 // zero total is declined by the simulator

	booking, err := f.service.Create(ctx, input)
	require.NoError(t, err)

	failed, err := f.service.ProcessPayment(ctx, booking.ID, "upi", "ravi@okhdfc")
	require.NoError(t, err)

	assert.Equal(t, domain.StatusPaymentFailed, failed.Status)
	require.NotNil(t, failed.Payment)
	assert.Equal(t, domain.PaymentDeclined, failed.Payment.Outcome)
	assert.Empty(t, f.bus.All())

	// a declined payment can be retried
	_, err = f.service.ProcessPayment(ctx, booking.ID, "card", "4111111111111234")
	require.NoError(t, err)
}

func TestProcessPayment_InvalidMethodKeepsStatus(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	booking, err := f.service.Create(ctx, validInput())
	require.NoError(t, err)

	_, err = f.service.ProcessPayment(ctx, booking.ID, "cash", "")
	require.ErrorIs(t, err, domain.ErrInvalidPaymentMethod)

	stored, err := f.repo.Get(ctx, booking.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCreated, stored.Status)
	assert.Nil(t, stored.Payment)
}

func TestProcessPayment_AlreadyConfirmed(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	booking, err := f.service.Create(ctx, validInput())
	require.NoError(t, err)

	_, err = f.service.ProcessPayment(ctx, booking.ID, "upi", "ravi@okhdfc")
	require.NoError(t, err)

	_, err = f.service.ProcessPayment(ctx, booking.ID, "upi", "ravi@okhdfc")

	var conflict *domain.StateConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, domain.StatusConfirmed, conflict.Current)
}

func TestProcessPayment_NotFound(t *testing.T) {
	f := newFixture(t)

	_, err := f.service.ProcessPayment(context.Background(), "BK00000000", "upi", "x@y")
	require.ErrorIs(t, err, domain.ErrBookingNotFound)
}

func TestProcessPayment_ConcurrentSingleWinner(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	booking, err := f.service.Create(ctx, validInput())
	require.NoError(t, err)

	const n = 20
	var wg sync.WaitGroup
	results := make([]error, n)

	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, results[i] = f.service.ProcessPayment(ctx, booking.ID, "upi", "ravi@okhdfc")
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range results {
		if err == nil {
			succeeded++
			continue
		}
		var conflict *domain.StateConflictError
		require.ErrorAs(t, err, &conflict)
	}

	assert.Equal(t, 1, succeeded)
	assert.Len(t, f.bus.All(), 1)
}

func TestScheduleOnCalendar(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	booking, err := f.service.Create(ctx, validInput())
	require.NoError(t, err)
	_, err = f.service.ProcessPayment(ctx, booking.ID, "upi", "ravi@okhdfc")
	require.NoError(t, err)

	scheduled, err := f.service.ScheduleOnCalendar(ctx, booking.ID, "Asia/Kolkata", true, 30)
	require.NoError(t, err)

	assert.Equal(t, domain.StatusScheduled, scheduled.Status)
	assert.NotEmpty(t, scheduled.CalendarEventID)
	assert.Equal(t, 1, f.calendar.calls())
}

func TestScheduleOnCalendar_Idempotent(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	booking, err := f.service.Create(ctx, validInput())
	require.NoError(t, err)
	_, err = f.service.ProcessPayment(ctx, booking.ID, "upi", "ravi@okhdfc")
	require.NoError(t, err)

	first, err := f.service.ScheduleOnCalendar(ctx, booking.ID, "Asia/Kolkata", true, 30)
	require.NoError(t, err)

	second, err := f.service.ScheduleOnCalendar(ctx, booking.ID, "Asia/Kolkata", true, 30)
	require.NoError(t, err)

	assert.Equal(t, first.CalendarEventID, second.CalendarEventID)
	assert.Equal(t, 1, f.calendar.calls(), "second call must not create another event")
}

func TestScheduleOnCalendar_RequiresConfirmed(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	booking, err := f.service.Create(ctx, validInput())
	require.NoError(t, err)

	_, err = f.service.ScheduleOnCalendar(ctx, booking.ID, "Asia/Kolkata", true, 30)

	var conflict *domain.StateConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, domain.StatusCreated, conflict.Current)
}

func TestScheduleOnCalendar_FailureLeavesConfirmed(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	booking, err := f.service.Create(ctx, validInput())
	require.NoError(t, err)
	_, err = f.service.ProcessPayment(ctx, booking.ID, "upi", "ravi@okhdfc")
	require.NoError(t, err)

	f.calendar.failCreate = errors.New("calendar down")
	_, err = f.service.ScheduleOnCalendar(ctx, booking.ID, "Asia/Kolkata", true, 30)
	require.Error(t, err)

	stored, err := f.repo.Get(ctx, booking.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusConfirmed, stored.Status)
	assert.Empty(t, stored.CalendarEventID)

	// the same call can be retried once the calendar recovers
	f.calendar.failCreate = nil
	scheduled, err := f.service.ScheduleOnCalendar(ctx, booking.ID, "Asia/Kolkata", true, 30)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusScheduled, scheduled.Status)
}

func TestCancel_UnpaidNoRefund(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	booking, err := f.service.Create(ctx, validInput())
	require.NoError(t, err)

	cancelled, err := f.service.Cancel(ctx, booking.ID, "Change of plans")
	require.NoError(t, err)

	assert.Equal(t, domain.StatusCancelled, cancelled.Status)
	require.NotNil(t, cancelled.Cancellation)
	assert.Equal(t, "Change of plans", cancelled.Cancellation.Reason)
	assert.Equal(t, 0.0, cancelled.Cancellation.RefundAmount)
	assert.Empty(t, cancelled.Cancellation.RefundID)
}

func TestCancel_PaidRefundsPaymentAmount(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	booking, err := f.service.Create(ctx, validInput())
	require.NoError(t, err)
	_, err = f.service.ProcessPayment(ctx, booking.ID, "upi", "ravi@okhdfc")
	require.NoError(t, err)

	cancelled, err := f.service.Cancel(ctx, booking.ID, "Rain expected")
	require.NoError(t, err)

	require.NotNil(t, cancelled.Cancellation)
	assert.Equal(t, 750.0, cancelled.Cancellation.RefundAmount)
	assert.NotEmpty(t, cancelled.Cancellation.RefundID)

	events := f.bus.All()
	require.Len(t, events, 2) // confirmation then cancellation
	cancelEvent, ok := events[1].(entities.BookingCancelled_v1)
	require.True(t, ok)
	assert.Equal(t, 750.0, cancelEvent.RefundAmount)
	assert.Equal(t, cancelled.Cancellation.RefundID, cancelEvent.RefundID)
}

func TestCancel_DoubleCancelRejected(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	booking, err := f.service.Create(ctx, validInput())
	require.NoError(t, err)

	_, err = f.service.Cancel(ctx, booking.ID, "first")
	require.NoError(t, err)

	_, err = f.service.Cancel(ctx, booking.ID, "second")

	var conflict *domain.StateConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, domain.StatusCancelled, conflict.Current)
}

func TestCancel_ScheduledRemovesCalendarEvent(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	booking, err := f.service.Create(ctx, validInput())
	require.NoError(t, err)
	_, err = f.service.ProcessPayment(ctx, booking.ID, "upi", "ravi@okhdfc")
	require.NoError(t, err)
	scheduled, err := f.service.ScheduleOnCalendar(ctx, booking.ID, "Asia/Kolkata", true, 30)
	require.NoError(t, err)

	_, err = f.service.Cancel(ctx, booking.ID, "Venue closed")
	require.NoError(t, err)

	// event is gone, removing again reports not found
	err = f.calendar.RemoveEvent(ctx, scheduled.CalendarEventID)
	require.ErrorIs(t, err, clients.ErrEventNotFound)
}

func TestFailedPaymentThenCancel(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	input := validInput()
	input.PricePerHour = 0

	booking, err := f.service.Create(ctx, input)
	require.NoError(t, err)

	failed, err := f.service.ProcessPayment(ctx, booking.ID, "upi", "ravi@okhdfc")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPaymentFailed, failed.Status)

	cancelled, err := f.service.Cancel(ctx, booking.ID, "giving up")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled, cancelled.Status)
	assert.Equal(t, 0.0, cancelled.Cancellation.RefundAmount)
}

func TestFullLifecycle(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	booking, err := f.service.Create(ctx, validInput())
	require.NoError(t, err)

	paid, err := f.service.ProcessPayment(ctx, booking.ID, "card", "4111111111111234")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusConfirmed, paid.Status)

	scheduled, err := f.service.ScheduleOnCalendar(ctx, booking.ID, "Asia/Kolkata", true, 30)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusScheduled, scheduled.Status)

	cancelled, err := f.service.Cancel(ctx, booking.ID, "User cancelled")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled, cancelled.Status)
	assert.Equal(t, 750.0, cancelled.Cancellation.RefundAmount)

	list, err := f.service.ListForUser(ctx, "ravi@example.com")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, domain.StatusCancelled, list[0].Status)
}
