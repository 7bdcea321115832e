package services

import (
	"context"
	"sync"
	"time"

	"github.com/ThreeDotsLabs/go-event-driven/common/log"

	domain "playo/internal/domain/bookings"
	"playo/internal/entities"
	"playo/internal/idempotency"
	"playo/internal/identifier"
)

type BookingsRepo interface {
	Put(ctx context.Context, booking domain.Booking) error
	Get(ctx context.Context, id string) (domain.Booking, error)
	ListByUserEmail(ctx context.Context, email string) ([]domain.Booking, error)
}

type PaymentsService interface {
	Attempt(ctx context.Context, booking domain.Booking, method string, detail string) (domain.Payment, error)
}

type CalendarService interface {
	CreateEvent(ctx context.Context, req domain.CalendarEventRequest) (domain.CalendarEvent, error)
	RemoveEvent(ctx context.Context, eventID string) error
}

type EventBus interface {
	Publish(ctx context.Context, event any) error
}

// BookingService is the booking state machine. It owns every status
// transition: preconditions are checked against the transition table, the
// store is the single source of truth, and the payment simulator and
// calendar service are only reached from here.
//
// Mutating operations on the same booking id are serialized with a per-id
// lock held for the whole operation, external calls included. A slow
// calendar call therefore blocks further operations on that one booking,
// never on others.
type BookingService struct {
	repo     BookingsRepo
	payments PaymentsService
	calendar CalendarService
	eventBus EventBus
	ids      *identifier.Generator

	locks sync.Map // booking id -> *sync.Mutex
}

func NewBookingService(
	repo BookingsRepo,
	payments PaymentsService,
	calendar CalendarService,
	eventBus EventBus,
	ids *identifier.Generator,
) *BookingService {
	return &BookingService{
		repo:     repo,
		payments: payments,
		calendar: calendar,
		eventBus: eventBus,
		ids:      ids,
	}
}

func (s *BookingService) Create(ctx context.Context, input CreateBookingInput) (domain.Booking, error) {
	if err := input.Validate(); err != nil {
		return domain.Booking{}, err
	}

	booking := domain.Booking{
		ID:            s.ids.New("BK"),
		UserName:      input.UserName,
		UserEmail:     input.UserEmail,
		UserPhone:     input.UserPhone,
		ActivityID:    input.ActivityID,
		ActivityName:  input.ActivityName,
		VenueName:     input.VenueName,
		VenueAddress:  input.VenueAddress,
		SportType:     input.SportType,
		Date:          input.Date,
		TimeSlot:      input.TimeSlot,
		DurationHours: input.DurationHours,
		PricePerHour:  input.PricePerHour,
		TotalPrice:    domain.TotalPrice(input.PricePerHour, input.DurationHours),
		NumPlayers:    input.NumPlayers,
		Status:        domain.StatusCreated,
		CreatedAt:     time.Now().UTC(),
	}

	if err := s.repo.Put(ctx, booking); err != nil {
		return domain.Booking{}, err
	}

	return booking, nil
}

// ProcessPayment runs one payment attempt. A decline is a business outcome,
// not an error: the booking comes back as payment_failed and the caller may
// retry. Validation failures (unknown method, missing detail) leave the
// booking in its previous status.
func (s *BookingService) ProcessPayment(ctx context.Context, bookingID, method, detail string) (domain.Booking, error) {
	unlock := s.lock(bookingID)
	defer unlock()

	booking, err := s.repo.Get(ctx, bookingID)
	if err != nil {
		return domain.Booking{}, err
	}
	if err := domain.CanApply(domain.OpProcessPayment, booking.Status); err != nil {
		return booking, err
	}

	previous := booking.Status
	booking.Status = domain.StatusPaymentPending
	if err := s.repo.Put(ctx, booking); err != nil {
		return booking, err
	}

	payment, err := s.payments.Attempt(ctx, booking, method, detail)
	if err != nil {
		booking.Status = previous
		if putErr := s.repo.Put(ctx, booking); putErr != nil {
			return booking, putErr
		}
		return booking, err
	}

	booking.Payment = &payment
	if payment.Outcome == domain.PaymentSuccess {
		booking.Status = domain.StatusConfirmed
	} else {
		booking.Status = domain.StatusPaymentFailed
	}
	if err := s.repo.Put(ctx, booking); err != nil {
		return booking, err
	}

	if booking.Status == domain.StatusConfirmed {
		s.publish(ctx, entities.BookingConfirmed_v1{
			Header:    entities.NewEventHeaderWithIdempotencyKey(idempotency.GetKey(ctx) + booking.ID),
			BookingID: booking.ID,
			UserEmail: booking.UserEmail,
			PaymentID: payment.ID,
			Amount:    payment.Amount,
			Currency:  payment.Currency,
			SportType: booking.SportType,
			VenueName: booking.VenueName,
		})
	}

	return booking, nil
}

// ScheduleOnCalendar puts a confirmed booking on the calendar. Re-calling it
// on an already scheduled booking returns the existing event reference
// without creating a second event. A calendar failure leaves the booking
// confirmed; the same call can simply be retried.
func (s *BookingService) ScheduleOnCalendar(ctx context.Context, bookingID, timezone string, sendNotifications bool, reminderMinutes int) (domain.Booking, error) {
	unlock := s.lock(bookingID)
	defer unlock()

	booking, err := s.repo.Get(ctx, bookingID)
	if err != nil {
		return domain.Booking{}, err
	}
	if err := domain.CanApply(domain.OpSchedule, booking.Status); err != nil {
		return booking, err
	}
	if booking.Status == domain.StatusScheduled {
		return booking, nil
	}

	event, err := s.calendar.CreateEvent(ctx, domain.CalendarEventRequest{
		Booking:           booking,
		Timezone:          timezone,
		SendNotifications: sendNotifications,
		ReminderMinutes:   reminderMinutes,
	})
	if err != nil {
		return booking, err
	}

	booking.CalendarEventID = event.ID
	booking.Status = domain.StatusScheduled
	if err := s.repo.Put(ctx, booking); err != nil {
		return booking, err
	}

	s.publish(ctx, entities.BookingScheduled_v1{
		Header:          entities.NewEventHeaderWithIdempotencyKey(idempotency.GetKey(ctx) + booking.ID),
		BookingID:       booking.ID,
		UserEmail:       booking.UserEmail,
		CalendarEventID: event.ID,
	})

	return booking, nil
}

// Cancel moves the booking to its terminal status and computes the refund.
// Removing the calendar event is best effort: a calendar failure is logged
// and never blocks the cancellation.
func (s *BookingService) Cancel(ctx context.Context, bookingID, reason string) (domain.Booking, error) {
	unlock := s.lock(bookingID)
	defer unlock()

	booking, err := s.repo.Get(ctx, bookingID)
	if err != nil {
		return domain.Booking{}, err
	}
	if err := domain.CanApply(domain.OpCancel, booking.Status); err != nil {
		return booking, err
	}

	cancellation := &domain.Cancellation{
		Reason:       reason,
		RefundAmount: domain.RefundAmount(booking),
		CancelledAt:  time.Now().UTC(),
	}
	if cancellation.RefundAmount > 0 {
		cancellation.RefundID = s.ids.New("REF")
	}

	if booking.CalendarEventID != "" {
		if err := s.calendar.RemoveEvent(ctx, booking.CalendarEventID); err != nil {
			log.FromContext(ctx).
				WithField("booking_id", booking.ID).
				WithField("event_id", booking.CalendarEventID).
				WithField("error", err).
				Warn("Failed to remove calendar event for cancelled booking")
		}
	}

	booking.Status = domain.StatusCancelled
	booking.Cancellation = cancellation
	if err := s.repo.Put(ctx, booking); err != nil {
		return booking, err
	}

	s.publish(ctx, entities.BookingCancelled_v1{
		Header:       entities.NewEventHeaderWithIdempotencyKey(idempotency.GetKey(ctx) + booking.ID),
		BookingID:    booking.ID,
		UserEmail:    booking.UserEmail,
		Reason:       reason,
		RefundID:     cancellation.RefundID,
		RefundAmount: cancellation.RefundAmount,
		Currency:     domain.CurrencyINR,
	})

	return booking, nil
}

func (s *BookingService) Get(ctx context.Context, bookingID string) (domain.Booking, error) {
	return s.repo.Get(ctx, bookingID)
}

func (s *BookingService) ListForUser(ctx context.Context, email string) ([]domain.Booking, error) {
	return s.repo.ListByUserEmail(ctx, email)
}

// publish is fire-and-forget: the booking is already committed, a lost event
// must not fail the call.
func (s *BookingService) publish(ctx context.Context, event any) {
	if s.eventBus == nil {
		return
	}
	if err := s.eventBus.Publish(ctx, event); err != nil {
		log.FromContext(ctx).
			WithField("error", err).
			Error("Failed to publish booking event")
	}
}

func (s *BookingService) lock(bookingID string) func() {
	mu, _ := s.locks.LoadOrStore(bookingID, &sync.Mutex{})
	m := mu.(*sync.Mutex)
	m.Lock()
	return m.Unlock
}
