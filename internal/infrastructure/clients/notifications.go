package clients

import (
	"context"

	"github.com/ThreeDotsLabs/go-event-driven/common/log"

	"playo/internal/entities"
)

// EmailNotifier simulates the customer-facing mailer. It logs what a real
// mailer would send; swapping in an SMTP or provider client only touches
// this type.
type EmailNotifier struct{}

func NewEmailNotifier() EmailNotifier {
	return EmailNotifier{}
}

func (n EmailNotifier) SendBookingConfirmation(ctx context.Context, event entities.BookingConfirmed_v1) error {
	log.FromContext(ctx).
		WithField("booking_id", event.BookingID).
		WithField("to", event.UserEmail).
		WithField("amount", event.Amount).
		Info("Sending booking confirmation email")

	return nil
}

func (n EmailNotifier) SendCancellationNotice(ctx context.Context, event entities.BookingCancelled_v1) error {
	log.FromContext(ctx).
		WithField("booking_id", event.BookingID).
		WithField("to", event.UserEmail).
		WithField("refund_amount", event.RefundAmount).
		Info("Sending booking cancellation email")

	return nil
}
