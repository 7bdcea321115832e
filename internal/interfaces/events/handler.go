package events

import (
	"context"
	"fmt"

	"github.com/ThreeDotsLabs/watermill/components/cqrs"

	"playo/internal/entities"
)

type NotificationsService interface {
	SendBookingConfirmation(ctx context.Context, event entities.BookingConfirmed_v1) error
	SendCancellationNotice(ctx context.Context, event entities.BookingCancelled_v1) error
}

type TrackerService interface {
	AppendRow(ctx context.Context, trackerName string, row []string) error
}

func BookingsToTrackHandler(
	tracker TrackerService,
) cqrs.EventHandler {
	return cqrs.NewEventHandler(
		"append_booking_to_tracker",
		func(ctx context.Context, payload *entities.BookingConfirmed_v1) error {
			return tracker.AppendRow(
				ctx, "bookings-confirmed", []string{
					payload.BookingID,
					payload.UserEmail,
					payload.SportType,
					payload.VenueName,
					fmt.Sprintf("%.2f", payload.Amount),
					payload.Currency,
				})
		},
	)
}

func RefundsToTrackHandler(
	tracker TrackerService,
) cqrs.EventHandler {
	return cqrs.NewEventHandler(
		"append_refund_to_tracker",
		func(ctx context.Context, payload *entities.BookingCancelled_v1) error {
			return tracker.AppendRow(
				ctx, "bookings-refunded", []string{
					payload.BookingID,
					payload.UserEmail,
					payload.RefundID,
					fmt.Sprintf("%.2f", payload.RefundAmount),
					payload.Currency,
				})
		},
	)
}

func NotifyBookingConfirmedHandler(
	notifications NotificationsService,
) cqrs.EventHandler {
	return cqrs.NewEventHandler(
		"notify_booking_confirmed",
		func(ctx context.Context, payload *entities.BookingConfirmed_v1) error {
			return notifications.SendBookingConfirmation(ctx, *payload)
		},
	)
}

func NotifyBookingCancelledHandler(
	notifications NotificationsService,
) cqrs.EventHandler {
	return cqrs.NewEventHandler(
		"notify_booking_cancelled",
		func(ctx context.Context, payload *entities.BookingCancelled_v1) error {
			return notifications.SendCancellationNotice(ctx, *payload)
		},
	)
}
