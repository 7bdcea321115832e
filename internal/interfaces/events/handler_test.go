package events

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"playo/internal/entities"
	"playo/internal/infrastructure/clients"
)

func TestBookingsToTrackHandler(t *testing.T) {
	tracker := clients.NewBookingTracker()
	handler := BookingsToTrackHandler(tracker)

	event := entities.BookingConfirmed_v1{
		Header:    entities.NewEventHeader(),
		BookingID: "BK11111111",
		UserEmail: "ravi@example.com",
		PaymentID: "PAY22222222",
		Amount:    750,
		Currency:  "INR",
		SportType: "Badminton",
		VenueName: "Play Arena",
	}

	require.NoError(t, handler.Handle(context.Background(), &event))

	rows := tracker.Rows("bookings-confirmed")
	require.Len(t, rows, 1)
	assert.Equal(t, []string{"BK11111111", "ravi@example.com", "Badminton", "Play Arena", "750.00", "INR"}, rows[0])
}

func TestRefundsToTrackHandler(t *testing.T) {
	tracker := clients.NewBookingTracker()
	handler := RefundsToTrackHandler(tracker)

	event := entities.BookingCancelled_v1{
		Header:       entities.NewEventHeader(),
		BookingID:    "BK11111111",
		UserEmail:    "ravi@example.com",
		Reason:       "Rain expected",
		RefundID:     "REF33333333",
		RefundAmount: 750,
		Currency:     "INR",
	}

	require.NoError(t, handler.Handle(context.Background(), &event))

	rows := tracker.Rows("bookings-refunded")
	require.Len(t, rows, 1)
	assert.Equal(t, []string{"BK11111111", "ravi@example.com", "REF33333333", "750.00", "INR"}, rows[0])
}

func TestNotifyHandlers(t *testing.T) {
	notifier := clients.NewEmailNotifier()

	confirmed := entities.BookingConfirmed_v1{Header: entities.NewEventHeader(), BookingID: "BK1"}
	require.NoError(t, NotifyBookingConfirmedHandler(notifier).Handle(context.Background(), &confirmed))

	cancelled := entities.BookingCancelled_v1{Header: entities.NewEventHeader(), BookingID: "BK1"}
	require.NoError(t, NotifyBookingCancelledHandler(notifier).Handle(context.Background(), &cancelled))
}
