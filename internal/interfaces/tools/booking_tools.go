package tools

import (
	"context"
	"errors"
	"fmt"

	"playo/internal/application/services"
	domain "playo/internal/domain/bookings"
)

// errorResult maps a booking error onto the structured failure envelope the
// client sees. Business failures never bubble up as transport errors.
func errorResult(err error) map[string]any {
	result := map[string]any{
		"success": false,
		"error":   err.Error(),
	}

	var stateErr *domain.StateConflictError
	if errors.As(err, &stateErr) {
		result["current_status"] = string(stateErr.Current)
	}

	var validationErr *domain.ValidationError
	if errors.As(err, &validationErr) {
		result["invalid_fields"] = validationErr.Fields
	}

	if errors.Is(err, domain.ErrCalendarUnavailable) {
		result["retryable"] = true
	}

	return result
}

type CreateBookingTool struct {
	bookings *services.BookingService
}

func NewCreateBookingTool(bookings *services.BookingService) *CreateBookingTool {
	return &CreateBookingTool{bookings: bookings}
}

func (t *CreateBookingTool) Name() string { return "create_booking" }

func (t *CreateBookingTool) Description() string {
	return "Create a new booking for a sports activity. The booking starts unpaid; complete it with process_payment."
}

func (t *CreateBookingTool) Parameters() map[string]any {
	return objectSchema(map[string]any{
		"user_name":      stringParam("Name of the person booking"),
		"user_email":     stringParam("Email address for confirmation"),
		"user_phone":     stringParam("Contact phone number"),
		"activity_id":    stringParam("ID of the activity from search results"),
		"activity_name":  stringParam("Name of the activity"),
		"venue_name":     stringParam("Name of the venue"),
		"venue_address":  stringParam("Full address of the venue"),
		"sport_type":     stringParam("Type of sport, e.g. Badminton or Football"),
		"date":           stringParam("Date of booking (YYYY-MM-DD)"),
		"time_slot":      stringParam("Time slot, e.g. '6:00 PM - 7:00 PM'"),
		"duration_hours": numberParam("Duration in hours (default 1)"),
		"price_per_hour": numberParam("Price per hour in INR (default 500)"),
		"num_players":    integerParam("Number of players (default 1)"),
	}, "user_name", "user_email", "user_phone", "activity_id", "activity_name",
		"venue_name", "venue_address", "sport_type", "date", "time_slot")
}

func (t *CreateBookingTool) Execute(ctx context.Context, args map[string]any) (map[string]any, error) {
	input := services.CreateBookingInput{
		UserName:      stringArg(args, "user_name", ""),
		UserEmail:     stringArg(args, "user_email", ""),
		UserPhone:     stringArg(args, "user_phone", ""),
		ActivityID:    stringArg(args, "activity_id", ""),
		ActivityName:  stringArg(args, "activity_name", ""),
		VenueName:     stringArg(args, "venue_name", ""),
		VenueAddress:  stringArg(args, "venue_address", ""),
		SportType:     stringArg(args, "sport_type", ""),
		Date:          stringArg(args, "date", ""),
		TimeSlot:      stringArg(args, "time_slot", ""),
		DurationHours: floatArg(args, "duration_hours", 1),
		PricePerHour:  floatArg(args, "price_per_hour", 500),
		NumPlayers:    intArg(args, "num_players", 1),
	}

	booking, err := t.bookings.Create(ctx, input)
	if err != nil {
		return errorResult(err), nil
	}

	return map[string]any{
		"success":         true,
		"booking_id":      booking.ID,
		"message":         "Booking created successfully. Please proceed with payment.",
		"booking_details": booking,
		"next_step":       fmt.Sprintf("Use process_payment(booking_id=%q, payment_method='...') to complete the booking", booking.ID),
	}, nil
}

type ProcessPaymentTool struct {
	bookings *services.BookingService
}

func NewProcessPaymentTool(bookings *services.BookingService) *ProcessPaymentTool {
	return &ProcessPaymentTool{bookings: bookings}
}

func (t *ProcessPaymentTool) Name() string { return "process_payment" }

func (t *ProcessPaymentTool) Description() string {
	return "Process payment for a booking (simulated). A declined payment can be retried."
}

func (t *ProcessPaymentTool) Parameters() map[string]any {
	return objectSchema(map[string]any{
		"booking_id":     stringParam("Booking ID to pay for"),
		"payment_method": stringParam("Payment method: 'upi', 'card', 'netbanking' or 'wallet' (default 'upi')"),
		"upi_id":         stringParam("UPI ID when payment_method is 'upi'"),
		"card_number":    stringParam("Card number (only the last 4 digits are kept) when payment_method is 'card'"),
	}, "booking_id")
}

func (t *ProcessPaymentTool) Execute(ctx context.Context, args map[string]any) (map[string]any, error) {
	bookingID := stringArg(args, "booking_id", "")
	method := stringArg(args, "payment_method", "upi")

	detail := stringArg(args, "upi_id", "")
	if detail == "" {
		detail = stringArg(args, "card_number", "")
	}

	booking, err := t.bookings.ProcessPayment(ctx, bookingID, method, detail)
	if err != nil {
		return errorResult(err), nil
	}

	payment := booking.Payment
	if booking.Status == domain.StatusPaymentFailed {
		return map[string]any{
			"success":        false,
			"payment_id":     payment.ID,
			"transaction_id": payment.TransactionID,
			"status":         string(payment.Outcome),
			"booking_status": string(booking.Status),
			"error":          "Payment declined. Please check your payment details and try again.",
		}, nil
	}

	return map[string]any{
		"success":        true,
		"payment_id":     payment.ID,
		"transaction_id": payment.TransactionID,
		"status":         string(payment.Outcome),
		"amount":         payment.Amount,
		"currency":       payment.Currency,
		"payment_method": string(payment.Method),
		"method_detail":  payment.MethodDetail,
		"booking_status": string(booking.Status),
		"message":        "Payment successful! Booking confirmed.",
		"next_step":      fmt.Sprintf("Use add_to_google_calendar(booking_id=%q) to add this to your calendar", booking.ID),
	}, nil
}

type AddToCalendarTool struct {
	bookings *services.BookingService
}

func NewAddToCalendarTool(bookings *services.BookingService) *AddToCalendarTool {
	return &AddToCalendarTool{bookings: bookings}
}

func (t *AddToCalendarTool) Name() string { return "add_to_google_calendar" }

func (t *AddToCalendarTool) Description() string {
	return "Add a confirmed booking to the calendar. Calling it again returns the existing event instead of creating a duplicate."
}

func (t *AddToCalendarTool) Parameters() map[string]any {
	return objectSchema(map[string]any{
		"booking_id":           stringParam("ID of the confirmed booking"),
		"timezone":             stringParam("Timezone for the event (default 'Asia/Kolkata')"),
		"send_notifications":   boolParam("Send email notifications to attendees (default true)"),
		"add_reminder_minutes": integerParam("Reminder this many minutes before the event (default 30)"),
	}, "booking_id")
}

func (t *AddToCalendarTool) Execute(ctx context.Context, args map[string]any) (map[string]any, error) {
	booking, err := t.bookings.ScheduleOnCalendar(ctx,
		stringArg(args, "booking_id", ""),
		stringArg(args, "timezone", "Asia/Kolkata"),
		boolArg(args, "send_notifications", true),
		intArg(args, "add_reminder_minutes", 30),
	)
	if err != nil {
		return errorResult(err), nil
	}

	return map[string]any{
		"success":        true,
		"booking_id":     booking.ID,
		"event_id":       booking.CalendarEventID,
		"booking_status": string(booking.Status),
		"message":        "Booking successfully added to the calendar",
	}, nil
}

type GetBookingDetailsTool struct {
	bookings *services.BookingService
}

func NewGetBookingDetailsTool(bookings *services.BookingService) *GetBookingDetailsTool {
	return &GetBookingDetailsTool{bookings: bookings}
}

func (t *GetBookingDetailsTool) Name() string { return "get_booking_details" }

func (t *GetBookingDetailsTool) Description() string {
	return "Get details of a specific booking, including its payment and cancellation records."
}

func (t *GetBookingDetailsTool) Parameters() map[string]any {
	return objectSchema(map[string]any{
		"booking_id": stringParam("ID of the booking"),
	}, "booking_id")
}

func (t *GetBookingDetailsTool) Execute(ctx context.Context, args map[string]any) (map[string]any, error) {
	booking, err := t.bookings.Get(ctx, stringArg(args, "booking_id", ""))
	if err != nil {
		return errorResult(err), nil
	}

	return map[string]any{
		"success": true,
		"booking": booking,
	}, nil
}

type GetUserBookingsTool struct {
	bookings *services.BookingService
}

func NewGetUserBookingsTool(bookings *services.BookingService) *GetUserBookingsTool {
	return &GetUserBookingsTool{bookings: bookings}
}

func (t *GetUserBookingsTool) Name() string { return "get_user_bookings" }

func (t *GetUserBookingsTool) Description() string {
	return "Get all bookings made with the given email address, oldest first."
}

func (t *GetUserBookingsTool) Parameters() map[string]any {
	return objectSchema(map[string]any{
		"user_email": stringParam("Email address of the user"),
	}, "user_email")
}

func (t *GetUserBookingsTool) Execute(ctx context.Context, args map[string]any) (map[string]any, error) {
	email := stringArg(args, "user_email", "")

	bookings, err := t.bookings.ListForUser(ctx, email)
	if err != nil {
		return errorResult(err), nil
	}

	if bookings == nil {
		bookings = []domain.Booking{}
	}

	return map[string]any{
		"success":        true,
		"user_email":     email,
		"total_bookings": len(bookings),
		"bookings":       bookings,
	}, nil
}

type CancelBookingTool struct {
	bookings *services.BookingService
}

func NewCancelBookingTool(bookings *services.BookingService) *CancelBookingTool {
	return &CancelBookingTool{bookings: bookings}
}

func (t *CancelBookingTool) Name() string { return "cancel_booking" }

func (t *CancelBookingTool) Description() string {
	return "Cancel a booking and refund the last successful payment, if any."
}

func (t *CancelBookingTool) Parameters() map[string]any {
	return objectSchema(map[string]any{
		"booking_id": stringParam("ID of the booking to cancel"),
		"reason":     stringParam("Reason for cancellation (default 'User cancelled')"),
	}, "booking_id")
}

func (t *CancelBookingTool) Execute(ctx context.Context, args map[string]any) (map[string]any, error) {
	booking, err := t.bookings.Cancel(ctx,
		stringArg(args, "booking_id", ""),
		stringArg(args, "reason", "User cancelled"),
	)
	if err != nil {
		return errorResult(err), nil
	}

	result := map[string]any{
		"success":    true,
		"booking_id": booking.ID,
		"status":     string(booking.Status),
		"reason":     booking.Cancellation.Reason,
		"message":    "Booking cancelled successfully",
	}
	if booking.Cancellation.RefundAmount > 0 {
		result["refund"] = map[string]any{
			"refund_id":      booking.Cancellation.RefundID,
			"refund_amount":  booking.Cancellation.RefundAmount,
			"refund_status":  "processed",
			"estimated_days": "5-7 business days",
		}
		result["message"] = "Booking cancelled successfully and refund initiated"
	}

	return result, nil
}
