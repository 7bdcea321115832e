package bookings

import "time"

const CurrencyINR = "INR"

type Booking struct {
	ID              string        `json:"booking_id"`
	UserName        string        `json:"user_name"`
	UserEmail       string        `json:"user_email"`
	UserPhone       string        `json:"user_phone"`
	ActivityID      string        `json:"activity_id"`
	ActivityName    string        `json:"activity_name"`
	VenueName       string        `json:"venue_name"`
	VenueAddress    string        `json:"venue_address"`
	SportType       string        `json:"sport_type"`
	Date            string        `json:"date"`
	TimeSlot        string        `json:"time_slot"`
	DurationHours   float64       `json:"duration_hours"`
	PricePerHour    float64       `json:"price_per_hour"`
	TotalPrice      float64       `json:"total_price"`
	NumPlayers      int           `json:"num_players"`
	Status          Status        `json:"status"`
	Payment         *Payment      `json:"payment,omitempty"`
	CalendarEventID string        `json:"google_calendar_event_id,omitempty"`
	Cancellation    *Cancellation `json:"cancellation,omitempty"`
	CreatedAt       time.Time     `json:"created_at"`
}

type Cancellation struct {
	Reason       string    `json:"reason"`
	RefundID     string    `json:"refund_id,omitempty"`
	RefundAmount float64   `json:"refund_amount"`
	CancelledAt  time.Time `json:"cancelled_at"`
}

// TotalPrice is the pricing policy: the venue charges per hour regardless of
// how many players share the slot. NumPlayers is recorded but does not
// multiply the price.
func TotalPrice(pricePerHour, durationHours float64) float64 {
	return pricePerHour * durationHours
}

// RefundAmount is the cancellation refund policy: the full amount of the last
// successful payment, zero if the booking was never paid. There is no
// cancellation-window penalty.
func RefundAmount(b Booking) float64 {
	if b.Payment != nil && b.Payment.Outcome == PaymentSuccess {
		return b.Payment.Amount
	}
	return 0
}
