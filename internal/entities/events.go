package entities

type Event interface {
	IsInternal() bool
}

type BookingConfirmed_v1 struct {
	Header    EventHeader `json:"header"`
	BookingID string      `json:"booking_id"`
	UserEmail string      `json:"user_email"`
	PaymentID string      `json:"payment_id"`
	Amount    float64     `json:"amount"`
	Currency  string      `json:"currency"`
	SportType string      `json:"sport_type"`
	VenueName string      `json:"venue_name"`
}

func (e BookingConfirmed_v1) IsInternal() bool {
	return false
}

type BookingScheduled_v1 struct {
	Header          EventHeader `json:"header"`
	BookingID       string      `json:"booking_id"`
	UserEmail       string      `json:"user_email"`
	CalendarEventID string      `json:"calendar_event_id"`
}

func (e BookingScheduled_v1) IsInternal() bool {
	return false
}

type BookingCancelled_v1 struct {
	Header       EventHeader `json:"header"`
	BookingID    string      `json:"booking_id"`
	UserEmail    string      `json:"user_email"`
	Reason       string      `json:"reason"`
	RefundID     string      `json:"refund_id,omitempty"`
	RefundAmount float64     `json:"refund_amount"`
	Currency     string      `json:"currency"`
}

func (e BookingCancelled_v1) IsInternal() bool {
	return false
}
