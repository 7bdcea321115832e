package bookings

import "time"

// CalendarEventRequest is what the calendar service needs to build an event
// for a confirmed booking.
type CalendarEventRequest struct {
	Booking           Booking
	Timezone          string
	SendNotifications bool
	ReminderMinutes   int
}

type CalendarEvent struct {
	ID              string    `json:"event_id"`
	Summary         string    `json:"summary"`
	Location        string    `json:"location"`
	Description     string    `json:"description,omitempty"`
	Start           time.Time `json:"start_time"`
	End             time.Time `json:"end_time"`
	Timezone        string    `json:"timezone"`
	Attendees       []string  `json:"attendees,omitempty"`
	ReminderMinutes int       `json:"reminder_minutes"`
	// ColorID is the calendar color slot, "4" for sports bookings.
	ColorID  string `json:"color_id,omitempty"`
	HTMLLink string `json:"calendar_link"`
}
