package clients

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	domain "playo/internal/domain/bookings"
)

var ErrEventNotFound = errors.New("calendar event not found")

// CalendarAPI is what the booking flow needs from a calendar backend.
type CalendarAPI interface {
	CreateEvent(ctx context.Context, req domain.CalendarEventRequest) (domain.CalendarEvent, error)
	RemoveEvent(ctx context.Context, eventID string) error
	ListUpcoming(ctx context.Context, maxResults int, daysAhead int) ([]domain.CalendarEvent, error)
}

// CalendarSimulator keeps events in memory instead of calling the Google
// Calendar API. Event bodies mirror what the real integration would send:
// summary, location, attendee, reminder overrides.
type CalendarSimulator struct {
	mu     sync.Mutex
	events map[string]domain.CalendarEvent
}

func NewCalendarSimulator() *CalendarSimulator {
	return &CalendarSimulator{
		events: make(map[string]domain.CalendarEvent),
	}
}

func (c *CalendarSimulator) CreateEvent(ctx context.Context, req domain.CalendarEventRequest) (domain.CalendarEvent, error) {
	b := req.Booking

	start, end, err := ParseTimeSlot(b.Date, b.TimeSlot, b.DurationHours)
	if err != nil {
		return domain.CalendarEvent{}, fmt.Errorf("parsing time slot: %w", err)
	}

	u := uuid.New()
	id := "evt_" + hex.EncodeToString(u[:8])

	event := domain.CalendarEvent{
		ID:       id,
		Summary:  fmt.Sprintf("%s at %s", b.SportType, b.VenueName),
		Location: b.VenueAddress,
		Description: fmt.Sprintf(
			"Booking %s: %s, %d player(s), %.1f hour(s), INR %.2f paid. Contact: %s / %s",
			b.ID, b.ActivityName, b.NumPlayers, b.DurationHours, b.TotalPrice, b.UserPhone, b.UserEmail,
		),
		Start:           start,
		End:             end,
		Timezone:        req.Timezone,
		Attendees:       []string{b.UserEmail},
		ReminderMinutes: req.ReminderMinutes,
		ColorID:         "4",
		HTMLLink:        "https://calendar.google.com/calendar/event?eid=" + id,
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.events[id] = event

	return event, nil
}

func (c *CalendarSimulator) RemoveEvent(ctx context.Context, eventID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.events[eventID]; !ok {
		return ErrEventNotFound
	}
	delete(c.events, eventID)

	return nil
}

func (c *CalendarSimulator) ListUpcoming(ctx context.Context, maxResults int, daysAhead int) ([]domain.CalendarEvent, error) {
	now := time.Now().UTC()
	until := now.AddDate(0, 0, daysAhead)

	c.mu.Lock()
	defer c.mu.Unlock()

	var events []domain.CalendarEvent
	for _, e := range c.events {
		if e.Start.After(now) && e.Start.Before(until) {
			events = append(events, e)
		}
	}
	sort.Slice(events, func(i, j int) bool { return events[i].Start.Before(events[j].Start) })

	if maxResults > 0 && len(events) > maxResults {
		events = events[:maxResults]
	}

	return events, nil
}

var timeLayouts = []string{"3:04 PM", "3:04PM", "15:04", "3 PM", "3PM"}

// ParseTimeSlot turns a booking date plus a slot like "6:00 PM - 7:00 PM"
// into start and end times. A slot without an end time falls back to the
// booking duration (or one hour when that is not positive).
func ParseTimeSlot(date, timeSlot string, durationHours float64) (time.Time, time.Time, error) {
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		if day, err = time.Parse(time.RFC3339, date); err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("unrecognized date %q", date)
		}
	}

	parts := strings.SplitN(timeSlot, "-", 2)

	start, err := parseClock(day, parts[0])
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	if len(parts) == 2 {
		end, err := parseClock(day, parts[1])
		if err == nil {
			return start, end, nil
		}
	}

	if durationHours <= 0 {
		durationHours = 1
	}
	return start, start.Add(time.Duration(durationHours * float64(time.Hour))), nil
}

func parseClock(day time.Time, s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range timeLayouts {
		t, err := time.Parse(layout, s)
		if err != nil {
			continue
		}
		return time.Date(day.Year(), day.Month(), day.Day(), t.Hour(), t.Minute(), 0, 0, time.UTC), nil
	}
	return time.Time{}, fmt.Errorf("unrecognized time %q", s)
}
