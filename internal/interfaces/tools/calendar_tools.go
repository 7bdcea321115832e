package tools

import (
	"context"

	domain "playo/internal/domain/bookings"
	"playo/internal/infrastructure/clients"
)

type ListCalendarEventsTool struct {
	calendar clients.CalendarAPI
}

func NewListCalendarEventsTool(calendar clients.CalendarAPI) *ListCalendarEventsTool {
	return &ListCalendarEventsTool{calendar: calendar}
}

func (t *ListCalendarEventsTool) Name() string { return "list_calendar_events" }

func (t *ListCalendarEventsTool) Description() string {
	return "List upcoming calendar events, soonest first."
}

func (t *ListCalendarEventsTool) Parameters() map[string]any {
	return objectSchema(map[string]any{
		"max_results": integerParam("Maximum number of events to return (default 10)"),
		"days_ahead":  integerParam("How many days ahead to look (default 7)"),
	})
}

func (t *ListCalendarEventsTool) Execute(ctx context.Context, args map[string]any) (map[string]any, error) {
	events, err := t.calendar.ListUpcoming(ctx,
		intArg(args, "max_results", 10),
		intArg(args, "days_ahead", 7),
	)
	if err != nil {
		return errorResult(err), nil
	}

	if events == nil {
		events = []domain.CalendarEvent{}
	}

	return map[string]any{
		"success":      true,
		"total_events": len(events),
		"events":       events,
	}, nil
}
