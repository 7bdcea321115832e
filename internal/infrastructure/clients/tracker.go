package clients

import (
	"context"
	"sync"
)

// BookingTracker is an in-memory stand-in for the ops spreadsheet that
// bookings, refunds and scheduled events are appended to. Rows are grouped
// by tracker name and kept in append order.
type BookingTracker struct {
	mu   sync.Mutex
	rows map[string][][]string
}

func NewBookingTracker() *BookingTracker {
	return &BookingTracker{
		rows: make(map[string][][]string),
	}
}

func (t *BookingTracker) AppendRow(ctx context.Context, trackerName string, row []string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.rows[trackerName] = append(t.rows[trackerName], row)

	return nil
}

// Rows returns a copy of the rows appended under the given tracker name.
func (t *BookingTracker) Rows(trackerName string) [][]string {
	t.mu.Lock()
	defer t.mu.Unlock()

	rows := make([][]string, len(t.rows[trackerName]))
	copy(rows, t.rows[trackerName])

	return rows
}
