package bookings

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrBookingNotFound      = errors.New("booking not found")
	ErrInvalidPaymentMethod = errors.New("invalid payment method")
	ErrMissingPaymentDetail = errors.New("missing payment detail")
	ErrCalendarUnavailable  = errors.New("calendar service unavailable")
)

// ValidationError lists the input fields that failed validation.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "invalid booking input: " + strings.Join(e.Fields, ", ")
}

// StateConflictError is returned when an operation is not allowed from the
// booking's current status. The current status is carried so callers can
// decide what to do next.
type StateConflictError struct {
	Operation Operation
	Current   Status
}

func (e *StateConflictError) Error() string {
	return fmt.Sprintf("operation %s not allowed while booking is %s", e.Operation, e.Current)
}
