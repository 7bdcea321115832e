package bookings

type Status string

const (
	StatusCreated        Status = "created"
	StatusPaymentPending Status = "payment_pending"
	StatusConfirmed      Status = "confirmed"
	StatusScheduled      Status = "scheduled"
	StatusCancelled      Status = "cancelled"
	StatusPaymentFailed  Status = "payment_failed"
)

type Operation string

const (
	OpProcessPayment Operation = "process_payment"
	OpSchedule       Operation = "add_to_calendar"
	OpCancel         Operation = "cancel"
)

// allowedSources is the single transition table: the statuses each mutating
// operation may start from. A confirmed booking's payment is immutable, so
// process_payment is not re-attemptable once confirmed.
var allowedSources = map[Operation][]Status{
	OpProcessPayment: {StatusCreated, StatusPaymentPending, StatusPaymentFailed},
	OpSchedule:       {StatusConfirmed, StatusScheduled},
	OpCancel:         {StatusCreated, StatusPaymentPending, StatusConfirmed, StatusScheduled, StatusPaymentFailed},
}

// CanApply reports whether op is allowed from the current status, returning a
// StateConflictError otherwise.
func CanApply(op Operation, current Status) error {
	for _, s := range allowedSources[op] {
		if s == current {
			return nil
		}
	}
	return &StateConflictError{Operation: op, Current: current}
}
