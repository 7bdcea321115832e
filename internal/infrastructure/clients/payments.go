package clients

import (
	"context"
	"fmt"
	"strings"
	"time"

	domain "playo/internal/domain/bookings"
	"playo/internal/identifier"
)

// PaymentSimulator stands in for a real payment gateway: it validates the
// method and its detail, then decides the outcome without touching any
// network. The outcome policy is deterministic so the same inputs always
// produce the same result: any positive amount succeeds, a zero or negative
// amount is declined.
type PaymentSimulator struct {
	ids *identifier.Generator
}

func NewPaymentSimulator(ids *identifier.Generator) *PaymentSimulator {
	return &PaymentSimulator{ids: ids}
}

func (s *PaymentSimulator) Attempt(ctx context.Context, booking domain.Booking, method string, detail string) (domain.Payment, error) {
	m, err := domain.ParsePaymentMethod(method)
	if err != nil {
		return domain.Payment{}, err
	}

	masked, err := maskDetail(m, detail)
	if err != nil {
		return domain.Payment{}, err
	}

	return domain.Payment{
		ID:            s.ids.New("PAY"),
		BookingID:     booking.ID,
		TransactionID: s.ids.New("TXN"),
		Method:        m,
		MethodDetail:  masked,
		Amount:        booking.TotalPrice,
		Currency:      domain.CurrencyINR,
		Outcome:       DecideOutcome(booking.TotalPrice),
		Timestamp:     time.Now().UTC(),
	}, nil
}

// DecideOutcome is the documented outcome policy, kept as a named function so
// it can be tested and overridden in one place.
func DecideOutcome(amount float64) domain.PaymentOutcome {
	if amount <= 0 {
		return domain.PaymentDeclined
	}
	return domain.PaymentSuccess
}

func maskDetail(m domain.PaymentMethod, detail string) (string, error) {
	detail = strings.TrimSpace(detail)

	switch m {
	case domain.MethodUPI:
		if detail == "" {
			return "", fmt.Errorf("%w: upi_id is required for upi payments", domain.ErrMissingPaymentDetail)
		}
		return maskUPI(detail), nil
	case domain.MethodCard:
		if detail == "" {
			return "", fmt.Errorf("%w: card_number is required for card payments", domain.ErrMissingPaymentDetail)
		}
		return "card ending " + lastN(detail, 4), nil
	default:
		// netbanking and wallet carry no extra detail
		return "", nil
	}
}

func maskUPI(upiID string) string {
	at := strings.Index(upiID, "@")
	if at <= 2 {
		return upiID
	}
	return upiID[:2] + strings.Repeat("*", at-2) + upiID[at:]
}

func lastN(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[len(s)-n:]
}
