package bookings

import (
	"fmt"
	"strings"
	"time"
)

type PaymentMethod string

const (
	MethodUPI        PaymentMethod = "upi"
	MethodCard       PaymentMethod = "card"
	MethodNetBanking PaymentMethod = "netbanking"
	MethodWallet     PaymentMethod = "wallet"
)

type PaymentOutcome string

const (
	PaymentSuccess  PaymentOutcome = "success"
	PaymentDeclined PaymentOutcome = "declined"
)

type Payment struct {
	ID            string         `json:"payment_id"`
	BookingID     string         `json:"booking_id"`
	TransactionID string         `json:"transaction_id"`
	Method        PaymentMethod  `json:"payment_method"`
	MethodDetail  string         `json:"method_detail,omitempty"`
	Amount        float64        `json:"amount"`
	Currency      string         `json:"currency"`
	Outcome       PaymentOutcome `json:"status"`
	Timestamp     time.Time      `json:"timestamp"`
}

func ParsePaymentMethod(s string) (PaymentMethod, error) {
	m := PaymentMethod(strings.ToLower(strings.TrimSpace(s)))
	switch m {
	case MethodUPI, MethodCard, MethodNetBanking, MethodWallet:
		return m, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidPaymentMethod, s)
}
