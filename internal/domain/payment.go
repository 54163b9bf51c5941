package domain

import "time"

type PaymentType string

const (
	PaymentTypePayment PaymentType = "payment"
	PaymentTypeRefund  PaymentType = "refund"
)

// Payment records money movement against a request.
type Payment struct {
	ID        int32       `json:"id"`
	RequestID int32       `json:"request_id"`
	Amount    float64     `json:"amount"`
	Type      PaymentType `json:"type"`
	Status    string      `json:"status"`
	Reference string      `json:"reference"`
	CreatedAt time.Time   `json:"created_at"`
}
