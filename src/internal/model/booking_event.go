package model

import "github.com/shopspring/decimal"

// BookingEvent is published to kafka on booking creation and on every
// lifecycle transition.
type BookingEvent struct {
	BookingID         string          `json:"bookingId"`
	TransactionNumber string          `json:"transactionNumber"`
	TenantID          int64           `json:"tenantId"`
	Status            string          `json:"status"`
	TotalAmount       decimal.Decimal `json:"totalAmount"`
	Description       string          `json:"description,omitempty"`
}

func (e *BookingEvent) GetId() string {
	return e.BookingID
}

// PaymentEvent is published when a payment settles or fails.
type PaymentEvent struct {
	PaymentID  string          `json:"paymentId"`
	BookingID  string          `json:"bookingId"`
	TenantID   int64           `json:"tenantId"`
	Amount     decimal.Decimal `json:"amount"`
	Status     string          `json:"status"`
	PaidAmount decimal.Decimal `json:"paidAmount"`
	IsPaid     bool            `json:"isPaid"`
}

func (e *PaymentEvent) GetId() string {
	return e.BookingID
}
