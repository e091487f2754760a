package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type RecordPaymentRequest struct {
	BookingID     int64           `json:"bookingId" validate:"required,gt=0"`
	Amount        decimal.Decimal `json:"amount" validate:"required"`
	PaymentMethod string          `json:"paymentMethod" validate:"required"`
	PayerType     string          `json:"payerType,omitempty"`
	// GatewayOrderID correlates a gateway-initiated payment; its presence
	// makes the payment start out PENDING instead of SUCCESS.
	GatewayOrderID string `json:"gatewayOrderId,omitempty" validate:"max=100"`
	Notes          string `json:"notes,omitempty" validate:"max=255"`
}

// ConfirmGatewayPaymentRequest is the shape of a gateway confirmation
// callback. GatewayPaymentID is the at-most-once key: replays of the same
// callback must not double-count.
type ConfirmGatewayPaymentRequest struct {
	GatewayOrderID   string `json:"gatewayOrderId" validate:"required,max=100"`
	GatewayPaymentID string `json:"gatewayPaymentId" validate:"required,max=100"`
	GatewaySignature string `json:"gatewaySignature,omitempty" validate:"max=255"`
	Success          bool   `json:"success"`
}

type PaymentResponse struct {
	ID               int64           `json:"id"`
	BookingID        int64           `json:"bookingId"`
	Amount           decimal.Decimal `json:"amount"`
	PaymentMethod    string          `json:"paymentMethod"`
	PayerType        string          `json:"payerType"`
	Status           string          `json:"status"`
	GatewayOrderID   string          `json:"gatewayOrderId,omitempty"`
	GatewayPaymentID string          `json:"gatewayPaymentId,omitempty"`
	Notes            string          `json:"notes,omitempty"`
	CreatedAt        time.Time       `json:"createdAt"`
}

// PaymentStateResponse reports the booking's reconciled payment totals after
// a ledger write.
type PaymentStateResponse struct {
	BookingID   int64           `json:"bookingId"`
	PaidAmount  decimal.Decimal `json:"paidAmount"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	DueAmount   decimal.Decimal `json:"dueAmount"`
	IsPaid      bool            `json:"isPaid"`
	Payment     *PaymentResponse `json:"payment,omitempty"`
}
