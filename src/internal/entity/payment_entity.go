package entity

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

type PaymentMethod string

const (
	MethodRazorpay  PaymentMethod = "RAZORPAY"
	MethodStripe    PaymentMethod = "STRIPE"
	MethodUPI       PaymentMethod = "UPI"
	MethodQRCode    PaymentMethod = "QR_CODE"
	MethodCash      PaymentMethod = "CASH"
	MethodPhonePe   PaymentMethod = "PHONEPE"
	MethodGooglePay PaymentMethod = "GOOGLEPAY"
	MethodPaytm     PaymentMethod = "PAYTM"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case MethodRazorpay, MethodStripe, MethodUPI, MethodQRCode,
		MethodCash, MethodPhonePe, MethodGooglePay, MethodPaytm:
		return true
	}
	return false
}

// IsGatewayBacked reports whether the method settles through an external
// gateway, in which case payments start PENDING and a confirmation callback
// flips them.
func (m PaymentMethod) IsGatewayBacked() bool {
	return m == MethodRazorpay || m == MethodStripe
}

// PayerType records who the money came from. Drivers and admins can be
// debited too, not only customers.
type PayerType string

const (
	PayerCustomer   PayerType = "CUSTOMER"
	PayerDriver     PayerType = "DRIVER"
	PayerAdmin      PayerType = "ADMIN"
	PayerSuperAdmin PayerType = "SUPER_ADMIN"
)

func (p PayerType) Valid() bool {
	switch p {
	case PayerCustomer, PayerDriver, PayerAdmin, PayerSuperAdmin:
		return true
	}
	return false
}

type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "PENDING"
	PaymentSuccess  PaymentStatus = "SUCCESS"
	PaymentFailed   PaymentStatus = "FAILED"
	PaymentRefunded PaymentStatus = "REFUNDED"
)

// PaymentTransaction is one payment attempt against a booking. Gateway ids
// are opaque strings owned by the external integration; GatewayPaymentID is
// unique when set so a replayed confirmation can never double-count.
type PaymentTransaction struct {
	ID                int64           `db:"id"`
	RideTransactionID int64           `db:"ride_transaction_id"`
	TenantID          int64           `db:"tenant_id"`
	Amount            decimal.Decimal `db:"amount"`
	PaymentMethod     PaymentMethod   `db:"payment_method"`
	PayerType         PayerType       `db:"payer_type"`
	Status            PaymentStatus   `db:"status"`
	GatewayOrderID    sql.NullString  `db:"gateway_order_id"`
	GatewayPaymentID  sql.NullString  `db:"gateway_payment_id"`
	GatewaySignature  sql.NullString  `db:"gateway_signature"`
	Notes             sql.NullString  `db:"notes"`
	CreatedAt         time.Time       `db:"created_at"`
	UpdatedAt         *time.Time      `db:"updated_at"`
}
