package entity

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

type TransactionStatus string

const (
	StatusRequested       TransactionStatus = "REQUESTED"
	StatusDriverAccepted  TransactionStatus = "DRIVER_ACCEPTED"
	StatusEnrouteToPickup TransactionStatus = "ENROUTE_TO_PICKUP"
	StatusCustomerPicked  TransactionStatus = "CUSTOMER_PICKED"
	StatusAtDestination   TransactionStatus = "AT_DESTINATION"
	StatusReturning       TransactionStatus = "RETURNING"
	StatusCompleted       TransactionStatus = "COMPLETED"
	StatusCancelled       TransactionStatus = "CANCELLED"
)

// rideProgression is the forward path of the lifecycle. CANCELLED is reachable
// from any non-terminal state; COMPLETED and CANCELLED absorb.
var rideProgression = map[TransactionStatus]TransactionStatus{
	StatusRequested:       StatusDriverAccepted,
	StatusDriverAccepted:  StatusEnrouteToPickup,
	StatusEnrouteToPickup: StatusCustomerPicked,
	StatusCustomerPicked:  StatusAtDestination,
	StatusAtDestination:   StatusReturning,
	StatusReturning:       StatusCompleted,
}

func (s TransactionStatus) Valid() bool {
	switch s {
	case StatusRequested, StatusDriverAccepted, StatusEnrouteToPickup,
		StatusCustomerPicked, StatusAtDestination, StatusReturning,
		StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

func (s TransactionStatus) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// CanTransitionTo reports whether next is reachable from s in one step.
func (s TransactionStatus) CanTransitionTo(next TransactionStatus) bool {
	if !s.Valid() || !next.Valid() || s.IsTerminal() {
		return false
	}
	if next == StatusCancelled {
		return true
	}
	return rideProgression[s] == next
}

// RideTransaction is the central financial record. The total and the four
// shares are written once at creation and never recomputed, even if the rate
// configuration changes later.
type RideTransaction struct {
	ID                  int64             `db:"id"`
	TransactionNumber   string            `db:"transaction_number"`
	FriendlyCode        string            `db:"friendly_code"`
	TenantID            int64             `db:"tenant_id"`
	CustomerID          int64             `db:"customer_id"`
	DriverID            int64             `db:"driver_id"`
	DispatcherID        int64             `db:"dispatcher_id"`
	VehicleID           int64             `db:"vehicle_id"`
	PickupLocation      string            `db:"pickup_location"`
	DestinationLocation string            `db:"destination_location"`
	ReturnLocation      sql.NullString    `db:"return_location"`
	RideDurationHours   int64             `db:"ride_duration_hours"`
	PaymentMethod       PaymentMethod     `db:"payment_method"`
	TotalAmount         decimal.Decimal   `db:"total_amount"`
	DriverShare         decimal.Decimal   `db:"driver_share"`
	DispatcherShare     decimal.Decimal   `db:"dispatcher_share"`
	AdminShare          decimal.Decimal   `db:"admin_share"`
	SuperAdminShare     decimal.Decimal   `db:"super_admin_share"`
	PaidAmount          decimal.Decimal   `db:"paid_amount"`
	IsPaid              bool              `db:"is_paid"`
	Status              TransactionStatus `db:"status"`
	CreatedAt           time.Time         `db:"created_at"`
	UpdatedAt           *time.Time        `db:"updated_at"`
}

// RideTransactionEvent is one row of the booking's append-only audit trail.
type RideTransactionEvent struct {
	ID            int64     `db:"id"`
	TransactionID int64     `db:"transaction_id"`
	Event         string    `db:"event"`
	Description   string    `db:"description"`
	Timestamp     time.Time `db:"timestamp"`
}
