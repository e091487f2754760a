package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type CreateBookingRequest struct {
	DispatcherID        int64  `json:"dispatcherId" validate:"required,gt=0"`
	CustomerID          int64  `json:"customerId" validate:"required,gt=0"`
	DriverID            int64  `json:"driverId" validate:"required,gt=0"`
	VehicleID           int64  `json:"vehicleId" validate:"required,gt=0"`
	PickupLocation      string `json:"pickupLocation" validate:"required,max=255"`
	DestinationLocation string `json:"destinationLocation" validate:"required,max=255"`
	ReturnLocation      string `json:"returnLocation,omitempty" validate:"max=255"`
	RideDurationHours   int64  `json:"rideDurationHours" validate:"required,gt=0"`
	PaymentMethod       string `json:"paymentMethod" validate:"required"`
	// TenantID is only honoured under the all-tenants scope.
	TenantID *int64 `json:"tenantId,omitempty"`
}

type TransitionBookingRequest struct {
	BookingID   int64  `json:"-" validate:"required"`
	Status      string `json:"status" validate:"required"`
	Description string `json:"description,omitempty" validate:"max=255"`
}

type BookingEventResponse struct {
	Event       string    `json:"event"`
	Description string    `json:"description"`
	Timestamp   time.Time `json:"timestamp"`
}

type BookingResponse struct {
	ID                  int64                  `json:"id"`
	TransactionNumber   string                 `json:"transactionNumber"`
	FriendlyCode        string                 `json:"friendlyCode"`
	TenantID            int64                  `json:"tenantId"`
	CustomerID          int64                  `json:"customerId"`
	DriverID            int64                  `json:"driverId"`
	DispatcherID        int64                  `json:"dispatcherId"`
	VehicleID           int64                  `json:"vehicleId"`
	PickupLocation      string                 `json:"pickupLocation"`
	DestinationLocation string                 `json:"destinationLocation"`
	ReturnLocation      string                 `json:"returnLocation,omitempty"`
	RideDurationHours   int64                  `json:"rideDurationHours"`
	PaymentMethod       string                 `json:"paymentMethod"`
	TotalAmount         decimal.Decimal        `json:"totalAmount"`
	DriverShare         decimal.Decimal        `json:"driverShare"`
	DispatcherShare     decimal.Decimal        `json:"dispatcherShare"`
	AdminShare          decimal.Decimal        `json:"adminShare"`
	SuperAdminShare     decimal.Decimal        `json:"superAdminShare"`
	PaidAmount          decimal.Decimal        `json:"paidAmount"`
	DueAmount           decimal.Decimal        `json:"dueAmount"`
	IsPaid              bool                   `json:"isPaid"`
	Status              string                 `json:"status"`
	CreatedAt           time.Time              `json:"createdAt"`
	UpdatedAt           *time.Time             `json:"updatedAt,omitempty"`
	Events              []BookingEventResponse `json:"events,omitempty"`
}
