package converter

import (
	"strconv"

	"dispatch-service/src/internal/entity"
	"dispatch-service/src/internal/model"
)

func BookingToResponse(booking *entity.RideTransaction, events []entity.RideTransactionEvent) *model.BookingResponse {
	response := &model.BookingResponse{
		ID:                  booking.ID,
		TransactionNumber:   booking.TransactionNumber,
		FriendlyCode:        booking.FriendlyCode,
		TenantID:            booking.TenantID,
		CustomerID:          booking.CustomerID,
		DriverID:            booking.DriverID,
		DispatcherID:        booking.DispatcherID,
		VehicleID:           booking.VehicleID,
		PickupLocation:      booking.PickupLocation,
		DestinationLocation: booking.DestinationLocation,
		ReturnLocation:      booking.ReturnLocation.String,
		RideDurationHours:   booking.RideDurationHours,
		PaymentMethod:       string(booking.PaymentMethod),
		TotalAmount:         booking.TotalAmount,
		DriverShare:         booking.DriverShare,
		DispatcherShare:     booking.DispatcherShare,
		AdminShare:          booking.AdminShare,
		SuperAdminShare:     booking.SuperAdminShare,
		PaidAmount:          booking.PaidAmount,
		DueAmount:           booking.TotalAmount.Sub(booking.PaidAmount),
		IsPaid:              booking.IsPaid,
		Status:              string(booking.Status),
		CreatedAt:           booking.CreatedAt,
		UpdatedAt:           booking.UpdatedAt,
	}
	for _, event := range events {
		response.Events = append(response.Events, model.BookingEventResponse{
			Event:       event.Event,
			Description: event.Description,
			Timestamp:   event.Timestamp,
		})
	}
	return response
}

func BookingToEvent(booking *entity.RideTransaction, description string) *model.BookingEvent {
	return &model.BookingEvent{
		BookingID:         strconv.FormatInt(booking.ID, 10),
		TransactionNumber: booking.TransactionNumber,
		TenantID:          booking.TenantID,
		Status:            string(booking.Status),
		TotalAmount:       booking.TotalAmount,
		Description:       description,
	}
}
