package converter

import (
	"strconv"

	"dispatch-service/src/internal/entity"
	"dispatch-service/src/internal/model"
)

func PaymentToResponse(payment *entity.PaymentTransaction) *model.PaymentResponse {
	return &model.PaymentResponse{
		ID:               payment.ID,
		BookingID:        payment.RideTransactionID,
		Amount:           payment.Amount,
		PaymentMethod:    string(payment.PaymentMethod),
		PayerType:        string(payment.PayerType),
		Status:           string(payment.Status),
		GatewayOrderID:   payment.GatewayOrderID.String,
		GatewayPaymentID: payment.GatewayPaymentID.String,
		Notes:            payment.Notes.String,
		CreatedAt:        payment.CreatedAt,
	}
}

func PaymentsToResponse(payments []entity.PaymentTransaction) []model.PaymentResponse {
	responses := make([]model.PaymentResponse, 0, len(payments))
	for i := range payments {
		responses = append(responses, *PaymentToResponse(&payments[i]))
	}
	return responses
}

func PaymentToEvent(payment *entity.PaymentTransaction, booking *entity.RideTransaction) *model.PaymentEvent {
	return &model.PaymentEvent{
		PaymentID:  strconv.FormatInt(payment.ID, 10),
		BookingID:  strconv.FormatInt(booking.ID, 10),
		TenantID:   booking.TenantID,
		Amount:     payment.Amount,
		Status:     string(payment.Status),
		PaidAmount: booking.PaidAmount,
		IsPaid:     booking.IsPaid,
	}
}
