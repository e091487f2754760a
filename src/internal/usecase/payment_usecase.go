package usecase

import (
	"context"
	"fmt"
	"strings"

	"dispatch-service/src/internal/entity"
	"dispatch-service/src/internal/gateway/messaging"
	"dispatch-service/src/internal/model"
	"dispatch-service/src/internal/model/converter"
	"dispatch-service/src/internal/repository"
	"dispatch-service/src/internal/scope"
	httpError "dispatch-service/src/pkg/http-error"
	"dispatch-service/src/pkg/log"
	"dispatch-service/src/pkg/utils"

	"github.com/go-playground/validator/v10"
)

type PaymentUseCase struct {
	Log               log.Log
	Validate          *validator.Validate
	BookingRepository *repository.BookingRepository
	PaymentRepository *repository.PaymentRepository
	PaymentProducer   *messaging.PaymentProducer
}

func NewPaymentUseCase(
	logger log.Log,
	validate *validator.Validate,
	bookingRepository *repository.BookingRepository,
	paymentRepository *repository.PaymentRepository,
	paymentProducer *messaging.PaymentProducer,
) *PaymentUseCase {
	return &PaymentUseCase{
		Log:               logger,
		Validate:          validate,
		BookingRepository: bookingRepository,
		PaymentRepository: paymentRepository,
		PaymentProducer:   paymentProducer,
	}
}

// Record writes a payment against a booking. Direct methods settle
// immediately; gateway-backed methods with an order id start PENDING and wait
// for the confirmation callback.
func (c *PaymentUseCase) Record(ctx context.Context, s scope.Scope, request *model.RecordPaymentRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("payment-usecase", errObj.Message, "Record", utils.ConvertString(err))
		return result
	}

	if !request.Amount.IsPositive() {
		errObj := httpError.NewBadRequest()
		errObj.Message = "payment amount must be positive"
		result.Error = errObj
		c.Log.Error("payment-usecase", errObj.Message, "Record", request.Amount.String())
		return result
	}

	method := entity.PaymentMethod(strings.ToUpper(request.PaymentMethod))
	if !method.Valid() {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("unknown payment method: %s", request.PaymentMethod)
		result.Error = errObj
		c.Log.Error("payment-usecase", errObj.Message, "Record", "")
		return result
	}

	payer := entity.PayerCustomer
	if request.PayerType != "" {
		payer = entity.PayerType(strings.ToUpper(request.PayerType))
		if !payer.Valid() {
			errObj := httpError.NewBadRequest()
			errObj.Message = fmt.Sprintf("unknown payer type: %s", request.PayerType)
			result.Error = errObj
			c.Log.Error("payment-usecase", errObj.Message, "Record", "")
			return result
		}
	}

	if request.GatewayOrderID != "" && !method.IsGatewayBacked() {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("gateway order id is not applicable for method %s", method)
		result.Error = errObj
		c.Log.Error("payment-usecase", errObj.Message, "Record", "")
		return result
	}

	payment := &entity.PaymentTransaction{
		Amount:         request.Amount.Round(2),
		PaymentMethod:  method,
		PayerType:      payer,
		GatewayOrderID: utils.NullString(request.GatewayOrderID),
		Notes:          utils.NullString(request.Notes),
	}

	if request.GatewayOrderID != "" {
		booking, err := c.PaymentRepository.CreatePending(ctx, request.BookingID, s, payment)
		if err != nil {
			result.Error = c.mapLedgerError(err, request.BookingID, "Record")
			return result
		}
		result.Data = paymentState(booking, payment)
		return result
	}

	description := fmt.Sprintf("Payment of %s received via %s from %s", payment.Amount, method, payer)
	booking, err := c.PaymentRepository.RecordSettled(ctx, request.BookingID, s, payment, description)
	if err != nil {
		result.Error = c.mapLedgerError(err, request.BookingID, "Record")
		return result
	}

	event := converter.PaymentToEvent(payment, booking)
	if err := c.PaymentProducer.SendSettled(event); err != nil {
		c.Log.Error("payment-usecase", fmt.Sprintf("failed publish payment settled event: %v", err), "Record", booking.TransactionNumber)
	}

	result.Data = paymentState(booking, payment)
	return result
}

// ConfirmGateway applies a gateway confirmation callback exactly once.
// Replays of the same callback come back as a conflict with no ledger effect.
func (c *PaymentUseCase) ConfirmGateway(ctx context.Context, request *model.ConfirmGatewayPaymentRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("payment-usecase", errObj.Message, "ConfirmGateway", utils.ConvertString(err))
		return result
	}

	payment, booking, err := c.PaymentRepository.ConfirmGateway(ctx, request.GatewayOrderID, request.GatewayPaymentID, request.GatewaySignature, request.Success)
	if err != nil {
		if err == repository.ErrAlreadyProcessed {
			errObj := httpError.NewConflict()
			errObj.Message = fmt.Sprintf("payment for order %s has already been processed", request.GatewayOrderID)
			result.Error = errObj
			c.Log.Warn("payment-usecase", errObj.Message, "ConfirmGateway", request.GatewayPaymentID)
			return result
		}
		if repository.IsNotFound(err) {
			errObj := httpError.NewNotFound()
			errObj.Message = fmt.Sprintf("no pending payment for order %s", request.GatewayOrderID)
			result.Error = errObj
			return result
		}
		if repository.IsDuplicateEntry(err) {
			errObj := httpError.NewConflict()
			errObj.Message = fmt.Sprintf("gateway payment %s was already recorded", request.GatewayPaymentID)
			result.Error = errObj
			c.Log.Warn("payment-usecase", errObj.Message, "ConfirmGateway", request.GatewayOrderID)
			return result
		}
		errObj := httpError.NewInternalServerError()
		errObj.Message = "failed to confirm gateway payment"
		result.Error = errObj
		c.Log.Error("payment-usecase", fmt.Sprintf("error confirm gateway payment: %v", err), "ConfirmGateway", utils.ConvertString(err))
		return result
	}

	if booking != nil {
		event := converter.PaymentToEvent(payment, booking)
		if err := c.PaymentProducer.SendSettled(event); err != nil {
			c.Log.Error("payment-usecase", fmt.Sprintf("failed publish payment settled event: %v", err), "ConfirmGateway", booking.TransactionNumber)
		}
		result.Data = paymentState(booking, payment)
		return result
	}

	result.Data = converter.PaymentToResponse(payment)
	return result
}

// History lists a booking's payments. The booking lookup enforces the tenant
// scope before any payment rows are read.
func (c *PaymentUseCase) History(ctx context.Context, s scope.Scope, bookingID int64) utils.Result {
	var result utils.Result

	booking, err := c.BookingRepository.FindByID(ctx, bookingID, s)
	if err != nil {
		result.Error = c.mapLedgerError(err, bookingID, "History")
		return result
	}

	payments, err := c.PaymentRepository.History(ctx, booking.ID)
	if err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = "failed to load payment history"
		result.Error = errObj
		c.Log.Error("payment-usecase", fmt.Sprintf("error load payments for booking %d: %v", bookingID, err), "History", utils.ConvertString(err))
		return result
	}

	result.Data = converter.PaymentsToResponse(payments)
	return result
}

func (c *PaymentUseCase) mapLedgerError(err error, bookingID int64, operation string) error {
	if repository.IsNotFound(err) {
		errObj := httpError.NewNotFound()
		errObj.Message = fmt.Sprintf("booking with id %d not found", bookingID)
		return errObj
	}
	errObj := httpError.NewInternalServerError()
	errObj.Message = "payment ledger write failed"
	c.Log.Error("payment-usecase", fmt.Sprintf("ledger error for booking %d: %v", bookingID, err), operation, utils.ConvertString(err))
	return errObj
}

func paymentState(booking *entity.RideTransaction, payment *entity.PaymentTransaction) *model.PaymentStateResponse {
	return &model.PaymentStateResponse{
		BookingID:   booking.ID,
		PaidAmount:  booking.PaidAmount,
		TotalAmount: booking.TotalAmount,
		DueAmount:   booking.TotalAmount.Sub(booking.PaidAmount),
		IsPaid:      booking.IsPaid,
		Payment:     converter.PaymentToResponse(payment),
	}
}
