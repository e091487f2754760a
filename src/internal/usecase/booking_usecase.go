package usecase

import (
	"context"
	"fmt"
	"strings"

	"dispatch-service/src/internal/commission"
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
	"github.com/google/uuid"
)

type BookingUseCase struct {
	Log                  log.Log
	Validate             *validator.Validate
	Rates                commission.Rates
	TenantRepository     *repository.TenantRepository
	CustomerRepository   *repository.CustomerRepository
	DriverRepository     *repository.DriverRepository
	DispatcherRepository *repository.DispatcherRepository
	VehicleRepository    *repository.VehicleRepository
	BookingRepository    *repository.BookingRepository
	BookingProducer      *messaging.BookingProducer
}

func NewBookingUseCase(
	logger log.Log,
	validate *validator.Validate,
	rates commission.Rates,
	tenantRepository *repository.TenantRepository,
	customerRepository *repository.CustomerRepository,
	driverRepository *repository.DriverRepository,
	dispatcherRepository *repository.DispatcherRepository,
	vehicleRepository *repository.VehicleRepository,
	bookingRepository *repository.BookingRepository,
	bookingProducer *messaging.BookingProducer,
) *BookingUseCase {
	return &BookingUseCase{
		Log:                  logger,
		Validate:             validate,
		Rates:                rates,
		TenantRepository:     tenantRepository,
		CustomerRepository:   customerRepository,
		DriverRepository:     driverRepository,
		DispatcherRepository: dispatcherRepository,
		VehicleRepository:    vehicleRepository,
		BookingRepository:    bookingRepository,
		BookingProducer:      bookingProducer,
	}
}

// Create prices the ride, splits the commission, and persists the booking with
// its initial audit events in one transaction. Shares are frozen at creation;
// a later rate change never touches existing bookings.
func (c *BookingUseCase) Create(ctx context.Context, s scope.Scope, request *model.CreateBookingRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("booking-usecase", errObj.Message, "Create", utils.ConvertString(err))
		return result
	}

	method := entity.PaymentMethod(strings.ToUpper(request.PaymentMethod))
	if !method.Valid() {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("unknown payment method: %s", request.PaymentMethod)
		result.Error = errObj
		c.Log.Error("booking-usecase", errObj.Message, "Create", "")
		return result
	}

	tenantID, err := s.OwningTenant(request.TenantID)
	if err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = err.Error()
		result.Error = errObj
		c.Log.Error("booking-usecase", errObj.Message, "Create", "")
		return result
	}

	tenant, err := c.TenantRepository.FindByID(ctx, tenantID)
	if err != nil {
		errObj := httpError.NewNotFound()
		errObj.Message = fmt.Sprintf("tenant %d not found", tenantID)
		result.Error = errObj
		c.Log.Error("booking-usecase", errObj.Message, "Create", utils.ConvertString(err))
		return result
	}
	if !tenant.IsActive {
		errObj := httpError.NewConflict()
		errObj.Message = fmt.Sprintf("tenant %s is inactive", tenant.Code)
		result.Error = errObj
		c.Log.Error("booking-usecase", errObj.Message, "Create", "")
		return result
	}

	if errObj := c.checkParties(ctx, tenantID, request); errObj != nil {
		result.Error = errObj
		return result
	}

	total := c.Rates.TotalAmount(request.RideDurationHours)
	split := commission.ComputeSplit(total, c.Rates)

	booking := &entity.RideTransaction{
		FriendlyCode:        friendlyCode(tenant.Code),
		TenantID:            tenantID,
		CustomerID:          request.CustomerID,
		DriverID:            request.DriverID,
		DispatcherID:        request.DispatcherID,
		VehicleID:           request.VehicleID,
		PickupLocation:      request.PickupLocation,
		DestinationLocation: request.DestinationLocation,
		ReturnLocation:      utils.NullString(request.ReturnLocation),
		RideDurationHours:   request.RideDurationHours,
		PaymentMethod:       method,
		TotalAmount:         split.Total,
		DriverShare:         split.DriverShare,
		DispatcherShare:     split.DispatcherShare,
		AdminShare:          split.AdminShare,
		SuperAdminShare:     split.SuperAdminShare,
		Status:              entity.StatusRequested,
	}
	events := []entity.RideTransactionEvent{
		{
			Event:       string(entity.StatusRequested),
			Description: fmt.Sprintf("Booking created for %d hour(s), total %s", request.RideDurationHours, split.Total),
		},
		{
			Event:       "COMMISSION_SPLIT",
			Description: fmt.Sprintf("Shares: driver %s, dispatcher %s, admin %s, super admin %s", split.DriverShare, split.DispatcherShare, split.AdminShare, split.SuperAdminShare),
		},
	}

	if err := c.BookingRepository.CreateWithEvents(ctx, booking, events); err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = "failed to create booking"
		result.Error = errObj
		c.Log.Error("booking-usecase", fmt.Sprintf("error insert booking: %v", err), "Create", utils.ConvertString(err))
		return result
	}

	event := converter.BookingToEvent(booking, "booking created")
	if err := c.BookingProducer.SendCreated(event); err != nil {
		c.Log.Error("booking-usecase", fmt.Sprintf("failed publish booking created event: %v", err), "Create", booking.TransactionNumber)
	}

	result.Data = converter.BookingToResponse(booking, events)
	return result
}

// checkParties verifies every referenced party belongs to the booking's
// tenant. A cross-tenant reference reads as not found, never as forbidden.
func (c *BookingUseCase) checkParties(ctx context.Context, tenantID int64, request *model.CreateBookingRequest) *httpError.CommonError {
	checks := []struct {
		name string
		id   int64
		fn   func(context.Context, int64, int64) (bool, error)
	}{
		{"customer", request.CustomerID, c.CustomerRepository.BelongsToTenant},
		{"driver", request.DriverID, c.DriverRepository.BelongsToTenant},
		{"dispatcher", request.DispatcherID, c.DispatcherRepository.BelongsToTenant},
		{"vehicle", request.VehicleID, c.VehicleRepository.BelongsToTenant},
	}
	for _, check := range checks {
		ok, err := check.fn(ctx, check.id, tenantID)
		if err != nil {
			errObj := httpError.NewInternalServerError()
			errObj.Message = fmt.Sprintf("failed to verify %s", check.name)
			c.Log.Error("booking-usecase", fmt.Sprintf("error checking %s %d: %v", check.name, check.id, err), "checkParties", utils.ConvertString(err))
			return errObj
		}
		if !ok {
			errObj := httpError.NewNotFound()
			errObj.Message = fmt.Sprintf("%s with id %d not found", check.name, check.id)
			c.Log.Error("booking-usecase", errObj.Message, "checkParties", "")
			return errObj
		}
	}
	return nil
}

func (c *BookingUseCase) FindByID(ctx context.Context, s scope.Scope, id int64) utils.Result {
	var result utils.Result

	booking, err := c.BookingRepository.FindByID(ctx, id, s)
	if err != nil {
		if repository.IsNotFound(err) {
			errObj := httpError.NewNotFound()
			errObj.Message = fmt.Sprintf("booking with id %d not found", id)
			result.Error = errObj
			return result
		}
		errObj := httpError.NewInternalServerError()
		errObj.Message = "failed to load booking"
		result.Error = errObj
		c.Log.Error("booking-usecase", fmt.Sprintf("error load booking %d: %v", id, err), "FindByID", utils.ConvertString(err))
		return result
	}

	events, err := c.BookingRepository.FindEvents(ctx, booking.ID)
	if err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = "failed to load booking events"
		result.Error = errObj
		c.Log.Error("booking-usecase", fmt.Sprintf("error load events for booking %d: %v", id, err), "FindByID", utils.ConvertString(err))
		return result
	}

	result.Data = converter.BookingToResponse(booking, events)
	return result
}

func (c *BookingUseCase) List(ctx context.Context, s scope.Scope, filter model.ListRequest) utils.Result {
	var result utils.Result
	filter.Normalize()

	bookings, err := c.BookingRepository.List(ctx, s, filter)
	if err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = "failed to list bookings"
		result.Error = errObj
		c.Log.Error("booking-usecase", fmt.Sprintf("error list bookings: %v", err), "List", utils.ConvertString(err))
		return result
	}

	responses := make([]model.BookingResponse, 0, len(bookings))
	for i := range bookings {
		responses = append(responses, *converter.BookingToResponse(&bookings[i], nil))
	}
	result.Data = responses
	return result
}

// Transition moves the booking one step along its lifecycle. The repository
// update is conditional on the current status, so two dispatchers racing on
// the same booking resolve to exactly one winner.
func (c *BookingUseCase) Transition(ctx context.Context, s scope.Scope, request *model.TransitionBookingRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("booking-usecase", errObj.Message, "Transition", utils.ConvertString(err))
		return result
	}

	next := entity.TransactionStatus(strings.ToUpper(request.Status))
	if !next.Valid() {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("unknown status: %s", request.Status)
		result.Error = errObj
		c.Log.Error("booking-usecase", errObj.Message, "Transition", "")
		return result
	}

	booking, err := c.BookingRepository.FindByID(ctx, request.BookingID, s)
	if err != nil {
		if repository.IsNotFound(err) {
			errObj := httpError.NewNotFound()
			errObj.Message = fmt.Sprintf("booking with id %d not found", request.BookingID)
			result.Error = errObj
			return result
		}
		errObj := httpError.NewInternalServerError()
		errObj.Message = "failed to load booking"
		result.Error = errObj
		c.Log.Error("booking-usecase", fmt.Sprintf("error load booking %d: %v", request.BookingID, err), "Transition", utils.ConvertString(err))
		return result
	}

	if !booking.Status.CanTransitionTo(next) {
		errObj := httpError.NewUnprocessableEntity()
		errObj.Message = fmt.Sprintf("cannot transition from %s to %s", booking.Status, next)
		result.Error = errObj
		c.Log.Error("booking-usecase", errObj.Message, "Transition", booking.TransactionNumber)
		return result
	}

	description := request.Description
	if description == "" {
		description = fmt.Sprintf("Status changed from %s to %s", booking.Status, next)
	}

	ok, err := c.BookingRepository.TransitionStatus(ctx, booking.ID, booking.Status, next, description)
	if err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = "failed to update booking status"
		result.Error = errObj
		c.Log.Error("booking-usecase", fmt.Sprintf("error transition booking %d: %v", booking.ID, err), "Transition", utils.ConvertString(err))
		return result
	}
	if !ok {
		errObj := httpError.NewConflict()
		errObj.Message = "booking status changed concurrently, reload and retry"
		result.Error = errObj
		c.Log.Error("booking-usecase", errObj.Message, "Transition", booking.TransactionNumber)
		return result
	}
	booking.Status = next

	event := converter.BookingToEvent(booking, description)
	if err := c.BookingProducer.SendTransition(event); err != nil {
		c.Log.Error("booking-usecase", fmt.Sprintf("failed publish booking transition event: %v", err), "Transition", booking.TransactionNumber)
	}

	events, err := c.BookingRepository.FindEvents(ctx, booking.ID)
	if err != nil {
		c.Log.Error("booking-usecase", fmt.Sprintf("error load events for booking %d: %v", booking.ID, err), "Transition", utils.ConvertString(err))
	}

	result.Data = converter.BookingToResponse(booking, events)
	return result
}

// friendlyCode is the human-facing booking reference: tenant code plus a short
// random suffix. The transaction number stays the canonical unique key.
func friendlyCode(tenantCode string) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:6])
	return strings.ToUpper(tenantCode) + "-" + suffix
}
