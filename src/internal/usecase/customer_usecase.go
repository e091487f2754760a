package usecase

import (
	"context"
	"fmt"

	"dispatch-service/src/internal/entity"
	"dispatch-service/src/internal/model"
	"dispatch-service/src/internal/model/converter"
	"dispatch-service/src/internal/repository"
	"dispatch-service/src/internal/scope"
	httpError "dispatch-service/src/pkg/http-error"
	"dispatch-service/src/pkg/log"
	"dispatch-service/src/pkg/utils"

	"github.com/go-playground/validator/v10"
)

type CustomerUseCase struct {
	Log                log.Log
	Validate           *validator.Validate
	CustomerRepository *repository.CustomerRepository
}

func NewCustomerUseCase(logger log.Log, validate *validator.Validate, customerRepository *repository.CustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{
		Log:                logger,
		Validate:           validate,
		CustomerRepository: customerRepository,
	}
}

func (c *CustomerUseCase) Create(ctx context.Context, s scope.Scope, request *model.CreateCustomerRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("customer-usecase", errObj.Message, "Create", utils.ConvertString(err))
		return result
	}

	tenantID, err := s.OwningTenant(request.TenantID)
	if err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = err.Error()
		result.Error = errObj
		c.Log.Error("customer-usecase", errObj.Message, "Create", "")
		return result
	}

	customer := &entity.Customer{
		TenantID:    &tenantID,
		Name:        request.Name,
		Email:       request.Email,
		PhoneNumber: utils.NullString(request.PhoneNumber),
		AddressLine: utils.NullString(request.AddressLine),
	}

	id, err := c.CustomerRepository.Create(ctx, customer)
	if err != nil {
		if repository.IsDuplicateEntry(err) {
			errObj := httpError.NewConflict()
			errObj.Message = fmt.Sprintf("customer with email %s already exists", request.Email)
			result.Error = errObj
			c.Log.Error("customer-usecase", errObj.Message, "Create", "")
			return result
		}
		errObj := httpError.NewInternalServerError()
		errObj.Message = "failed to create customer"
		result.Error = errObj
		c.Log.Error("customer-usecase", fmt.Sprintf("error insert customer: %v", err), "Create", utils.ConvertString(err))
		return result
	}
	customer.ID = id

	result.Data = converter.CustomerToResponse(customer)
	return result
}

func (c *CustomerUseCase) List(ctx context.Context, s scope.Scope, filter model.ListRequest) utils.Result {
	var result utils.Result
	filter.Normalize()

	customers, err := c.CustomerRepository.List(ctx, s, filter)
	if err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = "failed to list customers"
		result.Error = errObj
		c.Log.Error("customer-usecase", fmt.Sprintf("error list customers: %v", err), "List", utils.ConvertString(err))
		return result
	}

	result.Data = converter.CustomersToResponse(customers)
	return result
}

func (c *CustomerUseCase) FindByID(ctx context.Context, s scope.Scope, id int64) utils.Result {
	var result utils.Result

	customer, err := c.CustomerRepository.FindByID(ctx, id, s)
	if err != nil {
		if repository.IsNotFound(err) {
			errObj := httpError.NewNotFound()
			errObj.Message = fmt.Sprintf("customer with id %d not found", id)
			result.Error = errObj
			return result
		}
		errObj := httpError.NewInternalServerError()
		errObj.Message = "failed to load customer"
		result.Error = errObj
		c.Log.Error("customer-usecase", fmt.Sprintf("error load customer %d: %v", id, err), "FindByID", utils.ConvertString(err))
		return result
	}

	result.Data = converter.CustomerToResponse(customer)
	return result
}

func (c *CustomerUseCase) Update(ctx context.Context, s scope.Scope, request *model.UpdateCustomerRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("customer-usecase", errObj.Message, "Update", utils.ConvertString(err))
		return result
	}

	customer, err := c.CustomerRepository.FindByID(ctx, request.ID, s)
	if err != nil {
		if repository.IsNotFound(err) {
			errObj := httpError.NewNotFound()
			errObj.Message = fmt.Sprintf("customer with id %d not found", request.ID)
			result.Error = errObj
			return result
		}
		errObj := httpError.NewInternalServerError()
		errObj.Message = "failed to load customer"
		result.Error = errObj
		c.Log.Error("customer-usecase", fmt.Sprintf("error load customer %d: %v", request.ID, err), "Update", utils.ConvertString(err))
		return result
	}

	if request.Name != nil {
		customer.Name = *request.Name
	}
	if request.Email != nil {
		customer.Email = *request.Email
	}
	if request.PhoneNumber != nil {
		customer.PhoneNumber = utils.NullString(*request.PhoneNumber)
	}
	if request.AddressLine != nil {
		customer.AddressLine = utils.NullString(*request.AddressLine)
	}

	if err := c.CustomerRepository.Update(ctx, customer); err != nil {
		if repository.IsDuplicateEntry(err) {
			errObj := httpError.NewConflict()
			errObj.Message = "customer email already in use"
			result.Error = errObj
			return result
		}
		errObj := httpError.NewInternalServerError()
		errObj.Message = "failed to update customer"
		result.Error = errObj
		c.Log.Error("customer-usecase", fmt.Sprintf("error update customer %d: %v", request.ID, err), "Update", utils.ConvertString(err))
		return result
	}

	result.Data = converter.CustomerToResponse(customer)
	return result
}

// SetArchived soft-deletes or restores. Archived customers stay referenced by
// historical bookings, so rows are never removed.
func (c *CustomerUseCase) SetArchived(ctx context.Context, s scope.Scope, id int64, archived bool) utils.Result {
	var result utils.Result

	if err := c.CustomerRepository.SetArchived(ctx, id, s, archived); err != nil {
		if repository.IsNotFound(err) {
			errObj := httpError.NewNotFound()
			errObj.Message = fmt.Sprintf("customer with id %d not found", id)
			result.Error = errObj
			return result
		}
		errObj := httpError.NewInternalServerError()
		errObj.Message = "failed to update customer"
		result.Error = errObj
		c.Log.Error("customer-usecase", fmt.Sprintf("error archive customer %d: %v", id, err), "SetArchived", utils.ConvertString(err))
		return result
	}

	result.Data = map[string]interface{}{"id": id, "isArchived": archived}
	return result
}
