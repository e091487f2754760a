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

type DispatcherUseCase struct {
	Log                  log.Log
	Validate             *validator.Validate
	DispatcherRepository *repository.DispatcherRepository
}

func NewDispatcherUseCase(logger log.Log, validate *validator.Validate, dispatcherRepository *repository.DispatcherRepository) *DispatcherUseCase {
	return &DispatcherUseCase{
		Log:                  logger,
		Validate:             validate,
		DispatcherRepository: dispatcherRepository,
	}
}

func (c *DispatcherUseCase) Create(ctx context.Context, s scope.Scope, request *model.CreateDispatcherRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("dispatcher-usecase", errObj.Message, "Create", utils.ConvertString(err))
		return result
	}

	tenantID, err := s.OwningTenant(request.TenantID)
	if err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = err.Error()
		result.Error = errObj
		c.Log.Error("dispatcher-usecase", errObj.Message, "Create", "")
		return result
	}

	dispatcher := &entity.Dispatcher{
		TenantID:    &tenantID,
		Name:        request.Name,
		Email:       utils.NullString(request.Email),
		PhoneNumber: utils.NullString(request.PhoneNumber),
	}

	id, err := c.DispatcherRepository.Create(ctx, dispatcher)
	if err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = "failed to create dispatcher"
		result.Error = errObj
		c.Log.Error("dispatcher-usecase", fmt.Sprintf("error insert dispatcher: %v", err), "Create", utils.ConvertString(err))
		return result
	}
	dispatcher.ID = id

	result.Data = converter.DispatcherToResponse(dispatcher)
	return result
}

func (c *DispatcherUseCase) List(ctx context.Context, s scope.Scope, filter model.ListRequest) utils.Result {
	var result utils.Result
	filter.Normalize()

	dispatchers, err := c.DispatcherRepository.List(ctx, s, filter)
	if err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = "failed to list dispatchers"
		result.Error = errObj
		c.Log.Error("dispatcher-usecase", fmt.Sprintf("error list dispatchers: %v", err), "List", utils.ConvertString(err))
		return result
	}

	result.Data = converter.DispatchersToResponse(dispatchers)
	return result
}

func (c *DispatcherUseCase) FindByID(ctx context.Context, s scope.Scope, id int64) utils.Result {
	var result utils.Result

	dispatcher, err := c.DispatcherRepository.FindByID(ctx, id, s)
	if err != nil {
		if repository.IsNotFound(err) {
			errObj := httpError.NewNotFound()
			errObj.Message = fmt.Sprintf("dispatcher with id %d not found", id)
			result.Error = errObj
			return result
		}
		errObj := httpError.NewInternalServerError()
		errObj.Message = "failed to load dispatcher"
		result.Error = errObj
		c.Log.Error("dispatcher-usecase", fmt.Sprintf("error load dispatcher %d: %v", id, err), "FindByID", utils.ConvertString(err))
		return result
	}

	result.Data = converter.DispatcherToResponse(dispatcher)
	return result
}

func (c *DispatcherUseCase) Update(ctx context.Context, s scope.Scope, request *model.UpdateDispatcherRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("dispatcher-usecase", errObj.Message, "Update", utils.ConvertString(err))
		return result
	}

	dispatcher, err := c.DispatcherRepository.FindByID(ctx, request.ID, s)
	if err != nil {
		if repository.IsNotFound(err) {
			errObj := httpError.NewNotFound()
			errObj.Message = fmt.Sprintf("dispatcher with id %d not found", request.ID)
			result.Error = errObj
			return result
		}
		errObj := httpError.NewInternalServerError()
		errObj.Message = "failed to load dispatcher"
		result.Error = errObj
		c.Log.Error("dispatcher-usecase", fmt.Sprintf("error load dispatcher %d: %v", request.ID, err), "Update", utils.ConvertString(err))
		return result
	}

	if request.Name != nil {
		dispatcher.Name = *request.Name
	}
	if request.Email != nil {
		dispatcher.Email = utils.NullString(*request.Email)
	}
	if request.PhoneNumber != nil {
		dispatcher.PhoneNumber = utils.NullString(*request.PhoneNumber)
	}

	if err := c.DispatcherRepository.Update(ctx, dispatcher); err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = "failed to update dispatcher"
		result.Error = errObj
		c.Log.Error("dispatcher-usecase", fmt.Sprintf("error update dispatcher %d: %v", request.ID, err), "Update", utils.ConvertString(err))
		return result
	}

	result.Data = converter.DispatcherToResponse(dispatcher)
	return result
}

func (c *DispatcherUseCase) SetArchived(ctx context.Context, s scope.Scope, id int64, archived bool) utils.Result {
	var result utils.Result

	if err := c.DispatcherRepository.SetArchived(ctx, id, s, archived); err != nil {
		if repository.IsNotFound(err) {
			errObj := httpError.NewNotFound()
			errObj.Message = fmt.Sprintf("dispatcher with id %d not found", id)
			result.Error = errObj
			return result
		}
		errObj := httpError.NewInternalServerError()
		errObj.Message = "failed to update dispatcher"
		result.Error = errObj
		c.Log.Error("dispatcher-usecase", fmt.Sprintf("error archive dispatcher %d: %v", id, err), "SetArchived", utils.ConvertString(err))
		return result
	}

	result.Data = map[string]interface{}{"id": id, "isArchived": archived}
	return result
}
