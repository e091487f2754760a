package usecase

import (
	"context"
	"fmt"
	"strings"

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

type VehicleUseCase struct {
	Log               log.Log
	Validate          *validator.Validate
	VehicleRepository *repository.VehicleRepository
}

func NewVehicleUseCase(logger log.Log, validate *validator.Validate, vehicleRepository *repository.VehicleRepository) *VehicleUseCase {
	return &VehicleUseCase{
		Log:               logger,
		Validate:          validate,
		VehicleRepository: vehicleRepository,
	}
}

func (c *VehicleUseCase) Create(ctx context.Context, s scope.Scope, request *model.CreateVehicleRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("vehicle-usecase", errObj.Message, "Create", utils.ConvertString(err))
		return result
	}

	tenantID, err := s.OwningTenant(request.TenantID)
	if err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = err.Error()
		result.Error = errObj
		c.Log.Error("vehicle-usecase", errObj.Message, "Create", "")
		return result
	}

	vehicle := &entity.Vehicle{
		TenantID:           &tenantID,
		RegistrationNumber: strings.ToUpper(request.RegistrationNumber),
		Nickname:           utils.NullString(request.Nickname),
		Make:               utils.NullString(request.Make),
		Model:              utils.NullString(request.Model),
		IsAutomatic:        request.IsAutomatic,
	}

	id, err := c.VehicleRepository.Create(ctx, vehicle)
	if err != nil {
		if repository.IsDuplicateEntry(err) {
			errObj := httpError.NewConflict()
			errObj.Message = fmt.Sprintf("vehicle %s is already registered", vehicle.RegistrationNumber)
			result.Error = errObj
			c.Log.Error("vehicle-usecase", errObj.Message, "Create", "")
			return result
		}
		errObj := httpError.NewInternalServerError()
		errObj.Message = "failed to create vehicle"
		result.Error = errObj
		c.Log.Error("vehicle-usecase", fmt.Sprintf("error insert vehicle: %v", err), "Create", utils.ConvertString(err))
		return result
	}
	vehicle.ID = id

	result.Data = converter.VehicleToResponse(vehicle)
	return result
}

func (c *VehicleUseCase) List(ctx context.Context, s scope.Scope, filter model.ListRequest) utils.Result {
	var result utils.Result
	filter.Normalize()

	vehicles, err := c.VehicleRepository.List(ctx, s, filter)
	if err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = "failed to list vehicles"
		result.Error = errObj
		c.Log.Error("vehicle-usecase", fmt.Sprintf("error list vehicles: %v", err), "List", utils.ConvertString(err))
		return result
	}

	result.Data = converter.VehiclesToResponse(vehicles)
	return result
}

func (c *VehicleUseCase) FindByID(ctx context.Context, s scope.Scope, id int64) utils.Result {
	var result utils.Result

	vehicle, err := c.VehicleRepository.FindByID(ctx, id, s)
	if err != nil {
		if repository.IsNotFound(err) {
			errObj := httpError.NewNotFound()
			errObj.Message = fmt.Sprintf("vehicle with id %d not found", id)
			result.Error = errObj
			return result
		}
		errObj := httpError.NewInternalServerError()
		errObj.Message = "failed to load vehicle"
		result.Error = errObj
		c.Log.Error("vehicle-usecase", fmt.Sprintf("error load vehicle %d: %v", id, err), "FindByID", utils.ConvertString(err))
		return result
	}

	result.Data = converter.VehicleToResponse(vehicle)
	return result
}

func (c *VehicleUseCase) Update(ctx context.Context, s scope.Scope, request *model.UpdateVehicleRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("vehicle-usecase", errObj.Message, "Update", utils.ConvertString(err))
		return result
	}

	vehicle, err := c.VehicleRepository.FindByID(ctx, request.ID, s)
	if err != nil {
		if repository.IsNotFound(err) {
			errObj := httpError.NewNotFound()
			errObj.Message = fmt.Sprintf("vehicle with id %d not found", request.ID)
			result.Error = errObj
			return result
		}
		errObj := httpError.NewInternalServerError()
		errObj.Message = "failed to load vehicle"
		result.Error = errObj
		c.Log.Error("vehicle-usecase", fmt.Sprintf("error load vehicle %d: %v", request.ID, err), "Update", utils.ConvertString(err))
		return result
	}

	if request.Nickname != nil {
		vehicle.Nickname = utils.NullString(*request.Nickname)
	}
	if request.Make != nil {
		vehicle.Make = utils.NullString(*request.Make)
	}
	if request.Model != nil {
		vehicle.Model = utils.NullString(*request.Model)
	}
	if request.IsAutomatic != nil {
		vehicle.IsAutomatic = *request.IsAutomatic
	}

	if err := c.VehicleRepository.Update(ctx, vehicle); err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = "failed to update vehicle"
		result.Error = errObj
		c.Log.Error("vehicle-usecase", fmt.Sprintf("error update vehicle %d: %v", request.ID, err), "Update", utils.ConvertString(err))
		return result
	}

	result.Data = converter.VehicleToResponse(vehicle)
	return result
}

func (c *VehicleUseCase) SetArchived(ctx context.Context, s scope.Scope, id int64, archived bool) utils.Result {
	var result utils.Result

	if err := c.VehicleRepository.SetArchived(ctx, id, s, archived); err != nil {
		if repository.IsNotFound(err) {
			errObj := httpError.NewNotFound()
			errObj.Message = fmt.Sprintf("vehicle with id %d not found", id)
			result.Error = errObj
			return result
		}
		errObj := httpError.NewInternalServerError()
		errObj.Message = "failed to update vehicle"
		result.Error = errObj
		c.Log.Error("vehicle-usecase", fmt.Sprintf("error archive vehicle %d: %v", id, err), "SetArchived", utils.ConvertString(err))
		return result
	}

	result.Data = map[string]interface{}{"id": id, "isArchived": archived}
	return result
}
