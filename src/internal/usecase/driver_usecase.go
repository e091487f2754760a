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

type DriverUseCase struct {
	Log              log.Log
	Validate         *validator.Validate
	DriverRepository *repository.DriverRepository
}

func NewDriverUseCase(logger log.Log, validate *validator.Validate, driverRepository *repository.DriverRepository) *DriverUseCase {
	return &DriverUseCase{
		Log:              logger,
		Validate:         validate,
		DriverRepository: driverRepository,
	}
}

func (c *DriverUseCase) Create(ctx context.Context, s scope.Scope, request *model.CreateDriverRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("driver-usecase", errObj.Message, "Create", utils.ConvertString(err))
		return result
	}

	tenantID, err := s.OwningTenant(request.TenantID)
	if err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = err.Error()
		result.Error = errObj
		c.Log.Error("driver-usecase", errObj.Message, "Create", "")
		return result
	}

	driver := &entity.Driver{
		TenantID:    &tenantID,
		Name:        request.Name,
		PhoneNumber: utils.NullString(request.PhoneNumber),
		LicenseNo:   utils.NullString(request.LicenseNo),
	}

	id, err := c.DriverRepository.Create(ctx, driver)
	if err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = "failed to create driver"
		result.Error = errObj
		c.Log.Error("driver-usecase", fmt.Sprintf("error insert driver: %v", err), "Create", utils.ConvertString(err))
		return result
	}
	driver.ID = id

	result.Data = converter.DriverToResponse(driver)
	return result
}

func (c *DriverUseCase) List(ctx context.Context, s scope.Scope, filter model.ListRequest) utils.Result {
	var result utils.Result
	filter.Normalize()

	drivers, err := c.DriverRepository.List(ctx, s, filter)
	if err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = "failed to list drivers"
		result.Error = errObj
		c.Log.Error("driver-usecase", fmt.Sprintf("error list drivers: %v", err), "List", utils.ConvertString(err))
		return result
	}

	result.Data = converter.DriversToResponse(drivers)
	return result
}

func (c *DriverUseCase) FindByID(ctx context.Context, s scope.Scope, id int64) utils.Result {
	var result utils.Result

	driver, err := c.DriverRepository.FindByID(ctx, id, s)
	if err != nil {
		if repository.IsNotFound(err) {
			errObj := httpError.NewNotFound()
			errObj.Message = fmt.Sprintf("driver with id %d not found", id)
			result.Error = errObj
			return result
		}
		errObj := httpError.NewInternalServerError()
		errObj.Message = "failed to load driver"
		result.Error = errObj
		c.Log.Error("driver-usecase", fmt.Sprintf("error load driver %d: %v", id, err), "FindByID", utils.ConvertString(err))
		return result
	}

	result.Data = converter.DriverToResponse(driver)
	return result
}

func (c *DriverUseCase) Update(ctx context.Context, s scope.Scope, request *model.UpdateDriverRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("driver-usecase", errObj.Message, "Update", utils.ConvertString(err))
		return result
	}

	driver, err := c.DriverRepository.FindByID(ctx, request.ID, s)
	if err != nil {
		if repository.IsNotFound(err) {
			errObj := httpError.NewNotFound()
			errObj.Message = fmt.Sprintf("driver with id %d not found", request.ID)
			result.Error = errObj
			return result
		}
		errObj := httpError.NewInternalServerError()
		errObj.Message = "failed to load driver"
		result.Error = errObj
		c.Log.Error("driver-usecase", fmt.Sprintf("error load driver %d: %v", request.ID, err), "Update", utils.ConvertString(err))
		return result
	}

	if request.Name != nil {
		driver.Name = *request.Name
	}
	if request.PhoneNumber != nil {
		driver.PhoneNumber = utils.NullString(*request.PhoneNumber)
	}
	if request.LicenseNo != nil {
		driver.LicenseNo = utils.NullString(*request.LicenseNo)
	}

	if err := c.DriverRepository.Update(ctx, driver); err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = "failed to update driver"
		result.Error = errObj
		c.Log.Error("driver-usecase", fmt.Sprintf("error update driver %d: %v", request.ID, err), "Update", utils.ConvertString(err))
		return result
	}

	result.Data = converter.DriverToResponse(driver)
	return result
}

func (c *DriverUseCase) SetArchived(ctx context.Context, s scope.Scope, id int64, archived bool) utils.Result {
	var result utils.Result

	if err := c.DriverRepository.SetArchived(ctx, id, s, archived); err != nil {
		if repository.IsNotFound(err) {
			errObj := httpError.NewNotFound()
			errObj.Message = fmt.Sprintf("driver with id %d not found", id)
			result.Error = errObj
			return result
		}
		errObj := httpError.NewInternalServerError()
		errObj.Message = "failed to update driver"
		result.Error = errObj
		c.Log.Error("driver-usecase", fmt.Sprintf("error archive driver %d: %v", id, err), "SetArchived", utils.ConvertString(err))
		return result
	}

	result.Data = map[string]interface{}{"id": id, "isArchived": archived}
	return result
}
