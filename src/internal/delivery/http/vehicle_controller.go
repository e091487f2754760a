package http

import (
	"dispatch-service/src/internal/delivery/http/middleware"
	"dispatch-service/src/internal/model"
	"dispatch-service/src/internal/usecase"
	httpError "dispatch-service/src/pkg/http-error"
	"dispatch-service/src/pkg/log"
	"dispatch-service/src/pkg/utils"

	"github.com/gofiber/fiber/v2"
)

type VehicleController struct {
	Log     log.Log
	UseCase *usecase.VehicleUseCase
}

func NewVehicleController(useCase *usecase.VehicleUseCase, logger log.Log) *VehicleController {
	return &VehicleController{
		Log:     logger,
		UseCase: useCase,
	}
}

func (c *VehicleController) Create(ctx *fiber.Ctx) error {
	request := new(model.CreateVehicleRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("VehicleController.Create", "failed to parse request body", "error", err.Error())
		return utils.ResponseError(httpError.NewBadRequest(), ctx)
	}

	result := c.UseCase.Create(ctx.Context(), middleware.GetScope(ctx), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, "vehicle created", fiber.StatusCreated, ctx)
}

func (c *VehicleController) List(ctx *fiber.Ctx) error {
	filter := model.ListRequest{}
	if err := ctx.QueryParser(&filter); err != nil {
		return utils.ResponseError(httpError.NewBadRequest(), ctx)
	}

	result := c.UseCase.List(ctx.Context(), middleware.GetScope(ctx), filter)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, "vehicles", fiber.StatusOK, ctx)
}

func (c *VehicleController) Get(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return utils.ResponseError(httpError.NewBadRequest(), ctx)
	}

	result := c.UseCase.FindByID(ctx.Context(), middleware.GetScope(ctx), int64(id))
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, "vehicle", fiber.StatusOK, ctx)
}

func (c *VehicleController) Update(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return utils.ResponseError(httpError.NewBadRequest(), ctx)
	}

	request := new(model.UpdateVehicleRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("VehicleController.Update", "failed to parse request body", "error", err.Error())
		return utils.ResponseError(httpError.NewBadRequest(), ctx)
	}
	request.ID = int64(id)

	result := c.UseCase.Update(ctx.Context(), middleware.GetScope(ctx), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, "vehicle updated", fiber.StatusOK, ctx)
}

func (c *VehicleController) Archive(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return utils.ResponseError(httpError.NewBadRequest(), ctx)
	}

	result := c.UseCase.SetArchived(ctx.Context(), middleware.GetScope(ctx), int64(id), true)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, "vehicle archived", fiber.StatusOK, ctx)
}

func (c *VehicleController) Restore(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return utils.ResponseError(httpError.NewBadRequest(), ctx)
	}

	result := c.UseCase.SetArchived(ctx.Context(), middleware.GetScope(ctx), int64(id), false)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, "vehicle restored", fiber.StatusOK, ctx)
}
