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

type DriverController struct {
	Log     log.Log
	UseCase *usecase.DriverUseCase
}

func NewDriverController(useCase *usecase.DriverUseCase, logger log.Log) *DriverController {
	return &DriverController{
		Log:     logger,
		UseCase: useCase,
	}
}

func (c *DriverController) Create(ctx *fiber.Ctx) error {
	request := new(model.CreateDriverRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("DriverController.Create", "failed to parse request body", "error", err.Error())
		return utils.ResponseError(httpError.NewBadRequest(), ctx)
	}

	result := c.UseCase.Create(ctx.Context(), middleware.GetScope(ctx), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, "driver created", fiber.StatusCreated, ctx)
}

func (c *DriverController) List(ctx *fiber.Ctx) error {
	filter := model.ListRequest{}
	if err := ctx.QueryParser(&filter); err != nil {
		return utils.ResponseError(httpError.NewBadRequest(), ctx)
	}

	result := c.UseCase.List(ctx.Context(), middleware.GetScope(ctx), filter)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, "drivers", fiber.StatusOK, ctx)
}

func (c *DriverController) Get(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return utils.ResponseError(httpError.NewBadRequest(), ctx)
	}

	result := c.UseCase.FindByID(ctx.Context(), middleware.GetScope(ctx), int64(id))
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, "driver", fiber.StatusOK, ctx)
}

func (c *DriverController) Update(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return utils.ResponseError(httpError.NewBadRequest(), ctx)
	}

	request := new(model.UpdateDriverRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("DriverController.Update", "failed to parse request body", "error", err.Error())
		return utils.ResponseError(httpError.NewBadRequest(), ctx)
	}
	request.ID = int64(id)

	result := c.UseCase.Update(ctx.Context(), middleware.GetScope(ctx), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, "driver updated", fiber.StatusOK, ctx)
}

func (c *DriverController) Archive(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return utils.ResponseError(httpError.NewBadRequest(), ctx)
	}

	result := c.UseCase.SetArchived(ctx.Context(), middleware.GetScope(ctx), int64(id), true)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, "driver archived", fiber.StatusOK, ctx)
}

func (c *DriverController) Restore(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return utils.ResponseError(httpError.NewBadRequest(), ctx)
	}

	result := c.UseCase.SetArchived(ctx.Context(), middleware.GetScope(ctx), int64(id), false)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, "driver restored", fiber.StatusOK, ctx)
}
