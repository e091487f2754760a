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

type DispatcherController struct {
	Log     log.Log
	UseCase *usecase.DispatcherUseCase
}

func NewDispatcherController(useCase *usecase.DispatcherUseCase, logger log.Log) *DispatcherController {
	return &DispatcherController{
		Log:     logger,
		UseCase: useCase,
	}
}

func (c *DispatcherController) Create(ctx *fiber.Ctx) error {
	request := new(model.CreateDispatcherRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("DispatcherController.Create", "failed to parse request body", "error", err.Error())
		return utils.ResponseError(httpError.NewBadRequest(), ctx)
	}

	result := c.UseCase.Create(ctx.Context(), middleware.GetScope(ctx), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, "dispatcher created", fiber.StatusCreated, ctx)
}

func (c *DispatcherController) List(ctx *fiber.Ctx) error {
	filter := model.ListRequest{}
	if err := ctx.QueryParser(&filter); err != nil {
		return utils.ResponseError(httpError.NewBadRequest(), ctx)
	}

	result := c.UseCase.List(ctx.Context(), middleware.GetScope(ctx), filter)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, "dispatchers", fiber.StatusOK, ctx)
}

func (c *DispatcherController) Get(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return utils.ResponseError(httpError.NewBadRequest(), ctx)
	}

	result := c.UseCase.FindByID(ctx.Context(), middleware.GetScope(ctx), int64(id))
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, "dispatcher", fiber.StatusOK, ctx)
}

func (c *DispatcherController) Update(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return utils.ResponseError(httpError.NewBadRequest(), ctx)
	}

	request := new(model.UpdateDispatcherRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("DispatcherController.Update", "failed to parse request body", "error", err.Error())
		return utils.ResponseError(httpError.NewBadRequest(), ctx)
	}
	request.ID = int64(id)

	result := c.UseCase.Update(ctx.Context(), middleware.GetScope(ctx), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, "dispatcher updated", fiber.StatusOK, ctx)
}

func (c *DispatcherController) Archive(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return utils.ResponseError(httpError.NewBadRequest(), ctx)
	}

	result := c.UseCase.SetArchived(ctx.Context(), middleware.GetScope(ctx), int64(id), true)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, "dispatcher archived", fiber.StatusOK, ctx)
}

func (c *DispatcherController) Restore(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return utils.ResponseError(httpError.NewBadRequest(), ctx)
	}

	result := c.UseCase.SetArchived(ctx.Context(), middleware.GetScope(ctx), int64(id), false)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, "dispatcher restored", fiber.StatusOK, ctx)
}
