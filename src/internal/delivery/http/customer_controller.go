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

type CustomerController struct {
	Log     log.Log
	UseCase *usecase.CustomerUseCase
}

func NewCustomerController(useCase *usecase.CustomerUseCase, logger log.Log) *CustomerController {
	return &CustomerController{
		Log:     logger,
		UseCase: useCase,
	}
}

func (c *CustomerController) Create(ctx *fiber.Ctx) error {
	request := new(model.CreateCustomerRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("CustomerController.Create", "failed to parse request body", "error", err.Error())
		return utils.ResponseError(httpError.NewBadRequest(), ctx)
	}

	result := c.UseCase.Create(ctx.Context(), middleware.GetScope(ctx), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, "customer created", fiber.StatusCreated, ctx)
}

func (c *CustomerController) List(ctx *fiber.Ctx) error {
	filter := model.ListRequest{}
	if err := ctx.QueryParser(&filter); err != nil {
		return utils.ResponseError(httpError.NewBadRequest(), ctx)
	}

	result := c.UseCase.List(ctx.Context(), middleware.GetScope(ctx), filter)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, "customers", fiber.StatusOK, ctx)
}

func (c *CustomerController) Get(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return utils.ResponseError(httpError.NewBadRequest(), ctx)
	}

	result := c.UseCase.FindByID(ctx.Context(), middleware.GetScope(ctx), int64(id))
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, "customer", fiber.StatusOK, ctx)
}

func (c *CustomerController) Update(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return utils.ResponseError(httpError.NewBadRequest(), ctx)
	}

	request := new(model.UpdateCustomerRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("CustomerController.Update", "failed to parse request body", "error", err.Error())
		return utils.ResponseError(httpError.NewBadRequest(), ctx)
	}
	request.ID = int64(id)

	result := c.UseCase.Update(ctx.Context(), middleware.GetScope(ctx), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, "customer updated", fiber.StatusOK, ctx)
}

func (c *CustomerController) Archive(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return utils.ResponseError(httpError.NewBadRequest(), ctx)
	}

	result := c.UseCase.SetArchived(ctx.Context(), middleware.GetScope(ctx), int64(id), true)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, "customer archived", fiber.StatusOK, ctx)
}

func (c *CustomerController) Restore(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return utils.ResponseError(httpError.NewBadRequest(), ctx)
	}

	result := c.UseCase.SetArchived(ctx.Context(), middleware.GetScope(ctx), int64(id), false)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, "customer restored", fiber.StatusOK, ctx)
}
