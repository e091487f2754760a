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

type BookingController struct {
	Log     log.Log
	UseCase *usecase.BookingUseCase
}

func NewBookingController(useCase *usecase.BookingUseCase, logger log.Log) *BookingController {
	return &BookingController{
		Log:     logger,
		UseCase: useCase,
	}
}

func (c *BookingController) Create(ctx *fiber.Ctx) error {
	request := new(model.CreateBookingRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("BookingController.Create", "failed to parse request body", "error", err.Error())
		return utils.ResponseError(httpError.NewBadRequest(), ctx)
	}

	result := c.UseCase.Create(ctx.Context(), middleware.GetScope(ctx), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, "booking created", fiber.StatusCreated, ctx)
}

func (c *BookingController) List(ctx *fiber.Ctx) error {
	filter := model.ListRequest{}
	if err := ctx.QueryParser(&filter); err != nil {
		return utils.ResponseError(httpError.NewBadRequest(), ctx)
	}

	result := c.UseCase.List(ctx.Context(), middleware.GetScope(ctx), filter)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, "bookings", fiber.StatusOK, ctx)
}

func (c *BookingController) Get(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return utils.ResponseError(httpError.NewBadRequest(), ctx)
	}

	result := c.UseCase.FindByID(ctx.Context(), middleware.GetScope(ctx), int64(id))
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, "booking", fiber.StatusOK, ctx)
}

func (c *BookingController) Transition(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return utils.ResponseError(httpError.NewBadRequest(), ctx)
	}

	request := new(model.TransitionBookingRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("BookingController.Transition", "failed to parse request body", "error", err.Error())
		return utils.ResponseError(httpError.NewBadRequest(), ctx)
	}
	request.BookingID = int64(id)

	result := c.UseCase.Transition(ctx.Context(), middleware.GetScope(ctx), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, "booking status updated", fiber.StatusOK, ctx)
}
