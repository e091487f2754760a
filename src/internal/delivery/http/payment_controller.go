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

type PaymentController struct {
	Log     log.Log
	UseCase *usecase.PaymentUseCase
}

func NewPaymentController(useCase *usecase.PaymentUseCase, logger log.Log) *PaymentController {
	return &PaymentController{
		Log:     logger,
		UseCase: useCase,
	}
}

func (c *PaymentController) Record(ctx *fiber.Ctx) error {
	request := new(model.RecordPaymentRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("PaymentController.Record", "failed to parse request body", "error", err.Error())
		return utils.ResponseError(httpError.NewBadRequest(), ctx)
	}

	result := c.UseCase.Record(ctx.Context(), middleware.GetScope(ctx), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, "payment recorded", fiber.StatusCreated, ctx)
}

// ConfirmGateway is the gateway callback endpoint. It carries no bearer
// token; the gateway signature inside the payload is the credential.
func (c *PaymentController) ConfirmGateway(ctx *fiber.Ctx) error {
	request := new(model.ConfirmGatewayPaymentRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("PaymentController.ConfirmGateway", "failed to parse request body", "error", err.Error())
		return utils.ResponseError(httpError.NewBadRequest(), ctx)
	}

	result := c.UseCase.ConfirmGateway(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, "payment confirmed", fiber.StatusOK, ctx)
}

func (c *PaymentController) History(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return utils.ResponseError(httpError.NewBadRequest(), ctx)
	}

	result := c.UseCase.History(ctx.Context(), middleware.GetScope(ctx), int64(id))
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, "payments", fiber.StatusOK, ctx)
}
