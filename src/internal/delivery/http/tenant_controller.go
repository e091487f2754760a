package http

import (
	"dispatch-service/src/internal/model"
	"dispatch-service/src/internal/usecase"
	httpError "dispatch-service/src/pkg/http-error"
	"dispatch-service/src/pkg/log"
	"dispatch-service/src/pkg/utils"

	"github.com/gofiber/fiber/v2"
)

type TenantController struct {
	Log     log.Log
	UseCase *usecase.TenantUseCase
}

func NewTenantController(useCase *usecase.TenantUseCase, logger log.Log) *TenantController {
	return &TenantController{
		Log:     logger,
		UseCase: useCase,
	}
}

func (c *TenantController) Create(ctx *fiber.Ctx) error {
	request := new(model.CreateTenantRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("TenantController.Create", "failed to parse request body", "error", err.Error())
		return utils.ResponseError(httpError.NewBadRequest(), ctx)
	}

	result := c.UseCase.Create(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, "tenant created", fiber.StatusCreated, ctx)
}

func (c *TenantController) List(ctx *fiber.Ctx) error {
	result := c.UseCase.List(ctx.Context())
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, "tenants", fiber.StatusOK, ctx)
}

func (c *TenantController) Get(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return utils.ResponseError(httpError.NewBadRequest(), ctx)
	}

	result := c.UseCase.FindByID(ctx.Context(), int64(id))
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, "tenant", fiber.StatusOK, ctx)
}

func (c *TenantController) Update(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return utils.ResponseError(httpError.NewBadRequest(), ctx)
	}

	request := new(model.UpdateTenantRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("TenantController.Update", "failed to parse request body", "error", err.Error())
		return utils.ResponseError(httpError.NewBadRequest(), ctx)
	}
	request.ID = int64(id)

	result := c.UseCase.Update(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, "tenant updated", fiber.StatusOK, ctx)
}

func (c *TenantController) Delete(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return utils.ResponseError(httpError.NewBadRequest(), ctx)
	}

	result := c.UseCase.Delete(ctx.Context(), int64(id))
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, "tenant deleted", fiber.StatusOK, ctx)
}

// RequestReset enqueues the background wipe and answers immediately with the
// job record to poll.
func (c *TenantController) RequestReset(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return utils.ResponseError(httpError.NewBadRequest(), ctx)
	}

	result := c.UseCase.RequestReset(ctx.Context(), int64(id))
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, "tenant reset scheduled", fiber.StatusAccepted, ctx)
}

func (c *TenantController) JobStatus(ctx *fiber.Ctx) error {
	jobID := ctx.Params("jobId")
	if jobID == "" {
		return utils.ResponseError(httpError.NewBadRequest(), ctx)
	}

	result := c.UseCase.JobStatus(ctx.Context(), jobID)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, "job status", fiber.StatusOK, ctx)
}
