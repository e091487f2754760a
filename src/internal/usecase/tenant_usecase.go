package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"dispatch-service/src/internal/entity"
	"dispatch-service/src/internal/job"
	"dispatch-service/src/internal/model"
	"dispatch-service/src/internal/model/converter"
	"dispatch-service/src/internal/repository"
	httpError "dispatch-service/src/pkg/http-error"
	"dispatch-service/src/pkg/log"
	"dispatch-service/src/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const tenantCacheTTL = 10 * time.Minute

// TenantUseCase is platform-operator territory; routes guard the role before
// any of these run.
type TenantUseCase struct {
	Log              log.Log
	Validate         *validator.Validate
	TenantRepository *repository.TenantRepository
	JobRepository    *repository.JobRepository
	Redis            redis.UniversalClient
	Enqueuer         job.Enqueuer
}

func NewTenantUseCase(
	logger log.Log,
	validate *validator.Validate,
	tenantRepository *repository.TenantRepository,
	jobRepository *repository.JobRepository,
	redisClient redis.UniversalClient,
	enqueuer job.Enqueuer,
) *TenantUseCase {
	return &TenantUseCase{
		Log:              logger,
		Validate:         validate,
		TenantRepository: tenantRepository,
		JobRepository:    jobRepository,
		Redis:            redisClient,
		Enqueuer:         enqueuer,
	}
}

func tenantCacheKey(id int64) string {
	return fmt.Sprintf("TENANT:%d", id)
}

func (c *TenantUseCase) Create(ctx context.Context, request *model.CreateTenantRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("tenant-usecase", errObj.Message, "Create", utils.ConvertString(err))
		return result
	}

	tenant := &entity.Tenant{
		Code:        strings.ToUpper(request.Code),
		Name:        request.Name,
		Description: utils.NullString(request.Description),
		IsActive:    true,
	}

	id, err := c.TenantRepository.Create(ctx, tenant)
	if err != nil {
		if repository.IsDuplicateEntry(err) {
			errObj := httpError.NewConflict()
			errObj.Message = fmt.Sprintf("tenant code %s already exists", tenant.Code)
			result.Error = errObj
			c.Log.Error("tenant-usecase", errObj.Message, "Create", "")
			return result
		}
		errObj := httpError.NewInternalServerError()
		errObj.Message = "failed to create tenant"
		result.Error = errObj
		c.Log.Error("tenant-usecase", fmt.Sprintf("error insert tenant: %v", err), "Create", utils.ConvertString(err))
		return result
	}
	tenant.ID = id
	tenant.CreatedAt = time.Now()

	result.Data = converter.TenantToResponse(tenant)
	return result
}

func (c *TenantUseCase) List(ctx context.Context) utils.Result {
	var result utils.Result

	tenants, err := c.TenantRepository.ListWithCounts(ctx)
	if err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = "failed to list tenants"
		result.Error = errObj
		c.Log.Error("tenant-usecase", fmt.Sprintf("error list tenants: %v", err), "List", utils.ConvertString(err))
		return result
	}

	responses := make([]model.TenantResponse, 0, len(tenants))
	for i := range tenants {
		responses = append(responses, *converter.TenantWithCountsToResponse(&tenants[i]))
	}
	result.Data = responses
	return result
}

// FindByID serves from the redis cache when it can; write paths invalidate.
func (c *TenantUseCase) FindByID(ctx context.Context, id int64) utils.Result {
	var result utils.Result

	if cached, err := c.Redis.Get(ctx, tenantCacheKey(id)).Bytes(); err == nil {
		var response model.TenantResponse
		if err := json.Unmarshal(cached, &response); err == nil {
			result.Data = &response
			return result
		}
	}

	tenant, err := c.TenantRepository.FindByID(ctx, id)
	if err != nil {
		if repository.IsNotFound(err) {
			errObj := httpError.NewNotFound()
			errObj.Message = fmt.Sprintf("tenant with id %d not found", id)
			result.Error = errObj
			return result
		}
		errObj := httpError.NewInternalServerError()
		errObj.Message = "failed to load tenant"
		result.Error = errObj
		c.Log.Error("tenant-usecase", fmt.Sprintf("error load tenant %d: %v", id, err), "FindByID", utils.ConvertString(err))
		return result
	}

	response := converter.TenantToResponse(tenant)
	if marshaled, err := json.Marshal(response); err == nil {
		if err := c.Redis.Set(ctx, tenantCacheKey(id), marshaled, tenantCacheTTL).Err(); err != nil {
			c.Log.Warn("tenant-usecase", fmt.Sprintf("failed to cache tenant %d: %v", id, err), "FindByID", "")
		}
	}

	result.Data = response
	return result
}

func (c *TenantUseCase) Update(ctx context.Context, request *model.UpdateTenantRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("tenant-usecase", errObj.Message, "Update", utils.ConvertString(err))
		return result
	}

	tenant, err := c.TenantRepository.FindByID(ctx, request.ID)
	if err != nil {
		if repository.IsNotFound(err) {
			errObj := httpError.NewNotFound()
			errObj.Message = fmt.Sprintf("tenant with id %d not found", request.ID)
			result.Error = errObj
			return result
		}
		errObj := httpError.NewInternalServerError()
		errObj.Message = "failed to load tenant"
		result.Error = errObj
		c.Log.Error("tenant-usecase", fmt.Sprintf("error load tenant %d: %v", request.ID, err), "Update", utils.ConvertString(err))
		return result
	}

	if request.Name != nil {
		tenant.Name = *request.Name
	}
	if request.Description != nil {
		tenant.Description = utils.NullString(*request.Description)
	}
	if request.IsActive != nil {
		tenant.IsActive = *request.IsActive
	}

	if err := c.TenantRepository.Update(ctx, tenant); err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = "failed to update tenant"
		result.Error = errObj
		c.Log.Error("tenant-usecase", fmt.Sprintf("error update tenant %d: %v", request.ID, err), "Update", utils.ConvertString(err))
		return result
	}
	c.invalidate(ctx, tenant.ID)

	result.Data = converter.TenantToResponse(tenant)
	return result
}

// Delete removes an empty tenant. A tenant that still owns customers must be
// reset first.
func (c *TenantUseCase) Delete(ctx context.Context, id int64) utils.Result {
	var result utils.Result

	count, err := c.TenantRepository.CountCustomers(ctx, id)
	if err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = "failed to check tenant data"
		result.Error = errObj
		c.Log.Error("tenant-usecase", fmt.Sprintf("error count customers for tenant %d: %v", id, err), "Delete", utils.ConvertString(err))
		return result
	}
	if count > 0 {
		errObj := httpError.NewConflict()
		errObj.Message = fmt.Sprintf("tenant %d still owns %d customer(s), reset its data first", id, count)
		result.Error = errObj
		c.Log.Error("tenant-usecase", errObj.Message, "Delete", "")
		return result
	}

	if err := c.TenantRepository.Delete(ctx, id); err != nil {
		if repository.IsNotFound(err) {
			errObj := httpError.NewNotFound()
			errObj.Message = fmt.Sprintf("tenant with id %d not found", id)
			result.Error = errObj
			return result
		}
		errObj := httpError.NewInternalServerError()
		errObj.Message = "failed to delete tenant"
		result.Error = errObj
		c.Log.Error("tenant-usecase", fmt.Sprintf("error delete tenant %d: %v", id, err), "Delete", utils.ConvertString(err))
		return result
	}
	c.invalidate(ctx, id)

	result.Data = map[string]int64{"id": id}
	return result
}

// RequestReset enqueues the background wipe and returns the job record the
// caller can poll.
func (c *TenantUseCase) RequestReset(ctx context.Context, tenantID int64) utils.Result {
	var result utils.Result

	if _, err := c.TenantRepository.FindByID(ctx, tenantID); err != nil {
		if repository.IsNotFound(err) {
			errObj := httpError.NewNotFound()
			errObj.Message = fmt.Sprintf("tenant with id %d not found", tenantID)
			result.Error = errObj
			return result
		}
		errObj := httpError.NewInternalServerError()
		errObj.Message = "failed to load tenant"
		result.Error = errObj
		c.Log.Error("tenant-usecase", fmt.Sprintf("error load tenant %d: %v", tenantID, err), "RequestReset", utils.ConvertString(err))
		return result
	}

	record := &entity.TenantJob{
		JobID:    uuid.NewString(),
		TenantID: tenantID,
		Kind:     entity.JobKindTenantReset,
		Status:   entity.JobPending,
	}
	if err := c.JobRepository.Create(ctx, record); err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = "failed to create job record"
		result.Error = errObj
		c.Log.Error("tenant-usecase", fmt.Sprintf("error insert job record: %v", err), "RequestReset", utils.ConvertString(err))
		return result
	}

	task, err := job.NewTenantResetTask(record.JobID, tenantID)
	if err == nil {
		_, err = c.Enqueuer.EnqueueContext(ctx, task)
	}
	if err != nil {
		c.Log.Error("tenant-usecase", fmt.Sprintf("error enqueue tenant reset: %v", err), "RequestReset", record.JobID)
		if statusErr := c.JobRepository.SetStatus(ctx, record.JobID, entity.JobFailed, "enqueue failed"); statusErr != nil {
			c.Log.Error("tenant-usecase", fmt.Sprintf("error mark job failed: %v", statusErr), "RequestReset", record.JobID)
		}
		errObj := httpError.NewInternalServerError()
		errObj.Message = "failed to enqueue tenant reset"
		result.Error = errObj
		return result
	}
	c.invalidate(ctx, tenantID)

	record.CreatedAt = time.Now()
	result.Data = converter.TenantJobToResponse(record)
	return result
}

func (c *TenantUseCase) JobStatus(ctx context.Context, jobID string) utils.Result {
	var result utils.Result

	record, err := c.JobRepository.FindByID(ctx, jobID)
	if err != nil {
		if repository.IsNotFound(err) {
			errObj := httpError.NewNotFound()
			errObj.Message = fmt.Sprintf("job %s not found", jobID)
			result.Error = errObj
			return result
		}
		errObj := httpError.NewInternalServerError()
		errObj.Message = "failed to load job"
		result.Error = errObj
		c.Log.Error("tenant-usecase", fmt.Sprintf("error load job %s: %v", jobID, err), "JobStatus", utils.ConvertString(err))
		return result
	}

	result.Data = converter.TenantJobToResponse(record)
	return result
}

func (c *TenantUseCase) invalidate(ctx context.Context, id int64) {
	if err := c.Redis.Del(ctx, tenantCacheKey(id)).Err(); err != nil {
		c.Log.Warn("tenant-usecase", fmt.Sprintf("failed to invalidate tenant %d cache: %v", id, err), "invalidate", "")
	}
}
