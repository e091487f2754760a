package job

import (
	"context"
	"encoding/json"
	"fmt"

	"dispatch-service/src/internal/entity"
	"dispatch-service/src/internal/repository"
	"dispatch-service/src/pkg/log"
)

// Handler processes background tasks. Each task keeps its status in the
// tenant_jobs table so callers can poll progress by job id.
type Handler struct {
	Log              log.Log
	TenantRepository *repository.TenantRepository
	JobRepository    *repository.JobRepository
}

func NewHandler(logger log.Log, tenantRepository *repository.TenantRepository, jobRepository *repository.JobRepository) *Handler {
	return &Handler{
		Log:              logger,
		TenantRepository: tenantRepository,
		JobRepository:    jobRepository,
	}
}

// HandleTenantReset wipes a tenant's transactional data. The wipe itself is a
// single database transaction; the surrounding status writes are best effort.
func (h *Handler) HandleTenantReset(ctx context.Context, payload []byte) error {
	var task TenantResetPayload
	if err := json.Unmarshal(payload, &task); err != nil {
		h.Log.Error("job/handler", fmt.Sprintf("malformed tenant reset payload: %v", err), "HandleTenantReset", string(payload))
		return err
	}

	if err := h.JobRepository.SetStatus(ctx, task.JobID, entity.JobRunning, ""); err != nil {
		h.Log.Error("job/handler", fmt.Sprintf("failed to mark job running: %v", err), "HandleTenantReset", task.JobID)
	}

	if err := h.TenantRepository.ResetData(ctx, task.TenantID); err != nil {
		h.Log.Error("job/handler", fmt.Sprintf("tenant reset failed: %v", err), "HandleTenantReset", task.JobID)
		if statusErr := h.JobRepository.SetStatus(ctx, task.JobID, entity.JobFailed, err.Error()); statusErr != nil {
			h.Log.Error("job/handler", fmt.Sprintf("failed to mark job failed: %v", statusErr), "HandleTenantReset", task.JobID)
		}
		return err
	}

	if err := h.JobRepository.SetStatus(ctx, task.JobID, entity.JobCompleted, "tenant data reset"); err != nil {
		h.Log.Error("job/handler", fmt.Sprintf("failed to mark job completed: %v", err), "HandleTenantReset", task.JobID)
	}

	h.Log.Info("job/handler", fmt.Sprintf("tenant %d reset completed", task.TenantID), "HandleTenantReset", task.JobID)
	return nil
}
