package job

import (
	"context"
	"encoding/json"

	"github.com/hibiken/asynq"
)

const TypeTenantReset = "tenant:reset"

type TenantResetPayload struct {
	JobID    string `json:"jobId"`
	TenantID int64  `json:"tenantId"`
}

func NewTenantResetTask(jobID string, tenantID int64) (*asynq.Task, error) {
	payload, err := json.Marshal(TenantResetPayload{JobID: jobID, TenantID: tenantID})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeTenantReset, payload, asynq.MaxRetry(3)), nil
}

// Enqueuer is the slice of asynq.Client the usecases need.
type Enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}
