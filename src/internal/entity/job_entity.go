package entity

import (
	"database/sql"
	"time"
)

type JobStatus string

const (
	JobPending   JobStatus = "PENDING"
	JobRunning   JobStatus = "RUNNING"
	JobCompleted JobStatus = "COMPLETED"
	JobFailed    JobStatus = "FAILED"
)

const JobKindTenantReset = "TENANT_RESET"

// TenantJob is the status record for a background job, keyed by job id rather
// than held in process-wide state.
type TenantJob struct {
	JobID      string         `db:"job_id"`
	TenantID   int64          `db:"tenant_id"`
	Kind       string         `db:"kind"`
	Status     JobStatus      `db:"status"`
	Detail     sql.NullString `db:"detail"`
	CreatedAt  time.Time      `db:"created_at"`
	FinishedAt *time.Time     `db:"finished_at"`
}
