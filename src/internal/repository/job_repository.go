package repository

import (
	"context"
	"database/sql"

	"dispatch-service/src/internal/entity"
	"dispatch-service/src/pkg/databases/mysql"
)

type JobRepository struct {
	DB mysql.DBInterface
}

func NewJobRepository(db mysql.DBInterface) *JobRepository {
	return &JobRepository{DB: db}
}

func (r *JobRepository) Create(ctx context.Context, job *entity.TenantJob) error {
	db, err := r.DB.GetDB()
	if err != nil {
		return err
	}

	_, err = db.ExecContext(ctx, `
		INSERT INTO tenant_jobs (job_id, tenant_id, kind, status, detail, created_at)
		VALUES (?, ?, ?, ?, ?, NOW())
	`, job.JobID, job.TenantID, job.Kind, job.Status, job.Detail)
	return err
}

func (r *JobRepository) FindByID(ctx context.Context, jobID string) (*entity.TenantJob, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	var job entity.TenantJob
	err = db.GetContext(ctx, &job, `
		SELECT job_id, tenant_id, kind, status, detail, created_at, finished_at
		FROM tenant_jobs
		WHERE job_id = ?
	`, jobID)
	if err != nil {
		return nil, err
	}
	return &job, nil
}

func (r *JobRepository) SetStatus(ctx context.Context, jobID string, status entity.JobStatus, detail string) error {
	db, err := r.DB.GetDB()
	if err != nil {
		return err
	}

	query := `UPDATE tenant_jobs SET status = ?, detail = ? WHERE job_id = ?`
	if status == entity.JobCompleted || status == entity.JobFailed {
		query = `UPDATE tenant_jobs SET status = ?, detail = ?, finished_at = NOW() WHERE job_id = ?`
	}

	result, err := db.ExecContext(ctx, query, status, detail, jobID)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
