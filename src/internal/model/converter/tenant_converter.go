package converter

import (
	"dispatch-service/src/internal/entity"
	"dispatch-service/src/internal/model"
)

func TenantToResponse(tenant *entity.Tenant) *model.TenantResponse {
	return &model.TenantResponse{
		ID:          tenant.ID,
		Code:        tenant.Code,
		Name:        tenant.Name,
		Description: tenant.Description.String,
		IsActive:    tenant.IsActive,
		CreatedAt:   tenant.CreatedAt,
		UpdatedAt:   tenant.UpdatedAt,
	}
}

func TenantWithCountsToResponse(tenant *entity.TenantWithCounts) *model.TenantResponse {
	response := TenantToResponse(&tenant.Tenant)
	response.CustomerCount = &tenant.CustomerCount
	response.DriverCount = &tenant.DriverCount
	response.DispatcherCount = &tenant.DispatcherCount
	response.TransactionCount = &tenant.TransactionCount
	return response
}

func TenantJobToResponse(job *entity.TenantJob) *model.TenantJobResponse {
	return &model.TenantJobResponse{
		JobID:      job.JobID,
		TenantID:   job.TenantID,
		Kind:       job.Kind,
		Status:     string(job.Status),
		Detail:     job.Detail.String,
		CreatedAt:  job.CreatedAt,
		FinishedAt: job.FinishedAt,
	}
}
