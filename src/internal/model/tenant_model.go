package model

import "time"

type CreateTenantRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	Code        string `json:"code" validate:"required,max=20,alphanum"`
	Description string `json:"description,omitempty" validate:"max=255"`
}

type UpdateTenantRequest struct {
	ID          int64   `json:"-" validate:"required"`
	Name        *string `json:"name,omitempty" validate:"omitempty,max=100"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=255"`
	IsActive    *bool   `json:"isActive,omitempty"`
}

type TenantResponse struct {
	ID          int64      `json:"id"`
	Code        string     `json:"code"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	IsActive    bool       `json:"isActive"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty"`

	CustomerCount    *int64 `json:"customerCount,omitempty"`
	DriverCount      *int64 `json:"driverCount,omitempty"`
	DispatcherCount  *int64 `json:"dispatcherCount,omitempty"`
	TransactionCount *int64 `json:"transactionCount,omitempty"`
}

type TenantJobResponse struct {
	JobID      string     `json:"jobId"`
	TenantID   int64      `json:"tenantId"`
	Kind       string     `json:"kind"`
	Status     string     `json:"status"`
	Detail     string     `json:"detail,omitempty"`
	CreatedAt  time.Time  `json:"createdAt"`
	FinishedAt *time.Time `json:"finishedAt,omitempty"`
}
