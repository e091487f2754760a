package model

import "time"

// ListRequest is the shared pagination/filter input for registry listings.
// Archived entities stay out of listings unless asked for.
type ListRequest struct {
	Page            int    `query:"page"`
	Limit           int    `query:"limit"`
	Search          string `query:"search"`
	IncludeArchived bool   `query:"includeArchived"`
}

func (r *ListRequest) Normalize() {
	if r.Page < 1 {
		r.Page = 1
	}
	if r.Limit < 1 || r.Limit > 200 {
		r.Limit = 50
	}
}

func (r ListRequest) Offset() int {
	return (r.Page - 1) * r.Limit
}

type CreateCustomerRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	Email       string `json:"email" validate:"required,email,max=100"`
	PhoneNumber string `json:"phoneNumber,omitempty" validate:"max=20"`
	AddressLine string `json:"addressLine,omitempty" validate:"max=255"`
	// TenantID is only honoured when the caller operates under the
	// all-tenants scope; otherwise the scope decides.
	TenantID *int64 `json:"tenantId,omitempty"`
}

type UpdateCustomerRequest struct {
	ID          int64   `json:"-" validate:"required"`
	Name        *string `json:"name,omitempty" validate:"omitempty,max=100"`
	Email       *string `json:"email,omitempty" validate:"omitempty,email,max=100"`
	PhoneNumber *string `json:"phoneNumber,omitempty" validate:"omitempty,max=20"`
	AddressLine *string `json:"addressLine,omitempty" validate:"omitempty,max=255"`
}

type CustomerResponse struct {
	ID          int64      `json:"id"`
	TenantID    *int64     `json:"tenantId,omitempty"`
	Name        string     `json:"name"`
	Email       string     `json:"email"`
	PhoneNumber string     `json:"phoneNumber,omitempty"`
	AddressLine string     `json:"addressLine,omitempty"`
	IsArchived  bool       `json:"isArchived"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty"`
}

type CreateDriverRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	PhoneNumber string `json:"phoneNumber,omitempty" validate:"max=20"`
	LicenseNo   string `json:"licenseNo,omitempty" validate:"max=50"`
	TenantID    *int64 `json:"tenantId,omitempty"`
}

type UpdateDriverRequest struct {
	ID          int64   `json:"-" validate:"required"`
	Name        *string `json:"name,omitempty" validate:"omitempty,max=100"`
	PhoneNumber *string `json:"phoneNumber,omitempty" validate:"omitempty,max=20"`
	LicenseNo   *string `json:"licenseNo,omitempty" validate:"omitempty,max=50"`
}

type DriverResponse struct {
	ID          int64      `json:"id"`
	TenantID    *int64     `json:"tenantId,omitempty"`
	Name        string     `json:"name"`
	PhoneNumber string     `json:"phoneNumber,omitempty"`
	LicenseNo   string     `json:"licenseNo,omitempty"`
	IsArchived  bool       `json:"isArchived"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty"`
}

type CreateDispatcherRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	Email       string `json:"email,omitempty" validate:"omitempty,email,max=100"`
	PhoneNumber string `json:"phoneNumber,omitempty" validate:"max=20"`
	TenantID    *int64 `json:"tenantId,omitempty"`
}

type UpdateDispatcherRequest struct {
	ID          int64   `json:"-" validate:"required"`
	Name        *string `json:"name,omitempty" validate:"omitempty,max=100"`
	Email       *string `json:"email,omitempty" validate:"omitempty,email,max=100"`
	PhoneNumber *string `json:"phoneNumber,omitempty" validate:"omitempty,max=20"`
}

type DispatcherResponse struct {
	ID          int64      `json:"id"`
	TenantID    *int64     `json:"tenantId,omitempty"`
	Name        string     `json:"name"`
	Email       string     `json:"email,omitempty"`
	PhoneNumber string     `json:"phoneNumber,omitempty"`
	IsArchived  bool       `json:"isArchived"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty"`
}

type CreateVehicleRequest struct {
	RegistrationNumber string `json:"registrationNumber" validate:"required,max=50"`
	Nickname           string `json:"nickname,omitempty" validate:"max=100"`
	Make               string `json:"make,omitempty" validate:"max=100"`
	Model              string `json:"model,omitempty" validate:"max=100"`
	IsAutomatic        bool   `json:"isAutomatic"`
	TenantID           *int64 `json:"tenantId,omitempty"`
}

type UpdateVehicleRequest struct {
	ID          int64   `json:"-" validate:"required"`
	Nickname    *string `json:"nickname,omitempty" validate:"omitempty,max=100"`
	Make        *string `json:"make,omitempty" validate:"omitempty,max=100"`
	Model       *string `json:"model,omitempty" validate:"omitempty,max=100"`
	IsAutomatic *bool   `json:"isAutomatic,omitempty"`
}

type VehicleResponse struct {
	ID                 int64      `json:"id"`
	TenantID           *int64     `json:"tenantId,omitempty"`
	RegistrationNumber string     `json:"registrationNumber"`
	Nickname           string     `json:"nickname,omitempty"`
	Make               string     `json:"make,omitempty"`
	Model              string     `json:"model,omitempty"`
	IsAutomatic        bool       `json:"isAutomatic"`
	IsArchived         bool       `json:"isArchived"`
	CreatedAt          time.Time  `json:"createdAt"`
	UpdatedAt          *time.Time `json:"updatedAt,omitempty"`
}
