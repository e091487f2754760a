package entity

import (
	"database/sql"
	"time"
)

// The four tenant-scoped reference entities a booking points at. TenantID is
// nullable in the schema only as a migration transition; every party that
// appears on a booking carries one.

type Customer struct {
	ID          int64          `db:"id"`
	TenantID    *int64         `db:"tenant_id"`
	Name        string         `db:"name"`
	Email       string         `db:"email"`
	PhoneNumber sql.NullString `db:"phone_number"`
	AddressLine sql.NullString `db:"address_line"`
	IsArchived  bool           `db:"is_archived"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   *time.Time     `db:"updated_at"`
}

type Driver struct {
	ID          int64          `db:"id"`
	TenantID    *int64         `db:"tenant_id"`
	Name        string         `db:"name"`
	PhoneNumber sql.NullString `db:"phone_number"`
	LicenseNo   sql.NullString `db:"license_no"`
	IsArchived  bool           `db:"is_archived"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   *time.Time     `db:"updated_at"`
}

type Dispatcher struct {
	ID          int64          `db:"id"`
	TenantID    *int64         `db:"tenant_id"`
	Name        string         `db:"name"`
	Email       sql.NullString `db:"email"`
	PhoneNumber sql.NullString `db:"phone_number"`
	IsArchived  bool           `db:"is_archived"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   *time.Time     `db:"updated_at"`
}

type Vehicle struct {
	ID                 int64          `db:"id"`
	TenantID           *int64         `db:"tenant_id"`
	RegistrationNumber string         `db:"registration_number"`
	Nickname           sql.NullString `db:"nickname"`
	Make               sql.NullString `db:"make"`
	Model              sql.NullString `db:"model"`
	IsAutomatic        bool           `db:"is_automatic"`
	IsArchived         bool           `db:"is_archived"`
	CreatedAt          time.Time      `db:"created_at"`
	UpdatedAt          *time.Time     `db:"updated_at"`
}
