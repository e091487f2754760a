package entity

import (
	"database/sql"
	"time"
)

type Tenant struct {
	ID          int64          `db:"id"`
	Code        string         `db:"code"`
	Name        string         `db:"name"`
	Description sql.NullString `db:"description"`
	IsActive    bool           `db:"is_active"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   *time.Time     `db:"updated_at"`
}

// TenantWithCounts backs the platform-operator listing, which shows how much
// data each tenant owns.
type TenantWithCounts struct {
	Tenant
	CustomerCount    int64 `db:"customer_count"`
	DriverCount      int64 `db:"driver_count"`
	DispatcherCount  int64 `db:"dispatcher_count"`
	TransactionCount int64 `db:"transaction_count"`
}
