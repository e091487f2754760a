package repository

import (
	"testing"

	mysqlpkg "dispatch-service/src/pkg/databases/mysql"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
)

func newMockDB(t *testing.T) (*mysqlpkg.Database, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return mysqlpkg.NewFromDB(sqlx.NewDb(db, "sqlmock")), mock
}

var bookingRowColumns = []string{
	"id", "transaction_number", "friendly_code", "tenant_id",
	"customer_id", "driver_id", "dispatcher_id", "vehicle_id",
	"pickup_location", "destination_location", "return_location",
	"ride_duration_hours", "payment_method",
	"total_amount", "driver_share", "dispatcher_share", "admin_share", "super_admin_share",
	"paid_amount", "is_paid", "status", "created_at", "updated_at",
}
