package usecase

import (
	"context"
	"strings"
	"testing"
	"time"

	"dispatch-service/src/internal/commission"
	"dispatch-service/src/internal/gateway/messaging"
	"dispatch-service/src/internal/model"
	"dispatch-service/src/internal/repository"
	"dispatch-service/src/internal/scope"
	mysqlpkg "dispatch-service/src/pkg/databases/mysql"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeProducer captures publishes instead of talking to a broker.
type fakeProducer struct {
	topics []string
}

func (f *fakeProducer) Publish(topic string, key []byte, value []byte) error {
	f.topics = append(f.topics, topic)
	return nil
}

func (f *fakeProducer) Close() error { return nil }

func testRates() commission.Rates {
	return commission.Rates{
		DriverPercent:     75,
		AdminPercent:      20,
		SuperAdminPercent: 3,
		DispatcherPercent: 2,
		HourlyRate:        decimal.NewFromInt(400),
	}
}

func newBookingUseCase(db *mysqlpkg.Database, producer *fakeProducer) *BookingUseCase {
	return NewBookingUseCase(
		testLog,
		validator.New(),
		testRates(),
		repository.NewTenantRepository(db),
		repository.NewCustomerRepository(db),
		repository.NewDriverRepository(db),
		repository.NewDispatcherRepository(db),
		repository.NewVehicleRepository(db),
		repository.NewBookingRepository(db),
		messaging.NewBookingProducer(producer, testLog),
	)
}

func validCreateRequest() *model.CreateBookingRequest {
	return &model.CreateBookingRequest{
		DispatcherID:        3,
		CustomerID:          1,
		DriverID:            2,
		VehicleID:           4,
		PickupLocation:      "Airport",
		DestinationLocation: "Downtown",
		RideDurationHours:   4,
		PaymentMethod:       "CASH",
	}
}

var tenantColumns = []string{"id", "code", "name", "description", "is_active", "created_at", "updated_at"}

func expectActiveTenant(mock sqlmock.Sqlmock, id int64, code string) {
	mock.ExpectQuery(`SELECT (.+) FROM tenants WHERE id = \?`).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows(tenantColumns).
			AddRow(id, code, "Acme Rides", nil, true, time.Now(), nil))
}

func TestCreateBookingRejectsUnknownPaymentMethod(t *testing.T) {
	db, mock := newMockDB(t)
	uc := newBookingUseCase(db, &fakeProducer{})

	request := validCreateRequest()
	request.PaymentMethod = "BARTER"

	result := uc.Create(context.Background(), scope.Exactly(5), request)
	requireHTTPError(t, result.Error, fiber.StatusBadRequest)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateBookingUnderAllScopeNeedsTargetTenant(t *testing.T) {
	db, mock := newMockDB(t)
	uc := newBookingUseCase(db, &fakeProducer{})

	result := uc.Create(context.Background(), scope.All(), validCreateRequest())
	requireHTTPError(t, result.Error, fiber.StatusBadRequest)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateBookingRejectsCrossTenantCustomer(t *testing.T) {
	db, mock := newMockDB(t)
	uc := newBookingUseCase(db, &fakeProducer{})

	expectActiveTenant(mock, 5, "ACME")
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM customers WHERE id = \? AND tenant_id = \?`).
		WithArgs(int64(1), int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	result := uc.Create(context.Background(), scope.Exactly(5), validCreateRequest())
	requireHTTPError(t, result.Error, fiber.StatusNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateBookingRejectsInactiveTenant(t *testing.T) {
	db, mock := newMockDB(t)
	uc := newBookingUseCase(db, &fakeProducer{})

	mock.ExpectQuery(`SELECT (.+) FROM tenants WHERE id = \?`).
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows(tenantColumns).
			AddRow(5, "ACME", "Acme Rides", nil, false, time.Now(), nil))

	result := uc.Create(context.Background(), scope.Exactly(5), validCreateRequest())
	requireHTTPError(t, result.Error, fiber.StatusConflict)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateBookingPersistsSplitAndPublishes(t *testing.T) {
	db, mock := newMockDB(t)
	producer := &fakeProducer{}
	uc := newBookingUseCase(db, producer)

	expectActiveTenant(mock, 5, "ACME")
	for _, table := range []string{"customers", "drivers", "dispatchers", "vehicles"} {
		mock.ExpectQuery(`SELECT COUNT\(\*\) FROM ` + table + ` WHERE id = \? AND tenant_id = \?`).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	}
	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO ride_transactions`).
		WillReturnResult(sqlmock.NewResult(42, 1))
	mock.ExpectExec(`UPDATE ride_transactions SET transaction_number = \?`).
		WithArgs("TXN-00042", int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO ride_transaction_events`).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(`INSERT INTO ride_transaction_events`).
		WillReturnResult(sqlmock.NewResult(2, 1))
	mock.ExpectCommit()

	result := uc.Create(context.Background(), scope.Exactly(5), validCreateRequest())
	require.NoError(t, result.Error)

	response, ok := result.Data.(*model.BookingResponse)
	require.True(t, ok)
	assert.Equal(t, "TXN-00042", response.TransactionNumber)
	assert.True(t, strings.HasPrefix(response.FriendlyCode, "ACME-"))
	assert.True(t, response.TotalAmount.Equal(decimal.RequireFromString("1600.00")))
	assert.True(t, response.DriverShare.Equal(decimal.RequireFromString("1200.00")))
	assert.True(t, response.AdminShare.Equal(decimal.RequireFromString("320.00")))
	assert.True(t, response.SuperAdminShare.Equal(decimal.RequireFromString("48.00")))
	assert.True(t, response.DispatcherShare.Equal(decimal.RequireFromString("32.00")))
	assert.Equal(t, []string{"booking-created"}, producer.topics)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func bookingSelectRow(status string) *sqlmock.Rows {
	columns := []string{
		"id", "transaction_number", "friendly_code", "tenant_id",
		"customer_id", "driver_id", "dispatcher_id", "vehicle_id",
		"pickup_location", "destination_location", "return_location",
		"ride_duration_hours", "payment_method",
		"total_amount", "driver_share", "dispatcher_share", "admin_share", "super_admin_share",
		"paid_amount", "is_paid", "status", "created_at", "updated_at",
	}
	return sqlmock.NewRows(columns).AddRow(
		42, "TXN-00042", "ACME-1A2B3C", 5,
		1, 2, 3, 4,
		"Airport", "Downtown", nil,
		4, "CASH",
		"1600.00", "1200.00", "32.00", "320.00", "48.00",
		"0.00", false, status, time.Now(), nil,
	)
}

func TestTransitionRejectsSkippingStates(t *testing.T) {
	db, mock := newMockDB(t)
	uc := newBookingUseCase(db, &fakeProducer{})

	mock.ExpectQuery(`SELECT (.+) FROM ride_transactions WHERE id = \? AND tenant_id = \?`).
		WithArgs(int64(42), int64(5)).
		WillReturnRows(bookingSelectRow("REQUESTED"))

	result := uc.Transition(context.Background(), scope.Exactly(5), &model.TransitionBookingRequest{
		BookingID: 42,
		Status:    "CUSTOMER_PICKED",
	})
	requireHTTPError(t, result.Error, fiber.StatusUnprocessableEntity)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransitionFromTerminalStateRejected(t *testing.T) {
	db, mock := newMockDB(t)
	uc := newBookingUseCase(db, &fakeProducer{})

	mock.ExpectQuery(`SELECT (.+) FROM ride_transactions WHERE id = \? AND tenant_id = \?`).
		WithArgs(int64(42), int64(5)).
		WillReturnRows(bookingSelectRow("COMPLETED"))

	result := uc.Transition(context.Background(), scope.Exactly(5), &model.TransitionBookingRequest{
		BookingID: 42,
		Status:    "CANCELLED",
	})
	requireHTTPError(t, result.Error, fiber.StatusUnprocessableEntity)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransitionLosingRaceReturnsConflict(t *testing.T) {
	db, mock := newMockDB(t)
	uc := newBookingUseCase(db, &fakeProducer{})

	mock.ExpectQuery(`SELECT (.+) FROM ride_transactions WHERE id = \? AND tenant_id = \?`).
		WithArgs(int64(42), int64(5)).
		WillReturnRows(bookingSelectRow("REQUESTED"))
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE ride_transactions SET status = \?`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	result := uc.Transition(context.Background(), scope.Exactly(5), &model.TransitionBookingRequest{
		BookingID: 42,
		Status:    "DRIVER_ACCEPTED",
	})
	requireHTTPError(t, result.Error, fiber.StatusConflict)
	assert.NoError(t, mock.ExpectationsWereMet())
}
