package repository

import (
	"context"
	"testing"

	"dispatch-service/src/internal/entity"
	"dispatch-service/src/internal/scope"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateWithEventsAssignsTransactionNumber(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBookingRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO ride_transactions`).
		WillReturnResult(sqlmock.NewResult(42, 1))
	mock.ExpectExec(`UPDATE ride_transactions SET transaction_number = \? WHERE id = \?`).
		WithArgs("TXN-00042", int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO ride_transaction_events`).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(`INSERT INTO ride_transaction_events`).
		WillReturnResult(sqlmock.NewResult(2, 1))
	mock.ExpectCommit()

	booking := &entity.RideTransaction{
		FriendlyCode:      "ACME-1A2B3C",
		TenantID:          5,
		CustomerID:        1,
		DriverID:          2,
		DispatcherID:      3,
		VehicleID:         4,
		PickupLocation:    "Airport",
		RideDurationHours: 4,
		PaymentMethod:     entity.MethodCash,
		TotalAmount:       decimal.RequireFromString("1600.00"),
		DriverShare:       decimal.RequireFromString("1200.00"),
		DispatcherShare:   decimal.RequireFromString("32.00"),
		AdminShare:        decimal.RequireFromString("320.00"),
		SuperAdminShare:   decimal.RequireFromString("48.00"),
		PaidAmount:        decimal.Zero,
		Status:            entity.StatusRequested,
	}
	events := []entity.RideTransactionEvent{
		{Event: "REQUESTED", Description: "Booking created"},
		{Event: "COMMISSION_SPLIT", Description: "Shares computed"},
	}

	err := repo.CreateWithEvents(context.Background(), booking, events)
	require.NoError(t, err)
	assert.Equal(t, int64(42), booking.ID)
	assert.Equal(t, "TXN-00042", booking.TransactionNumber)
	assert.Equal(t, int64(42), events[0].TransactionID)
	assert.Equal(t, int64(42), events[1].TransactionID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateWithEventsRollsBackOnEventFailure(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBookingRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO ride_transactions`).
		WillReturnResult(sqlmock.NewResult(42, 1))
	mock.ExpectExec(`UPDATE ride_transactions SET transaction_number = \?`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO ride_transaction_events`).
		WillReturnError(assert.AnError)
	mock.ExpectRollback()

	booking := &entity.RideTransaction{
		TenantID:      5,
		PaymentMethod: entity.MethodCash,
		TotalAmount:   decimal.RequireFromString("400.00"),
		Status:        entity.StatusRequested,
	}
	err := repo.CreateWithEvents(context.Background(), booking, []entity.RideTransactionEvent{
		{Event: "REQUESTED", Description: "Booking created"},
	})
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransitionStatusAppliesWhenCurrentMatches(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBookingRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE ride_transactions SET status = \?, updated_at = NOW\(\) WHERE id = \? AND status = \?`).
		WithArgs(entity.StatusDriverAccepted, int64(42), entity.StatusRequested).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO ride_transaction_events`).
		WithArgs(int64(42), string(entity.StatusDriverAccepted), "Driver accepted the ride").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	ok, err := repo.TransitionStatus(context.Background(), 42, entity.StatusRequested, entity.StatusDriverAccepted, "Driver accepted the ride")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransitionStatusLosesRaceWithoutEvent(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBookingRepository(db)

	// Another writer already moved the booking on, so the conditional update
	// matches zero rows and no event row is written.
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE ride_transactions SET status = \?, updated_at = NOW\(\) WHERE id = \? AND status = \?`).
		WithArgs(entity.StatusDriverAccepted, int64(42), entity.StatusRequested).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	ok, err := repo.TransitionStatus(context.Background(), 42, entity.StatusRequested, entity.StatusDriverAccepted, "Driver accepted the ride")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingFindByIDOutsideScopeIsNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBookingRepository(db)

	mock.ExpectQuery(`SELECT (.+) FROM ride_transactions WHERE id = \? AND tenant_id = \?`).
		WithArgs(int64(42), int64(6)).
		WillReturnRows(sqlmock.NewRows(bookingRowColumns))

	_, err := repo.FindByID(context.Background(), 42, scope.Exactly(6))
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}
