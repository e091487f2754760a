package repository

import (
	"context"
	"testing"
	"time"

	"dispatch-service/src/internal/entity"
	"dispatch-service/src/internal/scope"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bookingRow(id int64, total, paid string, isPaid bool) *sqlmock.Rows {
	return sqlmock.NewRows(bookingRowColumns).AddRow(
		id, "TXN-00001", "ACME-1A2B3C", 5,
		1, 2, 3, 4,
		"Airport", "Downtown", nil,
		4, "CASH",
		total, "1200.00", "32.00", "320.00", "48.00",
		paid, isPaid, "REQUESTED", time.Now(), nil,
	)
}

func TestRecordSettledIncrementsPaidAmount(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPaymentRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT (.+) FROM ride_transactions WHERE id = \? AND tenant_id = \? FOR UPDATE`).
		WithArgs(int64(10), int64(5)).
		WillReturnRows(bookingRow(10, "1600.00", "600.00", false))
	mock.ExpectExec(`INSERT INTO payment_transactions`).
		WillReturnResult(sqlmock.NewResult(77, 1))
	mock.ExpectExec(`UPDATE ride_transactions SET paid_amount = \?, is_paid = \?, updated_at = NOW\(\) WHERE id = \?`).
		WithArgs(decimal.RequireFromString("1200.00"), false, int64(10)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO ride_transaction_events`).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	payment := &entity.PaymentTransaction{
		Amount:        decimal.RequireFromString("600.00"),
		PaymentMethod: entity.MethodCash,
		PayerType:     entity.PayerCustomer,
	}
	booking, err := repo.RecordSettled(context.Background(), 10, scope.Exactly(5), payment, "Payment of 600.00 received via CASH")
	require.NoError(t, err)

	assert.Equal(t, int64(77), payment.ID)
	assert.Equal(t, entity.PaymentSuccess, payment.Status)
	assert.True(t, booking.PaidAmount.Equal(decimal.RequireFromString("1200.00")))
	assert.False(t, booking.IsPaid)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordSettledReachesFullyPaid(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPaymentRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT (.+) FROM ride_transactions WHERE id = \? AND tenant_id = \? FOR UPDATE`).
		WithArgs(int64(10), int64(5)).
		WillReturnRows(bookingRow(10, "1600.00", "1200.00", false))
	mock.ExpectExec(`INSERT INTO payment_transactions`).
		WillReturnResult(sqlmock.NewResult(78, 1))
	mock.ExpectExec(`UPDATE ride_transactions SET paid_amount = \?, is_paid = \?`).
		WithArgs(decimal.RequireFromString("1600.00"), true, int64(10)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO ride_transaction_events`).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	payment := &entity.PaymentTransaction{
		Amount:        decimal.RequireFromString("400.00"),
		PaymentMethod: entity.MethodCash,
		PayerType:     entity.PayerCustomer,
	}
	booking, err := repo.RecordSettled(context.Background(), 10, scope.Exactly(5), payment, "final payment")
	require.NoError(t, err)
	assert.True(t, booking.IsPaid)
	assert.True(t, booking.PaidAmount.Equal(booking.TotalAmount))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordSettledBookingOutsideScope(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPaymentRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT (.+) FROM ride_transactions WHERE id = \? AND tenant_id = \? FOR UPDATE`).
		WithArgs(int64(10), int64(6)).
		WillReturnRows(sqlmock.NewRows(bookingRowColumns))
	mock.ExpectRollback()

	payment := &entity.PaymentTransaction{
		Amount:        decimal.RequireFromString("100.00"),
		PaymentMethod: entity.MethodCash,
		PayerType:     entity.PayerCustomer,
	}
	_, err := repo.RecordSettled(context.Background(), 10, scope.Exactly(6), payment, "x")
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func pendingPaymentRow(id int64, status string) *sqlmock.Rows {
	columns := []string{
		"id", "ride_transaction_id", "tenant_id", "amount", "payment_method", "payer_type",
		"status", "gateway_order_id", "gateway_payment_id", "gateway_signature", "notes",
		"created_at", "updated_at",
	}
	return sqlmock.NewRows(columns).AddRow(
		id, 10, 5, "400.00", "RAZORPAY", "CUSTOMER",
		status, "order_abc", nil, nil, nil,
		time.Now(), nil,
	)
}

func TestConfirmGatewaySuccessSettles(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPaymentRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT (.+) FROM payment_transactions WHERE gateway_order_id = \? FOR UPDATE`).
		WithArgs("order_abc").
		WillReturnRows(pendingPaymentRow(77, "PENDING"))
	mock.ExpectExec(`UPDATE payment_transactions SET status = \?, gateway_payment_id = \?`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`SELECT (.+) FROM ride_transactions WHERE id = \? FOR UPDATE`).
		WithArgs(int64(10)).
		WillReturnRows(bookingRow(10, "1600.00", "1200.00", false))
	mock.ExpectExec(`UPDATE ride_transactions SET paid_amount = \?, is_paid = \?`).
		WithArgs(decimal.RequireFromString("1600.00"), true, int64(10)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO ride_transaction_events`).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	payment, booking, err := repo.ConfirmGateway(context.Background(), "order_abc", "pay_xyz", "sig", true)
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentSuccess, payment.Status)
	require.NotNil(t, booking)
	assert.True(t, booking.IsPaid)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestConfirmGatewayFailureLeavesBookingUntouched(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPaymentRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT (.+) FROM payment_transactions WHERE gateway_order_id = \? FOR UPDATE`).
		WithArgs("order_abc").
		WillReturnRows(pendingPaymentRow(77, "PENDING"))
	mock.ExpectExec(`UPDATE payment_transactions SET status = \?, gateway_payment_id = \?`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	payment, booking, err := repo.ConfirmGateway(context.Background(), "order_abc", "pay_xyz", "sig", false)
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentFailed, payment.Status)
	assert.Nil(t, booking)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestConfirmGatewayReplayIsRejected(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPaymentRepository(db)

	// The payment already settled; a duplicate webhook delivery must not
	// increment paid_amount a second time.
	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT (.+) FROM payment_transactions WHERE gateway_order_id = \? FOR UPDATE`).
		WithArgs("order_abc").
		WillReturnRows(pendingPaymentRow(77, "SUCCESS"))
	mock.ExpectRollback()

	_, _, err := repo.ConfirmGateway(context.Background(), "order_abc", "pay_xyz", "sig", true)
	assert.ErrorIs(t, err, ErrAlreadyProcessed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHistoryNewestFirst(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPaymentRepository(db)

	columns := []string{
		"id", "ride_transaction_id", "tenant_id", "amount", "payment_method", "payer_type",
		"status", "gateway_order_id", "gateway_payment_id", "gateway_signature", "notes",
		"created_at", "updated_at",
	}
	mock.ExpectQuery(`SELECT (.+) FROM payment_transactions WHERE ride_transaction_id = \? ORDER BY created_at DESC, id DESC`).
		WithArgs(int64(10)).
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow(3, 10, 5, "400.00", "CASH", "CUSTOMER", "SUCCESS", nil, nil, nil, nil, time.Now(), nil).
			AddRow(2, 10, 5, "600.00", "CASH", "CUSTOMER", "SUCCESS", nil, nil, nil, nil, time.Now(), nil))

	payments, err := repo.History(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, payments, 2)
	assert.Equal(t, int64(3), payments[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
