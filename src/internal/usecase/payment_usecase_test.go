package usecase

import (
	"context"
	"testing"
	"time"

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

func newPaymentUseCase(db *mysqlpkg.Database, producer *fakeProducer) *PaymentUseCase {
	return NewPaymentUseCase(
		testLog,
		validator.New(),
		repository.NewBookingRepository(db),
		repository.NewPaymentRepository(db),
		messaging.NewPaymentProducer(producer, testLog),
	)
}

func TestRecordPaymentRejectsNonPositiveAmount(t *testing.T) {
	db, mock := newMockDB(t)
	uc := newPaymentUseCase(db, &fakeProducer{})

	result := uc.Record(context.Background(), scope.Exactly(5), &model.RecordPaymentRequest{
		BookingID:     42,
		Amount:        decimal.RequireFromString("-10.00"),
		PaymentMethod: "CASH",
	})
	requireHTTPError(t, result.Error, fiber.StatusBadRequest)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordPaymentRejectsGatewayOrderOnDirectMethod(t *testing.T) {
	db, mock := newMockDB(t)
	uc := newPaymentUseCase(db, &fakeProducer{})

	result := uc.Record(context.Background(), scope.Exactly(5), &model.RecordPaymentRequest{
		BookingID:      42,
		Amount:         decimal.RequireFromString("100.00"),
		PaymentMethod:  "CASH",
		GatewayOrderID: "order_abc",
	})
	requireHTTPError(t, result.Error, fiber.StatusBadRequest)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordPaymentRejectsUnknownPayer(t *testing.T) {
	db, mock := newMockDB(t)
	uc := newPaymentUseCase(db, &fakeProducer{})

	result := uc.Record(context.Background(), scope.Exactly(5), &model.RecordPaymentRequest{
		BookingID:     42,
		Amount:        decimal.RequireFromString("100.00"),
		PaymentMethod: "CASH",
		PayerType:     "SPONSOR",
	})
	requireHTTPError(t, result.Error, fiber.StatusBadRequest)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordPaymentSettlesAndPublishes(t *testing.T) {
	db, mock := newMockDB(t)
	producer := &fakeProducer{}
	uc := newPaymentUseCase(db, producer)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT (.+) FROM ride_transactions WHERE id = \? AND tenant_id = \? FOR UPDATE`).
		WithArgs(int64(42), int64(5)).
		WillReturnRows(bookingSelectRow("REQUESTED"))
	mock.ExpectExec(`INSERT INTO payment_transactions`).
		WillReturnResult(sqlmock.NewResult(7, 1))
	mock.ExpectExec(`UPDATE ride_transactions SET paid_amount = \?, is_paid = \?`).
		WithArgs(decimal.RequireFromString("1600.00"), true, int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO ride_transaction_events`).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	result := uc.Record(context.Background(), scope.Exactly(5), &model.RecordPaymentRequest{
		BookingID:     42,
		Amount:        decimal.RequireFromString("1600.00"),
		PaymentMethod: "CASH",
	})
	require.NoError(t, result.Error)

	state, ok := result.Data.(*model.PaymentStateResponse)
	require.True(t, ok)
	assert.True(t, state.IsPaid)
	assert.True(t, state.DueAmount.IsZero())
	require.NotNil(t, state.Payment)
	assert.Equal(t, "SUCCESS", state.Payment.Status)
	assert.Equal(t, []string{"payment-settled"}, producer.topics)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestConfirmGatewayReplayReturnsConflict(t *testing.T) {
	db, mock := newMockDB(t)
	uc := newPaymentUseCase(db, &fakeProducer{})

	columns := []string{
		"id", "ride_transaction_id", "tenant_id", "amount", "payment_method", "payer_type",
		"status", "gateway_order_id", "gateway_payment_id", "gateway_signature", "notes",
		"created_at", "updated_at",
	}
	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT (.+) FROM payment_transactions WHERE gateway_order_id = \? FOR UPDATE`).
		WithArgs("order_abc").
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow(7, 42, 5, "400.00", "RAZORPAY", "CUSTOMER", "SUCCESS", "order_abc", "pay_xyz", nil, nil, time.Now(), nil))
	mock.ExpectRollback()

	result := uc.ConfirmGateway(context.Background(), &model.ConfirmGatewayPaymentRequest{
		GatewayOrderID:   "order_abc",
		GatewayPaymentID: "pay_xyz",
		Success:          true,
	})
	requireHTTPError(t, result.Error, fiber.StatusConflict)
	assert.NoError(t, mock.ExpectationsWereMet())
}
