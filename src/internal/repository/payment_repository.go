package repository

import (
	"context"
	"database/sql"
	"errors"

	"dispatch-service/src/internal/entity"
	"dispatch-service/src/internal/scope"
	"dispatch-service/src/pkg/databases/mysql"

	"github.com/jmoiron/sqlx"
)

// ErrAlreadyProcessed means a gateway confirmation arrived for a payment that
// is no longer pending; replays land here instead of double-counting.
var ErrAlreadyProcessed = errors.New("payment has already been processed")

type PaymentRepository struct {
	DB mysql.DBInterface
}

func NewPaymentRepository(db mysql.DBInterface) *PaymentRepository {
	return &PaymentRepository{DB: db}
}

const paymentColumns = `
	id, ride_transaction_id, tenant_id, amount, payment_method, payer_type,
	status, gateway_order_id, gateway_payment_id, gateway_signature, notes,
	created_at, updated_at`

// lockBooking reads the booking row FOR UPDATE inside tx so concurrent
// payments against the same booking serialize on paid_amount.
func lockBooking(ctx context.Context, tx *sqlx.Tx, bookingID int64, s scope.Scope) (*entity.RideTransaction, error) {
	query := `SELECT ` + bookingColumns + ` FROM ride_transactions WHERE id = ?`
	args := []interface{}{bookingID}
	query, args = s.Append(query, args, "tenant_id")
	query += " FOR UPDATE"

	var booking entity.RideTransaction
	if err := tx.GetContext(ctx, &booking, query, args...); err != nil {
		return nil, err
	}
	return &booking, nil
}

func insertPayment(ctx context.Context, tx *sqlx.Tx, payment *entity.PaymentTransaction) error {
	result, err := tx.ExecContext(ctx, `
		INSERT INTO payment_transactions (
			ride_transaction_id, tenant_id, amount, payment_method, payer_type,
			status, gateway_order_id, gateway_payment_id, gateway_signature, notes, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, NOW())
	`,
		payment.RideTransactionID, payment.TenantID, payment.Amount,
		payment.PaymentMethod, payment.PayerType, payment.Status,
		payment.GatewayOrderID, payment.GatewayPaymentID, payment.GatewaySignature,
		payment.Notes,
	)
	if err != nil {
		return err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	payment.ID = id
	return nil
}

func settleIntoBooking(ctx context.Context, tx *sqlx.Tx, booking *entity.RideTransaction, payment *entity.PaymentTransaction, eventDescription string) error {
	booking.PaidAmount = booking.PaidAmount.Add(payment.Amount)
	booking.IsPaid = booking.PaidAmount.GreaterThanOrEqual(booking.TotalAmount)

	if _, err := tx.ExecContext(ctx, `
		UPDATE ride_transactions
		SET paid_amount = ?, is_paid = ?, updated_at = NOW()
		WHERE id = ?
	`, booking.PaidAmount, booking.IsPaid, booking.ID); err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO ride_transaction_events (transaction_id, event, description, timestamp)
		VALUES (?, 'PAYMENT_RECEIVED', ?, NOW())
	`, booking.ID, eventDescription); err != nil {
		return err
	}
	return nil
}

// RecordSettled writes a SUCCESS payment and folds it into the booking's
// paid_amount atomically. One retry on deadlock, nothing else.
func (r *PaymentRepository) RecordSettled(ctx context.Context, bookingID int64, s scope.Scope, payment *entity.PaymentTransaction, eventDescription string) (*entity.RideTransaction, error) {
	booking, err := r.recordSettledOnce(ctx, bookingID, s, payment, eventDescription)
	if err != nil && IsDeadlock(err) {
		booking, err = r.recordSettledOnce(ctx, bookingID, s, payment, eventDescription)
	}
	return booking, err
}

func (r *PaymentRepository) recordSettledOnce(ctx context.Context, bookingID int64, s scope.Scope, payment *entity.PaymentTransaction, eventDescription string) (*entity.RideTransaction, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	booking, err := lockBooking(ctx, tx, bookingID, s)
	if err != nil {
		return nil, err
	}

	payment.RideTransactionID = booking.ID
	payment.TenantID = booking.TenantID
	payment.Status = entity.PaymentSuccess
	if err := insertPayment(ctx, tx, payment); err != nil {
		return nil, err
	}

	if err := settleIntoBooking(ctx, tx, booking, payment, eventDescription); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return booking, nil
}

// CreatePending records a gateway-initiated payment that has not settled yet.
// It never touches the booking's totals.
func (r *PaymentRepository) CreatePending(ctx context.Context, bookingID int64, s scope.Scope, payment *entity.PaymentTransaction) (*entity.RideTransaction, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	booking, err := lockBooking(ctx, tx, bookingID, s)
	if err != nil {
		return nil, err
	}

	payment.RideTransactionID = booking.ID
	payment.TenantID = booking.TenantID
	payment.Status = entity.PaymentPending
	if err := insertPayment(ctx, tx, payment); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return booking, nil
}

// ConfirmGateway flips a PENDING payment to SUCCESS or FAILED at most once.
// The conditional update on status plus the unique index on
// gateway_payment_id make replayed callbacks harmless.
func (r *PaymentRepository) ConfirmGateway(ctx context.Context, gatewayOrderID, gatewayPaymentID, gatewaySignature string, success bool) (*entity.PaymentTransaction, *entity.RideTransaction, error) {
	payment, booking, err := r.confirmGatewayOnce(ctx, gatewayOrderID, gatewayPaymentID, gatewaySignature, success)
	if err != nil && IsDeadlock(err) {
		payment, booking, err = r.confirmGatewayOnce(ctx, gatewayOrderID, gatewayPaymentID, gatewaySignature, success)
	}
	return payment, booking, err
}

func (r *PaymentRepository) confirmGatewayOnce(ctx context.Context, gatewayOrderID, gatewayPaymentID, gatewaySignature string, success bool) (*entity.PaymentTransaction, *entity.RideTransaction, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, nil, err
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, nil, err
	}
	defer tx.Rollback()

	var payment entity.PaymentTransaction
	err = tx.GetContext(ctx, &payment, `
		SELECT `+paymentColumns+`
		FROM payment_transactions
		WHERE gateway_order_id = ?
		FOR UPDATE
	`, gatewayOrderID)
	if err != nil {
		return nil, nil, err
	}

	if payment.Status != entity.PaymentPending {
		return &payment, nil, ErrAlreadyProcessed
	}

	newStatus := entity.PaymentFailed
	if success {
		newStatus = entity.PaymentSuccess
	}

	result, err := tx.ExecContext(ctx, `
		UPDATE payment_transactions
		SET status = ?, gateway_payment_id = ?, gateway_signature = ?, updated_at = NOW()
		WHERE id = ? AND status = 'PENDING'
	`, newStatus, gatewayPaymentID, gatewaySignature, payment.ID)
	if err != nil {
		return nil, nil, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return nil, nil, err
	}
	if affected == 0 {
		return &payment, nil, ErrAlreadyProcessed
	}
	payment.Status = newStatus
	payment.GatewayPaymentID = sql.NullString{String: gatewayPaymentID, Valid: true}

	var booking *entity.RideTransaction
	if success {
		booking, err = lockBooking(ctx, tx, payment.RideTransactionID, scope.All())
		if err != nil {
			return nil, nil, err
		}
		description := "Gateway payment confirmed. Payment ID: " + gatewayPaymentID
		if err := settleIntoBooking(ctx, tx, booking, &payment, description); err != nil {
			return nil, nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, nil, err
	}
	return &payment, booking, nil
}

// History lists a booking's payments, newest first.
func (r *PaymentRepository) History(ctx context.Context, bookingID int64) ([]entity.PaymentTransaction, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	var payments []entity.PaymentTransaction
	err = db.SelectContext(ctx, &payments, `
		SELECT `+paymentColumns+`
		FROM payment_transactions
		WHERE ride_transaction_id = ?
		ORDER BY created_at DESC, id DESC
	`, bookingID)
	if err != nil {
		return nil, err
	}
	return payments, nil
}
