package repository

import (
	"context"
	"fmt"

	"dispatch-service/src/internal/entity"
	"dispatch-service/src/internal/model"
	"dispatch-service/src/internal/scope"
	"dispatch-service/src/pkg/databases/mysql"
)

type BookingRepository struct {
	DB mysql.DBInterface
}

func NewBookingRepository(db mysql.DBInterface) *BookingRepository {
	return &BookingRepository{DB: db}
}

const bookingColumns = `
	id, transaction_number, friendly_code, tenant_id,
	customer_id, driver_id, dispatcher_id, vehicle_id,
	pickup_location, destination_location, return_location,
	ride_duration_hours, payment_method,
	total_amount, driver_share, dispatcher_share, admin_share, super_admin_share,
	paid_amount, is_paid, status, created_at, updated_at`

// CreateWithEvents persists the booking and its initial event rows in one
// transaction. The transaction number is derived from the auto-increment id
// inside the same transaction, which keeps it monotonic and unique.
func (r *BookingRepository) CreateWithEvents(ctx context.Context, booking *entity.RideTransaction, events []entity.RideTransactionEvent) error {
	db, err := r.DB.GetDB()
	if err != nil {
		return err
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx, `
		INSERT INTO ride_transactions (
			transaction_number, friendly_code, tenant_id,
			customer_id, driver_id, dispatcher_id, vehicle_id,
			pickup_location, destination_location, return_location,
			ride_duration_hours, payment_method,
			total_amount, driver_share, dispatcher_share, admin_share, super_admin_share,
			paid_amount, is_paid, status, created_at
		) VALUES ('', ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, 0, ?, NOW())
	`,
		booking.FriendlyCode, booking.TenantID,
		booking.CustomerID, booking.DriverID, booking.DispatcherID, booking.VehicleID,
		booking.PickupLocation, booking.DestinationLocation, booking.ReturnLocation,
		booking.RideDurationHours, booking.PaymentMethod,
		booking.TotalAmount, booking.DriverShare, booking.DispatcherShare,
		booking.AdminShare, booking.SuperAdminShare,
		booking.PaidAmount, booking.Status,
	)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	booking.ID = id
	booking.TransactionNumber = fmt.Sprintf("TXN-%05d", id)

	if _, err := tx.ExecContext(ctx,
		`UPDATE ride_transactions SET transaction_number = ? WHERE id = ?`,
		booking.TransactionNumber, id,
	); err != nil {
		return err
	}

	for i := range events {
		events[i].TransactionID = id
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO ride_transaction_events (transaction_id, event, description, timestamp)
			VALUES (?, ?, ?, NOW())
		`, id, events[i].Event, events[i].Description); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (r *BookingRepository) FindByID(ctx context.Context, id int64, s scope.Scope) (*entity.RideTransaction, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	query := `SELECT ` + bookingColumns + ` FROM ride_transactions WHERE id = ?`
	args := []interface{}{id}
	query, args = s.Append(query, args, "tenant_id")

	var booking entity.RideTransaction
	if err := db.GetContext(ctx, &booking, query, args...); err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *BookingRepository) List(ctx context.Context, s scope.Scope, filter model.ListRequest) ([]entity.RideTransaction, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	query := `SELECT ` + bookingColumns + ` FROM ride_transactions WHERE 1 = 1`
	args := []interface{}{}
	if filter.Search != "" {
		query += " AND (transaction_number LIKE ? OR friendly_code LIKE ?)"
		pattern := "%" + filter.Search + "%"
		args = append(args, pattern, pattern)
	}
	query, args = s.Append(query, args, "tenant_id")
	query += " ORDER BY created_at DESC, id DESC LIMIT ? OFFSET ?"
	args = append(args, filter.Limit, filter.Offset())

	var bookings []entity.RideTransaction
	if err := db.SelectContext(ctx, &bookings, query, args...); err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *BookingRepository) FindEvents(ctx context.Context, bookingID int64) ([]entity.RideTransactionEvent, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	var events []entity.RideTransactionEvent
	err = db.SelectContext(ctx, &events, `
		SELECT id, transaction_id, event, description, timestamp
		FROM ride_transaction_events
		WHERE transaction_id = ?
		ORDER BY id
	`, bookingID)
	if err != nil {
		return nil, err
	}
	return events, nil
}

// TransitionStatus updates the status only if the row still holds the
// expected current status, and appends the event row in the same
// transaction. Returns false when a concurrent writer got there first.
func (r *BookingRepository) TransitionStatus(ctx context.Context, bookingID int64, from, to entity.TransactionStatus, eventDescription string) (bool, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return false, err
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return false, err
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx, `
		UPDATE ride_transactions
		SET status = ?, updated_at = NOW()
		WHERE id = ? AND status = ?
	`, to, bookingID, from)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	if affected == 0 {
		return false, nil
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO ride_transaction_events (transaction_id, event, description, timestamp)
		VALUES (?, ?, ?, NOW())
	`, bookingID, string(to), eventDescription); err != nil {
		return false, err
	}

	if err := tx.Commit(); err != nil {
		return false, err
	}
	return true, nil
}
