package repository

import (
	"context"
	"database/sql"

	"dispatch-service/src/internal/entity"
	"dispatch-service/src/internal/model"
	"dispatch-service/src/internal/scope"
	"dispatch-service/src/pkg/databases/mysql"
)

type CustomerRepository struct {
	DB mysql.DBInterface
}

func NewCustomerRepository(db mysql.DBInterface) *CustomerRepository {
	return &CustomerRepository{DB: db}
}

func (r *CustomerRepository) Create(ctx context.Context, customer *entity.Customer) (int64, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return 0, err
	}

	result, err := db.ExecContext(ctx, `
		INSERT INTO customers (tenant_id, name, email, phone_number, address_line, is_archived, created_at)
		VALUES (?, ?, ?, ?, ?, 0, NOW())
	`, customer.TenantID, customer.Name, customer.Email, customer.PhoneNumber, customer.AddressLine)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

func (r *CustomerRepository) FindByID(ctx context.Context, id int64, s scope.Scope) (*entity.Customer, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	query := `
		SELECT id, tenant_id, name, email, phone_number, address_line, is_archived, created_at, updated_at
		FROM customers
		WHERE id = ?`
	args := []interface{}{id}
	query, args = s.Append(query, args, "tenant_id")

	var customer entity.Customer
	if err := db.GetContext(ctx, &customer, query, args...); err != nil {
		return nil, err
	}
	return &customer, nil
}

func (r *CustomerRepository) List(ctx context.Context, s scope.Scope, filter model.ListRequest) ([]entity.Customer, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	query := `
		SELECT id, tenant_id, name, email, phone_number, address_line, is_archived, created_at, updated_at
		FROM customers
		WHERE 1 = 1`
	args := []interface{}{}
	if !filter.IncludeArchived {
		query += " AND is_archived = 0"
	}
	if filter.Search != "" {
		query += " AND (name LIKE ? OR email LIKE ?)"
		pattern := "%" + filter.Search + "%"
		args = append(args, pattern, pattern)
	}
	query, args = s.Append(query, args, "tenant_id")
	query += " ORDER BY id DESC LIMIT ? OFFSET ?"
	args = append(args, filter.Limit, filter.Offset())

	var customers []entity.Customer
	if err := db.SelectContext(ctx, &customers, query, args...); err != nil {
		return nil, err
	}
	return customers, nil
}

func (r *CustomerRepository) Update(ctx context.Context, customer *entity.Customer) error {
	db, err := r.DB.GetDB()
	if err != nil {
		return err
	}

	result, err := db.ExecContext(ctx, `
		UPDATE customers
		SET name = ?, email = ?, phone_number = ?, address_line = ?, updated_at = NOW()
		WHERE id = ?
	`, customer.Name, customer.Email, customer.PhoneNumber, customer.AddressLine, customer.ID)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *CustomerRepository) SetArchived(ctx context.Context, id int64, s scope.Scope, archived bool) error {
	db, err := r.DB.GetDB()
	if err != nil {
		return err
	}

	query := `UPDATE customers SET is_archived = ?, updated_at = NOW() WHERE id = ?`
	args := []interface{}{archived, id}
	query, args = s.Append(query, args, "tenant_id")

	result, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// BelongsToTenant is the booking-time reference check.
func (r *CustomerRepository) BelongsToTenant(ctx context.Context, id, tenantID int64) (bool, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return false, err
	}

	var count int64
	err = db.GetContext(ctx, &count, `SELECT COUNT(*) FROM customers WHERE id = ? AND tenant_id = ?`, id, tenantID)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
