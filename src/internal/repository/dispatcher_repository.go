package repository

import (
	"context"
	"database/sql"

	"dispatch-service/src/internal/entity"
	"dispatch-service/src/internal/model"
	"dispatch-service/src/internal/scope"
	"dispatch-service/src/pkg/databases/mysql"
)

type DispatcherRepository struct {
	DB mysql.DBInterface
}

func NewDispatcherRepository(db mysql.DBInterface) *DispatcherRepository {
	return &DispatcherRepository{DB: db}
}

func (r *DispatcherRepository) Create(ctx context.Context, dispatcher *entity.Dispatcher) (int64, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return 0, err
	}

	result, err := db.ExecContext(ctx, `
		INSERT INTO dispatchers (tenant_id, name, email, phone_number, is_archived, created_at)
		VALUES (?, ?, ?, ?, 0, NOW())
	`, dispatcher.TenantID, dispatcher.Name, dispatcher.Email, dispatcher.PhoneNumber)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

func (r *DispatcherRepository) FindByID(ctx context.Context, id int64, s scope.Scope) (*entity.Dispatcher, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	query := `
		SELECT id, tenant_id, name, email, phone_number, is_archived, created_at, updated_at
		FROM dispatchers
		WHERE id = ?`
	args := []interface{}{id}
	query, args = s.Append(query, args, "tenant_id")

	var dispatcher entity.Dispatcher
	if err := db.GetContext(ctx, &dispatcher, query, args...); err != nil {
		return nil, err
	}
	return &dispatcher, nil
}

func (r *DispatcherRepository) List(ctx context.Context, s scope.Scope, filter model.ListRequest) ([]entity.Dispatcher, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	query := `
		SELECT id, tenant_id, name, email, phone_number, is_archived, created_at, updated_at
		FROM dispatchers
		WHERE 1 = 1`
	args := []interface{}{}
	if !filter.IncludeArchived {
		query += " AND is_archived = 0"
	}
	if filter.Search != "" {
		query += " AND name LIKE ?"
		args = append(args, "%"+filter.Search+"%")
	}
	query, args = s.Append(query, args, "tenant_id")
	query += " ORDER BY id DESC LIMIT ? OFFSET ?"
	args = append(args, filter.Limit, filter.Offset())

	var dispatchers []entity.Dispatcher
	if err := db.SelectContext(ctx, &dispatchers, query, args...); err != nil {
		return nil, err
	}
	return dispatchers, nil
}

func (r *DispatcherRepository) Update(ctx context.Context, dispatcher *entity.Dispatcher) error {
	db, err := r.DB.GetDB()
	if err != nil {
		return err
	}

	result, err := db.ExecContext(ctx, `
		UPDATE dispatchers
		SET name = ?, email = ?, phone_number = ?, updated_at = NOW()
		WHERE id = ?
	`, dispatcher.Name, dispatcher.Email, dispatcher.PhoneNumber, dispatcher.ID)
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

func (r *DispatcherRepository) SetArchived(ctx context.Context, id int64, s scope.Scope, archived bool) error {
	db, err := r.DB.GetDB()
	if err != nil {
		return err
	}

	query := `UPDATE dispatchers SET is_archived = ?, updated_at = NOW() WHERE id = ?`
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

func (r *DispatcherRepository) BelongsToTenant(ctx context.Context, id, tenantID int64) (bool, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return false, err
	}

	var count int64
	err = db.GetContext(ctx, &count, `SELECT COUNT(*) FROM dispatchers WHERE id = ? AND tenant_id = ?`, id, tenantID)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
