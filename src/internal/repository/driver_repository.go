package repository

import (
	"context"
	"database/sql"

	"dispatch-service/src/internal/entity"
	"dispatch-service/src/internal/model"
	"dispatch-service/src/internal/scope"
	"dispatch-service/src/pkg/databases/mysql"
)

type DriverRepository struct {
	DB mysql.DBInterface
}

func NewDriverRepository(db mysql.DBInterface) *DriverRepository {
	return &DriverRepository{DB: db}
}

func (r *DriverRepository) Create(ctx context.Context, driver *entity.Driver) (int64, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return 0, err
	}

	result, err := db.ExecContext(ctx, `
		INSERT INTO drivers (tenant_id, name, phone_number, license_no, is_archived, created_at)
		VALUES (?, ?, ?, ?, 0, NOW())
	`, driver.TenantID, driver.Name, driver.PhoneNumber, driver.LicenseNo)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

func (r *DriverRepository) FindByID(ctx context.Context, id int64, s scope.Scope) (*entity.Driver, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	query := `
		SELECT id, tenant_id, name, phone_number, license_no, is_archived, created_at, updated_at
		FROM drivers
		WHERE id = ?`
	args := []interface{}{id}
	query, args = s.Append(query, args, "tenant_id")

	var driver entity.Driver
	if err := db.GetContext(ctx, &driver, query, args...); err != nil {
		return nil, err
	}
	return &driver, nil
}

func (r *DriverRepository) List(ctx context.Context, s scope.Scope, filter model.ListRequest) ([]entity.Driver, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	query := `
		SELECT id, tenant_id, name, phone_number, license_no, is_archived, created_at, updated_at
		FROM drivers
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

	var drivers []entity.Driver
	if err := db.SelectContext(ctx, &drivers, query, args...); err != nil {
		return nil, err
	}
	return drivers, nil
}

func (r *DriverRepository) Update(ctx context.Context, driver *entity.Driver) error {
	db, err := r.DB.GetDB()
	if err != nil {
		return err
	}

	result, err := db.ExecContext(ctx, `
		UPDATE drivers
		SET name = ?, phone_number = ?, license_no = ?, updated_at = NOW()
		WHERE id = ?
	`, driver.Name, driver.PhoneNumber, driver.LicenseNo, driver.ID)
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

func (r *DriverRepository) SetArchived(ctx context.Context, id int64, s scope.Scope, archived bool) error {
	db, err := r.DB.GetDB()
	if err != nil {
		return err
	}

	query := `UPDATE drivers SET is_archived = ?, updated_at = NOW() WHERE id = ?`
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

func (r *DriverRepository) BelongsToTenant(ctx context.Context, id, tenantID int64) (bool, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return false, err
	}

	var count int64
	err = db.GetContext(ctx, &count, `SELECT COUNT(*) FROM drivers WHERE id = ? AND tenant_id = ?`, id, tenantID)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
