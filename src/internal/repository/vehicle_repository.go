package repository

import (
	"context"
	"database/sql"

	"dispatch-service/src/internal/entity"
	"dispatch-service/src/internal/model"
	"dispatch-service/src/internal/scope"
	"dispatch-service/src/pkg/databases/mysql"
)

type VehicleRepository struct {
	DB mysql.DBInterface
}

func NewVehicleRepository(db mysql.DBInterface) *VehicleRepository {
	return &VehicleRepository{DB: db}
}

func (r *VehicleRepository) Create(ctx context.Context, vehicle *entity.Vehicle) (int64, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return 0, err
	}

	result, err := db.ExecContext(ctx, `
		INSERT INTO vehicles (tenant_id, registration_number, nickname, make, model, is_automatic, is_archived, created_at)
		VALUES (?, ?, ?, ?, ?, ?, 0, NOW())
	`, vehicle.TenantID, vehicle.RegistrationNumber, vehicle.Nickname, vehicle.Make, vehicle.Model, vehicle.IsAutomatic)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

func (r *VehicleRepository) FindByID(ctx context.Context, id int64, s scope.Scope) (*entity.Vehicle, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	query := `
		SELECT id, tenant_id, registration_number, nickname, make, model, is_automatic, is_archived, created_at, updated_at
		FROM vehicles
		WHERE id = ?`
	args := []interface{}{id}
	query, args = s.Append(query, args, "tenant_id")

	var vehicle entity.Vehicle
	if err := db.GetContext(ctx, &vehicle, query, args...); err != nil {
		return nil, err
	}
	return &vehicle, nil
}

func (r *VehicleRepository) List(ctx context.Context, s scope.Scope, filter model.ListRequest) ([]entity.Vehicle, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	query := `
		SELECT id, tenant_id, registration_number, nickname, make, model, is_automatic, is_archived, created_at, updated_at
		FROM vehicles
		WHERE 1 = 1`
	args := []interface{}{}
	if !filter.IncludeArchived {
		query += " AND is_archived = 0"
	}
	if filter.Search != "" {
		query += " AND (registration_number LIKE ? OR nickname LIKE ?)"
		pattern := "%" + filter.Search + "%"
		args = append(args, pattern, pattern)
	}
	query, args = s.Append(query, args, "tenant_id")
	query += " ORDER BY id DESC LIMIT ? OFFSET ?"
	args = append(args, filter.Limit, filter.Offset())

	var vehicles []entity.Vehicle
	if err := db.SelectContext(ctx, &vehicles, query, args...); err != nil {
		return nil, err
	}
	return vehicles, nil
}

func (r *VehicleRepository) Update(ctx context.Context, vehicle *entity.Vehicle) error {
	db, err := r.DB.GetDB()
	if err != nil {
		return err
	}

	result, err := db.ExecContext(ctx, `
		UPDATE vehicles
		SET nickname = ?, make = ?, model = ?, is_automatic = ?, updated_at = NOW()
		WHERE id = ?
	`, vehicle.Nickname, vehicle.Make, vehicle.Model, vehicle.IsAutomatic, vehicle.ID)
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

func (r *VehicleRepository) SetArchived(ctx context.Context, id int64, s scope.Scope, archived bool) error {
	db, err := r.DB.GetDB()
	if err != nil {
		return err
	}

	query := `UPDATE vehicles SET is_archived = ?, updated_at = NOW() WHERE id = ?`
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

func (r *VehicleRepository) BelongsToTenant(ctx context.Context, id, tenantID int64) (bool, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return false, err
	}

	var count int64
	err = db.GetContext(ctx, &count, `SELECT COUNT(*) FROM vehicles WHERE id = ? AND tenant_id = ?`, id, tenantID)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
