package repository

import (
	"context"
	"database/sql"

	"dispatch-service/src/internal/entity"
	"dispatch-service/src/pkg/databases/mysql"
)

type TenantRepository struct {
	DB mysql.DBInterface
}

func NewTenantRepository(db mysql.DBInterface) *TenantRepository {
	return &TenantRepository{DB: db}
}

func (r *TenantRepository) Create(ctx context.Context, tenant *entity.Tenant) (int64, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return 0, err
	}

	result, err := db.ExecContext(ctx, `
		INSERT INTO tenants (code, name, description, is_active, created_at)
		VALUES (?, ?, ?, ?, NOW())
	`, tenant.Code, tenant.Name, tenant.Description, tenant.IsActive)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

func (r *TenantRepository) FindByID(ctx context.Context, id int64) (*entity.Tenant, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	var tenant entity.Tenant
	err = db.GetContext(ctx, &tenant, `
		SELECT id, code, name, description, is_active, created_at, updated_at
		FROM tenants
		WHERE id = ?
	`, id)
	if err != nil {
		return nil, err
	}
	return &tenant, nil
}

func (r *TenantRepository) FindByCode(ctx context.Context, code string) (*entity.Tenant, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	var tenant entity.Tenant
	err = db.GetContext(ctx, &tenant, `
		SELECT id, code, name, description, is_active, created_at, updated_at
		FROM tenants
		WHERE code = ?
	`, code)
	if err != nil {
		return nil, err
	}
	return &tenant, nil
}

// ListWithCounts backs the platform-operator tenant listing.
func (r *TenantRepository) ListWithCounts(ctx context.Context) ([]entity.TenantWithCounts, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	var tenants []entity.TenantWithCounts
	err = db.SelectContext(ctx, &tenants, `
		SELECT
			t.id, t.code, t.name, t.description, t.is_active, t.created_at, t.updated_at,
			(SELECT COUNT(*) FROM customers c WHERE c.tenant_id = t.id) AS customer_count,
			(SELECT COUNT(*) FROM drivers d WHERE d.tenant_id = t.id) AS driver_count,
			(SELECT COUNT(*) FROM dispatchers dp WHERE dp.tenant_id = t.id) AS dispatcher_count,
			(SELECT COUNT(*) FROM ride_transactions rt WHERE rt.tenant_id = t.id) AS transaction_count
		FROM tenants t
		ORDER BY t.id
	`)
	if err != nil {
		return nil, err
	}
	return tenants, nil
}

func (r *TenantRepository) Update(ctx context.Context, tenant *entity.Tenant) error {
	db, err := r.DB.GetDB()
	if err != nil {
		return err
	}

	result, err := db.ExecContext(ctx, `
		UPDATE tenants
		SET name = ?, description = ?, is_active = ?, updated_at = NOW()
		WHERE id = ?
	`, tenant.Name, tenant.Description, tenant.IsActive, tenant.ID)
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

// CountCustomers supports the delete guard: a tenant that still owns
// customers cannot be removed.
func (r *TenantRepository) CountCustomers(ctx context.Context, tenantID int64) (int64, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return 0, err
	}

	var count int64
	err = db.GetContext(ctx, &count, `SELECT COUNT(*) FROM customers WHERE tenant_id = ?`, tenantID)
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (r *TenantRepository) Delete(ctx context.Context, id int64) error {
	db, err := r.DB.GetDB()
	if err != nil {
		return err
	}

	result, err := db.ExecContext(ctx, `DELETE FROM tenants WHERE id = ?`, id)
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

// ResetData wipes a tenant's transactional data in dependency order inside
// one transaction. Used by the background reset job, never by request paths.
func (r *TenantRepository) ResetData(ctx context.Context, tenantID int64) error {
	db, err := r.DB.GetDB()
	if err != nil {
		return err
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	statements := []string{
		`DELETE FROM payment_transactions WHERE tenant_id = ?`,
		`DELETE e FROM ride_transaction_events e
			JOIN ride_transactions rt ON rt.id = e.transaction_id
			WHERE rt.tenant_id = ?`,
		`DELETE FROM ride_transactions WHERE tenant_id = ?`,
		`DELETE FROM vehicles WHERE tenant_id = ?`,
		`DELETE FROM customers WHERE tenant_id = ?`,
		`DELETE FROM drivers WHERE tenant_id = ?`,
		`DELETE FROM dispatchers WHERE tenant_id = ?`,
	}
	for _, statement := range statements {
		if _, err := tx.ExecContext(ctx, statement, tenantID); err != nil {
			return err
		}
	}

	return tx.Commit()
}
