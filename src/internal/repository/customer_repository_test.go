package repository

import (
	"context"
	"testing"
	"time"

	"dispatch-service/src/internal/model"
	"dispatch-service/src/internal/scope"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var customerColumns = []string{
	"id", "tenant_id", "name", "email", "phone_number", "address_line",
	"is_archived", "created_at", "updated_at",
}

func TestCustomerListScopedToTenant(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCustomerRepository(db)

	mock.ExpectQuery(`SELECT (.+) FROM customers WHERE 1 = 1 AND is_archived = 0 AND tenant_id = \? ORDER BY id DESC LIMIT \? OFFSET \?`).
		WithArgs(int64(5), 50, 0).
		WillReturnRows(sqlmock.NewRows(customerColumns).
			AddRow(1, 5, "Asha", "asha@example.com", nil, nil, false, time.Now(), nil))

	filter := model.ListRequest{}
	filter.Normalize()
	customers, err := repo.List(context.Background(), scope.Exactly(5), filter)
	require.NoError(t, err)
	require.Len(t, customers, 1)
	require.NotNil(t, customers[0].TenantID)
	assert.Equal(t, int64(5), *customers[0].TenantID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCustomerListAllScopeHasNoTenantFilter(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCustomerRepository(db)

	// The query must not mention tenant_id at all under the All scope.
	mock.ExpectQuery(`SELECT (.+) FROM customers WHERE 1 = 1 AND is_archived = 0 ORDER BY id DESC LIMIT \? OFFSET \?`).
		WithArgs(50, 0).
		WillReturnRows(sqlmock.NewRows(customerColumns).
			AddRow(1, 5, "Asha", "asha@example.com", nil, nil, false, time.Now(), nil).
			AddRow(2, 7, "Binod", "binod@example.com", nil, nil, false, time.Now(), nil))

	filter := model.ListRequest{}
	filter.Normalize()
	customers, err := repo.List(context.Background(), scope.All(), filter)
	require.NoError(t, err)
	assert.Len(t, customers, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCustomerFindByIDOutsideScopeIsNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCustomerRepository(db)

	// Customer 9 exists under tenant 7 but the caller is scoped to tenant 5,
	// so the filtered query returns no rows.
	mock.ExpectQuery(`SELECT (.+) FROM customers WHERE id = \? AND tenant_id = \?`).
		WithArgs(int64(9), int64(5)).
		WillReturnRows(sqlmock.NewRows(customerColumns))

	_, err := repo.FindByID(context.Background(), 9, scope.Exactly(5))
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCustomerArchiveOutsideScopeIsNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCustomerRepository(db)

	mock.ExpectExec(`UPDATE customers SET is_archived = \?, updated_at = NOW\(\) WHERE id = \? AND tenant_id = \?`).
		WithArgs(true, int64(9), int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.SetArchived(context.Background(), 9, scope.Exactly(5), true)
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}
