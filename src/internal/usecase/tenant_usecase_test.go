package usecase

import (
	"context"
	"testing"

	"dispatch-service/src/internal/model"
	"dispatch-service/src/internal/repository"
	mysqlpkg "dispatch-service/src/pkg/databases/mysql"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-playground/validator/v10"
	mysqldriver "github.com/go-sql-driver/mysql"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func newTenantUseCase(db *mysqlpkg.Database) *TenantUseCase {
	return NewTenantUseCase(
		testLog,
		validator.New(),
		repository.NewTenantRepository(db),
		repository.NewJobRepository(db),
		nil,
		nil,
	)
}

func TestCreateTenantDuplicateCodeReturnsConflict(t *testing.T) {
	db, mock := newMockDB(t)
	uc := newTenantUseCase(db)

	mock.ExpectExec("INSERT INTO tenants").
		WithArgs("ACME", "Acme Shuttle", nil, true).
		WillReturnError(&mysqldriver.MySQLError{Number: 1062})

	result := uc.Create(context.Background(), &model.CreateTenantRequest{
		Name: "Acme Shuttle",
		Code: "acme",
	})
	requireHTTPError(t, result.Error, fiber.StatusConflict)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteTenantWithCustomersReturnsConflict(t *testing.T) {
	db, mock := newMockDB(t)
	uc := newTenantUseCase(db)

	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM customers WHERE tenant_id = \\?").
		WithArgs(int64(4)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(3)))

	result := uc.Delete(context.Background(), 4)
	requireHTTPError(t, result.Error, fiber.StatusConflict)
	assert.NoError(t, mock.ExpectationsWereMet())
}
