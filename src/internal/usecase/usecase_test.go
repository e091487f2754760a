package usecase

import (
	"testing"

	mysqlpkg "dispatch-service/src/pkg/databases/mysql"
	httpError "dispatch-service/src/pkg/http-error"
	"dispatch-service/src/pkg/log"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
)

func newMockDB(t *testing.T) (*mysqlpkg.Database, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return mysqlpkg.NewFromDB(sqlx.NewDb(db, "sqlmock")), mock
}

func requireHTTPError(t *testing.T, err error, code int) *httpError.CommonError {
	t.Helper()
	require.Error(t, err)
	commonErr, ok := err.(*httpError.CommonError)
	require.True(t, ok, "expected *httperror.CommonError, got %T", err)
	require.Equal(t, code, commonErr.Code)
	return commonErr
}

var testLog = log.Log{}
