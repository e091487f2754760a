package repository

import (
	"database/sql"
	"errors"

	"github.com/go-sql-driver/mysql"
)

const mysqlDuplicateEntry = 1062

// IsDuplicateEntry reports whether err is a unique-key violation, which the
// usecases surface as a conflict instead of a server error.
func IsDuplicateEntry(err error) bool {
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		return mysqlErr.Number == mysqlDuplicateEntry
	}
	return false
}

// IsNotFound reports whether err means the row does not exist. Rows filtered
// out by tenant scope look exactly the same as absent rows on purpose.
func IsNotFound(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

const mysqlDeadlock = 1213

// IsDeadlock reports transient lock contention worth one retry.
func IsDeadlock(err error) bool {
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		return mysqlErr.Number == mysqlDeadlock
	}
	return false
}
