package utils

import "database/sql"

// NullString maps an optional request field to its column value; empty means
// NULL.
func NullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
