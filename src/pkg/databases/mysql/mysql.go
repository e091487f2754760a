package mysql

import (
	"errors"
	"fmt"
	"time"

	"dispatch-service/src/pkg/log"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/spf13/viper"
)

// DBInterface hands out the shared sqlx pool. Repositories depend on this
// instead of a concrete pool so tests can swap in sqlmock.
type DBInterface interface {
	GetDB() (*sqlx.DB, error)
}

type Database struct {
	db *sqlx.DB
}

// InitConnection opens the pool from viper config and verifies it with a ping.
func InitConnection(v *viper.Viper, logger log.Log) (*Database, error) {
	dsn := fmt.Sprintf(
		"%s:%s@tcp(%s:%d)/%s?parseTime=true&charset=utf8mb4",
		v.GetString("database.username"),
		v.GetString("database.password"),
		v.GetString("database.host"),
		v.GetInt("database.port"),
		v.GetString("database.name"),
	)

	db, err := sqlx.Connect("mysql", dsn)
	if err != nil {
		logger.Error("mysql", fmt.Sprintf("failed to connect: %v", err), "InitConnection", "")
		return nil, err
	}

	db.SetMaxOpenConns(v.GetInt("database.pool.max_open"))
	db.SetMaxIdleConns(v.GetInt("database.pool.max_idle"))
	db.SetConnMaxLifetime(time.Duration(v.GetInt("database.pool.max_lifetime_seconds")) * time.Second)

	logger.Info("mysql", "database connection established", "InitConnection", "")
	return &Database{db: db}, nil
}

// NewFromDB wraps an existing pool, used by tests.
func NewFromDB(db *sqlx.DB) *Database {
	return &Database{db: db}
}

func (d *Database) GetDB() (*sqlx.DB, error) {
	if d == nil || d.db == nil {
		return nil, errors.New("database connection is not initialized")
	}
	return d.db, nil
}
