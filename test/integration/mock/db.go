//go:build integration

package mock

import (
	"database/sql"
	"fmt"
	"sync"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var dbOnce sync.Once
var dbConn *Db

// Db wraps a shared in-memory SQLite connection for the integration suite.
type Db struct {
	DbConn *gorm.DB
	models []any
}

// NewDb opens (once) the in-memory database and migrates the given models.
func NewDb(models []any) *Db {
	dbOnce.Do(func() {
		dbConn = open(models)
	})
	return dbConn
}

func open(models []any) *Db {
	dbSQL, err := sql.Open("sqlite", "file::memory:?cache=shared")
	if err != nil {
		panic(err)
	}
	// A single connection keeps the shared in-memory database alive for the
	// whole suite.
	dbSQL.SetMaxOpenConns(1)

	conn, err := gorm.Open(sqlite.Dialector{Conn: dbSQL}, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic("failed to connect to database: " + err.Error())
	}

	if err := conn.AutoMigrate(models...); err != nil {
		panic("failed to migrate test database: " + err.Error())
	}

	return &Db{DbConn: conn, models: models}
}

// Clear wipes every table between scenarios.
func (d *Db) Clear() error {
	for _, m := range d.models {
		if err := d.DbConn.Session(&gorm.Session{AllowGlobalUpdate: true}).Unscoped().Delete(m).Error; err != nil {
			return fmt.Errorf("failed to clear table for %T: %w", m, err)
		}
	}
	return nil
}

// Count returns the number of rows in the named table.
func (d *Db) Count(table string) (int64, error) {
	var count int64
	err := d.DbConn.Table(table).Count(&count).Error
	return count, err
}
