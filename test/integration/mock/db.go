package mock

import (
	"database/sql"
	"fmt"
	"sync"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var once sync.Once
var db *Db

// Db is the in-memory SQLite database shared by every scenario.
type Db struct {
	DbConn *gorm.DB
	models map[string]any
	tables []string // migration order
}

// NewDb opens the shared database once and migrates the given models in order.
func NewDb(models ...any) *Db {
	once.Do(func() {
		db = open(models)
	})
	return db
}

func open(models []any) *Db {
	dbSQL, err := sql.Open("sqlite", "file::memory:?cache=shared")
	if err != nil {
		panic(err)
	}

	// A single connection keeps every query on the same in-memory database
	dbSQL.SetMaxOpenConns(1)

	dbConn, err := gorm.Open(sqlite.Dialector{Conn: dbSQL}, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic("failed to connect to database. err: " + err.Error())
	}

	if err := dbConn.AutoMigrate(models...); err != nil {
		panic(fmt.Sprintf("failed to migrate database. err: %s", err.Error()))
	}

	d := &Db{DbConn: dbConn, models: map[string]any{}}
	for _, m := range models {
		stmt := &gorm.Statement{DB: dbConn}
		if err := stmt.Parse(m); err != nil {
			panic(err)
		}
		d.models[stmt.Schema.Table] = m
		d.tables = append(d.tables, stmt.Schema.Table)
	}

	return d
}

// ClearDB deletes every row, children first.
func (d *Db) ClearDB() error {
	for i := len(d.tables) - 1; i >= 0; i-- {
		if err := d.DbConn.Exec(fmt.Sprintf("DELETE FROM %s", d.tables[i])).Error; err != nil {
			return fmt.Errorf("failed to clear %s: %w", d.tables[i], err)
		}
	}
	return nil
}

// GetModel returns the model registered for a table.
func (d *Db) GetModel(table string) (any, bool) {
	model, ok := d.models[table]
	return model, ok
}
