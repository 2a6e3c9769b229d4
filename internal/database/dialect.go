package database

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/go-sql-driver/mysql"
	"github.com/mattn/go-sqlite3"
	gormmysql "gorm.io/driver/mysql"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// dialect captures the few statements that differ between the supported
// engines. Everything else is portable SQL with ? placeholders.
type dialect interface {
	DisableForeignKeys() string
	EnableForeignKeys() string
	ResetSequence(table string) (string, []any)
	IsUniqueViolation(err error) bool
	// InsertLocation inserts (ciudad, provincia). Where the engine can, an
	// existing city is not an error and its id is reported as the insert id.
	InsertLocation() string
	Gorm(db *sql.DB) gorm.Dialector
}

func dialectFor(driver string) (dialect, error) {
	switch driver {
	case "mysql":
		return mysqlDialect{}, nil
	case "sqlite3":
		return sqliteDialect{}, nil
	}
	return nil, fmt.Errorf("unsupported database driver: %s", driver)
}

type mysqlDialect struct{}

func (mysqlDialect) DisableForeignKeys() string { return "SET FOREIGN_KEY_CHECKS = 0" }
func (mysqlDialect) EnableForeignKeys() string  { return "SET FOREIGN_KEY_CHECKS = 1" }

func (mysqlDialect) ResetSequence(table string) (string, []any) {
	return "ALTER TABLE " + table + " AUTO_INCREMENT = 1", nil
}

// ER_DUP_ENTRY
const mysqlDuplicateEntry = 1062

func (mysqlDialect) IsUniqueViolation(err error) bool {
	var myErr *mysql.MySQLError
	return errors.As(err, &myErr) && myErr.Number == mysqlDuplicateEntry
}

// A plain re-read after a duplicate key would use the transaction's
// REPEATABLE READ snapshot and miss the winner's row, so the duplicate is
// resolved inside the insert.
func (mysqlDialect) InsertLocation() string {
	return "INSERT INTO ubicaciones (ciudad, provincia) VALUES (?, ?) ON DUPLICATE KEY UPDATE id = LAST_INSERT_ID(id)"
}

func (mysqlDialect) Gorm(db *sql.DB) gorm.Dialector {
	return gormmysql.New(gormmysql.Config{Conn: db})
}

type sqliteDialect struct{}

func (sqliteDialect) DisableForeignKeys() string { return "PRAGMA foreign_keys = OFF" }
func (sqliteDialect) EnableForeignKeys() string  { return "PRAGMA foreign_keys = ON" }

func (sqliteDialect) ResetSequence(table string) (string, []any) {
	return "DELETE FROM sqlite_sequence WHERE name = ?", []any{table}
}

func (sqliteDialect) IsUniqueViolation(err error) bool {
	var sqErr sqlite3.Error
	if !errors.As(err, &sqErr) {
		return false
	}
	return sqErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
		sqErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
}

// Write transactions start with BEGIN IMMEDIATE, so two of them never race
// on the same city.
func (sqliteDialect) InsertLocation() string {
	return "INSERT INTO ubicaciones (ciudad, provincia) VALUES (?, ?)"
}

func (sqliteDialect) Gorm(db *sql.DB) gorm.Dialector {
	return gormsqlite.Dialector{Conn: db}
}
