package database

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"testing"

	"github.com/mattn/go-sqlite3"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alejandro2cabezas/davincipropiedades-be/config"
	"github.com/alejandro2cabezas/davincipropiedades-be/internal/models"
)

func setupTestDB(t *testing.T) *Database {
	t.Helper()
	return setupTestDBWithPool(t, 1)
}

func setupTestDBWithPool(t *testing.T, conns int) *Database {
	t.Helper()

	cfg := &config.Config{}
	cfg.Database.Driver = "sqlite3"
	cfg.Database.Path = filepath.Join(t.TempDir(), "test.db")
	cfg.Database.MaxOpenConns = conns
	cfg.Database.MaxIdleConns = conns
	cfg.DefaultProvince = "Buenos Aires"

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	db, err := NewDatabase(cfg, logger)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, db.RunMigrations())
	return db
}

func countRows(t *testing.T, db *Database, table string) int {
	t.Helper()
	var n int
	require.NoError(t, db.db.QueryRow("SELECT COUNT(*) FROM "+table).Scan(&n))
	return n
}

func createTestUser(t *testing.T, db *Database, email string) int64 {
	t.Helper()
	id, err := db.CreateUser(context.Background(), &models.User{
		Nombre:   "Ana",
		Apellido: "García",
		Email:    email,
		Password: "secret",
	})
	require.NoError(t, err)
	return id
}

func TestNewDatabaseUnknownDriver(t *testing.T) {
	cfg := &config.Config{}
	cfg.Database.Driver = "postgres"

	_, err := NewDatabase(cfg, logrus.New())
	assert.Error(t, err)
}

func TestDataSourceNameMySQL(t *testing.T) {
	cfg := &config.Config{}
	cfg.Database.Driver = "mysql"
	cfg.Database.Host = "db.internal"
	cfg.Database.Port = 3307
	cfg.Database.User = "app"
	cfg.Database.Password = "pw"
	cfg.Database.Name = "inmobiliaria"

	dsn := dataSourceName(cfg)
	assert.Contains(t, dsn, "app:pw@tcp(db.internal:3307)/inmobiliaria")
	assert.Contains(t, dsn, "parseTime=true")
	assert.Contains(t, dsn, "clientFoundRows=true")
}

func TestDataSourceNameSQLite(t *testing.T) {
	cfg := &config.Config{}
	cfg.Database.Driver = "sqlite3"
	cfg.Database.Path = "/tmp/app.db"

	dsn := dataSourceName(cfg)
	assert.Contains(t, dsn, "file:/tmp/app.db?")
	assert.Contains(t, dsn, "_foreign_keys=on")
	assert.Contains(t, dsn, "_txlock=immediate")
}

func TestMySQLInsertLocationReturnsExistingID(t *testing.T) {
	assert.Contains(t, mysqlDialect{}.InsertLocation(), "LAST_INSERT_ID(id)")
}

func TestRunMigrationsWrapsDriverError(t *testing.T) {
	cfg := &config.Config{}
	cfg.Database.Driver = "sqlite3"
	cfg.Database.Path = filepath.Join(t.TempDir(), "test.db")
	cfg.Database.MaxOpenConns = 1

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	db, err := NewDatabase(cfg, logger)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	// a view holding the table name makes CREATE TABLE fail
	_, err = db.db.Exec("CREATE VIEW tipos_propiedad AS SELECT 1 AS id")
	require.NoError(t, err)

	err = db.RunMigrations()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to migrate schema")

	var sqliteErr sqlite3.Error
	assert.True(t, errors.As(err, &sqliteErr), err.Error())
}

func TestRunMigrationsSeedsPropertyTypes(t *testing.T) {
	db := setupTestDB(t)
	assert.Equal(t, len(config.SupportedPropertyTypes), countRows(t, db, "tipos_propiedad"))

	for _, name := range config.SupportedPropertyTypes {
		_, err := lookupPropertyType(context.Background(), db.db, name)
		assert.NoError(t, err, name)
	}
}

func TestPing(t *testing.T) {
	db := setupTestDB(t)
	assert.NoError(t, db.Ping(context.Background()))
}
