package database

import (
	"context"
	"database/sql"
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/sirupsen/logrus"

	"github.com/alejandro2cabezas/davincipropiedades-be/config"
)

// Database owns the connection pool. It is built once at startup and handed
// to the API layer; every query borrows a pooled connection for the duration
// of one statement or transaction.
type Database struct {
	db              *sql.DB
	dialect         dialect
	logger          *logrus.Logger
	defaultProvince string
}

// scanner is satisfied by *sql.Row and *sql.Rows
type scanner interface {
	Scan(dest ...any) error
}

// execQuerier is satisfied by *sql.DB and *sql.Tx
type execQuerier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func NewDatabase(cfg *config.Config, logger *logrus.Logger) (*Database, error) {
	d, err := dialectFor(cfg.Database.Driver)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open(cfg.Database.Driver, dataSourceName(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime.Duration())

	return &Database{
		db:              db,
		dialect:         d,
		logger:          logger,
		defaultProvince: cfg.DefaultProvince,
	}, nil
}

func dataSourceName(cfg *config.Config) string {
	if cfg.Database.Driver == "sqlite3" {
		// Transactions take the write lock at BEGIN. A deferred transaction
		// that reads and then writes fails with "database is locked" instead
		// of waiting out the busy timeout when another writer is active.
		return fmt.Sprintf("file:%s?_foreign_keys=on&_busy_timeout=5000&_journal_mode=WAL&_txlock=immediate", cfg.Database.Path)
	}

	mc := mysql.NewConfig()
	mc.User = cfg.Database.User
	mc.Passwd = cfg.Database.Password
	mc.Net = "tcp"
	mc.Addr = net.JoinHostPort(cfg.Database.Host, strconv.Itoa(cfg.Database.Port))
	mc.DBName = cfg.Database.Name
	mc.ParseTime = true
	mc.Loc = time.Local
	// UPDATE reports matched rows, so overwriting a row with identical
	// values is not mistaken for a missing row
	mc.ClientFoundRows = true
	mc.Params = map[string]string{"charset": "utf8mb4"}
	return mc.FormatDSN()
}

// Ping checks that a connection can be acquired and the server answers
func (d *Database) Ping(ctx context.Context) error {
	return d.db.PingContext(ctx)
}

func (d *Database) Close() error {
	return d.db.Close()
}
