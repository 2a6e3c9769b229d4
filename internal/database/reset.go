package database

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
)

// resetTables is in dependency order, children first. tipos_propiedad is
// reference data and survives a reset.
var resetTables = []string{
	"favoritos",
	"reservas",
	"ventas",
	"imagenes_propiedad",
	"propiedades",
	"agentes",
	"usuarios",
	"ubicaciones",
}

// ResetAll deletes every row of every table and restarts the auto-increment
// counters at 1.
//
// Foreign key checks are a session setting, so the whole script runs on one
// pinned connection. Checks are switched back on when the script returns,
// whatever the outcome; if that fails the connection is discarded instead of
// being returned to the pool.
func (d *Database) ResetAll(ctx context.Context) (err error) {
	conn, err := d.db.Conn(ctx)
	if err != nil {
		return fmt.Errorf("failed to acquire connection: %w", err)
	}
	defer conn.Close()

	if _, err := conn.ExecContext(ctx, d.dialect.DisableForeignKeys()); err != nil {
		return fmt.Errorf("failed to disable foreign key checks: %w", err)
	}
	defer func() {
		if restoreErr := d.restoreForeignKeys(conn); restoreErr != nil {
			err = errors.Join(err, restoreErr)
		}
	}()

	for _, table := range resetTables {
		if _, err := conn.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}

	for _, table := range resetTables {
		query, args := d.dialect.ResetSequence(table)
		if _, err := conn.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("failed to reset counter of %s: %w", table, err)
		}
	}

	return nil
}

// restoreForeignKeys runs on a fresh context so a cancelled request still
// gets its session cleaned up
func (d *Database) restoreForeignKeys(conn *sql.Conn) error {
	_, err := conn.ExecContext(context.Background(), d.dialect.EnableForeignKeys())
	if err == nil {
		return nil
	}

	d.logger.WithError(err).Error("Failed to re-enable foreign key checks, discarding connection")
	_ = conn.Raw(func(any) error {
		return driver.ErrBadConn
	})
	return fmt.Errorf("failed to re-enable foreign key checks: %w", err)
}
