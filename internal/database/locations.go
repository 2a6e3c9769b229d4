package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// findOrCreateLocation returns the id of the location for city, inserting it
// with the default province when it does not exist yet. Property create and
// update both resolve their location through here, inside their transaction.
func (d *Database) findOrCreateLocation(ctx context.Context, q execQuerier, city string) (int64, error) {
	id, err := lookupLocation(ctx, q, city)
	if err == nil {
		return id, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("failed to look up location: %w", err)
	}

	result, err := q.ExecContext(ctx, d.dialect.InsertLocation(), city, d.defaultProvince)
	if err != nil {
		// A concurrent writer outside a transaction created the city first
		if d.dialect.IsUniqueViolation(err) {
			if id, err := lookupLocation(ctx, q, city); err == nil {
				return id, nil
			}
		}
		return 0, fmt.Errorf("failed to insert location: %w", err)
	}

	id, err = result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get location ID: %w", err)
	}
	return id, nil
}

func lookupLocation(ctx context.Context, q execQuerier, city string) (int64, error) {
	var id int64
	err := q.QueryRowContext(ctx, "SELECT id FROM ubicaciones WHERE ciudad = ?", city).Scan(&id)
	return id, err
}

// lookupPropertyType resolves a type name. Types are never created here.
func lookupPropertyType(ctx context.Context, q execQuerier, name string) (int64, error) {
	var id int64
	err := q.QueryRowContext(ctx, "SELECT id FROM tipos_propiedad WHERE tipo = ?", name).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, ErrInvalidPropertyType
	}
	if err != nil {
		return 0, fmt.Errorf("failed to look up property type: %w", err)
	}
	return id, nil
}
