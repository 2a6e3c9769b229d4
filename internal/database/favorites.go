package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/alejandro2cabezas/davincipropiedades-be/internal/models"
)

// ToggleFavorite removes the (user, property) pair when it exists and adds it
// otherwise. It reports whether the pair was added.
//
// The insert goes first and the unique index on the pair decides: a
// duplicate means the pair is present and is removed instead. Concurrent
// toggles of the same pair queue on that index entry.
func (d *Database) ToggleFavorite(ctx context.Context, userID, propertyID int64) (bool, error) {
	tx, err := d.db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	added := true
	_, err = tx.ExecContext(ctx,
		"INSERT INTO favoritos (usuario_id, propiedad_id) VALUES (?, ?)",
		userID, propertyID,
	)
	if err != nil {
		if !d.dialect.IsUniqueViolation(err) {
			return false, fmt.Errorf("failed to add favorite: %w", err)
		}

		added = false
		_, err = tx.ExecContext(ctx,
			"DELETE FROM favoritos WHERE usuario_id = ? AND propiedad_id = ?",
			userID, propertyID,
		)
		if err != nil {
			return false, fmt.Errorf("failed to remove favorite: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return added, nil
}

func (d *Database) IsFavorite(ctx context.Context, userID, propertyID int64) (bool, error) {
	var exists bool
	err := d.db.QueryRowContext(ctx,
		"SELECT EXISTS(SELECT 1 FROM favoritos WHERE usuario_id = ? AND propiedad_id = ?)",
		userID, propertyID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check favorite: %w", err)
	}
	return exists, nil
}

// GetFavorites lists the properties favorited by a user with the date each
// one was added
func (d *Database) GetFavorites(ctx context.Context, userID int64) ([]models.Property, error) {
	query := `SELECT` + propertyColumns + `,
        f.fecha_agregado
        FROM favoritos f
        JOIN propiedades p ON f.propiedad_id = p.id` + propertyJoins + `
        WHERE f.usuario_id = ?
        ORDER BY f.id`

	rows, err := d.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query favorites: %w", err)
	}
	defer rows.Close()

	properties := make([]models.Property, 0)
	for rows.Next() {
		var fechaAgregado sql.NullTime
		p, err := scanProperty(rows, &fechaAgregado)
		if err != nil {
			return nil, fmt.Errorf("failed to scan favorite: %w", err)
		}
		if fechaAgregado.Valid {
			p.FechaAgregado = &fechaAgregado.Time
		}
		properties = append(properties, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating favorites: %w", err)
	}
	return properties, nil
}
