package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alejandro2cabezas/davincipropiedades-be/internal/models"
)

// Listing rows carry the type name, the location and at most one image even
// though imagenes_propiedad allows several per property.
const propertyColumns = `
        p.id,
        p.titulo,
        p.descripcion,
        p.precio,
        p.superficie,
        p.habitaciones,
        p.banos,
        p.tipo_id,
        p.ubicacion_id,
        p.usuario_id,
        p.destacada,
        p.fecha_publicacion,
        t.tipo,
        u.ciudad,
        u.provincia,
        (SELECT url_imagen FROM imagenes_propiedad WHERE propiedad_id = p.id LIMIT 1) AS url_imagen`

const propertyJoins = `
        JOIN tipos_propiedad t ON p.tipo_id = t.id
        JOIN ubicaciones u ON p.ubicacion_id = u.id`

const propertyListQuery = `SELECT` + propertyColumns + `
        FROM propiedades p` + propertyJoins

// scanProperty reads the columns of propertyColumns followed by extra
func scanProperty(row scanner, extra ...any) (*models.Property, error) {
	var p models.Property
	var descripcion, provincia, urlImagen sql.NullString
	var usuarioID sql.NullInt64
	var fechaPublicacion sql.NullTime

	dest := []any{
		&p.ID,
		&p.Titulo,
		&descripcion,
		&p.Precio,
		&p.Superficie,
		&p.Habitaciones,
		&p.Banos,
		&p.TipoID,
		&p.UbicacionID,
		&usuarioID,
		&p.Destacada,
		&fechaPublicacion,
		&p.Tipo,
		&p.Ciudad,
		&provincia,
		&urlImagen,
	}
	if err := row.Scan(append(dest, extra...)...); err != nil {
		return nil, err
	}

	p.Descripcion = descripcion.String
	p.Provincia = provincia.String
	if usuarioID.Valid {
		id := usuarioID.Int64
		p.UsuarioID = &id
	}
	if fechaPublicacion.Valid {
		p.FechaPublicacion = fechaPublicacion.Time
	}
	if urlImagen.Valid {
		url := urlImagen.String
		p.URLImagen = &url
	}
	return &p, nil
}

func (d *Database) queryProperties(ctx context.Context, query string, args ...any) ([]models.Property, error) {
	rows, err := d.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query properties: %w", err)
	}
	defer rows.Close()

	properties := make([]models.Property, 0)
	for rows.Next() {
		p, err := scanProperty(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan property: %w", err)
		}
		properties = append(properties, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating properties: %w", err)
	}
	return properties, nil
}

func (d *Database) GetProperties(ctx context.Context) ([]models.Property, error) {
	return d.queryProperties(ctx, propertyListQuery+" ORDER BY p.id")
}

func (d *Database) GetFeaturedProperties(ctx context.Context) ([]models.Property, error) {
	return d.queryProperties(ctx, propertyListQuery+" WHERE p.destacada = 1 ORDER BY p.id")
}

func (d *Database) GetPropertiesByUser(ctx context.Context, userID int64) ([]models.Property, error) {
	return d.queryProperties(ctx, propertyListQuery+" WHERE p.usuario_id = ? ORDER BY p.id", userID)
}

// GetPropertyByID also returns the street address of the location
func (d *Database) GetPropertyByID(ctx context.Context, id int64) (*models.Property, error) {
	query := `SELECT` + propertyColumns + `,
        u.direccion
        FROM propiedades p` + propertyJoins + `
        WHERE p.id = ?`

	var direccion sql.NullString
	p, err := scanProperty(d.db.QueryRowContext(ctx, query, id), &direccion)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query property: %w", err)
	}

	if direccion.Valid {
		p.Direccion = &direccion.String
	}
	return p, nil
}

// CreateProperty resolves the type and location, inserts the property and its
// optional image in one transaction and returns the new property id.
func (d *Database) CreateProperty(ctx context.Context, in models.PropertyInput) (int64, error) {
	tx, err := d.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	tipoID, err := lookupPropertyType(ctx, tx, in.Tipo)
	if err != nil {
		return 0, err
	}

	ubicacionID, err := d.findOrCreateLocation(ctx, tx, in.Ubicacion)
	if err != nil {
		return 0, err
	}

	destacada := in.Destacada != nil && *in.Destacada
	result, err := tx.ExecContext(ctx, `
		INSERT INTO propiedades
		(titulo, descripcion, precio, superficie, habitaciones, banos, tipo_id, ubicacion_id, usuario_id, destacada)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		in.Titulo,
		in.Descripcion,
		in.Precio,
		in.Superficie,
		in.Habitaciones,
		in.Banos,
		tipoID,
		ubicacionID,
		nullableID(in.UsuarioID),
		destacada,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert property: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get property ID: %w", err)
	}

	if in.URLImagen != "" {
		_, err = tx.ExecContext(ctx,
			"INSERT INTO imagenes_propiedad (propiedad_id, url_imagen) VALUES (?, ?)",
			id, in.URLImagen,
		)
		if err != nil {
			return 0, fmt.Errorf("failed to insert property image: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return id, nil
}

// UpdateProperty overwrites the descriptive fields, type and location of a
// property. Destacada is only written when present. A non-empty image URL
// replaces the URL of every image of the property.
func (d *Database) UpdateProperty(ctx context.Context, id int64, in models.PropertyInput) error {
	tx, err := d.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	tipoID, err := lookupPropertyType(ctx, tx, in.Tipo)
	if err != nil {
		return err
	}

	ubicacionID, err := d.findOrCreateLocation(ctx, tx, in.Ubicacion)
	if err != nil {
		return err
	}

	result, err := tx.ExecContext(ctx, `
		UPDATE propiedades
		SET titulo = ?, descripcion = ?, precio = ?, superficie = ?, habitaciones = ?, banos = ?,
		    tipo_id = ?, ubicacion_id = ?, destacada = COALESCE(?, destacada)
		WHERE id = ?
	`,
		in.Titulo,
		in.Descripcion,
		in.Precio,
		in.Superficie,
		in.Habitaciones,
		in.Banos,
		tipoID,
		ubicacionID,
		in.Destacada,
		id,
	)
	if err != nil {
		return fmt.Errorf("failed to update property: %w", err)
	}
	// Rolls back a location created above for a property that does not exist
	if err := expectAffected(result); err != nil {
		return err
	}

	if in.URLImagen != "" {
		if err := replacePropertyImage(ctx, tx, id, in.URLImagen); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// replacePropertyImage rewrites every image of the property. A property
// without images is left without one.
func replacePropertyImage(ctx context.Context, tx *sql.Tx, propertyID int64, url string) error {
	_, err := tx.ExecContext(ctx,
		"UPDATE imagenes_propiedad SET url_imagen = ? WHERE propiedad_id = ?",
		url, propertyID,
	)
	if err != nil {
		return fmt.Errorf("failed to update property image: %w", err)
	}
	return nil
}

func (d *Database) DeleteProperty(ctx context.Context, id int64) error {
	result, err := d.db.ExecContext(ctx, "DELETE FROM propiedades WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete property: %w", err)
	}
	return expectAffected(result)
}

// nullableID maps the zero id to SQL NULL
func nullableID(id int64) any {
	if id == 0 {
		return nil
	}
	return id
}
