package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alejandro2cabezas/davincipropiedades-be/internal/models"
)

const userColumns = "id, nombre, apellido, email, telefono, password, rol, fecha_registro"

func scanUser(row scanner) (*models.User, error) {
	var u models.User
	var nombre, apellido, telefono, rol sql.NullString
	var fechaRegistro sql.NullTime

	err := row.Scan(&u.ID, &nombre, &apellido, &u.Email, &telefono, &u.Password, &rol, &fechaRegistro)
	if err != nil {
		return nil, err
	}

	u.Nombre = nombre.String
	u.Apellido = apellido.String
	u.Telefono = telefono.String
	u.Rol = rol.String
	if fechaRegistro.Valid {
		u.FechaRegistro = fechaRegistro.Time
	}
	return &u, nil
}

func (d *Database) GetUsers(ctx context.Context) ([]models.User, error) {
	rows, err := d.db.QueryContext(ctx, "SELECT "+userColumns+" FROM usuarios ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	users := make([]models.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, *u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating users: %w", err)
	}
	return users, nil
}

func (d *Database) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	row := d.db.QueryRowContext(ctx, "SELECT "+userColumns+" FROM usuarios WHERE id = ?", id)
	u, err := scanUser(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query user: %w", err)
	}
	return u, nil
}

// GetUserByEmail returns the user including its stored password
func (d *Database) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	row := d.db.QueryRowContext(ctx, "SELECT "+userColumns+" FROM usuarios WHERE email = ?", email)
	u, err := scanUser(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query user: %w", err)
	}
	return u, nil
}

// CreateUser inserts u and returns the new id. An empty role is stored as cliente.
func (d *Database) CreateUser(ctx context.Context, u *models.User) (int64, error) {
	rol := u.Rol
	if rol == "" {
		rol = models.RoleCliente
	}

	result, err := d.db.ExecContext(ctx,
		"INSERT INTO usuarios (nombre, apellido, email, telefono, password, rol) VALUES (?, ?, ?, ?, ?, ?)",
		u.Nombre, u.Apellido, u.Email, u.Telefono, u.Password, rol,
	)
	if err != nil {
		if d.dialect.IsUniqueViolation(err) {
			return 0, ErrDuplicateEmail
		}
		return 0, fmt.Errorf("failed to insert user: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get user ID: %w", err)
	}
	return id, nil
}

// UpdateUser overwrites every column of the row identified by u.ID
func (d *Database) UpdateUser(ctx context.Context, u *models.User) error {
	result, err := d.db.ExecContext(ctx,
		"UPDATE usuarios SET nombre = ?, apellido = ?, email = ?, telefono = ?, password = ?, rol = ? WHERE id = ?",
		u.Nombre, u.Apellido, u.Email, u.Telefono, u.Password, u.Rol, u.ID,
	)
	if err != nil {
		if d.dialect.IsUniqueViolation(err) {
			return ErrDuplicateEmail
		}
		return fmt.Errorf("failed to update user: %w", err)
	}
	return expectAffected(result)
}

func (d *Database) DeleteUser(ctx context.Context, id int64) error {
	result, err := d.db.ExecContext(ctx, "DELETE FROM usuarios WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return expectAffected(result)
}

// expectAffected turns a statement that matched no row into ErrNotFound
func expectAffected(result sql.Result) error {
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
