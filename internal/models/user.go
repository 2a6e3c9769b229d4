package models

import "time"

const (
	RoleCliente = "cliente"
	RoleAdmin   = "admin"
)

// User is a row of usuarios. Password is never serialized.
type User struct {
	ID            int64     `json:"id"`
	Nombre        string    `json:"nombre"`
	Apellido      string    `json:"apellido"`
	Email         string    `json:"email"`
	Telefono      string    `json:"telefono"`
	Password      string    `json:"-"`
	Rol           string    `json:"rol"`
	FechaRegistro time.Time `json:"fecha_registro"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Nombre   string `json:"nombre"`
	Apellido string `json:"apellido"`
	Telefono string `json:"telefono"`
}

// CreateUserRequest is the admin-panel create payload. Rol defaults to cliente.
type CreateUserRequest struct {
	Nombre   string `json:"nombre"`
	Apellido string `json:"apellido"`
	Email    string `json:"email" binding:"required"`
	Telefono string `json:"telefono"`
	Password string `json:"password" binding:"required"`
	Rol      string `json:"rol"`
}

// UpdateUserRequest overwrites the whole row, so every field is required
type UpdateUserRequest struct {
	Nombre   string `json:"nombre" binding:"required"`
	Apellido string `json:"apellido" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Telefono string `json:"telefono" binding:"required"`
	Password string `json:"password" binding:"required"`
	Rol      string `json:"rol" binding:"required"`
}
