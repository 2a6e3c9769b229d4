package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alejandro2cabezas/davincipropiedades-be/internal/models"
)

func TestCreateUser(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	id := createTestUser(t, db, "ana@example.com")

	u, err := db.GetUserByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", u.Email)
	assert.Equal(t, models.RoleCliente, u.Rol)
	assert.False(t, u.FechaRegistro.IsZero())
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	db := setupTestDB(t)
	createTestUser(t, db, "ana@example.com")

	_, err := db.CreateUser(context.Background(), &models.User{Email: "ana@example.com", Password: "x"})
	assert.ErrorIs(t, err, ErrDuplicateEmail)
	assert.Equal(t, 1, countRows(t, db, "usuarios"))
}

func TestGetUsers(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	users, err := db.GetUsers(ctx)
	require.NoError(t, err)
	assert.NotNil(t, users)
	assert.Empty(t, users)

	createTestUser(t, db, "a@example.com")
	createTestUser(t, db, "b@example.com")

	users, err = db.GetUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "a@example.com", users[0].Email)
	assert.Equal(t, "b@example.com", users[1].Email)
}

func TestGetUserByEmail(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	createTestUser(t, db, "ana@example.com")

	u, err := db.GetUserByEmail(ctx, "ana@example.com")
	require.NoError(t, err)
	assert.Equal(t, "secret", u.Password)

	_, err = db.GetUserByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateUser(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	id := createTestUser(t, db, "ana@example.com")
	otherID := createTestUser(t, db, "beto@example.com")

	update := &models.User{
		ID:       id,
		Nombre:   "Ana María",
		Apellido: "García",
		Email:    "anamaria@example.com",
		Telefono: "1155550000",
		Password: "nueva",
		Rol:      models.RoleAdmin,
	}
	require.NoError(t, db.UpdateUser(ctx, update))

	u, err := db.GetUserByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Ana María", u.Nombre)
	assert.Equal(t, "anamaria@example.com", u.Email)
	assert.Equal(t, models.RoleAdmin, u.Rol)

	// Writing identical values still counts as a match
	assert.NoError(t, db.UpdateUser(ctx, update))

	taken := *update
	taken.ID = otherID
	assert.ErrorIs(t, db.UpdateUser(ctx, &taken), ErrDuplicateEmail)

	missing := *update
	missing.ID = 999
	missing.Email = "ghost@example.com"
	assert.ErrorIs(t, db.UpdateUser(ctx, &missing), ErrNotFound)
}

func TestDeleteUser(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	id := createTestUser(t, db, "ana@example.com")

	assert.ErrorIs(t, db.DeleteUser(ctx, 999), ErrNotFound)
	assert.Equal(t, 1, countRows(t, db, "usuarios"))

	require.NoError(t, db.DeleteUser(ctx, id))
	_, err := db.GetUserByID(ctx, id)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestEnsureUser(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	admin := &models.User{Email: "admin@example.com", Password: "pw", Rol: models.RoleAdmin}

	created, err := db.EnsureUser(ctx, admin)
	require.NoError(t, err)
	assert.True(t, created)

	created, err = db.EnsureUser(ctx, admin)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, 1, countRows(t, db, "usuarios"))
}
