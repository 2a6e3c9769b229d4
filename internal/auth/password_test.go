package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlainHasher(t *testing.T) {
	h, err := NewPasswordHasher("plain")
	require.NoError(t, err)

	stored, err := h.Hash("s3cret")
	require.NoError(t, err)
	assert.Equal(t, "s3cret", stored)

	assert.True(t, h.Matches(stored, "s3cret"))
	assert.False(t, h.Matches(stored, "S3cret"))
	assert.False(t, h.Matches(stored, ""))
}

func TestBcryptHasher(t *testing.T) {
	h, err := NewPasswordHasher("bcrypt")
	require.NoError(t, err)

	stored, err := h.Hash("s3cret")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret", stored)

	assert.True(t, h.Matches(stored, "s3cret"))
	assert.False(t, h.Matches(stored, "wrong"))
	// a plaintext row left over from before the switch never matches
	assert.False(t, h.Matches("s3cret", "s3cret"))
}

func TestNewPasswordHasherUnknownMode(t *testing.T) {
	_, err := NewPasswordHasher("md5")
	assert.Error(t, err)
}
