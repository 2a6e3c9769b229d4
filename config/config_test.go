package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, key := range []string{
		"PORT", "DB_DRIVER", "DB_HOST", "DB_PORT", "DB_NAME", "DB_MAX_OPEN_CONNS",
		"JWT_EXPIRES_IN", "CORS_ORIGIN", "PASSWORD_HASHING", "DEFAULT_PROVINCE", "DB_AUTO_MIGRATE",
	} {
		unsetEnv(t, key)
	}
	t.Setenv("JWT_SECRET", "secret")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, "mysql", cfg.Database.Driver)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 3306, cfg.Database.Port)
	assert.Equal(t, "inmobiliaria_davinci_db", cfg.Database.Name)
	assert.Equal(t, 10, cfg.Database.MaxOpenConns)
	assert.True(t, cfg.Database.AutoMigrate)
	assert.Equal(t, 24*time.Hour, cfg.Auth.JWTExpiresIn.Duration())
	assert.Equal(t, "plain", cfg.Auth.PasswordHashing)
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.CORSOrigins)
	assert.Equal(t, "Buenos Aires", cfg.DefaultProvince)
}

// unsetEnv removes key for the duration of the test
func unsetEnv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	require.NoError(t, os.Unsetenv(key))
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("PORT", "8080")
	t.Setenv("DB_DRIVER", "sqlite3")
	t.Setenv("DB_PATH", "/tmp/test.db")
	t.Setenv("JWT_EXPIRES_IN", "7d")
	t.Setenv("CORS_ORIGIN", "http://a.example,http://b.example")
	t.Setenv("PASSWORD_HASHING", "bcrypt")
	t.Setenv("DEFAULT_PROVINCE", "Córdoba")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "sqlite3", cfg.Database.Driver)
	assert.Equal(t, "/tmp/test.db", cfg.Database.Path)
	assert.Equal(t, 7*24*time.Hour, cfg.Auth.JWTExpiresIn.Duration())
	assert.Equal(t, []string{"http://a.example", "http://b.example"}, cfg.CORSOrigins)
	assert.Equal(t, "bcrypt", cfg.Auth.PasswordHashing)
	assert.Equal(t, "Córdoba", cfg.DefaultProvince)
}

func TestLoadConfigRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{name: "Unknown driver", key: "DB_DRIVER", val: "postgres"},
		{name: "Unknown hashing mode", key: "PASSWORD_HASHING", val: "md5"},
		{name: "Zero expiry", key: "JWT_EXPIRES_IN", val: "0"},
		{name: "Garbage expiry", key: "JWT_EXPIRES_IN", val: "soon"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("JWT_SECRET", "secret")
			t.Setenv(tt.key, tt.val)

			_, err := LoadConfig()
			assert.Error(t, err)
		})
	}
}

func TestLoadConfigRequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestLifetimeUnmarshalText(t *testing.T) {
	tests := []struct {
		input    string
		expected time.Duration
		wantErr  bool
	}{
		{input: "3600", expected: time.Hour},
		{input: "24h", expected: 24 * time.Hour},
		{input: "90m", expected: 90 * time.Minute},
		{input: "2d", expected: 48 * time.Hour},
		{input: " 1h ", expected: time.Hour},
		{input: "", expected: 0},
		{input: "xd", wantErr: true},
		{input: "tomorrow", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			var l Lifetime
			err := l.UnmarshalText([]byte(tt.input))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, l.Duration())
		})
	}
}
