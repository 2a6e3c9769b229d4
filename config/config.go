package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

type Config struct {
	Port     string `env:"PORT" envDefault:"3000"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// Database holds the relational store and pool settings
	Database struct {
		// Driver selects the SQL engine: "mysql" or "sqlite3"
		Driver   string `env:"DB_DRIVER" envDefault:"mysql"`
		Host     string `env:"DB_HOST" envDefault:"localhost"`
		Port     int    `env:"DB_PORT" envDefault:"3306"`
		User     string `env:"DB_USER" envDefault:"root"`
		Password string `env:"DB_PASSWORD"`
		Name     string `env:"DB_NAME" envDefault:"inmobiliaria_davinci_db"`

		// Path is only used by the sqlite3 driver
		Path string `env:"DB_PATH" envDefault:"inmobiliaria.db"`

		// Pool bounds. Callers queue when every connection is busy.
		MaxOpenConns    int      `env:"DB_MAX_OPEN_CONNS" envDefault:"10"`
		MaxIdleConns    int      `env:"DB_MAX_IDLE_CONNS" envDefault:"10"`
		ConnMaxLifetime Lifetime `env:"DB_CONN_MAX_LIFETIME" envDefault:"0"`

		// AutoMigrate creates missing tables and seeds the property type vocabulary
		AutoMigrate bool `env:"DB_AUTO_MIGRATE" envDefault:"true"`
	}

	Auth struct {
		JWTSecret    string   `env:"JWT_SECRET,required,notEmpty"`
		JWTExpiresIn Lifetime `env:"JWT_EXPIRES_IN" envDefault:"24h"`

		// PasswordHashing is "plain" (stored as given) or "bcrypt"
		PasswordHashing string `env:"PASSWORD_HASHING" envDefault:"plain"`

		BootstrapAdminEmail    string `env:"BOOTSTRAP_ADMIN_EMAIL"`
		BootstrapAdminPassword string `env:"BOOTSTRAP_ADMIN_PASSWORD"`
	}

	// CORSOrigins are the browser origins allowed to call the API with credentials
	CORSOrigins []string `env:"CORS_ORIGIN" envSeparator:"," envDefault:"http://localhost:5173"`

	// DefaultProvince is assigned to locations created on demand from a city name
	DefaultProvince string `env:"DEFAULT_PROVINCE" envDefault:"Buenos Aires"`
}

// LoadConfig reads an optional .env file from the working directory and then
// parses the process environment.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Database.Driver {
	case "mysql", "sqlite3":
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.Database.Driver)
	}
	switch c.Auth.PasswordHashing {
	case "plain", "bcrypt":
	default:
		return fmt.Errorf("unsupported PASSWORD_HASHING %q", c.Auth.PasswordHashing)
	}
	if c.Auth.JWTExpiresIn <= 0 {
		return fmt.Errorf("JWT_EXPIRES_IN must be positive")
	}
	return nil
}
