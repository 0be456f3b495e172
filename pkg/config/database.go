package config

import (
	"fmt"
	"os"
	"time"
)

// DatabaseConfig describes the PostgreSQL connection and its pool. The
// password is read from the environment via PasswordEnv, never from YAML.
type DatabaseConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
	User string `yaml:"user"`

	// PasswordEnv names the environment variable holding the password.
	PasswordEnv string `yaml:"password_env"`

	// Name is the database name.
	Name string `yaml:"name"`

	SSLMode string `yaml:"ssl_mode"`

	// Pool settings, applied to the shared *sql.DB.
	MaxOpenConns    int           `yaml:"max_open_conns"`
	MaxIdleConns    int           `yaml:"max_idle_conns"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime"`
	ConnMaxIdleTime time.Duration `yaml:"conn_max_idle_time"`
}

// DefaultDatabaseConfig returns the built-in database settings.
func DefaultDatabaseConfig() *DatabaseConfig {
	return &DatabaseConfig{
		Host:            "localhost",
		Port:            5432,
		User:            "brandlens",
		PasswordEnv:     "DB_PASSWORD",
		Name:            "brandlens",
		SSLMode:         "disable",
		MaxOpenConns:    25,
		MaxIdleConns:    10,
		ConnMaxLifetime: 30 * time.Minute,
		ConnMaxIdleTime: 5 * time.Minute,
	}
}

// DSN returns the keyword/value pgx connection string. Also used by the
// dedicated LISTEN connection of the event bus.
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, os.Getenv(c.PasswordEnv), c.Name, c.SSLMode,
	)
}
