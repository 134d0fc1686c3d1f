package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
)

const (
	databaseURLEnv = "DATABASE_URL"
	dbHostEnv      = "DB_HOST"
	dbPortEnv      = "DB_PORT"
	dbUserEnv      = "DB_USER"
	dbPasswordEnv  = "DB_PASSWORD"
	dbNameEnv      = "DB_NAME"
	dbSSLModeEnv   = "DB_SSLMODE"

	defaultDBPort    = 5432
	defaultDBUser    = "postgres"
	defaultDBName    = "study_scheduler"
	defaultDBSSLMode = "disable"
)

type DatabaseConfig struct {
	URL      string
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

func LoadDatabaseConfig() (*DatabaseConfig, error) {
	port := defaultDBPort
	if raw := os.Getenv(dbPortEnv); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return nil, ErrInvalidDatabasePort
		}
		port = parsed
	}

	return &DatabaseConfig{
		URL:      os.Getenv(databaseURLEnv),
		Host:     os.Getenv(dbHostEnv),
		Port:     port,
		User:     getEnvOrDefault(dbUserEnv, defaultDBUser),
		Password: os.Getenv(dbPasswordEnv),
		Name:     getEnvOrDefault(dbNameEnv, defaultDBName),
		SSLMode:  getEnvOrDefault(dbSSLModeEnv, defaultDBSSLMode),
	}, nil
}

// DSN returns DATABASE_URL when set, otherwise a URL built from the DB_* parts.
func (c *DatabaseConfig) DSN() string {
	if c.URL != "" {
		return c.URL
	}

	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     "/" + c.Name,
		RawQuery: url.Values{"sslmode": []string{c.SSLMode}}.Encode(),
	}
	return u.String()
}

func (c *DatabaseConfig) Validate() error {
	if c == nil || (c.URL == "" && c.Host == "") {
		return ErrDatabaseMissing
	}
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}
