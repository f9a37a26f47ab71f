package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	PostgresAddress  string
	PostgresPort     string
	PostgresDB       string
	PostgresUsername string
	PostgresPassword string

	HTTPPort        string
	OperatorWorkers int
	LogLevel        string
}

// ProcessEnvironmentVariables reads the configuration from the environment.
// A .env file in the working directory, or at envFile when given, is loaded
// first; variables already set in the environment win over the file.
func ProcessEnvironmentVariables(envFile ...string) (*Config, error) {
	if len(envFile) > 0 && envFile[0] != "" {
		if err := godotenv.Load(envFile[0]); err != nil {
			return nil, fmt.Errorf("loading %s: %w", envFile[0], err)
		}
	} else {
		// A missing .env is fine.
		_ = godotenv.Load()
	}

	// In all cases the default behavior should be for the docker compose setup
	env := Config{
		PostgresAddress:  "localhost",
		PostgresPort:     "5433",
		PostgresDB:       "postgres",
		PostgresUsername: "postgres",
		PostgresPassword: "testpassword",
		HTTPPort:         "9446",
		OperatorWorkers:  4,
		LogLevel:         "info",
	}

	envPostgresAddress := os.Getenv("POSTGRES_ADDRESS")
	envPostgresPort := os.Getenv("POSTGRES_PORT")
	envPostgresDB := os.Getenv("POSTGRES_DB")
	envPostgresUsername := os.Getenv("POSTGRES_USERNAME")
	envPostgresPassword := os.Getenv("POSTGRES_PASSWORD")
	envHTTPPort := os.Getenv("HTTP_PORT")
	envOperatorWorkers := os.Getenv("OPERATOR_WORKERS")
	envLogLevel := os.Getenv("LOG_LEVEL")

	if len(envPostgresAddress) != 0 {
		env.PostgresAddress = envPostgresAddress
	}

	if len(envPostgresPort) != 0 {
		env.PostgresPort = envPostgresPort
	}

	if len(envPostgresDB) != 0 {
		env.PostgresDB = envPostgresDB
	}

	if len(envPostgresUsername) != 0 {
		env.PostgresUsername = envPostgresUsername
	}

	if len(envPostgresPassword) != 0 {
		env.PostgresPassword = envPostgresPassword
	}

	if len(envHTTPPort) != 0 {
		env.HTTPPort = envHTTPPort
	}

	if len(envOperatorWorkers) != 0 {
		workers, err := strconv.Atoi(envOperatorWorkers)
		if err != nil || workers < 1 {
			return nil, fmt.Errorf("OPERATOR_WORKERS must be a positive integer, got %q", envOperatorWorkers)
		}
		env.OperatorWorkers = workers
	}

	if len(envLogLevel) != 0 {
		env.LogLevel = envLogLevel
	}

	return &env, nil
}

// PostgresURL is the lib/pq connection string for the configured database.
func (c *Config) PostgresURL() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.PostgresUsername, c.PostgresPassword),
		Host:     c.PostgresAddress + ":" + c.PostgresPort,
		Path:     "/" + c.PostgresDB,
		RawQuery: "sslmode=disable",
	}
	return u.String()
}
