// Package config loads application configuration from environment variables.
package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds the runtime configuration of the API server.  Each field
// corresponds to an environment variable.  DatabaseURL is a Postgres
// connection string; the remaining store parameters (host, credentials)
// travel inside it.
type Config struct {
	Env         string // application environment ("development", "production")
	Port        string // HTTP port to listen on
	DatabaseURL string // Postgres DSN
	AMQPURL     string // RabbitMQ URL for audit events (empty disables publishing)
}

// Production reports whether error responses should hide internal detail.
func (c Config) Production() bool {
	return strings.EqualFold(c.Env, "production")
}

// Load reads configuration from the environment.  Required variables are
// enforced by must(); missing values exit with a fatal log message.
func Load() Config {
	return Config{
		Env:         getenv("APP_ENV", "development"),
		Port:        getenv("APP_PORT", "3000"),
		DatabaseURL: must("DATABASE_URL"),
		AMQPURL:     os.Getenv("AMQP_URL"),
	}
}

// must retrieves a required environment variable or exits.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envBool(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

func envInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	if n, err := strconv.Atoi(v); err == nil {
		return n
	}
	return def
}

func envDur(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	if d, err := time.ParseDuration(v); err == nil {
		return d
	}
	return def
}
