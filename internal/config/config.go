// Package config loads application configuration from environment
// variables. A .env file in the working directory is honored when
// present, which keeps local development close to how the site is
// deployed.
package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all runtime configuration values. Each field
// corresponds to an environment variable. Strings for identifiers and
// secrets, ints for durations and costs.
type Config struct {
	Env            string // application environment (e.g. "dev", "prod")
	Port           string // HTTP port to listen on
	StaticDir      string // directory containing the built marketing site
	NotifyEmail    string // inbox receiving booking/contact notifications
	AMQPURL        string // RabbitMQ URL; empty disables the queue transport
	JWTSecret      string // secret used to sign admin access tokens
	AccessTTLMin   int    // access token time-to-live in minutes
	RefreshTTLDays int    // refresh token time-to-live in days
	BcryptCost     int    // bcrypt cost for admin password hashing
}

// Load reads configuration from the environment. Required variables
// are enforced by must() and missing values cause the program to exit
// with a fatal log message; everything else has a sensible default.
func Load() Config {
	// A missing .env simply means the environment is already populated.
	_ = godotenv.Load()

	return Config{
		Env:            getenv("APP_ENV", "dev"),
		Port:           getenv("APP_PORT", "5000"),
		StaticDir:      getenv("STATIC_DIR", "web"),
		NotifyEmail:    getenv("NOTIFY_EMAIL", "mountainmixologyca@gmail.com"),
		AMQPURL:        os.Getenv("AMQP_URL"), // empty allowed: log sink is used instead
		JWTSecret:      must("JWT_SECRET"),
		AccessTTLMin:   atoiDefault("ACCESS_TOKEN_TTL_MIN", 15),
		RefreshTTLDays: atoiDefault("REFRESH_TOKEN_TTL_DAYS", 7),
		BcryptCost:     atoiDefault("BCRYPT_COST", 10),
	}
}

// must retrieves the value of a required environment variable. If the
// variable is unset or empty, the application logs a fatal error and
// exits.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}

func atoiDefault(key string, def int) int {
	s := os.Getenv(key)
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		log.Fatalf("invalid int for %s: %q", key, s)
	}
	return n
}
