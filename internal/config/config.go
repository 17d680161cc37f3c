// Package config loads application configuration from environment
// variables.  Every knob has a default so the server starts with no
// environment at all; a .env file is honored when present (loaded by
// main via godotenv).
package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds all runtime configuration values.  Each field
// corresponds to an environment variable.
type Config struct {
	Env             string // application environment (e.g. "dev", "prod")
	Port            string // HTTP port to listen on
	SeatMapBackend  string // "open" or "grid" seat map backend
	CatalogFile     string // optional JSON catalog path; empty uses the built-in list
	ExportFile      string // target path for booking exports
	TicketsDir      string // directory for ticket files; empty disables tickets
	EventsEnabled   bool   // publish booking events to RabbitMQ
	ConsumerEnabled bool   // run the booking.confirmed log consumer
}

// Load reads the configuration from the environment.
func Load() Config {
	return Config{
		Env:             envStr("APP_ENV", "dev"),
		Port:            envStr("APP_PORT", "8080"),
		SeatMapBackend:  envStr("SEATMAP_BACKEND", "open"),
		CatalogFile:     envStr("CATALOG_FILE", ""),
		ExportFile:      envStr("EXPORT_FILE", "bookings_export.json"),
		TicketsDir:      envStr("TICKETS_DIR", ""),
		EventsEnabled:   envBool("EVENTS_ENABLED", false),
		ConsumerEnabled: envBool("CONSUMER_ENABLED", false),
	}
}

// Environment lookup helpers shared by the config loaders in this
// package.  Missing or malformed values fall back to the default.

func envStr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func envBool(k string, d bool) bool {
	v := os.Getenv(k)
	if v == "" {
		return d
	}
	switch v {
	case "1", "true", "TRUE", "True", "yes", "YES", "on", "ON":
		return true
	case "0", "false", "FALSE", "False", "no", "NO", "off", "OFF":
		return false
	}
	return d
}

func envInt(k string, d int) int {
	v := os.Getenv(k)
	if v == "" {
		return d
	}
	if n, err := strconv.Atoi(v); err == nil {
		return n
	}
	return d
}

func envDur(k string, d time.Duration) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		return d
	}
	if dur, err := time.ParseDuration(v); err == nil {
		return dur
	}
	return d
}
