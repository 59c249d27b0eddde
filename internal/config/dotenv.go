// Package config resolves the small set of environment-driven settings the
// CLI and driver accept, loading an optional .env file the same way the
// rest of the corpus's CLIs do.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

func init() {
	// .env is optional; a missing file is not an error.
	_ = godotenv.Load()
}

// Workers returns the worker count from MEDIANFILTER_WORKERS, or def if the
// variable is unset or not a positive integer.
func Workers(def int) int {
	v, ok := os.LookupEnv("MEDIANFILTER_WORKERS")
	if !ok {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return def
	}
	return n
}

// LogLevel returns MEDIANFILTER_LOG_LEVEL, or "info" if unset.
func LogLevel() string {
	v := os.Getenv("MEDIANFILTER_LOG_LEVEL")
	if v == "" {
		return "info"
	}
	return v
}
