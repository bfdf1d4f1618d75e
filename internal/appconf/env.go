package appconf

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Environment variables read as flag defaults.
const (
	EnvPort        = "GWP_PORT"
	EnvEnvironment = "GWP_ENV"
	EnvDatasetPath = "GWP_DATASET_PATH"
	EnvRateLimit   = "GWP_RATE_LIMIT"
	EnvLogLevel    = "GWP_LOG_LEVEL"
	EnvTrustProxy  = "GWP_TRUST_PROXY"
)

// StringFromEnv returns the trimmed value of key, or fallback when unset or blank.
func StringFromEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

// IntFromEnv returns the integer value of key, or fallback when unset.
// A set but malformed value is an error rather than a silent fallback.
func IntFromEnv(key string, fallback int) (int, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback, fmt.Errorf("invalid %s value %q: %w", key, v, err)
	}
	return n, nil
}

// BoolFromEnv returns the boolean value of key, or fallback when unset.
// A set but malformed value is an error.
func BoolFromEnv(key string, fallback bool) (bool, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback, fmt.Errorf("invalid %s value %q: %w", key, v, err)
	}
	return b, nil
}
