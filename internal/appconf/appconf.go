package appconf

import (
	"log/slog"
	"strings"
)

// Environment is the deployment environment the service runs in.
type Environment int

const (
	Development Environment = iota
	Test
	Production
)

// EnvFlagToEnvironment maps the -env flag value to an Environment.
// Unknown values fall back to Development.
func EnvFlagToEnvironment(env string) Environment {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "test":
		return Test
	case "production", "prod":
		return Production
	default:
		return Development
	}
}

func (e Environment) String() string {
	switch e {
	case Test:
		return "test"
	case Production:
		return "production"
	default:
		return "development"
	}
}

// Config holds all the configuration settings for the Application.
type Config struct {
	Port        int
	Env         Environment
	DatasetPath string
	// RateLimit is the number of requests per second allowed per client.
	// Zero blocks every request, a negative value disables limiting.
	RateLimit int
	// TrustProxy makes the rate limiter key clients by the X-Forwarded-For
	// header. Only enable it behind a proxy that sets that header itself.
	TrustProxy bool
	LogLevel   slog.Level
}

// Defaults used when neither a flag nor a GWP_* variable is set.
const (
	DefaultPort        = 4000
	DefaultEnv         = "development"
	DefaultDatasetPath = "data/gwpByCountry.csv"
	DefaultRateLimit   = 100
	DefaultLogLevel    = "info"
	DefaultTrustProxy  = false
)

// DebugEnabled reports whether debug endpoints may be served.
func (c Config) DebugEnabled() bool {
	return c.Env != Production
}
