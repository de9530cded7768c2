package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/sidewayslabs/sideways/errors"
)

// Environment variables recognized by FromEnv. All are optional; absence
// means "use default".
const (
	EnvTracingEnabled = "DD_TRACE_ENABLED"
	EnvMetricsEnabled = "METRICS_ENABLED"
	EnvService        = "DD_SERVICE"
	EnvEnvironment    = "DD_ENV"
	EnvAgentURL       = "DD_TRACE_AGENT_URL"
	EnvLogFilter      = "LOG_FILTER"
	EnvStatsdHost     = "STATSD_HOST"
	EnvStatsdPort     = "STATSD_PORT"
	EnvMetricsPrefix  = "METRICS_PREFIX"
)

// Config is the telemetry configuration record. It is a plain value:
// copy it freely, but treat it as immutable once handed to an initializer.
type Config struct {
	// TracingEnabled enables span export to the trace agent (default: true).
	TracingEnabled bool `yaml:"tracing_enabled" mapstructure:"tracing_enabled"`
	// MetricsEnabled enables the StatsD metrics client (default: true).
	MetricsEnabled bool `yaml:"metrics_enabled" mapstructure:"metrics_enabled"`
	// Service is the service name reported on every exported span.
	Service string `yaml:"service" mapstructure:"service" validate:"required"`
	// Environment is the deployment environment label (dev, staging, prod).
	Environment string `yaml:"environment" mapstructure:"environment" validate:"required"`
	// AgentURL is the trace agent address spans are exported to.
	AgentURL string `yaml:"agent_url" mapstructure:"agent_url" validate:"required,url"`
	// LogFilter is the severity filter expression for the console layer,
	// e.g. "info" or "warn,storage=debug".
	LogFilter string `yaml:"log_filter" mapstructure:"log_filter" validate:"required"`
	// StatsdHost is the StatsD transport host.
	StatsdHost string `yaml:"statsd_host" mapstructure:"statsd_host" validate:"required"`
	// StatsdPort is the StatsD transport port.
	StatsdPort int `yaml:"statsd_port" mapstructure:"statsd_port" validate:"min=1,max=65535"`
	// MetricsPrefix is the namespace prefixed to every emitted metric name.
	MetricsPrefix string `yaml:"metrics_prefix" mapstructure:"metrics_prefix"`
	// Tags are static tags attached to every emitted metric.
	Tags map[string]string `yaml:"tags" mapstructure:"tags"`
}

// Default returns the hardcoded default configuration. The defaults are
// always valid and immediately usable by both initializers.
func Default() Config {
	return Config{
		TracingEnabled: true,
		MetricsEnabled: true,
		Service:        "sideways-service",
		Environment:    "development",
		AgentURL:       "http://localhost:8126",
		LogFilter:      "info",
		StatsdHost:     "localhost",
		StatsdPort:     8125,
		MetricsPrefix:  "sideways",
	}
}

// FromEnv resolves configuration from defaults overlaid with environment
// variables. A field is overridden only if its variable is present and, for
// typed fields, parses successfully; a malformed value is silently ignored.
func FromEnv() Config {
	cfg := Default()
	applyEnv(&cfg)
	return cfg
}

// applyEnv overlays recognized environment variables field-by-field.
func applyEnv(cfg *Config) {
	// The disable variables suppress a feature only on an exact
	// case-insensitive "false". Any other value, including unset,
	// leaves the feature enabled.
	if v, ok := os.LookupEnv(EnvTracingEnabled); ok && strings.ToLower(v) == "false" {
		cfg.TracingEnabled = false
	}
	if v, ok := os.LookupEnv(EnvMetricsEnabled); ok && strings.ToLower(v) == "false" {
		cfg.MetricsEnabled = false
	}

	if v, ok := os.LookupEnv(EnvService); ok {
		cfg.Service = v
	}
	if v, ok := os.LookupEnv(EnvEnvironment); ok {
		cfg.Environment = v
	}
	if v, ok := os.LookupEnv(EnvAgentURL); ok {
		cfg.AgentURL = v
	}
	if v, ok := os.LookupEnv(EnvLogFilter); ok {
		cfg.LogFilter = v
	}
	if v, ok := os.LookupEnv(EnvStatsdHost); ok {
		cfg.StatsdHost = v
	}
	if v, ok := os.LookupEnv(EnvStatsdPort); ok {
		if port, err := strconv.Atoi(v); err == nil && port >= 0 && port <= 65535 {
			cfg.StatsdPort = port
		}
	}
	if v, ok := os.LookupEnv(EnvMetricsPrefix); ok {
		cfg.MetricsPrefix = v
	}
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks the record against its struct tags. Resolved records
// (defaults, env, builder) always pass; Validate exists for callers that
// assemble a Config by hand.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, "invalid telemetry configuration", err)
	}
	return nil
}

// cloneTags returns a copy of the tag map so records stay independent values.
func cloneTags(tags map[string]string) map[string]string {
	if len(tags) == 0 {
		return nil
	}
	out := make(map[string]string, len(tags))
	for k, v := range tags {
		out[k] = v
	}
	return out
}
