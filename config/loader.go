package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// loadOptions holds optional file overrides for Load.
type loadOptions struct {
	configFile string
	envFile    string
}

// LoadOption is a functional option for Load.
type LoadOption func(*loadOptions)

// WithConfigFile overlays a YAML config file before the environment is read.
func WithConfigFile(path string) LoadOption {
	return func(lo *loadOptions) { lo.configFile = path }
}

// WithEnvFile loads a .env file into the process environment before the
// environment overlay runs.
func WithEnvFile(path string) LoadOption {
	return func(lo *loadOptions) { lo.envFile = path }
}

// Load resolves configuration in layers: hardcoded defaults, then an optional
// YAML file, then environment variables. It follows the same tolerance policy
// as FromEnv: a missing or malformed source is reported as a warning and
// skipped, and the result is always a fully valid record.
func Load(opts ...LoadOption) Config {
	var lo loadOptions
	for _, opt := range opts {
		opt(&lo)
	}

	cfg := Default()

	if lo.envFile != "" {
		if err := godotenv.Load(lo.envFile); err != nil {
			fmt.Fprintf(os.Stderr, "[config] warning: failed to load env file %s: %v\n", lo.envFile, err)
		}
	}
	if lo.configFile != "" {
		applyFile(&cfg, lo.configFile)
	}

	applyEnv(&cfg)
	return cfg
}

// applyFile overlays values from a YAML file field-by-field. Keys absent
// from the file leave the current value untouched; a port outside the valid
// range is ignored like a malformed environment value.
func applyFile(cfg *Config, path string) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		fmt.Fprintf(os.Stderr, "[config] warning: failed to load config file %s: %v\n", path, err)
		return
	}

	if v.IsSet("tracing_enabled") {
		cfg.TracingEnabled = v.GetBool("tracing_enabled")
	}
	if v.IsSet("metrics_enabled") {
		cfg.MetricsEnabled = v.GetBool("metrics_enabled")
	}
	if v.IsSet("service") {
		cfg.Service = v.GetString("service")
	}
	if v.IsSet("environment") {
		cfg.Environment = v.GetString("environment")
	}
	if v.IsSet("agent_url") {
		cfg.AgentURL = v.GetString("agent_url")
	}
	if v.IsSet("log_filter") {
		cfg.LogFilter = v.GetString("log_filter")
	}
	if v.IsSet("statsd_host") {
		cfg.StatsdHost = v.GetString("statsd_host")
	}
	if v.IsSet("statsd_port") {
		if port := v.GetInt("statsd_port"); port >= 0 && port <= 65535 {
			cfg.StatsdPort = port
		}
	}
	if v.IsSet("metrics_prefix") {
		cfg.MetricsPrefix = v.GetString("metrics_prefix")
	}
	if v.IsSet("tags") {
		for k, val := range v.GetStringMapString("tags") {
			if cfg.Tags == nil {
				cfg.Tags = make(map[string]string)
			}
			cfg.Tags[k] = val
		}
	}
}
