// Package config resolves telemetry configuration from defaults,
// environment variables, optional config files, and a fluent builder.
//
// Resolution is total: malformed values are ignored in favor of the prior
// value, so the product is always a valid, immediately usable record.
//
//	cfg := config.FromEnv()
//
//	cfg := config.NewBuilder().
//	    Service("orders-api").
//	    Tag("region", "us-east-1").
//	    Build()
package config
