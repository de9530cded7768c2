package metrics

import "time"

// Package-level emission functions delegate to the ambient client. When no
// client is installed every call is a silent no-op, so instrumented code
// never has to guard against missing telemetry.

// Incr increments a counter by one.
func Incr(name string, tags []string, rate float64) error {
	if c := Client(); c != nil {
		return c.Incr(name, tags, rate)
	}
	return nil
}

// Decr decrements a counter by one.
func Decr(name string, tags []string, rate float64) error {
	if c := Client(); c != nil {
		return c.Decr(name, tags, rate)
	}
	return nil
}

// Count adds value to a counter.
func Count(name string, value int64, tags []string, rate float64) error {
	if c := Client(); c != nil {
		return c.Count(name, value, tags, rate)
	}
	return nil
}

// Gauge records the current value of a gauge.
func Gauge(name string, value float64, tags []string, rate float64) error {
	if c := Client(); c != nil {
		return c.Gauge(name, value, tags, rate)
	}
	return nil
}

// Histogram records a value for statistical distribution on the agent.
func Histogram(name string, value float64, tags []string, rate float64) error {
	if c := Client(); c != nil {
		return c.Histogram(name, value, tags, rate)
	}
	return nil
}

// Distribution records a value for global statistical distribution.
func Distribution(name string, value float64, tags []string, rate float64) error {
	if c := Client(); c != nil {
		return c.Distribution(name, value, tags, rate)
	}
	return nil
}

// Set counts unique occurrences of value.
func Set(name string, value string, tags []string, rate float64) error {
	if c := Client(); c != nil {
		return c.Set(name, value, tags, rate)
	}
	return nil
}

// Timing records a duration.
func Timing(name string, value time.Duration, tags []string, rate float64) error {
	if c := Client(); c != nil {
		return c.Timing(name, value, tags, rate)
	}
	return nil
}

// Flush forces buffered metrics out to the transport.
func Flush() error {
	if c := Client(); c != nil {
		return c.Flush()
	}
	return nil
}

// Close flushes and closes the ambient client's transport.
func Close() error {
	if c := Client(); c != nil {
		return c.Close()
	}
	return nil
}
