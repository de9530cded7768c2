// Package metrics installs and exposes the ambient StatsD client.
//
// Init wires the DataDog statsd client to the configured UDP target,
// applies the namespace prefix and static tags, and publishes the client
// process-wide. Emission goes through package-level functions so callers
// never import the underlying client library:
//
//	metrics.Incr("requests.handled", []string{"status:success"}, 1)
//	metrics.Timing("db.query", elapsed, nil, 1)
//
// Before Init (or after a failed one) every emission is a silent no-op.
package metrics
