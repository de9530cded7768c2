// Package errors provides typed errors for telemetry initialization.
// Errors carry a machine-readable code so callers can branch on failure
// class (subscriber install, socket bind, sink creation) without string
// matching.
package errors
