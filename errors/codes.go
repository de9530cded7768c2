package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Tracing errors
const (
	// ErrCodeSubscriberInstalled indicates a global subscriber is already installed.
	// Installing twice in one process is an unrecoverable configuration error.
	ErrCodeSubscriberInstalled ErrorCode = "SUBSCRIBER_INSTALLED"
	// ErrCodeExporterInit indicates the span exporter could not be constructed.
	ErrCodeExporterInit ErrorCode = "EXPORTER_INIT_FAILED"
)

// Metrics errors
const (
	// ErrCodeSocketBind indicates the local UDP endpoint could not be acquired.
	ErrCodeSocketBind ErrorCode = "SOCKET_BIND_FAILED"
	// ErrCodeSinkCreation indicates the metric sink could not be constructed.
	ErrCodeSinkCreation ErrorCode = "SINK_CREATION_FAILED"
	// ErrCodeAlreadyInitialized indicates the ambient metrics client was already installed.
	ErrCodeAlreadyInitialized ErrorCode = "ALREADY_INITIALIZED"
)

// Configuration errors
const (
	// ErrCodeInvalidConfig indicates a configuration record failed validation.
	ErrCodeInvalidConfig ErrorCode = "INVALID_CONFIG"
)
