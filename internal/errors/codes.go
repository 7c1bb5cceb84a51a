package errors

// Common error codes
const (
	// System errors
	ErrInternal        ErrorCode = "internal_error"
	ErrInvalidArgument ErrorCode = "invalid_argument"
	ErrAlreadyRunning  ErrorCode = "already_running"

	// Configuration errors
	ErrUsage           ErrorCode = "wrong_argument_count"
	ErrInvalidConfig   ErrorCode = "invalid_configuration"
	ErrReadConfig      ErrorCode = "read_config_failed"
	ErrInvalidPeriod   ErrorCode = "invalid_period"
	ErrInvalidLogLevel ErrorCode = "invalid_log_level"

	// Real-time environment errors
	ErrMemoryLock  ErrorCode = "memory_lock_failed"
	ErrCPUAffinity ErrorCode = "cpu_affinity_failed"
	ErrSchedPolicy ErrorCode = "sched_policy_failed"

	// Acquisition errors
	ErrScanFailed ErrorCode = "scan_failed"

	// Queue errors
	ErrQueueClosed ErrorCode = "queue_closed"

	// Persistence errors
	ErrReportWrite ErrorCode = "report_write_failed"
	ErrStorageInit ErrorCode = "storage_init_failed"

	// Lifecycle errors
	ErrInitFailed     ErrorCode = "initialization_failed"
	ErrShutdownFailed ErrorCode = "shutdown_failed"
)

// Common error messages
var errorMessages = map[ErrorCode]string{
	ErrInternal:        "Internal error occurred",
	ErrInvalidArgument: "Invalid argument provided",
	ErrAlreadyRunning:  "Another instance is already running",
	ErrUsage:           "Wrong number of arguments",
	ErrInvalidConfig:   "Invalid configuration",
	ErrReadConfig:      "Failed to read config file",
	ErrInvalidPeriod:   "Invalid sampling period",
	ErrInvalidLogLevel: "Invalid log level",
	ErrMemoryLock:      "Failed to lock process memory",
	ErrCPUAffinity:     "Failed to set CPU affinity",
	ErrSchedPolicy:     "Failed to set real-time scheduling policy",
	ErrScanFailed:      "Scan command failed",
	ErrQueueClosed:     "Sample queue is closed",
	ErrReportWrite:     "Failed to write report",
	ErrStorageInit:     "Failed to initialize storage",
	ErrInitFailed:      "Initialization failed",
	ErrShutdownFailed:  "Shutdown failed",
}

// GetErrorMessage returns the message for a given error code
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}

	return string(code)
}
