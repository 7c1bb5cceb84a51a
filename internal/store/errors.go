package store

import "codeberg.org/ssidwatch/ssidwatch/internal/errors"

const (
	// Configuration Errors
	ErrInvalidConfig = errors.ErrorCode("store_invalid_config")
	ErrInvalidDBPath = errors.ErrorCode("store_invalid_db_path")

	// Report Errors
	ErrReportWrite = errors.ErrReportWrite

	// Storage Errors
	ErrStorageInit      = errors.ErrorCode("store_storage_init_failed")
	ErrStorageClose     = errors.ErrorCode("store_storage_close_failed")
	ErrSchemaInitFailed = errors.ErrorCode("store_schema_init_failed")
	ErrRecordFailed     = errors.ErrorCode("store_record_failed")

	// Operation Errors
	ErrOperationTimeout = errors.ErrorCode("store_operation_timeout")
)
