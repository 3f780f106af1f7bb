package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when a
// configuration group is incomplete or invalid.
var (
	// ErrInvalidServerConfigs indicates an out-of-range HTTP port.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidStorageConfigs indicates an empty database DSN.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs indicates an unknown log level.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidAdapterConfigs indicates a SWAPI URL without scheme or host.
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidWorkerConfigs indicates a non-positive health interval while
	// the gRPC health server is enabled.
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
