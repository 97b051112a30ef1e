package constants

import "errors"

// CLI configuration errors.
var (
	ErrNoTokenConfigured = errors.New("no API token configured, use 'cuentica config set-token' or set CUENTICA_API_TOKEN")
	ErrTokenEmpty        = errors.New("token must not be empty")
)

// Output format errors.
var (
	ErrUnknownOutputFormat = errors.New("unknown output format, expected json, yaml, or table")
)

// File system errors.
var (
	ErrNotRegularFile             = errors.New("path is not a regular file")
	ErrDirectoryTraversalDetected = errors.New("directory traversal detected in file path")
)
