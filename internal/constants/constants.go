package constants

import "time"

// API endpoint and wire headers.
const (
	// DefaultAPIEndpoint is the production Cuentica API address.
	DefaultAPIEndpoint = "https://api.cuentica.com"

	// AuthHeader carries the API token on every request.
	AuthHeader = "X-AUTH-TOKEN"

	// RateLimitResetHeader carries the window reset time (unix seconds) on
	// 429 responses.
	RateLimitResetHeader = "X-RateLimit-Reset"

	// ContentTypeJSON is sent whenever a request carries a body.
	ContentTypeJSON = "application/json"
)

// Pagination defaults for customer and provider listings.
const (
	// DefaultPage is the page requested when none is given.
	DefaultPage = 1

	// DefaultPageSize is the page size requested when none is given.
	DefaultPageSize = 100
)

// Documented service limits. The SDK does not pace requests itself; these
// exist so callers and the CLI can report them.
const (
	// RateLimitWindowRequests is the request allowance per rolling window.
	RateLimitWindowRequests = 600

	// RateLimitWindow is the rolling window for RateLimitWindowRequests.
	RateLimitWindow = 5 * time.Minute

	// RateLimitDailyRequests is the daily request allowance.
	RateLimitDailyRequests = 7200
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second
)

// File and directory permissions for CLI configuration.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)

// Display constants for CLI output.
const (
	// MaskedSecret is used to hide sensitive information.
	MaskedSecret = "***"

	// NotAvailable is used when information is not available.
	NotAvailable = "N/A"

	// JSONIndentSize is the number of spaces for JSON indentation.
	JSONIndentSize = 2
)

// Output format constants.
const (
	// FormatJSON for JSON output format.
	FormatJSON = "json"

	// FormatYAML for YAML output format.
	FormatYAML = "yaml"

	// FormatTable for tabular output format.
	FormatTable = "table"
)
