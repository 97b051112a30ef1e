package cuentica

import (
	"context"
	"time"
)

// Client is the full Cuentica API surface. Implementations are safe for
// concurrent use; the configuration is immutable after construction.
type Client interface {
	Company() CompanyClient
	Customers() CustomersClient
	Providers() ProvidersClient
	Invoices() InvoicesClient
	Expenses() ExpensesClient
	Documents() DocumentsClient
	Transfers() TransfersClient
	Tags() TagsClient
}

// CompanyClient reads the account's company profile.
type CompanyClient interface {
	Get(ctx context.Context) (*Company, error)
}

// CustomersClient manages customers.
type CustomersClient interface {
	List(ctx context.Context, opts *CustomerListOptions) ([]Customer, error)
	Get(ctx context.Context, id int) (*Customer, error)
	Create(ctx context.Context, request *CustomerRequest) (*Customer, error)
	Update(ctx context.Context, id int, request *CustomerRequest) (*Customer, error)
	Delete(ctx context.Context, id int) error
}

// ProvidersClient manages providers.
type ProvidersClient interface {
	List(ctx context.Context, opts *ProviderListOptions) ([]Provider, error)
	Get(ctx context.Context, id int) (*Provider, error)
	Create(ctx context.Context, request *ProviderRequest) (*Provider, error)
	Update(ctx context.Context, id int, request *ProviderRequest) (*Provider, error)
	Delete(ctx context.Context, id int) error
}

// InvoicesClient manages issued invoices.
type InvoicesClient interface {
	List(ctx context.Context, opts *InvoiceListOptions) ([]Invoice, error)
	Get(ctx context.Context, id int) (*Invoice, error)
	Create(ctx context.Context, request *InvoiceRequest) (*Invoice, error)
	Update(ctx context.Context, id int, request *InvoiceRequest) (*Invoice, error)
	Delete(ctx context.Context, id int) error
	// GetPDF returns the rendered invoice document as raw bytes.
	GetPDF(ctx context.Context, id int) ([]byte, error)
}

// ExpensesClient manages expenses.
type ExpensesClient interface {
	List(ctx context.Context, opts *ExpenseListOptions) ([]Expense, error)
	Get(ctx context.Context, id int) (*Expense, error)
	Create(ctx context.Context, request *ExpenseRequest) (*Expense, error)
	Update(ctx context.Context, id int, request *ExpenseRequest) (*Expense, error)
	Delete(ctx context.Context, id int) error
}

// DocumentsClient manages standalone documents and their attachments.
type DocumentsClient interface {
	List(ctx context.Context, opts *DocumentListOptions) ([]Document, error)
	Get(ctx context.Context, id int) (*Document, error)
	Create(ctx context.Context, request *DocumentRequest) (*Document, error)
	Update(ctx context.Context, id int, request *DocumentRequest) (*Document, error)
	Delete(ctx context.Context, id int) error
}

// TransfersClient manages transfers between accounts.
type TransfersClient interface {
	List(ctx context.Context, opts *TransferListOptions) ([]Transfer, error)
	Get(ctx context.Context, id int) (*Transfer, error)
	Create(ctx context.Context, request *TransferRequest) (*Transfer, error)
	Update(ctx context.Context, id int, request *TransferRequest) (*Transfer, error)
	Delete(ctx context.Context, id int) error
}

// TagsClient lists the tags in use across the account.
type TagsClient interface {
	List(ctx context.Context) ([]string, error)
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// EnvToken is the environment variable consulted when Config.Token is empty.
const EnvToken = "CUENTICA_API_TOKEN"

// Config represents client configuration for building a cuentica.Client.
//
// The token is resolved exactly once, at construction: Token if set, otherwise
// the CUENTICA_API_TOKEN environment variable (through Getenv so tests can
// inject a lookup). Construction fails with ErrTokenRequired when neither
// yields a value — a client is never returned half-initialized.
type Config struct {
	// Token is the Cuentica API token sent as X-AUTH-TOKEN on every request.
	Token string

	// BaseURL overrides the API endpoint. Defaults to
	// https://api.cuentica.com. cuenticaclient.New normalizes this value by
	// trimming a trailing slash and adding "https://" if no scheme is present.
	BaseURL string

	// Getenv is the environment lookup used for the token fallback. Defaults
	// to os.Getenv. Injectable for tests.
	Getenv func(key string) string

	// HTTPTimeout is the timeout applied to the underlying HTTP client. Zero
	// means the default of 30 seconds; use context deadlines for per-call
	// control.
	HTTPTimeout time.Duration

	// Debug enables verbose per-request logging (method, URL, body) when a
	// Logger is provided.
	Debug bool

	// Logger: optional structured logger used by the HTTP layer.
	Logger Logger

	// UserAgent overrides the User-Agent header. Empty means the SDK default.
	UserAgent string
}
