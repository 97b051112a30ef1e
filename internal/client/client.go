// Package client implements the cuentica.Client interface on top of the
// internal HTTP transport.
package client

import (
	"os"
	"strings"

	"github.com/magarcia/cuentica-sdk/internal/constants"
	"github.com/magarcia/cuentica-sdk/internal/http"
	"github.com/magarcia/cuentica-sdk/pkg/cuentica"
)

// Client implements the cuentica.Client interface.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     cuentica.Logger

	// Resource clients
	company   cuentica.CompanyClient
	customers cuentica.CustomersClient
	providers cuentica.ProvidersClient
	invoices  cuentica.InvoicesClient
	expenses  cuentica.ExpensesClient
	documents cuentica.DocumentsClient
	transfers cuentica.TransfersClient
	tags      cuentica.TagsClient
}

// New creates a Cuentica API client from config. The token is resolved at
// construction, Token first and the CUENTICA_API_TOKEN environment variable
// second; no client is returned without one.
func New(config *cuentica.Config) (*Client, error) {
	if config == nil {
		return nil, cuentica.ErrConfigRequired
	}

	token := resolveToken(config)
	if token == "" {
		return nil, cuentica.ErrTokenRequired
	}

	baseURL := normalizeEndpoint(config.BaseURL)

	httpClient := http.NewClient(baseURL, token, httpOptions(config)...)

	client := &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		logger:     config.Logger,
	}

	client.initializeResourceClients()

	if client.logger != nil {
		client.logger.Debug("cuentica client created", map[string]interface{}{
			"endpoint": baseURL,
		})
	}

	return client, nil
}

// resolveToken returns the configured token, falling back to the
// environment.
func resolveToken(config *cuentica.Config) string {
	if config.Token != "" {
		return config.Token
	}

	getenv := config.Getenv
	if getenv == nil {
		getenv = os.Getenv
	}

	return getenv(cuentica.EnvToken)
}

// normalizeEndpoint applies the default endpoint, trims a trailing slash,
// and adds https:// when no scheme is present.
func normalizeEndpoint(endpoint string) string {
	if endpoint == "" {
		return constants.DefaultAPIEndpoint
	}

	endpoint = strings.TrimSuffix(endpoint, "/")

	if !strings.Contains(endpoint, "://") {
		endpoint = "https://" + endpoint
	}

	return endpoint
}

// httpOptions builds HTTP client options from config.
func httpOptions(config *cuentica.Config) []http.Option {
	var opts []http.Option

	if config.Logger != nil {
		opts = append(opts, http.WithLogger(config.Logger))
	}

	if config.Debug {
		opts = append(opts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		opts = append(opts, http.WithUserAgent(config.UserAgent))
	}

	if config.HTTPTimeout > 0 {
		opts = append(opts, http.WithHTTPTimeout(config.HTTPTimeout))
	}

	return opts
}

// initializeResourceClients creates all resource-specific clients.
func (c *Client) initializeResourceClients() {
	c.company = NewCompanyClient(c.httpClient)
	c.customers = NewCustomersClient(c.httpClient)
	c.providers = NewProvidersClient(c.httpClient)
	c.invoices = NewInvoicesClient(c.httpClient)
	c.expenses = NewExpensesClient(c.httpClient)
	c.documents = NewDocumentsClient(c.httpClient)
	c.transfers = NewTransfersClient(c.httpClient)
	c.tags = NewTagsClient(c.httpClient)
}

// Company returns the company client.
func (c *Client) Company() cuentica.CompanyClient {
	return c.company
}

// Customers returns the customers client.
func (c *Client) Customers() cuentica.CustomersClient {
	return c.customers
}

// Providers returns the providers client.
func (c *Client) Providers() cuentica.ProvidersClient {
	return c.providers
}

// Invoices returns the invoices client.
func (c *Client) Invoices() cuentica.InvoicesClient {
	return c.invoices
}

// Expenses returns the expenses client.
func (c *Client) Expenses() cuentica.ExpensesClient {
	return c.expenses
}

// Documents returns the documents client.
func (c *Client) Documents() cuentica.DocumentsClient {
	return c.documents
}

// Transfers returns the transfers client.
func (c *Client) Transfers() cuentica.TransfersClient {
	return c.transfers
}

// Tags returns the tags client.
func (c *Client) Tags() cuentica.TagsClient {
	return c.tags
}
