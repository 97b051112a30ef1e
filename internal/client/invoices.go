package client

import (
	"context"
	"fmt"
	"strings"

	"github.com/magarcia/cuentica-sdk/internal/http"
	"github.com/magarcia/cuentica-sdk/pkg/cuentica"
)

// InvoicesClient implements cuentica.InvoicesClient
type InvoicesClient struct {
	httpClient *http.Client
}

// NewInvoicesClient creates a new invoices client
func NewInvoicesClient(httpClient *http.Client) *InvoicesClient {
	return &InvoicesClient{httpClient: httpClient}
}

// List implements cuentica.InvoicesClient.List. A nil Tags slice omits the
// parameter entirely; an empty non-nil slice sends an explicitly empty
// "tags=". Multiple tags are comma-joined before URL encoding.
func (c *InvoicesClient) List(ctx context.Context, opts *cuentica.InvoiceListOptions) ([]cuentica.Invoice, error) {
	query := cuentica.NewParams()

	if opts != nil {
		if opts.Tags != nil {
			query.Add("tags", strings.Join(opts.Tags, ","))
		}

		if opts.IssuedFrom != "" {
			query.Add("issued_from", opts.IssuedFrom)
		}

		if opts.IssuedTo != "" {
			query.Add("issued_to", opts.IssuedTo)
		}

		if opts.Customer > 0 {
			query.AddInt("customer", opts.Customer)
		}

		if opts.Serie != "" {
			query.Add("serie", opts.Serie)
		}

		if opts.Page > 0 {
			query.AddInt("page", opts.Page)
		}

		if opts.PageSize > 0 {
			query.AddInt("page_size", opts.PageSize)
		}
	}

	resp, err := c.httpClient.Get(ctx, "/invoice", query)
	if err != nil {
		return nil, fmt.Errorf("listing invoices: %w", err)
	}

	var invoices []cuentica.Invoice
	if err := resp.DecodeJSON(&invoices); err != nil {
		return nil, fmt.Errorf("parsing invoices list response: %w", err)
	}

	return invoices, nil
}

// Get implements cuentica.InvoicesClient.Get
func (c *InvoicesClient) Get(ctx context.Context, id int) (*cuentica.Invoice, error) {
	path := fmt.Sprintf("/invoice/%d", id)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting invoice: %w", err)
	}

	var invoice cuentica.Invoice
	if err := resp.DecodeJSON(&invoice); err != nil {
		return nil, fmt.Errorf("parsing invoice response: %w", err)
	}

	return &invoice, nil
}

// Create implements cuentica.InvoicesClient.Create
func (c *InvoicesClient) Create(ctx context.Context, request *cuentica.InvoiceRequest) (*cuentica.Invoice, error) {
	resp, err := c.httpClient.Post(ctx, "/invoice", request)
	if err != nil {
		return nil, fmt.Errorf("creating invoice: %w", err)
	}

	var invoice cuentica.Invoice
	if err := resp.DecodeJSON(&invoice); err != nil {
		return nil, fmt.Errorf("parsing invoice response: %w", err)
	}

	return &invoice, nil
}

// Update implements cuentica.InvoicesClient.Update
func (c *InvoicesClient) Update(ctx context.Context, id int, request *cuentica.InvoiceRequest) (*cuentica.Invoice, error) {
	path := fmt.Sprintf("/invoice/%d", id)

	resp, err := c.httpClient.Put(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("updating invoice: %w", err)
	}

	var invoice cuentica.Invoice
	if err := resp.DecodeJSON(&invoice); err != nil {
		return nil, fmt.Errorf("parsing invoice response: %w", err)
	}

	return &invoice, nil
}

// Delete implements cuentica.InvoicesClient.Delete
func (c *InvoicesClient) Delete(ctx context.Context, id int) error {
	path := fmt.Sprintf("/invoice/%d", id)

	_, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		return fmt.Errorf("deleting invoice: %w", err)
	}

	return nil
}

// GetPDF implements cuentica.InvoicesClient.GetPDF. The document comes back
// as raw bytes; rate-limit and error classification match the JSON
// operations.
func (c *InvoicesClient) GetPDF(ctx context.Context, id int) ([]byte, error) {
	path := fmt.Sprintf("/invoice/%d/pdf", id)

	body, err := c.httpClient.GetRaw(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("getting invoice pdf: %w", err)
	}

	return body, nil
}
