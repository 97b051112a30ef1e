package client

import (
	"context"
	"fmt"

	"github.com/magarcia/cuentica-sdk/internal/constants"
	"github.com/magarcia/cuentica-sdk/internal/http"
	"github.com/magarcia/cuentica-sdk/pkg/cuentica"
)

// CustomersClient implements cuentica.CustomersClient
type CustomersClient struct {
	httpClient *http.Client
}

// NewCustomersClient creates a new customers client
func NewCustomersClient(httpClient *http.Client) *CustomersClient {
	return &CustomersClient{httpClient: httpClient}
}

// List implements cuentica.CustomersClient.List. Pagination defaults to
// page 1 with 100 entries; the optional search term goes first in the query
// string.
func (c *CustomersClient) List(ctx context.Context, opts *cuentica.CustomerListOptions) ([]cuentica.Customer, error) {
	query := cuentica.NewParams()

	if opts != nil && opts.Q != "" {
		query.Add("q", opts.Q)
	}

	page := constants.DefaultPage
	pageSize := constants.DefaultPageSize

	if opts != nil && opts.Page > 0 {
		page = opts.Page
	}

	if opts != nil && opts.PageSize > 0 {
		pageSize = opts.PageSize
	}

	query.AddInt("page", page).AddInt("page_size", pageSize)

	resp, err := c.httpClient.Get(ctx, "/customer", query)
	if err != nil {
		return nil, fmt.Errorf("listing customers: %w", err)
	}

	var customers []cuentica.Customer
	if err := resp.DecodeJSON(&customers); err != nil {
		return nil, fmt.Errorf("parsing customers list response: %w", err)
	}

	return customers, nil
}

// Get implements cuentica.CustomersClient.Get
func (c *CustomersClient) Get(ctx context.Context, id int) (*cuentica.Customer, error) {
	path := fmt.Sprintf("/customer/%d", id)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting customer: %w", err)
	}

	var customer cuentica.Customer
	if err := resp.DecodeJSON(&customer); err != nil {
		return nil, fmt.Errorf("parsing customer response: %w", err)
	}

	return &customer, nil
}

// Create implements cuentica.CustomersClient.Create
func (c *CustomersClient) Create(ctx context.Context, request *cuentica.CustomerRequest) (*cuentica.Customer, error) {
	resp, err := c.httpClient.Post(ctx, "/customer", request)
	if err != nil {
		return nil, fmt.Errorf("creating customer: %w", err)
	}

	var customer cuentica.Customer
	if err := resp.DecodeJSON(&customer); err != nil {
		return nil, fmt.Errorf("parsing customer response: %w", err)
	}

	return &customer, nil
}

// Update implements cuentica.CustomersClient.Update
func (c *CustomersClient) Update(ctx context.Context, id int, request *cuentica.CustomerRequest) (*cuentica.Customer, error) {
	path := fmt.Sprintf("/customer/%d", id)

	resp, err := c.httpClient.Put(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("updating customer: %w", err)
	}

	var customer cuentica.Customer
	if err := resp.DecodeJSON(&customer); err != nil {
		return nil, fmt.Errorf("parsing customer response: %w", err)
	}

	return &customer, nil
}

// Delete implements cuentica.CustomersClient.Delete
func (c *CustomersClient) Delete(ctx context.Context, id int) error {
	path := fmt.Sprintf("/customer/%d", id)

	_, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		return fmt.Errorf("deleting customer: %w", err)
	}

	return nil
}
