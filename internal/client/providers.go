package client

import (
	"context"
	"fmt"

	"github.com/magarcia/cuentica-sdk/internal/constants"
	"github.com/magarcia/cuentica-sdk/internal/http"
	"github.com/magarcia/cuentica-sdk/pkg/cuentica"
)

// ProvidersClient implements cuentica.ProvidersClient
type ProvidersClient struct {
	httpClient *http.Client
}

// NewProvidersClient creates a new providers client
func NewProvidersClient(httpClient *http.Client) *ProvidersClient {
	return &ProvidersClient{httpClient: httpClient}
}

// List implements cuentica.ProvidersClient.List. Pagination defaults match
// the customers listing.
func (c *ProvidersClient) List(ctx context.Context, opts *cuentica.ProviderListOptions) ([]cuentica.Provider, error) {
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

	resp, err := c.httpClient.Get(ctx, "/provider", query)
	if err != nil {
		return nil, fmt.Errorf("listing providers: %w", err)
	}

	var providers []cuentica.Provider
	if err := resp.DecodeJSON(&providers); err != nil {
		return nil, fmt.Errorf("parsing providers list response: %w", err)
	}

	return providers, nil
}

// Get implements cuentica.ProvidersClient.Get
func (c *ProvidersClient) Get(ctx context.Context, id int) (*cuentica.Provider, error) {
	path := fmt.Sprintf("/provider/%d", id)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting provider: %w", err)
	}

	var provider cuentica.Provider
	if err := resp.DecodeJSON(&provider); err != nil {
		return nil, fmt.Errorf("parsing provider response: %w", err)
	}

	return &provider, nil
}

// Create implements cuentica.ProvidersClient.Create
func (c *ProvidersClient) Create(ctx context.Context, request *cuentica.ProviderRequest) (*cuentica.Provider, error) {
	resp, err := c.httpClient.Post(ctx, "/provider", request)
	if err != nil {
		return nil, fmt.Errorf("creating provider: %w", err)
	}

	var provider cuentica.Provider
	if err := resp.DecodeJSON(&provider); err != nil {
		return nil, fmt.Errorf("parsing provider response: %w", err)
	}

	return &provider, nil
}

// Update implements cuentica.ProvidersClient.Update
func (c *ProvidersClient) Update(ctx context.Context, id int, request *cuentica.ProviderRequest) (*cuentica.Provider, error) {
	path := fmt.Sprintf("/provider/%d", id)

	resp, err := c.httpClient.Put(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("updating provider: %w", err)
	}

	var provider cuentica.Provider
	if err := resp.DecodeJSON(&provider); err != nil {
		return nil, fmt.Errorf("parsing provider response: %w", err)
	}

	return &provider, nil
}

// Delete implements cuentica.ProvidersClient.Delete
func (c *ProvidersClient) Delete(ctx context.Context, id int) error {
	path := fmt.Sprintf("/provider/%d", id)

	_, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		return fmt.Errorf("deleting provider: %w", err)
	}

	return nil
}
