package client

import (
	"context"
	"fmt"

	"github.com/magarcia/cuentica-sdk/internal/http"
	"github.com/magarcia/cuentica-sdk/pkg/cuentica"
)

// TransfersClient implements cuentica.TransfersClient
type TransfersClient struct {
	httpClient *http.Client
}

// NewTransfersClient creates a new transfers client
func NewTransfersClient(httpClient *http.Client) *TransfersClient {
	return &TransfersClient{httpClient: httpClient}
}

// List implements cuentica.TransfersClient.List. Set filters pass through
// verbatim, in declaration order.
func (c *TransfersClient) List(ctx context.Context, opts *cuentica.TransferListOptions) ([]cuentica.Transfer, error) {
	query := cuentica.NewParams()

	if opts != nil {
		if opts.DateFrom != "" {
			query.Add("date_from", opts.DateFrom)
		}

		if opts.DateTo != "" {
			query.Add("date_to", opts.DateTo)
		}

		if opts.OriginAccount > 0 {
			query.AddInt("origin_account", opts.OriginAccount)
		}

		if opts.DestinationAccount > 0 {
			query.AddInt("destination_account", opts.DestinationAccount)
		}

		if opts.Page > 0 {
			query.AddInt("page", opts.Page)
		}

		if opts.PageSize > 0 {
			query.AddInt("page_size", opts.PageSize)
		}
	}

	resp, err := c.httpClient.Get(ctx, "/transfer", query)
	if err != nil {
		return nil, fmt.Errorf("listing transfers: %w", err)
	}

	var transfers []cuentica.Transfer
	if err := resp.DecodeJSON(&transfers); err != nil {
		return nil, fmt.Errorf("parsing transfers list response: %w", err)
	}

	return transfers, nil
}

// Get implements cuentica.TransfersClient.Get
func (c *TransfersClient) Get(ctx context.Context, id int) (*cuentica.Transfer, error) {
	path := fmt.Sprintf("/transfer/%d", id)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting transfer: %w", err)
	}

	var transfer cuentica.Transfer
	if err := resp.DecodeJSON(&transfer); err != nil {
		return nil, fmt.Errorf("parsing transfer response: %w", err)
	}

	return &transfer, nil
}

// Create implements cuentica.TransfersClient.Create
func (c *TransfersClient) Create(ctx context.Context, request *cuentica.TransferRequest) (*cuentica.Transfer, error) {
	resp, err := c.httpClient.Post(ctx, "/transfer", request)
	if err != nil {
		return nil, fmt.Errorf("creating transfer: %w", err)
	}

	var transfer cuentica.Transfer
	if err := resp.DecodeJSON(&transfer); err != nil {
		return nil, fmt.Errorf("parsing transfer response: %w", err)
	}

	return &transfer, nil
}

// Update implements cuentica.TransfersClient.Update
func (c *TransfersClient) Update(ctx context.Context, id int, request *cuentica.TransferRequest) (*cuentica.Transfer, error) {
	path := fmt.Sprintf("/transfer/%d", id)

	resp, err := c.httpClient.Put(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("updating transfer: %w", err)
	}

	var transfer cuentica.Transfer
	if err := resp.DecodeJSON(&transfer); err != nil {
		return nil, fmt.Errorf("parsing transfer response: %w", err)
	}

	return &transfer, nil
}

// Delete implements cuentica.TransfersClient.Delete
func (c *TransfersClient) Delete(ctx context.Context, id int) error {
	path := fmt.Sprintf("/transfer/%d", id)

	_, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		return fmt.Errorf("deleting transfer: %w", err)
	}

	return nil
}
