package client

import (
	"context"
	"fmt"
	"strings"

	"github.com/magarcia/cuentica-sdk/internal/http"
	"github.com/magarcia/cuentica-sdk/pkg/cuentica"
)

// ExpensesClient implements cuentica.ExpensesClient
type ExpensesClient struct {
	httpClient *http.Client
}

// NewExpensesClient creates a new expenses client
func NewExpensesClient(httpClient *http.Client) *ExpensesClient {
	return &ExpensesClient{httpClient: httpClient}
}

// List implements cuentica.ExpensesClient.List. Tag semantics match the
// invoices listing: nil omits, empty non-nil sends "tags=".
func (c *ExpensesClient) List(ctx context.Context, opts *cuentica.ExpenseListOptions) ([]cuentica.Expense, error) {
	query := cuentica.NewParams()

	if opts != nil {
		if opts.Tags != nil {
			query.Add("tags", strings.Join(opts.Tags, ","))
		}

		if opts.DateFrom != "" {
			query.Add("date_from", opts.DateFrom)
		}

		if opts.DateTo != "" {
			query.Add("date_to", opts.DateTo)
		}

		if opts.Provider > 0 {
			query.AddInt("provider", opts.Provider)
		}

		if opts.Page > 0 {
			query.AddInt("page", opts.Page)
		}

		if opts.PageSize > 0 {
			query.AddInt("page_size", opts.PageSize)
		}
	}

	resp, err := c.httpClient.Get(ctx, "/expense", query)
	if err != nil {
		return nil, fmt.Errorf("listing expenses: %w", err)
	}

	var expenses []cuentica.Expense
	if err := resp.DecodeJSON(&expenses); err != nil {
		return nil, fmt.Errorf("parsing expenses list response: %w", err)
	}

	return expenses, nil
}

// Get implements cuentica.ExpensesClient.Get
func (c *ExpensesClient) Get(ctx context.Context, id int) (*cuentica.Expense, error) {
	path := fmt.Sprintf("/expense/%d", id)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting expense: %w", err)
	}

	var expense cuentica.Expense
	if err := resp.DecodeJSON(&expense); err != nil {
		return nil, fmt.Errorf("parsing expense response: %w", err)
	}

	return &expense, nil
}

// Create implements cuentica.ExpensesClient.Create
func (c *ExpensesClient) Create(ctx context.Context, request *cuentica.ExpenseRequest) (*cuentica.Expense, error) {
	resp, err := c.httpClient.Post(ctx, "/expense", request)
	if err != nil {
		return nil, fmt.Errorf("creating expense: %w", err)
	}

	var expense cuentica.Expense
	if err := resp.DecodeJSON(&expense); err != nil {
		return nil, fmt.Errorf("parsing expense response: %w", err)
	}

	return &expense, nil
}

// Update implements cuentica.ExpensesClient.Update
func (c *ExpensesClient) Update(ctx context.Context, id int, request *cuentica.ExpenseRequest) (*cuentica.Expense, error) {
	path := fmt.Sprintf("/expense/%d", id)

	resp, err := c.httpClient.Put(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("updating expense: %w", err)
	}

	var expense cuentica.Expense
	if err := resp.DecodeJSON(&expense); err != nil {
		return nil, fmt.Errorf("parsing expense response: %w", err)
	}

	return &expense, nil
}

// Delete implements cuentica.ExpensesClient.Delete
func (c *ExpensesClient) Delete(ctx context.Context, id int) error {
	path := fmt.Sprintf("/expense/%d", id)

	_, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		return fmt.Errorf("deleting expense: %w", err)
	}

	return nil
}
