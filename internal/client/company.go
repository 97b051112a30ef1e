package client

import (
	"context"
	"fmt"

	"github.com/magarcia/cuentica-sdk/internal/http"
	"github.com/magarcia/cuentica-sdk/pkg/cuentica"
)

// CompanyClient implements cuentica.CompanyClient
type CompanyClient struct {
	httpClient *http.Client
}

// NewCompanyClient creates a new company client
func NewCompanyClient(httpClient *http.Client) *CompanyClient {
	return &CompanyClient{httpClient: httpClient}
}

// Get implements cuentica.CompanyClient.Get
func (c *CompanyClient) Get(ctx context.Context) (*cuentica.Company, error) {
	resp, err := c.httpClient.Get(ctx, "/company", nil)
	if err != nil {
		return nil, fmt.Errorf("getting company: %w", err)
	}

	var company cuentica.Company
	if err := resp.DecodeJSON(&company); err != nil {
		return nil, fmt.Errorf("parsing company response: %w", err)
	}

	return &company, nil
}
