package client

import (
	internalhttp "github.com/magarcia/cuentica-sdk/internal/http"
)

// NewTestClient creates a client bound to a test server URL with a fixed
// token.
func NewTestClient(baseURL string) *Client {
	httpClient := internalhttp.NewClient(baseURL, "test-token")

	client := &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
	}

	client.initializeResourceClients()

	return client
}
