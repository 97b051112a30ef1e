package client

import (
	"context"
	"fmt"

	"github.com/magarcia/cuentica-sdk/internal/http"
)

// TagsClient implements cuentica.TagsClient
type TagsClient struct {
	httpClient *http.Client
}

// NewTagsClient creates a new tags client
func NewTagsClient(httpClient *http.Client) *TagsClient {
	return &TagsClient{httpClient: httpClient}
}

// List implements cuentica.TagsClient.List. The endpoint returns a bare
// JSON array of strings.
func (c *TagsClient) List(ctx context.Context) ([]string, error) {
	resp, err := c.httpClient.Get(ctx, "/tag", nil)
	if err != nil {
		return nil, fmt.Errorf("listing tags: %w", err)
	}

	var tags []string
	if err := resp.DecodeJSON(&tags); err != nil {
		return nil, fmt.Errorf("parsing tags response: %w", err)
	}

	return tags, nil
}
