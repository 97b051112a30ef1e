// Package cuenticaclient provides the main entry point for creating Cuentica API clients
package cuenticaclient

import (
	"fmt"

	"github.com/magarcia/cuentica-sdk/internal/client"
	"github.com/magarcia/cuentica-sdk/pkg/cuentica"
)

// New creates a new Cuentica API client. The token resolves from
// config.Token first, then the CUENTICA_API_TOKEN environment variable;
// construction fails with cuentica.ErrTokenRequired when neither is set.
func New(config *cuentica.Config) (cuentica.Client, error) {
	if config == nil {
		return nil, cuentica.ErrConfigRequired
	}

	apiClient, err := client.New(config)
	if err != nil {
		return nil, fmt.Errorf("creating client: %w", err)
	}

	return apiClient, nil
}

// NewWithToken creates a client with an explicit token against the default
// endpoint.
func NewWithToken(token string) (cuentica.Client, error) {
	return New(&cuentica.Config{Token: token})
}

// NewFromEnv creates a client whose token comes from the CUENTICA_API_TOKEN
// environment variable.
func NewFromEnv() (cuentica.Client, error) {
	return New(&cuentica.Config{})
}
