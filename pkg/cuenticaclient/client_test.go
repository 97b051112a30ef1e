package cuenticaclient_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magarcia/cuentica-sdk/pkg/cuentica"
	"github.com/magarcia/cuentica-sdk/pkg/cuenticaclient"
)

func TestNew(t *testing.T) {
	t.Run("nil config", func(t *testing.T) {
		client, err := cuenticaclient.New(nil)
		require.ErrorIs(t, err, cuentica.ErrConfigRequired)
		assert.Nil(t, client)
	})

	t.Run("missing token fails before any network call", func(t *testing.T) {
		client, err := cuenticaclient.New(&cuentica.Config{
			Getenv: func(string) string { return "" },
		})
		require.ErrorIs(t, err, cuentica.ErrTokenRequired)
		assert.Nil(t, client)
	})

	t.Run("token from environment", func(t *testing.T) {
		client, err := cuenticaclient.New(&cuentica.Config{
			Getenv: func(key string) string {
				if key == cuentica.EnvToken {
					return "env-token"
				}

				return ""
			},
		})
		require.NoError(t, err)
		assert.NotNil(t, client)
	})
}

func TestNewWithToken(t *testing.T) {
	client, err := cuenticaclient.NewWithToken("explicit-token")
	require.NoError(t, err)
	assert.NotNil(t, client)
}

func TestClientEndToEnd(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "secret-token", r.Header.Get("X-AUTH-TOKEN"))
		assert.Equal(t, "/company", r.URL.Path)

		_ = json.NewEncoder(w).Encode(cuentica.Company{ID: 1, BusinessName: "Acme S.L."})
	}))
	defer server.Close()

	client, err := cuenticaclient.New(&cuentica.Config{
		Token:   "secret-token",
		BaseURL: server.URL,
	})
	require.NoError(t, err)

	company, err := client.Company().Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Acme S.L.", company.BusinessName)
}
