package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTagsClient_List(t *testing.T) {
	t.Run("returns bare string array", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/tag", r.URL.Path)
			assert.Equal(t, "GET", r.Method)
			assert.Empty(t, r.URL.RawQuery)

			_ = json.NewEncoder(w).Encode([]string{"web", "consulting", "2026"})
		}))
		defer server.Close()

		client := NewTestClient(server.URL)

		tags, err := client.Tags().List(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []string{"web", "consulting", "2026"}, tags)
	})

	t.Run("empty account", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_ = json.NewEncoder(w).Encode([]string{})
		}))
		defer server.Close()

		client := NewTestClient(server.URL)

		tags, err := client.Tags().List(context.Background())
		require.NoError(t, err)
		assert.Empty(t, tags)
	})
}
