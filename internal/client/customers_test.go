package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magarcia/cuentica-sdk/pkg/cuentica"
)

func TestCustomersClient_List(t *testing.T) {
	t.Run("default pagination", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/customer", r.URL.Path)
			assert.Equal(t, "GET", r.Method)
			assert.Equal(t, "page=1&page_size=100", r.URL.RawQuery)

			customers := []cuentica.Customer{
				{ID: 1, TradeName: "Acme"},
				{ID: 2, TradeName: "Globex"},
			}
			_ = json.NewEncoder(w).Encode(customers)
		}))
		defer server.Close()

		client := NewTestClient(server.URL)

		customers, err := client.Customers().List(context.Background(), nil)
		require.NoError(t, err)
		require.Len(t, customers, 2)
		assert.Equal(t, 1, customers[0].ID)
		assert.Equal(t, "Globex", customers[1].TradeName)
	})

	t.Run("search term goes first", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "q=smith&page=2&page_size=50", r.URL.RawQuery)
			_ = json.NewEncoder(w).Encode([]cuentica.Customer{})
		}))
		defer server.Close()

		client := NewTestClient(server.URL)

		customers, err := client.Customers().List(context.Background(), &cuentica.CustomerListOptions{
			Q:        "smith",
			Page:     2,
			PageSize: 50,
		})
		require.NoError(t, err)
		assert.Empty(t, customers)
	})
}

func TestCustomersClient_Get(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/customer/42", r.URL.Path)
		assert.Equal(t, "GET", r.Method)

		_ = json.NewEncoder(w).Encode(cuentica.Customer{ID: 42, TradeName: "Acme"})
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	customer, err := client.Customers().Get(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, 42, customer.ID)
	assert.Equal(t, "Acme", customer.TradeName)
}

func TestCustomersClient_Get_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Not Found", http.StatusNotFound)
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	customer, err := client.Customers().Get(context.Background(), 99999)
	require.Error(t, err)
	assert.Nil(t, customer)
	assert.True(t, cuentica.IsNotFound(err))
}

func TestCustomersClient_Get_NoContent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	customer, err := client.Customers().Get(context.Background(), 42)
	require.NoError(t, err)
	require.NotNil(t, customer)
	assert.Zero(t, customer.ID)
}

func TestCustomersClient_List_NoContent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	customers, err := client.Customers().List(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, customers)
}

func TestCustomersClient_Create(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/customer", r.URL.Path)
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req cuentica.CustomerRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		assert.Equal(t, "Acme S.L.", req.BusinessName)

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(cuentica.Customer{ID: 7, BusinessName: req.BusinessName})
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	customer, err := client.Customers().Create(context.Background(), &cuentica.CustomerRequest{
		BusinessName: "Acme S.L.",
	})
	require.NoError(t, err)
	assert.Equal(t, 7, customer.ID)
	assert.Equal(t, "Acme S.L.", customer.BusinessName)
}

func TestCustomersClient_Update(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/customer/7", r.URL.Path)
		assert.Equal(t, "PUT", r.Method)

		var req cuentica.CustomerRequest
		_ = json.NewDecoder(r.Body).Decode(&req)

		_ = json.NewEncoder(w).Encode(cuentica.Customer{ID: 7, BusinessName: req.BusinessName})
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	customer, err := client.Customers().Update(context.Background(), 7, &cuentica.CustomerRequest{
		BusinessName: "Acme Renamed S.L.",
	})
	require.NoError(t, err)
	assert.Equal(t, "Acme Renamed S.L.", customer.BusinessName)
}

func TestCustomersClient_Delete(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/customer/7", r.URL.Path)
		assert.Equal(t, "DELETE", r.Method)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	err := client.Customers().Delete(context.Background(), 7)
	require.NoError(t, err)
}
