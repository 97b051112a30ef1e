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

func TestExpensesClient_List(t *testing.T) {
	t.Run("tag semantics match invoices", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/expense", r.URL.Path)
			assert.Equal(t, "tags=office%2Csupplies", r.URL.RawQuery)
			_ = json.NewEncoder(w).Encode([]cuentica.Expense{})
		}))
		defer server.Close()

		client := NewTestClient(server.URL)

		_, err := client.Expenses().List(context.Background(), &cuentica.ExpenseListOptions{
			Tags: []string{"office", "supplies"},
		})
		require.NoError(t, err)
	})

	t.Run("date and provider filters", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "date_from=2026-01-01&date_to=2026-06-30&provider=3&page=1&page_size=20", r.URL.RawQuery)
			_ = json.NewEncoder(w).Encode([]cuentica.Expense{})
		}))
		defer server.Close()

		client := NewTestClient(server.URL)

		_, err := client.Expenses().List(context.Background(), &cuentica.ExpenseListOptions{
			DateFrom: "2026-01-01",
			DateTo:   "2026-06-30",
			Provider: 3,
			Page:     1,
			PageSize: 20,
		})
		require.NoError(t, err)
	})
}

func TestExpensesClient_Get(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/expense/5", r.URL.Path)

		expense := cuentica.Expense{
			ID:       5,
			Provider: 3,
			ExpenseLines: []cuentica.ExpenseLine{
				{Description: "Paper", Base: 100, Tax: 21},
			},
		}
		_ = json.NewEncoder(w).Encode(expense)
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	expense, err := client.Expenses().Get(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, 5, expense.ID)
	require.Len(t, expense.ExpenseLines, 1)
	assert.InEpsilon(t, 100.0, expense.ExpenseLines[0].Base, 0.001)
}

func TestExpensesClient_Create(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/expense", r.URL.Path)
		assert.Equal(t, "POST", r.Method)

		var req cuentica.ExpenseRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		assert.Equal(t, 3, req.Provider)

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(cuentica.Expense{ID: 50, Provider: req.Provider})
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	expense, err := client.Expenses().Create(context.Background(), &cuentica.ExpenseRequest{
		Date:     "2026-02-15",
		Provider: 3,
		ExpenseLines: []cuentica.ExpenseLine{
			{Description: "Paper", Base: 100, Tax: 21},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 50, expense.ID)
}

func TestExpensesClient_Update(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/expense/50", r.URL.Path)
		assert.Equal(t, "PUT", r.Method)

		var req cuentica.ExpenseRequest
		_ = json.NewDecoder(r.Body).Decode(&req)

		_ = json.NewEncoder(w).Encode(cuentica.Expense{ID: 50, Date: req.Date})
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	expense, err := client.Expenses().Update(context.Background(), 50, &cuentica.ExpenseRequest{
		Date: "2026-02-16",
	})
	require.NoError(t, err)
	assert.Equal(t, "2026-02-16", expense.Date)
}

func TestExpensesClient_Delete(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/expense/50", r.URL.Path)
		assert.Equal(t, "DELETE", r.Method)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	err := client.Expenses().Delete(context.Background(), 50)
	require.NoError(t, err)
}
