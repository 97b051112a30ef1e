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

func TestTransfersClient_List(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/transfer", r.URL.Path)
		assert.Equal(t, "date_from=2026-01-01&origin_account=1&destination_account=2", r.URL.RawQuery)

		transfers := []cuentica.Transfer{
			{ID: 1, Amount: 500, OriginAccount: 1, DestinationAccount: 2},
		}
		_ = json.NewEncoder(w).Encode(transfers)
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	transfers, err := client.Transfers().List(context.Background(), &cuentica.TransferListOptions{
		DateFrom:           "2026-01-01",
		OriginAccount:      1,
		DestinationAccount: 2,
	})
	require.NoError(t, err)
	require.Len(t, transfers, 1)
	assert.InEpsilon(t, 500.0, transfers[0].Amount, 0.001)
}

func TestTransfersClient_Get(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/transfer/4", r.URL.Path)
		_ = json.NewEncoder(w).Encode(cuentica.Transfer{ID: 4, Amount: 250})
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	transfer, err := client.Transfers().Get(context.Background(), 4)
	require.NoError(t, err)
	assert.Equal(t, 4, transfer.ID)
}

func TestTransfersClient_Create(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/transfer", r.URL.Path)
		assert.Equal(t, "POST", r.Method)

		var req cuentica.TransferRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		assert.Equal(t, 1, req.OriginAccount)
		assert.Equal(t, 2, req.DestinationAccount)

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(cuentica.Transfer{
			ID:                 60,
			Amount:             req.Amount,
			OriginAccount:      req.OriginAccount,
			DestinationAccount: req.DestinationAccount,
		})
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	transfer, err := client.Transfers().Create(context.Background(), &cuentica.TransferRequest{
		Date:               "2026-03-01",
		Amount:             500,
		OriginAccount:      1,
		DestinationAccount: 2,
	})
	require.NoError(t, err)
	assert.Equal(t, 60, transfer.ID)
}

func TestTransfersClient_Update(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/transfer/60", r.URL.Path)
		assert.Equal(t, "PUT", r.Method)

		var req cuentica.TransferRequest
		_ = json.NewDecoder(r.Body).Decode(&req)

		_ = json.NewEncoder(w).Encode(cuentica.Transfer{ID: 60, Amount: req.Amount})
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	transfer, err := client.Transfers().Update(context.Background(), 60, &cuentica.TransferRequest{
		Amount: 750,
	})
	require.NoError(t, err)
	assert.InEpsilon(t, 750.0, transfer.Amount, 0.001)
}

func TestTransfersClient_Delete(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/transfer/60", r.URL.Path)
		assert.Equal(t, "DELETE", r.Method)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	err := client.Transfers().Delete(context.Background(), 60)
	require.NoError(t, err)
}
