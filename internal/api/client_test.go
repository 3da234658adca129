package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"smm-order-desk/pkg"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetServices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/services", r.URL.Path)
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"id": 42, "category": 7, "name": "Followers", "price": "500", "min": 100, "max": 10000, "duration": 3600, "is_active": true}
		]`))
	}))
	defer server.Close()

	client := NewDefaultClient(server.URL, server.Client())
	services, err := client.GetServices(context.Background(), "secret")
	require.NoError(t, err)
	require.Len(t, services, 1)
	assert.Equal(t, int64(42), services[0].ID)
	assert.Equal(t, int64(7), services[0].Category)
	assert.Equal(t, "500", services[0].Price.String())
	assert.True(t, services[0].IsActive)
}

func TestGetProfile(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/profile", r.URL.Path)
		_, _ = w.Write([]byte(`{"id": 1, "balance": "123.45"}`))
	}))
	defer server.Close()

	client := NewDefaultClient(server.URL, server.Client())
	profile, err := client.GetProfile(context.Background(), "secret")
	require.NoError(t, err)
	assert.Equal(t, int64(1), profile.ID)
	assert.Equal(t, "123.45", profile.Balance.String())
}

func TestGetRejectedByPanel(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	client := NewDefaultClient(server.URL, server.Client())
	_, err := client.GetCategories(context.Background(), "bad-token")
	require.Error(t, err)

	var apiErr *pkg.ErrPanelAPI
	require.ErrorAs(t, err, &apiErr)
	assert.Contains(t, apiErr.Info, "401")
}

func TestCreateOrder(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/orders", r.URL.Path)
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req CreateOrderRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, int64(42), req.ServiceID)
		assert.Equal(t, "https://instagram.com/someone", req.URL)
		assert.Equal(t, 500, req.Quantity)
		assert.Equal(t, "pending", req.Status)

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id": 77, "service_id": 42, "quantity": 500, "status": "pending"}`))
	}))
	defer server.Close()

	client := NewDefaultClient(server.URL, server.Client())
	created, err := client.CreateOrder(context.Background(), "secret", CreateOrderRequest{
		ServiceID: 42,
		URL:       "https://instagram.com/someone",
		Quantity:  500,
		Status:    "pending",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(77), created.ID)
}

func TestCreateOrderRequiresCreatedStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// 200 with a body is still a failure, only 201 means placed.
		_, _ = w.Write([]byte(`{"id": 77}`))
	}))
	defer server.Close()

	client := NewDefaultClient(server.URL, server.Client())
	_, err := client.CreateOrder(context.Background(), "secret", CreateOrderRequest{ServiceID: 42})
	require.Error(t, err)

	var apiErr *pkg.ErrPanelAPI
	require.ErrorAs(t, err, &apiErr)
	assert.Contains(t, apiErr.Info, "200")
}
