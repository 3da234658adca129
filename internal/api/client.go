package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"smm-order-desk/pkg"
)

// Client talks to the external panel API. Orders, balances and fulfillment
// all live on the panel side; this process never stores them.
type Client interface {
	GetCategories(ctx context.Context, token string) ([]Category, error)
	GetServices(ctx context.Context, token string) ([]Service, error)
	CreateOrder(ctx context.Context, token string, order CreateOrderRequest) (*Order, error)
	GetProfile(ctx context.Context, token string) (*Profile, error)
}

type DefaultClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewDefaultClient(baseURL string, httpClient *http.Client) Client {
	return &DefaultClient{
		baseURL:    baseURL,
		httpClient: httpClient,
	}
}

func (d *DefaultClient) GetCategories(ctx context.Context, token string) ([]Category, error) {
	var categories []Category
	if err := d.getJSON(ctx, token, "/categories", &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (d *DefaultClient) GetServices(ctx context.Context, token string) ([]Service, error) {
	var services []Service
	if err := d.getJSON(ctx, token, "/services", &services); err != nil {
		return nil, err
	}
	return services, nil
}

func (d *DefaultClient) CreateOrder(ctx context.Context, token string, order CreateOrderRequest) (*Order, error) {
	body, err := json.Marshal(order)
	if err != nil {
		return nil, &pkg.ErrPanelAPI{
			Cause: "failed to encode order request",
			Err:   err,
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.baseURL+"/orders", bytes.NewReader(body))
	if err != nil {
		return nil, &pkg.ErrPanelAPI{
			Cause: "failed to build order request",
			Err:   err,
		}
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.httpClient.Do(req)
	if err != nil {
		return nil, &pkg.ErrPanelAPI{
			Cause: "failed to send order request",
			Err:   err,
		}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		return nil, &pkg.ErrPanelAPI{
			Cause: "order was not created",
			Info:  fmt.Sprintf("status: %s", resp.Status),
			Err:   fmt.Errorf("unexpected status code %d", resp.StatusCode),
		}
	}

	created := &Order{}
	if err := json.NewDecoder(resp.Body).Decode(created); err != nil {
		return nil, &pkg.ErrPanelAPI{
			Cause: "failed to decode created order",
			Err:   err,
		}
	}
	return created, nil
}

func (d *DefaultClient) GetProfile(ctx context.Context, token string) (*Profile, error) {
	profile := &Profile{}
	if err := d.getJSON(ctx, token, "/profile", profile); err != nil {
		return nil, err
	}
	return profile, nil
}

func (d *DefaultClient) getJSON(ctx context.Context, token, path string, dst any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, d.baseURL+path, nil)
	if err != nil {
		return &pkg.ErrPanelAPI{
			Cause: "failed to build request",
			Info:  fmt.Sprintf("path: %s", path),
			Err:   err,
		}
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := d.httpClient.Do(req)
	if err != nil {
		return &pkg.ErrPanelAPI{
			Cause: "failed to send request",
			Info:  fmt.Sprintf("path: %s", path),
			Err:   err,
		}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &pkg.ErrPanelAPI{
			Cause: "request rejected by panel",
			Info:  fmt.Sprintf("path: %s, status: %s", path, resp.Status),
			Err:   fmt.Errorf("unexpected status code %d", resp.StatusCode),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return &pkg.ErrPanelAPI{
			Cause: "failed to decode response",
			Info:  fmt.Sprintf("path: %s", path),
			Err:   err,
		}
	}
	return nil
}
