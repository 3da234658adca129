package api

import "github.com/shopspring/decimal"

type Category struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	IsActive bool   `json:"is_active"`
}

type Service struct {
	ID          int64           `json:"id"`
	Category    int64           `json:"category"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Min         int             `json:"min"`
	Max         int             `json:"max"`
	Duration    int64           `json:"duration"`
	IsActive    bool            `json:"is_active"`
}

type CreateOrderRequest struct {
	ServiceID int64  `json:"service_id"`
	URL       string `json:"url"`
	Quantity  int    `json:"quantity"`
	Status    string `json:"status"`
}

type Order struct {
	ID        int64           `json:"id"`
	ServiceID int64           `json:"service_id"`
	URL       string          `json:"url"`
	Quantity  int             `json:"quantity"`
	Charge    decimal.Decimal `json:"charge"`
	Status    string          `json:"status"`
	CreatedAt string          `json:"created_at"`
}

type Profile struct {
	ID      int64           `json:"id"`
	Balance decimal.Decimal `json:"balance"`
}
