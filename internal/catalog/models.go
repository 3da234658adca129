package catalog

import "github.com/shopspring/decimal"

type Category struct {
	ID       int64
	Name     string
	IconHint string
}

// Service is a purchasable delivery unit. Only active services make it
// into the cache, price is per thousand units.
type Service struct {
	ID               int64
	CategoryID       int64
	Name             string
	Description      string
	PricePerThousand decimal.Decimal
	Min              int
	Max              int
	DurationSeconds  int64
}
