package order

import (
	"fmt"
	"smm-order-desk/internal/catalog"
	"strings"

	"github.com/shopspring/decimal"
)

type Urgency string

const (
	UrgencyFast   Urgency = "fast"
	UrgencyMedium Urgency = "medium"
	UrgencySlow   Urgency = "slow"
)

// Pricing is derived from (service, quantity) on every change and never
// stored anywhere.
type Pricing struct {
	Total    decimal.Decimal
	ETALabel string
	Urgency  Urgency
}

var thousand = decimal.NewFromInt(1000)

func Derive(svc *catalog.Service, quantity int) Pricing {
	if svc == nil {
		return Pricing{Total: decimal.Zero}
	}

	total := decimal.Zero
	if quantity > 0 {
		qty := decimal.NewFromInt(int64(quantity))
		total = svc.PricePerThousand.Mul(qty).Div(thousand).Round(0)
	}

	return Pricing{
		Total:    total,
		ETALabel: etaLabel(svc.DurationSeconds),
		Urgency:  urgencyFor(svc.DurationSeconds),
	}
}

func etaLabel(seconds int64) string {
	if seconds == 0 {
		return "0s"
	}
	if seconds <= 60 {
		return "soon"
	}

	hours := seconds / 3600
	minutes := seconds % 3600 / 60
	secs := seconds % 60

	var parts []string
	if hours > 0 {
		parts = append(parts, fmt.Sprintf("%dh", hours))
	}
	if minutes > 0 {
		parts = append(parts, fmt.Sprintf("%dm", minutes))
	}
	if secs > 0 {
		parts = append(parts, fmt.Sprintf("%ds", secs))
	}
	return strings.Join(parts, " ")
}

func urgencyFor(seconds int64) Urgency {
	switch {
	case seconds <= 60:
		return UrgencyFast
	case seconds <= 1440:
		return UrgencyMedium
	default:
		return UrgencySlow
	}
}
