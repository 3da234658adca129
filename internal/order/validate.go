package order

import (
	"fmt"
	"net/url"
	"smm-order-desk/internal/catalog"
	"strconv"
	"strings"
)

// Validation messages are returned as-is to the user; empty string means
// the field is valid. Both validators are pure and safe to re-run on
// every edit.

func ValidateQuantity(raw string, svc *catalog.Service) string {
	if svc == nil {
		return "select a service first"
	}

	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "enter a quantity"
	}
	quantity, err := strconv.Atoi(trimmed)
	if err != nil {
		return "quantity must be a whole number"
	}
	if quantity < svc.Min {
		return fmt.Sprintf("minimum quantity is %d", svc.Min)
	}
	if quantity > svc.Max {
		return fmt.Sprintf("maximum quantity is %d", svc.Max)
	}
	return ""
}

func ValidateLink(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "enter a link"
	}
	parsed, err := url.Parse(trimmed)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return "link must be a full URL"
	}
	return ""
}
