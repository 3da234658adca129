package order

import (
	"smm-order-desk/internal/catalog"
	"testing"

	"github.com/stretchr/testify/assert"
)

var followersService = &catalog.Service{
	ID:         42,
	CategoryID: 7,
	Name:       "Followers",
	Min:        100,
	Max:        10000,
}

func TestValidateQuantity(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		svc     *catalog.Service
		wantErr string
	}{
		{name: "no service selected", raw: "500", svc: nil, wantErr: "select a service first"},
		{name: "empty", raw: "", svc: followersService, wantErr: "enter a quantity"},
		{name: "whitespace only", raw: "   ", svc: followersService, wantErr: "enter a quantity"},
		{name: "non numeric", raw: "abc", svc: followersService, wantErr: "quantity must be a whole number"},
		{name: "fractional", raw: "10.5", svc: followersService, wantErr: "quantity must be a whole number"},
		{name: "below min", raw: "99", svc: followersService, wantErr: "minimum quantity is 100"},
		{name: "above max", raw: "10001", svc: followersService, wantErr: "maximum quantity is 10000"},
		{name: "at min", raw: "100", svc: followersService, wantErr: ""},
		{name: "at max", raw: "10000", svc: followersService, wantErr: ""},
		{name: "padded valid", raw: " 500 ", svc: followersService, wantErr: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantErr, ValidateQuantity(tt.raw, tt.svc))
		})
	}
}

func TestValidateLink(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr string
	}{
		{name: "empty", raw: "", wantErr: "enter a link"},
		{name: "whitespace only", raw: "  ", wantErr: "enter a link"},
		{name: "no scheme", raw: "instagram.com/someone", wantErr: "link must be a full URL"},
		{name: "scheme without host", raw: "https://", wantErr: "link must be a full URL"},
		{name: "plain word", raw: "hello", wantErr: "link must be a full URL"},
		{name: "valid https", raw: "https://instagram.com/someone", wantErr: ""},
		{name: "valid with path and query", raw: "https://www.tiktok.com/@user?lang=en", wantErr: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantErr, ValidateLink(tt.raw))
		})
	}
}

func TestValidatorsAreIdempotent(t *testing.T) {
	first := ValidateQuantity("50", followersService)
	second := ValidateQuantity("50", followersService)
	assert.Equal(t, first, second)

	firstLink := ValidateLink("https://instagram.com/someone")
	secondLink := ValidateLink("https://instagram.com/someone")
	assert.Equal(t, firstLink, secondLink)
}
