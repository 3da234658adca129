package configurator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var supportedLocales = []string{"en", "ru", "uz"}

func TestParseURL(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want URLState
	}{
		{
			name: "bare path",
			raw:  "/new-order",
			want: URLState{Path: "/new-order"},
		},
		{
			name: "locale prefix",
			raw:  "/ru/new-order",
			want: URLState{Locale: "ru", Path: "/new-order"},
		},
		{
			name: "locale only",
			raw:  "/en",
			want: URLState{Locale: "en", Path: "/"},
		},
		{
			name: "unsupported locale stays in path",
			raw:  "/fr/new-order",
			want: URLState{Path: "/fr/new-order"},
		},
		{
			name: "service deep link",
			raw:  "/en/new-order?serviceId=42",
			want: URLState{Locale: "en", Path: "/new-order", ServiceID: 42, HasServiceID: true},
		},
		{
			name: "non numeric service id",
			raw:  "/en/new-order?serviceId=abc",
			want: URLState{Locale: "en", Path: "/new-order", HasServiceID: true},
		},
		{
			name: "negative service id",
			raw:  "/en/new-order?serviceId=-5",
			want: URLState{Locale: "en", Path: "/new-order", HasServiceID: true},
		},
		{
			name: "empty service id ignored",
			raw:  "/en/new-order?serviceId=",
			want: URLState{Locale: "en", Path: "/new-order"},
		},
		{
			name: "empty path",
			raw:  "",
			want: URLState{Path: "/"},
		},
		{
			name: "absolute url",
			raw:  "https://desk.example.com/uz/new-order?serviceId=7",
			want: URLState{Locale: "uz", Path: "/new-order", ServiceID: 7, HasServiceID: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseURL(tt.raw, supportedLocales))
		})
	}
}

func TestURLStateString(t *testing.T) {
	tests := []struct {
		name  string
		state URLState
		want  string
	}{
		{
			name:  "locale and path",
			state: URLState{Locale: "en", Path: "/new-order"},
			want:  "/en/new-order",
		},
		{
			name:  "locale with root path",
			state: URLState{Locale: "en", Path: "/"},
			want:  "/en",
		},
		{
			name:  "no locale",
			state: URLState{Path: "/new-order"},
			want:  "/new-order",
		},
		{
			name:  "with service id",
			state: URLState{Locale: "ru", Path: "/new-order", ServiceID: 42, HasServiceID: true},
			want:  "/ru/new-order?serviceId=42",
		},
		{
			name:  "zero service id omitted",
			state: URLState{Locale: "ru", Path: "/new-order", HasServiceID: true},
			want:  "/ru/new-order",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.state.String())
		})
	}
}

func TestParseURLRoundTrip(t *testing.T) {
	for _, raw := range []string{"/en/new-order?serviceId=42", "/ru", "/new-order", "/uz/balance"} {
		state := ParseURL(raw, supportedLocales)
		assert.Equal(t, state, ParseURL(state.String(), supportedLocales), "raw %q", raw)
	}
}

func TestURLStateModifiers(t *testing.T) {
	base := URLState{Locale: "en", Path: "/new-order"}

	withID := base.WithServiceID(42)
	assert.Equal(t, int64(42), withID.ServiceID)
	assert.True(t, withID.HasServiceID)
	assert.False(t, base.HasServiceID, "value receiver must not mutate the original")

	cleared := withID.WithoutServiceID()
	assert.False(t, cleared.HasServiceID)
	assert.Zero(t, cleared.ServiceID)

	assert.Equal(t, "ru", base.WithLocale("ru").Locale)
	assert.Equal(t, "/balance", base.WithPath("/balance").Path)
}
