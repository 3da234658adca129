package session

import (
	"context"
	"log/slog"
	"smm-order-desk/internal/api"

	"github.com/shopspring/decimal"
)

type Session struct {
	Token   string
	UserID  int64
	Balance decimal.Decimal
}

// Provider resolves a bearer token into the panel-side session. The panel
// owns token issuance and balance bookkeeping; this is read-only.
type Provider interface {
	Resolve(ctx context.Context, token string) (*Session, error)
}

type APIProvider struct {
	client api.Client
}

func NewAPIProvider(client api.Client) *APIProvider {
	return &APIProvider{client: client}
}

func (p *APIProvider) Resolve(ctx context.Context, token string) (*Session, error) {
	profile, err := p.client.GetProfile(ctx, token)
	if err != nil {
		slog.Error("Failed to resolve session", "error", err)
		return nil, err
	}
	return &Session{
		Token:   token,
		UserID:  profile.ID,
		Balance: profile.Balance,
	}, nil
}
