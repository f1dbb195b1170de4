package gql

import (
	"context"
	"net/http"
	"time"

	"golang.org/x/oauth2"
)

const (
	AuthURL  = "https://api.getjobber.com/api/oauth/authorize"
	TokenURL = "https://api.getjobber.com/api/oauth/token"
)

// Scopes requested by the host when it runs the authorisation-code flow.
var Scopes = []string{
	"read_clients", "write_clients",
	"read_jobs", "write_jobs",
	"read_invoices", "write_invoices",
	"read_quotes", "write_quotes",
	"read_visits", "write_visits",
	"read_users",
	"read_products", "write_products",
	"read_expenses", "write_expenses",
	"read_time_entries", "write_time_entries",
	"read_webhooks", "write_webhooks",
}

// DefaultOAuthEndpoint is the Jobber authorisation server.
var DefaultOAuthEndpoint = oauth2.Endpoint{
	AuthURL:   AuthURL,
	TokenURL:  TokenURL,
	AuthStyle: oauth2.AuthStyleInParams,
}

// Credentials are handed over by the host after it completed the OAuth handshake.
// A zero Expiry with a RefreshToken means the access token is refreshed on first use.
type Credentials struct {
	Expiry       time.Time
	Endpoint     oauth2.Endpoint
	ClientID     string
	ClientSecret string
	AccessToken  string
	RefreshToken string
}

func (c Credentials) endpoint() oauth2.Endpoint {
	if c.Endpoint.TokenURL == "" {
		return DefaultOAuthEndpoint
	}
	ep := c.Endpoint
	if ep.AuthStyle == oauth2.AuthStyleAutoDetect {
		ep.AuthStyle = oauth2.AuthStyleInParams
	}
	return ep
}

func (c Credentials) Config() *oauth2.Config {
	return &oauth2.Config{
		ClientID:     c.ClientID,
		ClientSecret: c.ClientSecret,
		Endpoint:     c.endpoint(),
		Scopes:       Scopes,
	}
}

// TokenSource yields the access token and refreshes it with the refresh token once
// it expires. Without a refresh token or client id the access token is used as is.
func (c Credentials) TokenSource(ctx context.Context) oauth2.TokenSource {
	tok := &oauth2.Token{AccessToken: c.AccessToken, RefreshToken: c.RefreshToken, TokenType: "Bearer", Expiry: c.Expiry}
	if c.RefreshToken == "" || c.ClientID == "" {
		return oauth2.StaticTokenSource(tok)
	}
	if tok.Expiry.IsZero() {
		// oauth2 treats a zero expiry as never expiring
		tok.Expiry = time.Unix(1, 0)
	}
	return c.Config().TokenSource(ctx, tok)
}

func StaticToken(accessToken string) oauth2.TokenSource {
	return oauth2.StaticTokenSource(&oauth2.Token{AccessToken: accessToken, TokenType: "Bearer"})
}

func (b *BaseClient) authorize(req *http.Request) error {
	if b.tokens == nil {
		return nil
	}
	tok, err := b.tokens.Token()
	if err != nil {
		return err
	}
	tok.SetAuthHeader(req)
	return nil
}
