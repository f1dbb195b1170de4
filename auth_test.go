package gql

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"
	"time"

	"golang.org/x/oauth2"

	"github.com/lukaszraczylo/go-jobber-graphql/gqltest"
)

type tokenServer struct {
	*httptest.Server
	forms []url.Values
	mu    sync.Mutex
}

func newTokenServer() *tokenServer {
	ts := &tokenServer{}
	ts.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = r.ParseForm()
		ts.mu.Lock()
		ts.forms = append(ts.forms, r.PostForm)
		ts.mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"new","token_type":"bearer","expires_in":3600,"refresh_token":"r2"}`))
	}))
	return ts
}

func (ts *tokenServer) hits() int {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	return len(ts.forms)
}

func (ts *tokenServer) credentials(expiry time.Time) Credentials {
	return Credentials{
		ClientID:     "client-id",
		ClientSecret: "client-secret",
		AccessToken:  "old",
		RefreshToken: "r1",
		Expiry:       expiry,
		Endpoint:     oauth2.Endpoint{TokenURL: ts.URL + "/api/oauth/token"},
	}
}

func (suite *Tests) TestCredentials_TokenSource() {
	suite.T().Run("zero expiry refreshes on first use", func(t *testing.T) {
		ts := newTokenServer()
		defer ts.Close()

		src := ts.credentials(time.Time{}).TokenSource(context.Background())
		tok, err := src.Token()
		assert.NoError(err)
		assert.Equal("new", tok.AccessToken)
		assert.Equal("r2", tok.RefreshToken)
		assert.Equal(1, ts.hits())

		form := ts.forms[0]
		assert.Equal("refresh_token", form.Get("grant_type"))
		assert.Equal("r1", form.Get("refresh_token"))
		assert.Equal("client-id", form.Get("client_id"))
		assert.Equal("client-secret", form.Get("client_secret"))

		tok, err = src.Token()
		assert.NoError(err)
		assert.Equal("new", tok.AccessToken)
		assert.Equal(1, ts.hits())
	})

	suite.T().Run("future expiry keeps the access token", func(t *testing.T) {
		ts := newTokenServer()
		defer ts.Close()

		tok, err := ts.credentials(time.Now().Add(time.Hour)).TokenSource(context.Background()).Token()
		assert.NoError(err)
		assert.Equal("old", tok.AccessToken)
		assert.Equal(0, ts.hits())
	})

	suite.T().Run("past expiry refreshes", func(t *testing.T) {
		ts := newTokenServer()
		defer ts.Close()

		tok, err := ts.credentials(time.Now().Add(-time.Minute)).TokenSource(context.Background()).Token()
		assert.NoError(err)
		assert.Equal("new", tok.AccessToken)
		assert.Equal(1, ts.hits())
	})

	suite.T().Run("without refresh token or client id the token is static", func(t *testing.T) {
		ts := newTokenServer()
		defer ts.Close()

		noRefresh := ts.credentials(time.Time{})
		noRefresh.RefreshToken = ""
		noClient := ts.credentials(time.Time{})
		noClient.ClientID = ""

		for _, creds := range []Credentials{noRefresh, noClient} {
			tok, err := creds.TokenSource(context.Background()).Token()
			assert.NoError(err)
			assert.Equal("old", tok.AccessToken)
		}
		assert.Equal(0, ts.hits())
	})

	suite.T().Run("refreshed token authorises GraphQL requests", func(t *testing.T) {
		ts := newTokenServer()
		defer ts.Close()
		srv := gqltest.NewServer(gqltest.Static(`{"data":{"account":{"id":"1"}}}`))
		defer srv.Close()

		client := NewTestClient(srv.URL, srv.Client()).
			SetTokenSource(ts.credentials(time.Time{}).TokenSource(context.Background()))
		_, err := client.Query(context.Background(), `query { account { id } }`, nil)
		assert.NoError(err)
		assert.Equal("Bearer new", srv.Last().Header.Get("Authorization"))
		assert.Equal(1, ts.hits())
	})
}

func (suite *Tests) TestCredentials_Config() {
	cfg := Credentials{ClientID: "id", ClientSecret: "secret"}.Config()
	assert.Equal(TokenURL, cfg.Endpoint.TokenURL)
	assert.Equal(AuthURL, cfg.Endpoint.AuthURL)
	assert.Equal(oauth2.AuthStyleInParams, cfg.Endpoint.AuthStyle)
	assert.Equal(Scopes, cfg.Scopes)

	custom := Credentials{Endpoint: oauth2.Endpoint{TokenURL: "http://localhost/token"}}.Config()
	assert.Equal("http://localhost/token", custom.Endpoint.TokenURL)
	assert.Equal(oauth2.AuthStyleInParams, custom.Endpoint.AuthStyle)

	header := Credentials{Endpoint: oauth2.Endpoint{TokenURL: "http://localhost/token", AuthStyle: oauth2.AuthStyleInHeader}}.Config()
	assert.Equal(oauth2.AuthStyleInHeader, header.Endpoint.AuthStyle)
}
