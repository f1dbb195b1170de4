package gql

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/lukaszraczylo/go-jobber-graphql/gqltest"
	"golang.org/x/net/http2"
)

func (suite *Tests) TestBaseClient_createHttpClient() {
	suite.T().Run("http endpoints use HTTP/1.1 transport", func(t *testing.T) {
		client := NewTestClient("http://example.com/graphql", nil)
		httpClient := client.createHttpClient()
		assert.NotNil(httpClient)
		assert.Equal(5*time.Second, httpClient.Timeout)

		transport, ok := httpClient.Transport.(*http.Transport)
		assert.True(ok)
		assert.Equal(10, transport.MaxIdleConns)
	})

	suite.T().Run("https endpoints use HTTP/2 transport", func(t *testing.T) {
		client := NewTestClient("https://example.com/graphql", nil)
		httpClient := client.createHttpClient()
		assert.NotNil(httpClient)

		transport, ok := httpClient.Transport.(*http2.Transport)
		assert.True(ok)
		assert.False(transport.TLSClientConfig.InsecureSkipVerify)
	})

	suite.T().Run("insecure flag is passed to TLS config", func(t *testing.T) {
		client := NewTestClient("https://example.com/graphql", nil)
		client.insecureTLS = true
		transport := client.createHttpClient().Transport.(*http2.Transport)
		assert.True(transport.TLSClientConfig.InsecureSkipVerify)
	})

	suite.T().Run("invalid endpoint yields no client", func(t *testing.T) {
		client := NewTestClient("ftp://example.com/graphql", nil)
		assert.Nil(client.createHttpClient())

		client.client = nil
		_, err := client.Query(context.Background(), "query { user { id } }", nil)
		assert.Error(err)
	})

	suite.T().Run("redirects are not followed", func(t *testing.T) {
		client := NewTestClient("http://example.com/graphql", nil)
		httpClient := client.createHttpClient()
		assert.Equal(http.ErrUseLastResponse, httpClient.CheckRedirect(nil, nil))
	})
}

func (suite *Tests) TestBaseClient_QueryOverHTTP2() {
	srv := gqltest.NewTLSServer(gqltest.Static(`{"data":{"user":{"id":"u1"}}}`))
	defer srv.Close()

	client := NewTestClient(srv.URL, srv.Client())
	result, err := client.Query(context.Background(), "query { user { id } }", nil)
	assert.NoError(err)
	assert.Equal(Record{"user": map[string]any{"id": "u1"}}, result)
}
