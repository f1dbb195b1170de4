package gql

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/lukaszraczylo/go-jobber-graphql/gqltest"
	"golang.org/x/oauth2"
)

func (suite *Tests) TestBaseClient_Query() {
	suite.T().Run("should return the data object", func(t *testing.T) {
		srv := gqltest.NewServer(gqltest.Static(`{"data":{"client":{"id":"abc","firstName":"Jo"}}}`))
		defer srv.Close()

		client := NewTestClient(srv.URL, srv.Client())
		result, err := client.Query(context.Background(), `query GetClient($id: EncodedId!) { client(id: $id) { id firstName } }`, Variables{"id": "abc"})
		assert.NoError(err)
		assert.Equal(Record{"client": map[string]any{"id": "abc", "firstName": "Jo"}}, result)
	})

	suite.T().Run("should send headers, document and variables", func(t *testing.T) {
		srv := gqltest.NewServer(gqltest.Static(`{"data":{}}`))
		defer srv.Close()

		client := NewTestClient(srv.URL, srv.Client())
		_, err := client.Query(context.Background(), "query { clients { totalCount } }", Variables{"id": "abc"})
		assert.NoError(err)

		req := srv.Last()
		assert.Equal("application/json", req.Header.Get("Content-Type"))
		assert.Equal(DefaultAPIVersion, req.Header.Get(APIVersionHeader))
		assert.Equal("Bearer test-token", req.Header.Get("Authorization"))
		assert.Equal("query { clients { totalCount } }", req.Query)
		assert.Equal(map[string]any{"id": "abc"}, req.Variables)
	})

	suite.T().Run("should send empty variables object when nil", func(t *testing.T) {
		srv := gqltest.NewServer(gqltest.Static(`{"data":{"user":{"id":"u1"}}}`))
		defer srv.Close()

		client := NewTestClient(srv.URL, srv.Client())
		_, err := client.Query(context.Background(), "query { user { id } }", nil)
		assert.NoError(err)
		assert.NotNil(srv.Last().Variables)
		assert.Empty(srv.Last().Variables)
	})

	suite.T().Run("should return empty record when data is missing or null", func(t *testing.T) {
		for _, body := range []string{`{}`, `{"data":null}`} {
			srv := gqltest.NewServer(gqltest.Static(body))
			client := NewTestClient(srv.URL, srv.Client())
			result, err := client.Query(context.Background(), "query { user { id } }", nil)
			srv.Close()
			assert.NoError(err)
			assert.NotNil(result)
			assert.Empty(result)
		}
	})

	suite.T().Run("should fail with TransportError on GraphQL errors", func(t *testing.T) {
		srv := gqltest.NewServer(gqltest.Static(`{"errors":[{"message":"bad token"}]}`))
		defer srv.Close()

		client := NewTestClient(srv.URL, srv.Client())
		result, err := client.Query(context.Background(), "query { user { id } }", nil)
		assert.Nil(result)

		var te *TransportError
		assert.True(errors.As(err, &te))
		assert.Contains(err.Error(), "bad token")
		assert.Equal("GraphQL Error: bad token", te.Message)
		assert.Len(te.Errors, 1)
	})

	suite.T().Run("should join multiple GraphQL error messages", func(t *testing.T) {
		srv := gqltest.NewServer(gqltest.Static(`{"data":{"client":null},"errors":[{"message":"first"},{"message":"second","path":["client"]}]}`))
		defer srv.Close()

		client := NewTestClient(srv.URL, srv.Client())
		_, err := client.Query(context.Background(), "query { client { id } }", nil)
		assert.EqualError(err, "GraphQL Error: first, second")
	})

	suite.T().Run("should fail with TransportError on non-2xx status", func(t *testing.T) {
		srv := gqltest.NewServer(gqltest.Status(http.StatusInternalServerError, "Internal Server Error"))
		defer srv.Close()

		client := NewTestClient(srv.URL, srv.Client())
		_, err := client.Query(context.Background(), "query { user { id } }", nil)

		var te *TransportError
		assert.True(errors.As(err, &te))
		assert.Equal(http.StatusInternalServerError, te.StatusCode)
		assert.Contains(err.Error(), "HTTP error")
	})

	suite.T().Run("should include GraphQL messages from an error status", func(t *testing.T) {
		srv := gqltest.NewServer(gqltest.Status(http.StatusUnauthorized, `{"errors":[{"message":"Access token expired"}]}`))
		defer srv.Close()

		client := NewTestClient(srv.URL, srv.Client())
		_, err := client.Query(context.Background(), "query { user { id } }", nil)

		var te *TransportError
		assert.True(errors.As(err, &te))
		assert.Equal(http.StatusUnauthorized, te.StatusCode)
		assert.Contains(err.Error(), "Access token expired")
	})

	suite.T().Run("should fail with TransportError on undecodable body", func(t *testing.T) {
		srv := gqltest.NewServer(gqltest.Static(`<html>oops</html>`))
		defer srv.Close()

		client := NewTestClient(srv.URL, srv.Client())
		_, err := client.Query(context.Background(), "query { user { id } }", nil)

		var te *TransportError
		assert.True(errors.As(err, &te))
		assert.Error(te.Unwrap())
	})

	suite.T().Run("should fail with TransportError when the server is unreachable", func(t *testing.T) {
		srv := gqltest.NewServer(gqltest.Static(`{"data":{}}`))
		url := srv.URL
		srv.Close()

		client := NewTestClient(url, &http.Client{})
		_, err := client.Query(context.Background(), "query { user { id } }", nil)

		var te *TransportError
		assert.True(errors.As(err, &te))
		assert.Equal(http.StatusInternalServerError, te.StatusCode)
	})

	suite.T().Run("should fail with TransportError when the token cannot be obtained", func(t *testing.T) {
		srv := gqltest.NewServer(gqltest.Static(`{"data":{}}`))
		defer srv.Close()

		client := NewTestClient(srv.URL, srv.Client())
		client.SetTokenSource(failingTokenSource{})
		_, err := client.Query(context.Background(), "query { user { id } }", nil)

		var te *TransportError
		assert.True(errors.As(err, &te))
		assert.Equal(0, srv.Count())
	})

	suite.T().Run("should make exactly one request on failure", func(t *testing.T) {
		srv := gqltest.NewServer(gqltest.Status(http.StatusBadGateway, "bad gateway"))
		defer srv.Close()

		client := NewTestClient(srv.URL, srv.Client())
		_, err := client.Query(context.Background(), "query { user { id } }", nil)
		assert.Error(err)
		assert.Equal(1, srv.Count())
	})
}

type failingTokenSource struct{}

func (failingTokenSource) Token() (*oauth2.Token, error) {
	return nil, errors.New("refresh token revoked")
}
