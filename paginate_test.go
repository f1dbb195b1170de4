package gql

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/lukaszraczylo/go-jobber-graphql/gqltest"
)

const clientsDocument = `query GetAllClients($first: Int, $after: String) { clients(first: $first, after: $after) { edges { node { id } } pageInfo { hasNextPage endCursor } } }`

func clientsPage(hasNext bool, cursor string, ids ...string) string {
	nodes := make([]string, 0, len(ids))
	for _, id := range ids {
		nodes = append(nodes, fmt.Sprintf(`{"id":%q}`, id))
	}
	return `{"data":{"clients":` + gqltest.Connection(hasNext, cursor, nodes...) + `}}`
}

func ids(records []Record) []string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		id, _ := r["id"].(string)
		out = append(out, id)
	}
	return out
}

func (suite *Tests) TestBaseClient_QueryAll() {
	suite.T().Run("single page makes exactly one request", func(t *testing.T) {
		srv := gqltest.NewServer(gqltest.Static(clientsPage(false, "c1", "a", "b", "c")))
		defer srv.Close()

		client := NewTestClient(srv.URL, srv.Client())
		items, err := client.QueryAll(context.Background(), clientsDocument, nil, "clients", 0)
		assert.NoError(err)
		assert.Equal([]string{"a", "b", "c"}, ids(items))
		assert.Equal(1, srv.Count())
	})

	suite.T().Run("null and malformed edges keep their position", func(t *testing.T) {
		body := `{"data":{"clients":{"edges":[{"node":{"id":"a"}},null,{"node":"x"},{"node":null},{},7,{"node":{"id":"b"}}],"pageInfo":{"hasNextPage":false}}}}`
		srv := gqltest.NewServer(gqltest.Static(body))
		defer srv.Close()

		client := NewTestClient(srv.URL, srv.Client())
		items, err := client.QueryAll(context.Background(), clientsDocument, nil, "clients", 0)
		assert.NoError(err)
		assert.Equal([]string{"a", "", "", "", "", "", "b"}, ids(items))
		for _, rec := range items[1:6] {
			assert.Empty(rec)
			assert.NotNil(rec)
		}
	})

	suite.T().Run("first request carries default page size and no cursor", func(t *testing.T) {
		srv := gqltest.NewServer(gqltest.Static(clientsPage(false, "", "a")))
		defer srv.Close()

		client := NewTestClient(srv.URL, srv.Client())
		_, err := client.QueryAll(context.Background(), clientsDocument, Variables{"filter": "x"}, "clients", 0)
		assert.NoError(err)

		vars := srv.Last().Variables
		assert.EqualValues(DefaultPageSize, vars["first"])
		assert.NotContains(vars, "after")
		assert.Equal("x", vars["filter"])
	})

	suite.T().Run("walks every page in order without a limit", func(t *testing.T) {
		srv := gqltest.NewServer(gqltest.Sequence(
			clientsPage(true, "c1", "a", "b"),
			clientsPage(true, "c2", "c", "d"),
			clientsPage(false, "c3", "e"),
		))
		defer srv.Close()

		client := NewTestClient(srv.URL, srv.Client())
		items, err := client.QueryAll(context.Background(), clientsDocument, nil, "clients", 0)
		assert.NoError(err)
		assert.Equal([]string{"a", "b", "c", "d", "e"}, ids(items))

		reqs := srv.Requests()
		assert.Len(reqs, 3)
		assert.NotContains(reqs[0].Variables, "after")
		assert.Equal("c1", reqs[1].Variables["after"])
		assert.Equal("c2", reqs[2].Variables["after"])
	})

	suite.T().Run("limit below page size makes one request and truncates", func(t *testing.T) {
		srv := gqltest.NewServer(gqltest.Static(clientsPage(true, "c1", "a", "b", "c", "d", "e")))
		defer srv.Close()

		client := NewTestClient(srv.URL, srv.Client())
		items, err := client.QueryAll(context.Background(), clientsDocument, nil, "clients", 3)
		assert.NoError(err)
		assert.Equal([]string{"a", "b", "c"}, ids(items))
		assert.Equal(1, srv.Count())
		assert.EqualValues(3, srv.Last().Variables["first"])
	})

	suite.T().Run("limit spanning pages stops once reached", func(t *testing.T) {
		srv := gqltest.NewServer(gqltest.Sequence(
			clientsPage(true, "c1", "a", "b"),
			clientsPage(true, "c2", "c", "d"),
			clientsPage(true, "c3", "e", "f"),
		))
		defer srv.Close()

		client := NewTestClient(srv.URL, srv.Client())
		items, err := client.QueryAll(context.Background(), clientsDocument, nil, "clients", 3)
		assert.NoError(err)
		assert.Equal([]string{"a", "b", "c"}, ids(items))
		assert.Equal(2, srv.Count())
	})

	suite.T().Run("page size is capped at the maximum", func(t *testing.T) {
		srv := gqltest.NewServer(gqltest.Static(clientsPage(false, "", "a")))
		defer srv.Close()

		client := NewTestClient(srv.URL, srv.Client())
		_, err := client.QueryAll(context.Background(), clientsDocument, nil, "clients", 500)
		assert.NoError(err)
		assert.EqualValues(MaxPageSize, srv.Last().Variables["first"])
	})

	suite.T().Run("hasNextPage without endCursor terminates", func(t *testing.T) {
		srv := gqltest.NewServer(gqltest.Static(clientsPage(true, "", "a", "b")))
		defer srv.Close()

		client := NewTestClient(srv.URL, srv.Client())
		items, err := client.QueryAll(context.Background(), clientsDocument, nil, "clients", 0)
		assert.NoError(err)
		assert.Equal([]string{"a", "b"}, ids(items))
		assert.Equal(1, srv.Count())
	})

	suite.T().Run("missing path returns what was collected", func(t *testing.T) {
		srv := gqltest.NewServer(gqltest.Sequence(
			clientsPage(true, "c1", "a"),
			`{"data":{"clients":null}}`,
		))
		defer srv.Close()

		client := NewTestClient(srv.URL, srv.Client())
		items, err := client.QueryAll(context.Background(), clientsDocument, nil, "clients", 0)
		assert.NoError(err)
		assert.Equal([]string{"a"}, ids(items))
	})

	suite.T().Run("nested path is descended", func(t *testing.T) {
		body := `{"data":{"client":{"properties":` + gqltest.Connection(false, "", `{"id":"p1"}`, `{"id":"p2"}`) + `}}}`
		srv := gqltest.NewServer(gqltest.Static(body))
		defer srv.Close()

		client := NewTestClient(srv.URL, srv.Client())
		items, err := client.QueryAll(context.Background(), "query GetProperties { client { properties { edges { node { id } } } } }", Variables{"clientId": "c"}, "client.properties", 0)
		assert.NoError(err)
		assert.Equal([]string{"p1", "p2"}, ids(items))
	})

	suite.T().Run("missing intermediate segment yields empty result", func(t *testing.T) {
		srv := gqltest.NewServer(gqltest.Static(`{"data":{"client":null}}`))
		defer srv.Close()

		client := NewTestClient(srv.URL, srv.Client())
		items, err := client.QueryAll(context.Background(), "query { client { properties { edges { node { id } } } } }", nil, "client.properties", 0)
		assert.NoError(err)
		assert.Empty(items)
	})

	suite.T().Run("caller variables are not mutated", func(t *testing.T) {
		srv := gqltest.NewServer(gqltest.Sequence(
			clientsPage(true, "c1", "a"),
			clientsPage(false, "", "b"),
		))
		defer srv.Close()

		vars := Variables{"filter": map[string]any{"isLead": true}}
		client := NewTestClient(srv.URL, srv.Client())
		_, err := client.QueryAll(context.Background(), clientsDocument, vars, "clients", 0)
		assert.NoError(err)
		assert.Equal(Variables{"filter": map[string]any{"isLead": true}}, vars)
	})

	suite.T().Run("transport errors abort the walk", func(t *testing.T) {
		srv := gqltest.NewServer(gqltest.Status(http.StatusOK, `{"errors":[{"message":"Throttled"}]}`))
		defer srv.Close()

		client := NewTestClient(srv.URL, srv.Client())
		items, err := client.QueryAll(context.Background(), clientsDocument, nil, "clients", 0)
		assert.Nil(items)
		assert.EqualError(err, "GraphQL Error: Throttled")
	})
}

func (suite *Tests) TestPageSize() {
	tests := []struct {
		name  string
		limit int
		want  int
	}{
		{"no limit", 0, DefaultPageSize},
		{"negative limit", -5, DefaultPageSize},
		{"small limit", 10, 10},
		{"max limit", 100, 100},
		{"large limit", 250, MaxPageSize},
	}
	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			assert.Equal(tt.want, PageSize(tt.limit))
		})
	}
}
