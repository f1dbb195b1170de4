package jobber

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	gql "github.com/lukaszraczylo/go-jobber-graphql"
	"github.com/lukaszraczylo/go-jobber-graphql/gqltest"
)

func clientNodes(from, to int) []string {
	nodes := make([]string, 0, to-from)
	for i := from; i < to; i++ {
		nodes = append(nodes, fmt.Sprintf(`{"id":"c%d"}`, i))
	}
	return nodes
}

func clientsBody(hasNext bool, cursor string, nodes []string) string {
	return `{"data":{"clients":` + gqltest.Connection(hasNext, cursor, nodes...) + `}}`
}

func (suite *JobberTestSuite) Test_GetMissingFieldIsEmptyRecord() {
	srv := gqltest.NewServer(gqltest.Static(`{"data":{"client":null}}`))
	defer srv.Close()

	rec, err := newTestNode(srv).GetClient(context.Background(), ClientIDParams{ClientID: "gone"})
	assert.NoError(err)
	assert.NotNil(rec)
	assert.Empty(rec)
}

func (suite *JobberTestSuite) Test_GetRequiresID() {
	srv := gqltest.NewServer(gqltest.Static(`{"data":{}}`))
	defer srv.Close()

	_, err := newTestNode(srv).GetJob(context.Background(), JobIDParams{})
	assert.EqualError(err, "Missing required fields for job: id")
	assert.Equal(0, srv.Count())
}

func (suite *JobberTestSuite) Test_ListDefaultLimit() {
	srv := gqltest.NewServer(gqltest.Static(clientsBody(true, "next", clientNodes(0, 30))))
	defer srv.Close()

	records, err := newTestNode(srv).GetAllClients(context.Background(), GetAllClientsParams{SearchTerm: "acme"})
	assert.NoError(err)
	assert.Len(records, gql.DefaultPageSize)
	assert.Equal(1, srv.Count())
	assert.Equal(float64(gql.DefaultPageSize), srv.Last().Variables["first"])
	assert.Equal("acme", srv.Last().Variables["searchTerm"])
}

func (suite *JobberTestSuite) Test_ListReturnAll() {
	srv := gqltest.NewServer(gqltest.Sequence(
		clientsBody(true, "p1", clientNodes(0, 100)),
		clientsBody(false, "", clientNodes(100, 130)),
	))
	defer srv.Close()

	records, err := newTestNode(srv).GetAllClients(context.Background(), GetAllClientsParams{ListParams: ListParams{ReturnAll: true}})
	assert.NoError(err)
	assert.Len(records, 130)
	assert.Equal("c129", records[129]["id"])
	reqs := srv.Requests()
	assert.Len(reqs, 2)
	assert.Equal(float64(gql.DefaultPageSize), reqs[0].Variables["first"])
	assert.Equal("p1", reqs[1].Variables["after"])
}

func (suite *JobberTestSuite) Test_ListEmptyIsNotNil() {
	srv := gqltest.NewServer(gqltest.Static(`{"data":{"clients":null}}`))
	defer srv.Close()

	records, err := newTestNode(srv).GetAllClients(context.Background(), GetAllClientsParams{})
	assert.NoError(err)
	assert.NotNil(records)
	assert.Empty(records)
}

func (suite *JobberTestSuite) Test_MutateUserErrors() {
	srv := gqltest.NewServer(gqltest.Static(`{"data":{"clientCreate":{"client":null,"userErrors":[
		{"message":"First name is required","path":["input","firstName"]},
		{"message":"Email is invalid","path":["input","emails",0]}]}}}`))
	defer srv.Close()

	_, err := newTestNode(srv).CreateClient(context.Background(), CreateClientParams{})
	var verr *gql.ValidationError
	assert.True(errors.As(err, &verr))
	assert.Equal("First name is required, Email is invalid", err.Error())
	assert.Equal([]string{"input", "emails", "0"}, verr.UserErrors[1].Path)
}

func (suite *JobberTestSuite) Test_MutateReturnsEntity() {
	srv := gqltest.NewServer(gqltest.Static(`{"data":{"clientCreate":{"client":{"id":"c9","firstName":"Jo"},"userErrors":[]}}}`))
	defer srv.Close()

	rec, err := newTestNode(srv).CreateClient(context.Background(), CreateClientParams{ClientFields{
		FirstName: "Jo",
		Tags:      "vip, north",
		Emails:    []Email{{Address: "jo@example.com"}},
	}})
	assert.NoError(err)
	assert.Equal(gql.Record{"id": "c9", "firstName": "Jo"}, rec)

	input := srv.Last().Variables["input"].(map[string]any)
	assert.Equal("Jo", input["firstName"])
	assert.Equal([]any{"vip", "north"}, input["tags"])
	assert.Equal([]any{map[string]any{"address": "jo@example.com", "description": "", "primary": false}}, input["emails"])
	assert.NotContains(input, "lastName")
}

func (suite *JobberTestSuite) Test_MutateNullEntity() {
	srv := gqltest.NewServer(gqltest.Static(`{"data":{"jobClose":{"job":null,"userErrors":null}}}`))
	defer srv.Close()

	rec, err := newTestNode(srv).CloseJob(context.Background(), JobIDParams{JobID: "j1"})
	assert.NoError(err)
	assert.Empty(rec)
}

func (suite *JobberTestSuite) Test_RemoveReportsDeletedID() {
	suite.T().Run("should use the id returned by the API", func(t *testing.T) {
		srv := gqltest.NewServer(gqltest.Static(`{"data":{"propertyDelete":{"deletedPropertyId":"p1","userErrors":[]}}}`))
		defer srv.Close()

		rec, err := newTestNode(srv).DeleteProperty(context.Background(), PropertyIDParams{PropertyID: "p1"})
		assert.NoError(err)
		assert.Equal(gql.Record{"success": true, "deletedPropertyId": "p1"}, rec)
		assert.Equal("p1", srv.Last().Variables["id"])
	})

	suite.T().Run("should fall back to the requested id", func(t *testing.T) {
		srv := gqltest.NewServer(gqltest.Static(`{"data":{"visitDelete":{"userErrors":[]}}}`))
		defer srv.Close()

		rec, err := newTestNode(srv).DeleteVisit(context.Background(), VisitIDParams{VisitID: "v7"})
		assert.NoError(err)
		assert.Equal(gql.Record{"success": true, "deletedVisitId": "v7"}, rec)
	})

	suite.T().Run("should fail on userErrors", func(t *testing.T) {
		srv := gqltest.NewServer(gqltest.Static(`{"data":{"expenseDelete":{"deletedExpenseId":null,"userErrors":[{"message":"Not found","path":[]}]}}}`))
		defer srv.Close()

		_, err := newTestNode(srv).DeleteExpense(context.Background(), ExpenseIDParams{ExpenseID: "e1"})
		assert.EqualError(err, "Not found")
	})
}

func (suite *JobberTestSuite) Test_TransportErrorsPropagate() {
	srv := gqltest.NewServer(gqltest.Static(`{"errors":[{"message":"Throttled"}]}`))
	defer srv.Close()

	_, err := newTestNode(srv).GetInvoice(context.Background(), InvoiceIDParams{InvoiceID: "i1"})
	var terr *gql.TransportError
	assert.True(errors.As(err, &terr))
	assert.Equal("GraphQL Error: Throttled", err.Error())
	assert.True(strings.HasPrefix(srv.Last().Query, "query GetInvoice"))
}

func (suite *JobberTestSuite) Test_NewNodeDefaultsLogger() {
	node := NewNode(nil, nil)
	assert.NotNil(node.Logger)
}

func (suite *JobberTestSuite) Test_ListParamsLimit() {
	tests := []struct {
		name   string
		params ListParams
		want   int
	}{
		{"return all", ListParams{ReturnAll: true, Limit: 5}, 0},
		{"default", ListParams{}, gql.DefaultPageSize},
		{"explicit", ListParams{Limit: 7}, 7},
		{"negative", ListParams{Limit: -1}, gql.DefaultPageSize},
	}
	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			assert.Equal(tt.want, tt.params.limit())
		})
	}
}
