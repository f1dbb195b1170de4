package gql

import (
	"net/http"
	"time"

	logging "github.com/lukaszraczylo/go-jobber-graphql/logging"
	"golang.org/x/oauth2"
)

const (
	DefaultEndpoint   = "https://api.getjobber.com/api/graphql"
	DefaultAPIVersion = "2023-11-15"
	APIVersionHeader  = "X-JOBBER-GRAPHQL-VERSION"

	DefaultPageSize = 25
	MaxPageSize     = 100
)

// Variables are the GraphQL variables sent with a document.
type Variables = map[string]any

// Record is a decoded JSON object as returned by the API.
type Record = map[string]any

type BaseClient struct {
	tokens        oauth2.TokenSource
	Logger        *logging.Logger
	client        *http.Client
	endpoint      string
	apiVersion    string
	timeout       time.Duration
	retriesDelay  time.Duration
	retriesNumber int
	retriesEnable bool
	insecureTLS   bool
	// set by SetHTTPClient; a host-supplied client is never rebuilt
	customClient bool
}

type queryRequest struct {
	Variables Variables `json:"variables"`
	Query     string    `json:"query"`
}

type queryResponse struct {
	Data   jsonRaw        `json:"data"`
	Errors []GraphQLError `json:"errors"`
}

type GraphQLError struct {
	Extensions map[string]any `json:"extensions,omitempty"`
	Message    string         `json:"message"`
	Locations  []struct {
		Line   int `json:"line"`
		Column int `json:"column"`
	} `json:"locations,omitempty"`
	Path []any `json:"path,omitempty"`
}

// UserError is one entry of a mutation payload's userErrors list.
type UserError struct {
	Message string   `json:"message"`
	Path    []string `json:"path,omitempty"`
}
