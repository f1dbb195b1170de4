package gql

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics exported on the default registry:
//   - jobber_graphql_requests_total{outcome} (Counter): requests by outcome (ok, graphql_error, http_error, network_error, decode_error)
//   - jobber_graphql_request_duration_seconds (Histogram): request round trip
//   - jobber_graphql_pages_total (Counter): pages fetched by QueryAll
//   - jobber_graphql_user_errors_total (Counter): mutation payloads rejected with userErrors
//   - jobber_graphql_retries_total (Counter): attempts replayed by the retrying transport
var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "jobber_graphql_requests_total",
			Help: "GraphQL requests by outcome",
		},
		[]string{"outcome"},
	)

	requestDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "jobber_graphql_request_duration_seconds",
			Help:    "GraphQL request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	pagesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "jobber_graphql_pages_total",
			Help: "Connection pages fetched by the pagination walker",
		},
	)

	userErrorsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "jobber_graphql_user_errors_total",
			Help: "Mutation payloads that carried userErrors",
		},
	)

	retriesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "jobber_graphql_retries_total",
			Help: "Requests replayed by the retrying transport",
		},
	)
)

const (
	outcomeOK           = "ok"
	outcomeGraphQLError = "graphql_error"
	outcomeHTTPError    = "http_error"
	outcomeNetworkError = "network_error"
	outcomeDecodeError  = "decode_error"
)
