package gql

import (
	"net/http"
	"os"
	"sync"
	"time"

	logging "github.com/lukaszraczylo/go-jobber-graphql/logging"
)

var (
	testLoggerOnce sync.Once
	testLogger     *logging.Logger
)

// GetTestLogger returns a shared logger for tests. LOG_LEVEL overrides the error default.
func GetTestLogger() *logging.Logger {
	testLoggerOnce.Do(func() {
		level := "error"
		if env := os.Getenv("LOG_LEVEL"); env != "" {
			level = env
		}
		testLogger = logging.New().SetMinLogLevel(logging.GetLogLevel(level))
	})
	return testLogger
}

// NewTestClient returns a client bound to endpoint with a static token. httpClient is
// typically the client of an httptest server.
func NewTestClient(endpoint string, httpClient *http.Client) *BaseClient {
	return &BaseClient{
		Logger:     GetTestLogger(),
		client:     httpClient,
		endpoint:   endpoint,
		apiVersion: DefaultAPIVersion,
		tokens:     StaticToken("test-token"),
		timeout:    5 * time.Second,
	}
}
