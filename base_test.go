package gql

import (
	"bytes"
	"net/http"
	"os"
	"testing"
	"time"

	logging "github.com/lukaszraczylo/go-jobber-graphql/logging"
)

func setEnv(t *testing.T, values map[string]string) {
	t.Helper()
	for k, v := range values {
		old, had := os.LookupEnv(k)
		if v == "" {
			os.Unsetenv(k)
		} else {
			os.Setenv(k, v)
		}
		t.Cleanup(func() {
			if had {
				os.Setenv(k, old)
			} else {
				os.Unsetenv(k)
			}
		})
	}
}

func (suite *Tests) TestNewConnection() {
	suite.T().Run("defaults", func(t *testing.T) {
		setEnv(t, map[string]string{
			"JOBBER_GRAPHQL_ENDPOINT": "",
			"JOBBER_GRAPHQL_VERSION":  "",
			"JOBBER_ACCESS_TOKEN":     "",
			"GRAPHQL_TIMEOUT":         "",
			"GRAPHQL_RETRIES_ENABLE":  "",
		})
		got := NewConnection()
		assert.Equal(DefaultEndpoint, got.Endpoint())
		assert.Equal(DefaultAPIVersion, got.APIVersion())
		assert.Equal(30*time.Second, got.timeout)
		assert.False(got.retriesEnable)
		assert.Nil(got.tokens)
		assert.NotNil(got.client)
	})

	suite.T().Run("environment overrides", func(t *testing.T) {
		setEnv(t, map[string]string{
			"JOBBER_GRAPHQL_ENDPOINT": "http://localhost:4000/graphql",
			"JOBBER_GRAPHQL_VERSION":  "2024-01-01",
			"JOBBER_ACCESS_TOKEN":     "env-token",
			"GRAPHQL_TIMEOUT":         "5",
			"GRAPHQL_RETRIES_ENABLE":  "true",
			"GRAPHQL_RETRIES_NUMBER":  "4",
			"GRAPHQL_RETRIES_DELAY":   "10",
		})
		got := NewConnection()
		assert.Equal("http://localhost:4000/graphql", got.Endpoint())
		assert.Equal("2024-01-01", got.APIVersion())
		assert.Equal(5*time.Second, got.timeout)
		assert.True(got.retriesEnable)
		assert.Equal(4, got.retriesNumber)
		assert.Equal(10*time.Millisecond, got.retriesDelay)

		tok, err := got.tokens.Token()
		assert.NoError(err)
		assert.Equal("env-token", tok.AccessToken)

		_, ok := got.client.Transport.(*retryTransport)
		assert.True(ok)
	})
}

func (suite *Tests) TestNewConnection_LogLevel() {
	tests := []struct {
		name      string
		logLevel  string
		showDebug bool
	}{
		{"debug level shows debug", "debug", true},
		{"info level hides debug", "info", false},
		{"error level hides debug", "error", false},
		{"unset level defaults to info", "", false},
	}
	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			setEnv(t, map[string]string{"LOG_LEVEL": tt.logLevel})
			client := NewConnection()

			var buf bytes.Buffer
			client.Logger.SetOutput(&buf)
			client.Logger.Debug(&logging.LogMessage{Message: "test debug"})
			assert.Equal(tt.showDebug, buf.Len() > 0)
		})
	}
}

func (suite *Tests) TestBaseClient_Setters() {
	client := NewTestClient("http://localhost/graphql", nil)

	client.SetEndpoint("https://potato/graphql")
	assert.Equal("https://potato/graphql", client.Endpoint())
	assert.NotNil(client.client)

	client.SetAPIVersion("2025-01-20")
	assert.Equal("2025-01-20", client.APIVersion())

	client.SetAccessToken("abc")
	tok, err := client.tokens.Token()
	assert.NoError(err)
	assert.Equal("abc", tok.AccessToken)
}

func (suite *Tests) TestBaseClient_SetHTTPClientSurvivesReconfiguration() {
	custom := &http.Client{Timeout: 42 * time.Second}
	client := NewTestClient("http://localhost/graphql", nil)

	client.SetHTTPClient(custom)
	client.SetEndpoint("https://potato/graphql")
	assert.Same(custom, client.client)

	client.SetRetries(true, 5, time.Millisecond)
	assert.Same(custom, client.client)
	assert.True(client.retriesEnable)

	client.SetHTTPClient(nil)
	assert.NotNil(client.client)
	assert.NotSame(custom, client.client)

	client.SetEndpoint("http://localhost/graphql")
	assert.NotSame(custom, client.client)
}
