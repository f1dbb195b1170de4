package gql

import (
	"net/http"
	"time"

	"github.com/gookit/goutil/envutil"
	logging "github.com/lukaszraczylo/go-jobber-graphql/logging"
	"golang.org/x/oauth2"
)

func NewConnection() *BaseClient {
	b := &BaseClient{
		Logger:        logging.New(),
		endpoint:      envutil.Getenv("JOBBER_GRAPHQL_ENDPOINT", DefaultEndpoint),
		apiVersion:    envutil.Getenv("JOBBER_GRAPHQL_VERSION", DefaultAPIVersion),
		timeout:       time.Duration(envutil.GetInt("GRAPHQL_TIMEOUT", 30)) * time.Second,
		retriesEnable: envutil.GetBool("GRAPHQL_RETRIES_ENABLE", false),
		retriesNumber: envutil.GetInt("GRAPHQL_RETRIES_NUMBER", 3),
		retriesDelay:  time.Duration(envutil.GetInt("GRAPHQL_RETRIES_DELAY", 250)) * time.Millisecond,
		insecureTLS:   envutil.GetBool("GRAPHQL_INSECURE_SKIP_VERIFY", false),
	}

	logLevel := envutil.Getenv("LOG_LEVEL", "info")
	b.Logger.SetMinLogLevel(logging.GetLogLevel(logLevel))

	if token := envutil.Getenv("JOBBER_ACCESS_TOKEN", ""); token != "" {
		b.tokens = StaticToken(token)
	}

	b.client = b.createHttpClient()

	b.Logger.Debug(&logging.LogMessage{
		Message: "GraphQL client initialized",
		Pairs: map[string]any{
			"endpoint":       b.endpoint,
			"api_version":    b.apiVersion,
			"timeout":        b.timeout.String(),
			"retries_enable": b.retriesEnable,
			"retries_number": b.retriesNumber,
			"log_level":      logLevel,
		},
	})
	return b
}

// SetEndpoint points the client at another GraphQL endpoint. The HTTP client is
// rebuilt for the new scheme unless one was supplied with SetHTTPClient.
func (b *BaseClient) SetEndpoint(endpoint string) *BaseClient {
	b.endpoint = endpoint
	b.rebuildClient()
	return b
}

func (b *BaseClient) rebuildClient() {
	if b.customClient {
		return
	}
	b.client = b.createHttpClient()
}

func (b *BaseClient) SetAPIVersion(version string) *BaseClient {
	b.apiVersion = version
	return b
}

func (b *BaseClient) SetTokenSource(ts oauth2.TokenSource) *BaseClient {
	b.tokens = ts
	return b
}

func (b *BaseClient) SetAccessToken(token string) *BaseClient {
	b.tokens = StaticToken(token)
	return b
}

// SetHTTPClient replaces the HTTP client, e.g. with one carrying the host's own policy.
// A supplied client survives later SetEndpoint and SetRetries calls, so its
// transport owns TLS and retry behaviour. Passing nil restores the built-in client.
func (b *BaseClient) SetHTTPClient(client *http.Client) *BaseClient {
	b.customClient = client != nil
	if client == nil {
		client = b.createHttpClient()
	}
	b.client = client
	return b
}

func (b *BaseClient) SetRetries(enable bool, attempts int, delay time.Duration) *BaseClient {
	b.retriesEnable = enable
	b.retriesNumber = attempts
	b.retriesDelay = delay
	b.rebuildClient()
	return b
}

func (b *BaseClient) Endpoint() string {
	return b.endpoint
}

func (b *BaseClient) APIVersion() string {
	return b.apiVersion
}
