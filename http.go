package gql

import (
	"crypto/tls"
	"net/http"
	"strings"
	"time"

	logging "github.com/lukaszraczylo/go-jobber-graphql/logging"
	"golang.org/x/net/http2"
)

func (b *BaseClient) createHttpClient() *http.Client {
	var transport http.RoundTripper

	switch {
	case strings.HasPrefix(b.endpoint, "https://"):
		transport = &http2.Transport{
			TLSClientConfig: &tls.Config{
				InsecureSkipVerify: b.insecureTLS,
			},
			ReadIdleTimeout:  30 * time.Second,
			PingTimeout:      10 * time.Second,
			WriteByteTimeout: 10 * time.Second,
		}
		b.Logger.Debug(&logging.LogMessage{
			Message: "Using HTTP/2 over TLS",
			Pairs:   map[string]any{"insecure_skip_verify": b.insecureTLS},
		})
	case strings.HasPrefix(b.endpoint, "http://"):
		transport = &http.Transport{
			MaxIdleConns:          10,
			IdleConnTimeout:       15 * time.Second,
			ResponseHeaderTimeout: b.timeout,
		}
		b.Logger.Debug(&logging.LogMessage{Message: "Using plain HTTP/1.1"})
	default:
		b.Logger.Error(&logging.LogMessage{
			Message: "Invalid endpoint - must start with http:// or https://",
			Pairs:   map[string]any{"endpoint": b.endpoint},
		})
		return nil
	}

	if b.retriesEnable {
		transport = newRetryTransport(transport, b.retriesNumber, b.retriesDelay, b.Logger)
	}

	return &http.Client{
		Timeout:   b.timeout,
		Transport: transport,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
}
