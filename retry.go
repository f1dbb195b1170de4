package gql

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/avast/retry-go/v4"
	logging "github.com/lukaszraczylo/go-jobber-graphql/logging"
)

// retryTransport replays a request on connection errors, 429 and 5xx responses.
// It is host-client policy: BaseClient.Query itself issues exactly one request.
type retryTransport struct {
	next     http.RoundTripper
	logger   *logging.Logger
	delay    time.Duration
	attempts uint
}

func newRetryTransport(next http.RoundTripper, attempts int, delay time.Duration, logger *logging.Logger) *retryTransport {
	if attempts < 1 {
		attempts = 1
	}
	return &retryTransport{next: next, attempts: uint(attempts), delay: delay, logger: logger}
}

type retryableStatus struct {
	code int
}

func (e retryableStatus) Error() string {
	return fmt.Sprintf("retryable status code %d", e.code)
}

func (t *retryTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	var body []byte
	if req.Body != nil {
		var err error
		body, err = io.ReadAll(req.Body)
		req.Body.Close()
		if err != nil {
			return nil, err
		}
	}

	var resp *http.Response
	err := retry.Do(
		func() error {
			attempt := req.Clone(req.Context())
			if body != nil {
				attempt.Body = io.NopCloser(bytes.NewReader(body))
			}
			r, err := t.next.RoundTrip(attempt)
			if err != nil {
				return err
			}
			if r.StatusCode == http.StatusTooManyRequests || r.StatusCode >= http.StatusInternalServerError {
				// keep the last response so the caller still sees the status
				if resp != nil {
					resp.Body.Close()
				}
				resp = r
				return retryableStatus{code: r.StatusCode}
			}
			if resp != nil {
				resp.Body.Close()
			}
			resp = r
			return nil
		},
		retry.Context(req.Context()),
		retry.Attempts(t.attempts),
		retry.Delay(t.delay),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			retriesTotal.Inc()
			t.logger.Warning(&logging.LogMessage{
				Message: "Retrying request",
				Pairs:   map[string]any{"attempt": int(n) + 1, "error": err.Error()},
			})
		}),
	)
	if err != nil {
		var status retryableStatus
		if errors.As(err, &status) && resp != nil {
			return resp, nil
		}
		if resp != nil {
			resp.Body.Close()
		}
		return nil, err
	}
	return resp, nil
}
