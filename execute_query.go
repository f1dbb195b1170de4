package gql

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	logging "github.com/lukaszraczylo/go-jobber-graphql/logging"
)

// Query sends one document to the API and returns the data object of the response.
// A response carrying top-level errors fails with a *TransportError whose message
// joins every error message. A response without data yields an empty Record.
func (b *BaseClient) Query(ctx context.Context, document string, variables Variables) (Record, error) {
	raw, err := b.queryRaw(ctx, document, variables)
	if err != nil {
		return nil, err
	}
	rec, err := decodeRecord(raw)
	if err != nil {
		requestsTotal.WithLabelValues(outcomeDecodeError).Inc()
		return nil, newTransportError(http.StatusOK, err, "Can't decode response data")
	}
	return rec, nil
}

func (b *BaseClient) queryRaw(ctx context.Context, document string, variables Variables) ([]byte, error) {
	if variables == nil {
		variables = Variables{}
	}
	if b.client == nil {
		return nil, newTransportError(0, nil, "HTTP client not configured for endpoint %q", b.endpoint)
	}

	buf := getBuffer(len(document) + 256)
	defer putBuffer(buf)
	if err := json.NewEncoder(buf).Encode(queryRequest{Query: document, Variables: variables}); err != nil {
		return nil, newTransportError(0, err, "Can't encode request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, b.endpoint, strings.NewReader(buf.String()))
	if err != nil {
		return nil, newTransportError(0, err, "Can't create HTTP request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set(APIVersionHeader, b.apiVersion)
	if err := b.authorize(req); err != nil {
		requestsTotal.WithLabelValues(outcomeNetworkError).Inc()
		return nil, newTransportError(http.StatusUnauthorized, err, "Can't obtain access token")
	}

	b.Logger.Debug(&logging.LogMessage{
		Message: "Sending GraphQL request",
		Pairs:   map[string]any{"endpoint": b.endpoint, "body": sanitizeForLogging(buf.String())},
	})

	start := time.Now()
	resp, err := b.client.Do(req)
	requestDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		requestsTotal.WithLabelValues(outcomeNetworkError).Inc()
		b.Logger.Debug(&logging.LogMessage{
			Message: "Error while executing http request",
			Pairs:   map[string]any{"error": sanitizeForLogging(err.Error())},
		})
		return nil, newTransportError(0, err, "Request to %s failed", b.endpoint)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		requestsTotal.WithLabelValues(outcomeNetworkError).Inc()
		return nil, newTransportError(resp.StatusCode, err, "Can't read response body")
	}

	var result queryResponse
	decodeErr := json.Unmarshal(body, &result)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		requestsTotal.WithLabelValues(outcomeHTTPError).Inc()
		msg := fmt.Sprintf("HTTP error - unacceptable status code: %q", resp.Status)
		if decodeErr == nil && len(result.Errors) > 0 {
			msg = msg + ": " + newGraphQLError(result.Errors).Message
		}
		b.Logger.Debug(&logging.LogMessage{
			Message: "Unexpected HTTP status",
			Pairs:   map[string]any{"status": resp.StatusCode, "body": sanitizeForLogging(string(body))},
		})
		return nil, &TransportError{Message: msg, StatusCode: resp.StatusCode, Errors: result.Errors}
	}

	if decodeErr != nil {
		requestsTotal.WithLabelValues(outcomeDecodeError).Inc()
		return nil, newTransportError(resp.StatusCode, decodeErr, "Can't decode response")
	}

	if len(result.Errors) > 0 {
		requestsTotal.WithLabelValues(outcomeGraphQLError).Inc()
		gqlErr := newGraphQLError(result.Errors)
		b.Logger.Debug(&logging.LogMessage{
			Message: "GraphQL errors in response",
			Pairs:   map[string]any{"error": gqlErr.Message},
		})
		return nil, gqlErr
	}

	requestsTotal.WithLabelValues(outcomeOK).Inc()
	if isNullJSON(result.Data) {
		return nil, nil
	}
	return result.Data, nil
}
