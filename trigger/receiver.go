package trigger

import (
	"io"
	"net/http"
	"strings"

	jsoniter "github.com/json-iterator/go"
	gql "github.com/lukaszraczylo/go-jobber-graphql"
	logging "github.com/lukaszraczylo/go-jobber-graphql/logging"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// HeadersField holds the request headers on every emitted item.
const HeadersField = "_webhookHeaders"

const maxBodySize = 1 << 20

// Emitter receives one item per delivery.
type Emitter func(item gql.Record)

// Receiver is the http.Handler Jobber posts deliveries to.
type Receiver struct {
	emit   Emitter
	logger *logging.Logger
}

func NewReceiver(emit Emitter, logger *logging.Logger) *Receiver {
	if logger == nil {
		logger = logging.New()
	}
	return &Receiver{emit: emit, logger: logger}
}

func (rc *Receiver) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodySize))
	if err != nil {
		http.Error(w, "unable to read body", http.StatusBadRequest)
		return
	}

	item := gql.Record{}
	if len(strings.TrimSpace(string(body))) > 0 {
		if err := json.Unmarshal(body, &item); err != nil {
			rc.logger.Warn(&logging.LogMessage{
				Message: "Rejected webhook delivery",
				Pairs:   map[string]any{"error": err.Error()},
			})
			http.Error(w, "body must be a JSON object", http.StatusBadRequest)
			return
		}
	}
	if item == nil {
		item = gql.Record{}
	}
	item[HeadersField] = headerFields(r.Header)

	rc.logger.Debug(&logging.LogMessage{
		Message: "Webhook delivery received",
		Pairs:   map[string]any{"fields": len(item)},
	})
	rc.emit(item)
	w.WriteHeader(http.StatusOK)
}

// headerFields flattens headers to lower-case names. Repeated headers are joined with ", ".
func headerFields(h http.Header) map[string]any {
	out := make(map[string]any, len(h))
	for name, values := range h {
		out[strings.ToLower(name)] = strings.Join(values, ", ")
	}
	return out
}
