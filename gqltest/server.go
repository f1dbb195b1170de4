// Package gqltest runs in-process GraphQL endpoints for tests.
package gqltest

import (
	"io"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"sync"

	jsoniter "github.com/json-iterator/go"
	"golang.org/x/net/http2"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Request is one decoded request received by the server.
type Request struct {
	Header    http.Header
	Variables map[string]any
	Query     string
}

// Responder produces the status code and body for a request.
type Responder func(r Request) (int, string)

type Server struct {
	*httptest.Server
	respond  Responder
	requests []Request
	mu       sync.Mutex
}

// NewServer starts a plain HTTP server answering with respond.
func NewServer(respond Responder) *Server {
	s := &Server{respond: respond}
	s.Server = httptest.NewServer(http.HandlerFunc(s.serveHTTP))
	return s
}

// NewTLSServer starts an HTTP/2 capable TLS server answering with respond.
func NewTLSServer(respond Responder) *Server {
	s := &Server{respond: respond}
	s.Server = httptest.NewUnstartedServer(http.HandlerFunc(s.serveHTTP))
	_ = http2.ConfigureServer(s.Server.Config, &http2.Server{})
	s.Server.TLS = s.Server.Config.TLSConfig
	s.Server.StartTLS()
	return s
}

func (s *Server) serveHTTP(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	var payload struct {
		Variables map[string]any `json:"variables"`
		Query     string         `json:"query"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"errors":[{"message":"Syntax Error: invalid request body"}]}`))
		return
	}

	req := Request{Header: r.Header.Clone(), Variables: payload.Variables, Query: payload.Query}
	s.mu.Lock()
	s.requests = append(s.requests, req)
	s.mu.Unlock()

	status, resp := s.respond(req)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(resp))
}

// Requests returns a copy of everything received so far.
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Request, len(s.requests))
	copy(out, s.requests)
	return out
}

func (s *Server) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.requests)
}

// Last returns the most recent request, or an empty Request when none arrived.
func (s *Server) Last() Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.requests) == 0 {
		return Request{}
	}
	return s.requests[len(s.requests)-1]
}

// Static answers every request with 200 and body.
func Static(body string) Responder {
	return func(Request) (int, string) {
		return http.StatusOK, body
	}
}

// Status answers every request with the given status and body.
func Status(code int, body string) Responder {
	return func(Request) (int, string) {
		return code, body
	}
}

// Sequence answers with bodies in order and repeats the last one once exhausted.
func Sequence(bodies ...string) Responder {
	var (
		mu sync.Mutex
		i  int
	)
	return func(Request) (int, string) {
		mu.Lock()
		defer mu.Unlock()
		if len(bodies) == 0 {
			return http.StatusOK, `{"data":null}`
		}
		body := bodies[i]
		if i < len(bodies)-1 {
			i++
		}
		return http.StatusOK, body
	}
}

// ByOperation picks a responder by the first key found in the query text.
// Keys are tried longest first so "clients" wins over "client".
func ByOperation(routes map[string]Responder) Responder {
	keys := make([]string, 0, len(routes))
	for k := range routes {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})
	return func(r Request) (int, string) {
		for _, k := range keys {
			if strings.Contains(r.Query, k) {
				return routes[k](r)
			}
		}
		return http.StatusOK, `{"errors":[{"message":"Unknown query"}]}`
	}
}

// Connection renders a Connection JSON object from raw node objects.
func Connection(hasNextPage bool, endCursor string, nodes ...string) string {
	var b strings.Builder
	b.WriteString(`{"edges":[`)
	for i, n := range nodes {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(`{"node":`)
		b.WriteString(n)
		b.WriteByte('}')
	}
	b.WriteString(`],"pageInfo":{"hasNextPage":`)
	if hasNextPage {
		b.WriteString("true")
	} else {
		b.WriteString("false")
	}
	if endCursor != "" {
		b.WriteString(`,"endCursor":"`)
		b.WriteString(endCursor)
		b.WriteByte('"')
	}
	b.WriteString(`}}`)
	return b.String()
}
