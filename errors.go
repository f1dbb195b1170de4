package gql

import (
	"fmt"
	"net/http"
	"strings"
)

const (
	defaultTransportMessage = "Unknown error occurred"
	graphQLErrorPrefix      = "GraphQL Error: "
)

// TransportError covers everything that goes wrong on the way to or from the API:
// token retrieval, connection failures, non-2xx responses, undecodable bodies and
// top-level GraphQL errors.
type TransportError struct {
	Err        error
	Message    string
	Errors     []GraphQLError
	StatusCode int
}

func (e *TransportError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return defaultTransportMessage
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

func newGraphQLError(errs []GraphQLError) *TransportError {
	messages := make([]string, 0, len(errs))
	for _, e := range errs {
		messages = append(messages, e.Message)
	}
	return &TransportError{
		Message:    graphQLErrorPrefix + strings.Join(messages, ", "),
		Errors:     errs,
		StatusCode: http.StatusOK,
	}
}

func newTransportError(status int, err error, format string, args ...any) *TransportError {
	msg := fmt.Sprintf(format, args...)
	if err != nil {
		msg = fmt.Sprintf("%s: %s", msg, err.Error())
	}
	if status == 0 {
		status = http.StatusInternalServerError
	}
	return &TransportError{Message: msg, StatusCode: status, Err: err}
}

// ValidationError is a domain rejection reported through a mutation's userErrors,
// or caller input that could not be shaped into a request.
type ValidationError struct {
	Message    string
	UserErrors []UserError
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(format string, args ...any) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}
