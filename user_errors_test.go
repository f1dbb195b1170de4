package gql

import (
	"errors"
	"testing"
)

func (suite *Tests) TestCheckUserErrors() {
	tests := []struct {
		payload   any
		name      string
		wantError string
		wantPaths [][]string
	}{
		{name: "nil payload", payload: nil},
		{name: "non object payload", payload: "client"},
		{name: "absent userErrors", payload: map[string]any{"client": map[string]any{"id": "1"}}},
		{name: "null userErrors", payload: map[string]any{"userErrors": nil}},
		{name: "empty userErrors", payload: map[string]any{"userErrors": []any{}}},
		{name: "non list userErrors", payload: map[string]any{"userErrors": "oops"}},
		{
			name: "single user error",
			payload: map[string]any{
				"userErrors": []any{map[string]any{"message": "Title can't be blank", "path": []any{"input", "title"}}},
			},
			wantError: "Title can't be blank",
			wantPaths: [][]string{{"input", "title"}},
		},
		{
			name: "multiple user errors keep order",
			payload: map[string]any{
				"client": nil,
				"userErrors": []any{
					map[string]any{"message": "First name is required"},
					map[string]any{"message": "Email is invalid", "path": []any{"emails", float64(0)}},
				},
			},
			wantError: "First name is required, Email is invalid",
			wantPaths: [][]string{nil, {"emails", "0"}},
		},
		{
			name: "typed map list",
			payload: map[string]any{
				"userErrors": []map[string]any{
					{"message": "Quote not found", "path": []string{"quoteId"}},
					{"message": "Line item invalid", "path": []any{"lineItems", 2}},
				},
			},
			wantError: "Quote not found, Line item invalid",
			wantPaths: [][]string{{"quoteId"}, {"lineItems", "2"}},
		},
		{
			name: "typed UserError list",
			payload: Record{
				"userErrors": []UserError{{Message: "Invoice is locked", Path: []string{"invoiceId"}}},
			},
			wantError: "Invoice is locked",
			wantPaths: [][]string{{"invoiceId"}},
		},
		{name: "empty typed map list", payload: map[string]any{"userErrors": []map[string]any{}}},
		{name: "empty typed UserError list", payload: map[string]any{"userErrors": []UserError{}}},
	}
	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			err := CheckUserErrors(tt.payload)
			if tt.wantError == "" {
				assert.NoError(err)
				return
			}
			var ve *ValidationError
			assert.True(errors.As(err, &ve))
			assert.EqualError(err, tt.wantError)
			assert.Len(ve.UserErrors, len(tt.wantPaths))
			for i, p := range tt.wantPaths {
				assert.Equal(p, ve.UserErrors[i].Path)
			}
		})
	}
}

func (suite *Tests) TestTransportError_Error() {
	assert.Equal("Unknown error occurred", (&TransportError{}).Error())
	assert.Equal("boom", (&TransportError{Err: errors.New("boom")}).Error())
	assert.Equal("GraphQL Error: a, b", newGraphQLError([]GraphQLError{{Message: "a"}, {Message: "b"}}).Error())

	wrapped := newTransportError(0, errors.New("dial tcp: refused"), "Request to %s failed", "http://x")
	assert.Equal("Request to http://x failed: dial tcp: refused", wrapped.Error())
	assert.Equal(500, wrapped.StatusCode)
}
