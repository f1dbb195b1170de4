// Package jobber maps Jobber resources and verbs onto GraphQL documents sent through
// the gql transport.
package jobber

import (
	"context"

	jsoniter "github.com/json-iterator/go"
	gql "github.com/lukaszraczylo/go-jobber-graphql"
	logging "github.com/lukaszraczylo/go-jobber-graphql/logging"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Querier is the part of *gql.BaseClient the operations depend on.
type Querier interface {
	Query(ctx context.Context, document string, variables gql.Variables) (gql.Record, error)
	QueryAll(ctx context.Context, document string, variables gql.Variables, path string, limit int) ([]gql.Record, error)
}

type Node struct {
	client Querier
	Logger *logging.Logger
}

func NewNode(client Querier, logger *logging.Logger) *Node {
	if logger == nil {
		logger = logging.New()
	}
	return &Node{client: client, Logger: logger}
}

// ListParams are shared by every getAll operation. Limit defaults to 25 when
// ReturnAll is false.
type ListParams struct {
	ReturnAll bool `json:"returnAll"`
	Limit     int  `json:"limit"`
}

func (p ListParams) limit() int {
	if p.ReturnAll {
		return 0
	}
	if p.Limit <= 0 {
		return gql.DefaultPageSize
	}
	return p.Limit
}

// IDParams identify a single record.
type IDParams struct {
	ID string `json:"id"`
}

func (n *Node) get(ctx context.Context, document string, variables gql.Variables, field string) (gql.Record, error) {
	resp, err := n.client.Query(ctx, document, variables)
	if err != nil {
		return nil, err
	}
	return recordAt(resp, field), nil
}

func (n *Node) list(ctx context.Context, document string, variables gql.Variables, path string, p ListParams) ([]gql.Record, error) {
	items, err := n.client.QueryAll(ctx, document, variables, path, p.limit())
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []gql.Record{}
	}
	return items, nil
}

// mutate runs a mutation, rejects the payload when it carries userErrors and returns
// the entity found under entity.
func (n *Node) mutate(ctx context.Context, document string, variables gql.Variables, payload, entity string) (gql.Record, error) {
	resp, err := n.client.Query(ctx, document, variables)
	if err != nil {
		return nil, err
	}
	result := resp[payload]
	if err := gql.CheckUserErrors(result); err != nil {
		n.Logger.Debug(&logging.LogMessage{
			Message: "Mutation rejected",
			Pairs:   map[string]any{"mutation": payload, "error": err.Error()},
		})
		return nil, err
	}
	obj, _ := result.(map[string]any)
	return recordAt(obj, entity), nil
}

// remove runs a delete mutation and reports the deleted id under deletedKey.
func (n *Node) remove(ctx context.Context, document, id, payload, deletedKey string) (gql.Record, error) {
	resp, err := n.client.Query(ctx, document, gql.Variables{"id": id})
	if err != nil {
		return nil, err
	}
	result := resp[payload]
	if err := gql.CheckUserErrors(result); err != nil {
		return nil, err
	}
	deleted := any(id)
	if obj, ok := result.(map[string]any); ok && obj[deletedKey] != nil {
		deleted = obj[deletedKey]
	}
	return gql.Record{"success": true, deletedKey: deleted}, nil
}

func recordAt(obj map[string]any, field string) gql.Record {
	if rec, ok := obj[field].(map[string]any); ok {
		return rec
	}
	return gql.Record{}
}

func requireID(resource Resource, id string) error {
	return ValidateRequired(string(resource), map[string]any{"id": id}, "id")
}
