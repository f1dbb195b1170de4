package jobber

import (
	"context"

	gql "github.com/lukaszraczylo/go-jobber-graphql"
)

type Topic string

const (
	TopicClientCreate  Topic = "CLIENT_CREATE"
	TopicClientUpdate  Topic = "CLIENT_UPDATE"
	TopicJobCreate     Topic = "JOB_CREATE"
	TopicJobUpdate     Topic = "JOB_UPDATE"
	TopicQuoteCreate   Topic = "QUOTE_CREATE"
	TopicQuoteUpdate   Topic = "QUOTE_UPDATE"
	TopicInvoiceCreate Topic = "INVOICE_CREATE"
	TopicInvoiceUpdate Topic = "INVOICE_UPDATE"
	TopicVisitComplete Topic = "VISIT_COMPLETE"
)

// Topics lists every webhook topic that can be subscribed to.
var Topics = []Topic{
	TopicClientCreate, TopicClientUpdate,
	TopicJobCreate, TopicJobUpdate,
	TopicQuoteCreate, TopicQuoteUpdate,
	TopicInvoiceCreate, TopicInvoiceUpdate,
	TopicVisitComplete,
}

func (t Topic) Valid() bool {
	for _, known := range Topics {
		if t == known {
			return true
		}
	}
	return false
}

type CreateWebhookParams struct {
	URL   string `json:"url"`
	Topic Topic  `json:"topic"`
}

type WebhookIDParams struct {
	WebhookID string `json:"webhookId"`
}

func (n *Node) CreateWebhook(ctx context.Context, p CreateWebhookParams) (gql.Record, error) {
	if err := ValidateRequired(string(ResourceWebhook), map[string]any{"url": p.URL, "topic": string(p.Topic)}, "url", "topic"); err != nil {
		return nil, err
	}
	if !p.Topic.Valid() {
		return nil, gql.NewValidationError("Unknown webhook topic: %s", p.Topic)
	}
	input := map[string]any{"url": p.URL, "topic": string(p.Topic)}
	return n.mutate(ctx, CreateWebhookMutation, gql.Variables{"input": input}, "webhookCreate", "webhook")
}

// GetAllWebhooks returns the plain webhook list; it is not a paged connection.
func (n *Node) GetAllWebhooks(ctx context.Context, _ struct{}) ([]gql.Record, error) {
	resp, err := n.client.Query(ctx, GetAllWebhooksQuery, nil)
	if err != nil {
		return nil, err
	}
	list, _ := resp["webhooks"].([]any)
	out := make([]gql.Record, 0, len(list))
	for _, item := range list {
		if rec, ok := item.(map[string]any); ok {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (n *Node) DeleteWebhook(ctx context.Context, p WebhookIDParams) (gql.Record, error) {
	if err := requireID(ResourceWebhook, p.WebhookID); err != nil {
		return nil, err
	}
	return n.remove(ctx, DeleteWebhookMutation, p.WebhookID, "webhookDelete", "deletedWebhookId")
}
