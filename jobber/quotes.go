package jobber

import (
	"context"

	gql "github.com/lukaszraczylo/go-jobber-graphql"
)

type QuoteStatus string

const (
	QuoteStatusDraft            QuoteStatus = "draft"
	QuoteStatusAwaitingResponse QuoteStatus = "awaiting_response"
	QuoteStatusApproved         QuoteStatus = "approved"
	QuoteStatusRejected         QuoteStatus = "rejected"
	QuoteStatusConverted        QuoteStatus = "converted"
)

type CreateQuoteParams struct {
	ClientID   string `json:"clientId"`
	LineItems  string `json:"lineItems"`
	Message    string `json:"message,omitempty"`
	PropertyID string `json:"propertyId,omitempty"`
	ValidUntil string `json:"validUntil,omitempty"`
}

type UpdateQuoteParams struct {
	QuoteID    string `json:"quoteId"`
	LineItems  string `json:"lineItems,omitempty"`
	Message    string `json:"message,omitempty"`
	ValidUntil string `json:"validUntil,omitempty"`
}

type QuoteIDParams struct {
	QuoteID string `json:"quoteId"`
}

type SendQuoteEmailParams struct {
	QuoteID string `json:"quoteId"`
	Subject string `json:"subject,omitempty"`
	Message string `json:"message,omitempty"`
}

type GetAllQuotesParams struct {
	Status QuoteStatus `json:"status,omitempty"`
	ListParams
}

// lineItemsInput parses a JSON array of line items into the mutation shape.
func lineItemsInput(text string) ([]map[string]any, error) {
	items, err := ParseLineItems(text)
	if err != nil {
		return nil, err
	}
	return BuildLineItemsInput(items), nil
}

func (n *Node) CreateQuote(ctx context.Context, p CreateQuoteParams) (gql.Record, error) {
	if err := ValidateRequired(string(ResourceQuote), map[string]any{"clientId": p.ClientID, "lineItems": p.LineItems}, "clientId", "lineItems"); err != nil {
		return nil, err
	}
	lineItems, err := lineItemsInput(p.LineItems)
	if err != nil {
		return nil, err
	}
	input := map[string]any{"clientId": p.ClientID, "lineItems": lineItems}
	if p.Message != "" {
		input["message"] = p.Message
	}
	if p.PropertyID != "" {
		input["propertyId"] = p.PropertyID
	}
	if err := optionalDate(input, "validUntil", p.ValidUntil); err != nil {
		return nil, err
	}
	return n.mutate(ctx, createQuoteMutation, gql.Variables{"input": input}, "quoteCreate", "quote")
}

func (n *Node) GetQuote(ctx context.Context, p QuoteIDParams) (gql.Record, error) {
	if err := requireID(ResourceQuote, p.QuoteID); err != nil {
		return nil, err
	}
	return n.get(ctx, getQuoteQuery, gql.Variables{"id": p.QuoteID}, "quote")
}

func (n *Node) GetAllQuotes(ctx context.Context, p GetAllQuotesParams) ([]gql.Record, error) {
	vars := gql.Variables{}
	if p.Status != "" {
		vars["filter"] = map[string]any{"quoteStatus": string(p.Status)}
	}
	return n.list(ctx, getAllQuotesQuery, vars, "quotes", p.ListParams)
}

func (n *Node) UpdateQuote(ctx context.Context, p UpdateQuoteParams) (gql.Record, error) {
	if err := requireID(ResourceQuote, p.QuoteID); err != nil {
		return nil, err
	}
	input := map[string]any{}
	if p.LineItems != "" {
		lineItems, err := lineItemsInput(p.LineItems)
		if err != nil {
			return nil, err
		}
		input["lineItems"] = lineItems
	}
	if p.Message != "" {
		input["message"] = p.Message
	}
	if err := optionalDate(input, "validUntil", p.ValidUntil); err != nil {
		return nil, err
	}
	return n.mutate(ctx, updateQuoteMutation, gql.Variables{"id": p.QuoteID, "input": input}, "quoteUpdate", "quote")
}

func (n *Node) ApproveQuote(ctx context.Context, p QuoteIDParams) (gql.Record, error) {
	if err := requireID(ResourceQuote, p.QuoteID); err != nil {
		return nil, err
	}
	return n.mutate(ctx, approveQuoteMutation, gql.Variables{"id": p.QuoteID}, "quoteApprove", "quote")
}

// ConvertQuoteToJob returns the job created from the quote.
func (n *Node) ConvertQuoteToJob(ctx context.Context, p QuoteIDParams) (gql.Record, error) {
	if err := requireID(ResourceQuote, p.QuoteID); err != nil {
		return nil, err
	}
	return n.mutate(ctx, convertQuoteToJobMutation, gql.Variables{"id": p.QuoteID}, "quoteConvertToJob", "job")
}

func (n *Node) SendQuoteEmail(ctx context.Context, p SendQuoteEmailParams) (gql.Record, error) {
	if err := requireID(ResourceQuote, p.QuoteID); err != nil {
		return nil, err
	}
	vars := gql.Variables{"id": p.QuoteID}
	input := map[string]any{}
	if p.Subject != "" {
		input["subject"] = p.Subject
	}
	if p.Message != "" {
		input["message"] = p.Message
	}
	if len(input) > 0 {
		vars["input"] = input
	}
	return n.mutate(ctx, sendQuoteEmailMutation, vars, "quoteSendEmail", "quote")
}
