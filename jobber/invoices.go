package jobber

import (
	"context"

	gql "github.com/lukaszraczylo/go-jobber-graphql"
)

type InvoiceStatus string

const (
	InvoiceStatusDraft           InvoiceStatus = "draft"
	InvoiceStatusAwaitingPayment InvoiceStatus = "awaiting_payment"
	InvoiceStatusPastDue         InvoiceStatus = "past_due"
	InvoiceStatusPaid            InvoiceStatus = "paid"
	InvoiceStatusBadDebt         InvoiceStatus = "bad_debt"
)

type PaymentMethod string

const (
	PaymentMethodCash         PaymentMethod = "cash"
	PaymentMethodCheck        PaymentMethod = "check"
	PaymentMethodCreditCard   PaymentMethod = "credit_card"
	PaymentMethodBankTransfer PaymentMethod = "bank_transfer"
	PaymentMethodOther        PaymentMethod = "other"
)

type DeliveryMethod string

const (
	DeliveryEmail DeliveryMethod = "EMAIL"
	DeliverySMS   DeliveryMethod = "SMS"
)

type CreateInvoiceParams struct {
	ClientID   string `json:"clientId"`
	LineItems  string `json:"lineItems"`
	Subject    string `json:"subject,omitempty"`
	Message    string `json:"message,omitempty"`
	DueDate    string `json:"dueDate,omitempty"`
	JobID      string `json:"jobId,omitempty"`
	PropertyID string `json:"propertyId,omitempty"`
}

type UpdateInvoiceParams struct {
	InvoiceID string `json:"invoiceId"`
	LineItems string `json:"lineItems,omitempty"`
	Subject   string `json:"subject,omitempty"`
	Message   string `json:"message,omitempty"`
	DueDate   string `json:"dueDate,omitempty"`
}

type InvoiceIDParams struct {
	InvoiceID string `json:"invoiceId"`
}

type SendInvoiceParams struct {
	InvoiceID      string         `json:"invoiceId"`
	DeliveryMethod DeliveryMethod `json:"deliveryMethod,omitempty"`
}

type MarkInvoicePaidParams struct {
	InvoiceID     string        `json:"invoiceId"`
	PaymentMethod PaymentMethod `json:"paymentMethod,omitempty"`
	ReceivedAt    string        `json:"receivedAt,omitempty"`
	Note          string        `json:"note,omitempty"`
}

type GetAllInvoicesParams struct {
	Status   InvoiceStatus `json:"status,omitempty"`
	ClientID string        `json:"clientId,omitempty"`
	ListParams
}

func invoiceInput(lineItemsText, subject, message, dueDate string) (map[string]any, error) {
	input := map[string]any{}
	if lineItemsText != "" {
		lineItems, err := lineItemsInput(lineItemsText)
		if err != nil {
			return nil, err
		}
		input["lineItems"] = lineItems
	}
	if subject != "" {
		input["subject"] = subject
	}
	if message != "" {
		input["message"] = message
	}
	if err := optionalDate(input, "dueDate", dueDate); err != nil {
		return nil, err
	}
	return input, nil
}

func (n *Node) CreateInvoice(ctx context.Context, p CreateInvoiceParams) (gql.Record, error) {
	if err := ValidateRequired(string(ResourceInvoice), map[string]any{"clientId": p.ClientID, "lineItems": p.LineItems}, "clientId", "lineItems"); err != nil {
		return nil, err
	}
	input, err := invoiceInput(p.LineItems, p.Subject, p.Message, p.DueDate)
	if err != nil {
		return nil, err
	}
	input["clientId"] = p.ClientID
	if p.JobID != "" {
		input["jobId"] = p.JobID
	}
	if p.PropertyID != "" {
		input["propertyId"] = p.PropertyID
	}
	return n.mutate(ctx, createInvoiceMutation, gql.Variables{"input": input}, "invoiceCreate", "invoice")
}

func (n *Node) GetInvoice(ctx context.Context, p InvoiceIDParams) (gql.Record, error) {
	if err := requireID(ResourceInvoice, p.InvoiceID); err != nil {
		return nil, err
	}
	return n.get(ctx, getInvoiceQuery, gql.Variables{"id": p.InvoiceID}, "invoice")
}

func (n *Node) GetAllInvoices(ctx context.Context, p GetAllInvoicesParams) ([]gql.Record, error) {
	vars := gql.Variables{}
	filter := map[string]any{}
	if p.Status != "" {
		filter["invoiceStatus"] = string(p.Status)
	}
	if p.ClientID != "" {
		filter["clientId"] = p.ClientID
	}
	if len(filter) > 0 {
		vars["filter"] = filter
	}
	return n.list(ctx, getAllInvoicesQuery, vars, "invoices", p.ListParams)
}

func (n *Node) UpdateInvoice(ctx context.Context, p UpdateInvoiceParams) (gql.Record, error) {
	if err := requireID(ResourceInvoice, p.InvoiceID); err != nil {
		return nil, err
	}
	input, err := invoiceInput(p.LineItems, p.Subject, p.Message, p.DueDate)
	if err != nil {
		return nil, err
	}
	return n.mutate(ctx, updateInvoiceMutation, gql.Variables{"id": p.InvoiceID, "input": input}, "invoiceUpdate", "invoice")
}

// SendInvoice delivers the invoice to the client, by email unless SMS is requested.
func (n *Node) SendInvoice(ctx context.Context, p SendInvoiceParams) (gql.Record, error) {
	if err := requireID(ResourceInvoice, p.InvoiceID); err != nil {
		return nil, err
	}
	method := p.DeliveryMethod
	if method == "" {
		method = DeliveryEmail
	}
	vars := gql.Variables{"id": p.InvoiceID, "input": map[string]any{"deliveryMethod": string(method)}}
	return n.mutate(ctx, sendInvoiceMutation, vars, "invoiceSend", "invoice")
}

func (n *Node) MarkInvoicePaid(ctx context.Context, p MarkInvoicePaidParams) (gql.Record, error) {
	if err := requireID(ResourceInvoice, p.InvoiceID); err != nil {
		return nil, err
	}
	method := p.PaymentMethod
	if method == "" {
		method = PaymentMethodCash
	}
	input := map[string]any{"paymentMethod": string(method)}
	if err := optionalDate(input, "receivedAt", p.ReceivedAt); err != nil {
		return nil, err
	}
	if p.Note != "" {
		input["note"] = p.Note
	}
	return n.mutate(ctx, markInvoicePaidMutation, gql.Variables{"id": p.InvoiceID, "input": input}, "invoiceMarkPaid", "invoice")
}

func (n *Node) VoidInvoice(ctx context.Context, p InvoiceIDParams) (gql.Record, error) {
	if err := requireID(ResourceInvoice, p.InvoiceID); err != nil {
		return nil, err
	}
	return n.mutate(ctx, voidInvoiceMutation, gql.Variables{"id": p.InvoiceID}, "invoiceVoid", "invoice")
}
