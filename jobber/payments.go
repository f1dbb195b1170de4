package jobber

import (
	"context"

	gql "github.com/lukaszraczylo/go-jobber-graphql"
)

type CreatePaymentParams struct {
	InvoiceID     string        `json:"invoiceId"`
	PaymentMethod PaymentMethod `json:"paymentMethod,omitempty"`
	ReceivedAt    string        `json:"receivedAt,omitempty"`
	Note          string        `json:"note,omitempty"`
	CheckNumber   string        `json:"checkNumber,omitempty"`
	Amount        float64       `json:"amount"`
}

type PaymentIDParams struct {
	PaymentID string `json:"paymentId"`
}

func (n *Node) CreatePayment(ctx context.Context, p CreatePaymentParams) (gql.Record, error) {
	if err := ValidateRequired(string(ResourcePayment), map[string]any{"invoiceId": p.InvoiceID}, "invoiceId"); err != nil {
		return nil, err
	}
	if p.Amount <= 0 {
		return nil, gql.NewValidationError("Payment amount must be greater than zero")
	}
	method := p.PaymentMethod
	if method == "" {
		method = PaymentMethodCash
	}
	input := map[string]any{"invoiceId": p.InvoiceID, "amount": p.Amount, "paymentMethod": string(method)}
	if err := optionalDate(input, "receivedAt", p.ReceivedAt); err != nil {
		return nil, err
	}
	if p.Note != "" {
		input["note"] = p.Note
	}
	if p.CheckNumber != "" {
		input["checkNumber"] = p.CheckNumber
	}
	return n.mutate(ctx, createPaymentMutation, gql.Variables{"input": input}, "paymentCreate", "payment")
}

func (n *Node) GetPayment(ctx context.Context, p PaymentIDParams) (gql.Record, error) {
	if err := requireID(ResourcePayment, p.PaymentID); err != nil {
		return nil, err
	}
	return n.get(ctx, getPaymentQuery, gql.Variables{"id": p.PaymentID}, "payment")
}

func (n *Node) GetAllPayments(ctx context.Context, p ListParams) ([]gql.Record, error) {
	return n.list(ctx, getAllPaymentsQuery, nil, "payments", p)
}
