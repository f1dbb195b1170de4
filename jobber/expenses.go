package jobber

import (
	"context"

	gql "github.com/lukaszraczylo/go-jobber-graphql"
)

type ExpenseFields struct {
	Amount          *float64 `json:"amount,omitempty"`
	ReimburseToUser *bool    `json:"reimburseToUser,omitempty"`
	Title           string   `json:"title,omitempty"`
	Date            string   `json:"date,omitempty"`
	JobID           string   `json:"jobId,omitempty"`
	UserID          string   `json:"userId,omitempty"`
	Description     string   `json:"description,omitempty"`
}

func (f ExpenseFields) input() (map[string]any, error) {
	input := map[string]any{}
	if f.Title != "" {
		input["title"] = f.Title
	}
	if f.Amount != nil {
		input["amount"] = *f.Amount
	}
	if err := optionalDate(input, "date", f.Date); err != nil {
		return nil, err
	}
	if f.JobID != "" {
		input["jobId"] = f.JobID
	}
	if f.UserID != "" {
		input["userId"] = f.UserID
	}
	if f.Description != "" {
		input["description"] = f.Description
	}
	if f.ReimburseToUser != nil {
		input["reimburseToUser"] = *f.ReimburseToUser
	}
	return input, nil
}

type CreateExpenseParams struct {
	ExpenseFields
}

type UpdateExpenseParams struct {
	ExpenseID string `json:"expenseId"`
	ExpenseFields
}

type ExpenseIDParams struct {
	ExpenseID string `json:"expenseId"`
}

type GetAllExpensesParams struct {
	JobID  string `json:"jobId,omitempty"`
	UserID string `json:"userId,omitempty"`
	ListParams
}

func (n *Node) CreateExpense(ctx context.Context, p CreateExpenseParams) (gql.Record, error) {
	input, err := p.input()
	if err != nil {
		return nil, err
	}
	if err := ValidateRequired(string(ResourceExpense), input, "title", "amount", "date"); err != nil {
		return nil, err
	}
	return n.mutate(ctx, createExpenseMutation, gql.Variables{"input": input}, "expenseCreate", "expense")
}

func (n *Node) GetExpense(ctx context.Context, p ExpenseIDParams) (gql.Record, error) {
	if err := requireID(ResourceExpense, p.ExpenseID); err != nil {
		return nil, err
	}
	return n.get(ctx, getExpenseQuery, gql.Variables{"id": p.ExpenseID}, "expense")
}

func (n *Node) GetAllExpenses(ctx context.Context, p GetAllExpensesParams) ([]gql.Record, error) {
	vars := gql.Variables{}
	filter := map[string]any{}
	if p.JobID != "" {
		filter["jobId"] = p.JobID
	}
	if p.UserID != "" {
		filter["userId"] = p.UserID
	}
	if len(filter) > 0 {
		vars["filter"] = filter
	}
	return n.list(ctx, getAllExpensesQuery, vars, "expenses", p.ListParams)
}

func (n *Node) UpdateExpense(ctx context.Context, p UpdateExpenseParams) (gql.Record, error) {
	if err := requireID(ResourceExpense, p.ExpenseID); err != nil {
		return nil, err
	}
	input, err := p.input()
	if err != nil {
		return nil, err
	}
	return n.mutate(ctx, updateExpenseMutation, gql.Variables{"id": p.ExpenseID, "input": input}, "expenseUpdate", "expense")
}

func (n *Node) DeleteExpense(ctx context.Context, p ExpenseIDParams) (gql.Record, error) {
	if err := requireID(ResourceExpense, p.ExpenseID); err != nil {
		return nil, err
	}
	return n.remove(ctx, deleteExpenseMutation, p.ExpenseID, "expenseDelete", "deletedExpenseId")
}
