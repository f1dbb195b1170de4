package jobber

import (
	"context"

	gql "github.com/lukaszraczylo/go-jobber-graphql"
)

type CreateVisitParams struct {
	AllDay          *bool  `json:"allDay,omitempty"`
	JobID           string `json:"jobId"`
	Title           string `json:"title,omitempty"`
	StartAt         string `json:"startAt"`
	EndAt           string `json:"endAt,omitempty"`
	AssignedUserIDs string `json:"assignedUserIds,omitempty"`
	Instructions    string `json:"instructions,omitempty"`
}

type UpdateVisitParams struct {
	AllDay          *bool  `json:"allDay,omitempty"`
	VisitID         string `json:"visitId"`
	Title           string `json:"title,omitempty"`
	StartAt         string `json:"startAt,omitempty"`
	EndAt           string `json:"endAt,omitempty"`
	AssignedUserIDs string `json:"assignedUserIds,omitempty"`
	Instructions    string `json:"instructions,omitempty"`
}

type VisitIDParams struct {
	VisitID string `json:"visitId"`
}

type CompleteVisitParams struct {
	VisitID     string `json:"visitId"`
	CompletedAt string `json:"completedAt,omitempty"`
}

type GetAllVisitsParams struct {
	JobID string `json:"jobId,omitempty"`
	ListParams
}

func visitInput(title, startAt, endAt, assigned, instructions string, allDay *bool) (map[string]any, error) {
	input := map[string]any{}
	if title != "" {
		input["title"] = title
	}
	if err := optionalDate(input, "startAt", startAt); err != nil {
		return nil, err
	}
	if err := optionalDate(input, "endAt", endAt); err != nil {
		return nil, err
	}
	if allDay != nil {
		input["allDay"] = *allDay
	}
	if ids := SplitList(assigned); len(ids) > 0 {
		input["assignedUserIds"] = ids
	}
	if instructions != "" {
		input["instructions"] = instructions
	}
	return input, nil
}

func (n *Node) CreateVisit(ctx context.Context, p CreateVisitParams) (gql.Record, error) {
	if err := ValidateRequired(string(ResourceVisit), map[string]any{"jobId": p.JobID, "startAt": p.StartAt}, "jobId", "startAt"); err != nil {
		return nil, err
	}
	input, err := visitInput(p.Title, p.StartAt, p.EndAt, p.AssignedUserIDs, p.Instructions, p.AllDay)
	if err != nil {
		return nil, err
	}
	input["jobId"] = p.JobID
	return n.mutate(ctx, createVisitMutation, gql.Variables{"input": input}, "visitCreate", "visit")
}

func (n *Node) GetVisit(ctx context.Context, p VisitIDParams) (gql.Record, error) {
	if err := requireID(ResourceVisit, p.VisitID); err != nil {
		return nil, err
	}
	return n.get(ctx, getVisitQuery, gql.Variables{"id": p.VisitID}, "visit")
}

func (n *Node) GetAllVisits(ctx context.Context, p GetAllVisitsParams) ([]gql.Record, error) {
	vars := gql.Variables{}
	if p.JobID != "" {
		vars["filter"] = map[string]any{"jobId": p.JobID}
	}
	return n.list(ctx, getAllVisitsQuery, vars, "visits", p.ListParams)
}

func (n *Node) UpdateVisit(ctx context.Context, p UpdateVisitParams) (gql.Record, error) {
	if err := requireID(ResourceVisit, p.VisitID); err != nil {
		return nil, err
	}
	input, err := visitInput(p.Title, p.StartAt, p.EndAt, p.AssignedUserIDs, p.Instructions, p.AllDay)
	if err != nil {
		return nil, err
	}
	return n.mutate(ctx, updateVisitMutation, gql.Variables{"id": p.VisitID, "input": input}, "visitUpdate", "visit")
}

func (n *Node) CompleteVisit(ctx context.Context, p CompleteVisitParams) (gql.Record, error) {
	if err := requireID(ResourceVisit, p.VisitID); err != nil {
		return nil, err
	}
	vars := gql.Variables{"id": p.VisitID}
	if p.CompletedAt != "" {
		completedAt, err := FormatDateToISO(p.CompletedAt)
		if err != nil {
			return nil, err
		}
		vars["input"] = map[string]any{"completedAt": completedAt}
	}
	return n.mutate(ctx, completeVisitMutation, vars, "visitComplete", "visit")
}

func (n *Node) IncompleteVisit(ctx context.Context, p VisitIDParams) (gql.Record, error) {
	if err := requireID(ResourceVisit, p.VisitID); err != nil {
		return nil, err
	}
	return n.mutate(ctx, incompleteVisitMutation, gql.Variables{"id": p.VisitID}, "visitIncomplete", "visit")
}

func (n *Node) DeleteVisit(ctx context.Context, p VisitIDParams) (gql.Record, error) {
	if err := requireID(ResourceVisit, p.VisitID); err != nil {
		return nil, err
	}
	return n.remove(ctx, deleteVisitMutation, p.VisitID, "visitDelete", "deletedVisitId")
}
