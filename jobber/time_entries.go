package jobber

import (
	"context"

	gql "github.com/lukaszraczylo/go-jobber-graphql"
)

type CreateTimeEntryParams struct {
	UserID  string `json:"userId"`
	StartAt string `json:"startAt"`
	EndAt   string `json:"endAt,omitempty"`
	Note    string `json:"note,omitempty"`
	VisitID string `json:"visitId,omitempty"`
}

type UpdateTimeEntryParams struct {
	TimeEntryID string `json:"timeEntryId"`
	StartAt     string `json:"startAt,omitempty"`
	EndAt       string `json:"endAt,omitempty"`
	Note        string `json:"note,omitempty"`
}

type TimeEntryIDParams struct {
	TimeEntryID string `json:"timeEntryId"`
}

type GetAllTimeEntriesParams struct {
	UserID  string `json:"userId,omitempty"`
	VisitID string `json:"visitId,omitempty"`
	ListParams
}

func timeEntryInput(startAt, endAt, note string) (map[string]any, error) {
	input := map[string]any{}
	if err := optionalDate(input, "startAt", startAt); err != nil {
		return nil, err
	}
	if err := optionalDate(input, "endAt", endAt); err != nil {
		return nil, err
	}
	if note != "" {
		input["note"] = note
	}
	return input, nil
}

func (n *Node) CreateTimeEntry(ctx context.Context, p CreateTimeEntryParams) (gql.Record, error) {
	if err := ValidateRequired(string(ResourceTimeEntry), map[string]any{"userId": p.UserID, "startAt": p.StartAt}, "userId", "startAt"); err != nil {
		return nil, err
	}
	input, err := timeEntryInput(p.StartAt, p.EndAt, p.Note)
	if err != nil {
		return nil, err
	}
	input["userId"] = p.UserID
	if p.VisitID != "" {
		input["visitId"] = p.VisitID
	}
	return n.mutate(ctx, createTimeEntryMutation, gql.Variables{"input": input}, "timeEntryCreate", "timeEntry")
}

func (n *Node) GetTimeEntry(ctx context.Context, p TimeEntryIDParams) (gql.Record, error) {
	if err := requireID(ResourceTimeEntry, p.TimeEntryID); err != nil {
		return nil, err
	}
	return n.get(ctx, getTimeEntryQuery, gql.Variables{"id": p.TimeEntryID}, "timeEntry")
}

func (n *Node) GetAllTimeEntries(ctx context.Context, p GetAllTimeEntriesParams) ([]gql.Record, error) {
	vars := gql.Variables{}
	filter := map[string]any{}
	if p.UserID != "" {
		filter["userId"] = p.UserID
	}
	if p.VisitID != "" {
		filter["visitId"] = p.VisitID
	}
	if len(filter) > 0 {
		vars["filter"] = filter
	}
	return n.list(ctx, getAllTimeEntriesQuery, vars, "timeEntries", p.ListParams)
}

func (n *Node) UpdateTimeEntry(ctx context.Context, p UpdateTimeEntryParams) (gql.Record, error) {
	if err := requireID(ResourceTimeEntry, p.TimeEntryID); err != nil {
		return nil, err
	}
	input, err := timeEntryInput(p.StartAt, p.EndAt, p.Note)
	if err != nil {
		return nil, err
	}
	return n.mutate(ctx, updateTimeEntryMutation, gql.Variables{"id": p.TimeEntryID, "input": input}, "timeEntryUpdate", "timeEntry")
}

func (n *Node) DeleteTimeEntry(ctx context.Context, p TimeEntryIDParams) (gql.Record, error) {
	if err := requireID(ResourceTimeEntry, p.TimeEntryID); err != nil {
		return nil, err
	}
	return n.remove(ctx, deleteTimeEntryMutation, p.TimeEntryID, "timeEntryDelete", "deletedTimeEntryId")
}
