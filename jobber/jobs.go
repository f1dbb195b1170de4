package jobber

import (
	"context"

	gql "github.com/lukaszraczylo/go-jobber-graphql"
)

type JobStatus string

const (
	JobStatusActive    JobStatus = "active"
	JobStatusArchived  JobStatus = "archived"
	JobStatusCompleted JobStatus = "completed"
)

type JobType string

const (
	JobTypeOneOff    JobType = "one_off"
	JobTypeRecurring JobType = "recurring"
)

type CreateJobParams struct {
	ClientID     string  `json:"clientId"`
	Title        string  `json:"title"`
	LineItems    string  `json:"lineItems,omitempty"`
	PropertyID   string  `json:"propertyId,omitempty"`
	JobType      JobType `json:"jobType,omitempty"`
	Instructions string  `json:"instructions,omitempty"`
}

type UpdateJobParams struct {
	JobID        string `json:"jobId"`
	Title        string `json:"title,omitempty"`
	LineItems    string `json:"lineItems,omitempty"`
	Instructions string `json:"instructions,omitempty"`
}

type JobIDParams struct {
	JobID string `json:"jobId"`
}

type GetAllJobsParams struct {
	Status JobStatus `json:"status,omitempty"`
	ListParams
}

func (n *Node) CreateJob(ctx context.Context, p CreateJobParams) (gql.Record, error) {
	if err := ValidateRequired(string(ResourceJob), map[string]any{"clientId": p.ClientID, "title": p.Title}, "clientId", "title"); err != nil {
		return nil, err
	}
	input := map[string]any{"clientId": p.ClientID, "title": p.Title}
	if p.LineItems != "" {
		lineItems, err := lineItemsInput(p.LineItems)
		if err != nil {
			return nil, err
		}
		input["lineItems"] = lineItems
	}
	if p.PropertyID != "" {
		input["propertyId"] = p.PropertyID
	}
	if p.JobType != "" {
		input["jobType"] = string(p.JobType)
	}
	if p.Instructions != "" {
		input["instructions"] = p.Instructions
	}
	return n.mutate(ctx, createJobMutation, gql.Variables{"input": input}, "jobCreate", "job")
}

func (n *Node) GetJob(ctx context.Context, p JobIDParams) (gql.Record, error) {
	if err := requireID(ResourceJob, p.JobID); err != nil {
		return nil, err
	}
	return n.get(ctx, getJobQuery, gql.Variables{"id": p.JobID}, "job")
}

func (n *Node) GetAllJobs(ctx context.Context, p GetAllJobsParams) ([]gql.Record, error) {
	vars := gql.Variables{}
	if p.Status != "" {
		vars["filter"] = map[string]any{"jobStatus": string(p.Status)}
	}
	return n.list(ctx, getAllJobsQuery, vars, "jobs", p.ListParams)
}

func (n *Node) UpdateJob(ctx context.Context, p UpdateJobParams) (gql.Record, error) {
	if err := requireID(ResourceJob, p.JobID); err != nil {
		return nil, err
	}
	input := map[string]any{}
	if p.Title != "" {
		input["title"] = p.Title
	}
	if p.LineItems != "" {
		lineItems, err := lineItemsInput(p.LineItems)
		if err != nil {
			return nil, err
		}
		input["lineItems"] = lineItems
	}
	if p.Instructions != "" {
		input["instructions"] = p.Instructions
	}
	return n.mutate(ctx, updateJobMutation, gql.Variables{"id": p.JobID, "input": input}, "jobUpdate", "job")
}

func (n *Node) CloseJob(ctx context.Context, p JobIDParams) (gql.Record, error) {
	if err := requireID(ResourceJob, p.JobID); err != nil {
		return nil, err
	}
	return n.mutate(ctx, closeJobMutation, gql.Variables{"id": p.JobID}, "jobClose", "job")
}

func (n *Node) ArchiveJob(ctx context.Context, p JobIDParams) (gql.Record, error) {
	if err := requireID(ResourceJob, p.JobID); err != nil {
		return nil, err
	}
	return n.mutate(ctx, archiveJobMutation, gql.Variables{"id": p.JobID}, "jobArchive", "job")
}
