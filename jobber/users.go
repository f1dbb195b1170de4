package jobber

import (
	"context"

	gql "github.com/lukaszraczylo/go-jobber-graphql"
)

type UserIDParams struct {
	UserID string `json:"userId"`
}

func (n *Node) GetUser(ctx context.Context, p UserIDParams) (gql.Record, error) {
	if err := requireID(ResourceUser, p.UserID); err != nil {
		return nil, err
	}
	return n.get(ctx, getUserQuery, gql.Variables{"id": p.UserID}, "user")
}

func (n *Node) GetAllUsers(ctx context.Context, p ListParams) ([]gql.Record, error) {
	return n.list(ctx, getAllUsersQuery, nil, "users", p)
}

// GetCurrentUser returns the user the access token belongs to.
func (n *Node) GetCurrentUser(ctx context.Context, _ struct{}) (gql.Record, error) {
	return n.get(ctx, getCurrentUserQuery, nil, "user")
}
