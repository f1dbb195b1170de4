package main

import (
	"context"
	"fmt"

	graphql "github.com/lukaszraczylo/go-jobber-graphql"
	"github.com/lukaszraczylo/go-jobber-graphql/jobber"
)

func main() {
	gql := graphql.NewConnection()
	node := jobber.NewNode(gql, gql.Logger)
	ctx := context.Background()

	me, err := node.GetCurrentUser(ctx, struct{}{})
	if err != nil {
		fmt.Println("Error returned from query:", err)
		return
	}
	fmt.Println("Connected as:", me["id"])

	clients, err := node.GetAllClients(ctx, jobber.GetAllClientsParams{ListParams: jobber.ListParams{Limit: 5}})
	if err != nil {
		fmt.Println("Error returned from query:", err)
		return
	}
	for _, c := range clients {
		fmt.Println(c["id"], c["name"])
	}

	// The same walk through the raw transport.
	raw, err := gql.QueryAll(ctx, `query Clients($first: Int, $after: String) {
		clients(first: $first, after: $after) {
			edges { node { id name } }
			pageInfo { hasNextPage endCursor }
		}
	}`, nil, "clients", 5)
	if err != nil {
		fmt.Println("Error returned from query:", err)
		return
	}
	fmt.Println("Fetched", len(raw), "clients")
}
