package jobber

import (
	"context"

	gql "github.com/lukaszraczylo/go-jobber-graphql"
)

// ClientFields are the writable fields shared by client create and update.
type ClientFields struct {
	IsCompany      *bool    `json:"isCompany,omitempty"`
	IsLead         *bool    `json:"isLead,omitempty"`
	BillingAddress *Address `json:"billingAddress,omitempty"`
	FirstName      string   `json:"firstName,omitempty"`
	LastName       string   `json:"lastName,omitempty"`
	CompanyName    string   `json:"companyName,omitempty"`
	Tags           string   `json:"tags,omitempty"`
	Emails         []Email  `json:"emails,omitempty"`
	Phones         []Phone  `json:"phones,omitempty"`
}

func (f ClientFields) input() map[string]any {
	input := map[string]any{}
	if f.FirstName != "" {
		input["firstName"] = f.FirstName
	}
	if f.LastName != "" {
		input["lastName"] = f.LastName
	}
	if f.CompanyName != "" {
		input["companyName"] = f.CompanyName
	}
	if f.IsCompany != nil {
		input["isCompany"] = *f.IsCompany
	}
	if f.IsLead != nil {
		input["isLead"] = *f.IsLead
	}
	if tags := SplitList(f.Tags); len(tags) > 0 {
		input["tags"] = tags
	}
	if len(f.Emails) > 0 {
		input["emails"] = BuildEmailsInput(f.Emails)
	}
	if len(f.Phones) > 0 {
		input["phones"] = BuildPhonesInput(f.Phones)
	}
	if f.BillingAddress != nil {
		input["billingAddress"] = BuildAddressInput(*f.BillingAddress)
	}
	return input
}

type CreateClientParams struct {
	ClientFields
}

type UpdateClientParams struct {
	ClientID string `json:"clientId"`
	ClientFields
}

type ClientIDParams struct {
	ClientID string `json:"clientId"`
}

type GetAllClientsParams struct {
	SearchTerm string `json:"searchTerm,omitempty"`
	ListParams
}

type GetClientPropertiesParams struct {
	ClientID string `json:"clientId"`
	ListParams
}

func (n *Node) CreateClient(ctx context.Context, p CreateClientParams) (gql.Record, error) {
	return n.mutate(ctx, createClientMutation, gql.Variables{"input": p.input()}, "clientCreate", "client")
}

func (n *Node) GetClient(ctx context.Context, p ClientIDParams) (gql.Record, error) {
	if err := requireID(ResourceClient, p.ClientID); err != nil {
		return nil, err
	}
	return n.get(ctx, getClientQuery, gql.Variables{"id": p.ClientID}, "client")
}

func (n *Node) GetAllClients(ctx context.Context, p GetAllClientsParams) ([]gql.Record, error) {
	vars := gql.Variables{}
	if p.SearchTerm != "" {
		vars["searchTerm"] = p.SearchTerm
	}
	return n.list(ctx, getAllClientsQuery, vars, "clients", p.ListParams)
}

func (n *Node) UpdateClient(ctx context.Context, p UpdateClientParams) (gql.Record, error) {
	if err := requireID(ResourceClient, p.ClientID); err != nil {
		return nil, err
	}
	return n.mutate(ctx, updateClientMutation, gql.Variables{"id": p.ClientID, "input": p.input()}, "clientUpdate", "client")
}

func (n *Node) ArchiveClient(ctx context.Context, p ClientIDParams) (gql.Record, error) {
	if err := requireID(ResourceClient, p.ClientID); err != nil {
		return nil, err
	}
	return n.mutate(ctx, archiveClientMutation, gql.Variables{"id": p.ClientID}, "clientArchive", "client")
}

// GetClientProperties walks the properties connection nested under a client.
func (n *Node) GetClientProperties(ctx context.Context, p GetClientPropertiesParams) ([]gql.Record, error) {
	if err := requireID(ResourceClient, p.ClientID); err != nil {
		return nil, err
	}
	return n.list(ctx, getClientPropertiesQuery, gql.Variables{"clientId": p.ClientID}, "client.properties", p.ListParams)
}
