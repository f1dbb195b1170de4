package jobber

import (
	"context"

	gql "github.com/lukaszraczylo/go-jobber-graphql"
)

type PropertyFields struct {
	Address *Address `json:"address,omitempty"`
	TaxRate *float64 `json:"taxRate,omitempty"`
	Notes   string   `json:"notes,omitempty"`
}

func (f PropertyFields) input() map[string]any {
	input := map[string]any{}
	if f.Address != nil {
		if addr := BuildAddressInput(*f.Address); len(addr) > 0 {
			input["address"] = addr
		}
	}
	if f.TaxRate != nil {
		input["taxRate"] = *f.TaxRate
	}
	if f.Notes != "" {
		input["notes"] = f.Notes
	}
	return input
}

type CreatePropertyParams struct {
	ClientID string `json:"clientId"`
	PropertyFields
}

type UpdatePropertyParams struct {
	PropertyID string `json:"propertyId"`
	PropertyFields
}

type PropertyIDParams struct {
	PropertyID string `json:"propertyId"`
}

func (n *Node) CreateProperty(ctx context.Context, p CreatePropertyParams) (gql.Record, error) {
	if err := ValidateRequired(string(ResourceProperty), map[string]any{"clientId": p.ClientID}, "clientId"); err != nil {
		return nil, err
	}
	input := p.input()
	input["clientId"] = p.ClientID
	return n.mutate(ctx, createPropertyMutation, gql.Variables{"input": input}, "propertyCreate", "property")
}

func (n *Node) GetProperty(ctx context.Context, p PropertyIDParams) (gql.Record, error) {
	if err := requireID(ResourceProperty, p.PropertyID); err != nil {
		return nil, err
	}
	return n.get(ctx, getPropertyQuery, gql.Variables{"id": p.PropertyID}, "property")
}

func (n *Node) GetAllProperties(ctx context.Context, p ListParams) ([]gql.Record, error) {
	return n.list(ctx, getAllPropertiesQuery, nil, "properties", p)
}

func (n *Node) UpdateProperty(ctx context.Context, p UpdatePropertyParams) (gql.Record, error) {
	if err := requireID(ResourceProperty, p.PropertyID); err != nil {
		return nil, err
	}
	return n.mutate(ctx, updatePropertyMutation, gql.Variables{"id": p.PropertyID, "input": p.input()}, "propertyUpdate", "property")
}

func (n *Node) DeleteProperty(ctx context.Context, p PropertyIDParams) (gql.Record, error) {
	if err := requireID(ResourceProperty, p.PropertyID); err != nil {
		return nil, err
	}
	return n.remove(ctx, deletePropertyMutation, p.PropertyID, "propertyDelete", "deletedPropertyId")
}
