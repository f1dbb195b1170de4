package jobber

import (
	"context"

	gql "github.com/lukaszraczylo/go-jobber-graphql"
)

type ProductCategory string

const (
	ProductCategoryProducts ProductCategory = "products"
	ProductCategoryServices ProductCategory = "services"
)

type ProductFields struct {
	DefaultUnitCost *float64        `json:"defaultUnitCost,omitempty"`
	OnlineBookable  *bool           `json:"onlineBookable,omitempty"`
	Taxable         *bool           `json:"taxable,omitempty"`
	Name            string          `json:"name,omitempty"`
	Category        ProductCategory `json:"category,omitempty"`
	Description     string          `json:"description,omitempty"`
}

func (f ProductFields) input() map[string]any {
	input := map[string]any{}
	if f.Name != "" {
		input["name"] = f.Name
	}
	if f.Category != "" {
		input["category"] = string(f.Category)
	}
	if f.DefaultUnitCost != nil {
		input["defaultUnitCost"] = *f.DefaultUnitCost
	}
	if f.Description != "" {
		input["description"] = f.Description
	}
	if f.OnlineBookable != nil {
		input["onlineBookable"] = *f.OnlineBookable
	}
	if f.Taxable != nil {
		input["taxable"] = *f.Taxable
	}
	return input
}

type CreateProductParams struct {
	ProductFields
}

type UpdateProductParams struct {
	ProductID string `json:"productId"`
	ProductFields
}

type ProductIDParams struct {
	ProductID string `json:"productId"`
}

type GetAllProductsParams struct {
	Category ProductCategory `json:"category,omitempty"`
	ListParams
}

func (n *Node) CreateProduct(ctx context.Context, p CreateProductParams) (gql.Record, error) {
	input := p.input()
	if err := ValidateRequired(string(ResourceProduct), input, "name"); err != nil {
		return nil, err
	}
	return n.mutate(ctx, createProductMutation, gql.Variables{"input": input}, "productOrServiceCreate", "productOrService")
}

func (n *Node) GetProduct(ctx context.Context, p ProductIDParams) (gql.Record, error) {
	if err := requireID(ResourceProduct, p.ProductID); err != nil {
		return nil, err
	}
	return n.get(ctx, getProductQuery, gql.Variables{"id": p.ProductID}, "productOrService")
}

func (n *Node) GetAllProducts(ctx context.Context, p GetAllProductsParams) ([]gql.Record, error) {
	vars := gql.Variables{}
	if p.Category != "" {
		vars["filter"] = map[string]any{"category": string(p.Category)}
	}
	return n.list(ctx, getAllProductsQuery, vars, "productsAndServices", p.ListParams)
}

func (n *Node) UpdateProduct(ctx context.Context, p UpdateProductParams) (gql.Record, error) {
	if err := requireID(ResourceProduct, p.ProductID); err != nil {
		return nil, err
	}
	return n.mutate(ctx, updateProductMutation, gql.Variables{"id": p.ProductID, "input": p.input()}, "productOrServiceUpdate", "productOrService")
}

func (n *Node) DeleteProduct(ctx context.Context, p ProductIDParams) (gql.Record, error) {
	if err := requireID(ResourceProduct, p.ProductID); err != nil {
		return nil, err
	}
	return n.remove(ctx, deleteProductMutation, p.ProductID, "productOrServiceDelete", "deletedProductOrServiceId")
}
