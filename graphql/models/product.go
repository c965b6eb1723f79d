package models

import (
	gql "github.com/graph-gophers/graphql-go"

	catalogEntity "storefront.GO/model/entity/catalog"
)

// Product is the GraphQL view of a catalog product.
type Product struct {
	ID          gql.ID
	Name        string
	Description string
	Price       float64
	Image       string
	Category    string
	Rating      float64
	Reviews     int32
	InStock     bool
	Featured    bool
}

// FromEntity maps a catalog entity (already localized) to the GraphQL model.
func FromEntity(p catalogEntity.Product) *Product {
	return &Product{
		ID:          gql.ID(p.ID),
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Image:       p.Image,
		Category:    p.Category,
		Rating:      p.Rating,
		Reviews:     int32(p.Reviews),
		InStock:     p.InStock,
		Featured:    p.Featured,
	}
}
