package graphqltest

import (
	"context"
	"encoding/json"

	gql "github.com/graph-gophers/graphql-go"

	graphqlpkg "storefront.GO/graphql"
	gqlmodels "storefront.GO/graphql/models"
)

// mockRoot serves canned catalog data so HTTP plumbing can be tested
// without a database.
type mockRoot struct{}

func (r *mockRoot) Query() *mockQuery { return &mockQuery{} }

type mockQuery struct{}

func (q *mockQuery) Products(ctx context.Context, args struct {
	Category *string
	Search   *string
	Featured *bool
	Locale   *string
}) ([]*gqlmodels.Product, error) {
	name := "Mock Product"
	if graphqlpkg.LocaleFromContext(ctx) == "es" {
		name = "Producto Simulado"
	}
	return []*gqlmodels.Product{{
		ID:       gql.ID("1"),
		Name:     name,
		Price:    9.99,
		Category: "Electronics",
		InStock:  true,
	}}, nil
}

func (q *mockQuery) Product(ctx context.Context, args struct {
	ID     gql.ID
	Locale *string
}) (*gqlmodels.Product, error) {
	if args.ID != "1" {
		return nil, nil
	}
	return &gqlmodels.Product{ID: "1", Name: "Mock Product", Price: 9.99, InStock: true}, nil
}

func (q *mockQuery) Categories(ctx context.Context) ([]string, error) {
	return []string{"All", "Electronics"}, nil
}

func (q *mockQuery) Extension(ctx context.Context, args struct {
	Name string
	Args *string
}) (*string, error) {
	out, _ := json.Marshal(map[string]string{"ext": args.Name})
	s := string(out)
	return &s, nil
}

// NewMockSchema parses the real schema against the mock resolver.
func NewMockSchema() *gql.Schema {
	return gql.MustParseSchema(graphqlpkg.Schema(), &mockRoot{}, gql.UseFieldResolvers())
}
