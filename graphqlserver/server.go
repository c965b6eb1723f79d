package graphqlserver

import (
	"context"
	"encoding/json"

	gql "github.com/graph-gophers/graphql-go"
	"github.com/graph-gophers/graphql-go/relay"
	"gorm.io/gorm"

	"storefront.GO/graphql"
	gqlmodels "storefront.GO/graphql/models"
	"storefront.GO/graphql/registry"
	"storefront.GO/graphql/resolvers"
)

// RootResolver is the root for graphql-go. Query resolvers are created per
// request with the locale from headers/query params.
type RootResolver struct {
	DB *gorm.DB
}

// Query returns the query resolver.
func (r *RootResolver) Query() *QueryResolver {
	return &QueryResolver{db: r.DB}
}

// QueryResolver implements Query fields. Delegates to resolvers package.
type QueryResolver struct {
	db *gorm.DB
}

// ProductsArgs matches the products query arguments.
type ProductsArgs struct {
	Category *string
	Search   *string
	Featured *bool
	Locale   *string
}

func (r *QueryResolver) Products(ctx context.Context, args ProductsArgs) ([]*gqlmodels.Product, error) {
	res := resolvers.NewResolver(r.db, graphql.LocaleFromContext(ctx))
	return res.Products(ctx, args.Category, args.Search, args.Featured, args.Locale)
}

// ProductArgs matches the product query arguments.
type ProductArgs struct {
	ID     gql.ID
	Locale *string
}

func (r *QueryResolver) Product(ctx context.Context, args ProductArgs) (*gqlmodels.Product, error) {
	res := resolvers.NewResolver(r.db, graphql.LocaleFromContext(ctx))
	return res.Product(ctx, string(args.ID), args.Locale)
}

func (r *QueryResolver) Categories(ctx context.Context) ([]string, error) {
	res := resolvers.NewResolver(r.db, graphql.LocaleFromContext(ctx))
	return res.Categories(ctx)
}

// ExtensionArgs for extension(name, args).
type ExtensionArgs struct {
	Name string
	Args *string
}

func (r *QueryResolver) Extension(ctx context.Context, args ExtensionArgs) (*string, error) {
	var m map[string]interface{}
	if args.Args != nil && *args.Args != "" {
		_ = json.Unmarshal([]byte(*args.Args), &m)
	}
	if m == nil {
		m = make(map[string]interface{})
	}
	out, err := registry.Resolve(ctx, args.Name, m)
	if err != nil {
		return nil, err
	}
	b, err := json.Marshal(out)
	if err != nil {
		return nil, err
	}
	s := string(b)
	return &s, nil
}

// NewSchema parses the schema and returns a graphql-go Schema.
func NewSchema(db *gorm.DB) (*gql.Schema, error) {
	return gql.ParseSchema(graphql.Schema(), &RootResolver{DB: db}, gql.UseFieldResolvers())
}

// Handler returns an http.Handler for GraphQL (relay format).
func Handler(schema *gql.Schema) *relay.Handler {
	return &relay.Handler{Schema: schema}
}
