package resolvers

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"storefront.GO/config"
	"storefront.GO/graphql"
	gqlmodels "storefront.GO/graphql/models"
	catalogEntity "storefront.GO/model/entity/catalog"
	catalogRepo "storefront.GO/model/repository/catalog"
)

// Resolver answers catalog queries for one request.
type Resolver struct {
	repo   *catalogRepo.CatalogRepository
	locale string
}

func NewResolver(db *gorm.DB, locale string) *Resolver {
	return &Resolver{repo: catalogRepo.NewCatalogRepository(db), locale: locale}
}

// localeFor picks the effective locale: explicit argument > request
// context > configured default.
func (r *Resolver) localeFor(ctx context.Context, arg *string) string {
	if arg != nil && config.IsLocale(*arg) {
		return *arg
	}
	if l := graphql.LocaleFromContext(ctx); config.IsLocale(l) {
		return l
	}
	return config.DefaultLocale()
}

func (r *Resolver) Products(ctx context.Context, category, search *string, featured *bool, locale *string) ([]*gqlmodels.Product, error) {
	var (
		products []catalogEntity.Product
		err      error
	)
	switch {
	case featured != nil && *featured:
		products, err = r.repo.Featured()
	case search != nil && *search != "":
		products, err = r.repo.Search(*search)
	case category != nil:
		products, err = r.repo.ByCategory(*category)
	default:
		products, err = r.repo.List()
	}
	if err != nil {
		return nil, err
	}

	l := r.localeFor(ctx, locale)
	out := make([]*gqlmodels.Product, 0, len(products))
	for _, p := range products {
		out = append(out, gqlmodels.FromEntity(p.Localized(l)))
	}
	return out, nil
}

func (r *Resolver) Product(ctx context.Context, id string, locale *string) (*gqlmodels.Product, error) {
	p, err := r.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return gqlmodels.FromEntity(p.Localized(r.localeFor(ctx, locale))), nil
}

func (r *Resolver) Categories(ctx context.Context) ([]string, error) {
	return r.repo.Categories()
}
