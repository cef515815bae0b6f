package repositories

import (
	"context"

	"github.com/tvolodin/go-technoshop/app/models"
)

// VariantRepository is the per-table access point for one product variant.
// Every variant lives in its own table, so cross-variant queries go through
// the Registry rather than a single products table.
type VariantRepository interface {
	Kind() models.ProductKind
	Latest(ctx context.Context, limit int) ([]models.ProductInfo, error)
	ByID(ctx context.Context, id uint) (models.ProductInfo, error)
	BySlug(ctx context.Context, slug string) (models.ProductInfo, error)
	ByCategory(ctx context.Context, categoryID uint) ([]models.ProductInfo, error)
	CountByCategory(ctx context.Context, categoryID uint) (int64, error)
}

// Registry is the type-keyed set of registered variant repositories. It is
// an explicit dependency of the services that need cross-variant access;
// registration order is preserved and drives merge order in listings.
type Registry struct {
	kinds []models.ProductKind
	repos map[models.ProductKind]VariantRepository
}

func NewRegistry(repos ...VariantRepository) *Registry {
	r := &Registry{
		repos: make(map[models.ProductKind]VariantRepository, len(repos)),
	}
	for _, repo := range repos {
		if _, exists := r.repos[repo.Kind()]; exists {
			continue
		}
		r.kinds = append(r.kinds, repo.Kind())
		r.repos[repo.Kind()] = repo
	}
	return r
}

func (r *Registry) Get(kind models.ProductKind) (VariantRepository, bool) {
	repo, ok := r.repos[kind]
	return repo, ok
}

// Kinds returns the registered kinds in registration order.
func (r *Registry) Kinds() []models.ProductKind {
	out := make([]models.ProductKind, len(r.kinds))
	copy(out, r.kinds)
	return out
}

// Resolve follows a generic (kind, id) reference to a concrete product.
func (r *Registry) Resolve(ctx context.Context, kind models.ProductKind, id uint) (models.ProductInfo, error) {
	repo, ok := r.Get(kind)
	if !ok {
		return nil, ErrProductNotFound
	}
	return repo.ByID(ctx, id)
}
