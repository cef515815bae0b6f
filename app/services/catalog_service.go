package services

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/tvolodin/go-technoshop/app/models"
	"github.com/tvolodin/go-technoshop/app/repositories"
	"github.com/tvolodin/go-technoshop/app/utils/cache"
)

// LatestPerKind is how many records of each variant the main page shows.
const LatestPerKind = 5

// categoryCountKind maps a category's display name to the one variant kind
// whose per-category count is shown next to it in the sidebar.
var categoryCountKind = map[string]models.ProductKind{
	"Ноутбуки":  models.KindNotebook,
	"Смартфоны": models.KindSmartphone,
}

// SidebarEntry is one category line of the left sidebar.
type SidebarEntry struct {
	Name  string
	URL   string
	Count int64
}

// CatalogService answers the two cross-variant catalog queries: latest
// products across all variant tables and the per-category sidebar counts.
// All reads are side-effect free.
type CatalogService struct {
	registry     *repositories.Registry
	categoryRepo repositories.CategoryRepositoryImpl
	memo         *cache.Cache
}

// NewCatalogService builds the aggregator. memo may be nil to disable
// memoization (tests do this).
func NewCatalogService(registry *repositories.Registry, categoryRepo repositories.CategoryRepositoryImpl, memo *cache.Cache) *CatalogService {
	return &CatalogService{
		registry:     registry,
		categoryRepo: categoryRepo,
		memo:         memo,
	}
}

// LatestProducts returns the LatestPerKind newest records of each requested
// kind, concatenated in request order. When preferred is non-empty and
// among the requested kinds the concatenation is stably partitioned so the
// preferred kind's records come first; relative order inside each group is
// preserved. Unknown kinds are skipped with a warning.
func (s *CatalogService) LatestProducts(ctx context.Context, preferred models.ProductKind, kinds ...models.ProductKind) ([]models.ProductInfo, error) {
	cacheKey := latestCacheKey(preferred, kinds)
	if s.memo != nil {
		if cached, ok := s.memo.Get(cacheKey); ok {
			return cached.([]models.ProductInfo), nil
		}
	}

	var products []models.ProductInfo
	preferredRequested := false
	for _, kind := range kinds {
		if kind == preferred {
			preferredRequested = true
		}
		repo, ok := s.registry.Get(kind)
		if !ok {
			log.Printf("CatalogService.LatestProducts: unknown product kind %q requested, skipping", kind)
			continue
		}
		latest, err := repo.Latest(ctx, LatestPerKind)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch latest %s products: %w", kind, err)
		}
		products = append(products, latest...)
	}

	if preferred != "" && preferredRequested {
		products = partitionByKind(products, preferred)
	}

	if s.memo != nil {
		s.memo.Set(cacheKey, products)
	}
	return products, nil
}

// CategorySidebar returns every category with the count of products of its
// associated kind. A category whose name is not in the static mapping gets
// a zero count rather than failing the whole aggregation.
func (s *CatalogService) CategorySidebar(ctx context.Context) ([]SidebarEntry, error) {
	const cacheKey = "catalog:sidebar"
	if s.memo != nil {
		if cached, ok := s.memo.Get(cacheKey); ok {
			return cached.([]SidebarEntry), nil
		}
	}

	categories, err := s.categoryRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch categories: %w", err)
	}

	entries := make([]SidebarEntry, 0, len(categories))
	for _, category := range categories {
		entry := SidebarEntry{Name: category.Name, URL: category.URL()}

		kind, mapped := categoryCountKind[category.Name]
		if !mapped {
			log.Printf("CatalogService.CategorySidebar: category %q has no count mapping, showing 0", category.Name)
			entries = append(entries, entry)
			continue
		}

		repo, ok := s.registry.Get(kind)
		if !ok {
			log.Printf("CatalogService.CategorySidebar: kind %q for category %q is not registered", kind, category.Name)
			entries = append(entries, entry)
			continue
		}

		count, err := repo.CountByCategory(ctx, category.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to count %s products in category %q: %w", kind, category.Name, err)
		}
		entry.Count = count
		entries = append(entries, entry)
	}

	if s.memo != nil {
		s.memo.Set(cacheKey, entries)
	}
	return entries, nil
}

// ProductBySlug resolves a product detail lookup for one variant table.
func (s *CatalogService) ProductBySlug(ctx context.Context, kind models.ProductKind, slug string) (models.ProductInfo, error) {
	repo, ok := s.registry.Get(kind)
	if !ok {
		return nil, repositories.ErrProductNotFound
	}
	return repo.BySlug(ctx, slug)
}

// CategoryProducts lists the products shown on a category page: the
// records of the category's mapped kind. Unmapped categories list nothing.
func (s *CatalogService) CategoryProducts(ctx context.Context, slug string) (*models.Category, []models.ProductInfo, error) {
	category, err := s.categoryRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, nil, err
	}

	kind, mapped := categoryCountKind[category.Name]
	if !mapped {
		log.Printf("CatalogService.CategoryProducts: category %q has no kind mapping, listing nothing", category.Name)
		return category, nil, nil
	}
	repo, ok := s.registry.Get(kind)
	if !ok {
		return category, nil, nil
	}

	products, err := repo.ByCategory(ctx, category.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list %s products for category %q: %w", kind, category.Name, err)
	}
	return category, products, nil
}

// partitionByKind stably moves all records of the preferred kind to the
// front, keeping relative order inside both groups.
func partitionByKind(products []models.ProductInfo, preferred models.ProductKind) []models.ProductInfo {
	ordered := make([]models.ProductInfo, 0, len(products))
	var rest []models.ProductInfo
	for _, p := range products {
		if p.Kind() == preferred {
			ordered = append(ordered, p)
		} else {
			rest = append(rest, p)
		}
	}
	return append(ordered, rest...)
}

func latestCacheKey(preferred models.ProductKind, kinds []models.ProductKind) string {
	parts := make([]string, 0, len(kinds)+1)
	parts = append(parts, string(preferred))
	for _, kind := range kinds {
		parts = append(parts, string(kind))
	}
	return "catalog:latest:" + strings.Join(parts, ",")
}
