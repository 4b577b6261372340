package services

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/storefront/internal/client/models"
	"github.com/dmitrijs2005/storefront/internal/logging"
)

// CatalogClient is the remote side of the catalog. *catalog.Client
// implements it.
type CatalogClient interface {
	Categories(ctx context.Context) ([]models.Category, error)
	ProductsByCategory(ctx context.Context, category string) ([]models.Product, error)
	Ping(ctx context.Context) error
}

// CatalogService keeps the last fetched category list so the home screen
// can be redrawn without a round trip.
type CatalogService struct {
	client CatalogClient
	log    logging.Logger

	mu         sync.RWMutex
	categories []models.Category
	loaded     bool
}

func NewCatalogService(client CatalogClient, log logging.Logger) *CatalogService {
	return &CatalogService{client: client, log: log.With("component", "catalog")}
}

// Categories returns the cached list, fetching it on first use.
func (s *CatalogService) Categories(ctx context.Context) ([]models.Category, error) {
	s.mu.RLock()
	if s.loaded {
		out := append([]models.Category(nil), s.categories...)
		s.mu.RUnlock()
		return out, nil
	}
	s.mu.RUnlock()

	return s.RefreshCategories(ctx)
}

// RefreshCategories refetches the list. Concurrent refreshes are not
// ordered; whichever finishes last is what the cache holds.
func (s *CatalogService) RefreshCategories(ctx context.Context) ([]models.Category, error) {
	cats, err := s.client.Categories(ctx)
	if err != nil {
		s.log.Error(ctx, "error fetching categories", "error", err)
		return nil, err
	}

	s.mu.Lock()
	s.categories = cats
	s.loaded = true
	s.mu.Unlock()

	s.log.Debug(ctx, "categories loaded", "count", len(cats))
	return append([]models.Category(nil), cats...), nil
}

// Cached returns the cached list without fetching; ok is false before
// the first successful load.
func (s *CatalogService) Cached() (cats []models.Category, ok bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Category(nil), s.categories...), s.loaded
}

// Products fetches the products of a category. The slice is never nil.
func (s *CatalogService) Products(ctx context.Context, category string) ([]models.Product, error) {
	return s.client.ProductsByCategory(ctx, category)
}

// Ping reports whether the catalog is reachable.
func (s *CatalogService) Ping(ctx context.Context) error {
	return s.client.Ping(ctx)
}
