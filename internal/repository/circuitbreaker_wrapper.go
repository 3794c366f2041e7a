package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/guttosm/bakery-service/internal/circuitbreaker"
	"github.com/guttosm/bakery-service/internal/domain/model"
)

// CatalogRepositoryWithCircuitBreaker wraps a CatalogRepository so a
// failing MongoDB does not take the storefront down: when the circuit is
// open, reads report "no configuration" and the built-in catalog is used.
type CatalogRepositoryWithCircuitBreaker struct {
	repo           *CatalogRepository
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewCatalogRepositoryWithCircuitBreaker creates a circuit-breaker wrapper
// around a catalog repository.
func NewCatalogRepositoryWithCircuitBreaker(repo *CatalogRepository, cb *circuitbreaker.CircuitBreaker) *CatalogRepositoryWithCircuitBreaker {
	return &CatalogRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// GetActive returns the active catalog configuration with circuit breaker
// protection. An open circuit yields (nil, nil) so callers fall back to
// the built-in option tables.
func (r *CatalogRepositoryWithCircuitBreaker) GetActive(ctx context.Context, category model.Category) (*CatalogConfig, error) {
	var result *CatalogConfig
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.GetActive(ctx, category)
		return cbErr
	})
	if err == circuitbreaker.ErrCircuitOpen {
		return nil, nil
	}
	return result, err
}

// Create stores a new catalog configuration with circuit breaker protection.
func (r *CatalogRepositoryWithCircuitBreaker) Create(ctx context.Context, category model.Category, opts []model.Option, createdBy string) (*CatalogConfig, error) {
	var result *CatalogConfig
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Create(ctx, category, opts, createdBy)
		return cbErr
	})
	return result, err
}

// Update replaces a catalog configuration with circuit breaker protection.
func (r *CatalogRepositoryWithCircuitBreaker) Update(ctx context.Context, id primitive.ObjectID, opts []model.Option, updatedBy string) (*CatalogConfig, error) {
	var result *CatalogConfig
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Update(ctx, id, opts, updatedBy)
		return cbErr
	})
	return result, err
}

// List returns stored catalog configurations with circuit breaker protection.
func (r *CatalogRepositoryWithCircuitBreaker) List(ctx context.Context, category model.Category, limit int) ([]CatalogConfig, error) {
	var result []CatalogConfig
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.List(ctx, category, limit)
		return cbErr
	})
	return result, err
}

// GetCircuitBreaker exposes the underlying circuit breaker for health checks.
func (r *CatalogRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}
