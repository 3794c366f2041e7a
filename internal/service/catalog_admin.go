package service

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/guttosm/bakery-service/internal/domain/model"
	"github.com/guttosm/bakery-service/internal/repository"
)

// ErrRepositoryNotConfigured is returned when catalog storage is disabled.
var ErrRepositoryNotConfigured = errors.New("repository not configured")

// CatalogAdminService provides stored catalog configuration operations.
type CatalogAdminService interface {
	GetActive(ctx context.Context, category model.Category) (*repository.CatalogConfig, error)
	Create(ctx context.Context, category model.Category, options []model.Option, createdBy string) (*repository.CatalogConfig, error)
	Update(ctx context.Context, id primitive.ObjectID, options []model.Option, updatedBy string) (*repository.CatalogConfig, error)
	List(ctx context.Context, category model.Category, limit int) ([]repository.CatalogConfig, error)
}

// CatalogAdminServiceImpl implements CatalogAdminService.
type CatalogAdminServiceImpl struct {
	catalogRepo repository.CatalogRepositoryInterface
}

// NewCatalogAdminService creates a catalog admin service. A nil repository
// yields a service whose operations report ErrRepositoryNotConfigured.
func NewCatalogAdminService(catalogRepo repository.CatalogRepositoryInterface) CatalogAdminService {
	return &CatalogAdminServiceImpl{catalogRepo: catalogRepo}
}

func (s *CatalogAdminServiceImpl) GetActive(ctx context.Context, category model.Category) (*repository.CatalogConfig, error) {
	if s.catalogRepo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return s.catalogRepo.GetActive(ctx, category)
}

func (s *CatalogAdminServiceImpl) Create(ctx context.Context, category model.Category, options []model.Option, createdBy string) (*repository.CatalogConfig, error) {
	if s.catalogRepo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return s.catalogRepo.Create(ctx, category, options, createdBy)
}

func (s *CatalogAdminServiceImpl) Update(ctx context.Context, id primitive.ObjectID, options []model.Option, updatedBy string) (*repository.CatalogConfig, error) {
	if s.catalogRepo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return s.catalogRepo.Update(ctx, id, options, updatedBy)
}

func (s *CatalogAdminServiceImpl) List(ctx context.Context, category model.Category, limit int) ([]repository.CatalogConfig, error) {
	if s.catalogRepo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return s.catalogRepo.List(ctx, category, limit)
}
