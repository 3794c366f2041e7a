package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/guttosm/bakery-service/internal/domain/model"
)

// CatalogRepositoryInterface defines catalog configuration storage operations.
type CatalogRepositoryInterface interface {
	GetActive(ctx context.Context, category model.Category) (*CatalogConfig, error)
	Create(ctx context.Context, category model.Category, opts []model.Option, createdBy string) (*CatalogConfig, error)
	Update(ctx context.Context, id primitive.ObjectID, opts []model.Option, updatedBy string) (*CatalogConfig, error)
	List(ctx context.Context, category model.Category, limit int) ([]CatalogConfig, error)
}
