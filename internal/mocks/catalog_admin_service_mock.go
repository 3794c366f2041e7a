// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/guttosm/bakery-service/internal/domain/model"
	"github.com/guttosm/bakery-service/internal/repository"
)

type MockCatalogAdminService struct {
	mock.Mock
}

func (m *MockCatalogAdminService) GetActive(ctx context.Context, category model.Category) (*repository.CatalogConfig, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.CatalogConfig), args.Error(1)
}

func (m *MockCatalogAdminService) Create(ctx context.Context, category model.Category, options []model.Option, createdBy string) (*repository.CatalogConfig, error) {
	args := m.Called(ctx, category, options, createdBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.CatalogConfig), args.Error(1)
}

func (m *MockCatalogAdminService) Update(ctx context.Context, id primitive.ObjectID, options []model.Option, updatedBy string) (*repository.CatalogConfig, error) {
	args := m.Called(ctx, id, options, updatedBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.CatalogConfig), args.Error(1)
}

func (m *MockCatalogAdminService) List(ctx context.Context, category model.Category, limit int) ([]repository.CatalogConfig, error) {
	args := m.Called(ctx, category, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.CatalogConfig), args.Error(1)
}
