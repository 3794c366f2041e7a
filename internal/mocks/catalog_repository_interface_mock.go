// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/guttosm/bakery-service/internal/domain/model"
	"github.com/guttosm/bakery-service/internal/repository"
)

type MockCatalogRepositoryInterface struct {
	mock.Mock
}

func (m *MockCatalogRepositoryInterface) GetActive(ctx context.Context, category model.Category) (*repository.CatalogConfig, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.CatalogConfig), args.Error(1)
}

func (m *MockCatalogRepositoryInterface) Create(ctx context.Context, category model.Category, opts []model.Option, createdBy string) (*repository.CatalogConfig, error) {
	args := m.Called(ctx, category, opts, createdBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.CatalogConfig), args.Error(1)
}

func (m *MockCatalogRepositoryInterface) Update(ctx context.Context, id primitive.ObjectID, opts []model.Option, updatedBy string) (*repository.CatalogConfig, error) {
	args := m.Called(ctx, id, opts, updatedBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.CatalogConfig), args.Error(1)
}

func (m *MockCatalogRepositoryInterface) List(ctx context.Context, category model.Category, limit int) ([]repository.CatalogConfig, error) {
	args := m.Called(ctx, category, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.CatalogConfig), args.Error(1)
}
