//go:build !integration

package app

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/guttosm/bakery-service/config"
	"github.com/guttosm/bakery-service/internal/domain/model"
	"github.com/guttosm/bakery-service/internal/mocks"
	"github.com/guttosm/bakery-service/internal/repository"
	"github.com/guttosm/bakery-service/internal/service"
)

func TestInitializeDatabase_Disabled(t *testing.T) {
	components := InitializeDatabase(config.DatabaseConfig{Enabled: false})
	assert.Nil(t, components)
}

func TestSeedDefaultCatalogs(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(*mocks.MockCatalogRepositoryInterface)
		wantError bool
	}{
		{
			name: "seeds every category with no stored config",
			setupMock: func(m *mocks.MockCatalogRepositoryInterface) {
				for _, category := range model.Categories {
					m.On("GetActive", mock.Anything, category).Return(nil, nil).Once()
					created := &repository.CatalogConfig{
						ID:       primitive.NewObjectID(),
						Category: category,
						Options:  service.DefaultOptions(category),
						Active:   true,
					}
					m.On("Create", mock.Anything, category, service.DefaultOptions(category), "system").
						Return(created, nil).Once()
				}
			},
		},
		{
			name: "skips categories with an active config",
			setupMock: func(m *mocks.MockCatalogRepositoryInterface) {
				for _, category := range model.Categories {
					active := &repository.CatalogConfig{
						ID:       primitive.NewObjectID(),
						Category: category,
						Options:  service.DefaultOptions(category),
						Active:   true,
					}
					m.On("GetActive", mock.Anything, category).Return(active, nil).Once()
				}
			},
		},
		{
			name: "get active error stops seeding",
			setupMock: func(m *mocks.MockCatalogRepositoryInterface) {
				m.On("GetActive", mock.Anything, model.CategoryBread).
					Return(nil, errors.New("database error")).Once()
			},
			wantError: true,
		},
		{
			name: "create error stops seeding",
			setupMock: func(m *mocks.MockCatalogRepositoryInterface) {
				m.On("GetActive", mock.Anything, model.CategoryBread).Return(nil, nil).Once()
				m.On("Create", mock.Anything, model.CategoryBread, mock.Anything, "system").
					Return(nil, errors.New("database error")).Once()
			},
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(mocks.MockCatalogRepositoryInterface)
			mockRepo.Test(t)
			tt.setupMock(mockRepo)

			err := seedDefaultCatalogs(mockRepo)

			if tt.wantError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}
