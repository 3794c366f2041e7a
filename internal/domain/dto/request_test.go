package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/guttosm/bakery-service/internal/domain/model"
)

func TestAddItemRequest_Validate(t *testing.T) {
	tests := []struct {
		name      string
		request   AddItemRequest
		wantField string
	}{
		{
			name: "valid bread request",
			request: AddItemRequest{
				Category: model.CategoryBread,
				Option:   "white bread",
				Quantity: 3,
			},
		},
		{
			name: "valid cake request",
			request: AddItemRequest{
				Category: model.CategoryCake,
				Option:   "Vanilla Cake",
				Quantity: 1,
				Frosting: "Chocolate Frosting",
				Filling:  "Oreos",
				Layers:   2,
			},
		},
		{
			name: "unknown category",
			request: AddItemRequest{
				Category: "sandwich",
				Option:   "BLT",
				Quantity: 1,
			},
			wantField: "category",
		},
		{
			name: "frosting is not purchasable",
			request: AddItemRequest{
				Category: model.CategoryFrosting,
				Option:   "Vanilla Frosting",
				Quantity: 1,
			},
			wantField: "category",
		},
		{
			name: "filling is not purchasable",
			request: AddItemRequest{
				Category: model.CategoryFilling,
				Option:   "Oreos",
				Quantity: 1,
			},
			wantField: "category",
		},
		{
			name: "missing option",
			request: AddItemRequest{
				Category: model.CategoryBread,
				Quantity: 1,
			},
			wantField: "option",
		},
		{
			name: "zero quantity",
			request: AddItemRequest{
				Category: model.CategoryBread,
				Option:   "white bread",
			},
			wantField: "quantity",
		},
		{
			name: "negative quantity",
			request: AddItemRequest{
				Category: model.CategoryBread,
				Option:   "white bread",
				Quantity: -1,
			},
			wantField: "quantity",
		},
		{
			name: "cake without frosting",
			request: AddItemRequest{
				Category: model.CategoryCake,
				Option:   "Vanilla Cake",
				Quantity: 1,
				Filling:  "Oreos",
				Layers:   2,
			},
			wantField: "frosting",
		},
		{
			name: "cake without filling",
			request: AddItemRequest{
				Category: model.CategoryCake,
				Option:   "Vanilla Cake",
				Quantity: 1,
				Frosting: "Chocolate Frosting",
				Layers:   2,
			},
			wantField: "filling",
		},
		{
			name: "cake without layers",
			request: AddItemRequest{
				Category: model.CategoryCake,
				Option:   "Vanilla Cake",
				Quantity: 1,
				Frosting: "Chocolate Frosting",
				Filling:  "Oreos",
			},
			wantField: "layers",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}

			var validationErr *ValidationError
			assert.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tt.wantField, validationErr.Field)
		})
	}
}

func TestUpdateCatalogRequest_Validate(t *testing.T) {
	tests := []struct {
		name      string
		request   UpdateCatalogRequest
		wantField string
	}{
		{
			name: "valid request",
			request: UpdateCatalogRequest{
				Options: []CatalogOptionInput{
					{Name: "Rye Bread", UnitPrice: 8.49},
					{Name: "Free Sample", UnitPrice: 0},
				},
				UpdatedBy: "staff@bakery.example",
			},
		},
		{
			name:      "empty options",
			request:   UpdateCatalogRequest{},
			wantField: "options",
		},
		{
			name: "option without name",
			request: UpdateCatalogRequest{
				Options: []CatalogOptionInput{{UnitPrice: 1.00}},
			},
			wantField: "options.name",
		},
		{
			name: "negative price",
			request: UpdateCatalogRequest{
				Options: []CatalogOptionInput{{Name: "Rye Bread", UnitPrice: -1}},
			},
			wantField: "options.unit_price",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}

			var validationErr *ValidationError
			assert.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tt.wantField, validationErr.Field)
		})
	}
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{Field: "quantity", Message: "must be a positive integer"}
	assert.Equal(t, "quantity: must be a positive integer", err.Error())
}
