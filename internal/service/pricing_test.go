package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/guttosm/bakery-service/internal/domain/model"
)

func TestSimplePrice(t *testing.T) {
	tests := []struct {
		name      string
		unitPrice float64
		quantity  int
		expected  float64
		wantField string
	}{
		{name: "three white breads", unitPrice: 7.99, quantity: 3, expected: 23.97},
		{name: "single pie", unitPrice: 12.99, quantity: 1, expected: 12.99},
		{name: "dozen cookies", unitPrice: 2.50, quantity: 12, expected: 30.00},
		{name: "zero quantity rejected", unitPrice: 7.99, quantity: 0, wantField: "quantity"},
		{name: "negative quantity rejected", unitPrice: 7.99, quantity: -2, wantField: "quantity"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			option := model.Option{Category: model.CategoryBread, Name: "test", UnitPrice: tt.unitPrice}
			total, err := SimplePrice(option, tt.quantity)
			if tt.wantField != "" {
				var invalidQty *InvalidQuantityError
				assert.ErrorAs(t, err, &invalidQty)
				assert.Equal(t, tt.wantField, invalidQty.Field)
				assert.Zero(t, total)
				return
			}
			assert.NoError(t, err)
			assert.InDelta(t, tt.expected, total, 1e-9)
		})
	}
}

func TestCakePrice(t *testing.T) {
	cake := model.Option{Category: model.CategoryCake, Name: "Vanilla Cake", UnitPrice: 7.99}
	frosting := model.Option{Category: model.CategoryFrosting, Name: "Chocolate Frosting", UnitPrice: 7.99}
	filling := model.Option{Category: model.CategoryFilling, Name: "Oreos", UnitPrice: 7.99}

	tests := []struct {
		name      string
		layers    int
		quantity  int
		expected  float64
		wantField string
	}{
		{name: "two layers one cake", layers: 2, quantity: 1, expected: 47.94},
		{name: "one layer one cake", layers: 1, quantity: 1, expected: 23.97},
		{name: "three layers two cakes", layers: 3, quantity: 2, expected: 143.82},
		{name: "zero layers rejected", layers: 0, quantity: 1, wantField: "layers"},
		{name: "negative layers rejected", layers: -1, quantity: 1, wantField: "layers"},
		{name: "zero quantity rejected", layers: 2, quantity: 0, wantField: "quantity"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			total, err := CakePrice(cake, frosting, filling, tt.layers, tt.quantity)
			if tt.wantField != "" {
				var invalidQty *InvalidQuantityError
				assert.ErrorAs(t, err, &invalidQty)
				assert.Equal(t, tt.wantField, invalidQty.Field)
				return
			}
			assert.NoError(t, err)
			assert.InDelta(t, tt.expected, total, 1e-9)
		})
	}
}

// Layers multiply every component price, not just the base cake.
func TestCakePrice_LayersMultiplyAllComponents(t *testing.T) {
	cake := model.Option{Category: model.CategoryCake, Name: "Strawberry Cake", UnitPrice: 6.99}
	frosting := model.Option{Category: model.CategoryFrosting, Name: "Whipped Cream", UnitPrice: 4.99}
	filling := model.Option{Category: model.CategoryFilling, Name: "Strawberries", UnitPrice: 8.00}

	oneLayer, err := CakePrice(cake, frosting, filling, 1, 1)
	assert.NoError(t, err)
	twoLayers, err := CakePrice(cake, frosting, filling, 2, 1)
	assert.NoError(t, err)

	assert.InDelta(t, 2*oneLayer, twoLayers, 1e-9)
	assert.InDelta(t, 19.98, oneLayer, 1e-9)
}
