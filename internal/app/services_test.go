//go:build !integration

package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/guttosm/bakery-service/config"
	"github.com/guttosm/bakery-service/internal/domain/model"
	"github.com/guttosm/bakery-service/internal/service"
)

func TestInitializeServices(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.StorefrontConfig
	}{
		{
			name: "creates services with default config",
			cfg:  config.StorefrontConfig{},
		},
		{
			name: "creates services with cart max age",
			cfg: config.StorefrontConfig{
				CartMaxAge: time.Hour,
			},
		},
		{
			name: "creates services with sweeping disabled",
			cfg: config.StorefrontConfig{
				CartMaxAge: 0,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			components := InitializeServices(tt.cfg)

			assert.NotNil(t, components)
			assert.NotNil(t, components.Catalog)
			assert.NotNil(t, components.Carts)
		})
	}
}

func TestServiceComponents_Wiring(t *testing.T) {
	components := InitializeServices(config.StorefrontConfig{CartMaxAge: time.Hour})

	// The catalog serves the built-in option tables.
	option, err := components.Catalog.Resolve(model.CategoryBread, "White Bread")
	assert.NoError(t, err)
	assert.InDelta(t, 7.99, option.UnitPrice, 1e-9)

	// The cart store accepts items priced from that catalog.
	cartID := components.Carts.Open()
	item, err := service.NewBreadLoaf(option, 3)
	assert.NoError(t, err)
	assert.NoError(t, components.Carts.Add(cartID, item))

	total, err := components.Carts.Total(cartID)
	assert.NoError(t, err)
	assert.InDelta(t, 23.97, total, 1e-9)
}
