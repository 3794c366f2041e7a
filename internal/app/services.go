// Package app provides service initialization.
package app

import (
	"github.com/guttosm/bakery-service/config"
	"github.com/guttosm/bakery-service/internal/service"
)

// ServiceComponents holds service-related components.
type ServiceComponents struct {
	Catalog *service.CatalogService
	Carts   *service.CartStore
}

// InitializeServices initializes business logic services.
func InitializeServices(cfg config.StorefrontConfig) *ServiceComponents {
	catalog := service.NewCatalogService()

	var cartOpts []service.CartStoreOption
	if cfg.CartMaxAge > 0 {
		cartOpts = append(cartOpts, service.WithMaxAge(cfg.CartMaxAge))
	}
	carts := service.NewCartStore(cartOpts...)

	return &ServiceComponents{
		Catalog: catalog,
		Carts:   carts,
	}
}
