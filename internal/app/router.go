// Package app provides router configuration.
package app

import (
	"github.com/guttosm/bakery-service/config"
	"github.com/guttosm/bakery-service/internal/http"
	"github.com/guttosm/bakery-service/internal/service"
)

// RouterComponents holds router-related components.
type RouterComponents struct {
	Handler       *http.Handler
	HealthHandler *http.HealthHandler
	Config        http.RouterConfig
}

// InitializeRouter initializes HTTP handlers and router configuration.
func InitializeRouter(
	services *ServiceComponents,
	dbComponents *DatabaseComponents,
	cfg config.Config,
) *RouterComponents {
	// Catalog administration is only available with a database
	var catalogAdmin service.CatalogAdminService
	if dbComponents != nil && dbComponents.CatalogRepo != nil {
		catalogAdmin = service.NewCatalogAdminService(dbComponents.CatalogRepo)
	}

	var handlerOpts []http.HandlerOption
	if cfg.Storefront.CatalogCacheTTL > 0 {
		handlerOpts = append(handlerOpts, http.WithCatalogCacheTTL(cfg.Storefront.CatalogCacheTTL))
	}
	handler := http.NewHandler(services.Catalog, services.Carts, catalogAdmin, handlerOpts...)

	healthHandler := http.NewHealthHandler()
	if dbComponents != nil && dbComponents.CatalogCircuitBreaker != nil {
		healthHandler.RegisterCircuitBreaker("mongodb_catalog", dbComponents.CatalogCircuitBreaker)
	}

	routerCfg := http.RouterConfig{
		RateLimit:      cfg.Server.RateLimit,
		RateWindow:     cfg.Server.RateWindow,
		EnableAuth:     cfg.Auth.Enabled,
		APIKeys:        cfg.Auth.APIKeys,
		AdminJWTSecret: cfg.Auth.AdminJWTSecret,
		CORSOrigins:    cfg.Server.CORSOrigins,
		SwaggerUser:    cfg.Server.SwaggerUser,
		SwaggerPass:    cfg.Server.SwaggerPass,
		Catalog:        services.Catalog,
		Carts:          services.Carts,
		CatalogAdmin:   catalogAdmin,
	}

	return &RouterComponents{
		Handler:       handler,
		HealthHandler: healthHandler,
		Config:        routerCfg,
	}
}
