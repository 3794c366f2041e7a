package http

import (
	"github.com/gin-gonic/gin"

	"github.com/guttosm/bakery-service/internal/service"
)

// StorefrontRoutes handles catalog and cart route registration.
type StorefrontRoutes struct {
	handler *Handler
}

// NewStorefrontRoutes creates a new StorefrontRoutes instance.
func NewStorefrontRoutes(handler *Handler) *StorefrontRoutes {
	return &StorefrontRoutes{handler: handler}
}

// RegisterPublicRoutes registers the storefront routes.
func (r *StorefrontRoutes) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/catalog", r.handler.GetCatalog)
	rg.GET("/catalog/:category", r.handler.GetCategory)

	rg.POST("/carts", r.handler.OpenCart)
	rg.GET("/carts/:id", r.handler.GetCart)
	rg.POST("/carts/:id/items", r.handler.AddItem)
	rg.POST("/carts/:id/checkout", r.handler.Checkout)
}

// GetHandler returns the underlying storefront handler.
func (r *StorefrontRoutes) GetHandler() *Handler {
	return r.handler
}

// CatalogAdminRoutes handles catalog administration route registration.
type CatalogAdminRoutes struct {
	handler *CatalogAdminHandler
}

// NewCatalogAdminRoutes creates a new CatalogAdminRoutes instance.
func NewCatalogAdminRoutes(catalogAdmin service.CatalogAdminService, storefront *Handler) *CatalogAdminRoutes {
	return &CatalogAdminRoutes{handler: NewCatalogAdminHandler(catalogAdmin, storefront)}
}

// RegisterRoutes registers the admin catalog routes.
func (r *CatalogAdminRoutes) RegisterRoutes(rg *gin.RouterGroup, _ *RouterConfig) {
	rg.GET("/catalog/:category", r.handler.GetCatalogConfig)
	rg.PUT("/catalog/:category", r.handler.UpdateCatalogConfig)
	rg.GET("/catalog/:category/history", r.handler.ListCatalogConfigs)
}
