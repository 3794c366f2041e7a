package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/bakery-service/internal/domain/dto"
	"github.com/guttosm/bakery-service/internal/domain/model"
	"github.com/guttosm/bakery-service/internal/i18n"
	"github.com/guttosm/bakery-service/internal/service"
)

// CatalogAdminHandler provides HTTP handlers for catalog administration routes.
type CatalogAdminHandler struct {
	catalogAdmin service.CatalogAdminService
	storefront   *Handler
}

// NewCatalogAdminHandler creates a new CatalogAdminHandler instance.
func NewCatalogAdminHandler(catalogAdmin service.CatalogAdminService, storefront *Handler) *CatalogAdminHandler {
	return &CatalogAdminHandler{
		catalogAdmin: catalogAdmin,
		storefront:   storefront,
	}
}

// GetCatalogConfig handles GET /api/admin/catalog/:category requests.
//
// @Summary      Get active catalog configuration
// @Description  Returns the currently active stored option list for a category.
// @Tags         Catalog Admin
// @Produce      json
// @Param        Authorization header string true "Bearer token"
// @Param        category path string true "Category tag"
// @Success      200 {object} dto.SuccessResponse "Active catalog configuration"
// @Failure      400 {object} dto.ErrorResponse "Unknown category"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized"
// @Failure      404 {object} dto.ErrorResponse "No stored configuration for category"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/admin/catalog/{category} [get]
func (h *CatalogAdminHandler) GetCatalogConfig(c *gin.Context) {
	builder := NewResponseBuilder(c)

	category := model.Category(c.Param("category"))
	if !category.Valid() {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyUnknownCategory, service.ErrUnknownCategory)
		return
	}

	config, err := h.catalogAdmin.GetActive(c.Request.Context(), category)
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}
	if config == nil {
		builder.Error(http.StatusNotFound, i18n.ErrKeyNotFound, nil)
		return
	}

	builder.SuccessOK(map[string]interface{}{
		"category":   config.Category,
		"options":    config.Options,
		"version":    config.Version,
		"created_at": config.CreatedAt,
		"updated_at": config.UpdatedAt,
	})
}

// UpdateCatalogConfig handles PUT /api/admin/catalog/:category requests.
//
// @Summary      Update catalog configuration
// @Description  Stores a new active option list for a category. Prices on existing cart entries are unaffected.
// @Tags         Catalog Admin
// @Accept       json
// @Produce      json
// @Param        Authorization header string true "Bearer token"
// @Param        category path string true "Category tag"
// @Param        request body dto.UpdateCatalogRequest true "Catalog configuration"
// @Success      200 {object} dto.SuccessResponse "Updated catalog configuration"
// @Failure      400 {object} dto.ErrorResponse "Bad request"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/admin/catalog/{category} [put]
func (h *CatalogAdminHandler) UpdateCatalogConfig(c *gin.Context) {
	builder := NewResponseBuilder(c)

	category := model.Category(c.Param("category"))
	if !category.Valid() {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyUnknownCategory, service.ErrUnknownCategory)
		return
	}

	var req dto.UpdateCatalogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}
	if err := req.Validate(); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, err)
		return
	}

	options := make([]model.Option, 0, len(req.Options))
	for _, in := range req.Options {
		options = append(options, model.Option{
			Category:  category,
			Name:      in.Name,
			UnitPrice: in.UnitPrice,
		})
	}

	config, err := h.catalogAdmin.Create(c.Request.Context(), category, options, req.UpdatedBy)
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	if h.storefront != nil {
		h.storefront.InvalidateCatalogCache(category)
	}

	builder.SuccessOK(map[string]interface{}{
		"category":   config.Category,
		"options":    config.Options,
		"version":    config.Version,
		"created_at": config.CreatedAt,
		"updated_at": config.UpdatedAt,
	})
}

// ListCatalogConfigs handles GET /api/admin/catalog/:category/history requests.
//
// @Summary      List catalog configuration history
// @Description  Returns the stored option list revisions for a category, newest first.
// @Tags         Catalog Admin
// @Produce      json
// @Param        Authorization header string true "Bearer token"
// @Param        category path string true "Category tag"
// @Param        limit query int false "Limit number of results"
// @Success      200 {object} dto.SuccessResponse "Catalog configuration history"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/admin/catalog/{category}/history [get]
func (h *CatalogAdminHandler) ListCatalogConfigs(c *gin.Context) {
	builder := NewResponseBuilder(c)

	category := model.Category(c.Param("category"))
	if !category.Valid() {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyUnknownCategory, service.ErrUnknownCategory)
		return
	}

	limit := 0
	if limitStr := c.Query("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil && l > 0 {
			limit = l
		}
	}

	configs, err := h.catalogAdmin.List(c.Request.Context(), category, limit)
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	builder.SuccessOK(configs)
}
