// Package http provides the Gin handlers for the bakery storefront API.
package http

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/bakery-service/internal/domain/dto"
	"github.com/guttosm/bakery-service/internal/domain/model"
	"github.com/guttosm/bakery-service/internal/i18n"
	"github.com/guttosm/bakery-service/internal/metrics"
	"github.com/guttosm/bakery-service/internal/service"
)

// catalogCache caches per-category option lists loaded from the database,
// so catalog reads do not hit MongoDB on every request.
type catalogCache struct {
	mu        sync.Mutex
	options   map[model.Category][]model.Option
	expiresAt map[model.Category]time.Time
	ttl       time.Duration
}

// newCatalogCache creates a catalog cache with the given TTL.
func newCatalogCache(ttl time.Duration) *catalogCache {
	return &catalogCache{
		options:   make(map[model.Category][]model.Option),
		expiresAt: make(map[model.Category]time.Time),
		ttl:       ttl,
	}
}

// get returns cached options for a category, or nil when expired or absent.
func (c *catalogCache) get(category model.Category) []model.Option {
	c.mu.Lock()
	defer c.mu.Unlock()
	if time.Now().Before(c.expiresAt[category]) {
		return c.options[category]
	}
	return nil
}

// set stores options for a category with the cache TTL.
func (c *catalogCache) set(category model.Category, options []model.Option) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.options[category] = options
	c.expiresAt[category] = time.Now().Add(c.ttl)
}

// invalidate drops the cached options for a category.
func (c *catalogCache) invalidate(category model.Category) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.expiresAt, category)
}

// Handler provides HTTP handlers for the storefront routes.
type Handler struct {
	catalog      *service.CatalogService
	carts        *service.CartStore
	catalogAdmin service.CatalogAdminService
	catalogCache *catalogCache
}

// HandlerOption configures a Handler.
type HandlerOption func(*Handler)

// WithCatalogCacheTTL sets the TTL for stored catalog caching.
func WithCatalogCacheTTL(ttl time.Duration) HandlerOption {
	return func(h *Handler) {
		h.catalogCache = newCatalogCache(ttl)
	}
}

// NewHandler creates a new Handler instance. catalogAdmin may be nil when
// catalog storage is disabled; the built-in option tables are used then.
func NewHandler(catalog *service.CatalogService, carts *service.CartStore, catalogAdmin service.CatalogAdminService, opts ...HandlerOption) *Handler {
	h := &Handler{
		catalog:      catalog,
		carts:        carts,
		catalogAdmin: catalogAdmin,
		catalogCache: newCatalogCache(30 * time.Second),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// options returns the effective option list for a category: the stored
// configuration when available, the built-in tables otherwise.
func (h *Handler) options(ctx context.Context, category model.Category) ([]model.Option, error) {
	if !category.Valid() {
		return nil, service.ErrUnknownCategory
	}

	if h.catalogAdmin != nil {
		if cached := h.catalogCache.get(category); cached != nil {
			return cached, nil
		}

		fetchCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
		defer cancel()

		config, err := h.catalogAdmin.GetActive(fetchCtx, category)
		if err == nil && config != nil && len(config.Options) > 0 {
			h.catalogCache.set(category, config.Options)
			return config.Options, nil
		}
	}

	return h.catalog.Options(category)
}

// GetCatalog handles GET /api/catalog requests.
//
// @Summary      List the full catalog
// @Description  Returns the ordered, priced option lists for every category.
// @Tags         Catalog
// @Produce      json
// @Success      200 {object} dto.SuccessResponse "Catalog by category"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/catalog [get]
func (h *Handler) GetCatalog(c *gin.Context) {
	builder := NewResponseBuilder(c)

	catalog := make(map[model.Category][]model.Option, len(model.Categories))
	for _, category := range model.Categories {
		options, err := h.options(c.Request.Context(), category)
		if err != nil {
			builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
			return
		}
		catalog[category] = options
	}

	builder.SuccessOK(catalog)
}

// GetCategory handles GET /api/catalog/:category requests.
//
// @Summary      List one category
// @Description  Returns the ordered, priced option list for a single category.
// @Tags         Catalog
// @Produce      json
// @Param        category path string true "Category tag" Enums(bread, cake, frosting, filling, pastry, pie, cookie)
// @Success      200 {object} dto.SuccessResponse "Category options"
// @Failure      400 {object} dto.ErrorResponse "Unknown category"
// @Router       /api/catalog/{category} [get]
func (h *Handler) GetCategory(c *gin.Context) {
	builder := NewResponseBuilder(c)

	category := model.Category(c.Param("category"))
	options, err := h.options(c.Request.Context(), category)
	if err != nil {
		if errors.Is(err, service.ErrUnknownCategory) {
			builder.Error(http.StatusBadRequest, i18n.ErrKeyUnknownCategory, err)
			return
		}
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	builder.SuccessOK(options)
}

// OpenCart handles POST /api/carts requests.
//
// @Summary      Open a session cart
// @Description  Creates an empty cart for a new shopping session and returns its id.
// @Tags         Carts
// @Produce      json
// @Success      201 {object} dto.SuccessResponse "New cart id"
// @Router       /api/carts [post]
func (h *Handler) OpenCart(c *gin.Context) {
	builder := NewResponseBuilder(c)

	id := h.carts.Open()
	metrics.ActiveCarts.Set(float64(h.carts.Len()))

	builder.SuccessCreated(dto.OpenCartResponse{CartID: id})
}

// AddItem handles POST /api/carts/:id/items requests.
//
// @Summary      Add an item to a cart
// @Description  Resolves the selected option(s) by name, prices the purchase and appends it to the session cart. Cakes additionally take frosting, filling and layers; the per-layer cost is the combined cake, frosting and filling unit price.
// @Tags         Carts
// @Accept       json
// @Produce      json
// @Param        id path string true "Cart id"
// @Param        request body dto.AddItemRequest true "Item selection"
// @Success      200 {object} dto.SuccessResponse "The added cart entry"
// @Failure      400 {object} dto.ErrorResponse "Validation or resolution failure"
// @Failure      404 {object} dto.ErrorResponse "Cart not found"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/carts/{id}/items [post]
func (h *Handler) AddItem(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var req dto.AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}
	if err := req.Validate(); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, err)
		return
	}

	item, err := h.buildItem(c.Request.Context(), &req)
	if err != nil {
		h.writeItemError(builder, err)
		return
	}

	cartID := c.Param("id")
	if err := h.carts.Add(cartID, item); err != nil {
		builder.Error(http.StatusNotFound, i18n.ErrKeyCartNotFound, err)
		return
	}

	metrics.RecordItemAdded(string(item.Kind()))
	builder.SuccessOK(item)
}

// buildItem resolves the request's option names and constructs the cart entry.
func (h *Handler) buildItem(ctx context.Context, req *dto.AddItemRequest) (model.LineItem, error) {
	option, err := h.resolve(ctx, req.Category, req.Option)
	if err != nil {
		return nil, err
	}

	switch req.Category {
	case model.CategoryBread:
		item, err := service.NewBreadLoaf(option, req.Quantity)
		if err != nil {
			return nil, err
		}
		return item, nil
	case model.CategoryPastry:
		item, err := service.NewPastry(option, req.Quantity)
		if err != nil {
			return nil, err
		}
		return item, nil
	case model.CategoryCookie:
		item, err := service.NewCookie(option, req.Quantity)
		if err != nil {
			return nil, err
		}
		return item, nil
	case model.CategoryPie:
		item, err := service.NewPie(option, req.Quantity)
		if err != nil {
			return nil, err
		}
		return item, nil
	case model.CategoryCake:
		frosting, err := h.resolve(ctx, model.CategoryFrosting, req.Frosting)
		if err != nil {
			return nil, err
		}
		filling, err := h.resolve(ctx, model.CategoryFilling, req.Filling)
		if err != nil {
			return nil, err
		}
		item, err := service.NewCake(option, frosting, filling, req.Layers, req.Quantity)
		if err != nil {
			return nil, err
		}
		return item, nil
	default:
		return nil, service.ErrUnknownCategory
	}
}

// resolve looks a name up in the effective option list and records the outcome.
func (h *Handler) resolve(ctx context.Context, category model.Category, name string) (model.Option, error) {
	options, err := h.options(ctx, category)
	if err != nil {
		metrics.RecordResolution(string(category), "error")
		return model.Option{}, err
	}
	option, err := service.ResolveOption(options, category, name)
	if err != nil {
		metrics.RecordResolution(string(category), "miss")
		return model.Option{}, err
	}
	metrics.RecordResolution(string(category), "hit")
	return option, nil
}

// writeItemError maps item construction failures to HTTP responses.
func (h *Handler) writeItemError(builder *ResponseBuilder, err error) {
	var notFound *service.OptionNotFoundError
	var invalidQty *service.InvalidQuantityError
	switch {
	case errors.As(err, &notFound):
		builder.Error(http.StatusBadRequest, i18n.ErrKeyOptionNotFound, err)
	case errors.As(err, &invalidQty):
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidQuantity, err)
	case errors.Is(err, service.ErrUnknownCategory):
		builder.Error(http.StatusBadRequest, i18n.ErrKeyUnknownCategory, err)
	default:
		// Category mismatches land here: a programming error, not user input.
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
	}
}

// GetCart handles GET /api/carts/:id requests.
//
// @Summary      Review a cart
// @Description  Returns the cart's entries in insertion order plus the running total.
// @Tags         Carts
// @Produce      json
// @Param        id path string true "Cart id"
// @Success      200 {object} dto.SuccessResponse "Cart contents"
// @Failure      404 {object} dto.ErrorResponse "Cart not found"
// @Router       /api/carts/{id} [get]
func (h *Handler) GetCart(c *gin.Context) {
	builder := NewResponseBuilder(c)

	cartID := c.Param("id")
	items, err := h.carts.Items(cartID)
	if err != nil {
		builder.Error(http.StatusNotFound, i18n.ErrKeyCartNotFound, err)
		return
	}
	total, err := h.carts.Total(cartID)
	if err != nil {
		builder.Error(http.StatusNotFound, i18n.ErrKeyCartNotFound, err)
		return
	}

	builder.SuccessOK(gin.H{"items": items, "total": total})
}

// Checkout handles POST /api/carts/:id/checkout requests.
//
// @Summary      Checkout a cart
// @Description  Summarizes the cart into a receipt. The cart is not cleared; the session may keep shopping or be abandoned.
// @Tags         Carts
// @Produce      json
// @Param        id path string true "Cart id"
// @Success      200 {object} dto.SuccessResponse "Receipt"
// @Failure      404 {object} dto.ErrorResponse "Cart not found"
// @Router       /api/carts/{id}/checkout [post]
func (h *Handler) Checkout(c *gin.Context) {
	builder := NewResponseBuilder(c)

	cartID := c.Param("id")
	receipt, err := h.carts.Checkout(cartID)
	if err != nil {
		builder.Error(http.StatusNotFound, i18n.ErrKeyCartNotFound, err)
		return
	}

	metrics.RecordCheckout(receipt.Total)
	builder.SuccessOK(receipt)
}

// InvalidateCatalogCache drops the cached stored options for a category.
// Called after catalog administration updates.
func (h *Handler) InvalidateCatalogCache(category model.Category) {
	h.catalogCache.invalidate(category)
}
