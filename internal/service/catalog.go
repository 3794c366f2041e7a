package service

import (
	"strings"

	"github.com/guttosm/bakery-service/internal/domain/model"
)

// defaultOptions holds the built-in catalog: for each category, the ordered
// list of options shown to customers. Declaration order is display order.
var defaultOptions = map[model.Category][]model.Option{
	model.CategoryBread: {
		{Category: model.CategoryBread, Name: "White Bread", UnitPrice: 7.99},
		{Category: model.CategoryBread, Name: "Sourdough Bread", UnitPrice: 9.99},
		{Category: model.CategoryBread, Name: "Gluten Free Bread", UnitPrice: 11.99},
		{Category: model.CategoryBread, Name: "Whole Wheat Bread", UnitPrice: 6.99},
		{Category: model.CategoryBread, Name: "Sweet Hawaiian Bread", UnitPrice: 8.50},
	},
	model.CategoryCake: {
		{Category: model.CategoryCake, Name: "Vanilla Cake", UnitPrice: 7.99},
		{Category: model.CategoryCake, Name: "Chocolate Cake", UnitPrice: 8.99},
		{Category: model.CategoryCake, Name: "Red Velvet Cake", UnitPrice: 9.99},
		{Category: model.CategoryCake, Name: "Marble Cake", UnitPrice: 8.99},
		{Category: model.CategoryCake, Name: "Strawberry Cake", UnitPrice: 6.99},
		{Category: model.CategoryCake, Name: "Caramel Cake", UnitPrice: 9.99},
		{Category: model.CategoryCake, Name: "Carrot Cake", UnitPrice: 8.99},
		{Category: model.CategoryCake, Name: "Funfetti Cake", UnitPrice: 8.99},
	},
	model.CategoryFrosting: {
		{Category: model.CategoryFrosting, Name: "Vanilla Frosting", UnitPrice: 5.99},
		{Category: model.CategoryFrosting, Name: "Chocolate Frosting", UnitPrice: 7.99},
		{Category: model.CategoryFrosting, Name: "Cookies N Creme Frosting", UnitPrice: 8.99},
		{Category: model.CategoryFrosting, Name: "Caramel Frosting", UnitPrice: 7.99},
		{Category: model.CategoryFrosting, Name: "Frosting Frosting", UnitPrice: 5.99},
		{Category: model.CategoryFrosting, Name: "Cream Cheese Frosting", UnitPrice: 4.99},
		{Category: model.CategoryFrosting, Name: "Funfetti Frosting", UnitPrice: 6.99},
		{Category: model.CategoryFrosting, Name: "Lemon Frosting", UnitPrice: 5.99},
		{Category: model.CategoryFrosting, Name: "Coconut Cream Frosting", UnitPrice: 6.99},
		{Category: model.CategoryFrosting, Name: "Whipped Cream", UnitPrice: 4.99},
	},
	model.CategoryFilling: {
		{Category: model.CategoryFilling, Name: "Vanilla Custard", UnitPrice: 7.50},
		{Category: model.CategoryFilling, Name: "Chocolate Cream", UnitPrice: 8.50},
		{Category: model.CategoryFilling, Name: "Strawberries", UnitPrice: 8.00},
		{Category: model.CategoryFilling, Name: "Raspberries", UnitPrice: 9.00},
		{Category: model.CategoryFilling, Name: "Blueberries", UnitPrice: 7.00},
		{Category: model.CategoryFilling, Name: "Blackberries", UnitPrice: 8.00},
		{Category: model.CategoryFilling, Name: "Lemon Custard", UnitPrice: 10.99},
		{Category: model.CategoryFilling, Name: "Caramel", UnitPrice: 9.99},
		{Category: model.CategoryFilling, Name: "Oreos", UnitPrice: 7.99},
		{Category: model.CategoryFilling, Name: "Whipped Cream", UnitPrice: 6.99},
	},
	model.CategoryPastry: {
		{Category: model.CategoryPastry, Name: "Croissant", UnitPrice: 3.50},
		{Category: model.CategoryPastry, Name: "Cheese Danish", UnitPrice: 2.99},
		{Category: model.CategoryPastry, Name: "Sausage Roll", UnitPrice: 4.50},
		{Category: model.CategoryPastry, Name: "Chocolate Roll", UnitPrice: 3.99},
		{Category: model.CategoryPastry, Name: "Strawberry Roll", UnitPrice: 3.50},
		{Category: model.CategoryPastry, Name: "Eclair", UnitPrice: 3.99},
		{Category: model.CategoryPastry, Name: "Cream Roll", UnitPrice: 3.50},
		{Category: model.CategoryPastry, Name: "Cinnamon Roll", UnitPrice: 3.99},
	},
	model.CategoryPie: {
		{Category: model.CategoryPie, Name: "Cherry Pie", UnitPrice: 12.99},
		{Category: model.CategoryPie, Name: "Blueberry Pie", UnitPrice: 12.99},
		{Category: model.CategoryPie, Name: "Cookies N Creme Pie", UnitPrice: 14.99},
		{Category: model.CategoryPie, Name: "Apple Pie", UnitPrice: 13.99},
		{Category: model.CategoryPie, Name: "Keylime Pie", UnitPrice: 11.99},
		{Category: model.CategoryPie, Name: "Chocolate Cream Pie", UnitPrice: 11.50},
		{Category: model.CategoryPie, Name: "Pecan Pie", UnitPrice: 12.99},
	},
	model.CategoryCookie: {
		{Category: model.CategoryCookie, Name: "Sugar Cookie", UnitPrice: 2.50},
		{Category: model.CategoryCookie, Name: "Chocolate Chip Cookie", UnitPrice: 3.50},
		{Category: model.CategoryCookie, Name: "Double Chocolate Cookie", UnitPrice: 3.50},
		{Category: model.CategoryCookie, Name: "M&M Cookie", UnitPrice: 2.99},
		{Category: model.CategoryCookie, Name: "Frosted Sugar Cookie", UnitPrice: 2.99},
		{Category: model.CategoryCookie, Name: "Oatmeal Raisin Cookie", UnitPrice: 2.50},
	},
}

// DefaultOptions returns the built-in option list for a category, in
// display order. Returns nil for an unknown category.
func DefaultOptions(category model.Category) []model.Option {
	src := defaultOptions[category]
	if src == nil {
		return nil
	}
	out := make([]model.Option, len(src))
	copy(out, src)
	return out
}

// Catalog defines read access to the option catalog.
type Catalog interface {
	// Options returns the ordered option list for a category.
	Options(category model.Category) ([]model.Option, error)
	// Resolve looks up an option by display name, case-insensitively.
	Resolve(category model.Category, name string) (model.Option, error)
}

// CatalogOption configures a CatalogService.
type CatalogOption func(*CatalogService)

// CatalogService implements Catalog over an in-memory option table.
// The table is fixed at construction time; unit prices are never mutated.
type CatalogService struct {
	options map[model.Category][]model.Option
}

// NewCatalogService creates a catalog backed by the built-in option tables.
func NewCatalogService(opts ...CatalogOption) *CatalogService {
	s := &CatalogService{
		options: make(map[model.Category][]model.Option, len(defaultOptions)),
	}
	for category, list := range defaultOptions {
		copied := make([]model.Option, len(list))
		copy(copied, list)
		s.options[category] = copied
	}

	for _, opt := range opts {
		opt(s)
	}
	return s
}

// WithOptions replaces the option list for one category. Used when a
// catalog configuration is loaded from the database at startup.
func WithOptions(category model.Category, options []model.Option) CatalogOption {
	return func(s *CatalogService) {
		if len(options) == 0 {
			return
		}
		copied := make([]model.Option, len(options))
		copy(copied, options)
		s.options[category] = copied
	}
}

// Options returns the ordered option list for a category.
func (s *CatalogService) Options(category model.Category) ([]model.Option, error) {
	list, ok := s.options[category]
	if !ok {
		return nil, ErrUnknownCategory
	}
	out := make([]model.Option, len(list))
	copy(out, list)
	return out, nil
}

// Resolve looks up an option by display name. Matching is a
// case-insensitive exact match; a miss returns OptionNotFoundError.
func (s *CatalogService) Resolve(category model.Category, name string) (model.Option, error) {
	list, ok := s.options[category]
	if !ok {
		return model.Option{}, ErrUnknownCategory
	}
	return ResolveOption(list, category, name)
}

// ResolveOption looks up an option by display name within an explicit
// option list, case-insensitively. Used by callers that overlay stored
// catalog configurations on the built-in tables.
func ResolveOption(options []model.Option, category model.Category, name string) (model.Option, error) {
	for _, option := range options {
		if strings.EqualFold(option.Name, name) {
			return option, nil
		}
	}
	return model.Option{}, &OptionNotFoundError{Category: category, Name: name}
}
