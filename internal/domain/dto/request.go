// Package dto defines Data Transfer Objects for HTTP request and response handling.
//
// DTOs decouple the HTTP layer from the domain model, providing validation
// and serialization for API communication.
package dto

import "github.com/guttosm/bakery-service/internal/domain/model"

// AddItemRequest represents the JSON request body for adding an item to a
// session cart. Category selects the item variant; Option is the display
// name to resolve. Frosting, Filling and Layers are required for cakes and
// ignored otherwise.
//
// @Description Request to add an item to a cart
// @Example {"category": "bread", "option": "white bread", "quantity": 3}
// @Example {"category": "cake", "option": "Vanilla Cake", "frosting": "Chocolate Frosting", "filling": "Oreos", "layers": 2, "quantity": 1}
type AddItemRequest struct {
	// Category is the catalog category of the purchase.
	Category model.Category `json:"category" binding:"required" example:"bread"`
	// Option is the display name of the selected option, matched case-insensitively.
	Option string `json:"option" binding:"required" example:"white bread"`
	// Quantity is how many units to purchase. Must be greater than 0.
	Quantity int `json:"quantity" binding:"required" example:"3" minimum:"1"`
	// Frosting is the frosting display name (cake only).
	Frosting string `json:"frosting,omitempty" example:"Chocolate Frosting"`
	// Filling is the filling display name (cake only).
	Filling string `json:"filling,omitempty" example:"Oreos"`
	// Layers is the cake layer count (cake only). Must be greater than 0.
	Layers int `json:"layers,omitempty" example:"2" minimum:"1"`
} // @name AddItemRequest

// ValidationError represents a field validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error returns the error message for ValidationError.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// Validate performs structural validation on the request. Option names are
// not checked here; resolution against the catalog decides whether they
// exist.
func (r *AddItemRequest) Validate() error {
	if !r.Category.Valid() {
		return &ValidationError{Field: "category", Message: "must be one of bread, cake, pastry, cookie, pie"}
	}
	if r.Category == model.CategoryFrosting || r.Category == model.CategoryFilling {
		return &ValidationError{Field: "category", Message: "frosting and filling are cake components, not purchasable items"}
	}
	if r.Option == "" {
		return &ValidationError{Field: "option", Message: "is required"}
	}
	if r.Quantity <= 0 {
		return &ValidationError{Field: "quantity", Message: "must be a positive integer"}
	}
	if r.Category == model.CategoryCake {
		if r.Frosting == "" {
			return &ValidationError{Field: "frosting", Message: "is required for cakes"}
		}
		if r.Filling == "" {
			return &ValidationError{Field: "filling", Message: "is required for cakes"}
		}
		if r.Layers <= 0 {
			return &ValidationError{Field: "layers", Message: "must be a positive integer"}
		}
	}
	return nil
}

// UpdateCatalogRequest represents the JSON request body for replacing a
// category's stored option list.
type UpdateCatalogRequest struct {
	// Options is the ordered option list for the category.
	Options []CatalogOptionInput `json:"options" binding:"required,min=1"`
	// UpdatedBy identifies who changed the configuration.
	UpdatedBy string `json:"updated_by,omitempty"`
} // @name UpdateCatalogRequest

// CatalogOptionInput is one option in an UpdateCatalogRequest.
type CatalogOptionInput struct {
	// Name is the option display name.
	Name string `json:"name" binding:"required"`
	// UnitPrice is the option unit price in dollars. Must not be negative.
	UnitPrice float64 `json:"unit_price" binding:"min=0"`
} // @name CatalogOptionInput

// Validate performs custom validation on the request.
func (r *UpdateCatalogRequest) Validate() error {
	if len(r.Options) == 0 {
		return &ValidationError{Field: "options", Message: "must not be empty"}
	}
	for _, opt := range r.Options {
		if opt.Name == "" {
			return &ValidationError{Field: "options.name", Message: "is required"}
		}
		if opt.UnitPrice < 0 {
			return &ValidationError{Field: "options.unit_price", Message: "must not be negative"}
		}
	}
	return nil
}
