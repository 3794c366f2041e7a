// Package model defines the core domain entities for the bakery service.
package model

// Category identifies a group of options a customer can choose from.
type Category string

const (
	// CategoryBread groups the bread loaf options.
	CategoryBread Category = "bread"
	// CategoryCake groups the cake base options.
	CategoryCake Category = "cake"
	// CategoryFrosting groups the cake frosting options.
	CategoryFrosting Category = "frosting"
	// CategoryFilling groups the cake filling options.
	CategoryFilling Category = "filling"
	// CategoryPastry groups the pastry options.
	CategoryPastry Category = "pastry"
	// CategoryPie groups the pie options.
	CategoryPie Category = "pie"
	// CategoryCookie groups the cookie options.
	CategoryCookie Category = "cookie"
)

// Categories lists all catalog categories in display order.
var Categories = []Category{
	CategoryBread,
	CategoryCake,
	CategoryFrosting,
	CategoryFilling,
	CategoryPastry,
	CategoryPie,
	CategoryCookie,
}

// Valid reports whether c is a known catalog category.
func (c Category) Valid() bool {
	switch c {
	case CategoryBread, CategoryCake, CategoryFrosting, CategoryFilling,
		CategoryPastry, CategoryPie, CategoryCookie:
		return true
	}
	return false
}

// String returns the category tag.
func (c Category) String() string {
	return string(c)
}

// Option is a single named, priced choice within a category.
// Options are immutable reference data owned by the catalog; cart items
// hold copies of the option they were built from and never write back to
// the catalog's unit price.
//
// @Description A priced catalog option
// @Example {"category": "bread", "name": "White Bread", "unit_price": 7.99}
type Option struct {
	// Category is the catalog category this option belongs to.
	Category Category `json:"category" bson:"category" example:"bread"`
	// Name is the display name, unique case-insensitively within the category.
	Name string `json:"name" bson:"name" example:"White Bread"`
	// UnitPrice is the price of a single unit, in dollars.
	UnitPrice float64 `json:"unit_price" bson:"unit_price" example:"7.99"`
} // @name Option
