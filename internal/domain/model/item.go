package model

import "fmt"

// ItemKind identifies the cart item variant.
type ItemKind string

const (
	// KindBreadLoaf is a bread purchase.
	KindBreadLoaf ItemKind = "bread_loaf"
	// KindCake is a cake purchase (base + frosting + filling + layers).
	KindCake ItemKind = "cake"
	// KindPastry is a pastry purchase.
	KindPastry ItemKind = "pastry"
	// KindCookie is a cookie purchase.
	KindCookie ItemKind = "cookie"
	// KindPie is a pie purchase.
	KindPie ItemKind = "pie"
)

// LineItem is one purchased selection in a cart.
// TotalPrice is computed once at construction time and never recomputed,
// so later catalog changes cannot alter an existing cart entry.
type LineItem interface {
	// Kind returns the item variant tag.
	Kind() ItemKind
	// Quantity returns how many units were purchased.
	Quantity() int
	// TotalPrice returns the precomputed line total in dollars.
	TotalPrice() float64
	// Description returns the display text for receipts.
	Description() string
}

// SimpleItem is a single-option purchase: bread, pastry, cookie or pie.
//
// @Description A single-option cart entry
type SimpleItem struct {
	ItemKind  ItemKind `json:"kind" example:"bread_loaf"`
	Option    Option   `json:"option"`
	Qty       int      `json:"quantity" example:"3"`
	LineTotal float64  `json:"total_price" example:"23.97"`
} // @name SimpleItem

// Kind returns the item variant tag.
func (i SimpleItem) Kind() ItemKind { return i.ItemKind }

// Quantity returns how many units were purchased.
func (i SimpleItem) Quantity() int { return i.Qty }

// TotalPrice returns the precomputed line total.
func (i SimpleItem) TotalPrice() float64 { return i.LineTotal }

// Description returns the receipt line for this item.
func (i SimpleItem) Description() string {
	return fmt.Sprintf("Item: %s. Quantity: %d", i.Option.Name, i.Qty)
}

// CakeItem is a composite purchase: cake base, frosting and filling,
// priced per layer.
//
// @Description A cake cart entry with frosting, filling and layers
type CakeItem struct {
	Base      Option  `json:"cake"`
	Frosting  Option  `json:"frosting"`
	Filling   Option  `json:"filling"`
	Layers    int     `json:"layers" example:"2"`
	Qty       int     `json:"quantity" example:"1"`
	LineTotal float64 `json:"total_price" example:"47.94"`
} // @name CakeItem

// Kind returns KindCake.
func (i CakeItem) Kind() ItemKind { return KindCake }

// Quantity returns how many cakes were purchased.
func (i CakeItem) Quantity() int { return i.Qty }

// TotalPrice returns the precomputed line total.
func (i CakeItem) TotalPrice() float64 { return i.LineTotal }

// Description returns the receipt line for this item.
func (i CakeItem) Description() string {
	return fmt.Sprintf("Item: %s, %s, %s, Layers: %d, Quantity: %d",
		i.Base.Name, i.Frosting.Name, i.Filling.Name, i.Layers, i.Qty)
}
