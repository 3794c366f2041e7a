package model

import "time"

// Cart is the ordered, append-only collection of items for one shopping
// session, plus the running total collected at add time.
//
// A cart belongs to exactly one session and is not safe for concurrent
// use on its own; the session store serializes access when carts are
// shared across HTTP requests.
type Cart struct {
	items []LineItem
	total float64
}

// NewCart creates an empty cart.
func NewCart() *Cart {
	return &Cart{}
}

// Add appends an item and accumulates its line total.
// Identical purchases are kept as distinct entries, never merged.
func (c *Cart) Add(item LineItem) {
	c.items = append(c.items, item)
	c.total += item.TotalPrice()
}

// Items returns the cart entries in insertion order.
// The returned slice is a copy; mutating it does not affect the cart.
func (c *Cart) Items() []LineItem {
	out := make([]LineItem, len(c.items))
	copy(out, c.items)
	return out
}

// Len returns the number of entries.
func (c *Cart) Len() int {
	return len(c.items)
}

// Total returns the running total collected so far.
func (c *Cart) Total() float64 {
	return c.total
}

// ReceiptLine is one summarized entry on a checkout receipt.
//
// @Description A single receipt line
type ReceiptLine struct {
	Description string  `json:"description" example:"Item: White Bread. Quantity: 3"`
	Kind        string  `json:"kind" example:"bread_loaf"`
	Quantity    int     `json:"quantity" example:"3"`
	Total       float64 `json:"total" example:"23.97"`
} // @name ReceiptLine

// Receipt is the checkout summary of a cart. Producing a receipt reads
// the cart without clearing it; the cart is discarded with the session.
//
// @Description Checkout summary for a session cart
type Receipt struct {
	Lines     []ReceiptLine `json:"lines"`
	Total     float64       `json:"total" example:"23.97"`
	CreatedAt time.Time     `json:"created_at"`
} // @name Receipt

// Summarize builds a receipt from the cart's current contents.
func (c *Cart) Summarize() Receipt {
	lines := make([]ReceiptLine, 0, len(c.items))
	for _, item := range c.items {
		lines = append(lines, ReceiptLine{
			Description: item.Description(),
			Kind:        string(item.Kind()),
			Quantity:    item.Quantity(),
			Total:       item.TotalPrice(),
		})
	}
	return Receipt{
		Lines:     lines,
		Total:     c.total,
		CreatedAt: time.Now(),
	}
}
