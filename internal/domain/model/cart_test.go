package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func breadItem(name string, unitPrice float64, qty int) SimpleItem {
	return SimpleItem{
		ItemKind:  KindBreadLoaf,
		Option:    Option{Category: CategoryBread, Name: name, UnitPrice: unitPrice},
		Qty:       qty,
		LineTotal: unitPrice * float64(qty),
	}
}

func TestCart_Add(t *testing.T) {
	cart := NewCart()
	assert.Equal(t, 0, cart.Len())
	assert.Zero(t, cart.Total())

	cart.Add(breadItem("White Bread", 7.99, 3))
	assert.Equal(t, 1, cart.Len())
	assert.InDelta(t, 23.97, cart.Total(), 1e-9)

	cart.Add(breadItem("Sourdough Bread", 9.99, 1))
	assert.Equal(t, 2, cart.Len())
	assert.InDelta(t, 33.96, cart.Total(), 1e-9)
}

// Adding the same purchase twice keeps two distinct entries.
func TestCart_Add_DuplicatesNotMerged(t *testing.T) {
	cart := NewCart()
	item := breadItem("White Bread", 7.99, 1)

	cart.Add(item)
	cart.Add(item)

	assert.Equal(t, 2, cart.Len())
	assert.InDelta(t, 15.98, cart.Total(), 1e-9)
}

func TestCart_Items_InsertionOrderAndCopy(t *testing.T) {
	cart := NewCart()
	cart.Add(breadItem("White Bread", 7.99, 1))
	cart.Add(breadItem("Whole Wheat Bread", 6.99, 2))

	items := cart.Items()
	assert.Len(t, items, 2)
	assert.Equal(t, "Item: White Bread. Quantity: 1", items[0].Description())
	assert.Equal(t, "Item: Whole Wheat Bread. Quantity: 2", items[1].Description())

	// Mutating the returned slice must not affect the cart.
	items[0] = breadItem("Sourdough Bread", 9.99, 1)
	assert.Equal(t, "Item: White Bread. Quantity: 1", cart.Items()[0].Description())
}

func TestCart_Summarize(t *testing.T) {
	cart := NewCart()
	cart.Add(breadItem("White Bread", 7.99, 3))
	cake := CakeItem{
		Base:      Option{Category: CategoryCake, Name: "Vanilla Cake", UnitPrice: 7.99},
		Frosting:  Option{Category: CategoryFrosting, Name: "Chocolate Frosting", UnitPrice: 7.99},
		Filling:   Option{Category: CategoryFilling, Name: "Oreos", UnitPrice: 7.99},
		Layers:    2,
		Qty:       1,
		LineTotal: 47.94,
	}
	cart.Add(cake)

	receipt := cart.Summarize()

	assert.Len(t, receipt.Lines, 2)
	assert.Equal(t, "bread_loaf", receipt.Lines[0].Kind)
	assert.Equal(t, 3, receipt.Lines[0].Quantity)
	assert.InDelta(t, 23.97, receipt.Lines[0].Total, 1e-9)
	assert.Equal(t, "cake", receipt.Lines[1].Kind)
	assert.InDelta(t, 71.91, receipt.Total, 1e-9)
	assert.False(t, receipt.CreatedAt.IsZero())

	// Summarizing does not clear the cart.
	assert.Equal(t, 2, cart.Len())
	assert.InDelta(t, 71.91, cart.Total(), 1e-9)
}

func TestCart_Summarize_Empty(t *testing.T) {
	receipt := NewCart().Summarize()
	assert.Empty(t, receipt.Lines)
	assert.Zero(t, receipt.Total)
}
