package service

import "github.com/guttosm/bakery-service/internal/domain/model"

// SimplePrice computes the total for a single-option purchase:
// unit price multiplied by quantity. Quantity must be positive.
func SimplePrice(option model.Option, quantity int) (float64, error) {
	if quantity <= 0 {
		return 0, &InvalidQuantityError{Field: "quantity", Value: quantity}
	}
	return option.UnitPrice * float64(quantity), nil
}

// CakePrice computes the total for a cake purchase. The cake, frosting and
// filling unit prices form the per-layer cost; layers multiplies the
// combined cost, and quantity multiplies the whole cake.
func CakePrice(cake, frosting, filling model.Option, layers, quantity int) (float64, error) {
	if layers <= 0 {
		return 0, &InvalidQuantityError{Field: "layers", Value: layers}
	}
	if quantity <= 0 {
		return 0, &InvalidQuantityError{Field: "quantity", Value: quantity}
	}
	perLayer := cake.UnitPrice + frosting.UnitPrice + filling.UnitPrice
	return perLayer * float64(layers) * float64(quantity), nil
}
