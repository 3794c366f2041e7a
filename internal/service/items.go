package service

import "github.com/guttosm/bakery-service/internal/domain/model"

// newSimpleItem builds a single-option cart entry after checking the
// option's category tag and computing the line total.
func newSimpleItem(kind model.ItemKind, want model.Category, option model.Option, quantity int) (model.SimpleItem, error) {
	if option.Category != want {
		return model.SimpleItem{}, &CategoryMismatchError{Want: want, Got: option.Category}
	}
	total, err := SimplePrice(option, quantity)
	if err != nil {
		return model.SimpleItem{}, err
	}
	return model.SimpleItem{
		ItemKind:  kind,
		Option:    option,
		Qty:       quantity,
		LineTotal: total,
	}, nil
}

// NewBreadLoaf builds a bread cart entry from a resolved bread option.
func NewBreadLoaf(option model.Option, quantity int) (model.SimpleItem, error) {
	return newSimpleItem(model.KindBreadLoaf, model.CategoryBread, option, quantity)
}

// NewPastry builds a pastry cart entry from a resolved pastry option.
func NewPastry(option model.Option, quantity int) (model.SimpleItem, error) {
	return newSimpleItem(model.KindPastry, model.CategoryPastry, option, quantity)
}

// NewCookie builds a cookie cart entry from a resolved cookie option.
func NewCookie(option model.Option, quantity int) (model.SimpleItem, error) {
	return newSimpleItem(model.KindCookie, model.CategoryCookie, option, quantity)
}

// NewPie builds a pie cart entry from a resolved pie option.
func NewPie(option model.Option, quantity int) (model.SimpleItem, error) {
	return newSimpleItem(model.KindPie, model.CategoryPie, option, quantity)
}

// NewCake builds a cake cart entry from resolved cake, frosting and filling
// options. Layers and quantity must be positive.
func NewCake(cake, frosting, filling model.Option, layers, quantity int) (model.CakeItem, error) {
	if cake.Category != model.CategoryCake {
		return model.CakeItem{}, &CategoryMismatchError{Want: model.CategoryCake, Got: cake.Category}
	}
	if frosting.Category != model.CategoryFrosting {
		return model.CakeItem{}, &CategoryMismatchError{Want: model.CategoryFrosting, Got: frosting.Category}
	}
	if filling.Category != model.CategoryFilling {
		return model.CakeItem{}, &CategoryMismatchError{Want: model.CategoryFilling, Got: filling.Category}
	}
	total, err := CakePrice(cake, frosting, filling, layers, quantity)
	if err != nil {
		return model.CakeItem{}, err
	}
	return model.CakeItem{
		Base:      cake,
		Frosting:  frosting,
		Filling:   filling,
		Layers:    layers,
		Qty:       quantity,
		LineTotal: total,
	}, nil
}
