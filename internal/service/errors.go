package service

import (
	"errors"
	"fmt"

	"github.com/guttosm/bakery-service/internal/domain/model"
)

// ErrUnknownCategory is returned when a category tag is not part of the catalog.
var ErrUnknownCategory = errors.New("unknown catalog category")

// OptionNotFoundError is returned when a name does not match any option in
// its category. Shells recover by re-prompting; resolution never retries.
type OptionNotFoundError struct {
	Category model.Category
	Name     string
}

// Error implements the error interface.
func (e *OptionNotFoundError) Error() string {
	return fmt.Sprintf("no %s option named %q", e.Category, e.Name)
}

// InvalidQuantityError is returned when a quantity or layer count is not a
// positive integer.
type InvalidQuantityError struct {
	Field string
	Value int
}

// Error implements the error interface.
func (e *InvalidQuantityError) Error() string {
	return fmt.Sprintf("%s: must be a positive integer, got %d", e.Field, e.Value)
}

// CategoryMismatchError is returned when an option from the wrong category
// is passed to an item constructor. This is a caller contract violation,
// not a recoverable input error; shells treat it as fatal.
type CategoryMismatchError struct {
	Want model.Category
	Got  model.Category
}

// Error implements the error interface.
func (e *CategoryMismatchError) Error() string {
	return fmt.Sprintf("option category mismatch: want %s, got %s", e.Want, e.Got)
}

// IsRecoverable reports whether err is a user-input error the shell should
// handle by re-prompting, as opposed to a programming or infrastructure error.
func IsRecoverable(err error) bool {
	var notFound *OptionNotFoundError
	var invalidQty *InvalidQuantityError
	return errors.As(err, &notFound) || errors.As(err, &invalidQty) ||
		errors.Is(err, ErrUnknownCategory)
}
