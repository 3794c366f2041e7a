package cli

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/guttosm/bakery-service/internal/service"
)

// runSession feeds a scripted customer session to the shell and returns
// the transcript.
func runSession(t *testing.T, lines ...string) (*Shell, string, error) {
	t.Helper()
	in := strings.NewReader(strings.Join(lines, "\n") + "\n")
	var out bytes.Buffer
	shell := NewShell(in, &out, service.NewCatalogService())
	err := shell.Run()
	return shell, out.String(), err
}

func TestShell_BreadPurchaseAndCheckout(t *testing.T) {
	shell, out, err := runSession(t,
		"Bread",
		"White Bread",
		"3",
		"Checkout",
		"yes",
	)

	assert.NoError(t, err)
	assert.Contains(t, out, "Welcome to the Bakery!")
	assert.Contains(t, out, "Select Type of Bread")
	assert.Contains(t, out, "White Bread, $7.99")
	assert.Contains(t, out, "Item: White Bread. Quantity: 3")
	assert.Contains(t, out, "Total Price For Today: $23.97")

	assert.Equal(t, 1, shell.Cart().Len())
	assert.InDelta(t, 23.97, shell.Cart().Total(), 1e-9)
}

func TestShell_CakePurchase(t *testing.T) {
	shell, out, err := runSession(t,
		"Cake",
		"Vanilla Cake",
		"Chocolate Frosting",
		"Oreos",
		"2",
		"1",
		"Checkout",
		"yes",
	)

	assert.NoError(t, err)
	assert.Contains(t, out, "Select Type of Cake")
	assert.Contains(t, out, "Select Type of Frosting")
	assert.Contains(t, out, "Select Type of Filling")
	assert.Contains(t, out, "How Many Layers is the Cake?")
	assert.Contains(t, out, "How Many Cakes?")
	assert.Contains(t, out, "Item: Vanilla Cake, Chocolate Frosting, Oreos, Layers: 2, Quantity: 1")
	assert.Contains(t, out, "Total Price For Today: $47.94")

	assert.InDelta(t, 47.94, shell.Cart().Total(), 1e-9)
}

// Option names match case-insensitively, as at the counter.
func TestShell_CaseInsensitiveSelection(t *testing.T) {
	shell, _, err := runSession(t,
		"pie",
		"chocolate cream pie",
		"1",
		"Checkout",
		"yes",
	)

	assert.NoError(t, err)
	assert.InDelta(t, 11.50, shell.Cart().Total(), 1e-9)
}

func TestShell_InvalidMenuChoiceReprompts(t *testing.T) {
	_, out, err := runSession(t,
		"Donut",
		"Exit",
	)

	assert.NoError(t, err)
	assert.Contains(t, out, "Invalid Input. Try Again")
	assert.Contains(t, out, "Thank You. Have a Nice Day!")
}

// A typo'd option name restarts the category flow instead of crashing.
func TestShell_UnknownOptionReprompts(t *testing.T) {
	shell, out, err := runSession(t,
		"Bread",
		"Rye Bread",
		"Bread",
		"White Bread",
		"1",
		"Checkout",
		"yes",
	)

	assert.NoError(t, err)
	assert.Contains(t, out, "Invalid Input. Try Again")
	assert.Equal(t, 1, shell.Cart().Len())
	assert.InDelta(t, 7.99, shell.Cart().Total(), 1e-9)
}

func TestShell_BadQuantityReprompts(t *testing.T) {
	shell, out, err := runSession(t,
		"Cookie",
		"Sugar Cookie",
		"lots",
		"Sugar Cookie",
		"4",
		"Checkout",
		"yes",
	)

	assert.NoError(t, err)
	assert.Contains(t, out, "Invalid Input. Try Again")
	assert.Equal(t, 1, shell.Cart().Len())
	assert.InDelta(t, 10.00, shell.Cart().Total(), 1e-9)
}

func TestShell_CheckoutDeclineCancelExits(t *testing.T) {
	shell, out, err := runSession(t,
		"Pastry",
		"Croissant",
		"2",
		"Checkout",
		"no",
		"yes",
	)

	assert.NoError(t, err)
	assert.Contains(t, out, "Would You Like to Cancel the Purchase? (Yes/No)")
	assert.Contains(t, out, "Thank You. Have a Nice Day!")
	assert.NotContains(t, out, "Total Price For Today")

	// Cancelling does not clear the cart; it is discarded with the session.
	assert.Equal(t, 1, shell.Cart().Len())
	assert.InDelta(t, 7.00, shell.Cart().Total(), 1e-9)
}

func TestShell_CheckoutDeclineKeepShopping(t *testing.T) {
	shell, out, err := runSession(t,
		"Cookie",
		"M&M Cookie",
		"1",
		"Checkout",
		"no",
		"no",
		"Cookie",
		"Sugar Cookie",
		"2",
		"Checkout",
		"yes",
	)

	assert.NoError(t, err)
	assert.Contains(t, out, "Total Price For Today: $7.99")
	assert.Equal(t, 2, shell.Cart().Len())
}

func TestShell_ExitWithoutPurchase(t *testing.T) {
	shell, out, err := runSession(t, "Exit")

	assert.NoError(t, err)
	assert.Contains(t, out, "Thank You. Have a Nice Day!")
	assert.Equal(t, 0, shell.Cart().Len())
}

func TestShell_ClosedInput(t *testing.T) {
	var out bytes.Buffer
	shell := NewShell(strings.NewReader(""), &out, service.NewCatalogService())

	err := shell.Run()
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

func TestShell_Locale(t *testing.T) {
	in := strings.NewReader("Exit\n")
	var out bytes.Buffer
	shell := NewShell(in, &out, service.NewCatalogService(), WithLocale("pt"))

	assert.NoError(t, shell.Run())
	assert.Contains(t, out.String(), "Bem-vindo à Padaria!")
}
