// Package cli implements the interactive bakery storefront: a text menu
// where customers pick baked goods, configure them and check out.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/guttosm/bakery-service/internal/domain/model"
	"github.com/guttosm/bakery-service/internal/i18n"
	"github.com/guttosm/bakery-service/internal/logger"
	"github.com/guttosm/bakery-service/internal/service"
)

// menu actions a customer can type alongside the category names.
const (
	actionCheckout = "checkout"
	actionExit     = "exit"
)

// purchaseCategories are the categories a customer can buy directly.
// Frosting and filling are only reachable through the cake flow.
var purchaseCategories = []model.Category{
	model.CategoryBread,
	model.CategoryCake,
	model.CategoryPastry,
	model.CategoryCookie,
	model.CategoryPie,
}

// categoryLabels maps categories to the labels shown in the menu.
var categoryLabels = map[model.Category]string{
	model.CategoryBread:    "Bread",
	model.CategoryCake:     "Cake",
	model.CategoryFrosting: "Frosting",
	model.CategoryFilling:  "Filling",
	model.CategoryPastry:   "Pastry",
	model.CategoryCookie:   "Cookie",
	model.CategoryPie:      "Pie",
}

// Shell runs the interactive storefront session over an input and output
// stream. Streams are injected so sessions can be scripted in tests.
type Shell struct {
	in         *bufio.Scanner
	out        io.Writer
	catalog    service.Catalog
	cart       *model.Cart
	translator *i18n.Translator
	locale     string
}

// ShellOption configures a Shell.
type ShellOption func(*Shell)

// WithLocale sets the prompt language for the session.
func WithLocale(locale string) ShellOption {
	return func(s *Shell) {
		if i18n.GetTranslator().Supported(locale) {
			s.locale = locale
		}
	}
}

// NewShell creates a storefront session reading from in and writing to out.
func NewShell(in io.Reader, out io.Writer, catalog service.Catalog, opts ...ShellOption) *Shell {
	s := &Shell{
		in:         bufio.NewScanner(in),
		out:        out,
		catalog:    catalog,
		cart:       model.NewCart(),
		translator: i18n.GetTranslator(),
		locale:     i18n.DefaultLocale,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Cart returns the session cart. Checkout and cancel leave it intact.
func (s *Shell) Cart() *model.Cart {
	return s.cart
}

// Run drives the menu loop until the customer checks out or exits.
func (s *Shell) Run() error {
	s.println(s.msg(i18n.PromptWelcome))
	s.println("")

	for {
		s.printMenu()

		input, ok := s.readLine()
		if !ok {
			return io.ErrUnexpectedEOF
		}

		choice := strings.ToLower(strings.TrimSpace(input))
		switch {
		case choice == actionCheckout:
			if done := s.checkout(); done {
				return nil
			}
		case choice == actionExit:
			s.goodbye()
			return nil
		default:
			category, ok := s.matchCategory(choice)
			if !ok {
				s.println("")
				s.println(s.msg(i18n.PromptInvalidInput))
				continue
			}
			if err := s.purchase(category); err != nil {
				return err
			}
		}
	}
}

// printMenu prints the top-level menu of categories and actions.
func (s *Shell) printMenu() {
	s.println(s.msg(i18n.PromptMenu))
	for _, category := range purchaseCategories {
		s.println(categoryLabels[category])
	}
	s.println("Checkout")
	s.println("Exit")
	s.println("")
}

// matchCategory maps a customer's menu choice onto a purchasable category.
func (s *Shell) matchCategory(choice string) (model.Category, bool) {
	for _, category := range purchaseCategories {
		if strings.EqualFold(choice, categoryLabels[category]) {
			return category, true
		}
	}
	return "", false
}

// purchase runs the item flow for the category, re-prompting on bad input
// until an item lands in the cart. Only a closed input stream aborts.
func (s *Shell) purchase(category model.Category) error {
	for {
		var item model.LineItem
		var err error
		if category == model.CategoryCake {
			item, err = s.cakeFlow()
		} else {
			item, err = s.simpleFlow(category)
		}
		if err == nil {
			s.cart.Add(item)
			s.println("")
			logger.Logger().Debug().
				Str("kind", string(item.Kind())).
				Float64("line_total", item.TotalPrice()).
				Msg("item added to cart")
			return nil
		}
		if !service.IsRecoverable(err) {
			return err
		}
		s.println("")
		s.println(s.msg(i18n.PromptInvalidInput))
	}
}

// simpleFlow sells bread, pastries, cookies and pies: pick an option by
// name, then a quantity.
func (s *Shell) simpleFlow(category model.Category) (model.LineItem, error) {
	option, err := s.selectOption(category)
	if err != nil {
		return nil, err
	}

	s.println("")
	s.println(s.msg(i18n.PromptHowMany))
	s.println("")
	quantity, err := s.readInt()
	if err != nil {
		return nil, err
	}

	var item model.SimpleItem
	switch category {
	case model.CategoryBread:
		item, err = service.NewBreadLoaf(option, quantity)
	case model.CategoryPastry:
		item, err = service.NewPastry(option, quantity)
	case model.CategoryCookie:
		item, err = service.NewCookie(option, quantity)
	default:
		item, err = service.NewPie(option, quantity)
	}
	if err != nil {
		return nil, err
	}
	return item, nil
}

// cakeFlow sells cakes: base flavor, frosting and filling are each chosen
// by name, then layers and quantity.
func (s *Shell) cakeFlow() (model.LineItem, error) {
	cake, err := s.selectOption(model.CategoryCake)
	if err != nil {
		return nil, err
	}

	frosting, err := s.selectLoop(model.CategoryFrosting)
	if err != nil {
		return nil, err
	}
	filling, err := s.selectLoop(model.CategoryFilling)
	if err != nil {
		return nil, err
	}

	s.println("")
	s.println(s.msg(i18n.PromptHowManyLayers))
	s.println("")
	layers, err := s.readInt()
	if err != nil {
		return nil, err
	}

	s.println("")
	s.println(s.msg(i18n.PromptHowManyCakes))
	s.println("")
	quantity, err := s.readInt()
	if err != nil {
		return nil, err
	}

	item, err := service.NewCake(cake, frosting, filling, layers, quantity)
	if err != nil {
		return nil, err
	}
	return item, nil
}

// selectOption lists a category's options and resolves the customer's pick.
func (s *Shell) selectOption(category model.Category) (model.Option, error) {
	options, err := s.catalog.Options(category)
	if err != nil {
		return model.Option{}, err
	}

	s.println("")
	s.printf("%s\n", fmt.Sprintf(s.msg(i18n.PromptSelectType), categoryLabels[category]))
	s.println("")
	for _, option := range options {
		s.printf("%s, $%v\n", option.Name, option.UnitPrice)
	}
	s.println("")

	input, ok := s.readLine()
	if !ok {
		return model.Option{}, io.ErrUnexpectedEOF
	}

	return s.catalog.Resolve(category, strings.TrimSpace(input))
}

// selectLoop keeps prompting for a category until a valid option is chosen.
// Used for frosting and filling, which re-prompt independently of the
// surrounding cake flow.
func (s *Shell) selectLoop(category model.Category) (model.Option, error) {
	for {
		option, err := s.selectOption(category)
		if err == nil {
			return option, nil
		}
		if !service.IsRecoverable(err) {
			return model.Option{}, err
		}
		s.println("")
		s.println(s.msg(i18n.PromptInvalidInput))
	}
}

// checkout shows the cart and confirms the purchase. Returns true when the
// session is over, false to go back to shopping.
func (s *Shell) checkout() bool {
	for {
		s.println("")
		s.println(s.msg(i18n.PromptSelectedItems))
		for _, item := range s.cart.Items() {
			s.println(item.Description())
		}
		s.println("")
		s.println(s.msg(i18n.PromptContinue))
		s.println("")

		input, ok := s.readLine()
		if !ok {
			return true
		}

		switch strings.ToLower(strings.TrimSpace(input)) {
		case "yes":
			s.println("")
			s.printf(s.msg(i18n.PromptTotalPrice)+"\n", s.cart.Total())
			logger.Logger().Info().
				Int("items", s.cart.Len()).
				Float64("total", s.cart.Total()).
				Msg("checkout complete")
			return true
		case "no":
			s.println("")
			s.println(s.msg(i18n.PromptCancelPurchase))
			s.println("")

			answer, ok := s.readLine()
			if !ok {
				return true
			}
			if strings.EqualFold(strings.TrimSpace(answer), "yes") {
				s.goodbye()
				return true
			}
			// Back to shopping; the cart keeps its entries.
			return false
		default:
			s.println("")
			s.println(s.msg(i18n.PromptInvalidInput))
		}
	}
}

// goodbye prints the farewell message.
func (s *Shell) goodbye() {
	s.println("")
	s.println(s.msg(i18n.PromptGoodbye))
}

// readLine reads the next input line. ok is false when the stream is closed.
func (s *Shell) readLine() (string, bool) {
	if !s.in.Scan() {
		return "", false
	}
	return s.in.Text(), true
}

// readInt reads a line and parses it as a positive integer.
func (s *Shell) readInt() (int, error) {
	input, ok := s.readLine()
	if !ok {
		return 0, io.ErrUnexpectedEOF
	}
	n, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return 0, &service.InvalidQuantityError{Field: "quantity", Value: 0}
	}
	return n, nil
}

// msg translates a prompt key for the session locale.
func (s *Shell) msg(key string) string {
	return s.translator.Translate(key, s.locale)
}

func (s *Shell) println(line string) {
	fmt.Fprintln(s.out, line)
}

func (s *Shell) printf(format string, args ...interface{}) {
	fmt.Fprintf(s.out, format, args...)
}
