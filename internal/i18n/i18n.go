// Package i18n provides internationalization support for the bakery service.
// It handles translation of API error messages and storefront prompts.
package i18n

import (
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
)

const (
	// DefaultLocale is the default language locale (English).
	DefaultLocale = "en"
	// AcceptLanguageHeader is the HTTP header name for language preference.
	AcceptLanguageHeader = "Accept-Language"
)

var (
	// defaultTranslator is the singleton translator instance.
	defaultTranslator *Translator
	translatorOnce    sync.Once
)

// Translator handles message translation for different locales.
type Translator struct {
	messages map[string]map[string]string
}

// NewTranslator creates a new translator with the default messages.
func NewTranslator() *Translator {
	return &Translator{
		messages: getDefaultMessages(),
	}
}

// GetTranslator returns the default singleton translator instance.
func GetTranslator() *Translator {
	translatorOnce.Do(func() {
		defaultTranslator = NewTranslator()
	})
	return defaultTranslator
}

// Translate returns the translated message for the given key and locale.
// Falls back to DefaultLocale, then to the key itself.
func (t *Translator) Translate(key, locale string) string {
	if locale == "" {
		locale = DefaultLocale
	}

	localeMessages, ok := t.messages[locale]
	if !ok {
		localeMessages = t.messages[DefaultLocale]
	}

	msg, ok := localeMessages[key]
	if !ok {
		if defaultMessages := t.messages[DefaultLocale]; defaultMessages != nil {
			if fallbackMsg, exists := defaultMessages[key]; exists {
				return fallbackMsg
			}
		}
		return key
	}

	return msg
}

// Supported reports whether the locale has a message table.
func (t *Translator) Supported(locale string) bool {
	_, ok := t.messages[locale]
	return ok
}

// GetLocale extracts the locale from the gin context.
// Checks Accept-Language header and falls back to DefaultLocale.
func GetLocale(c *gin.Context) string {
	acceptLang := c.GetHeader(AcceptLanguageHeader)
	if acceptLang == "" {
		return DefaultLocale
	}

	// Parse Accept-Language header (e.g., "en-US,en;q=0.9,pt;q=0.8")
	parts := strings.Split(acceptLang, ",")
	if len(parts) > 0 {
		lang := strings.TrimSpace(strings.Split(parts[0], ";")[0])
		if idx := strings.Index(lang, "-"); idx > 0 {
			lang = lang[:idx]
		}
		lang = strings.ToLower(lang)
		if GetTranslator().Supported(lang) {
			return lang
		}
	}

	return DefaultLocale
}

// getDefaultMessages returns the default message translations.
// Prompt messages are fmt templates filled in by the storefront shell.
func getDefaultMessages() map[string]map[string]string {
	return map[string]map[string]string{
		"en": {
			// Error messages
			"error.invalid_request":      "Invalid request",
			"error.invalid_request_body": "Invalid request body",
			"error.internal_error":       "An unexpected error occurred",
			"error.unauthorized":         "Unauthorized",
			"error.api_key_required":     "API key is required",
			"error.invalid_api_key":      "Invalid API key",
			"error.not_found":            "Not found",
			"error.rate_limit_exceeded":  "Too many requests, please try again later",
			"error.unknown_category":     "Unknown catalog category",
			"error.option_not_found":     "No such option in this category",
			"error.invalid_quantity":     "Quantity and layers must be positive integers",
			"error.cart_not_found":       "Cart not found",
			"error.invalid_token":        "Invalid or expired token",
			"error.token_required":       "Authentication token is required",

			// Storefront prompts
			"storefront.welcome":         "Welcome to the Bakery!",
			"storefront.menu":            "Select your purchase below",
			"storefront.select_type":     "Select Type of %s",
			"storefront.how_many":        "How Many Would You Like?",
			"storefront.how_many_layers": "How Many Layers is the Cake?",
			"storefront.how_many_cakes":  "How Many Cakes?",
			"storefront.invalid_input":   "Invalid Input. Try Again",
			"storefront.selected_items":  "Your Selected Items are: ",
			"storefront.continue":        "Do You Wish to Continue? (Yes/No)",
			"storefront.cancel_purchase": "Would You Like to Cancel the Purchase? (Yes/No)",
			"storefront.total_price":     "Total Price For Today: $%.2f",
			"storefront.goodbye":         "Thank You. Have a Nice Day!",
		},
		"pt": {
			// Error messages
			"error.invalid_request":      "Requisição inválida",
			"error.invalid_request_body": "Corpo da requisição inválido",
			"error.internal_error":       "Ocorreu um erro inesperado",
			"error.unauthorized":         "Não autorizado",
			"error.api_key_required":     "Chave de API é obrigatória",
			"error.invalid_api_key":      "Chave de API inválida",
			"error.not_found":            "Não encontrado",
			"error.rate_limit_exceeded":  "Muitas requisições, tente novamente mais tarde",
			"error.unknown_category":     "Categoria de catálogo desconhecida",
			"error.option_not_found":     "Opção inexistente nesta categoria",
			"error.invalid_quantity":     "Quantidade e camadas devem ser inteiros positivos",
			"error.cart_not_found":       "Carrinho não encontrado",
			"error.invalid_token":        "Token inválido ou expirado",
			"error.token_required":       "Token de autenticação é obrigatório",

			// Storefront prompts
			"storefront.welcome":         "Bem-vindo à Padaria!",
			"storefront.menu":            "Selecione sua compra abaixo",
			"storefront.select_type":     "Selecione o tipo de %s",
			"storefront.how_many":        "Quantos você gostaria?",
			"storefront.how_many_layers": "Quantas camadas tem o bolo?",
			"storefront.how_many_cakes":  "Quantos bolos?",
			"storefront.invalid_input":   "Entrada inválida. Tente novamente",
			"storefront.selected_items":  "Seus itens selecionados são: ",
			"storefront.continue":        "Deseja continuar? (Sim/Não)",
			"storefront.cancel_purchase": "Deseja cancelar a compra? (Sim/Não)",
			"storefront.total_price":     "Preço total de hoje: $%.2f",
			"storefront.goodbye":         "Obrigado. Tenha um bom dia!",
		},
	}
}
