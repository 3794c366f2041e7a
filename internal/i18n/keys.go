// Package i18n provides internationalization support for the bakery service.
package i18n

// Error message translation keys.
const (
	// ErrKeyInvalidRequest indicates an invalid request.
	ErrKeyInvalidRequest = "error.invalid_request"
	// ErrKeyInvalidRequestBody indicates an invalid request body.
	ErrKeyInvalidRequestBody = "error.invalid_request_body"
	// ErrKeyInternalError indicates an internal server error.
	ErrKeyInternalError = "error.internal_error"
	// ErrKeyUnauthorized indicates missing or invalid authentication.
	ErrKeyUnauthorized = "error.unauthorized"
	// ErrKeyAPIKeyRequired indicates that an API key is required.
	ErrKeyAPIKeyRequired = "error.api_key_required"
	// ErrKeyInvalidAPIKey indicates an invalid API key.
	ErrKeyInvalidAPIKey = "error.invalid_api_key"
	// ErrKeyNotFound indicates a resource was not found.
	ErrKeyNotFound = "error.not_found"
	// ErrKeyRateLimitExceeded indicates rate limit exceeded.
	ErrKeyRateLimitExceeded = "error.rate_limit_exceeded"
	// ErrKeyUnknownCategory indicates an unknown catalog category.
	ErrKeyUnknownCategory = "error.unknown_category"
	// ErrKeyOptionNotFound indicates an option name that matched nothing.
	ErrKeyOptionNotFound = "error.option_not_found"
	// ErrKeyInvalidQuantity indicates a non-positive quantity or layer count.
	ErrKeyInvalidQuantity = "error.invalid_quantity"
	// ErrKeyCartNotFound indicates an unknown session cart id.
	ErrKeyCartNotFound = "error.cart_not_found"
	// ErrKeyInvalidToken indicates an invalid or expired admin token.
	ErrKeyInvalidToken = "error.invalid_token"
	// ErrKeyTokenRequired indicates that an admin token is required.
	ErrKeyTokenRequired = "error.token_required"
)

// Storefront prompt translation keys, used by the interactive shell.
const (
	PromptWelcome        = "storefront.welcome"
	PromptMenu           = "storefront.menu"
	PromptSelectType     = "storefront.select_type"
	PromptHowMany        = "storefront.how_many"
	PromptHowManyLayers  = "storefront.how_many_layers"
	PromptHowManyCakes   = "storefront.how_many_cakes"
	PromptInvalidInput   = "storefront.invalid_input"
	PromptSelectedItems  = "storefront.selected_items"
	PromptContinue       = "storefront.continue"
	PromptCancelPurchase = "storefront.cancel_purchase"
	PromptTotalPrice     = "storefront.total_price"
	PromptGoodbye        = "storefront.goodbye"
)
