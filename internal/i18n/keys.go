// Package i18n provides internationalization support for the pizza service.
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
	// ErrKeyInvalidCredentials indicates invalid login credentials (user not registered or wrong password).
	ErrKeyInvalidCredentials = "error.invalid_credentials"
	// ErrKeyAPIKeyRequired indicates that an API key is required.
	ErrKeyAPIKeyRequired = "error.api_key_required"
	// ErrKeyInvalidAPIKey indicates an invalid API key.
	ErrKeyInvalidAPIKey = "error.invalid_api_key"
	// ErrKeyForbidden indicates insufficient permissions.
	ErrKeyForbidden = "error.forbidden"
	// ErrKeyNotFound indicates a resource was not found.
	ErrKeyNotFound = "error.not_found"
	// ErrKeyRateLimitExceeded indicates rate limit exceeded.
	ErrKeyRateLimitExceeded = "error.rate_limit_exceeded"
	// ErrKeyConflict indicates a conflict with current state.
	ErrKeyConflict = "error.conflict"
	// ErrKeyValidationQuantity indicates an invalid quantity value.
	ErrKeyValidationQuantity = "error.validation.quantity"
	// ErrKeyUnknownComponent indicates a pizza referenced an unknown catalog id.
	ErrKeyUnknownComponent = "error.unknown_component"
	// ErrKeyEmptyCart indicates checkout was attempted with an empty cart.
	ErrKeyEmptyCart = "error.empty_cart"
	// ErrKeyInvalidToken indicates an invalid or expired JWT token.
	ErrKeyInvalidToken = "error.invalid_token"
	// ErrKeyTokenRequired indicates that a JWT token is required.
	ErrKeyTokenRequired = "error.token_required"
	// ErrKeyTimeout indicates a request timeout.
	ErrKeyTimeout = "error.timeout"
)

// Success message translation keys.
const (
	// SuccessKeyOrderPlaced indicates a successfully placed order.
	SuccessKeyOrderPlaced = "success.order_placed"
)
