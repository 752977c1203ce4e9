package errs

import "errors"

// Sentinel errors shared by the usecase and handler layers
var (
	// Catalog errors
	ErrProductNotFound    = errors.New("product not found")
	ErrVariantNotFound    = errors.New("variant not found")
	ErrCatalogUnavailable = errors.New("catalog unavailable")

	// Cart errors
	ErrInvalidDiscountCode = errors.New("invalid discount code")

	// Auth errors
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrTokenGeneration    = errors.New("token generation failed")
	ErrTokenValidation    = errors.New("token validation failed")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrStorageOperationFailed = errors.New("storage operation failed")
)
