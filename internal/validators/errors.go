package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	// ErrValidation wraps every field-level error returned for a request
	// body. Callers match it with errors.Is and report 400.
	ErrValidation = errors.New("validation failed")

	ErrSymbolRequired        = errors.New("symbol is required")
	ErrNameRequired          = errors.New("name is required")
	ErrQuantityRequired      = errors.New("quantity is required")
	ErrPurchasePriceRequired = errors.New("purchasePrice is required")
	ErrNegativeQuantity      = errors.New("quantity must not be negative")
	ErrNegativePrice         = errors.New("price must not be negative")
	ErrInvalidNumber         = errors.New("number must be finite")
)
