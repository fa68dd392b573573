package domain

import "errors"

var (
	// ErrProductNotFound marks a product id that does not resolve
	// against the loaded catalog. Cart and wishlist operations treat
	// it as a silent no-op.
	ErrProductNotFound = errors.New("product not found")

	// ErrFetchFailed wraps a catalog fetch transport or status error.
	// It is stored as catalog state, never propagated to callers.
	ErrFetchFailed = errors.New("catalog fetch failed")
)
