package repository

import (
	"context"

	"github.com/google/uuid"
)

// CartRepository defines the cascade contract against cart items. Carts are
// owned by the storefront; this service only patches the denormalized
// availability flags on items referencing a product or bundle.
type CartRepository interface {
	// SetProductAvailability flips isUnavailable on every cart item
	// referencing the product. Idempotent; returns rows touched.
	SetProductAvailability(ctx context.Context, productID uuid.UUID, unavailable bool) (int64, error)

	// SetBundleAvailability flips isUnavailable on every cart item
	// referencing the bundle. Idempotent; returns rows touched.
	SetBundleAvailability(ctx context.Context, bundleID uuid.UUID, unavailable bool) (int64, error)
}
