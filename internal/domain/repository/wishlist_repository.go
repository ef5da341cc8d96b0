package repository

import (
	"context"

	"github.com/google/uuid"
)

// WishlistRepository defines the cascade contract against wishlist items,
// mirroring CartRepository.
type WishlistRepository interface {
	// SetProductAvailability flips isUnavailable on every wishlist item
	// referencing the product. Idempotent; returns rows touched.
	SetProductAvailability(ctx context.Context, productID uuid.UUID, unavailable bool) (int64, error)

	// SetBundleAvailability flips isUnavailable on every wishlist item
	// referencing the bundle. Idempotent; returns rows touched.
	SetBundleAvailability(ctx context.Context, bundleID uuid.UUID, unavailable bool) (int64, error)
}
