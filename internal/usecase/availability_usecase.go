package usecase

import (
	"context"

	"backoffice/internal/domain/entity"

	"github.com/google/uuid"
)

// AvailabilityUsecase defines the interface for block/unblock cascades.
// Blocking propagates into every collection that denormalizes a reference
// to the entity; unblocking reverts the flags but never re-adds a product
// to bundles it was dropped from.
type AvailabilityUsecase interface {
	// BlockProduct blocks a product and cascades the unavailability into
	// bundles, carts, wishlists and sale snapshots
	BlockProduct(ctx context.Context, adminID, productID uuid.UUID) (*entity.Product, error)

	// UnblockProduct unblocks a product and resets the denormalized flags
	UnblockProduct(ctx context.Context, adminID, productID uuid.UUID) (*entity.Product, error)

	// BlockBundle blocks a bundle and cascades into carts and wishlists
	BlockBundle(ctx context.Context, adminID, bundleID uuid.UUID) (*entity.Bundle, error)

	// UnblockBundle unblocks a bundle and resets the denormalized flags
	UnblockBundle(ctx context.Context, adminID, bundleID uuid.UUID) (*entity.Bundle, error)
}
