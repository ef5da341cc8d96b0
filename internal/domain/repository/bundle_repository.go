package repository

import (
	"context"

	"backoffice/internal/domain/entity"
	"backoffice/internal/errors"

	"github.com/google/uuid"
)

// ErrBundleNotFound is returned when a bundle is not found.
var ErrBundleNotFound = errors.New("bundle not found")

// BundleRepository defines the interface for bundle-related store operations.
type BundleRepository interface {
	// CreateBundle persists a new bundle with its member list.
	CreateBundle(ctx context.Context, bundle *entity.Bundle) error

	// FindByID retrieves a bundle (with members) by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Bundle, error)

	// FindByIDs retrieves all bundles matching the given IDs.
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Bundle, error)

	// FindByMemberProduct retrieves every bundle whose member list contains
	// the product.
	FindByMemberProduct(ctx context.Context, productID uuid.UUID) ([]*entity.Bundle, error)

	// FindByDiscount retrieves every bundle stamped with the discount ID.
	FindByDiscount(ctx context.Context, discountID uuid.UUID) ([]*entity.Bundle, error)

	// FindBySale retrieves every bundle stamped with the sale ID.
	FindBySale(ctx context.Context, saleID uuid.UUID) ([]*entity.Bundle, error)

	// List retrieves active bundles with search and pagination.
	List(ctx context.Context, opts ListOptions) ([]*entity.Bundle, int64, error)

	// Save persists the full bundle document including the member list.
	// The bundle row and its members are written atomically.
	Save(ctx context.Context, bundle *entity.Bundle) error

	// ClearDiscount removes the discount stamp from every bundle carrying
	// the given discount ID. Idempotent.
	ClearDiscount(ctx context.Context, discountID uuid.UUID) (int64, error)

	// ClearSale removes the sale stamp from every bundle carrying the given
	// sale ID. Idempotent.
	ClearSale(ctx context.Context, saleID uuid.UUID) (int64, error)
}
