package postgres

import (
	"context"

	"backoffice/internal/domain/repository"
	"backoffice/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// cartRepository implements the repository.CartRepository interface. The
// storefront owns cart writes; only the denormalized availability flag is
// patched from here.
type cartRepository struct {
	db *gorm.DB
}

// NewCartRepository is the constructor for cartRepository.
func NewCartRepository(db *gorm.DB) repository.CartRepository {
	return &cartRepository{
		db: db,
	}
}

// SetProductAvailability flips isUnavailable on every cart item referencing
// the product. Idempotent.
func (repo *cartRepository) SetProductAvailability(ctx context.Context, productID uuid.UUID, unavailable bool) (int64, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.CartItemModel{}).
		Where("product_id = ?", productID).
		Update("is_unavailable", unavailable)

	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to patch cart items by product")
	}

	return result.RowsAffected, nil
}

// SetBundleAvailability flips isUnavailable on every cart item referencing
// the bundle. Idempotent.
func (repo *cartRepository) SetBundleAvailability(ctx context.Context, bundleID uuid.UUID, unavailable bool) (int64, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.CartItemModel{}).
		Where("bundle_id = ?", bundleID).
		Update("is_unavailable", unavailable)

	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to patch cart items by bundle")
	}

	return result.RowsAffected, nil
}
