package postgres

import (
	"context"

	"backoffice/internal/domain/repository"
	"backoffice/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// wishlistRepository implements the repository.WishlistRepository interface,
// mirroring cartRepository.
type wishlistRepository struct {
	db *gorm.DB
}

// NewWishlistRepository is the constructor for wishlistRepository.
func NewWishlistRepository(db *gorm.DB) repository.WishlistRepository {
	return &wishlistRepository{
		db: db,
	}
}

// SetProductAvailability flips isUnavailable on every wishlist item
// referencing the product. Idempotent.
func (repo *wishlistRepository) SetProductAvailability(ctx context.Context, productID uuid.UUID, unavailable bool) (int64, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.WishlistItemModel{}).
		Where("product_id = ?", productID).
		Update("is_unavailable", unavailable)

	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to patch wishlist items by product")
	}

	return result.RowsAffected, nil
}

// SetBundleAvailability flips isUnavailable on every wishlist item
// referencing the bundle. Idempotent.
func (repo *wishlistRepository) SetBundleAvailability(ctx context.Context, bundleID uuid.UUID, unavailable bool) (int64, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.WishlistItemModel{}).
		Where("bundle_id = ?", bundleID).
		Update("is_unavailable", unavailable)

	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to patch wishlist items by bundle")
	}

	return result.RowsAffected, nil
}
