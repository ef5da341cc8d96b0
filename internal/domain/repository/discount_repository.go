package repository

import (
	"context"

	"backoffice/internal/domain/entity"
	"backoffice/internal/errors"

	"github.com/google/uuid"
)

// ErrDiscountNotFound is returned when a discount is not found.
var ErrDiscountNotFound = errors.New("discount not found")

// DiscountRepository defines the interface for discount modifier persistence.
type DiscountRepository interface {
	// CreateDiscount persists a new discount modifier.
	CreateDiscount(ctx context.Context, discount *entity.Discount) error

	// FindByID retrieves a discount (with enrollment sets) by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Discount, error)

	// FindActive retrieves every non-soft-deleted discount. The sweeper
	// walks this set; expiry is derived from the window, not persisted.
	FindActive(ctx context.Context) ([]*entity.Discount, error)

	// List retrieves active discounts with search and pagination.
	List(ctx context.Context, opts ListOptions) ([]*entity.Discount, int64, error)

	// Save persists the full discount document including enrollment sets.
	Save(ctx context.Context, discount *entity.Discount) error
}
