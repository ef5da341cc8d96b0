// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"backoffice/internal/domain/entity"
	"backoffice/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for product persistence.
var (
	// ErrProductNotFound is returned when a product is not found.
	ErrProductNotFound = errors.New("product not found")
)

// ListOptions carries the shared search/sort/pagination parameters of the
// listing endpoints.
type ListOptions struct {
	Search string
	Sort   string // "asc" (default) or "desc".
	Page   int
	Limit  int
}

// ProductRepository defines the interface for product-related store operations.
// Writes are full-document saves; each save is individually atomic.
type ProductRepository interface {
	// FindByID retrieves a product by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// FindByIDs retrieves all products matching the given IDs. Missing IDs
	// are not an error; callers diff the result against the request.
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Product, error)

	// FindByDiscount retrieves every product stamped with the discount ID,
	// regardless of the discount's own enrollment list.
	FindByDiscount(ctx context.Context, discountID uuid.UUID) ([]*entity.Product, error)

	// FindBySale retrieves every product stamped with the sale ID.
	FindBySale(ctx context.Context, saleID uuid.UUID) ([]*entity.Product, error)

	// FindByCategoryAndSale retrieves products in a category that are
	// stamped with the sale ID.
	FindByCategoryAndSale(ctx context.Context, categoryID, saleID uuid.UUID) ([]*entity.Product, error)

	// List retrieves active products with search and pagination, returning
	// the total match count alongside the page.
	List(ctx context.Context, opts ListOptions) ([]*entity.Product, int64, error)

	// Save persists the full product document.
	Save(ctx context.Context, product *entity.Product) error

	// ClearDiscount removes the discount stamp (discountId,
	// adminDiscountApplied, adminDiscountedPrice) from every product carrying
	// the given discount ID. Idempotent; returns the number of rows touched.
	ClearDiscount(ctx context.Context, discountID uuid.UUID) (int64, error)

	// ClearSale removes the sale stamp (saleId, saleApplied,
	// saleDiscountApplied, finalePrice) from every product carrying the given
	// sale ID. Idempotent; returns the number of rows touched.
	ClearSale(ctx context.Context, saleID uuid.UUID) (int64, error)

	// ClearCategory severs the category link from every product referencing
	// the given category, leaving all other fields untouched.
	ClearCategory(ctx context.Context, categoryID uuid.UUID) (int64, error)
}
