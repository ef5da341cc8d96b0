package usecase

import (
	"context"
	"time"

	"backoffice/internal/domain/entity"
	"backoffice/internal/domain/repository"

	"github.com/google/uuid"
)

// CreateSaleInput represents the input for creating a sale campaign
type CreateSaleInput struct {
	Name                string      `json:"name" validate:"required"`
	Description         string      `json:"description"`
	StartDate           time.Time   `json:"start_date" validate:"required"`
	EndDate             time.Time   `json:"end_date" validate:"required"`
	Categories          []uuid.UUID `json:"categories"`
	SaleDiscountApplied float64     `json:"sale_discount_applied" validate:"required,min=0,max=100"`
}

// UpdateSaleInput represents the input for updating a sale.
// Nil fields are left unchanged.
type UpdateSaleInput struct {
	Name                *string    `json:"name,omitempty"`
	Description         *string    `json:"description,omitempty"`
	StartDate           *time.Time `json:"start_date,omitempty"`
	EndDate             *time.Time `json:"end_date,omitempty"`
	SaleDiscountApplied *float64   `json:"sale_discount_applied,omitempty" validate:"omitempty,min=0,max=100"`
}

// SaleUsecase defines the interface for sale campaign lifecycle use cases
type SaleUsecase interface {
	// CreateSale creates a new sale campaign scoped to categories
	CreateSale(ctx context.Context, adminID uuid.UUID, input *CreateSaleInput) (*entity.Sale, error)

	// GetSale retrieves a sale by ID
	GetSale(ctx context.Context, saleID uuid.UUID) (*entity.Sale, error)

	// ListSales retrieves sales with search and pagination
	ListSales(ctx context.Context, opts repository.ListOptions) ([]*entity.Sale, int64, error)

	// UpdateSale updates a sale; when the sale has already been applied the
	// final price is rewritten on every affected entity
	UpdateSale(ctx context.Context, adminID, saleID uuid.UUID, input *UpdateSaleInput) (*entity.Sale, error)

	// AddProductsToSale enrolls products into the sale's affected set
	// (fail-fast, all-or-nothing) and stamps prices when the window is open
	AddProductsToSale(ctx context.Context, adminID, saleID uuid.UUID, productIDs []uuid.UUID) (*ApplyResult, error)

	// AddBundlesToSale enrolls bundles under the same contract
	AddBundlesToSale(ctx context.Context, adminID, saleID uuid.UUID, bundleIDs []uuid.UUID) (*ApplyResult, error)

	// RemoveProductFromSale detaches one product; the product's stamped sale
	// ID must match or the removal is rejected
	RemoveProductFromSale(ctx context.Context, adminID, saleID, productID uuid.UUID) (*entity.Product, error)

	// RemoveCategoryFromSale drops a category from the sale's scope and tears
	// down every enrolled product in that category
	RemoveCategoryFromSale(ctx context.Context, adminID, saleID, categoryID uuid.UUID) (*entity.Sale, error)

	// DeleteSale soft-deletes the sale and tears down every entity still
	// stamped with it
	DeleteSale(ctx context.Context, adminID, saleID uuid.UUID) error

	// Sweep walks every live sale, applying open windows and tearing down
	// expired ones. Safe to re-run.
	Sweep(ctx context.Context, now time.Time) (*SweepReport, error)
}
