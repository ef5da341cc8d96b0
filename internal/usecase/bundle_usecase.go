package usecase

import (
	"context"

	"backoffice/internal/domain/entity"
	"backoffice/internal/domain/repository"

	"github.com/google/uuid"
)

// BundleItemInput represents one member of a bundle
type BundleItemInput struct {
	ProductID uuid.UUID `json:"product_id" validate:"required"`
	Quantity  int       `json:"quantity" validate:"required,min=1"`
}

// CreateBundleInput represents the input for creating a bundle
type CreateBundleInput struct {
	Name           string            `json:"name" validate:"required"`
	Description    string            `json:"description"`
	Stock          int               `json:"stock" validate:"min=0"`
	Products       []BundleItemInput `json:"products" validate:"required,min=1,dive"`
	SellerDiscount *float64          `json:"seller_discount,omitempty" validate:"omitempty,min=0,max=100"`
}

// UpdateBundleInput represents the input for updating a bundle.
// Nil fields are left unchanged.
type UpdateBundleInput struct {
	Name           *string            `json:"name,omitempty"`
	Description    *string            `json:"description,omitempty"`
	Stock          *int               `json:"stock,omitempty" validate:"omitempty,min=0"`
	Products       *[]BundleItemInput `json:"products,omitempty" validate:"omitempty,min=1,dive"`
	SellerDiscount *float64           `json:"seller_discount,omitempty" validate:"omitempty,min=0,max=100"`
}

// BundleUsecase defines the interface for bundle management use cases.
// Every mutation re-aggregates the bundle's MRP from its current members
// and re-layers whichever discount stack was already active.
type BundleUsecase interface {
	// CreateBundle creates a bundle from active member products
	CreateBundle(ctx context.Context, adminID uuid.UUID, input *CreateBundleInput) (*entity.Bundle, error)

	// GetBundle retrieves a bundle by ID
	GetBundle(ctx context.Context, bundleID uuid.UUID) (*entity.Bundle, error)

	// ListBundles retrieves bundles with search and pagination
	ListBundles(ctx context.Context, opts repository.ListOptions) ([]*entity.Bundle, int64, error)

	// UpdateBundle updates a bundle and recomputes its price stack
	UpdateBundle(ctx context.Context, adminID, bundleID uuid.UUID, input *UpdateBundleInput) (*entity.Bundle, error)

	// DeleteBundle soft-deletes a bundle
	DeleteBundle(ctx context.Context, adminID, bundleID uuid.UUID) error
}
