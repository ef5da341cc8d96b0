package usecase

import (
	"context"
	"time"

	"backoffice/internal/domain/entity"
	"backoffice/internal/domain/repository"

	"github.com/google/uuid"
)

// CreateDiscountInput represents the input for creating a discount
type CreateDiscountInput struct {
	AdminDiscount float64             `json:"admin_discount" validate:"required,min=0,max=100"`
	Type          entity.DiscountType `json:"type" validate:"required,oneof=MRP sellerDiscounted"`
	Description   string              `json:"description"`
	StartDate     time.Time           `json:"start_date" validate:"required"`
	EndDate       time.Time           `json:"end_date" validate:"required"`
}

// UpdateDiscountInput represents the input for updating a discount.
// Nil fields are left unchanged.
type UpdateDiscountInput struct {
	AdminDiscount *float64   `json:"admin_discount,omitempty" validate:"omitempty,min=0,max=100"`
	Description   *string    `json:"description,omitempty"`
	StartDate     *time.Time `json:"start_date,omitempty"`
	EndDate       *time.Time `json:"end_date,omitempty"`
}

// EnrollmentFailure reports one entity that could not be updated inside a
// best-effort application batch
type EnrollmentFailure struct {
	ID     uuid.UUID `json:"id"`
	Reason string    `json:"reason"`
}

// ApplyResult is the outcome of stamping a modifier onto its enrolled
// entities: the updated entities plus a parallel per-entity failure list
type ApplyResult struct {
	Products []*entity.Product   `json:"products"`
	Bundles  []*entity.Bundle    `json:"bundles"`
	Failed   []EnrollmentFailure `json:"failed,omitempty"`
}

// SweepReport summarizes one lifecycle sweep over all modifiers
type SweepReport struct {
	Applied  int                 `json:"applied"`
	Cleared  int                 `json:"cleared"`
	Failures []EnrollmentFailure `json:"failures,omitempty"`
}

// DiscountUsecase defines the interface for discount lifecycle use cases
type DiscountUsecase interface {
	// CreateDiscount creates a new discount modifier
	CreateDiscount(ctx context.Context, adminID uuid.UUID, input *CreateDiscountInput) (*entity.Discount, error)

	// GetDiscount retrieves a discount by ID
	GetDiscount(ctx context.Context, discountID uuid.UUID) (*entity.Discount, error)

	// ListDiscounts retrieves discounts with search and pagination
	ListDiscounts(ctx context.Context, opts repository.ListOptions) ([]*entity.Discount, int64, error)

	// UpdateDiscount updates a discount; when the discount has already been
	// applied the derived price is rewritten on every enrolled entity
	UpdateDiscount(ctx context.Context, adminID, discountID uuid.UUID, input *UpdateDiscountInput) (*entity.Discount, error)

	// ApplyDiscount enrolls the targets (fail-fast, all-or-nothing) and, when
	// the discount window is open, stamps the discounted price onto each
	// enrolled entity best-effort
	ApplyDiscount(ctx context.Context, adminID, discountID uuid.UUID, productIDs, bundleIDs []uuid.UUID) (*ApplyResult, error)

	// RemoveProductFromDiscount detaches one product; the product's stamped
	// discount ID must match or the removal is rejected
	RemoveProductFromDiscount(ctx context.Context, adminID, discountID, productID uuid.UUID) (*entity.Product, error)

	// RemoveBundleFromDiscount detaches one bundle under the same stamp check
	RemoveBundleFromDiscount(ctx context.Context, adminID, discountID, bundleID uuid.UUID) (*entity.Bundle, error)

	// DeleteDiscount soft-deletes the discount and tears down every entity
	// still stamped with it
	DeleteDiscount(ctx context.Context, adminID, discountID uuid.UUID) error

	// Sweep walks every live discount, applying open windows and tearing
	// down expired ones. Safe to re-run.
	Sweep(ctx context.Context, now time.Time) (*SweepReport, error)
}
