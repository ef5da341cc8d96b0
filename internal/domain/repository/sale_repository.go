package repository

import (
	"context"

	"backoffice/internal/domain/entity"
	"backoffice/internal/errors"

	"github.com/google/uuid"
)

// ErrSaleNotFound is returned when a sale is not found.
var ErrSaleNotFound = errors.New("sale not found")

// SaleRepository defines the interface for sale campaign persistence.
type SaleRepository interface {
	// CreateSale persists a new sale campaign.
	CreateSale(ctx context.Context, sale *entity.Sale) error

	// FindByID retrieves a sale (with affected snapshots) by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Sale, error)

	// FindActive retrieves every non-soft-deleted sale for the sweep.
	FindActive(ctx context.Context) ([]*entity.Sale, error)

	// List retrieves active sales with search and pagination.
	List(ctx context.Context, opts ListOptions) ([]*entity.Sale, int64, error)

	// Save persists the full sale document including affected snapshots.
	Save(ctx context.Context, sale *entity.Sale) error

	// SetAffectedProductAvailability flips the denormalized isUnavailable
	// flag on every affected-product snapshot referencing the product, across
	// all sales. Idempotent.
	SetAffectedProductAvailability(ctx context.Context, productID uuid.UUID, unavailable bool) (int64, error)
}
