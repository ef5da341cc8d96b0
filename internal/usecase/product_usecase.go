package usecase

import (
	"context"

	"backoffice/internal/domain/entity"
	"backoffice/internal/domain/repository"

	"github.com/google/uuid"
)

// ProductUsecase defines the interface for product read use cases
type ProductUsecase interface {
	// GetProduct retrieves a product by ID
	GetProduct(ctx context.Context, productID uuid.UUID) (*entity.Product, error)

	// ListProducts retrieves products with search and pagination
	ListProducts(ctx context.Context, opts repository.ListOptions) ([]*entity.Product, int64, error)
}
