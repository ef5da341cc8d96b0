package usecase

import (
	"context"

	"backoffice/internal/domain/entity"
	"backoffice/internal/domain/repository"

	"github.com/google/uuid"
)

// CreateCategoryInput represents the input for creating a category
type CreateCategoryInput struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

// CategoryUsecase defines the interface for category management use cases
type CategoryUsecase interface {
	// CreateCategory creates a new category
	CreateCategory(ctx context.Context, adminID uuid.UUID, input *CreateCategoryInput) (*entity.Category, error)

	// GetCategory retrieves a category by ID
	GetCategory(ctx context.Context, categoryID uuid.UUID) (*entity.Category, error)

	// ListCategories retrieves categories with search and pagination
	ListCategories(ctx context.Context, opts repository.ListOptions) ([]*entity.Category, int64, error)

	// DeleteCategory soft-deletes the category and severs the category link
	// on every product that pointed to it, leaving products otherwise intact
	DeleteCategory(ctx context.Context, adminID, categoryID uuid.UUID) error
}
