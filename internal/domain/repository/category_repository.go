package repository

import (
	"context"

	"backoffice/internal/domain/entity"
	"backoffice/internal/errors"

	"github.com/google/uuid"
)

// ErrCategoryNotFound is returned when a category is not found.
var ErrCategoryNotFound = errors.New("category not found")

// CategoryRepository defines the interface for category persistence.
type CategoryRepository interface {
	// CreateCategory persists a new category.
	CreateCategory(ctx context.Context, category *entity.Category) error

	// FindByID retrieves a category by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)

	// FindByIDs retrieves all categories matching the given IDs.
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Category, error)

	// List retrieves active categories with search and pagination.
	List(ctx context.Context, opts ListOptions) ([]*entity.Category, int64, error)

	// Save persists the full category document.
	Save(ctx context.Context, category *entity.Category) error
}
