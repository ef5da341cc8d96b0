package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "backoffice/internal/delivery/context"
	"backoffice/internal/domain/entity"
	domainerrors "backoffice/internal/domain/errors"
	"backoffice/internal/domain/repository"
	"backoffice/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// categoryService implements the CategoryUsecase interface.
type categoryService struct {
	categoryRepo repository.CategoryRepository
	productRepo  repository.ProductRepository
	adminRepo    repository.AdminRepository
	logger       *slog.Logger
}

// CategoryServiceParams holds dependencies for categoryService, injected by Fx.
type CategoryServiceParams struct {
	fx.In

	CategoryRepo repository.CategoryRepository
	ProductRepo  repository.ProductRepository
	AdminRepo    repository.AdminRepository
	Logger       *slog.Logger
}

// NewCategoryService is the constructor for categoryService.
func NewCategoryService(params CategoryServiceParams) usecase.CategoryUsecase {
	return &categoryService{
		categoryRepo: params.CategoryRepo,
		productRepo:  params.ProductRepo,
		adminRepo:    params.AdminRepo,
		logger:       params.Logger,
	}
}

func (srv *categoryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateCategory creates a new category.
func (srv *categoryService) CreateCategory(ctx context.Context, adminID uuid.UUID, input *usecase.CreateCategoryInput) (*entity.Category, error) {
	if err := requireActiveAdmin(ctx, srv.adminRepo, adminID); err != nil {
		return nil, err
	}

	category := &entity.Category{
		ID:          uuid.New(),
		Name:        input.Name,
		Description: input.Description,
		IsActive:    true,
		CreatedAt:   time.Now().UTC(),
		UpdatedAt:   time.Now().UTC(),
	}

	if err := srv.categoryRepo.CreateCategory(ctx, category); err != nil {
		return nil, errors.Wrap(err, "failed to create category")
	}

	return category, nil
}

// GetCategory retrieves a category by ID.
func (srv *categoryService) GetCategory(ctx context.Context, categoryID uuid.UUID) (*entity.Category, error) {
	category, err := srv.categoryRepo.FindByID(ctx, categoryID)
	if err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return nil, errors.Wrap(domainerrors.ErrCategoryNotFound, "category not found")
		}

		return nil, errors.Wrap(err, "failed to find category")
	}

	if !category.IsActive {
		return nil, errors.Wrap(domainerrors.ErrCategoryGone, "category is soft deleted")
	}

	return category, nil
}

// ListCategories retrieves categories with search and pagination.
func (srv *categoryService) ListCategories(ctx context.Context, opts repository.ListOptions) ([]*entity.Category, int64, error) {
	categories, total, err := srv.categoryRepo.List(ctx, opts)
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to list categories")
	}

	return categories, total, nil
}

// DeleteCategory soft-deletes the category and severs the category link on
// every product pointing at it. Products stay sellable; only the link goes.
func (srv *categoryService) DeleteCategory(ctx context.Context, adminID, categoryID uuid.UUID) error {
	if err := requireActiveAdmin(ctx, srv.adminRepo, adminID); err != nil {
		return err
	}

	category, err := srv.categoryRepo.FindByID(ctx, categoryID)
	if err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return errors.Wrap(domainerrors.ErrCategoryNotFound, "category not found")
		}

		return errors.Wrap(err, "failed to find category")
	}

	if !category.IsActive {
		return errors.Wrap(domainerrors.ErrCategoryGone, "category already soft deleted")
	}

	category.IsActive = false
	category.UpdatedAt = time.Now().UTC()
	if err := srv.categoryRepo.Save(ctx, category); err != nil {
		return errors.Wrap(err, "failed to save category")
	}

	severed, err := srv.productRepo.ClearCategory(ctx, categoryID)
	if err != nil {
		return errors.Wrap(domainerrors.ErrCascadePartial, "failed to sever category from products")
	}

	srv.log(ctx).Info("Category soft deleted",
		"categoryID", categoryID,
		"productsSevered", severed,
	)

	return nil
}
