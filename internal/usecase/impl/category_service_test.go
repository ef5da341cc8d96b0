package impl

import (
	"context"
	"testing"

	"backoffice/internal/domain/entity"
	domainerrors "backoffice/internal/domain/errors"
	mockRepo "backoffice/internal/mocks/repository"
	"backoffice/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type categoryServiceMocks struct {
	categoryRepo *mockRepo.MockCategoryRepository
	productRepo  *mockRepo.MockProductRepository
	adminRepo    *mockRepo.MockAdminRepository
}

func newCategoryService(t *testing.T) (usecase.CategoryUsecase, *categoryServiceMocks) {
	m := &categoryServiceMocks{
		categoryRepo: mockRepo.NewMockCategoryRepository(t),
		productRepo:  mockRepo.NewMockProductRepository(t),
		adminRepo:    mockRepo.NewMockAdminRepository(t),
	}
	service := NewCategoryService(CategoryServiceParams{
		CategoryRepo: m.categoryRepo,
		ProductRepo:  m.productRepo,
		AdminRepo:    m.adminRepo,
		Logger:       testLogger(),
	})

	return service, m
}

// Deleting a category severs the link on every product pointing at it. The
// products themselves stay sellable.
func TestCategoryService_DeleteCategory_SeversProductLinks(t *testing.T) {
	service, m := newCategoryService(t)
	ctx := context.Background()
	adminID := uuid.New()

	category := &entity.Category{ID: uuid.New(), Name: "Snacks", IsActive: true}

	m.adminRepo.EXPECT().FindByID(ctx, adminID).Return(activeAdmin(adminID), nil)
	m.categoryRepo.EXPECT().FindByID(ctx, category.ID).Return(category, nil)
	m.categoryRepo.EXPECT().Save(ctx, category).Return(nil)
	m.productRepo.EXPECT().ClearCategory(ctx, category.ID).Return(int64(7), nil)

	err := service.DeleteCategory(ctx, adminID, category.ID)
	require.NoError(t, err)
	assert.False(t, category.IsActive)
}

func TestCategoryService_DeleteCategory_AlreadyGone(t *testing.T) {
	service, m := newCategoryService(t)
	ctx := context.Background()
	adminID := uuid.New()

	category := &entity.Category{ID: uuid.New(), IsActive: false}

	m.adminRepo.EXPECT().FindByID(ctx, adminID).Return(activeAdmin(adminID), nil)
	m.categoryRepo.EXPECT().FindByID(ctx, category.ID).Return(category, nil)

	err := service.DeleteCategory(ctx, adminID, category.ID)
	assert.ErrorIs(t, err, domainerrors.ErrCategoryGone)

	m.productRepo.AssertNotCalled(t, "ClearCategory")
}

func TestCategoryService_DeleteCategory_SeverFailureIsCascadePartial(t *testing.T) {
	service, m := newCategoryService(t)
	ctx := context.Background()
	adminID := uuid.New()

	category := &entity.Category{ID: uuid.New(), IsActive: true}

	m.adminRepo.EXPECT().FindByID(ctx, adminID).Return(activeAdmin(adminID), nil)
	m.categoryRepo.EXPECT().FindByID(ctx, category.ID).Return(category, nil)
	m.categoryRepo.EXPECT().Save(ctx, category).Return(nil)
	m.productRepo.EXPECT().ClearCategory(ctx, category.ID).Return(int64(0), assert.AnError)

	err := service.DeleteCategory(ctx, adminID, category.ID)
	assert.ErrorIs(t, err, domainerrors.ErrCascadePartial)
}

func TestCategoryService_CreateCategory(t *testing.T) {
	service, m := newCategoryService(t)
	ctx := context.Background()
	adminID := uuid.New()

	m.adminRepo.EXPECT().FindByID(ctx, adminID).Return(activeAdmin(adminID), nil)
	m.categoryRepo.EXPECT().CreateCategory(ctx, mock.AnythingOfType("*entity.Category")).Return(nil)

	category, err := service.CreateCategory(ctx, adminID, &usecase.CreateCategoryInput{Name: "Drinks"})
	require.NoError(t, err)
	assert.Equal(t, "Drinks", category.Name)
	assert.True(t, category.IsActive)
}
