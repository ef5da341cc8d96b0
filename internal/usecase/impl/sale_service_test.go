package impl

import (
	"context"
	"testing"
	"time"

	"backoffice/internal/domain/entity"
	domainerrors "backoffice/internal/domain/errors"
	mockRepo "backoffice/internal/mocks/repository"
	"backoffice/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type saleServiceMocks struct {
	saleRepo     *mockRepo.MockSaleRepository
	productRepo  *mockRepo.MockProductRepository
	bundleRepo   *mockRepo.MockBundleRepository
	categoryRepo *mockRepo.MockCategoryRepository
	adminRepo    *mockRepo.MockAdminRepository
}

func newSaleService(t *testing.T) (usecase.SaleUsecase, *saleServiceMocks) {
	m := &saleServiceMocks{
		saleRepo:     mockRepo.NewMockSaleRepository(t),
		productRepo:  mockRepo.NewMockProductRepository(t),
		bundleRepo:   mockRepo.NewMockBundleRepository(t),
		categoryRepo: mockRepo.NewMockCategoryRepository(t),
		adminRepo:    mockRepo.NewMockAdminRepository(t),
	}
	service := NewSaleService(SaleServiceParams{
		SaleRepo:     m.saleRepo,
		ProductRepo:  m.productRepo,
		BundleRepo:   m.bundleRepo,
		CategoryRepo: m.categoryRepo,
		AdminRepo:    m.adminRepo,
		Logger:       testLogger(),
	})

	return service, m
}

func TestSaleService_CreateSale_MissingCategoryRejected(t *testing.T) {
	service, m := newSaleService(t)
	ctx := context.Background()
	adminID := uuid.New()
	categoryID := uuid.New()

	m.adminRepo.EXPECT().FindByID(ctx, adminID).Return(activeAdmin(adminID), nil)
	m.categoryRepo.EXPECT().FindByIDs(ctx, []uuid.UUID{categoryID}).Return(nil, nil)

	start, end := openWindow()
	_, err := service.CreateSale(ctx, adminID, &usecase.CreateSaleInput{
		Name:                "Spring sale",
		StartDate:           start,
		EndDate:             end,
		Categories:          []uuid.UUID{categoryID},
		SaleDiscountApplied: 20,
	})
	assert.ErrorIs(t, err, domainerrors.ErrCategoryNotFound)
}

// Products outside the sale's category scope cannot be enrolled.
func TestSaleService_AddProducts_OutOfScopeRejected(t *testing.T) {
	service, m := newSaleService(t)
	ctx := context.Background()
	adminID := uuid.New()
	scopedCategory := uuid.New()
	otherCategory := uuid.New()

	start, end := openWindow()
	sale := &entity.Sale{
		ID:                  uuid.New(),
		StartDate:           start,
		EndDate:             end,
		Categories:          []uuid.UUID{scopedCategory},
		SaleDiscountApplied: 20,
		IsActive:            true,
	}
	product := &entity.Product{ID: uuid.New(), MRP: 100, CategoryID: &otherCategory, IsActive: true}

	m.adminRepo.EXPECT().FindByID(ctx, adminID).Return(activeAdmin(adminID), nil)
	m.saleRepo.EXPECT().FindByID(ctx, sale.ID).Return(sale, nil)
	m.productRepo.EXPECT().FindByIDs(ctx, []uuid.UUID{product.ID}).Return([]*entity.Product{product}, nil)

	_, err := service.AddProductsToSale(ctx, adminID, sale.ID, []uuid.UUID{product.ID})
	assert.ErrorIs(t, err, domainerrors.ErrTargetsUnavailable)
	assert.Empty(t, sale.AffectedProducts)
}

func TestSaleService_AddProducts_DuplicateRejectsBatch(t *testing.T) {
	service, m := newSaleService(t)
	ctx := context.Background()
	adminID := uuid.New()
	productID := uuid.New()

	start, end := openWindow()
	sale := &entity.Sale{
		ID:                  uuid.New(),
		StartDate:           start,
		EndDate:             end,
		SaleDiscountApplied: 20,
		AffectedProducts:    []entity.AffectedProduct{{ProductID: productID}},
		IsActive:            true,
	}

	m.adminRepo.EXPECT().FindByID(ctx, adminID).Return(activeAdmin(adminID), nil)
	m.saleRepo.EXPECT().FindByID(ctx, sale.ID).Return(sale, nil)

	_, err := service.AddProductsToSale(ctx, adminID, sale.ID, []uuid.UUID{productID})
	assert.ErrorIs(t, err, domainerrors.ErrDuplicateEnrollment)
	assert.Len(t, sale.AffectedProducts, 1)
}

// A 20% sale over a 100 MRP product stamps finalePrice=80 and snapshots the
// product under the sale.
func TestSaleService_AddProducts_StampsSalePriceFromMRP(t *testing.T) {
	service, m := newSaleService(t)
	ctx := context.Background()
	adminID := uuid.New()
	categoryID := uuid.New()

	start, end := openWindow()
	sale := &entity.Sale{
		ID:                  uuid.New(),
		StartDate:           start,
		EndDate:             end,
		Categories:          []uuid.UUID{categoryID},
		SaleDiscountApplied: 20,
		IsActive:            true,
	}

	// The admin-discounted price must not leak into the sale computation.
	adminPrice := 50.0
	product := &entity.Product{
		ID:                   uuid.New(),
		Name:                 "Widget",
		MRP:                  100,
		CategoryID:           &categoryID,
		AdminDiscountedPrice: &adminPrice,
		IsActive:             true,
	}

	m.adminRepo.EXPECT().FindByID(ctx, adminID).Return(activeAdmin(adminID), nil)
	m.saleRepo.EXPECT().FindByID(ctx, sale.ID).Return(sale, nil)
	m.productRepo.EXPECT().FindByIDs(ctx, []uuid.UUID{product.ID}).Return([]*entity.Product{product}, nil)
	m.productRepo.EXPECT().Save(ctx, product).Return(nil)
	m.saleRepo.EXPECT().Save(ctx, sale).Return(nil)

	result, err := service.AddProductsToSale(ctx, adminID, sale.ID, []uuid.UUID{product.ID})
	require.NoError(t, err)
	require.Len(t, result.Products, 1)

	require.NotNil(t, product.FinalePrice)
	assert.InDelta(t, 80.0, *product.FinalePrice, 1e-9)
	require.NotNil(t, product.SaleApplied)
	assert.True(t, *product.SaleApplied)
	assert.True(t, sale.IsApplied)

	require.Len(t, sale.AffectedProducts, 1)
	assert.Equal(t, product.ID, sale.AffectedProducts[0].ProductID)
	assert.Equal(t, 100.0, sale.AffectedProducts[0].ProductMRP)
	assert.InDelta(t, 80.0, sale.AffectedProducts[0].FinalPrice, 1e-9)
}

func TestSaleService_RemoveProduct_StampMismatch(t *testing.T) {
	service, m := newSaleService(t)
	ctx := context.Background()
	adminID := uuid.New()
	otherSaleID := uuid.New()

	start, end := openWindow()
	productID := uuid.New()
	sale := &entity.Sale{
		ID:               uuid.New(),
		StartDate:        start,
		EndDate:          end,
		AffectedProducts: []entity.AffectedProduct{{ProductID: productID}},
		IsActive:         true,
	}
	product := &entity.Product{ID: productID, MRP: 100, SaleID: &otherSaleID, IsActive: true}

	m.adminRepo.EXPECT().FindByID(ctx, adminID).Return(activeAdmin(adminID), nil)
	m.saleRepo.EXPECT().FindByID(ctx, sale.ID).Return(sale, nil)
	m.productRepo.EXPECT().FindByID(ctx, productID).Return(product, nil)

	_, err := service.RemoveProductFromSale(ctx, adminID, sale.ID, productID)
	assert.ErrorIs(t, err, domainerrors.ErrModifierMismatch)
	assert.Len(t, sale.AffectedProducts, 1)
}

func TestSaleService_RemoveCategory_TearsDownScopedProducts(t *testing.T) {
	service, m := newSaleService(t)
	ctx := context.Background()
	adminID := uuid.New()
	categoryID := uuid.New()

	start, end := openWindow()
	sale := &entity.Sale{
		ID:         uuid.New(),
		StartDate:  start,
		EndDate:    end,
		Categories: []uuid.UUID{categoryID},
		IsActive:   true,
	}
	saleID := sale.ID
	price := 80.0
	product := &entity.Product{
		ID:          uuid.New(),
		MRP:         100,
		CategoryID:  &categoryID,
		SaleID:      &saleID,
		FinalePrice: &price,
		IsActive:    true,
	}
	sale.AffectedProducts = []entity.AffectedProduct{{ProductID: product.ID, ProductMRP: 100}}

	m.adminRepo.EXPECT().FindByID(ctx, adminID).Return(activeAdmin(adminID), nil)
	m.saleRepo.EXPECT().FindByID(ctx, sale.ID).Return(sale, nil)
	m.productRepo.EXPECT().FindByCategoryAndSale(ctx, categoryID, sale.ID).Return([]*entity.Product{product}, nil)
	m.productRepo.EXPECT().Save(ctx, product).Return(nil)
	m.saleRepo.EXPECT().Save(ctx, sale).Return(nil)

	updated, err := service.RemoveCategoryFromSale(ctx, adminID, sale.ID, categoryID)
	require.NoError(t, err)
	assert.Empty(t, updated.Categories)
	assert.Empty(t, updated.AffectedProducts)
	assert.Nil(t, product.SaleID)
	assert.Nil(t, product.FinalePrice)
}

// The sweep stamps open-window sales onto enrolled products and, once the
// window has closed, clears every stamp back to the no-modifier default.
func TestSaleService_Sweep_AppliesThenExpires(t *testing.T) {
	service, m := newSaleService(t)
	ctx := context.Background()

	now := time.Now().UTC()
	product := &entity.Product{ID: uuid.New(), Name: "Widget", MRP: 100, IsActive: true}
	sale := &entity.Sale{
		ID:                  uuid.New(),
		StartDate:           now.Add(-time.Hour),
		EndDate:             now.Add(time.Hour),
		SaleDiscountApplied: 20,
		AffectedProducts:    []entity.AffectedProduct{{ProductID: product.ID, ProductMRP: 100}},
		IsActive:            true,
	}

	m.saleRepo.EXPECT().FindActive(ctx).Return([]*entity.Sale{sale}, nil)
	m.productRepo.EXPECT().FindByIDs(ctx, []uuid.UUID{product.ID}).Return([]*entity.Product{product}, nil)
	m.productRepo.EXPECT().Save(ctx, product).Return(nil)
	m.saleRepo.EXPECT().Save(ctx, sale).Return(nil)

	report, err := service.Sweep(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Applied)
	require.NotNil(t, product.FinalePrice)
	assert.InDelta(t, 80.0, *product.FinalePrice, 1e-9)

	// Past the window the same sale is torn down exhaustively by stamp.
	after := sale.EndDate.Add(time.Minute)
	m.saleRepo.EXPECT().FindActive(ctx).Return([]*entity.Sale{sale}, nil)
	m.productRepo.EXPECT().ClearSale(ctx, sale.ID).Return(int64(1), nil)
	m.bundleRepo.EXPECT().ClearSale(ctx, sale.ID).Return(int64(0), nil)

	report, err = service.Sweep(ctx, after)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Cleared)
}

func TestSaleService_DeleteSale_ExhaustiveTeardown(t *testing.T) {
	service, m := newSaleService(t)
	ctx := context.Background()
	adminID := uuid.New()

	start, end := openWindow()
	sale := &entity.Sale{
		ID:        uuid.New(),
		StartDate: start,
		EndDate:   end,
		IsActive:  true,
		IsApplied: true,
	}

	m.adminRepo.EXPECT().FindByID(ctx, adminID).Return(activeAdmin(adminID), nil)
	m.saleRepo.EXPECT().FindByID(ctx, sale.ID).Return(sale, nil)
	m.saleRepo.EXPECT().Save(ctx, sale).Return(nil)
	m.productRepo.EXPECT().ClearSale(ctx, sale.ID).Return(int64(4), nil)
	m.bundleRepo.EXPECT().ClearSale(ctx, sale.ID).Return(int64(1), nil)

	err := service.DeleteSale(ctx, adminID, sale.ID)
	require.NoError(t, err)
	assert.False(t, sale.IsActive)
}
