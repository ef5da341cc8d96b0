package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"backoffice/internal/domain/entity"
	domainerrors "backoffice/internal/domain/errors"
	mockRepo "backoffice/internal/mocks/repository"
	"backoffice/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func activeAdmin(id uuid.UUID) *entity.Admin {
	return &entity.Admin{ID: id, Email: "admin@example.com", IsActive: true}
}

type discountServiceMocks struct {
	discountRepo *mockRepo.MockDiscountRepository
	productRepo  *mockRepo.MockProductRepository
	bundleRepo   *mockRepo.MockBundleRepository
	adminRepo    *mockRepo.MockAdminRepository
}

func newDiscountService(t *testing.T) (usecase.DiscountUsecase, *discountServiceMocks) {
	m := &discountServiceMocks{
		discountRepo: mockRepo.NewMockDiscountRepository(t),
		productRepo:  mockRepo.NewMockProductRepository(t),
		bundleRepo:   mockRepo.NewMockBundleRepository(t),
		adminRepo:    mockRepo.NewMockAdminRepository(t),
	}
	service := NewDiscountService(DiscountServiceParams{
		DiscountRepo: m.discountRepo,
		ProductRepo:  m.productRepo,
		BundleRepo:   m.bundleRepo,
		AdminRepo:    m.adminRepo,
		Logger:       testLogger(),
	})

	return service, m
}

func openWindow() (time.Time, time.Time) {
	now := time.Now().UTC()

	return now.Add(-time.Hour), now.Add(time.Hour)
}

func TestDiscountService_CreateDiscount_InvalidPercent(t *testing.T) {
	service, m := newDiscountService(t)
	ctx := context.Background()
	adminID := uuid.New()

	m.adminRepo.EXPECT().FindByID(ctx, adminID).Return(activeAdmin(adminID), nil)

	start, end := openWindow()
	_, err := service.CreateDiscount(ctx, adminID, &usecase.CreateDiscountInput{
		AdminDiscount: 150,
		Type:          entity.DiscountTypeMRP,
		StartDate:     start,
		EndDate:       end,
	})
	assert.ErrorIs(t, err, domainerrors.ErrPercentOutOfRange)
}

func TestDiscountService_CreateDiscount_InvalidWindow(t *testing.T) {
	service, m := newDiscountService(t)
	ctx := context.Background()
	adminID := uuid.New()

	m.adminRepo.EXPECT().FindByID(ctx, adminID).Return(activeAdmin(adminID), nil)

	start, end := openWindow()
	_, err := service.CreateDiscount(ctx, adminID, &usecase.CreateDiscountInput{
		AdminDiscount: 10,
		Type:          entity.DiscountTypeMRP,
		StartDate:     end,
		EndDate:       start,
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidDateWindow)
}

func TestDiscountService_CreateDiscount_InactiveAdmin(t *testing.T) {
	service, m := newDiscountService(t)
	ctx := context.Background()
	adminID := uuid.New()

	m.adminRepo.EXPECT().FindByID(ctx, adminID).
		Return(&entity.Admin{ID: adminID, IsActive: false}, nil)

	start, end := openWindow()
	_, err := service.CreateDiscount(ctx, adminID, &usecase.CreateDiscountInput{
		AdminDiscount: 10,
		Type:          entity.DiscountTypeMRP,
		StartDate:     start,
		EndDate:       end,
	})
	assert.ErrorIs(t, err, domainerrors.ErrAdminInactive)
}

// Enrolling the same product twice in one request rejects the whole batch
// and leaves the discount's enrollment set untouched.
func TestDiscountService_ApplyDiscount_DuplicateInRequestRejectsBatch(t *testing.T) {
	service, m := newDiscountService(t)
	ctx := context.Background()
	adminID := uuid.New()
	productID := uuid.New()

	start, end := openWindow()
	discount := &entity.Discount{
		ID:            uuid.New(),
		AdminID:       adminID,
		AdminDiscount: 10,
		Type:          entity.DiscountTypeMRP,
		StartDate:     start,
		EndDate:       end,
		IsActive:      true,
	}

	m.adminRepo.EXPECT().FindByID(ctx, adminID).Return(activeAdmin(adminID), nil)
	m.discountRepo.EXPECT().FindByID(ctx, discount.ID).Return(discount, nil)

	result, err := service.ApplyDiscount(ctx, adminID, discount.ID, []uuid.UUID{productID, productID}, nil)
	assert.ErrorIs(t, err, domainerrors.ErrDuplicateEnrollment)
	assert.Nil(t, result)
	assert.Empty(t, discount.Products)
}

func TestDiscountService_ApplyDiscount_AlreadyEnrolledRejectsBatch(t *testing.T) {
	service, m := newDiscountService(t)
	ctx := context.Background()
	adminID := uuid.New()
	enrolled := uuid.New()

	start, end := openWindow()
	discount := &entity.Discount{
		ID:            uuid.New(),
		AdminID:       adminID,
		AdminDiscount: 10,
		Type:          entity.DiscountTypeMRP,
		StartDate:     start,
		EndDate:       end,
		Products:      []uuid.UUID{enrolled},
		IsActive:      true,
	}

	m.adminRepo.EXPECT().FindByID(ctx, adminID).Return(activeAdmin(adminID), nil)
	m.discountRepo.EXPECT().FindByID(ctx, discount.ID).Return(discount, nil)

	_, err := service.ApplyDiscount(ctx, adminID, discount.ID, []uuid.UUID{enrolled, uuid.New()}, nil)
	assert.ErrorIs(t, err, domainerrors.ErrDuplicateEnrollment)
	assert.Len(t, discount.Products, 1)
}

func TestDiscountService_ApplyDiscount_MissingProductsListed(t *testing.T) {
	service, m := newDiscountService(t)
	ctx := context.Background()
	adminID := uuid.New()
	missingID := uuid.New()

	start, end := openWindow()
	discount := &entity.Discount{
		ID:            uuid.New(),
		AdminID:       adminID,
		AdminDiscount: 10,
		Type:          entity.DiscountTypeMRP,
		StartDate:     start,
		EndDate:       end,
		IsActive:      true,
	}

	m.adminRepo.EXPECT().FindByID(ctx, adminID).Return(activeAdmin(adminID), nil)
	m.discountRepo.EXPECT().FindByID(ctx, discount.ID).Return(discount, nil)
	m.productRepo.EXPECT().FindByIDs(ctx, []uuid.UUID{missingID}).Return(nil, nil)

	_, err := service.ApplyDiscount(ctx, adminID, discount.ID, []uuid.UUID{missingID}, nil)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
	assert.Contains(t, err.Error(), missingID.String())
}

// With an open window the applied price lands on the product: base is the
// seller-discounted price for a sellerDiscounted-type discount, MRP otherwise.
func TestDiscountService_ApplyDiscount_StampsLayeredPrice(t *testing.T) {
	service, m := newDiscountService(t)
	ctx := context.Background()
	adminID := uuid.New()

	start, end := openWindow()
	discount := &entity.Discount{
		ID:            uuid.New(),
		AdminID:       adminID,
		AdminDiscount: 10,
		Type:          entity.DiscountTypeSellerDiscounted,
		StartDate:     start,
		EndDate:       end,
		IsActive:      true,
	}

	sellerPct := 25.0
	sellerPrice := 150.0
	product := &entity.Product{
		ID:                    uuid.New(),
		MRP:                   200,
		SellerDiscountApplied: &sellerPct,
		SellerDiscounted:      &sellerPrice,
		IsActive:              true,
	}

	m.adminRepo.EXPECT().FindByID(ctx, adminID).Return(activeAdmin(adminID), nil)
	m.discountRepo.EXPECT().FindByID(ctx, discount.ID).Return(discount, nil)
	m.productRepo.EXPECT().FindByIDs(ctx, []uuid.UUID{product.ID}).Return([]*entity.Product{product}, nil)
	m.discountRepo.EXPECT().Save(ctx, discount).Return(nil)
	m.productRepo.EXPECT().Save(ctx, product).Return(nil)

	result, err := service.ApplyDiscount(ctx, adminID, discount.ID, []uuid.UUID{product.ID}, nil)
	require.NoError(t, err)
	require.Len(t, result.Products, 1)
	assert.Empty(t, result.Failed)

	require.NotNil(t, product.DiscountID)
	assert.Equal(t, discount.ID, *product.DiscountID)
	require.NotNil(t, product.AdminDiscountedPrice)
	assert.InDelta(t, 135.0, *product.AdminDiscountedPrice, 1e-9)
	assert.True(t, discount.IsApplied)
	assert.Equal(t, []uuid.UUID{product.ID}, discount.Products)
}

func TestDiscountService_ApplyDiscount_LockedAfterApplication(t *testing.T) {
	service, m := newDiscountService(t)
	ctx := context.Background()
	adminID := uuid.New()

	start, end := openWindow()
	discount := &entity.Discount{
		ID:        uuid.New(),
		AdminID:   adminID,
		StartDate: start,
		EndDate:   end,
		IsActive:  true,
		IsApplied: true,
	}

	m.adminRepo.EXPECT().FindByID(ctx, adminID).Return(activeAdmin(adminID), nil)
	m.discountRepo.EXPECT().FindByID(ctx, discount.ID).Return(discount, nil)

	_, err := service.ApplyDiscount(ctx, adminID, discount.ID, []uuid.UUID{uuid.New()}, nil)
	assert.ErrorIs(t, err, domainerrors.ErrModifierLocked)
}

func TestDiscountService_UpdateDiscount_WindowLockedAfterApply(t *testing.T) {
	service, m := newDiscountService(t)
	ctx := context.Background()
	adminID := uuid.New()

	start, end := openWindow()
	discount := &entity.Discount{
		ID:        uuid.New(),
		AdminID:   adminID,
		StartDate: start,
		EndDate:   end,
		IsActive:  true,
		IsApplied: true,
	}

	m.adminRepo.EXPECT().FindByID(ctx, adminID).Return(activeAdmin(adminID), nil)
	m.discountRepo.EXPECT().FindByID(ctx, discount.ID).Return(discount, nil)

	newEnd := end.Add(24 * time.Hour)
	_, err := service.UpdateDiscount(ctx, adminID, discount.ID, &usecase.UpdateDiscountInput{EndDate: &newEnd})
	assert.ErrorIs(t, err, domainerrors.ErrModifierLocked)
}

// Removing a product whose stamp points at a different discount is rejected
// with no state change.
func TestDiscountService_RemoveProduct_StampMismatch(t *testing.T) {
	service, m := newDiscountService(t)
	ctx := context.Background()
	adminID := uuid.New()
	otherDiscountID := uuid.New()

	start, end := openWindow()
	productID := uuid.New()
	discount := &entity.Discount{
		ID:        uuid.New(),
		AdminID:   adminID,
		StartDate: start,
		EndDate:   end,
		Products:  []uuid.UUID{productID},
		IsActive:  true,
	}
	product := &entity.Product{ID: productID, MRP: 100, DiscountID: &otherDiscountID, IsActive: true}

	m.adminRepo.EXPECT().FindByID(ctx, adminID).Return(activeAdmin(adminID), nil)
	m.discountRepo.EXPECT().FindByID(ctx, discount.ID).Return(discount, nil)
	m.productRepo.EXPECT().FindByID(ctx, productID).Return(product, nil)

	_, err := service.RemoveProductFromDiscount(ctx, adminID, discount.ID, productID)
	assert.ErrorIs(t, err, domainerrors.ErrModifierMismatch)
	assert.Equal(t, &otherDiscountID, product.DiscountID)
	assert.Len(t, discount.Products, 1)
}

func TestDiscountService_RemoveProduct_ClearsStampAndEnrollment(t *testing.T) {
	service, m := newDiscountService(t)
	ctx := context.Background()
	adminID := uuid.New()

	start, end := openWindow()
	productID := uuid.New()
	discount := &entity.Discount{
		ID:        uuid.New(),
		AdminID:   adminID,
		StartDate: start,
		EndDate:   end,
		Products:  []uuid.UUID{productID},
		IsActive:  true,
	}
	discountID := discount.ID
	pct := 10.0
	price := 90.0
	product := &entity.Product{
		ID:                   productID,
		MRP:                  100,
		DiscountID:           &discountID,
		AdminDiscountApplied: &pct,
		AdminDiscountedPrice: &price,
		IsActive:             true,
	}

	m.adminRepo.EXPECT().FindByID(ctx, adminID).Return(activeAdmin(adminID), nil)
	m.discountRepo.EXPECT().FindByID(ctx, discount.ID).Return(discount, nil)
	m.productRepo.EXPECT().FindByID(ctx, productID).Return(product, nil)
	m.productRepo.EXPECT().Save(ctx, product).Return(nil)
	m.discountRepo.EXPECT().Save(ctx, discount).Return(nil)

	updated, err := service.RemoveProductFromDiscount(ctx, adminID, discount.ID, productID)
	require.NoError(t, err)
	assert.Nil(t, updated.DiscountID)
	assert.Nil(t, updated.AdminDiscountApplied)
	assert.Nil(t, updated.AdminDiscountedPrice)
	assert.Empty(t, discount.Products)
}

// Soft-deleting a discount tears down every stamped entity, including ones
// not named anywhere in the request.
func TestDiscountService_DeleteDiscount_ExhaustiveTeardown(t *testing.T) {
	service, m := newDiscountService(t)
	ctx := context.Background()
	adminID := uuid.New()

	start, end := openWindow()
	discount := &entity.Discount{
		ID:        uuid.New(),
		AdminID:   adminID,
		StartDate: start,
		EndDate:   end,
		IsActive:  true,
		IsApplied: true,
	}

	m.adminRepo.EXPECT().FindByID(ctx, adminID).Return(activeAdmin(adminID), nil)
	m.discountRepo.EXPECT().FindByID(ctx, discount.ID).Return(discount, nil)
	m.discountRepo.EXPECT().Save(ctx, discount).Return(nil)
	m.productRepo.EXPECT().ClearDiscount(ctx, discount.ID).Return(int64(3), nil)
	m.bundleRepo.EXPECT().ClearDiscount(ctx, discount.ID).Return(int64(2), nil)

	err := service.DeleteDiscount(ctx, adminID, discount.ID)
	require.NoError(t, err)
	assert.False(t, discount.IsActive)
}

func TestDiscountService_Sweep_ExpiredDiscountTornDown(t *testing.T) {
	service, m := newDiscountService(t)
	ctx := context.Background()

	now := time.Now().UTC()
	expired := &entity.Discount{
		ID:        uuid.New(),
		StartDate: now.Add(-48 * time.Hour),
		EndDate:   now.Add(-24 * time.Hour),
		Products:  []uuid.UUID{uuid.New()},
		IsActive:  true,
		IsApplied: true,
	}

	m.discountRepo.EXPECT().FindActive(ctx).Return([]*entity.Discount{expired}, nil)
	m.productRepo.EXPECT().ClearDiscount(ctx, expired.ID).Return(int64(2), nil)
	m.bundleRepo.EXPECT().ClearDiscount(ctx, expired.ID).Return(int64(1), nil)

	report, err := service.Sweep(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, 3, report.Cleared)
	assert.Empty(t, report.Failures)
}

func TestDiscountService_Sweep_ActiveDiscountStampsEnrolled(t *testing.T) {
	service, m := newDiscountService(t)
	ctx := context.Background()

	now := time.Now().UTC()
	product := &entity.Product{ID: uuid.New(), MRP: 100, IsActive: true}
	discount := &entity.Discount{
		ID:            uuid.New(),
		AdminDiscount: 20,
		Type:          entity.DiscountTypeMRP,
		StartDate:     now.Add(-time.Hour),
		EndDate:       now.Add(time.Hour),
		Products:      []uuid.UUID{product.ID},
		IsActive:      true,
		IsApplied:     true,
	}

	m.discountRepo.EXPECT().FindActive(ctx).Return([]*entity.Discount{discount}, nil)
	m.productRepo.EXPECT().FindByIDs(ctx, discount.Products).Return([]*entity.Product{product}, nil)
	m.productRepo.EXPECT().Save(ctx, product).Return(nil)

	report, err := service.Sweep(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Applied)
	require.NotNil(t, product.AdminDiscountedPrice)
	assert.InDelta(t, 80.0, *product.AdminDiscountedPrice, 1e-9)
}

// A sweep over an already-stamped set writes nothing: re-running teardown
// and application is safe.
func TestDiscountService_Sweep_Idempotent(t *testing.T) {
	service, m := newDiscountService(t)
	ctx := context.Background()

	now := time.Now().UTC()
	discount := &entity.Discount{
		ID:            uuid.New(),
		AdminDiscount: 20,
		Type:          entity.DiscountTypeMRP,
		StartDate:     now.Add(-time.Hour),
		EndDate:       now.Add(time.Hour),
		IsActive:      true,
		IsApplied:     true,
	}
	discountID := discount.ID
	pct := 20.0
	price := 80.0
	product := &entity.Product{
		ID:                   uuid.New(),
		MRP:                  100,
		DiscountID:           &discountID,
		AdminDiscountApplied: &pct,
		AdminDiscountedPrice: &price,
		IsActive:             true,
	}
	discount.Products = []uuid.UUID{product.ID}

	m.discountRepo.EXPECT().FindActive(ctx).Return([]*entity.Discount{discount}, nil)
	m.productRepo.EXPECT().FindByIDs(ctx, discount.Products).Return([]*entity.Product{product}, nil)

	report, err := service.Sweep(ctx, now)
	require.NoError(t, err)
	assert.Zero(t, report.Applied)
	m.productRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}
