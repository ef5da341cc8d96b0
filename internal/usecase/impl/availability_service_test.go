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
	"github.com/stretchr/testify/require"
)

type availabilityServiceMocks struct {
	productRepo  *mockRepo.MockProductRepository
	bundleRepo   *mockRepo.MockBundleRepository
	cartRepo     *mockRepo.MockCartRepository
	wishlistRepo *mockRepo.MockWishlistRepository
	saleRepo     *mockRepo.MockSaleRepository
	adminRepo    *mockRepo.MockAdminRepository
}

func newAvailabilityService(t *testing.T) (usecase.AvailabilityUsecase, *availabilityServiceMocks) {
	m := &availabilityServiceMocks{
		productRepo:  mockRepo.NewMockProductRepository(t),
		bundleRepo:   mockRepo.NewMockBundleRepository(t),
		cartRepo:     mockRepo.NewMockCartRepository(t),
		wishlistRepo: mockRepo.NewMockWishlistRepository(t),
		saleRepo:     mockRepo.NewMockSaleRepository(t),
		adminRepo:    mockRepo.NewMockAdminRepository(t),
	}
	service := NewAvailabilityService(AvailabilityServiceParams{
		ProductRepo:  m.productRepo,
		BundleRepo:   m.bundleRepo,
		CartRepo:     m.cartRepo,
		WishlistRepo: m.wishlistRepo,
		SaleRepo:     m.saleRepo,
		AdminRepo:    m.adminRepo,
		Logger:       testLogger(),
	})

	return service, m
}

// Blocking a member drops it from the bundle and re-aggregates the bundle MRP
// from the survivors: [P1 100x1, P2 50x2] = 200 becomes 100 without P1.
func TestAvailabilityService_BlockProduct_ReaggregatesBundles(t *testing.T) {
	service, m := newAvailabilityService(t)
	ctx := context.Background()
	adminID := uuid.New()

	p1 := &entity.Product{ID: uuid.New(), MRP: 100, IsActive: true}
	p2 := &entity.Product{ID: uuid.New(), MRP: 50, IsActive: true}
	bundle := &entity.Bundle{
		ID:  uuid.New(),
		MRP: 200,
		Products: []entity.BundleItem{
			{ProductID: p1.ID, Quantity: 1},
			{ProductID: p2.ID, Quantity: 2},
		},
		IsActive: true,
	}

	m.adminRepo.EXPECT().FindByID(ctx, adminID).Return(activeAdmin(adminID), nil)
	m.productRepo.EXPECT().FindByID(ctx, p1.ID).Return(p1, nil)
	m.productRepo.EXPECT().Save(ctx, p1).Return(nil)
	m.bundleRepo.EXPECT().FindByMemberProduct(ctx, p1.ID).Return([]*entity.Bundle{bundle}, nil)
	m.productRepo.EXPECT().FindByIDs(ctx, []uuid.UUID{p2.ID}).Return([]*entity.Product{p2}, nil)
	m.bundleRepo.EXPECT().Save(ctx, bundle).Return(nil)
	m.cartRepo.EXPECT().SetProductAvailability(ctx, p1.ID, true).Return(int64(2), nil)
	m.wishlistRepo.EXPECT().SetProductAvailability(ctx, p1.ID, true).Return(int64(1), nil)
	m.saleRepo.EXPECT().SetAffectedProductAvailability(ctx, p1.ID, true).Return(int64(0), nil)

	blocked, err := service.BlockProduct(ctx, adminID, p1.ID)
	require.NoError(t, err)
	assert.True(t, blocked.IsBlocked)
	assert.True(t, blocked.IsUnavailable)

	require.Len(t, bundle.Products, 1)
	assert.Equal(t, p2.ID, bundle.Products[0].ProductID)
	assert.Equal(t, 100.0, bundle.MRP)
}

func TestAvailabilityService_BlockProduct_AlreadyBlocked(t *testing.T) {
	service, m := newAvailabilityService(t)
	ctx := context.Background()
	adminID := uuid.New()

	product := &entity.Product{ID: uuid.New(), MRP: 100, IsActive: true, IsBlocked: true}

	m.adminRepo.EXPECT().FindByID(ctx, adminID).Return(activeAdmin(adminID), nil)
	m.productRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)

	_, err := service.BlockProduct(ctx, adminID, product.ID)
	assert.ErrorIs(t, err, domainerrors.ErrAlreadyBlocked)
}

// Unblocking flips the flags and patches every denormalized reference back,
// but never re-adds the product to bundles it was dropped from.
func TestAvailabilityService_UnblockProduct_PatchesReferencesOnly(t *testing.T) {
	service, m := newAvailabilityService(t)
	ctx := context.Background()
	adminID := uuid.New()

	product := &entity.Product{ID: uuid.New(), MRP: 100, IsActive: true, IsBlocked: true, IsUnavailable: true}

	m.adminRepo.EXPECT().FindByID(ctx, adminID).Return(activeAdmin(adminID), nil)
	m.productRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)
	m.productRepo.EXPECT().Save(ctx, product).Return(nil)
	m.cartRepo.EXPECT().SetProductAvailability(ctx, product.ID, false).Return(int64(2), nil)
	m.wishlistRepo.EXPECT().SetProductAvailability(ctx, product.ID, false).Return(int64(1), nil)
	m.saleRepo.EXPECT().SetAffectedProductAvailability(ctx, product.ID, false).Return(int64(1), nil)

	unblocked, err := service.UnblockProduct(ctx, adminID, product.ID)
	require.NoError(t, err)
	assert.False(t, unblocked.IsBlocked)
	assert.False(t, unblocked.IsUnavailable)

	m.bundleRepo.AssertNotCalled(t, "Save")
}

func TestAvailabilityService_UnblockProduct_NotBlocked(t *testing.T) {
	service, m := newAvailabilityService(t)
	ctx := context.Background()
	adminID := uuid.New()

	product := &entity.Product{ID: uuid.New(), MRP: 100, IsActive: true}

	m.adminRepo.EXPECT().FindByID(ctx, adminID).Return(activeAdmin(adminID), nil)
	m.productRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)

	_, err := service.UnblockProduct(ctx, adminID, product.ID)
	assert.ErrorIs(t, err, domainerrors.ErrNotBlocked)
}

// Bundle blocking cascades into carts and wishlists only; sale snapshots hold
// product references and must not be touched.
func TestAvailabilityService_BlockBundle_SkipsSaleSnapshots(t *testing.T) {
	service, m := newAvailabilityService(t)
	ctx := context.Background()
	adminID := uuid.New()

	bundle := &entity.Bundle{ID: uuid.New(), MRP: 300, IsActive: true}

	m.adminRepo.EXPECT().FindByID(ctx, adminID).Return(activeAdmin(adminID), nil)
	m.bundleRepo.EXPECT().FindByID(ctx, bundle.ID).Return(bundle, nil)
	m.bundleRepo.EXPECT().Save(ctx, bundle).Return(nil)
	m.cartRepo.EXPECT().SetBundleAvailability(ctx, bundle.ID, true).Return(int64(1), nil)
	m.wishlistRepo.EXPECT().SetBundleAvailability(ctx, bundle.ID, true).Return(int64(0), nil)

	blocked, err := service.BlockBundle(ctx, adminID, bundle.ID)
	require.NoError(t, err)
	assert.True(t, blocked.IsBlocked)

	m.saleRepo.AssertNotCalled(t, "SetAffectedProductAvailability")
}

// A patch failure partway through surfaces as a cascade-partial error and
// leaves the already-made writes in place.
func TestAvailabilityService_BlockProduct_PartialCascade(t *testing.T) {
	service, m := newAvailabilityService(t)
	ctx := context.Background()
	adminID := uuid.New()

	product := &entity.Product{ID: uuid.New(), MRP: 100, IsActive: true}

	m.adminRepo.EXPECT().FindByID(ctx, adminID).Return(activeAdmin(adminID), nil)
	m.productRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)
	m.productRepo.EXPECT().Save(ctx, product).Return(nil)
	m.bundleRepo.EXPECT().FindByMemberProduct(ctx, product.ID).Return(nil, nil)
	m.cartRepo.EXPECT().SetProductAvailability(ctx, product.ID, true).Return(int64(0), nil)
	m.wishlistRepo.EXPECT().SetProductAvailability(ctx, product.ID, true).Return(int64(0), assert.AnError)

	_, err := service.BlockProduct(ctx, adminID, product.ID)
	assert.ErrorIs(t, err, domainerrors.ErrCascadePartial)
	assert.True(t, product.IsBlocked)
}
