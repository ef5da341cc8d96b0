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

type bundleServiceMocks struct {
	bundleRepo  *mockRepo.MockBundleRepository
	productRepo *mockRepo.MockProductRepository
	adminRepo   *mockRepo.MockAdminRepository
}

func newBundleService(t *testing.T) (usecase.BundleUsecase, *bundleServiceMocks) {
	m := &bundleServiceMocks{
		bundleRepo:  mockRepo.NewMockBundleRepository(t),
		productRepo: mockRepo.NewMockProductRepository(t),
		adminRepo:   mockRepo.NewMockAdminRepository(t),
	}
	service := NewBundleService(BundleServiceParams{
		BundleRepo:  m.bundleRepo,
		ProductRepo: m.productRepo,
		AdminRepo:   m.adminRepo,
		Logger:      testLogger(),
	})

	return service, m
}

func TestBundleService_CreateBundle_AggregatesMemberMRPs(t *testing.T) {
	service, m := newBundleService(t)
	ctx := context.Background()
	adminID := uuid.New()

	p1 := &entity.Product{ID: uuid.New(), MRP: 100, IsActive: true}
	p2 := &entity.Product{ID: uuid.New(), MRP: 50, IsActive: true}

	m.adminRepo.EXPECT().FindByID(ctx, adminID).Return(activeAdmin(adminID), nil)
	m.productRepo.EXPECT().FindByIDs(ctx, []uuid.UUID{p1.ID, p2.ID}).Return([]*entity.Product{p1, p2}, nil)
	m.bundleRepo.EXPECT().CreateBundle(ctx, mock.AnythingOfType("*entity.Bundle")).Return(nil)

	sellerDiscount := 10.0
	bundle, err := service.CreateBundle(ctx, adminID, &usecase.CreateBundleInput{
		Name:  "Starter kit",
		Stock: 5,
		Products: []usecase.BundleItemInput{
			{ProductID: p1.ID, Quantity: 1},
			{ProductID: p2.ID, Quantity: 2},
		},
		SellerDiscount: &sellerDiscount,
	})
	require.NoError(t, err)

	assert.Equal(t, 200.0, bundle.MRP)
	require.NotNil(t, bundle.SellerDiscounted)
	assert.InDelta(t, 180.0, *bundle.SellerDiscounted, 1e-9)
	assert.True(t, bundle.IsActive)
}

func TestBundleService_CreateBundle_MissingMemberRejected(t *testing.T) {
	service, m := newBundleService(t)
	ctx := context.Background()
	adminID := uuid.New()

	p1 := &entity.Product{ID: uuid.New(), MRP: 100, IsActive: true}
	missing := uuid.New()

	m.adminRepo.EXPECT().FindByID(ctx, adminID).Return(activeAdmin(adminID), nil)
	m.productRepo.EXPECT().FindByIDs(ctx, []uuid.UUID{p1.ID, missing}).Return([]*entity.Product{p1}, nil)

	_, err := service.CreateBundle(ctx, adminID, &usecase.CreateBundleInput{
		Name: "Broken kit",
		Products: []usecase.BundleItemInput{
			{ProductID: p1.ID, Quantity: 1},
			{ProductID: missing, Quantity: 1},
		},
	})
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestBundleService_CreateBundle_BlockedMemberRejected(t *testing.T) {
	service, m := newBundleService(t)
	ctx := context.Background()
	adminID := uuid.New()

	blocked := &entity.Product{ID: uuid.New(), MRP: 100, IsActive: true, IsBlocked: true}

	m.adminRepo.EXPECT().FindByID(ctx, adminID).Return(activeAdmin(adminID), nil)
	m.productRepo.EXPECT().FindByIDs(ctx, []uuid.UUID{blocked.ID}).Return([]*entity.Product{blocked}, nil)

	_, err := service.CreateBundle(ctx, adminID, &usecase.CreateBundleInput{
		Name:     "Blocked kit",
		Products: []usecase.BundleItemInput{{ProductID: blocked.ID, Quantity: 1}},
	})
	assert.ErrorIs(t, err, domainerrors.ErrTargetsUnavailable)
}

func TestBundleService_CreateBundle_EmptyRejected(t *testing.T) {
	service, m := newBundleService(t)
	ctx := context.Background()
	adminID := uuid.New()

	m.adminRepo.EXPECT().FindByID(ctx, adminID).Return(activeAdmin(adminID), nil)

	_, err := service.CreateBundle(ctx, adminID, &usecase.CreateBundleInput{Name: "Empty"})
	assert.ErrorIs(t, err, domainerrors.ErrBundleEmpty)
}

// Replacing the membership re-aggregates the MRP and re-layers the discount
// stack: the admin discount is recomputed from the new seller-discounted base
// instead of staying pinned to the old one.
func TestBundleService_UpdateBundle_RelayersDiscountStack(t *testing.T) {
	service, m := newBundleService(t)
	ctx := context.Background()
	adminID := uuid.New()

	p1 := &entity.Product{ID: uuid.New(), MRP: 100, IsActive: true}
	p2 := &entity.Product{ID: uuid.New(), MRP: 80, IsActive: true}

	sellerDiscount := 10.0
	staleSellerPrice := 90.0
	adminPct := 20.0
	stalePrice := 72.0
	discountID := uuid.New()
	bundle := &entity.Bundle{
		ID:                   uuid.New(),
		MRP:                  100,
		Products:             []entity.BundleItem{{ProductID: p1.ID, Quantity: 1}},
		SellerDiscount:       &sellerDiscount,
		SellerDiscounted:     &staleSellerPrice,
		DiscountID:           &discountID,
		AdminDiscountApplied: &adminPct,
		AdminDiscountedPrice: &stalePrice,
		IsActive:             true,
	}

	m.adminRepo.EXPECT().FindByID(ctx, adminID).Return(activeAdmin(adminID), nil)
	m.bundleRepo.EXPECT().FindByID(ctx, bundle.ID).Return(bundle, nil)
	m.productRepo.EXPECT().FindByIDs(ctx, []uuid.UUID{p1.ID, p2.ID}).Return([]*entity.Product{p1, p2}, nil)
	m.bundleRepo.EXPECT().Save(ctx, bundle).Return(nil)

	newMembers := []usecase.BundleItemInput{
		{ProductID: p1.ID, Quantity: 1},
		{ProductID: p2.ID, Quantity: 1},
	}
	updated, err := service.UpdateBundle(ctx, adminID, bundle.ID, &usecase.UpdateBundleInput{Products: &newMembers})
	require.NoError(t, err)

	assert.Equal(t, 180.0, updated.MRP)
	require.NotNil(t, updated.SellerDiscounted)
	assert.InDelta(t, 162.0, *updated.SellerDiscounted, 1e-9)
	require.NotNil(t, updated.AdminDiscountedPrice)
	assert.InDelta(t, 129.6, *updated.AdminDiscountedPrice, 1e-9)
}

func TestBundleService_GetBundle_Gone(t *testing.T) {
	service, m := newBundleService(t)
	ctx := context.Background()

	bundle := &entity.Bundle{ID: uuid.New(), IsActive: false}
	m.bundleRepo.EXPECT().FindByID(ctx, bundle.ID).Return(bundle, nil)

	_, err := service.GetBundle(ctx, bundle.ID)
	assert.ErrorIs(t, err, domainerrors.ErrBundleGone)
}

func TestBundleService_DeleteBundle_SoftDelete(t *testing.T) {
	service, m := newBundleService(t)
	ctx := context.Background()
	adminID := uuid.New()

	bundle := &entity.Bundle{ID: uuid.New(), IsActive: true}

	m.adminRepo.EXPECT().FindByID(ctx, adminID).Return(activeAdmin(adminID), nil)
	m.bundleRepo.EXPECT().FindByID(ctx, bundle.ID).Return(bundle, nil)
	m.bundleRepo.EXPECT().Save(ctx, bundle).Return(nil)

	err := service.DeleteBundle(ctx, adminID, bundle.ID)
	require.NoError(t, err)
	assert.False(t, bundle.IsActive)
}
