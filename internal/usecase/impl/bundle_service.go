package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "backoffice/internal/delivery/context"
	"backoffice/internal/domain/entity"
	domainerrors "backoffice/internal/domain/errors"
	"backoffice/internal/domain/pricing"
	"backoffice/internal/domain/repository"
	"backoffice/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// bundleService implements the BundleUsecase interface and owns the price
// aggregation over member products.
type bundleService struct {
	bundleRepo  repository.BundleRepository
	productRepo repository.ProductRepository
	adminRepo   repository.AdminRepository
	logger      *slog.Logger
}

// BundleServiceParams holds dependencies for bundleService, injected by Fx.
type BundleServiceParams struct {
	fx.In

	BundleRepo  repository.BundleRepository
	ProductRepo repository.ProductRepository
	AdminRepo   repository.AdminRepository
	Logger      *slog.Logger
}

// NewBundleService is the constructor for bundleService.
func NewBundleService(params BundleServiceParams) usecase.BundleUsecase {
	return &bundleService{
		bundleRepo:  params.BundleRepo,
		productRepo: params.ProductRepo,
		adminRepo:   params.AdminRepo,
		logger:      params.Logger,
	}
}

func (srv *bundleService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// recomputePrices routes every membership or seller-discount change through
// the shared aggregator.
func (srv *bundleService) recomputePrices(ctx context.Context, bundle *entity.Bundle) error {
	return recomputeBundlePrices(ctx, srv.productRepo, bundle)
}

// CreateBundle creates a bundle from active member products.
func (srv *bundleService) CreateBundle(ctx context.Context, adminID uuid.UUID, input *usecase.CreateBundleInput) (*entity.Bundle, error) {
	if err := requireActiveAdmin(ctx, srv.adminRepo, adminID); err != nil {
		return nil, err
	}

	if len(input.Products) == 0 {
		return nil, errors.Wrap(domainerrors.ErrBundleEmpty, "bundle needs at least one member")
	}

	ids := make([]uuid.UUID, 0, len(input.Products))
	seen := make(map[uuid.UUID]struct{}, len(input.Products))
	for _, item := range input.Products {
		if _, dup := seen[item.ProductID]; dup {
			return nil, errors.Wrapf(domainerrors.ErrDuplicateEnrollment, "duplicate member %s", item.ProductID)
		}
		seen[item.ProductID] = struct{}{}
		ids = append(ids, item.ProductID)
	}

	members, err := srv.productRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load member products")
	}

	if missing := missingIDs(ids, productIDSet(members)); len(missing) > 0 {
		return nil, errors.Wrapf(domainerrors.ErrProductNotFound, "missing products: %v", missing)
	}

	for _, p := range members {
		if !p.IsActive || p.IsBlocked {
			return nil, errors.Wrapf(domainerrors.ErrTargetsUnavailable, "product %s is inactive or blocked", p.ID)
		}
	}

	items := make([]entity.BundleItem, 0, len(input.Products))
	for _, item := range input.Products {
		items = append(items, entity.BundleItem{ProductID: item.ProductID, Quantity: item.Quantity})
	}

	bundle := &entity.Bundle{
		ID:             uuid.New(),
		AdminID:        adminID,
		Name:           input.Name,
		Description:    input.Description,
		Stock:          input.Stock,
		Products:       items,
		SellerDiscount: input.SellerDiscount,
		IsActive:       true,
		CreatedAt:      time.Now().UTC(),
		UpdatedAt:      time.Now().UTC(),
	}

	if err := srv.recomputePrices(ctx, bundle); err != nil {
		return nil, err
	}

	if err := srv.bundleRepo.CreateBundle(ctx, bundle); err != nil {
		return nil, errors.Wrap(err, "failed to create bundle")
	}

	srv.log(ctx).Info("Bundle created", "bundleID", bundle.ID, "members", len(bundle.Products))

	return bundle, nil
}

// GetBundle retrieves a bundle by ID.
func (srv *bundleService) GetBundle(ctx context.Context, bundleID uuid.UUID) (*entity.Bundle, error) {
	bundle, err := srv.bundleRepo.FindByID(ctx, bundleID)
	if err != nil {
		if errors.Is(err, repository.ErrBundleNotFound) {
			return nil, errors.Wrap(domainerrors.ErrBundleNotFound, "bundle not found")
		}

		return nil, errors.Wrap(err, "failed to find bundle")
	}

	if !bundle.IsActive {
		return nil, errors.Wrap(domainerrors.ErrBundleGone, "bundle is soft deleted")
	}

	return bundle, nil
}

// ListBundles retrieves bundles with search and pagination.
func (srv *bundleService) ListBundles(ctx context.Context, opts repository.ListOptions) ([]*entity.Bundle, int64, error) {
	bundles, total, err := srv.bundleRepo.List(ctx, opts)
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to list bundles")
	}

	return bundles, total, nil
}

// UpdateBundle updates a bundle and recomputes its price stack.
func (srv *bundleService) UpdateBundle(ctx context.Context, adminID, bundleID uuid.UUID, input *usecase.UpdateBundleInput) (*entity.Bundle, error) {
	if err := requireActiveAdmin(ctx, srv.adminRepo, adminID); err != nil {
		return nil, err
	}

	bundle, err := srv.GetBundle(ctx, bundleID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		bundle.Name = *input.Name
	}
	if input.Description != nil {
		bundle.Description = *input.Description
	}
	if input.Stock != nil {
		bundle.Stock = *input.Stock
	}
	if input.SellerDiscount != nil {
		if err := pricing.ValidatePercent(*input.SellerDiscount); err != nil {
			return nil, errors.Wrap(domainerrors.ErrPercentOutOfRange, "invalid seller discount")
		}
		bundle.SellerDiscount = input.SellerDiscount
	}

	membershipChanged := false
	if input.Products != nil {
		ids := make([]uuid.UUID, 0, len(*input.Products))
		items := make([]entity.BundleItem, 0, len(*input.Products))
		seen := make(map[uuid.UUID]struct{}, len(*input.Products))
		for _, item := range *input.Products {
			if _, dup := seen[item.ProductID]; dup {
				return nil, errors.Wrapf(domainerrors.ErrDuplicateEnrollment, "duplicate member %s", item.ProductID)
			}
			seen[item.ProductID] = struct{}{}
			ids = append(ids, item.ProductID)
			items = append(items, entity.BundleItem{ProductID: item.ProductID, Quantity: item.Quantity})
		}

		members, err := srv.productRepo.FindByIDs(ctx, ids)
		if err != nil {
			return nil, errors.Wrap(err, "failed to load member products")
		}
		if missing := missingIDs(ids, productIDSet(members)); len(missing) > 0 {
			return nil, errors.Wrapf(domainerrors.ErrProductNotFound, "missing products: %v", missing)
		}
		for _, p := range members {
			if !p.IsActive || p.IsBlocked {
				return nil, errors.Wrapf(domainerrors.ErrTargetsUnavailable, "product %s is inactive or blocked", p.ID)
			}
		}

		bundle.Products = items
		membershipChanged = true
	}

	if membershipChanged || input.SellerDiscount != nil {
		if err := srv.recomputePrices(ctx, bundle); err != nil {
			return nil, err
		}
	}

	bundle.UpdatedAt = time.Now().UTC()
	if err := srv.bundleRepo.Save(ctx, bundle); err != nil {
		return nil, errors.Wrap(err, "failed to save bundle")
	}

	return bundle, nil
}

// DeleteBundle soft-deletes a bundle.
func (srv *bundleService) DeleteBundle(ctx context.Context, adminID, bundleID uuid.UUID) error {
	if err := requireActiveAdmin(ctx, srv.adminRepo, adminID); err != nil {
		return err
	}

	bundle, err := srv.GetBundle(ctx, bundleID)
	if err != nil {
		return err
	}

	bundle.IsActive = false
	bundle.UpdatedAt = time.Now().UTC()
	if err := srv.bundleRepo.Save(ctx, bundle); err != nil {
		return errors.Wrap(err, "failed to save bundle")
	}

	srv.log(ctx).Info("Bundle soft deleted", "bundleID", bundleID)

	return nil
}

// productIDSet collects the IDs present in a product slice.
func productIDSet(products []*entity.Product) map[uuid.UUID]struct{} {
	set := make(map[uuid.UUID]struct{}, len(products))
	for _, p := range products {
		set[p.ID] = struct{}{}
	}

	return set
}

// missingIDs returns the requested IDs absent from the found set, preserving
// request order so failure lists are stable.
func missingIDs(requested []uuid.UUID, found map[uuid.UUID]struct{}) []uuid.UUID {
	var missing []uuid.UUID
	for _, id := range requested {
		if _, ok := found[id]; !ok {
			missing = append(missing, id)
		}
	}

	return missing
}
