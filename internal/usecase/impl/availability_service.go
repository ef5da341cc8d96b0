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

// availabilityService implements the AvailabilityUsecase interface. The
// cascades are non-transactional: a failure partway leaves the writes already
// made in place, surfaces a cascade-partial error and relies on the
// idempotent patch routines (and the sweep) to finish the job on retry.
type availabilityService struct {
	productRepo  repository.ProductRepository
	bundleRepo   repository.BundleRepository
	cartRepo     repository.CartRepository
	wishlistRepo repository.WishlistRepository
	saleRepo     repository.SaleRepository
	adminRepo    repository.AdminRepository
	logger       *slog.Logger
}

// AvailabilityServiceParams holds dependencies for availabilityService, injected by Fx.
type AvailabilityServiceParams struct {
	fx.In

	ProductRepo  repository.ProductRepository
	BundleRepo   repository.BundleRepository
	CartRepo     repository.CartRepository
	WishlistRepo repository.WishlistRepository
	SaleRepo     repository.SaleRepository
	AdminRepo    repository.AdminRepository
	Logger       *slog.Logger
}

// NewAvailabilityService is the constructor for availabilityService.
func NewAvailabilityService(params AvailabilityServiceParams) usecase.AvailabilityUsecase {
	return &availabilityService{
		productRepo:  params.ProductRepo,
		bundleRepo:   params.BundleRepo,
		cartRepo:     params.CartRepo,
		wishlistRepo: params.WishlistRepo,
		saleRepo:     params.SaleRepo,
		adminRepo:    params.AdminRepo,
		logger:       params.Logger,
	}
}

func (srv *availabilityService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// BlockProduct blocks a product and cascades the unavailability into every
// collection that denormalizes a reference to it: bundle member lists (with
// re-aggregation), cart items, wishlist items and sale snapshots.
func (srv *availabilityService) BlockProduct(ctx context.Context, adminID, productID uuid.UUID) (*entity.Product, error) {
	if err := requireActiveAdmin(ctx, srv.adminRepo, adminID); err != nil {
		return nil, err
	}

	product, err := srv.productRepo.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, errors.Wrap(domainerrors.ErrProductNotFound, "product not found")
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	if !product.IsActive {
		return nil, errors.Wrap(domainerrors.ErrProductGone, "product is soft deleted")
	}
	if product.IsBlocked {
		return nil, errors.Wrap(domainerrors.ErrAlreadyBlocked, "product already blocked")
	}

	product.IsBlocked = true
	product.IsUnavailable = true
	product.UpdatedAt = time.Now().UTC()
	if err := srv.productRepo.Save(ctx, product); err != nil {
		return nil, errors.Wrap(err, "failed to save product")
	}

	// Membership drop is permanent: unblocking never re-adds the product.
	bundles, err := srv.bundleRepo.FindByMemberProduct(ctx, productID)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrCascadePartial, "failed to find bundles containing product")
	}

	for _, bundle := range bundles {
		if !bundle.RemoveProduct(productID) {
			continue
		}
		if err := recomputeBundlePrices(ctx, srv.productRepo, bundle); err != nil {
			return nil, errors.Wrapf(domainerrors.ErrCascadePartial, "failed to re-aggregate bundle %s", bundle.ID)
		}
		bundle.UpdatedAt = time.Now().UTC()
		if err := srv.bundleRepo.Save(ctx, bundle); err != nil {
			return nil, errors.Wrapf(domainerrors.ErrCascadePartial, "failed to save bundle %s", bundle.ID)
		}
	}

	if err := srv.patchProductReferences(ctx, productID, true); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Product blocked",
		"productID", productID,
		"bundlesTouched", len(bundles),
	)

	return product, nil
}

// UnblockProduct is the exact inverse of BlockProduct on the flags and the
// three denormalized collections. Bundle membership is not restored;
// re-insertion is a separate explicit bundle update.
func (srv *availabilityService) UnblockProduct(ctx context.Context, adminID, productID uuid.UUID) (*entity.Product, error) {
	if err := requireActiveAdmin(ctx, srv.adminRepo, adminID); err != nil {
		return nil, err
	}

	product, err := srv.productRepo.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, errors.Wrap(domainerrors.ErrProductNotFound, "product not found")
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	if !product.IsActive {
		return nil, errors.Wrap(domainerrors.ErrProductGone, "product is soft deleted")
	}
	if !product.IsBlocked {
		return nil, errors.Wrap(domainerrors.ErrNotBlocked, "product is not blocked")
	}

	product.IsBlocked = false
	product.IsUnavailable = false
	product.UpdatedAt = time.Now().UTC()
	if err := srv.productRepo.Save(ctx, product); err != nil {
		return nil, errors.Wrap(err, "failed to save product")
	}

	if err := srv.patchProductReferences(ctx, productID, false); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Product unblocked", "productID", productID)

	return product, nil
}

// patchProductReferences flips the denormalized isUnavailable flag on every
// cart item, wishlist item and sale snapshot referencing the product. Each
// patch is a scan by embedded reference and is idempotent.
func (srv *availabilityService) patchProductReferences(ctx context.Context, productID uuid.UUID, unavailable bool) error {
	if _, err := srv.cartRepo.SetProductAvailability(ctx, productID, unavailable); err != nil {
		return errors.Wrap(domainerrors.ErrCascadePartial, "failed to patch cart items")
	}
	if _, err := srv.wishlistRepo.SetProductAvailability(ctx, productID, unavailable); err != nil {
		return errors.Wrap(domainerrors.ErrCascadePartial, "failed to patch wishlist items")
	}
	if _, err := srv.saleRepo.SetAffectedProductAvailability(ctx, productID, unavailable); err != nil {
		return errors.Wrap(domainerrors.ErrCascadePartial, "failed to patch sale snapshots")
	}

	return nil
}

// BlockBundle blocks a bundle, cascading only into carts and wishlists.
// Bundles do not appear inside sale affected-product snapshots.
func (srv *availabilityService) BlockBundle(ctx context.Context, adminID, bundleID uuid.UUID) (*entity.Bundle, error) {
	if err := requireActiveAdmin(ctx, srv.adminRepo, adminID); err != nil {
		return nil, err
	}

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
	if bundle.IsBlocked {
		return nil, errors.Wrap(domainerrors.ErrAlreadyBlocked, "bundle already blocked")
	}

	bundle.IsBlocked = true
	bundle.IsUnavailable = true
	bundle.UpdatedAt = time.Now().UTC()
	if err := srv.bundleRepo.Save(ctx, bundle); err != nil {
		return nil, errors.Wrap(err, "failed to save bundle")
	}

	if err := srv.patchBundleReferences(ctx, bundleID, true); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Bundle blocked", "bundleID", bundleID)

	return bundle, nil
}

// UnblockBundle unblocks a bundle and resets the denormalized flags.
func (srv *availabilityService) UnblockBundle(ctx context.Context, adminID, bundleID uuid.UUID) (*entity.Bundle, error) {
	if err := requireActiveAdmin(ctx, srv.adminRepo, adminID); err != nil {
		return nil, err
	}

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
	if !bundle.IsBlocked {
		return nil, errors.Wrap(domainerrors.ErrNotBlocked, "bundle is not blocked")
	}

	bundle.IsBlocked = false
	bundle.IsUnavailable = false
	bundle.UpdatedAt = time.Now().UTC()
	if err := srv.bundleRepo.Save(ctx, bundle); err != nil {
		return nil, errors.Wrap(err, "failed to save bundle")
	}

	if err := srv.patchBundleReferences(ctx, bundleID, false); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Bundle unblocked", "bundleID", bundleID)

	return bundle, nil
}

func (srv *availabilityService) patchBundleReferences(ctx context.Context, bundleID uuid.UUID, unavailable bool) error {
	if _, err := srv.cartRepo.SetBundleAvailability(ctx, bundleID, unavailable); err != nil {
		return errors.Wrap(domainerrors.ErrCascadePartial, "failed to patch cart items")
	}
	if _, err := srv.wishlistRepo.SetBundleAvailability(ctx, bundleID, unavailable); err != nil {
		return errors.Wrap(domainerrors.ErrCascadePartial, "failed to patch wishlist items")
	}

	return nil
}
