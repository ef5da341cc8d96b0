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

// discountService implements the DiscountUsecase interface: the lifecycle of
// admin discount modifiers from enrollment through application to teardown.
//
// Enrollment is atomic (fail-fast, whole batch rejected on any offending id);
// application is best-effort per entity (a computation failure aborts only
// that entity's write and lands in the failure list).
type discountService struct {
	discountRepo repository.DiscountRepository
	productRepo  repository.ProductRepository
	bundleRepo   repository.BundleRepository
	adminRepo    repository.AdminRepository
	logger       *slog.Logger
}

// DiscountServiceParams holds dependencies for discountService, injected by Fx.
type DiscountServiceParams struct {
	fx.In

	DiscountRepo repository.DiscountRepository
	ProductRepo  repository.ProductRepository
	BundleRepo   repository.BundleRepository
	AdminRepo    repository.AdminRepository
	Logger       *slog.Logger
}

// NewDiscountService is the constructor for discountService.
func NewDiscountService(params DiscountServiceParams) usecase.DiscountUsecase {
	return &discountService{
		discountRepo: params.DiscountRepo,
		productRepo:  params.ProductRepo,
		bundleRepo:   params.BundleRepo,
		adminRepo:    params.AdminRepo,
		logger:       params.Logger,
	}
}

func (srv *discountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateDiscount creates a new discount modifier with an empty enrollment set.
func (srv *discountService) CreateDiscount(ctx context.Context, adminID uuid.UUID, input *usecase.CreateDiscountInput) (*entity.Discount, error) {
	if err := requireActiveAdmin(ctx, srv.adminRepo, adminID); err != nil {
		return nil, err
	}

	if err := pricing.ValidatePercent(input.AdminDiscount); err != nil {
		return nil, errors.Wrap(domainerrors.ErrPercentOutOfRange, "invalid discount percentage")
	}
	if input.Type != entity.DiscountTypeMRP && input.Type != entity.DiscountTypeSellerDiscounted {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "invalid discount type")
	}
	if !input.EndDate.After(input.StartDate) {
		return nil, errors.Wrap(domainerrors.ErrInvalidDateWindow, "end date must be after start date")
	}

	discount := &entity.Discount{
		ID:            uuid.New(),
		AdminID:       adminID,
		AdminDiscount: input.AdminDiscount,
		Type:          input.Type,
		Description:   input.Description,
		StartDate:     input.StartDate.UTC(),
		EndDate:       input.EndDate.UTC(),
		IsActive:      true,
		CreatedAt:     time.Now().UTC(),
		UpdatedAt:     time.Now().UTC(),
	}

	if err := srv.discountRepo.CreateDiscount(ctx, discount); err != nil {
		return nil, errors.Wrap(err, "failed to create discount")
	}

	return discount, nil
}

// GetDiscount retrieves a discount by ID.
func (srv *discountService) GetDiscount(ctx context.Context, discountID uuid.UUID) (*entity.Discount, error) {
	discount, err := srv.discountRepo.FindByID(ctx, discountID)
	if err != nil {
		if errors.Is(err, repository.ErrDiscountNotFound) {
			return nil, errors.Wrap(domainerrors.ErrDiscountNotFound, "discount not found")
		}

		return nil, errors.Wrap(err, "failed to find discount")
	}

	if !discount.IsActive {
		return nil, errors.Wrap(domainerrors.ErrDiscountGone, "discount is soft deleted")
	}

	return discount, nil
}

// ListDiscounts retrieves discounts with search and pagination.
func (srv *discountService) ListDiscounts(ctx context.Context, opts repository.ListOptions) ([]*entity.Discount, int64, error) {
	discounts, total, err := srv.discountRepo.List(ctx, opts)
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to list discounts")
	}

	return discounts, total, nil
}

// UpdateDiscount updates a discount. Editing the window after the discount
// has been applied is rejected; editing the percentage after application
// recomputes and rewrites the derived price on every enrolled entity.
func (srv *discountService) UpdateDiscount(ctx context.Context, adminID, discountID uuid.UUID, input *usecase.UpdateDiscountInput) (*entity.Discount, error) {
	if err := requireActiveAdmin(ctx, srv.adminRepo, adminID); err != nil {
		return nil, err
	}

	discount, err := srv.GetDiscount(ctx, discountID)
	if err != nil {
		return nil, err
	}

	if (input.StartDate != nil || input.EndDate != nil) && discount.IsApplied {
		return nil, errors.Wrap(domainerrors.ErrModifierLocked, "window locked after application")
	}

	if input.StartDate != nil {
		discount.StartDate = input.StartDate.UTC()
	}
	if input.EndDate != nil {
		discount.EndDate = input.EndDate.UTC()
	}
	if !discount.EndDate.After(discount.StartDate) {
		return nil, errors.Wrap(domainerrors.ErrInvalidDateWindow, "end date must be after start date")
	}
	if input.Description != nil {
		discount.Description = *input.Description
	}

	percentChanged := false
	if input.AdminDiscount != nil {
		if err := pricing.ValidatePercent(*input.AdminDiscount); err != nil {
			return nil, errors.Wrap(domainerrors.ErrPercentOutOfRange, "invalid discount percentage")
		}
		percentChanged = discount.AdminDiscount != *input.AdminDiscount
		discount.AdminDiscount = *input.AdminDiscount
	}

	discount.UpdatedAt = time.Now().UTC()
	if err := srv.discountRepo.Save(ctx, discount); err != nil {
		return nil, errors.Wrap(err, "failed to save discount")
	}

	if discount.IsApplied && percentChanged {
		srv.restamp(ctx, discount)
	}

	return discount, nil
}

// restamp rewrites the derived price on every entity currently stamped with
// the discount. Failures abort only the affected entity and are logged for
// manual reconciliation; nothing is rolled back.
func (srv *discountService) restamp(ctx context.Context, discount *entity.Discount) {
	products, err := srv.productRepo.FindByDiscount(ctx, discount.ID)
	if err != nil {
		srv.log(ctx).Error("Failed to load stamped products for restamp", "discountID", discount.ID, "error", err)
	}
	for _, product := range products {
		if err := srv.stampProduct(ctx, discount, product); err != nil {
			srv.log(ctx).Error("Failed to restamp product", "productID", product.ID, "error", err)
		}
	}

	bundles, err := srv.bundleRepo.FindByDiscount(ctx, discount.ID)
	if err != nil {
		srv.log(ctx).Error("Failed to load stamped bundles for restamp", "discountID", discount.ID, "error", err)
	}
	for _, bundle := range bundles {
		if err := srv.stampBundle(ctx, discount, bundle); err != nil {
			srv.log(ctx).Error("Failed to restamp bundle", "bundleID", bundle.ID, "error", err)
		}
	}
}

// stampProduct computes and persists the discounted price onto a product.
func (srv *discountService) stampProduct(ctx context.Context, discount *entity.Discount, product *entity.Product) error {
	base := pricing.ProductAdminBase(product, discount.Type)
	price, err := pricing.AdminPrice(base, discount.AdminDiscount)
	if err != nil {
		return errors.Wrapf(err, "failed to compute admin price for product %s", product.ID)
	}

	discountID := discount.ID
	pct := discount.AdminDiscount
	product.DiscountID = &discountID
	product.AdminDiscountApplied = &pct
	product.AdminDiscountedPrice = &price
	product.UpdatedAt = time.Now().UTC()

	return errors.Wrap(srv.productRepo.Save(ctx, product), "failed to save product")
}

// stampBundle computes and persists the discounted price onto a bundle.
func (srv *discountService) stampBundle(ctx context.Context, discount *entity.Discount, bundle *entity.Bundle) error {
	base := pricing.BundleAdminBase(bundle, discount.Type)
	price, err := pricing.AdminPrice(base, discount.AdminDiscount)
	if err != nil {
		return errors.Wrapf(err, "failed to compute admin price for bundle %s", bundle.ID)
	}

	discountID := discount.ID
	pct := discount.AdminDiscount
	bundle.DiscountID = &discountID
	bundle.AdminDiscountApplied = &pct
	bundle.AdminDiscountedPrice = &price
	bundle.UpdatedAt = time.Now().UTC()

	return errors.Wrap(srv.bundleRepo.Save(ctx, bundle), "failed to save bundle")
}

// ApplyDiscount enrolls the targets and, when the window is already open,
// stamps the discounted price onto each enrolled entity. Enrollment is
// all-or-nothing; application failures land in the result's failure list.
func (srv *discountService) ApplyDiscount(ctx context.Context, adminID, discountID uuid.UUID, productIDs, bundleIDs []uuid.UUID) (*usecase.ApplyResult, error) {
	if err := requireActiveAdmin(ctx, srv.adminRepo, adminID); err != nil {
		return nil, err
	}

	discount, err := srv.GetDiscount(ctx, discountID)
	if err != nil {
		return nil, err
	}

	if discount.IsApplied {
		return nil, errors.Wrap(domainerrors.ErrModifierLocked, "enrollment closed after application")
	}

	products, err := srv.validateDiscountProducts(ctx, discount, productIDs)
	if err != nil {
		return nil, err
	}
	bundles, err := srv.validateDiscountBundles(ctx, discount, bundleIDs)
	if err != nil {
		return nil, err
	}

	// The enrollment sets grow monotonically; nothing is dropped here.
	discount.Products = append(discount.Products, productIDs...)
	discount.Bundles = append(discount.Bundles, bundleIDs...)
	discount.IsApplied = true
	discount.UpdatedAt = time.Now().UTC()
	if err := srv.discountRepo.Save(ctx, discount); err != nil {
		return nil, errors.Wrap(err, "failed to save discount")
	}

	result := &usecase.ApplyResult{}
	if discount.StateAt(time.Now().UTC()) == entity.ModifierActive {
		for _, product := range products {
			if err := srv.stampProduct(ctx, discount, product); err != nil {
				result.Failed = append(result.Failed, usecase.EnrollmentFailure{ID: product.ID, Reason: err.Error()})

				continue
			}
			result.Products = append(result.Products, product)
		}
		for _, bundle := range bundles {
			if err := srv.stampBundle(ctx, discount, bundle); err != nil {
				result.Failed = append(result.Failed, usecase.EnrollmentFailure{ID: bundle.ID, Reason: err.Error()})

				continue
			}
			result.Bundles = append(result.Bundles, bundle)
		}
	} else {
		// Pending window: the sweep stamps prices once the window opens.
		result.Products = products
		result.Bundles = bundles
	}

	srv.log(ctx).Info("Discount applied",
		"discountID", discountID,
		"products", len(productIDs),
		"bundles", len(bundleIDs),
		"failed", len(result.Failed),
	)

	return result, nil
}

// validateDiscountProducts enforces the fail-fast enrollment contract for
// product targets: any missing, unavailable or duplicate id rejects the
// whole batch with the offending id list.
func (srv *discountService) validateDiscountProducts(ctx context.Context, discount *entity.Discount, productIDs []uuid.UUID) ([]*entity.Product, error) {
	if len(productIDs) == 0 {
		return nil, nil
	}

	seen := make(map[uuid.UUID]struct{}, len(productIDs))
	var duplicates []uuid.UUID
	for _, id := range productIDs {
		if _, dup := seen[id]; dup || discount.HasProduct(id) {
			duplicates = append(duplicates, id)
		}
		seen[id] = struct{}{}
	}
	if len(duplicates) > 0 {
		return nil, errors.Wrapf(domainerrors.ErrDuplicateEnrollment, "duplicate products: %v", duplicates)
	}

	products, err := srv.productRepo.FindByIDs(ctx, productIDs)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load products")
	}
	if missing := missingIDs(productIDs, productIDSet(products)); len(missing) > 0 {
		return nil, errors.Wrapf(domainerrors.ErrProductNotFound, "missing products: %v", missing)
	}

	var unavailable []uuid.UUID
	for _, p := range products {
		if !p.IsActive || p.IsBlocked {
			unavailable = append(unavailable, p.ID)
		}
		if p.DiscountID != nil && *p.DiscountID != discount.ID {
			unavailable = append(unavailable, p.ID)
		}
	}
	if len(unavailable) > 0 {
		return nil, errors.Wrapf(domainerrors.ErrTargetsUnavailable, "unavailable products: %v", unavailable)
	}

	return products, nil
}

// validateDiscountBundles mirrors validateDiscountProducts for bundle targets.
func (srv *discountService) validateDiscountBundles(ctx context.Context, discount *entity.Discount, bundleIDs []uuid.UUID) ([]*entity.Bundle, error) {
	if len(bundleIDs) == 0 {
		return nil, nil
	}

	seen := make(map[uuid.UUID]struct{}, len(bundleIDs))
	var duplicates []uuid.UUID
	for _, id := range bundleIDs {
		if _, dup := seen[id]; dup || discount.HasBundle(id) {
			duplicates = append(duplicates, id)
		}
		seen[id] = struct{}{}
	}
	if len(duplicates) > 0 {
		return nil, errors.Wrapf(domainerrors.ErrDuplicateEnrollment, "duplicate bundles: %v", duplicates)
	}

	bundles, err := srv.bundleRepo.FindByIDs(ctx, bundleIDs)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load bundles")
	}

	found := make(map[uuid.UUID]struct{}, len(bundles))
	for _, b := range bundles {
		found[b.ID] = struct{}{}
	}
	if missing := missingIDs(bundleIDs, found); len(missing) > 0 {
		return nil, errors.Wrapf(domainerrors.ErrBundleNotFound, "missing bundles: %v", missing)
	}

	var unavailable []uuid.UUID
	for _, b := range bundles {
		if !b.IsActive || b.IsBlocked {
			unavailable = append(unavailable, b.ID)
		}
		if b.DiscountID != nil && *b.DiscountID != discount.ID {
			unavailable = append(unavailable, b.ID)
		}
	}
	if len(unavailable) > 0 {
		return nil, errors.Wrapf(domainerrors.ErrTargetsUnavailable, "unavailable bundles: %v", unavailable)
	}

	return bundles, nil
}

// RemoveProductFromDiscount detaches one product from the discount. The
// product's stamped discount ID must match the discount being removed; a
// mismatch means a newer modifier overwrote the stamp and the removal is
// rejected with no state change.
func (srv *discountService) RemoveProductFromDiscount(ctx context.Context, adminID, discountID, productID uuid.UUID) (*entity.Product, error) {
	if err := requireActiveAdmin(ctx, srv.adminRepo, adminID); err != nil {
		return nil, err
	}

	discount, err := srv.GetDiscount(ctx, discountID)
	if err != nil {
		return nil, err
	}

	product, err := srv.productRepo.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, errors.Wrap(domainerrors.ErrProductNotFound, "product not found")
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	if !discount.HasProduct(productID) {
		return nil, errors.Wrap(domainerrors.ErrModifierMismatch, "product not enrolled in discount")
	}
	if product.DiscountID != nil && *product.DiscountID != discountID {
		return nil, errors.Wrap(domainerrors.ErrModifierMismatch, "product stamped with a different discount")
	}

	product.ClearAdminDiscount()
	product.UpdatedAt = time.Now().UTC()
	if err := srv.productRepo.Save(ctx, product); err != nil {
		return nil, errors.Wrap(err, "failed to save product")
	}

	discount.Products = removeID(discount.Products, productID)
	discount.UpdatedAt = time.Now().UTC()
	if err := srv.discountRepo.Save(ctx, discount); err != nil {
		return nil, errors.Wrap(err, "failed to save discount")
	}

	return product, nil
}

// RemoveBundleFromDiscount detaches one bundle under the same stamp check.
func (srv *discountService) RemoveBundleFromDiscount(ctx context.Context, adminID, discountID, bundleID uuid.UUID) (*entity.Bundle, error) {
	if err := requireActiveAdmin(ctx, srv.adminRepo, adminID); err != nil {
		return nil, err
	}

	discount, err := srv.GetDiscount(ctx, discountID)
	if err != nil {
		return nil, err
	}

	bundle, err := srv.bundleRepo.FindByID(ctx, bundleID)
	if err != nil {
		if errors.Is(err, repository.ErrBundleNotFound) {
			return nil, errors.Wrap(domainerrors.ErrBundleNotFound, "bundle not found")
		}

		return nil, errors.Wrap(err, "failed to find bundle")
	}

	if !discount.HasBundle(bundleID) {
		return nil, errors.Wrap(domainerrors.ErrModifierMismatch, "bundle not enrolled in discount")
	}
	if bundle.DiscountID != nil && *bundle.DiscountID != discountID {
		return nil, errors.Wrap(domainerrors.ErrModifierMismatch, "bundle stamped with a different discount")
	}

	bundle.ClearAdminDiscount()
	bundle.UpdatedAt = time.Now().UTC()
	if err := srv.bundleRepo.Save(ctx, bundle); err != nil {
		return nil, errors.Wrap(err, "failed to save bundle")
	}

	discount.Bundles = removeID(discount.Bundles, bundleID)
	discount.UpdatedAt = time.Now().UTC()
	if err := srv.discountRepo.Save(ctx, discount); err != nil {
		return nil, errors.Wrap(err, "failed to save discount")
	}

	return bundle, nil
}

// DeleteDiscount soft-deletes the discount and tears down every product and
// bundle still stamped with it, whether or not they appear in the discount's
// own enrollment list. The repository-level clears are idempotent so a
// repeated teardown is safe.
func (srv *discountService) DeleteDiscount(ctx context.Context, adminID, discountID uuid.UUID) error {
	if err := requireActiveAdmin(ctx, srv.adminRepo, adminID); err != nil {
		return err
	}

	discount, err := srv.GetDiscount(ctx, discountID)
	if err != nil {
		return err
	}

	discount.IsActive = false
	discount.UpdatedAt = time.Now().UTC()
	if err := srv.discountRepo.Save(ctx, discount); err != nil {
		return errors.Wrap(err, "failed to save discount")
	}

	productsCleared, err := srv.productRepo.ClearDiscount(ctx, discountID)
	if err != nil {
		return errors.Wrap(domainerrors.ErrCascadePartial, "failed to clear discount from products")
	}
	bundlesCleared, err := srv.bundleRepo.ClearDiscount(ctx, discountID)
	if err != nil {
		return errors.Wrap(domainerrors.ErrCascadePartial, "failed to clear discount from bundles")
	}

	srv.log(ctx).Info("Discount soft deleted",
		"discountID", discountID,
		"productsCleared", productsCleared,
		"bundlesCleared", bundlesCleared,
	)

	return nil
}

// Sweep walks every live discount once: open windows get their enrolled
// entities stamped, closed windows get an exhaustive teardown by stamp.
// Both branches are idempotent, so overlapping or repeated sweeps are safe.
func (srv *discountService) Sweep(ctx context.Context, now time.Time) (*usecase.SweepReport, error) {
	discounts, err := srv.discountRepo.FindActive(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load discounts")
	}

	report := &usecase.SweepReport{}
	for _, discount := range discounts {
		switch discount.StateAt(now) {
		case entity.ModifierActive:
			srv.sweepApply(ctx, discount, report)
		case entity.ModifierExpired:
			productsCleared, err := srv.productRepo.ClearDiscount(ctx, discount.ID)
			if err != nil {
				report.Failures = append(report.Failures, usecase.EnrollmentFailure{ID: discount.ID, Reason: err.Error()})

				continue
			}
			bundlesCleared, err := srv.bundleRepo.ClearDiscount(ctx, discount.ID)
			if err != nil {
				report.Failures = append(report.Failures, usecase.EnrollmentFailure{ID: discount.ID, Reason: err.Error()})

				continue
			}
			report.Cleared += int(productsCleared + bundlesCleared)
		case entity.ModifierPending, entity.ModifierCleared:
		}
	}

	return report, nil
}

// sweepApply stamps the discount onto every enrolled entity that does not
// carry the current stamp yet.
func (srv *discountService) sweepApply(ctx context.Context, discount *entity.Discount, report *usecase.SweepReport) {
	if len(discount.Products) > 0 {
		products, err := srv.productRepo.FindByIDs(ctx, discount.Products)
		if err != nil {
			report.Failures = append(report.Failures, usecase.EnrollmentFailure{ID: discount.ID, Reason: err.Error()})
		}
		for _, product := range products {
			if !product.IsActive || product.IsBlocked {
				continue
			}
			if productStamped(product, discount) {
				continue
			}
			if err := srv.stampProduct(ctx, discount, product); err != nil {
				report.Failures = append(report.Failures, usecase.EnrollmentFailure{ID: product.ID, Reason: err.Error()})

				continue
			}
			report.Applied++
		}
	}

	if len(discount.Bundles) > 0 {
		bundles, err := srv.bundleRepo.FindByIDs(ctx, discount.Bundles)
		if err != nil {
			report.Failures = append(report.Failures, usecase.EnrollmentFailure{ID: discount.ID, Reason: err.Error()})
		}
		for _, bundle := range bundles {
			if !bundle.IsActive || bundle.IsBlocked {
				continue
			}
			if bundleStamped(bundle, discount) {
				continue
			}
			if err := srv.stampBundle(ctx, discount, bundle); err != nil {
				report.Failures = append(report.Failures, usecase.EnrollmentFailure{ID: bundle.ID, Reason: err.Error()})

				continue
			}
			report.Applied++
		}
	}
}

// productStamped reports whether the product already carries the discount's
// current stamp.
func productStamped(product *entity.Product, discount *entity.Discount) bool {
	return product.DiscountID != nil && *product.DiscountID == discount.ID &&
		product.AdminDiscountApplied != nil && *product.AdminDiscountApplied == discount.AdminDiscount
}

// bundleStamped reports whether the bundle already carries the discount's
// current stamp.
func bundleStamped(bundle *entity.Bundle, discount *entity.Discount) bool {
	return bundle.DiscountID != nil && *bundle.DiscountID == discount.ID &&
		bundle.AdminDiscountApplied != nil && *bundle.AdminDiscountApplied == discount.AdminDiscount
}

// removeID drops one occurrence of id from the slice.
func removeID(ids []uuid.UUID, id uuid.UUID) []uuid.UUID {
	kept := ids[:0]
	for _, candidate := range ids {
		if candidate == id {
			continue
		}
		kept = append(kept, candidate)
	}

	return kept
}
