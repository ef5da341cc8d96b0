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

// saleService implements the SaleUsecase interface: category-scoped sale
// campaigns with denormalized affected snapshots.
//
// The sale price is always computed from the MRP, never from the
// admin-discounted price. That asymmetry with the discount layering is
// intentional business logic.
type saleService struct {
	saleRepo     repository.SaleRepository
	productRepo  repository.ProductRepository
	bundleRepo   repository.BundleRepository
	categoryRepo repository.CategoryRepository
	adminRepo    repository.AdminRepository
	logger       *slog.Logger
}

// SaleServiceParams holds dependencies for saleService, injected by Fx.
type SaleServiceParams struct {
	fx.In

	SaleRepo     repository.SaleRepository
	ProductRepo  repository.ProductRepository
	BundleRepo   repository.BundleRepository
	CategoryRepo repository.CategoryRepository
	AdminRepo    repository.AdminRepository
	Logger       *slog.Logger
}

// NewSaleService is the constructor for saleService.
func NewSaleService(params SaleServiceParams) usecase.SaleUsecase {
	return &saleService{
		saleRepo:     params.SaleRepo,
		productRepo:  params.ProductRepo,
		bundleRepo:   params.BundleRepo,
		categoryRepo: params.CategoryRepo,
		adminRepo:    params.AdminRepo,
		logger:       params.Logger,
	}
}

func (srv *saleService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateSale creates a new sale campaign scoped to existing categories.
func (srv *saleService) CreateSale(ctx context.Context, adminID uuid.UUID, input *usecase.CreateSaleInput) (*entity.Sale, error) {
	if err := requireActiveAdmin(ctx, srv.adminRepo, adminID); err != nil {
		return nil, err
	}

	if err := pricing.ValidatePercent(input.SaleDiscountApplied); err != nil {
		return nil, errors.Wrap(domainerrors.ErrPercentOutOfRange, "invalid sale percentage")
	}
	if !input.EndDate.After(input.StartDate) {
		return nil, errors.Wrap(domainerrors.ErrInvalidDateWindow, "end date must be after start date")
	}

	if len(input.Categories) > 0 {
		categories, err := srv.categoryRepo.FindByIDs(ctx, input.Categories)
		if err != nil {
			return nil, errors.Wrap(err, "failed to load categories")
		}
		found := make(map[uuid.UUID]struct{}, len(categories))
		for _, c := range categories {
			if c.IsActive {
				found[c.ID] = struct{}{}
			}
		}
		if missing := missingIDs(input.Categories, found); len(missing) > 0 {
			return nil, errors.Wrapf(domainerrors.ErrCategoryNotFound, "missing categories: %v", missing)
		}
	}

	sale := &entity.Sale{
		ID:                  uuid.New(),
		Name:                input.Name,
		Description:         input.Description,
		StartDate:           input.StartDate.UTC(),
		EndDate:             input.EndDate.UTC(),
		Categories:          input.Categories,
		SaleDiscountApplied: input.SaleDiscountApplied,
		IsActive:            true,
		CreatedBy:           adminID,
		CreatedAt:           time.Now().UTC(),
		UpdatedAt:           time.Now().UTC(),
	}

	if err := srv.saleRepo.CreateSale(ctx, sale); err != nil {
		return nil, errors.Wrap(err, "failed to create sale")
	}

	return sale, nil
}

// GetSale retrieves a sale by ID.
func (srv *saleService) GetSale(ctx context.Context, saleID uuid.UUID) (*entity.Sale, error) {
	sale, err := srv.saleRepo.FindByID(ctx, saleID)
	if err != nil {
		if errors.Is(err, repository.ErrSaleNotFound) {
			return nil, errors.Wrap(domainerrors.ErrSaleNotFound, "sale not found")
		}

		return nil, errors.Wrap(err, "failed to find sale")
	}

	if !sale.IsActive {
		return nil, errors.Wrap(domainerrors.ErrSaleGone, "sale is soft deleted")
	}

	return sale, nil
}

// ListSales retrieves sales with search and pagination.
func (srv *saleService) ListSales(ctx context.Context, opts repository.ListOptions) ([]*entity.Sale, int64, error) {
	sales, total, err := srv.saleRepo.List(ctx, opts)
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to list sales")
	}

	return sales, total, nil
}

// UpdateSale updates a sale. The window is locked after application; a
// percentage change rewrites the final price on every stamped entity.
func (srv *saleService) UpdateSale(ctx context.Context, adminID, saleID uuid.UUID, input *usecase.UpdateSaleInput) (*entity.Sale, error) {
	if err := requireActiveAdmin(ctx, srv.adminRepo, adminID); err != nil {
		return nil, err
	}

	sale, err := srv.GetSale(ctx, saleID)
	if err != nil {
		return nil, err
	}

	if (input.StartDate != nil || input.EndDate != nil) && sale.IsApplied {
		return nil, errors.Wrap(domainerrors.ErrModifierLocked, "window locked after application")
	}

	if input.StartDate != nil {
		sale.StartDate = input.StartDate.UTC()
	}
	if input.EndDate != nil {
		sale.EndDate = input.EndDate.UTC()
	}
	if !sale.EndDate.After(sale.StartDate) {
		return nil, errors.Wrap(domainerrors.ErrInvalidDateWindow, "end date must be after start date")
	}
	if input.Name != nil {
		sale.Name = *input.Name
	}
	if input.Description != nil {
		sale.Description = *input.Description
	}

	percentChanged := false
	if input.SaleDiscountApplied != nil {
		if err := pricing.ValidatePercent(*input.SaleDiscountApplied); err != nil {
			return nil, errors.Wrap(domainerrors.ErrPercentOutOfRange, "invalid sale percentage")
		}
		percentChanged = sale.SaleDiscountApplied != *input.SaleDiscountApplied
		sale.SaleDiscountApplied = *input.SaleDiscountApplied
	}

	if sale.IsApplied && percentChanged {
		srv.restamp(ctx, sale)
	}

	sale.UpdatedAt = time.Now().UTC()
	if err := srv.saleRepo.Save(ctx, sale); err != nil {
		return nil, errors.Wrap(err, "failed to save sale")
	}

	return sale, nil
}

// restamp rewrites the final price on every entity currently stamped with the
// sale and refreshes the sale's own denormalized snapshots from the reloaded
// entities. Failures abort only the affected entity and are logged.
func (srv *saleService) restamp(ctx context.Context, sale *entity.Sale) {
	products, err := srv.productRepo.FindBySale(ctx, sale.ID)
	if err != nil {
		srv.log(ctx).Error("Failed to load stamped products for restamp", "saleID", sale.ID, "error", err)
	}
	for _, product := range products {
		if err := srv.stampProduct(ctx, sale, product); err != nil {
			srv.log(ctx).Error("Failed to restamp product", "productID", product.ID, "error", err)

			continue
		}
		for i := range sale.AffectedProducts {
			if sale.AffectedProducts[i].ProductID == product.ID {
				sale.AffectedProducts[i].FinalPrice = *product.FinalePrice
			}
		}
	}

	bundles, err := srv.bundleRepo.FindBySale(ctx, sale.ID)
	if err != nil {
		srv.log(ctx).Error("Failed to load stamped bundles for restamp", "saleID", sale.ID, "error", err)
	}
	for _, bundle := range bundles {
		if err := srv.stampBundle(ctx, sale, bundle); err != nil {
			srv.log(ctx).Error("Failed to restamp bundle", "bundleID", bundle.ID, "error", err)

			continue
		}
		for i := range sale.AffectedBundles {
			if sale.AffectedBundles[i].BundleID == bundle.ID {
				sale.AffectedBundles[i].FinalPrice = *bundle.FinalPrice
			}
		}
	}
}

// stampProduct computes and persists the sale price onto a product. The base
// is always the product's MRP.
func (srv *saleService) stampProduct(ctx context.Context, sale *entity.Sale, product *entity.Product) error {
	price, err := pricing.SalePrice(product.MRP, sale.SaleDiscountApplied)
	if err != nil {
		return errors.Wrapf(err, "failed to compute sale price for product %s", product.ID)
	}

	saleID := sale.ID
	applied := true
	pct := sale.SaleDiscountApplied
	product.SaleID = &saleID
	product.SaleApplied = &applied
	product.SaleDiscountApplied = &pct
	product.FinalePrice = &price
	product.UpdatedAt = time.Now().UTC()

	return errors.Wrap(srv.productRepo.Save(ctx, product), "failed to save product")
}

// stampBundle computes and persists the sale price onto a bundle.
func (srv *saleService) stampBundle(ctx context.Context, sale *entity.Sale, bundle *entity.Bundle) error {
	price, err := pricing.SalePrice(bundle.MRP, sale.SaleDiscountApplied)
	if err != nil {
		return errors.Wrapf(err, "failed to compute sale price for bundle %s", bundle.ID)
	}

	saleID := sale.ID
	applied := true
	pct := sale.SaleDiscountApplied
	bundle.SaleID = &saleID
	bundle.SaleApplied = &applied
	bundle.SaleDiscountApplied = &pct
	bundle.FinalPrice = &price
	bundle.UpdatedAt = time.Now().UTC()

	return errors.Wrap(srv.bundleRepo.Save(ctx, bundle), "failed to save bundle")
}

// AddProductsToSale enrolls products into the sale. Targets must belong to
// the sale's category scope. Enrollment is all-or-nothing; stamping is
// best-effort once the window is open.
func (srv *saleService) AddProductsToSale(ctx context.Context, adminID, saleID uuid.UUID, productIDs []uuid.UUID) (*usecase.ApplyResult, error) {
	if err := requireActiveAdmin(ctx, srv.adminRepo, adminID); err != nil {
		return nil, err
	}

	sale, err := srv.GetSale(ctx, saleID)
	if err != nil {
		return nil, err
	}

	if len(productIDs) == 0 {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "no products given")
	}

	seen := make(map[uuid.UUID]struct{}, len(productIDs))
	var duplicates []uuid.UUID
	for _, id := range productIDs {
		if _, dup := seen[id]; dup || sale.HasProduct(id) {
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
		switch {
		case !p.IsActive || p.IsBlocked:
			unavailable = append(unavailable, p.ID)
		case p.SaleID != nil && *p.SaleID != saleID:
			unavailable = append(unavailable, p.ID)
		case len(sale.Categories) > 0 && (p.CategoryID == nil || !sale.HasCategory(*p.CategoryID)):
			unavailable = append(unavailable, p.ID)
		}
	}
	if len(unavailable) > 0 {
		return nil, errors.Wrapf(domainerrors.ErrTargetsUnavailable, "unavailable products: %v", unavailable)
	}

	result := &usecase.ApplyResult{}
	active := sale.StateAt(time.Now().UTC()) == entity.ModifierActive
	for _, product := range products {
		snapshotPrice, err := pricing.SalePrice(product.MRP, sale.SaleDiscountApplied)
		if err != nil {
			result.Failed = append(result.Failed, usecase.EnrollmentFailure{ID: product.ID, Reason: err.Error()})

			continue
		}

		if active {
			if err := srv.stampProduct(ctx, sale, product); err != nil {
				result.Failed = append(result.Failed, usecase.EnrollmentFailure{ID: product.ID, Reason: err.Error()})

				continue
			}
			sale.IsApplied = true
		}

		sale.AffectedProducts = append(sale.AffectedProducts, entity.AffectedProduct{
			ProductID:   product.ID,
			ProductName: product.Name,
			ProductMRP:  product.MRP,
			FinalPrice:  snapshotPrice,
		})
		result.Products = append(result.Products, product)
	}

	sale.UpdatedAt = time.Now().UTC()
	if err := srv.saleRepo.Save(ctx, sale); err != nil {
		return nil, errors.Wrap(err, "failed to save sale")
	}

	srv.log(ctx).Info("Products added to sale",
		"saleID", saleID,
		"products", len(result.Products),
		"failed", len(result.Failed),
	)

	return result, nil
}

// AddBundlesToSale enrolls bundles into the sale under the same contract.
// Bundles carry no category, so the scope check does not apply.
func (srv *saleService) AddBundlesToSale(ctx context.Context, adminID, saleID uuid.UUID, bundleIDs []uuid.UUID) (*usecase.ApplyResult, error) {
	if err := requireActiveAdmin(ctx, srv.adminRepo, adminID); err != nil {
		return nil, err
	}

	sale, err := srv.GetSale(ctx, saleID)
	if err != nil {
		return nil, err
	}

	if len(bundleIDs) == 0 {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "no bundles given")
	}

	seen := make(map[uuid.UUID]struct{}, len(bundleIDs))
	var duplicates []uuid.UUID
	for _, id := range bundleIDs {
		if _, dup := seen[id]; dup || sale.HasBundle(id) {
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
		if !b.IsActive || b.IsBlocked || (b.SaleID != nil && *b.SaleID != saleID) {
			unavailable = append(unavailable, b.ID)
		}
	}
	if len(unavailable) > 0 {
		return nil, errors.Wrapf(domainerrors.ErrTargetsUnavailable, "unavailable bundles: %v", unavailable)
	}

	result := &usecase.ApplyResult{}
	active := sale.StateAt(time.Now().UTC()) == entity.ModifierActive
	for _, bundle := range bundles {
		snapshotPrice, err := pricing.SalePrice(bundle.MRP, sale.SaleDiscountApplied)
		if err != nil {
			result.Failed = append(result.Failed, usecase.EnrollmentFailure{ID: bundle.ID, Reason: err.Error()})

			continue
		}

		if active {
			if err := srv.stampBundle(ctx, sale, bundle); err != nil {
				result.Failed = append(result.Failed, usecase.EnrollmentFailure{ID: bundle.ID, Reason: err.Error()})

				continue
			}
			sale.IsApplied = true
		}

		sale.AffectedBundles = append(sale.AffectedBundles, entity.AffectedBundle{
			BundleID:   bundle.ID,
			BundleName: bundle.Name,
			FinalPrice: snapshotPrice,
		})
		result.Bundles = append(result.Bundles, bundle)
	}

	sale.UpdatedAt = time.Now().UTC()
	if err := srv.saleRepo.Save(ctx, sale); err != nil {
		return nil, errors.Wrap(err, "failed to save sale")
	}

	return result, nil
}

// RemoveProductFromSale detaches one product. The product's stamped sale ID
// must match the sale being removed; a mismatch means a newer sale overwrote
// the stamp and the removal is rejected with no state change.
func (srv *saleService) RemoveProductFromSale(ctx context.Context, adminID, saleID, productID uuid.UUID) (*entity.Product, error) {
	if err := requireActiveAdmin(ctx, srv.adminRepo, adminID); err != nil {
		return nil, err
	}

	sale, err := srv.GetSale(ctx, saleID)
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

	if !sale.HasProduct(productID) {
		return nil, errors.Wrap(domainerrors.ErrModifierMismatch, "product not enrolled in sale")
	}
	if product.SaleID != nil && *product.SaleID != saleID {
		return nil, errors.Wrap(domainerrors.ErrModifierMismatch, "product stamped with a different sale")
	}

	product.ClearSale()
	product.UpdatedAt = time.Now().UTC()
	if err := srv.productRepo.Save(ctx, product); err != nil {
		return nil, errors.Wrap(err, "failed to save product")
	}

	sale.RemoveProduct(productID)
	sale.UpdatedAt = time.Now().UTC()
	if err := srv.saleRepo.Save(ctx, sale); err != nil {
		return nil, errors.Wrap(err, "failed to save sale")
	}

	return product, nil
}

// RemoveCategoryFromSale drops a category from the sale's scope and tears
// down every product of that category still stamped with the sale.
func (srv *saleService) RemoveCategoryFromSale(ctx context.Context, adminID, saleID, categoryID uuid.UUID) (*entity.Sale, error) {
	if err := requireActiveAdmin(ctx, srv.adminRepo, adminID); err != nil {
		return nil, err
	}

	sale, err := srv.GetSale(ctx, saleID)
	if err != nil {
		return nil, err
	}

	if !sale.RemoveCategory(categoryID) {
		return nil, errors.Wrap(domainerrors.ErrCategoryNotFound, "category not in sale scope")
	}

	products, err := srv.productRepo.FindByCategoryAndSale(ctx, categoryID, saleID)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrCascadePartial, "failed to load category products")
	}
	for _, product := range products {
		product.ClearSale()
		product.UpdatedAt = time.Now().UTC()
		if err := srv.productRepo.Save(ctx, product); err != nil {
			return nil, errors.Wrapf(domainerrors.ErrCascadePartial, "failed to save product %s", product.ID)
		}
		sale.RemoveProduct(product.ID)
	}

	sale.UpdatedAt = time.Now().UTC()
	if err := srv.saleRepo.Save(ctx, sale); err != nil {
		return nil, errors.Wrap(err, "failed to save sale")
	}

	srv.log(ctx).Info("Category removed from sale",
		"saleID", saleID,
		"categoryID", categoryID,
		"productsCleared", len(products),
	)

	return sale, nil
}

// DeleteSale soft-deletes the sale and tears down every entity still stamped
// with it, whether or not it appears in the sale's own snapshots.
func (srv *saleService) DeleteSale(ctx context.Context, adminID, saleID uuid.UUID) error {
	if err := requireActiveAdmin(ctx, srv.adminRepo, adminID); err != nil {
		return err
	}

	sale, err := srv.GetSale(ctx, saleID)
	if err != nil {
		return err
	}

	sale.IsActive = false
	sale.UpdatedAt = time.Now().UTC()
	if err := srv.saleRepo.Save(ctx, sale); err != nil {
		return errors.Wrap(err, "failed to save sale")
	}

	productsCleared, err := srv.productRepo.ClearSale(ctx, saleID)
	if err != nil {
		return errors.Wrap(domainerrors.ErrCascadePartial, "failed to clear sale from products")
	}
	bundlesCleared, err := srv.bundleRepo.ClearSale(ctx, saleID)
	if err != nil {
		return errors.Wrap(domainerrors.ErrCascadePartial, "failed to clear sale from bundles")
	}

	srv.log(ctx).Info("Sale soft deleted",
		"saleID", saleID,
		"productsCleared", productsCleared,
		"bundlesCleared", bundlesCleared,
	)

	return nil
}

// Sweep walks every live sale once: open windows get their enrolled entities
// stamped, closed windows get an exhaustive teardown by stamp. Both branches
// are idempotent.
func (srv *saleService) Sweep(ctx context.Context, now time.Time) (*usecase.SweepReport, error) {
	sales, err := srv.saleRepo.FindActive(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load sales")
	}

	report := &usecase.SweepReport{}
	for _, sale := range sales {
		switch sale.StateAt(now) {
		case entity.ModifierActive:
			srv.sweepApply(ctx, sale, report)
		case entity.ModifierExpired:
			productsCleared, err := srv.productRepo.ClearSale(ctx, sale.ID)
			if err != nil {
				report.Failures = append(report.Failures, usecase.EnrollmentFailure{ID: sale.ID, Reason: err.Error()})

				continue
			}
			bundlesCleared, err := srv.bundleRepo.ClearSale(ctx, sale.ID)
			if err != nil {
				report.Failures = append(report.Failures, usecase.EnrollmentFailure{ID: sale.ID, Reason: err.Error()})

				continue
			}
			report.Cleared += int(productsCleared + bundlesCleared)
		case entity.ModifierPending, entity.ModifierCleared:
		}
	}

	return report, nil
}

// sweepApply stamps the sale onto every enrolled entity that does not carry
// the current stamp yet, and marks the sale applied once anything is stamped.
func (srv *saleService) sweepApply(ctx context.Context, sale *entity.Sale, report *usecase.SweepReport) {
	stamped := 0

	if len(sale.AffectedProducts) > 0 {
		ids := make([]uuid.UUID, 0, len(sale.AffectedProducts))
		for _, snapshot := range sale.AffectedProducts {
			ids = append(ids, snapshot.ProductID)
		}
		products, err := srv.productRepo.FindByIDs(ctx, ids)
		if err != nil {
			report.Failures = append(report.Failures, usecase.EnrollmentFailure{ID: sale.ID, Reason: err.Error()})
		}
		for _, product := range products {
			if !product.IsActive || product.IsBlocked {
				continue
			}
			if product.SaleID != nil && *product.SaleID == sale.ID &&
				product.SaleDiscountApplied != nil && *product.SaleDiscountApplied == sale.SaleDiscountApplied {
				continue
			}
			if err := srv.stampProduct(ctx, sale, product); err != nil {
				report.Failures = append(report.Failures, usecase.EnrollmentFailure{ID: product.ID, Reason: err.Error()})

				continue
			}
			report.Applied++
			stamped++
		}
	}

	if len(sale.AffectedBundles) > 0 {
		ids := make([]uuid.UUID, 0, len(sale.AffectedBundles))
		for _, snapshot := range sale.AffectedBundles {
			ids = append(ids, snapshot.BundleID)
		}
		bundles, err := srv.bundleRepo.FindByIDs(ctx, ids)
		if err != nil {
			report.Failures = append(report.Failures, usecase.EnrollmentFailure{ID: sale.ID, Reason: err.Error()})
		}
		for _, bundle := range bundles {
			if !bundle.IsActive || bundle.IsBlocked {
				continue
			}
			if bundle.SaleID != nil && *bundle.SaleID == sale.ID &&
				bundle.SaleDiscountApplied != nil && *bundle.SaleDiscountApplied == sale.SaleDiscountApplied {
				continue
			}
			if err := srv.stampBundle(ctx, sale, bundle); err != nil {
				report.Failures = append(report.Failures, usecase.EnrollmentFailure{ID: bundle.ID, Reason: err.Error()})

				continue
			}
			report.Applied++
			stamped++
		}
	}

	if stamped > 0 && !sale.IsApplied {
		sale.IsApplied = true
		sale.UpdatedAt = time.Now().UTC()
		if err := srv.saleRepo.Save(ctx, sale); err != nil {
			report.Failures = append(report.Failures, usecase.EnrollmentFailure{ID: sale.ID, Reason: err.Error()})
		}
	}
}
