package impl

import (
	"context"

	"backoffice/internal/domain/entity"
	"backoffice/internal/domain/pricing"
	"backoffice/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// recomputeBundlePrices re-aggregates the bundle MRP from its current members
// and re-layers the discount stack in order: seller discount first, then the
// admin discount on top of the seller-discounted price when one exists.
// Missing or inactive member products are excluded from the sum.
//
// A stale discount pinned to an old MRP is exactly the bug this function
// exists to prevent, so every membership change must route through here.
// It is the single authoritative implementation; the block cascade and the
// bundle CRUD both call it.
func recomputeBundlePrices(ctx context.Context, productRepo repository.ProductRepository, bundle *entity.Bundle) error {
	ids := make([]uuid.UUID, 0, len(bundle.Products))
	for _, item := range bundle.Products {
		ids = append(ids, item.ProductID)
	}

	members, err := productRepo.FindByIDs(ctx, ids)
	if err != nil {
		return errors.Wrap(err, "failed to load bundle members")
	}

	mrpByID := make(map[uuid.UUID]float64, len(members))
	for _, p := range members {
		if !p.IsActive {
			continue
		}
		mrpByID[p.ID] = p.MRP
	}

	var mrp float64
	for _, item := range bundle.Products {
		if base, ok := mrpByID[item.ProductID]; ok {
			mrp += base * float64(item.Quantity)
		}
	}
	bundle.MRP = mrp

	if bundle.SellerDiscount != nil {
		sellerPrice, err := pricing.SellerPrice(bundle.MRP, *bundle.SellerDiscount)
		if err != nil {
			return errors.Wrap(err, "failed to recompute seller discounted price")
		}
		bundle.SellerDiscounted = &sellerPrice
	} else {
		bundle.SellerDiscounted = nil
	}

	if bundle.AdminDiscountApplied != nil {
		base := bundle.MRP
		if bundle.HasSellerDiscount() {
			base = *bundle.SellerDiscounted
		}

		adminPrice, err := pricing.AdminPrice(base, *bundle.AdminDiscountApplied)
		if err != nil {
			return errors.Wrap(err, "failed to recompute admin discounted price")
		}
		bundle.AdminDiscountedPrice = &adminPrice
	}

	return nil
}
