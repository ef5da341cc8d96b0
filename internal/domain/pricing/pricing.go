// Package pricing contains the pure price computation engine.
//
// All functions are side-effect free over plain numbers. Layering order is
// fixed: seller discount applies on MRP, admin discount applies on the
// seller-discounted price when one exists (or on MRP, depending on the
// discount type), and sale discount always applies on the raw MRP. The
// admin/sale asymmetry is an intentional business rule; do not unify it.
//
// No currency rounding is imposed here; callers persist full floating
// precision.
package pricing

import (
	"math"

	"backoffice/internal/errors"

	"backoffice/internal/domain/entity"
)

var (
	// ErrPercentOutOfRange is returned when a discount percentage is outside [0,100].
	ErrPercentOutOfRange = errors.New("discount percentage must be between 0 and 100")
	// ErrInvalidComputation is returned when a derived price is negative or
	// non-finite. The caller must abort the affected entity's write instead
	// of clamping.
	ErrInvalidComputation = errors.New("price computation produced an invalid value")
)

// ValidatePercent checks that pct is a usable discount percentage.
// pct=0 is a valid no-op discount.
func ValidatePercent(pct float64) error {
	if math.IsNaN(pct) || pct < 0 || pct > 100 {
		return ErrPercentOutOfRange
	}

	return nil
}

// discounted applies pct percent off base, rejecting invalid results.
func discounted(base, pct float64) (float64, error) {
	if err := ValidatePercent(pct); err != nil {
		return 0, err
	}

	result := base - base*pct/100
	if math.IsNaN(result) || math.IsInf(result, 0) || result < 0 {
		return 0, ErrInvalidComputation
	}

	return result, nil
}

// SellerPrice derives the seller-discounted price from the MRP.
func SellerPrice(mrp, pct float64) (float64, error) {
	return discounted(mrp, pct)
}

// AdminPrice derives the admin-discounted price from the given base layer.
func AdminPrice(base, pct float64) (float64, error) {
	return discounted(base, pct)
}

// SalePrice derives the sale price. Sales are always computed from the MRP,
// never from an already-admin-discounted price.
func SalePrice(mrp, pct float64) (float64, error) {
	return discounted(mrp, pct)
}

// ProductAdminBase resolves which upstream price an admin discount of the
// given type applies against for a product: the seller-discounted price when
// the discount targets it and one exists, else the MRP.
func ProductAdminBase(product *entity.Product, discountType entity.DiscountType) float64 {
	if discountType == entity.DiscountTypeSellerDiscounted && product.HasSellerDiscount() {
		return *product.SellerDiscounted
	}

	return product.MRP
}

// BundleAdminBase resolves the admin discount base for a bundle.
func BundleAdminBase(bundle *entity.Bundle, discountType entity.DiscountType) float64 {
	if discountType == entity.DiscountTypeSellerDiscounted && bundle.HasSellerDiscount() {
		return *bundle.SellerDiscounted
	}

	return bundle.MRP
}
