package entity

import (
	"time"

	"github.com/google/uuid"
)

// DiscountType selects which upstream price layer an admin discount is
// computed against.
type DiscountType string

const (
	// DiscountTypeMRP applies the discount directly on the MRP.
	DiscountTypeMRP DiscountType = "MRP"
	// DiscountTypeSellerDiscounted applies the discount on the
	// seller-discounted price when one exists, falling back to MRP.
	DiscountTypeSellerDiscounted DiscountType = "sellerDiscounted"
)

// Discount is an admin-level promotional discount: a time-windowed modifier
// that products and bundles are enrolled into.
type Discount struct {
	ID            uuid.UUID    `json:"id"`
	AdminID       uuid.UUID    `json:"adminId"` // Owning admin; must be active for every operation.
	AdminDiscount float64      `json:"adminDiscount"` // Percentage 0-100.
	Type          DiscountType `json:"type"`
	Description   string       `json:"description"`
	StartDate     time.Time    `json:"startDate"` // UTC-normalized window.
	EndDate       time.Time    `json:"endDate"`

	// Enrolled weak references. The sets grow monotonically while enrollment
	// is open; enrollment never silently drops members.
	Products []uuid.UUID `json:"products"`
	Bundles  []uuid.UUID `json:"bundles"`

	IsActive  bool `json:"is_active"` // Soft-delete flag.
	IsApplied bool `json:"isAppliedDiscount"` // Once true, the window can no longer be edited freely.

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// StateAt derives the lifecycle state of the discount at the given instant.
func (d *Discount) StateAt(now time.Time) ModifierState {
	return modifierStateAt(now, d.StartDate, d.EndDate, d.IsActive)
}

// HasProduct reports whether the product is already enrolled.
func (d *Discount) HasProduct(productID uuid.UUID) bool {
	for _, id := range d.Products {
		if id == productID {
			return true
		}
	}

	return false
}

// HasBundle reports whether the bundle is already enrolled.
func (d *Discount) HasBundle(bundleID uuid.UUID) bool {
	for _, id := range d.Bundles {
		if id == bundleID {
			return true
		}
	}

	return false
}
