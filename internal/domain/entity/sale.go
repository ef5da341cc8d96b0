package entity

import (
	"time"

	"github.com/google/uuid"
)

// AffectedProduct is the denormalized snapshot a sale keeps of an enrolled
// product. IsUnavailable mirrors the product's blocked/deleted state and is
// maintained by the availability cascade.
type AffectedProduct struct {
	ProductID     uuid.UUID `json:"productId"`
	ProductName   string    `json:"productName"`
	ProductMRP    float64   `json:"productMRP"`
	FinalPrice    float64   `json:"finalPrice"`
	IsUnavailable bool      `json:"isUnavailable"`
}

// AffectedBundle is the denormalized snapshot a sale keeps of an enrolled
// bundle.
type AffectedBundle struct {
	BundleID      uuid.UUID `json:"bundleId"`
	BundleName    string    `json:"bundleName"`
	FinalPrice    float64   `json:"finalPrice"`
	IsUnavailable bool      `json:"isUnavailable"`
}

// Sale is a category-scoped promotional campaign. Unlike an admin discount,
// a sale price is always computed from the MRP, never from the
// admin-discounted price. That layering asymmetry is intentional business
// logic and must not be unified with the discount rule.
type Sale struct {
	ID                  uuid.UUID   `json:"id"`
	Name                string      `json:"name"`
	Description         string      `json:"description"`
	StartDate           time.Time   `json:"startDate"`
	EndDate             time.Time   `json:"endDate"`
	Categories          []uuid.UUID `json:"categories"` // Category scope of the sale.
	SaleDiscountApplied float64     `json:"saleDiscountApplied"` // Percentage 0-100.

	AffectedProducts []AffectedProduct `json:"affectedProducts"`
	AffectedBundles  []AffectedBundle  `json:"affectedBundles"`

	IsActive  bool      `json:"is_active"`
	IsApplied bool      `json:"isAppliedSale"`
	CreatedBy uuid.UUID `json:"createdBy"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// StateAt derives the lifecycle state of the sale at the given instant.
func (s *Sale) StateAt(now time.Time) ModifierState {
	return modifierStateAt(now, s.StartDate, s.EndDate, s.IsActive)
}

// HasCategory reports whether the category is part of the sale's scope.
func (s *Sale) HasCategory(categoryID uuid.UUID) bool {
	for _, id := range s.Categories {
		if id == categoryID {
			return true
		}
	}

	return false
}

// HasProduct reports whether the product is already part of the sale.
func (s *Sale) HasProduct(productID uuid.UUID) bool {
	for _, p := range s.AffectedProducts {
		if p.ProductID == productID {
			return true
		}
	}

	return false
}

// HasBundle reports whether the bundle is already part of the sale.
func (s *Sale) HasBundle(bundleID uuid.UUID) bool {
	for _, b := range s.AffectedBundles {
		if b.BundleID == bundleID {
			return true
		}
	}

	return false
}

// RemoveProduct drops the product snapshot from the sale. It returns true
// when the snapshot list changed.
func (s *Sale) RemoveProduct(productID uuid.UUID) bool {
	kept := s.AffectedProducts[:0]
	removed := false
	for _, p := range s.AffectedProducts {
		if p.ProductID == productID {
			removed = true

			continue
		}
		kept = append(kept, p)
	}
	s.AffectedProducts = kept

	return removed
}

// RemoveCategory drops the category from the sale's scope. It returns true
// when the scope changed.
func (s *Sale) RemoveCategory(categoryID uuid.UUID) bool {
	kept := s.Categories[:0]
	removed := false
	for _, id := range s.Categories {
		if id == categoryID {
			removed = true

			continue
		}
		kept = append(kept, id)
	}
	s.Categories = kept

	return removed
}
