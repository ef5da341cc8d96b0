package entity

import (
	"time"

	"github.com/google/uuid"
)

// BundleItem is one member of a bundle: a weak reference to a product plus
// the quantity the bundle contains.
type BundleItem struct {
	ProductID uuid.UUID `json:"productId"`
	Quantity  int       `json:"quantity"`
}

// Bundle is a priced set of products. Its MRP is always the authoritative sum
// of member MRP times quantity over the CURRENT member list; every membership
// change must be followed by a recompute and a reapplication of whichever
// discount layers were active (seller first, then admin).
type Bundle struct {
	ID          uuid.UUID    `json:"id"`
	AdminID     uuid.UUID    `json:"adminId"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Stock       int          `json:"stock"`
	Products    []BundleItem `json:"products"`
	MRP         float64      `json:"MRP"`

	SellerDiscount   *float64 `json:"sellerDiscount"` // Percentage 0-100.
	SellerDiscounted *float64 `json:"sellerDiscounted"`

	DiscountID           *uuid.UUID `json:"discountId"`
	AdminDiscountApplied *float64   `json:"adminDiscountApplied"`
	AdminDiscountedPrice *float64   `json:"adminDiscountedPrice"`

	SaleID              *uuid.UUID `json:"saleId"`
	SaleApplied         *bool      `json:"saleApplied"`
	SaleDiscountApplied *float64   `json:"saleDiscountApplied"`
	FinalPrice          *float64   `json:"finalPrice"`

	IsActive      bool `json:"is_active"`
	IsBlocked     bool `json:"is_blocked"`
	IsUnavailable bool `json:"is_unavailable"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// HasSellerDiscount reports whether the seller discount layer is set.
func (b *Bundle) HasSellerDiscount() bool {
	return b.SellerDiscount != nil && b.SellerDiscounted != nil
}

// ContainsProduct reports whether the product is a current member.
func (b *Bundle) ContainsProduct(productID uuid.UUID) bool {
	for _, item := range b.Products {
		if item.ProductID == productID {
			return true
		}
	}

	return false
}

// RemoveProduct drops the product from the member list. It returns true when
// the member list changed. The caller is responsible for recomputing prices.
func (b *Bundle) RemoveProduct(productID uuid.UUID) bool {
	kept := b.Products[:0]
	removed := false
	for _, item := range b.Products {
		if item.ProductID == productID {
			removed = true

			continue
		}
		kept = append(kept, item)
	}
	b.Products = kept

	return removed
}

// ClearAdminDiscount removes every field derived from a Discount modifier.
func (b *Bundle) ClearAdminDiscount() {
	b.DiscountID = nil
	b.AdminDiscountApplied = nil
	b.AdminDiscountedPrice = nil
}

// ClearSale removes every field derived from a Sale modifier.
func (b *Bundle) ClearSale() {
	b.SaleID = nil
	b.SaleApplied = nil
	b.SaleDiscountApplied = nil
	b.FinalPrice = nil
}
