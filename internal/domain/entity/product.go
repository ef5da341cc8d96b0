// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Product represents a single sellable item managed by the back office.
//
// The price of a product is derived from a stack of modifiers layered on top
// of its MRP (maximum retail price). Pointer fields model "no modifier": a
// teardown resets them to nil rather than zero, so a cleared discount is
// indistinguishable from one that was never applied.
type Product struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Stock       int        `json:"stock"`
	MRP         float64    `json:"MRP"`        // Undiscounted base price.
	CategoryID  *uuid.UUID `json:"categoryId"` // Weak reference; severed when the category is soft deleted.
	SellerID    *uuid.UUID `json:"sellerId"`

	// Seller discount layer.
	SellerDiscountApplied *float64 `json:"sellerDiscountApplied"` // Percentage 0-100.
	SellerDiscounted      *float64 `json:"sellerDiscounted"`

	// Admin discount layer, stamped by an applied Discount modifier.
	DiscountID           *uuid.UUID `json:"discountId"`
	AdminDiscountApplied *float64   `json:"adminDiscountApplied"`
	AdminDiscountedPrice *float64   `json:"adminDiscountedPrice"`

	// Sale layer, stamped by an applied Sale modifier. The wire name
	// finalePrice is historical and kept for client compatibility.
	SaleID              *uuid.UUID `json:"saleId"`
	SaleApplied         *bool      `json:"saleApplied"`
	SaleDiscountApplied *float64   `json:"saleDiscountApplied"`
	FinalePrice         *float64   `json:"finalePrice"`

	IsActive      bool `json:"is_active"`  // Soft-delete flag.
	IsBlocked     bool `json:"is_blocked"` // Admin block; cascades into denormalized references.
	IsUnavailable bool `json:"is_unavailable"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// HasSellerDiscount reports whether the seller discount layer is set.
func (p *Product) HasSellerDiscount() bool {
	return p.SellerDiscountApplied != nil && p.SellerDiscounted != nil
}

// ClearAdminDiscount removes every field derived from a Discount modifier.
// Clearing already-cleared fields is a no-op, which keeps teardown idempotent.
func (p *Product) ClearAdminDiscount() {
	p.DiscountID = nil
	p.AdminDiscountApplied = nil
	p.AdminDiscountedPrice = nil
}

// ClearSale removes every field derived from a Sale modifier.
func (p *Product) ClearSale() {
	p.SaleID = nil
	p.SaleApplied = nil
	p.SaleDiscountApplied = nil
	p.FinalePrice = nil
}
