package model

import (
	"time"

	"github.com/google/uuid"
)

// CartModel mirrors the 'carts' table. The storefront owns cart writes; the
// back office only patches the denormalized availability flag on items.
type CartModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Items []CartItemModel `gorm:"foreignKey:CartID"`
}

// TableName explicitly sets the table name for GORM.
func (CartModel) TableName() string {
	return "carts"
}

// CartItemModel mirrors the 'cart_items' table. Exactly one of ProductID and
// BundleID is set.
type CartItemModel struct {
	ID            uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	CartID        uuid.UUID  `gorm:"type:uuid;not null;index"`
	ProductID     *uuid.UUID `gorm:"type:uuid;index"`
	BundleID      *uuid.UUID `gorm:"type:uuid;index"`
	Quantity      int        `gorm:"not null;default:1"`
	IsUnavailable bool       `gorm:"not null;default:false"`
}

// TableName explicitly sets the table name for GORM.
func (CartItemModel) TableName() string {
	return "cart_items"
}
