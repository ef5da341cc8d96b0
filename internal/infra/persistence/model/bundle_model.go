package model

import (
	"time"

	"github.com/google/uuid"
)

// BundleModel mirrors the 'bundles' table.
type BundleModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	AdminID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Name        string    `gorm:"type:varchar(255);not null"`
	Description string    `gorm:"type:text"`
	Stock       int       `gorm:"not null;default:0"`
	MRP         float64   `gorm:"column:mrp;not null"`

	SellerDiscount   *float64
	SellerDiscounted *float64

	DiscountID           *uuid.UUID `gorm:"type:uuid;index"`
	AdminDiscountApplied *float64
	AdminDiscountedPrice *float64

	SaleID              *uuid.UUID `gorm:"type:uuid;index"`
	SaleApplied         *bool
	SaleDiscountApplied *float64
	FinalPrice          *float64

	IsActive      bool `gorm:"not null;default:true"`
	IsBlocked     bool `gorm:"not null;default:false"`
	IsUnavailable bool `gorm:"not null;default:false"`

	CreatedAt time.Time
	UpdatedAt time.Time

	Items []BundleItemModel `gorm:"foreignKey:BundleID"`
}

// TableName explicitly sets the table name for GORM.
func (BundleModel) TableName() string {
	return "bundles"
}

// BundleItemModel mirrors the 'bundle_items' table: one member product of a
// bundle with its quantity. The full member list is replaced on every bundle
// save.
type BundleItemModel struct {
	BundleID  uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProductID uuid.UUID `gorm:"type:uuid;primaryKey;index"`
	Quantity  int       `gorm:"not null;default:1"`
}

// TableName explicitly sets the table name for GORM.
func (BundleItemModel) TableName() string {
	return "bundle_items"
}
