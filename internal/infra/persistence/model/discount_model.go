package model

import (
	"time"

	"github.com/google/uuid"
)

// DiscountModel mirrors the 'discounts' table.
type DiscountModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	AdminID       uuid.UUID `gorm:"type:uuid;not null;index"`
	AdminDiscount float64   `gorm:"not null"`
	Type          string    `gorm:"type:varchar(32);not null"`
	Description   string    `gorm:"type:text"`
	StartDate     time.Time `gorm:"not null"`
	EndDate       time.Time `gorm:"not null"`

	IsActive  bool `gorm:"not null;default:true"`
	IsApplied bool `gorm:"not null;default:false"`

	CreatedAt time.Time
	UpdatedAt time.Time

	Products []DiscountProductModel `gorm:"foreignKey:DiscountID"`
	Bundles  []DiscountBundleModel  `gorm:"foreignKey:DiscountID"`
}

// TableName explicitly sets the table name for GORM.
func (DiscountModel) TableName() string {
	return "discounts"
}

// DiscountProductModel mirrors the 'discount_products' enrollment table.
type DiscountProductModel struct {
	DiscountID uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProductID  uuid.UUID `gorm:"type:uuid;primaryKey;index"`
}

// TableName explicitly sets the table name for GORM.
func (DiscountProductModel) TableName() string {
	return "discount_products"
}

// DiscountBundleModel mirrors the 'discount_bundles' enrollment table.
type DiscountBundleModel struct {
	DiscountID uuid.UUID `gorm:"type:uuid;primaryKey"`
	BundleID   uuid.UUID `gorm:"type:uuid;primaryKey;index"`
}

// TableName explicitly sets the table name for GORM.
func (DiscountBundleModel) TableName() string {
	return "discount_bundles"
}
