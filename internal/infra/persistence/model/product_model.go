package model

import (
	"time"

	"github.com/google/uuid"
)

// ProductModel mirrors the 'products' table. The modifier layers are nullable
// columns; a NULL means the layer is not applied.
type ProductModel struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name        string     `gorm:"type:varchar(255);not null"`
	Description string     `gorm:"type:text"`
	Stock       int        `gorm:"not null;default:0"`
	MRP         float64    `gorm:"column:mrp;not null"`
	CategoryID  *uuid.UUID `gorm:"type:uuid;index"`
	SellerID    *uuid.UUID `gorm:"type:uuid;index"`

	SellerDiscountApplied *float64
	SellerDiscounted      *float64

	DiscountID           *uuid.UUID `gorm:"type:uuid;index"`
	AdminDiscountApplied *float64
	AdminDiscountedPrice *float64

	SaleID              *uuid.UUID `gorm:"type:uuid;index"`
	SaleApplied         *bool
	SaleDiscountApplied *float64
	FinalePrice         *float64

	IsActive      bool `gorm:"not null;default:true"`
	IsBlocked     bool `gorm:"not null;default:false"`
	IsUnavailable bool `gorm:"not null;default:false"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}
