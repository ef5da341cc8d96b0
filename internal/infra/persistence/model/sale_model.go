package model

import (
	"time"

	"github.com/google/uuid"
)

// SaleModel mirrors the 'sales' table.
type SaleModel struct {
	ID                  uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name                string    `gorm:"type:varchar(255);not null"`
	Description         string    `gorm:"type:text"`
	StartDate           time.Time `gorm:"not null"`
	EndDate             time.Time `gorm:"not null"`
	SaleDiscountApplied float64   `gorm:"not null"`

	IsActive  bool      `gorm:"not null;default:true"`
	IsApplied bool      `gorm:"not null;default:false"`
	CreatedBy uuid.UUID `gorm:"type:uuid;not null"`

	CreatedAt time.Time
	UpdatedAt time.Time

	Categories       []SaleCategoryModel        `gorm:"foreignKey:SaleID"`
	AffectedProducts []SaleAffectedProductModel `gorm:"foreignKey:SaleID"`
	AffectedBundles  []SaleAffectedBundleModel  `gorm:"foreignKey:SaleID"`
}

// TableName explicitly sets the table name for GORM.
func (SaleModel) TableName() string {
	return "sales"
}

// SaleCategoryModel mirrors the 'sale_categories' scope table.
type SaleCategoryModel struct {
	SaleID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	CategoryID uuid.UUID `gorm:"type:uuid;primaryKey;index"`
}

// TableName explicitly sets the table name for GORM.
func (SaleCategoryModel) TableName() string {
	return "sale_categories"
}

// SaleAffectedProductModel mirrors the 'sale_affected_products' snapshot
// table. The name, MRP and final price are denormalized on purpose; the
// availability cascade patches is_unavailable across all sales.
type SaleAffectedProductModel struct {
	SaleID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProductID     uuid.UUID `gorm:"type:uuid;primaryKey;index"`
	ProductName   string    `gorm:"type:varchar(255);not null"`
	ProductMRP    float64   `gorm:"column:product_mrp;not null"`
	FinalPrice    float64   `gorm:"not null"`
	IsUnavailable bool      `gorm:"not null;default:false"`
}

// TableName explicitly sets the table name for GORM.
func (SaleAffectedProductModel) TableName() string {
	return "sale_affected_products"
}

// SaleAffectedBundleModel mirrors the 'sale_affected_bundles' snapshot table.
type SaleAffectedBundleModel struct {
	SaleID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	BundleID      uuid.UUID `gorm:"type:uuid;primaryKey;index"`
	BundleName    string    `gorm:"type:varchar(255);not null"`
	FinalPrice    float64   `gorm:"not null"`
	IsUnavailable bool      `gorm:"not null;default:false"`
}

// TableName explicitly sets the table name for GORM.
func (SaleAffectedBundleModel) TableName() string {
	return "sale_affected_bundles"
}
