// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"backoffice/internal/domain/entity"
	"backoffice/internal/domain/repository"
	"backoffice/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// productRepository implements the repository.ProductRepository interface.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{
		db: db,
	}
}

// FindByID retrieves a product by its unique ID.
func (repo *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var productM model.ProductModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&productM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by ID")
	}

	return toProductDomain(&productM), nil
}

// FindByIDs retrieves all products matching the given IDs. Missing IDs are
// not an error; callers diff the result against the request.
func (repo *productRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Product, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var productModels []*model.ProductModel
	if err := repo.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find products by IDs")
	}

	return toProductDomainSlice(productModels), nil
}

// FindByDiscount retrieves every product stamped with the discount ID.
func (repo *productRepository) FindByDiscount(ctx context.Context, discountID uuid.UUID) ([]*entity.Product, error) {
	var productModels []*model.ProductModel

	if err := repo.db.WithContext(ctx).
		Where("discount_id = ?", discountID).
		Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find products by discount")
	}

	return toProductDomainSlice(productModels), nil
}

// FindBySale retrieves every product stamped with the sale ID.
func (repo *productRepository) FindBySale(ctx context.Context, saleID uuid.UUID) ([]*entity.Product, error) {
	var productModels []*model.ProductModel

	if err := repo.db.WithContext(ctx).
		Where("sale_id = ?", saleID).
		Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find products by sale")
	}

	return toProductDomainSlice(productModels), nil
}

// FindByCategoryAndSale retrieves products in a category stamped with the sale ID.
func (repo *productRepository) FindByCategoryAndSale(ctx context.Context, categoryID, saleID uuid.UUID) ([]*entity.Product, error) {
	var productModels []*model.ProductModel

	if err := repo.db.WithContext(ctx).
		Where("category_id = ? AND sale_id = ?", categoryID, saleID).
		Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find products by category and sale")
	}

	return toProductDomainSlice(productModels), nil
}

// List retrieves active products with search and pagination.
func (repo *productRepository) List(ctx context.Context, opts repository.ListOptions) ([]*entity.Product, int64, error) {
	query := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("is_active = ?", true)
	query = applyListOptions(query, opts)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count products")
	}

	var productModels []*model.ProductModel
	if err := applyListPage(query, opts).Find(&productModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list products")
	}

	return toProductDomainSlice(productModels), total, nil
}

// Save persists the full product document.
func (repo *productRepository) Save(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	if err := repo.db.WithContext(ctx).Save(productM).Error; err != nil {
		return errors.Wrap(err, "failed to save product")
	}

	product.UpdatedAt = productM.UpdatedAt

	return nil
}

// ClearDiscount removes the discount stamp from every product carrying the
// given discount ID. Idempotent.
func (repo *productRepository) ClearDiscount(ctx context.Context, discountID uuid.UUID) (int64, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("discount_id = ?", discountID).
		Updates(map[string]any{
			"discount_id":            nil,
			"admin_discount_applied": nil,
			"admin_discounted_price": nil,
		})

	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to clear discount from products")
	}

	return result.RowsAffected, nil
}

// ClearSale removes the sale stamp from every product carrying the given
// sale ID. Idempotent.
func (repo *productRepository) ClearSale(ctx context.Context, saleID uuid.UUID) (int64, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("sale_id = ?", saleID).
		Updates(map[string]any{
			"sale_id":               nil,
			"sale_applied":          nil,
			"sale_discount_applied": nil,
			"finale_price":          nil,
		})

	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to clear sale from products")
	}

	return result.RowsAffected, nil
}

// ClearCategory severs the category link from every product referencing the
// given category.
func (repo *productRepository) ClearCategory(ctx context.Context, categoryID uuid.UUID) (int64, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("category_id = ?", categoryID).
		Update("category_id", nil)

	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to clear category from products")
	}

	return result.RowsAffected, nil
}

// --- Mapper Functions ---

// toProductDomain converts a GORM ProductModel to a domain Product entity.
func toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	return &entity.Product{
		ID:                    data.ID,
		Name:                  data.Name,
		Description:           data.Description,
		Stock:                 data.Stock,
		MRP:                   data.MRP,
		CategoryID:            data.CategoryID,
		SellerID:              data.SellerID,
		SellerDiscountApplied: data.SellerDiscountApplied,
		SellerDiscounted:      data.SellerDiscounted,
		DiscountID:            data.DiscountID,
		AdminDiscountApplied:  data.AdminDiscountApplied,
		AdminDiscountedPrice:  data.AdminDiscountedPrice,
		SaleID:                data.SaleID,
		SaleApplied:           data.SaleApplied,
		SaleDiscountApplied:   data.SaleDiscountApplied,
		FinalePrice:           data.FinalePrice,
		IsActive:              data.IsActive,
		IsBlocked:             data.IsBlocked,
		IsUnavailable:         data.IsUnavailable,
		CreatedAt:             data.CreatedAt,
		UpdatedAt:             data.UpdatedAt,
	}
}

func toProductDomainSlice(data []*model.ProductModel) []*entity.Product {
	products := make([]*entity.Product, 0, len(data))
	for _, productM := range data {
		products = append(products, toProductDomain(productM))
	}

	return products
}

// fromProductDomain converts a domain Product entity to a GORM ProductModel.
func fromProductDomain(data *entity.Product) *model.ProductModel {
	if data == nil {
		return nil
	}

	return &model.ProductModel{
		ID:                    data.ID,
		Name:                  data.Name,
		Description:           data.Description,
		Stock:                 data.Stock,
		MRP:                   data.MRP,
		CategoryID:            data.CategoryID,
		SellerID:              data.SellerID,
		SellerDiscountApplied: data.SellerDiscountApplied,
		SellerDiscounted:      data.SellerDiscounted,
		DiscountID:            data.DiscountID,
		AdminDiscountApplied:  data.AdminDiscountApplied,
		AdminDiscountedPrice:  data.AdminDiscountedPrice,
		SaleID:                data.SaleID,
		SaleApplied:           data.SaleApplied,
		SaleDiscountApplied:   data.SaleDiscountApplied,
		FinalePrice:           data.FinalePrice,
		IsActive:              data.IsActive,
		IsBlocked:             data.IsBlocked,
		IsUnavailable:         data.IsUnavailable,
		CreatedAt:             data.CreatedAt,
		UpdatedAt:             data.UpdatedAt,
	}
}
