package postgres

import (
	"context"

	"backoffice/internal/domain/entity"
	domainerrors "backoffice/internal/domain/errors"
	"backoffice/internal/domain/repository"
	"backoffice/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// saleRepository implements the repository.SaleRepository interface.
type saleRepository struct {
	db *gorm.DB
}

// NewSaleRepository is the constructor for saleRepository.
func NewSaleRepository(db *gorm.DB) repository.SaleRepository {
	return &saleRepository{
		db: db,
	}
}

// CreateSale persists a new sale campaign with its category scope.
func (repo *saleRepository) CreateSale(ctx context.Context, sale *entity.Sale) error {
	saleM := fromSaleDomain(sale)

	if err := repo.db.WithContext(ctx).Create(saleM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "missing required sale information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create sale")
	}

	sale.ID = saleM.ID
	sale.CreatedAt = saleM.CreatedAt
	sale.UpdatedAt = saleM.UpdatedAt

	return nil
}

// FindByID retrieves a sale with its scope and affected snapshots.
func (repo *saleRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Sale, error) {
	var saleM model.SaleModel

	if err := repo.db.WithContext(ctx).
		Preload("Categories").
		Preload("AffectedProducts").
		Preload("AffectedBundles").
		Where("id = ?", id).
		First(&saleM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSaleNotFound
		}

		return nil, errors.Wrap(err, "failed to find sale by ID")
	}

	return toSaleDomain(&saleM), nil
}

// FindActive retrieves every non-soft-deleted sale for the sweep.
func (repo *saleRepository) FindActive(ctx context.Context) ([]*entity.Sale, error) {
	var saleModels []*model.SaleModel

	if err := repo.db.WithContext(ctx).
		Preload("Categories").
		Preload("AffectedProducts").
		Preload("AffectedBundles").
		Where("is_active = ?", true).
		Find(&saleModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find active sales")
	}

	sales := make([]*entity.Sale, 0, len(saleModels))
	for _, saleM := range saleModels {
		sales = append(sales, toSaleDomain(saleM))
	}

	return sales, nil
}

// List retrieves active sales with search and pagination.
func (repo *saleRepository) List(ctx context.Context, opts repository.ListOptions) ([]*entity.Sale, int64, error) {
	query := repo.db.WithContext(ctx).
		Model(&model.SaleModel{}).
		Where("is_active = ?", true)
	query = applyListOptions(query, opts)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count sales")
	}

	var saleModels []*model.SaleModel
	if err := applyListPage(query, opts).
		Preload("Categories").
		Preload("AffectedProducts").
		Preload("AffectedBundles").
		Find(&saleModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list sales")
	}

	sales := make([]*entity.Sale, 0, len(saleModels))
	for _, saleM := range saleModels {
		sales = append(sales, toSaleDomain(saleM))
	}

	return sales, total, nil
}

// Save persists the full sale document. The sale row, its category scope and
// its affected snapshots are replaced together inside one transaction.
func (repo *saleRepository) Save(ctx context.Context, sale *entity.Sale) error {
	saleM := fromSaleDomain(sale)
	categories := saleM.Categories
	affectedProducts := saleM.AffectedProducts
	affectedBundles := saleM.AffectedBundles
	saleM.Categories = nil
	saleM.AffectedProducts = nil
	saleM.AffectedBundles = nil

	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(saleM).Error; err != nil {
			return errors.Wrap(err, "failed to save sale")
		}

		if err := tx.Where("sale_id = ?", saleM.ID).
			Delete(&model.SaleCategoryModel{}).Error; err != nil {
			return errors.Wrap(err, "failed to clear sale categories")
		}
		if len(categories) > 0 {
			if err := tx.Create(&categories).Error; err != nil {
				return errors.Wrap(err, "failed to save sale categories")
			}
		}

		if err := tx.Where("sale_id = ?", saleM.ID).
			Delete(&model.SaleAffectedProductModel{}).Error; err != nil {
			return errors.Wrap(err, "failed to clear sale product snapshots")
		}
		if len(affectedProducts) > 0 {
			if err := tx.Create(&affectedProducts).Error; err != nil {
				return errors.Wrap(err, "failed to save sale product snapshots")
			}
		}

		if err := tx.Where("sale_id = ?", saleM.ID).
			Delete(&model.SaleAffectedBundleModel{}).Error; err != nil {
			return errors.Wrap(err, "failed to clear sale bundle snapshots")
		}
		if len(affectedBundles) > 0 {
			if err := tx.Create(&affectedBundles).Error; err != nil {
				return errors.Wrap(err, "failed to save sale bundle snapshots")
			}
		}

		return nil
	})
	if err != nil {
		return err
	}

	sale.UpdatedAt = saleM.UpdatedAt

	return nil
}

// SetAffectedProductAvailability flips the denormalized availability flag on
// every affected-product snapshot referencing the product, across all sales.
func (repo *saleRepository) SetAffectedProductAvailability(ctx context.Context, productID uuid.UUID, unavailable bool) (int64, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.SaleAffectedProductModel{}).
		Where("product_id = ?", productID).
		Update("is_unavailable", unavailable)

	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to patch sale product snapshots")
	}

	return result.RowsAffected, nil
}

// --- Mapper Functions ---

// toSaleDomain converts a GORM SaleModel to a domain Sale entity.
func toSaleDomain(data *model.SaleModel) *entity.Sale {
	if data == nil {
		return nil
	}

	categories := make([]uuid.UUID, 0, len(data.Categories))
	for _, c := range data.Categories {
		categories = append(categories, c.CategoryID)
	}

	affectedProducts := make([]entity.AffectedProduct, 0, len(data.AffectedProducts))
	for _, p := range data.AffectedProducts {
		affectedProducts = append(affectedProducts, entity.AffectedProduct{
			ProductID:     p.ProductID,
			ProductName:   p.ProductName,
			ProductMRP:    p.ProductMRP,
			FinalPrice:    p.FinalPrice,
			IsUnavailable: p.IsUnavailable,
		})
	}

	affectedBundles := make([]entity.AffectedBundle, 0, len(data.AffectedBundles))
	for _, b := range data.AffectedBundles {
		affectedBundles = append(affectedBundles, entity.AffectedBundle{
			BundleID:      b.BundleID,
			BundleName:    b.BundleName,
			FinalPrice:    b.FinalPrice,
			IsUnavailable: b.IsUnavailable,
		})
	}

	return &entity.Sale{
		ID:                  data.ID,
		Name:                data.Name,
		Description:         data.Description,
		StartDate:           data.StartDate,
		EndDate:             data.EndDate,
		Categories:          categories,
		SaleDiscountApplied: data.SaleDiscountApplied,
		AffectedProducts:    affectedProducts,
		AffectedBundles:     affectedBundles,
		IsActive:            data.IsActive,
		IsApplied:           data.IsApplied,
		CreatedBy:           data.CreatedBy,
		CreatedAt:           data.CreatedAt,
		UpdatedAt:           data.UpdatedAt,
	}
}

// fromSaleDomain converts a domain Sale entity to a GORM SaleModel.
func fromSaleDomain(data *entity.Sale) *model.SaleModel {
	if data == nil {
		return nil
	}

	categories := make([]model.SaleCategoryModel, 0, len(data.Categories))
	for _, id := range data.Categories {
		categories = append(categories, model.SaleCategoryModel{
			SaleID:     data.ID,
			CategoryID: id,
		})
	}

	affectedProducts := make([]model.SaleAffectedProductModel, 0, len(data.AffectedProducts))
	for _, p := range data.AffectedProducts {
		affectedProducts = append(affectedProducts, model.SaleAffectedProductModel{
			SaleID:        data.ID,
			ProductID:     p.ProductID,
			ProductName:   p.ProductName,
			ProductMRP:    p.ProductMRP,
			FinalPrice:    p.FinalPrice,
			IsUnavailable: p.IsUnavailable,
		})
	}

	affectedBundles := make([]model.SaleAffectedBundleModel, 0, len(data.AffectedBundles))
	for _, b := range data.AffectedBundles {
		affectedBundles = append(affectedBundles, model.SaleAffectedBundleModel{
			SaleID:        data.ID,
			BundleID:      b.BundleID,
			BundleName:    b.BundleName,
			FinalPrice:    b.FinalPrice,
			IsUnavailable: b.IsUnavailable,
		})
	}

	return &model.SaleModel{
		ID:                  data.ID,
		Name:                data.Name,
		Description:         data.Description,
		StartDate:           data.StartDate,
		EndDate:             data.EndDate,
		SaleDiscountApplied: data.SaleDiscountApplied,
		IsActive:            data.IsActive,
		IsApplied:           data.IsApplied,
		CreatedBy:           data.CreatedBy,
		CreatedAt:           data.CreatedAt,
		UpdatedAt:           data.UpdatedAt,
		Categories:          categories,
		AffectedProducts:    affectedProducts,
		AffectedBundles:     affectedBundles,
	}
}
