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

// bundleRepository implements the repository.BundleRepository interface.
type bundleRepository struct {
	db *gorm.DB
}

// NewBundleRepository is the constructor for bundleRepository.
func NewBundleRepository(db *gorm.DB) repository.BundleRepository {
	return &bundleRepository{
		db: db,
	}
}

// CreateBundle persists a new bundle with its member list.
func (repo *bundleRepository) CreateBundle(ctx context.Context, bundle *entity.Bundle) error {
	bundleM := fromBundleDomain(bundle)

	if err := repo.db.WithContext(ctx).Create(bundleM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrProductNotFound
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "missing required bundle information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create bundle")
	}

	bundle.ID = bundleM.ID
	bundle.CreatedAt = bundleM.CreatedAt
	bundle.UpdatedAt = bundleM.UpdatedAt

	return nil
}

// FindByID retrieves a bundle with its member list by its unique ID.
func (repo *bundleRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Bundle, error) {
	var bundleM model.BundleModel

	if err := repo.db.WithContext(ctx).
		Preload("Items").
		Where("id = ?", id).
		First(&bundleM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBundleNotFound
		}

		return nil, errors.Wrap(err, "failed to find bundle by ID")
	}

	return toBundleDomain(&bundleM), nil
}

// FindByIDs retrieves all bundles matching the given IDs.
func (repo *bundleRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Bundle, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var bundleModels []*model.BundleModel
	if err := repo.db.WithContext(ctx).
		Preload("Items").
		Where("id IN ?", ids).
		Find(&bundleModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find bundles by IDs")
	}

	return toBundleDomainSlice(bundleModels), nil
}

// FindByMemberProduct retrieves every bundle whose member list contains the
// product.
func (repo *bundleRepository) FindByMemberProduct(ctx context.Context, productID uuid.UUID) ([]*entity.Bundle, error) {
	var bundleModels []*model.BundleModel

	if err := repo.db.WithContext(ctx).
		Preload("Items").
		Where("id IN (?)", repo.db.
			Model(&model.BundleItemModel{}).
			Select("bundle_id").
			Where("product_id = ?", productID)).
		Find(&bundleModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find bundles by member product")
	}

	return toBundleDomainSlice(bundleModels), nil
}

// FindByDiscount retrieves every bundle stamped with the discount ID.
func (repo *bundleRepository) FindByDiscount(ctx context.Context, discountID uuid.UUID) ([]*entity.Bundle, error) {
	var bundleModels []*model.BundleModel

	if err := repo.db.WithContext(ctx).
		Preload("Items").
		Where("discount_id = ?", discountID).
		Find(&bundleModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find bundles by discount")
	}

	return toBundleDomainSlice(bundleModels), nil
}

// FindBySale retrieves every bundle stamped with the sale ID.
func (repo *bundleRepository) FindBySale(ctx context.Context, saleID uuid.UUID) ([]*entity.Bundle, error) {
	var bundleModels []*model.BundleModel

	if err := repo.db.WithContext(ctx).
		Preload("Items").
		Where("sale_id = ?", saleID).
		Find(&bundleModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find bundles by sale")
	}

	return toBundleDomainSlice(bundleModels), nil
}

// List retrieves active bundles with search and pagination.
func (repo *bundleRepository) List(ctx context.Context, opts repository.ListOptions) ([]*entity.Bundle, int64, error) {
	query := repo.db.WithContext(ctx).
		Model(&model.BundleModel{}).
		Where("is_active = ?", true)
	query = applyListOptions(query, opts)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count bundles")
	}

	var bundleModels []*model.BundleModel
	if err := applyListPage(query, opts).Preload("Items").Find(&bundleModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list bundles")
	}

	return toBundleDomainSlice(bundleModels), total, nil
}

// Save persists the full bundle document. The bundle row and the member list
// are replaced together inside one transaction.
func (repo *bundleRepository) Save(ctx context.Context, bundle *entity.Bundle) error {
	bundleM := fromBundleDomain(bundle)
	items := bundleM.Items
	bundleM.Items = nil

	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(bundleM).Error; err != nil {
			return errors.Wrap(err, "failed to save bundle")
		}

		if err := tx.Where("bundle_id = ?", bundleM.ID).
			Delete(&model.BundleItemModel{}).Error; err != nil {
			return errors.Wrap(err, "failed to clear bundle members")
		}
		if len(items) > 0 {
			if err := tx.Create(&items).Error; err != nil {
				return errors.Wrap(err, "failed to save bundle members")
			}
		}

		return nil
	})
	if err != nil {
		return err
	}

	bundle.UpdatedAt = bundleM.UpdatedAt

	return nil
}

// ClearDiscount removes the discount stamp from every bundle carrying the
// given discount ID. Idempotent.
func (repo *bundleRepository) ClearDiscount(ctx context.Context, discountID uuid.UUID) (int64, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.BundleModel{}).
		Where("discount_id = ?", discountID).
		Updates(map[string]any{
			"discount_id":            nil,
			"admin_discount_applied": nil,
			"admin_discounted_price": nil,
		})

	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to clear discount from bundles")
	}

	return result.RowsAffected, nil
}

// ClearSale removes the sale stamp from every bundle carrying the given sale
// ID. Idempotent.
func (repo *bundleRepository) ClearSale(ctx context.Context, saleID uuid.UUID) (int64, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.BundleModel{}).
		Where("sale_id = ?", saleID).
		Updates(map[string]any{
			"sale_id":               nil,
			"sale_applied":          nil,
			"sale_discount_applied": nil,
			"final_price":           nil,
		})

	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to clear sale from bundles")
	}

	return result.RowsAffected, nil
}

// --- Mapper Functions ---

// toBundleDomain converts a GORM BundleModel to a domain Bundle entity.
func toBundleDomain(data *model.BundleModel) *entity.Bundle {
	if data == nil {
		return nil
	}

	items := make([]entity.BundleItem, 0, len(data.Items))
	for _, item := range data.Items {
		items = append(items, entity.BundleItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	return &entity.Bundle{
		ID:                   data.ID,
		AdminID:              data.AdminID,
		Name:                 data.Name,
		Description:          data.Description,
		Stock:                data.Stock,
		Products:             items,
		MRP:                  data.MRP,
		SellerDiscount:       data.SellerDiscount,
		SellerDiscounted:     data.SellerDiscounted,
		DiscountID:           data.DiscountID,
		AdminDiscountApplied: data.AdminDiscountApplied,
		AdminDiscountedPrice: data.AdminDiscountedPrice,
		SaleID:               data.SaleID,
		SaleApplied:          data.SaleApplied,
		SaleDiscountApplied:  data.SaleDiscountApplied,
		FinalPrice:           data.FinalPrice,
		IsActive:             data.IsActive,
		IsBlocked:            data.IsBlocked,
		IsUnavailable:        data.IsUnavailable,
		CreatedAt:            data.CreatedAt,
		UpdatedAt:            data.UpdatedAt,
	}
}

func toBundleDomainSlice(data []*model.BundleModel) []*entity.Bundle {
	bundles := make([]*entity.Bundle, 0, len(data))
	for _, bundleM := range data {
		bundles = append(bundles, toBundleDomain(bundleM))
	}

	return bundles
}

// fromBundleDomain converts a domain Bundle entity to a GORM BundleModel.
func fromBundleDomain(data *entity.Bundle) *model.BundleModel {
	if data == nil {
		return nil
	}

	items := make([]model.BundleItemModel, 0, len(data.Products))
	for _, item := range data.Products {
		items = append(items, model.BundleItemModel{
			BundleID:  data.ID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	return &model.BundleModel{
		ID:                   data.ID,
		AdminID:              data.AdminID,
		Name:                 data.Name,
		Description:          data.Description,
		Stock:                data.Stock,
		MRP:                  data.MRP,
		SellerDiscount:       data.SellerDiscount,
		SellerDiscounted:     data.SellerDiscounted,
		DiscountID:           data.DiscountID,
		AdminDiscountApplied: data.AdminDiscountApplied,
		AdminDiscountedPrice: data.AdminDiscountedPrice,
		SaleID:               data.SaleID,
		SaleApplied:          data.SaleApplied,
		SaleDiscountApplied:  data.SaleDiscountApplied,
		FinalPrice:           data.FinalPrice,
		IsActive:             data.IsActive,
		IsBlocked:            data.IsBlocked,
		IsUnavailable:        data.IsUnavailable,
		CreatedAt:            data.CreatedAt,
		UpdatedAt:            data.UpdatedAt,
		Items:                items,
	}
}
