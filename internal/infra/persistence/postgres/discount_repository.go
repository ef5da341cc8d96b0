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

// discountRepository implements the repository.DiscountRepository interface.
type discountRepository struct {
	db *gorm.DB
}

// NewDiscountRepository is the constructor for discountRepository.
func NewDiscountRepository(db *gorm.DB) repository.DiscountRepository {
	return &discountRepository{
		db: db,
	}
}

// CreateDiscount persists a new discount modifier.
func (repo *discountRepository) CreateDiscount(ctx context.Context, discount *entity.Discount) error {
	discountM := fromDiscountDomain(discount)

	if err := repo.db.WithContext(ctx).Create(discountM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "missing required discount information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create discount")
	}

	discount.ID = discountM.ID
	discount.CreatedAt = discountM.CreatedAt
	discount.UpdatedAt = discountM.UpdatedAt

	return nil
}

// FindByID retrieves a discount with its enrollment sets by its unique ID.
func (repo *discountRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Discount, error) {
	var discountM model.DiscountModel

	if err := repo.db.WithContext(ctx).
		Preload("Products").
		Preload("Bundles").
		Where("id = ?", id).
		First(&discountM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDiscountNotFound
		}

		return nil, errors.Wrap(err, "failed to find discount by ID")
	}

	return toDiscountDomain(&discountM), nil
}

// FindActive retrieves every non-soft-deleted discount for the sweep.
func (repo *discountRepository) FindActive(ctx context.Context) ([]*entity.Discount, error) {
	var discountModels []*model.DiscountModel

	if err := repo.db.WithContext(ctx).
		Preload("Products").
		Preload("Bundles").
		Where("is_active = ?", true).
		Find(&discountModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find active discounts")
	}

	discounts := make([]*entity.Discount, 0, len(discountModels))
	for _, discountM := range discountModels {
		discounts = append(discounts, toDiscountDomain(discountM))
	}

	return discounts, nil
}

// List retrieves active discounts with search and pagination. Discounts have
// no name column; search matches the description.
func (repo *discountRepository) List(ctx context.Context, opts repository.ListOptions) ([]*entity.Discount, int64, error) {
	query := repo.db.WithContext(ctx).
		Model(&model.DiscountModel{}).
		Where("is_active = ?", true)
	if opts.Search != "" {
		query = query.Where("description ILIKE ?", "%"+opts.Search+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count discounts")
	}

	var discountModels []*model.DiscountModel
	if err := applyListPage(query, opts).
		Preload("Products").
		Preload("Bundles").
		Find(&discountModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list discounts")
	}

	discounts := make([]*entity.Discount, 0, len(discountModels))
	for _, discountM := range discountModels {
		discounts = append(discounts, toDiscountDomain(discountM))
	}

	return discounts, total, nil
}

// Save persists the full discount document. The discount row and its
// enrollment sets are replaced together inside one transaction.
func (repo *discountRepository) Save(ctx context.Context, discount *entity.Discount) error {
	discountM := fromDiscountDomain(discount)
	products := discountM.Products
	bundles := discountM.Bundles
	discountM.Products = nil
	discountM.Bundles = nil

	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(discountM).Error; err != nil {
			return errors.Wrap(err, "failed to save discount")
		}

		if err := tx.Where("discount_id = ?", discountM.ID).
			Delete(&model.DiscountProductModel{}).Error; err != nil {
			return errors.Wrap(err, "failed to clear discount product enrollment")
		}
		if len(products) > 0 {
			if err := tx.Create(&products).Error; err != nil {
				return errors.Wrap(err, "failed to save discount product enrollment")
			}
		}

		if err := tx.Where("discount_id = ?", discountM.ID).
			Delete(&model.DiscountBundleModel{}).Error; err != nil {
			return errors.Wrap(err, "failed to clear discount bundle enrollment")
		}
		if len(bundles) > 0 {
			if err := tx.Create(&bundles).Error; err != nil {
				return errors.Wrap(err, "failed to save discount bundle enrollment")
			}
		}

		return nil
	})
	if err != nil {
		return err
	}

	discount.UpdatedAt = discountM.UpdatedAt

	return nil
}

// --- Mapper Functions ---

// toDiscountDomain converts a GORM DiscountModel to a domain Discount entity.
func toDiscountDomain(data *model.DiscountModel) *entity.Discount {
	if data == nil {
		return nil
	}

	products := make([]uuid.UUID, 0, len(data.Products))
	for _, p := range data.Products {
		products = append(products, p.ProductID)
	}
	bundles := make([]uuid.UUID, 0, len(data.Bundles))
	for _, b := range data.Bundles {
		bundles = append(bundles, b.BundleID)
	}

	return &entity.Discount{
		ID:            data.ID,
		AdminID:       data.AdminID,
		AdminDiscount: data.AdminDiscount,
		Type:          entity.DiscountType(data.Type),
		Description:   data.Description,
		StartDate:     data.StartDate,
		EndDate:       data.EndDate,
		Products:      products,
		Bundles:       bundles,
		IsActive:      data.IsActive,
		IsApplied:     data.IsApplied,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

// fromDiscountDomain converts a domain Discount entity to a GORM DiscountModel.
func fromDiscountDomain(data *entity.Discount) *model.DiscountModel {
	if data == nil {
		return nil
	}

	products := make([]model.DiscountProductModel, 0, len(data.Products))
	for _, id := range data.Products {
		products = append(products, model.DiscountProductModel{
			DiscountID: data.ID,
			ProductID:  id,
		})
	}
	bundles := make([]model.DiscountBundleModel, 0, len(data.Bundles))
	for _, id := range data.Bundles {
		bundles = append(bundles, model.DiscountBundleModel{
			DiscountID: data.ID,
			BundleID:   id,
		})
	}

	return &model.DiscountModel{
		ID:            data.ID,
		AdminID:       data.AdminID,
		AdminDiscount: data.AdminDiscount,
		Type:          string(data.Type),
		Description:   data.Description,
		StartDate:     data.StartDate,
		EndDate:       data.EndDate,
		IsActive:      data.IsActive,
		IsApplied:     data.IsApplied,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
		Products:      products,
		Bundles:       bundles,
	}
}
