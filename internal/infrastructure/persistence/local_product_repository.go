package persistence

import (
	"context"
	"errors"

	"github.com/tabledash/backend/internal/domain/catalog"
	"github.com/tabledash/backend/internal/domain/shared"
	"github.com/tabledash/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormLocalProductRepository implements catalog.LocalProductRepository using GORM
type GormLocalProductRepository struct {
	db *gorm.DB
}

// NewGormLocalProductRepository creates a new GormLocalProductRepository
func NewGormLocalProductRepository(db *gorm.DB) *GormLocalProductRepository {
	return &GormLocalProductRepository{db: db}
}

// FindByID finds a local product by its ID
func (r *GormLocalProductRepository) FindByID(ctx context.Context, id int64) (*catalog.LocalProduct, error) {
	var model models.LocalProductModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindPage returns one id-ordered page of local products matching the
// filter along with the total count of matches
func (r *GormLocalProductRepository) FindPage(ctx context.Context, filter shared.Filter) ([]catalog.LocalProduct, int64, error) {
	filter = filter.Normalize()
	query := r.db.WithContext(ctx).Model(&models.LocalProductModel{})
	if filter.Search != "" {
		pattern := likePattern(filter.Search)
		query = query.Where("title ILIKE ? OR brand ILIKE ?", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var productModels []models.LocalProductModel
	if err := query.Order("id ASC").Offset(filter.Offset()).Limit(filter.Limit).Find(&productModels).Error; err != nil {
		return nil, 0, err
	}

	products := make([]catalog.LocalProduct, len(productModels))
	for i, model := range productModels {
		products[i] = *model.ToDomain()
	}
	return products, total, nil
}

// Create persists a new local product with a counter-allocated id
func (r *GormLocalProductRepository) Create(ctx context.Context, product *catalog.LocalProduct) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		id, err := NewSequenceAllocator(tx).Next(ctx, SeqLocalProducts)
		if err != nil {
			return err
		}
		product.ID = id
		return tx.Create(models.LocalProductModelFromDomain(product)).Error
	})
}

// Update persists changes to an existing local product
func (r *GormLocalProductRepository) Update(ctx context.Context, product *catalog.LocalProduct) error {
	model := models.LocalProductModelFromDomain(product)
	result := r.db.WithContext(ctx).Model(&models.LocalProductModel{}).
		Where("id = ?", product.ID).
		Select("*").Omit("id", "created_at").
		Updates(model)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Delete removes a local product by id
func (r *GormLocalProductRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&models.LocalProductModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}
