package persistence

import (
	"context"
	"errors"

	"github.com/tabledash/backend/internal/domain/directory"
	"github.com/tabledash/backend/internal/domain/shared"
	"github.com/tabledash/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormUserRepository implements directory.UserRepository using GORM
type GormUserRepository struct {
	db *gorm.DB
}

// NewGormUserRepository creates a new GormUserRepository
func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

// FindByID finds a user by its ID
func (r *GormUserRepository) FindByID(ctx context.Context, id int64) (*directory.User, error) {
	var model models.UserModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByEmail finds a user by its unique email
func (r *GormUserRepository) FindByEmail(ctx context.Context, email string) (*directory.User, error) {
	var model models.UserModel
	if err := r.db.WithContext(ctx).First(&model, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindPage returns one id-ordered page of users matching the filter
// along with the total count of matches.
func (r *GormUserRepository) FindPage(ctx context.Context, filter shared.Filter) ([]directory.User, int64, error) {
	filter = filter.Normalize()
	query := r.db.WithContext(ctx).Model(&models.UserModel{})
	if filter.Search != "" {
		pattern := likePattern(filter.Search)
		query = query.Where("first_name ILIKE ? OR last_name ILIKE ? OR email ILIKE ? OR birth_date ILIKE ?",
			pattern, pattern, pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var userModels []models.UserModel
	if err := query.Order("id ASC").Offset(filter.Offset()).Limit(filter.Limit).Find(&userModels).Error; err != nil {
		return nil, 0, err
	}

	users := make([]directory.User, len(userModels))
	for i, model := range userModels {
		users[i] = *model.ToDomain()
	}
	return users, total, nil
}

// Create persists a new user, allocating its id from the users counter
// inside the insert transaction.
func (r *GormUserRepository) Create(ctx context.Context, user *directory.User) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		id, err := NewSequenceAllocator(tx).Next(ctx, SeqUsers)
		if err != nil {
			return err
		}
		user.ID = id

		model := models.UserModelFromDomain(user)
		if err := tx.Create(model).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return shared.NewDomainError("ALREADY_EXISTS", "Email already exists")
			}
			return err
		}
		return nil
	})
}

// Update persists changes to an existing user
func (r *GormUserRepository) Update(ctx context.Context, user *directory.User) error {
	model := models.UserModelFromDomain(user)
	result := r.db.WithContext(ctx).Model(&models.UserModel{}).
		Where("id = ?", user.ID).
		Select("*").Omit("id", "created_at").
		Updates(model)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return shared.NewDomainError("ALREADY_EXISTS", "Email already exists")
		}
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Delete removes a user by id
func (r *GormUserRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&models.UserModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}
