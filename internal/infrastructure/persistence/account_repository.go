package persistence

import (
	"context"
	"errors"

	"github.com/tabledash/backend/internal/domain/identity"
	"github.com/tabledash/backend/internal/domain/shared"
	"github.com/tabledash/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormAccountRepository implements identity.AccountRepository using GORM
type GormAccountRepository struct {
	db *gorm.DB
}

// NewGormAccountRepository creates a new GormAccountRepository
func NewGormAccountRepository(db *gorm.DB) *GormAccountRepository {
	return &GormAccountRepository{db: db}
}

// FindByID finds an account by its ID
func (r *GormAccountRepository) FindByID(ctx context.Context, id int64) (*identity.Account, error) {
	var model models.AccountModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByUsername finds an account by its unique username
func (r *GormAccountRepository) FindByUsername(ctx context.Context, username string) (*identity.Account, error) {
	var model models.AccountModel
	if err := r.db.WithContext(ctx).First(&model, "username = ?", username).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindPage returns one id-ordered page of accounts matching the filter
// along with the total count of matches.
func (r *GormAccountRepository) FindPage(ctx context.Context, filter shared.Filter) ([]identity.Account, int64, error) {
	filter = filter.Normalize()
	query := r.db.WithContext(ctx).Model(&models.AccountModel{})
	if filter.Search != "" {
		pattern := likePattern(filter.Search)
		query = query.Where("first_name ILIKE ? OR last_name ILIKE ? OR username ILIKE ?",
			pattern, pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var accountModels []models.AccountModel
	if err := query.Order("id ASC").Offset(filter.Offset()).Limit(filter.Limit).Find(&accountModels).Error; err != nil {
		return nil, 0, err
	}

	accounts := make([]identity.Account, len(accountModels))
	for i, model := range accountModels {
		accounts[i] = *model.ToDomain()
	}
	return accounts, total, nil
}

// Create persists a new account, allocating its id from the admins
// counter inside the insert transaction.
func (r *GormAccountRepository) Create(ctx context.Context, account *identity.Account) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		id, err := NewSequenceAllocator(tx).Next(ctx, SeqAdmins)
		if err != nil {
			return err
		}
		account.ID = id

		model := models.AccountModelFromDomain(account)
		if err := tx.Create(model).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return shared.NewDomainError("ALREADY_EXISTS", "Username already exists")
			}
			return err
		}
		return nil
	})
}

// Update persists changes to an existing account
func (r *GormAccountRepository) Update(ctx context.Context, account *identity.Account) error {
	model := models.AccountModelFromDomain(account)
	result := r.db.WithContext(ctx).Model(&models.AccountModel{}).
		Where("id = ?", account.ID).
		Select("*").Omit("id", "created_at").
		Updates(model)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return shared.NewDomainError("ALREADY_EXISTS", "Username already exists")
		}
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Delete removes an account by id
func (r *GormAccountRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&models.AccountModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}
