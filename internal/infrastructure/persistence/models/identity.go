package models

import (
	"github.com/tabledash/backend/internal/domain/identity"
	"github.com/tabledash/backend/internal/domain/shared"
)

// AccountModel is the persistence model for the Account domain entity.
type AccountModel struct {
	BaseModel
	FirstName    string        `gorm:"type:varchar(50);not null"`
	LastName     string        `gorm:"type:varchar(50);not null"`
	Gender       string        `gorm:"type:varchar(10);not null"`
	Username     string        `gorm:"type:varchar(30);not null;uniqueIndex"`
	PasswordHash string        `gorm:"type:varchar(255);not null"`
	Role         identity.Role `gorm:"type:varchar(10);not null;default:'user'"`
}

// TableName returns the table name for GORM
func (AccountModel) TableName() string {
	return "admins"
}

// ToDomain converts the persistence model to a domain Account entity.
func (m *AccountModel) ToDomain() *identity.Account {
	return &identity.Account{
		BaseEntity: shared.BaseEntity{
			ID:        m.ID,
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		},
		FirstName:    m.FirstName,
		LastName:     m.LastName,
		Gender:       m.Gender,
		Username:     m.Username,
		PasswordHash: m.PasswordHash,
		Role:         m.Role,
	}
}

// FromDomain populates the persistence model from a domain Account entity.
func (m *AccountModel) FromDomain(a *identity.Account) {
	m.ID = a.ID
	m.CreatedAt = a.CreatedAt
	m.UpdatedAt = a.UpdatedAt
	m.FirstName = a.FirstName
	m.LastName = a.LastName
	m.Gender = a.Gender
	m.Username = a.Username
	m.PasswordHash = a.PasswordHash
	m.Role = a.Role
}

// AccountModelFromDomain creates a new persistence model from a domain Account entity.
func AccountModelFromDomain(a *identity.Account) *AccountModel {
	m := &AccountModel{}
	m.FromDomain(a)
	return m
}
