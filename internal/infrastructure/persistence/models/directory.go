package models

import (
	"github.com/tabledash/backend/internal/domain/directory"
	"github.com/tabledash/backend/internal/domain/shared"
)

// UserModel is the persistence model for the directory User entity.
type UserModel struct {
	BaseModel
	FirstName    string `gorm:"type:varchar(50);not null"`
	LastName     string `gorm:"type:varchar(50);not null"`
	Gender       string `gorm:"type:varchar(10);not null"`
	Email        string `gorm:"type:varchar(200);not null;uniqueIndex"`
	BirthDate    string `gorm:"type:varchar(20);not null"`
	ProfileImage string `gorm:"type:varchar(500)"`
}

// TableName returns the table name for GORM
func (UserModel) TableName() string {
	return "users"
}

// ToDomain converts the persistence model to a domain User entity.
func (m *UserModel) ToDomain() *directory.User {
	return &directory.User{
		BaseEntity: shared.BaseEntity{
			ID:        m.ID,
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		},
		FirstName:    m.FirstName,
		LastName:     m.LastName,
		Gender:       m.Gender,
		Email:        m.Email,
		BirthDate:    m.BirthDate,
		ProfileImage: m.ProfileImage,
	}
}

// FromDomain populates the persistence model from a domain User entity.
func (m *UserModel) FromDomain(u *directory.User) {
	m.ID = u.ID
	m.CreatedAt = u.CreatedAt
	m.UpdatedAt = u.UpdatedAt
	m.FirstName = u.FirstName
	m.LastName = u.LastName
	m.Gender = u.Gender
	m.Email = u.Email
	m.BirthDate = u.BirthDate
	m.ProfileImage = u.ProfileImage
}

// UserModelFromDomain creates a new persistence model from a domain User entity.
func UserModelFromDomain(u *directory.User) *UserModel {
	m := &UserModel{}
	m.FromDomain(u)
	return m
}
