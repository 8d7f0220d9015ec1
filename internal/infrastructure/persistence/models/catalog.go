package models

import (
	"github.com/shopspring/decimal"
	"github.com/tabledash/backend/internal/domain/catalog"
	"github.com/tabledash/backend/internal/domain/shared"
)

// ProductModel is the persistence model for the Product entity.
type ProductModel struct {
	BaseModel
	Title              string          `gorm:"type:varchar(200);not null"`
	Category           string          `gorm:"type:varchar(100);not null;index"`
	Price              decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	DiscountPercentage decimal.Decimal `gorm:"type:numeric(5,2);not null"`
	Rating             decimal.Decimal `gorm:"type:numeric(3,2);not null"`
	Stock              int             `gorm:"not null"`
	Brand              string          `gorm:"type:varchar(100);not null"`
}

// TableName returns the table name for GORM
func (ProductModel) TableName() string {
	return "products"
}

// ToDomain converts the persistence model to a domain Product entity.
func (m *ProductModel) ToDomain() *catalog.Product {
	return &catalog.Product{
		BaseEntity: shared.BaseEntity{
			ID:        m.ID,
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		},
		Title:              m.Title,
		Category:           m.Category,
		Price:              m.Price,
		DiscountPercentage: m.DiscountPercentage,
		Rating:             m.Rating,
		Stock:              m.Stock,
		Brand:              m.Brand,
	}
}

// FromDomain populates the persistence model from a domain Product entity.
func (m *ProductModel) FromDomain(p *catalog.Product) {
	m.ID = p.ID
	m.CreatedAt = p.CreatedAt
	m.UpdatedAt = p.UpdatedAt
	m.Title = p.Title
	m.Category = p.Category
	m.Price = p.Price
	m.DiscountPercentage = p.DiscountPercentage
	m.Rating = p.Rating
	m.Stock = p.Stock
	m.Brand = p.Brand
}

// ProductModelFromDomain creates a new persistence model from a domain Product entity.
func ProductModelFromDomain(p *catalog.Product) *ProductModel {
	m := &ProductModel{}
	m.FromDomain(p)
	return m
}

// LocalProductModel is the persistence model for the LocalProduct entity.
type LocalProductModel struct {
	BaseModel
	Title              string          `gorm:"type:varchar(200);not null"`
	Category           string          `gorm:"type:varchar(100);not null;index"`
	Price              decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	DiscountPercentage decimal.Decimal `gorm:"type:numeric(5,2);not null"`
	Rating             decimal.Decimal `gorm:"type:numeric(3,2);not null"`
	Stock              int             `gorm:"not null"`
	Brand              string          `gorm:"type:varchar(100);not null"`
	Image              string          `gorm:"type:varchar(500)"`
}

// TableName returns the table name for GORM
func (LocalProductModel) TableName() string {
	return "local_products"
}

// ToDomain converts the persistence model to a domain LocalProduct entity.
func (m *LocalProductModel) ToDomain() *catalog.LocalProduct {
	return &catalog.LocalProduct{
		BaseEntity: shared.BaseEntity{
			ID:        m.ID,
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		},
		Title:              m.Title,
		Category:           m.Category,
		Price:              m.Price,
		DiscountPercentage: m.DiscountPercentage,
		Rating:             m.Rating,
		Stock:              m.Stock,
		Brand:              m.Brand,
		Image:              m.Image,
	}
}

// FromDomain populates the persistence model from a domain LocalProduct entity.
func (m *LocalProductModel) FromDomain(p *catalog.LocalProduct) {
	m.ID = p.ID
	m.CreatedAt = p.CreatedAt
	m.UpdatedAt = p.UpdatedAt
	m.Title = p.Title
	m.Category = p.Category
	m.Price = p.Price
	m.DiscountPercentage = p.DiscountPercentage
	m.Rating = p.Rating
	m.Stock = p.Stock
	m.Brand = p.Brand
	m.Image = p.Image
}

// LocalProductModelFromDomain creates a new persistence model from a domain LocalProduct entity.
func LocalProductModelFromDomain(p *catalog.LocalProduct) *LocalProductModel {
	m := &LocalProductModel{}
	m.FromDomain(p)
	return m
}
