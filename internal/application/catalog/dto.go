package catalog

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/tabledash/backend/internal/domain/catalog"
)

// ProductInput contains the writable fields of a product. The same
// shape serves create and update. Numeric fields arrive as float64
// from JSON and are converted to decimals at the boundary.
type ProductInput struct {
	Title              string
	Category           string
	Price              float64
	DiscountPercentage float64
	Rating             float64
	Stock              int
	Brand              string
}

// LocalProductInput contains the writable fields of a local product
type LocalProductInput struct {
	Title              string
	Category           string
	Price              float64
	DiscountPercentage float64
	Rating             float64
	Stock              int
	Brand              string
	Image              string
}

// ProductInfo is the client-facing view of a product
type ProductInfo struct {
	ID                 int64
	Title              string
	Category           string
	Price              decimal.Decimal
	DiscountPercentage decimal.Decimal
	Rating             decimal.Decimal
	Stock              int
	Brand              string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// LocalProductInfo is the client-facing view of a local product
type LocalProductInfo struct {
	ID                 int64
	Title              string
	Category           string
	Price              decimal.Decimal
	DiscountPercentage decimal.Decimal
	Rating             decimal.Decimal
	Stock              int
	Brand              string
	Image              string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// NewProductInfo maps a domain product to its client-facing view
func NewProductInfo(p *catalog.Product) ProductInfo {
	return ProductInfo{
		ID:                 p.ID,
		Title:              p.Title,
		Category:           p.Category,
		Price:              p.Price,
		DiscountPercentage: p.DiscountPercentage,
		Rating:             p.Rating,
		Stock:              p.Stock,
		Brand:              p.Brand,
		CreatedAt:          p.CreatedAt,
		UpdatedAt:          p.UpdatedAt,
	}
}

// NewLocalProductInfo maps a domain local product to its client-facing view
func NewLocalProductInfo(p *catalog.LocalProduct) LocalProductInfo {
	return LocalProductInfo{
		ID:                 p.ID,
		Title:              p.Title,
		Category:           p.Category,
		Price:              p.Price,
		DiscountPercentage: p.DiscountPercentage,
		Rating:             p.Rating,
		Stock:              p.Stock,
		Brand:              p.Brand,
		Image:              p.Image,
		CreatedAt:          p.CreatedAt,
		UpdatedAt:          p.UpdatedAt,
	}
}
