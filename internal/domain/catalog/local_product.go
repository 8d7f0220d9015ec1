package catalog

import (
	"strings"

	"github.com/shopspring/decimal"
	"github.com/tabledash/backend/internal/domain/shared"
)

// LocalProduct is a catalog item maintained locally by operators. It
// shares the product field set and may carry a stored image URL.
type LocalProduct struct {
	shared.BaseEntity
	Title              string
	Category           string
	Price              decimal.Decimal
	DiscountPercentage decimal.Decimal
	Rating             decimal.Decimal
	Stock              int
	Brand              string
	Image              string
}

// NewLocalProduct creates a local product, validating its field constraints.
func NewLocalProduct(title, category, brand string, price, discount, rating decimal.Decimal, stock int) (*LocalProduct, error) {
	p := &LocalProduct{
		BaseEntity:         shared.NewBaseEntity(),
		Title:              strings.TrimSpace(title),
		Category:           strings.TrimSpace(category),
		Brand:              strings.TrimSpace(brand),
		Price:              price,
		DiscountPercentage: discount,
		Rating:             rating,
		Stock:              stock,
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// Validate checks field constraints, aggregating every violated rule.
func (p *LocalProduct) Validate() error {
	if problems := validateProductFields(p.Title, p.Category, p.Brand, p.Price, p.DiscountPercentage, p.Rating, p.Stock); len(problems) > 0 {
		return shared.NewDomainError("VALIDATION_ERROR", strings.Join(problems, ", "))
	}
	return nil
}

// SetImage records the stored image URL.
func (p *LocalProduct) SetImage(url string) {
	p.Image = url
	p.Touch()
}
