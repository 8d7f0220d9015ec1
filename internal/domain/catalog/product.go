package catalog

import (
	"strings"

	"github.com/shopspring/decimal"
	"github.com/tabledash/backend/internal/domain/shared"
)

// Product is a catalog item sourced from the upstream product feed.
type Product struct {
	shared.BaseEntity
	Title              string
	Category           string
	Price              decimal.Decimal
	DiscountPercentage decimal.Decimal
	Rating             decimal.Decimal
	Stock              int
	Brand              string
}

// NewProduct creates a product, validating its field constraints.
func NewProduct(title, category, brand string, price, discount, rating decimal.Decimal, stock int) (*Product, error) {
	p := &Product{
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
func (p *Product) Validate() error {
	if problems := validateProductFields(p.Title, p.Category, p.Brand, p.Price, p.DiscountPercentage, p.Rating, p.Stock); len(problems) > 0 {
		return shared.NewDomainError("VALIDATION_ERROR", strings.Join(problems, ", "))
	}
	return nil
}

var hundred = decimal.NewFromInt(100)
var five = decimal.NewFromInt(5)

func validateProductFields(title, category, brand string, price, discount, rating decimal.Decimal, stock int) []string {
	var problems []string
	if title == "" || len(title) > 200 {
		problems = append(problems, "Title is required and cannot exceed 200 characters")
	}
	if category == "" {
		problems = append(problems, "Category is required")
	}
	if brand == "" {
		problems = append(problems, "Brand is required")
	}
	if price.IsNegative() {
		problems = append(problems, "Price cannot be negative")
	}
	if discount.IsNegative() || discount.GreaterThan(hundred) {
		problems = append(problems, "Discount percentage must be between 0 and 100")
	}
	if rating.IsNegative() || rating.GreaterThan(five) {
		problems = append(problems, "Rating must be between 0 and 5")
	}
	if stock < 0 {
		problems = append(problems, "Stock cannot be negative")
	}
	return problems
}
