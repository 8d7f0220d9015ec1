package catalog

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/tabledash/backend/internal/domain/catalog"
	"github.com/tabledash/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// ProductService manages the products collection
type ProductService struct {
	productRepo catalog.ProductRepository
	logger      *zap.Logger
}

// NewProductService creates a new product service
func NewProductService(productRepo catalog.ProductRepository, logger *zap.Logger) *ProductService {
	return &ProductService{
		productRepo: productRepo,
		logger:      logger,
	}
}

// List returns one page of products matching the filter
func (s *ProductService) List(ctx context.Context, filter shared.Filter) (*shared.Paginated[ProductInfo], error) {
	products, total, err := s.productRepo.FindPage(ctx, filter)
	if err != nil {
		s.logger.Error("Failed to list products", zap.Error(err))
		return nil, err
	}

	infos := make([]ProductInfo, len(products))
	for i := range products {
		infos[i] = NewProductInfo(&products[i])
	}

	filter = filter.Normalize()
	page := shared.NewPaginated(infos, total, filter.Page, filter.Limit)
	return &page, nil
}

// Get returns a single product by id
func (s *ProductService) Get(ctx context.Context, id int64) (*ProductInfo, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	info := NewProductInfo(product)
	return &info, nil
}

// Create adds a new product
func (s *ProductService) Create(ctx context.Context, input ProductInput) (*ProductInfo, error) {
	product, err := catalog.NewProduct(
		input.Title,
		input.Category,
		input.Brand,
		decimal.NewFromFloat(input.Price),
		decimal.NewFromFloat(input.DiscountPercentage),
		decimal.NewFromFloat(input.Rating),
		input.Stock,
	)
	if err != nil {
		return nil, err
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}

	s.logger.Info("Product created",
		zap.Int64("product_id", product.ID),
		zap.String("title", product.Title))

	info := NewProductInfo(product)
	return &info, nil
}

// Update replaces a product's fields
func (s *ProductService) Update(ctx context.Context, id int64, input ProductInput) (*ProductInfo, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	product.Title = strings.TrimSpace(input.Title)
	product.Category = strings.TrimSpace(input.Category)
	product.Brand = strings.TrimSpace(input.Brand)
	product.Price = decimal.NewFromFloat(input.Price)
	product.DiscountPercentage = decimal.NewFromFloat(input.DiscountPercentage)
	product.Rating = decimal.NewFromFloat(input.Rating)
	product.Stock = input.Stock
	if err := product.Validate(); err != nil {
		return nil, err
	}

	product.Touch()
	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}

	info := NewProductInfo(product)
	return &info, nil
}

// Delete removes a product by id
func (s *ProductService) Delete(ctx context.Context, id int64) error {
	if err := s.productRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("Product deleted", zap.Int64("product_id", id))
	return nil
}
