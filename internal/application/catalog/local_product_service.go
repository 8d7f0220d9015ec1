package catalog

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/tabledash/backend/internal/domain/catalog"
	"github.com/tabledash/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// LocalProductService manages the local-products collection
type LocalProductService struct {
	productRepo catalog.LocalProductRepository
	logger      *zap.Logger
}

// NewLocalProductService creates a new local product service
func NewLocalProductService(productRepo catalog.LocalProductRepository, logger *zap.Logger) *LocalProductService {
	return &LocalProductService{
		productRepo: productRepo,
		logger:      logger,
	}
}

// List returns one page of local products matching the filter
func (s *LocalProductService) List(ctx context.Context, filter shared.Filter) (*shared.Paginated[LocalProductInfo], error) {
	products, total, err := s.productRepo.FindPage(ctx, filter)
	if err != nil {
		s.logger.Error("Failed to list local products", zap.Error(err))
		return nil, err
	}

	infos := make([]LocalProductInfo, len(products))
	for i := range products {
		infos[i] = NewLocalProductInfo(&products[i])
	}

	filter = filter.Normalize()
	page := shared.NewPaginated(infos, total, filter.Page, filter.Limit)
	return &page, nil
}

// Get returns a single local product by id
func (s *LocalProductService) Get(ctx context.Context, id int64) (*LocalProductInfo, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	info := NewLocalProductInfo(product)
	return &info, nil
}

// Create adds a new local product
func (s *LocalProductService) Create(ctx context.Context, input LocalProductInput) (*LocalProductInfo, error) {
	product, err := catalog.NewLocalProduct(
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
	if image := strings.TrimSpace(input.Image); image != "" {
		product.SetImage(image)
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}

	s.logger.Info("Local product created",
		zap.Int64("product_id", product.ID),
		zap.String("title", product.Title))

	info := NewLocalProductInfo(product)
	return &info, nil
}

// Update replaces a local product's fields
func (s *LocalProductService) Update(ctx context.Context, id int64, input LocalProductInput) (*LocalProductInfo, error) {
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
	product.Image = strings.TrimSpace(input.Image)
	if err := product.Validate(); err != nil {
		return nil, err
	}

	product.Touch()
	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}

	info := NewLocalProductInfo(product)
	return &info, nil
}

// Delete removes a local product by id
func (s *LocalProductService) Delete(ctx context.Context, id int64) error {
	if err := s.productRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("Local product deleted", zap.Int64("product_id", id))
	return nil
}
