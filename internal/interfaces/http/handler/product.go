package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	catalogapp "github.com/tabledash/backend/internal/application/catalog"
	"github.com/tabledash/backend/internal/interfaces/http/dto"
)

// ProductRequest is the create/update payload for a product. Numeric
// fields bind as JSON numbers and are converted to decimals inside
// the application layer.
type ProductRequest struct {
	Title              string  `json:"title" binding:"required,max=200"`
	Category           string  `json:"category" binding:"required"`
	Price              float64 `json:"price"`
	DiscountPercentage float64 `json:"discountPercentage"`
	Rating             float64 `json:"rating"`
	Stock              int     `json:"stock"`
	Brand              string  `json:"brand" binding:"required"`
}

// ProductResponse is the wire shape of a product
type ProductResponse struct {
	ID                 int64     `json:"id"`
	Title              string    `json:"title"`
	Category           string    `json:"category"`
	Price              float64   `json:"price"`
	DiscountPercentage float64   `json:"discountPercentage"`
	Rating             float64   `json:"rating"`
	Stock              int       `json:"stock"`
	Brand              string    `json:"brand"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

// NewProductResponse maps an application product view to the wire shape
func NewProductResponse(info catalogapp.ProductInfo) ProductResponse {
	return ProductResponse{
		ID:                 info.ID,
		Title:              info.Title,
		Category:           info.Category,
		Price:              info.Price.InexactFloat64(),
		DiscountPercentage: info.DiscountPercentage.InexactFloat64(),
		Rating:             info.Rating.InexactFloat64(),
		Stock:              info.Stock,
		Brand:              info.Brand,
		CreatedAt:          info.CreatedAt,
		UpdatedAt:          info.UpdatedAt,
	}
}

func productInput(req ProductRequest) catalogapp.ProductInput {
	return catalogapp.ProductInput{
		Title:              req.Title,
		Category:           req.Category,
		Price:              req.Price,
		DiscountPercentage: req.DiscountPercentage,
		Rating:             req.Rating,
		Stock:              req.Stock,
		Brand:              req.Brand,
	}
}

// ProductHandler handles the products collection
type ProductHandler struct {
	BaseHandler
	productService *catalogapp.ProductService
}

// NewProductHandler creates a new product handler
func NewProductHandler(productService *catalogapp.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// List returns one page of products
func (h *ProductHandler) List(c *gin.Context) {
	page, err := h.productService.List(c.Request.Context(), parseFilter(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	items := make([]ProductResponse, len(page.Items))
	for i, info := range page.Items {
		items[i] = NewProductResponse(info)
	}
	c.JSON(http.StatusOK, dto.NewPageResponse(page, items, "totalProducts"))
}

// Get returns a single product
func (h *ProductHandler) Get(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	info, err := h.productService.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, NewProductResponse(*info))
}

// Create adds a new product
func (h *ProductHandler) Create(c *gin.Context) {
	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Title, category and brand are required")
		return
	}

	info, err := h.productService.Create(c.Request.Context(), productInput(req))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, NewProductResponse(*info))
}

// Update replaces a product's fields
func (h *ProductHandler) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Title, category and brand are required")
		return
	}

	info, err := h.productService.Update(c.Request.Context(), id, productInput(req))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, NewProductResponse(*info))
}

// Delete removes a product
func (h *ProductHandler) Delete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	if err := h.productService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.Message(c, "Product deleted successfully")
}
