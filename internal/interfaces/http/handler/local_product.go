package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	catalogapp "github.com/tabledash/backend/internal/application/catalog"
	"github.com/tabledash/backend/internal/interfaces/http/dto"
)

// LocalProductRequest is the create/update payload for a local product
type LocalProductRequest struct {
	Title              string  `json:"title" binding:"required,max=200"`
	Category           string  `json:"category" binding:"required"`
	Price              float64 `json:"price"`
	DiscountPercentage float64 `json:"discountPercentage"`
	Rating             float64 `json:"rating"`
	Stock              int     `json:"stock"`
	Brand              string  `json:"brand" binding:"required"`
	Image              string  `json:"image" binding:"omitempty,url"`
}

// LocalProductResponse is the wire shape of a local product
type LocalProductResponse struct {
	ID                 int64     `json:"id"`
	Title              string    `json:"title"`
	Category           string    `json:"category"`
	Price              float64   `json:"price"`
	DiscountPercentage float64   `json:"discountPercentage"`
	Rating             float64   `json:"rating"`
	Stock              int       `json:"stock"`
	Brand              string    `json:"brand"`
	Image              string    `json:"image,omitempty"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

// NewLocalProductResponse maps an application view to the wire shape
func NewLocalProductResponse(info catalogapp.LocalProductInfo) LocalProductResponse {
	return LocalProductResponse{
		ID:                 info.ID,
		Title:              info.Title,
		Category:           info.Category,
		Price:              info.Price.InexactFloat64(),
		DiscountPercentage: info.DiscountPercentage.InexactFloat64(),
		Rating:             info.Rating.InexactFloat64(),
		Stock:              info.Stock,
		Brand:              info.Brand,
		Image:              info.Image,
		CreatedAt:          info.CreatedAt,
		UpdatedAt:          info.UpdatedAt,
	}
}

func localProductInput(req LocalProductRequest) catalogapp.LocalProductInput {
	return catalogapp.LocalProductInput{
		Title:              req.Title,
		Category:           req.Category,
		Price:              req.Price,
		DiscountPercentage: req.DiscountPercentage,
		Rating:             req.Rating,
		Stock:              req.Stock,
		Brand:              req.Brand,
		Image:              req.Image,
	}
}

// LocalProductHandler handles the local-products collection
type LocalProductHandler struct {
	BaseHandler
	productService *catalogapp.LocalProductService
}

// NewLocalProductHandler creates a new local product handler
func NewLocalProductHandler(productService *catalogapp.LocalProductService) *LocalProductHandler {
	return &LocalProductHandler{productService: productService}
}

// List returns one page of local products
func (h *LocalProductHandler) List(c *gin.Context) {
	page, err := h.productService.List(c.Request.Context(), parseFilter(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	items := make([]LocalProductResponse, len(page.Items))
	for i, info := range page.Items {
		items[i] = NewLocalProductResponse(info)
	}
	c.JSON(http.StatusOK, dto.NewPageResponse(page, items, "totalProducts"))
}

// Get returns a single local product
func (h *LocalProductHandler) Get(c *gin.Context) {
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
	h.Success(c, NewLocalProductResponse(*info))
}

// Create adds a new local product
func (h *LocalProductHandler) Create(c *gin.Context) {
	var req LocalProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Title, category and brand are required")
		return
	}

	info, err := h.productService.Create(c.Request.Context(), localProductInput(req))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, NewLocalProductResponse(*info))
}

// Update replaces a local product's fields
func (h *LocalProductHandler) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	var req LocalProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Title, category and brand are required")
		return
	}

	info, err := h.productService.Update(c.Request.Context(), id, localProductInput(req))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, NewLocalProductResponse(*info))
}

// Delete removes a local product
func (h *LocalProductHandler) Delete(c *gin.Context) {
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
