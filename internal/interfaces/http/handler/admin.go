package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	identityapp "github.com/tabledash/backend/internal/application/identity"
	"github.com/tabledash/backend/internal/interfaces/http/dto"
)

// AdminCreateRequest is the payload for creating an account through
// the admins collection. Unlike self-serve registration the operator
// chooses the password and role.
type AdminCreateRequest struct {
	FirstName string `json:"firstName" binding:"required,max=50"`
	LastName  string `json:"lastName" binding:"required,max=50"`
	Gender    string `json:"gender" binding:"required,oneof=Male Female"`
	Username  string `json:"username" binding:"required,min=3,max=30"`
	Password  string `json:"password" binding:"required,min=6"`
	Role      string `json:"role" binding:"required,oneof=admin user"`
}

// AdminUpdateRequest is the payload for updating an account. Password
// is optional; when omitted the stored hash is kept.
type AdminUpdateRequest struct {
	FirstName string `json:"firstName" binding:"required,max=50"`
	LastName  string `json:"lastName" binding:"required,max=50"`
	Gender    string `json:"gender" binding:"required,oneof=Male Female"`
	Username  string `json:"username" binding:"required,min=3,max=30"`
	Password  string `json:"password" binding:"omitempty,min=6"`
	Role      string `json:"role" binding:"required,oneof=admin user"`
}

// AdminHandler handles the admins collection
type AdminHandler struct {
	BaseHandler
	accountService *identityapp.AccountService
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(accountService *identityapp.AccountService) *AdminHandler {
	return &AdminHandler{accountService: accountService}
}

// List returns one page of accounts
func (h *AdminHandler) List(c *gin.Context) {
	page, err := h.accountService.List(c.Request.Context(), parseFilter(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	items := make([]AdminResponse, len(page.Items))
	for i, info := range page.Items {
		items[i] = NewAdminResponse(info)
	}
	c.JSON(http.StatusOK, dto.NewPageResponse(page, items, "totalAdmins"))
}

// Get returns a single account
func (h *AdminHandler) Get(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	info, err := h.accountService.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, NewAdminResponse(*info))
}

// Create adds a new account
func (h *AdminHandler) Create(c *gin.Context) {
	var req AdminCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "First name, last name, gender, username, password and role are required")
		return
	}

	info, err := h.accountService.Create(c.Request.Context(), identityapp.CreateAccountInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Gender:    req.Gender,
		Username:  req.Username,
		Password:  req.Password,
		Role:      req.Role,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, NewAdminResponse(*info))
}

// Update replaces an account's fields
func (h *AdminHandler) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	var req AdminUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "First name, last name, gender, username and role are required")
		return
	}

	info, err := h.accountService.Update(c.Request.Context(), id, identityapp.UpdateAccountInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Gender:    req.Gender,
		Username:  req.Username,
		Password:  req.Password,
		Role:      req.Role,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, NewAdminResponse(*info))
}

// Delete removes an account
func (h *AdminHandler) Delete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	if err := h.accountService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.Message(c, "Admin deleted successfully")
}
