package handler

import (
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	directoryapp "github.com/tabledash/backend/internal/application/directory"
	"github.com/tabledash/backend/internal/interfaces/http/dto"
)

// UserRequest is the create/update payload for a directory user
type UserRequest struct {
	FirstName string `json:"firstName" binding:"required,max=50"`
	LastName  string `json:"lastName" binding:"required,max=50"`
	Gender    string `json:"gender" binding:"required,oneof=Male Female"`
	Email     string `json:"email" binding:"required,email"`
	BirthDate string `json:"birthDate" binding:"required,birthdate"`
}

// UserResponse is the wire shape of a directory user
type UserResponse struct {
	ID           int64     `json:"id"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	Gender       string    `json:"gender"`
	Email        string    `json:"email"`
	BirthDate    string    `json:"birthDate"`
	ProfileImage string    `json:"profileImage,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// NewUserResponse maps an application user view to the wire shape
func NewUserResponse(info directoryapp.UserInfo) UserResponse {
	return UserResponse{
		ID:           info.ID,
		FirstName:    info.FirstName,
		LastName:     info.LastName,
		Gender:       info.Gender,
		Email:        info.Email,
		BirthDate:    info.BirthDate,
		ProfileImage: info.ProfileImage,
		CreatedAt:    info.CreatedAt,
		UpdatedAt:    info.UpdatedAt,
	}
}

// UserHandler handles the users collection
type UserHandler struct {
	BaseHandler
	userService   *directoryapp.UserService
	maxUploadSize int64
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService *directoryapp.UserService, maxUploadSize int64) *UserHandler {
	return &UserHandler{
		userService:   userService,
		maxUploadSize: maxUploadSize,
	}
}

// List returns one page of users
func (h *UserHandler) List(c *gin.Context) {
	page, err := h.userService.List(c.Request.Context(), parseFilter(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	items := make([]UserResponse, len(page.Items))
	for i, info := range page.Items {
		items[i] = NewUserResponse(info)
	}
	c.JSON(http.StatusOK, dto.NewPageResponse(page, items, "totalUsers"))
}

// Get returns a single user
func (h *UserHandler) Get(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	info, err := h.userService.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, NewUserResponse(*info))
}

// Create adds a new user
func (h *UserHandler) Create(c *gin.Context) {
	var req UserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "First name, last name, gender, email and birth date are required")
		return
	}

	info, err := h.userService.Create(c.Request.Context(), directoryapp.CreateUserInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Gender:    req.Gender,
		Email:     req.Email,
		BirthDate: req.BirthDate,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, NewUserResponse(*info))
}

// Update replaces a user's fields
func (h *UserHandler) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	var req UserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "First name, last name, gender, email and birth date are required")
		return
	}

	info, err := h.userService.Update(c.Request.Context(), id, directoryapp.UpdateUserInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Gender:    req.Gender,
		Email:     req.Email,
		BirthDate: req.BirthDate,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, NewUserResponse(*info))
}

// Delete removes a user
func (h *UserHandler) Delete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	if err := h.userService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.Message(c, "User deleted successfully")
}

// UploadProfileImage accepts a multipart "image" file and stores it
func (h *UserHandler) UploadProfileImage(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		h.BadRequest(c, "An image file is required")
		return
	}
	if h.maxUploadSize > 0 && fileHeader.Size > h.maxUploadSize {
		h.BadRequest(c, "Image exceeds the maximum upload size")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.BadRequest(c, "Failed to read image file")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		h.BadRequest(c, "Failed to read image file")
		return
	}

	info, err := h.userService.UploadProfileImage(c.Request.Context(), directoryapp.UploadImageInput{
		UserID:      id,
		Data:        data,
		ContentType: fileHeader.Header.Get("Content-Type"),
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, NewUserResponse(*info))
}

// DeleteProfileImage removes a user's stored profile image
func (h *UserHandler) DeleteProfileImage(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	info, err := h.userService.DeleteProfileImage(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, NewUserResponse(*info))
}
