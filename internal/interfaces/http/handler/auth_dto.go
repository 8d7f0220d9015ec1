package handler

import (
	"time"

	identityapp "github.com/tabledash/backend/internal/application/identity"
)

// LoginRequest is the login payload
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RegisterRequest is the self-serve registration payload. Email is
// optional; when present it receives the generated password.
type RegisterRequest struct {
	FirstName string `json:"firstName" binding:"required,max=50"`
	LastName  string `json:"lastName" binding:"required,max=50"`
	Gender    string `json:"gender" binding:"required,oneof=Male Female"`
	Username  string `json:"username" binding:"required,min=3,max=30"`
	Email     string `json:"email" binding:"omitempty,email"`
}

// AdminResponse is the wire shape of an account
type AdminResponse struct {
	ID        int64     `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Gender    string    `json:"gender"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewAdminResponse maps an application account view to the wire shape
func NewAdminResponse(info identityapp.AccountInfo) AdminResponse {
	return AdminResponse{
		ID:        info.ID,
		FirstName: info.FirstName,
		LastName:  info.LastName,
		Gender:    info.Gender,
		Username:  info.Username,
		Role:      info.Role,
		CreatedAt: info.CreatedAt,
		UpdatedAt: info.UpdatedAt,
	}
}

// AuthResponse is the envelope for login, verify and me. The account
// rides under the "admin" key.
type AuthResponse struct {
	Success bool          `json:"success"`
	Message string        `json:"message,omitempty"`
	Admin   AdminResponse `json:"admin"`
}

// RegisterResponse is the registration envelope. The created account
// rides under the "user" key and emailSent reports credential delivery.
type RegisterResponse struct {
	Success   bool          `json:"success"`
	Message   string        `json:"message"`
	User      AdminResponse `json:"user"`
	EmailSent bool          `json:"emailSent"`
}
