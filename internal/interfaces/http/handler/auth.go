package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	identityapp "github.com/tabledash/backend/internal/application/identity"
	"github.com/tabledash/backend/internal/domain/shared"
	"github.com/tabledash/backend/internal/infrastructure/config"
	"github.com/tabledash/backend/internal/interfaces/http/dto"
	"github.com/tabledash/backend/internal/interfaces/http/middleware"
)

// AuthHandler handles authentication and registration requests
type AuthHandler struct {
	BaseHandler
	authService *identityapp.AuthService
	cookie      config.CookieConfig
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *identityapp.AuthService, cookie config.CookieConfig) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		cookie:      cookie,
	}
}

// Login authenticates the credentials and sets the session cookie
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Username and password are required")
		return
	}

	result, err := h.authService.Login(c.Request.Context(), identityapp.LoginInput{
		Username: req.Username,
		Password: req.Password,
		IP:       c.ClientIP(),
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.setSessionCookie(c, result.Token, time.Until(result.ExpiresAt))
	c.JSON(http.StatusOK, AuthResponse{
		Success: true,
		Message: "Login successful",
		Admin:   NewAdminResponse(result.Account),
	})
}

// Logout revokes the session token and clears the cookie. It sits
// behind optional session middleware so an already-expired token still
// clears the cookie instead of erroring.
func (h *AuthHandler) Logout(c *gin.Context) {
	if identity := middleware.GetIdentity(c); identity.Present {
		input := identityapp.LogoutInput{TokenJTI: identity.Claims.ID}
		if identity.Claims.ExpiresAt != nil {
			input.ExpiresAt = identity.Claims.ExpiresAt.Time
		}
		h.authService.Logout(c.Request.Context(), input)
	}

	h.clearSessionCookie(c)
	h.Message(c, "Logged out successfully")
}

// Verify confirms the session is still valid and returns the account
// behind it, re-read from storage
func (h *AuthHandler) Verify(c *gin.Context) {
	info, ok := h.currentAccount(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, AuthResponse{
		Success: true,
		Message: "Token is valid",
		Admin:   NewAdminResponse(*info),
	})
}

// Me returns the authenticated account
func (h *AuthHandler) Me(c *gin.Context) {
	info, ok := h.currentAccount(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, AuthResponse{
		Success: true,
		Admin:   NewAdminResponse(*info),
	})
}

// Register creates a user-role account with a generated password
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "First name, last name, gender and username are required")
		return
	}

	result, err := h.authService.Register(c.Request.Context(), identityapp.RegisterInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Gender:    req.Gender,
		Username:  req.Username,
		Email:     req.Email,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, RegisterResponse{
		Success:   true,
		Message:   "Account created successfully",
		User:      NewAdminResponse(result.Account),
		EmailSent: result.EmailSent,
	})
}

// currentAccount resolves the session claims to a fresh account. A
// token whose account no longer exists is treated like an invalid
// token, not a missing resource.
func (h *AuthHandler) currentAccount(c *gin.Context) (*identityapp.AccountInfo, bool) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse("Access token is missing"))
		return nil, false
	}

	info, err := h.authService.CurrentAccount(c.Request.Context(), claims.AccountID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			c.JSON(http.StatusForbidden, dto.NewErrorResponse("Invalid or expired token"))
			return nil, false
		}
		h.HandleError(c, err)
		return nil, false
	}
	return info, true
}

func (h *AuthHandler) setSessionCookie(c *gin.Context, token string, ttl time.Duration) {
	c.SetSameSite(sameSiteMode(h.cookie.SameSite))
	c.SetCookie(h.cookie.Name, token, int(ttl.Seconds()), h.cookie.Path, h.cookie.Domain, h.cookie.Secure, true)
}

func (h *AuthHandler) clearSessionCookie(c *gin.Context) {
	c.SetSameSite(sameSiteMode(h.cookie.SameSite))
	c.SetCookie(h.cookie.Name, "", -1, h.cookie.Path, h.cookie.Domain, h.cookie.Secure, true)
}

func sameSiteMode(s string) http.SameSite {
	switch s {
	case "strict":
		return http.SameSiteStrictMode
	case "none":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
