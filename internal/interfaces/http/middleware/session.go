// Package middleware provides gin middleware for session handling,
// role authorization and cross-cutting request concerns.
package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tabledash/backend/internal/domain/identity"
	"github.com/tabledash/backend/internal/infrastructure/auth"
	"github.com/tabledash/backend/internal/interfaces/http/dto"
	"go.uber.org/zap"
)

// Session context keys
const (
	SessionClaimsKey = "session_claims"
)

// Identity is the resolved outcome of optional session handling.
// Present is false when no token was offered; Claims is set only when
// Present is true.
type Identity struct {
	Present bool
	Claims  *auth.Claims
}

// SessionConfig holds the collaborators session middleware needs
type SessionConfig struct {
	Tokens *auth.TokenService
	// Blacklist is optional; revoked-token checks are skipped without it
	Blacklist auth.TokenBlacklist
	// CookieName is the session cookie, "token" by convention
	CookieName string
	Logger     *zap.Logger
}

// RequireSession verifies the session cookie and attaches the claims
// to the request context. A missing cookie is a 401; a token that
// fails verification, or has been revoked, is a 403.
func RequireSession(cfg SessionConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := c.Cookie(cfg.CookieName)
		if err != nil || tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse("Access token is missing"))
			return
		}

		claims, ok := resolveClaims(c, cfg, tokenString)
		if !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, dto.NewErrorResponse("Invalid or expired token"))
			return
		}

		c.Set(SessionClaimsKey, claims)
		c.Next()
	}
}

// OptionalSession resolves the session cookie when one is offered but
// never rejects the request. Handlers read the tagged outcome through
// GetIdentity and branch on Present explicitly.
func OptionalSession(cfg SessionConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := c.Cookie(cfg.CookieName)
		if err != nil || tokenString == "" {
			c.Next()
			return
		}

		if claims, ok := resolveClaims(c, cfg, tokenString); ok {
			c.Set(SessionClaimsKey, claims)
		}
		c.Next()
	}
}

// resolveClaims verifies the token and consults the blacklist. The
// blacklist fails open: an unreachable store logs and lets the
// otherwise-valid token through.
func resolveClaims(c *gin.Context, cfg SessionConfig, tokenString string) (*auth.Claims, bool) {
	claims, err := cfg.Tokens.Verify(tokenString)
	if err != nil {
		if cfg.Logger != nil {
			cfg.Logger.Debug("Session token rejected",
				zap.String("path", c.Request.URL.Path),
				zap.Error(err))
		}
		return nil, false
	}

	if cfg.Blacklist != nil && claims.ID != "" {
		revoked, err := cfg.Blacklist.IsRevoked(c.Request.Context(), claims.ID)
		if err != nil {
			if cfg.Logger != nil {
				cfg.Logger.Error("Failed to check token blacklist",
					zap.String("jti", claims.ID),
					zap.Error(err))
			}
		} else if revoked {
			return nil, false
		}
	}

	return claims, true
}

// GetIdentity returns the tagged session outcome for the request
func GetIdentity(c *gin.Context) Identity {
	value, exists := c.Get(SessionClaimsKey)
	if !exists {
		return Identity{}
	}
	claims, ok := value.(*auth.Claims)
	if !ok {
		return Identity{}
	}
	return Identity{Present: true, Claims: claims}
}

// GetClaims returns the verified claims attached by RequireSession.
// It returns nil when the route was not behind session middleware.
func GetClaims(c *gin.Context) *auth.Claims {
	return GetIdentity(c).Claims
}

// GetRole returns the parsed role of the authenticated identity
func GetRole(c *gin.Context) (identity.Role, bool) {
	claims := GetClaims(c)
	if claims == nil {
		return "", false
	}
	role, err := claims.ParsedRole()
	if err != nil {
		return "", false
	}
	return role, true
}
