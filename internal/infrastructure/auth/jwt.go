package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/tabledash/backend/internal/domain/identity"
	"github.com/tabledash/backend/internal/infrastructure/config"
)

// Verification failure reasons. Token problems are never transient, so
// callers branch on these instead of retrying.
var (
	ErrMissingSecret    = errors.New("signing secret is not configured")
	ErrExpiredToken     = errors.New("token has expired")
	ErrMalformedToken   = errors.New("token is malformed")
	ErrInvalidSignature = errors.New("token signature mismatch")
	ErrInvalidClaims    = errors.New("invalid token claims")
)

// Claims is the identity embedded in a session token.
type Claims struct {
	jwt.RegisteredClaims
	AccountID int64  `json:"id"`
	Username  string `json:"username"`
	Role      string `json:"role"`
}

// ParsedRole returns the claims role as a member of the closed role set.
func (c *Claims) ParsedRole() (identity.Role, error) {
	return identity.ParseRole(c.Role)
}

// TokenService issues and verifies signed, time-limited session tokens.
// It is a pure function of the secret and its input; it holds no state.
type TokenService struct {
	secret     []byte
	expiration time.Duration
	issuer     string
}

// NewTokenService creates a token service. An empty signing secret is a
// configuration error and fatal at startup.
func NewTokenService(cfg config.JWTConfig) (*TokenService, error) {
	if cfg.Secret == "" {
		return nil, ErrMissingSecret
	}
	expiration := cfg.Expiration
	if expiration <= 0 {
		expiration = 24 * time.Hour
	}
	return &TokenService{
		secret:     []byte(cfg.Secret),
		expiration: expiration,
		issuer:     cfg.Issuer,
	}, nil
}

// Issue produces a signed token embedding the account's identity plus
// issued-at and expiry timestamps.
func (s *TokenService) Issue(account *identity.Account) (string, error) {
	now := time.Now()
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			Issuer:    s.issuer,
			Subject:   fmt.Sprintf("%d", account.ID),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiration)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		AccountID: account.ID,
		Username:  account.Username,
		Role:      account.Role.String(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify validates a token and returns its claims, or one of the typed
// rejection reasons: expired, malformed, or signature mismatch.
func (s *TokenService) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidSignature
		}
		return s.secret, nil
	})

	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, ErrExpiredToken
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, ErrInvalidSignature
		default:
			return nil, ErrMalformedToken
		}
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidClaims
	}
	if claims.AccountID == 0 || claims.Username == "" {
		return nil, ErrInvalidClaims
	}
	if _, err := claims.ParsedRole(); err != nil {
		return nil, ErrInvalidClaims
	}

	return claims, nil
}

// Expiration returns the configured token lifetime.
func (s *TokenService) Expiration() time.Duration {
	return s.expiration
}
