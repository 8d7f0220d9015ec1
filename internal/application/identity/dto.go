package identity

import (
	"time"

	"github.com/tabledash/backend/internal/domain/identity"
)

// LoginInput contains the input for admin login
type LoginInput struct {
	Username string
	Password string
	IP       string // Client IP for login logging
}

// LoginResult contains the result of a successful login
type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	Account   AccountInfo
}

// LogoutInput identifies the session token being revoked
type LogoutInput struct {
	TokenJTI  string
	ExpiresAt time.Time
}

// RegisterInput contains the input for account registration
type RegisterInput struct {
	FirstName string
	LastName  string
	Gender    string
	Username  string
	// Email is where the generated password is delivered. Optional;
	// without it no mail is attempted.
	Email string
}

// RegisterResult contains the created account and whether the
// credential mail went out
type RegisterResult struct {
	Account   AccountInfo
	EmailSent bool
}

// AccountInfo contains account information safe to return to clients.
// It never carries password material.
type AccountInfo struct {
	ID        int64
	FirstName string
	LastName  string
	Gender    string
	Username  string
	Role      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewAccountInfo maps a domain account to its client-safe view
func NewAccountInfo(account *identity.Account) AccountInfo {
	return AccountInfo{
		ID:        account.ID,
		FirstName: account.FirstName,
		LastName:  account.LastName,
		Gender:    account.Gender,
		Username:  account.Username,
		Role:      account.Role.String(),
		CreatedAt: account.CreatedAt,
		UpdatedAt: account.UpdatedAt,
	}
}
