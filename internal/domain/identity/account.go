package identity

import (
	"strings"

	"github.com/tabledash/backend/internal/domain/shared"
	"golang.org/x/crypto/bcrypt"
)

// Password cost for bcrypt
const bcryptCost = 10

// Account represents a login-capable account (the "admins" collection).
// PasswordHash never holds plaintext: any password change goes through
// SetPassword, which salts and hashes before the value can be persisted.
type Account struct {
	shared.BaseEntity
	FirstName    string
	LastName     string
	Gender       string
	Username     string
	PasswordHash string
	Role         Role
}

// NewAccount creates an account with a freshly hashed password.
// Self-serve registration always lands here with RoleUser.
func NewAccount(firstName, lastName, gender, username, password string, role Role) (*Account, error) {
	account := &Account{
		BaseEntity: shared.NewBaseEntity(),
		FirstName:  strings.TrimSpace(firstName),
		LastName:   strings.TrimSpace(lastName),
		Gender:     strings.TrimSpace(gender),
		Username:   strings.TrimSpace(username),
		Role:       role,
	}
	if err := account.Validate(); err != nil {
		return nil, err
	}
	if err := account.SetPassword(password); err != nil {
		return nil, err
	}
	return account, nil
}

// Validate checks profile fields and role, aggregating every problem
// into a single message.
func (a *Account) Validate() error {
	var problems []string
	if a.FirstName == "" || len(a.FirstName) > 50 {
		problems = append(problems, "First name is required and cannot exceed 50 characters")
	}
	if a.LastName == "" || len(a.LastName) > 50 {
		problems = append(problems, "Last name is required and cannot exceed 50 characters")
	}
	if a.Gender != "Male" && a.Gender != "Female" {
		problems = append(problems, "Please select a gender")
	}
	if len(a.Username) < 3 || len(a.Username) > 30 {
		problems = append(problems, "Username must be between 3 and 30 characters")
	}
	if !a.Role.Valid() {
		problems = append(problems, "Role must be one of: admin, user")
	}
	if len(problems) > 0 {
		return shared.NewDomainError("VALIDATION_ERROR", strings.Join(problems, ", "))
	}
	return nil
}

// SetPassword hashes the plaintext with a random salt and stores the hash.
func (a *Account) SetPassword(password string) error {
	if len(password) < 6 {
		return shared.NewDomainError("VALIDATION_ERROR", "Password must be at least 6 characters")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return shared.NewDomainError("PASSWORD_HASH_ERROR", "Failed to hash password")
	}
	a.PasswordHash = string(hash)
	a.Touch()
	return nil
}

// VerifyPassword checks a candidate plaintext against the stored hash.
func (a *Account) VerifyPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(password)) == nil
}

// IsAdmin reports whether the account holds the admin role.
func (a *Account) IsAdmin() bool {
	return a.Role == RoleAdmin
}
