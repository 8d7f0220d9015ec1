package directory

import (
	"context"

	"github.com/tabledash/backend/internal/domain/shared"
)

// UserRepository defines persistence operations for directory users.
// FindPage orders by ascending id and searches first name, last name,
// email and birth date as case-insensitive substrings.
type UserRepository interface {
	shared.Repository[User]
	FindByEmail(ctx context.Context, email string) (*User, error)
}
