package identity

import (
	"context"

	"github.com/tabledash/backend/internal/domain/shared"
)

// AccountRepository defines persistence operations for accounts.
// FindPage orders by ascending id and searches first name, last name and
// username as case-insensitive substrings.
type AccountRepository interface {
	shared.Repository[Account]
	FindByUsername(ctx context.Context, username string) (*Account, error)
}
