package identity

import (
	"context"

	"github.com/tabledash/backend/internal/domain/identity"
	"github.com/tabledash/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// CreateAccountInput contains the input for creating an admin-managed account
type CreateAccountInput struct {
	FirstName string
	LastName  string
	Gender    string
	Username  string
	Password  string
	Role      string
}

// UpdateAccountInput contains the input for updating an account.
// An empty Password leaves the stored hash untouched.
type UpdateAccountInput struct {
	FirstName string
	LastName  string
	Gender    string
	Username  string
	Password  string
	Role      string
}

// AccountService manages the admins collection
type AccountService struct {
	accountRepo identity.AccountRepository
	logger      *zap.Logger
}

// NewAccountService creates a new account service
func NewAccountService(accountRepo identity.AccountRepository, logger *zap.Logger) *AccountService {
	return &AccountService{
		accountRepo: accountRepo,
		logger:      logger,
	}
}

// List returns one page of accounts matching the filter
func (s *AccountService) List(ctx context.Context, filter shared.Filter) (*shared.Paginated[AccountInfo], error) {
	accounts, total, err := s.accountRepo.FindPage(ctx, filter)
	if err != nil {
		s.logger.Error("Failed to list accounts", zap.Error(err))
		return nil, err
	}

	infos := make([]AccountInfo, len(accounts))
	for i := range accounts {
		infos[i] = NewAccountInfo(&accounts[i])
	}

	filter = filter.Normalize()
	page := shared.NewPaginated(infos, total, filter.Page, filter.Limit)
	return &page, nil
}

// Get returns a single account by id
func (s *AccountService) Get(ctx context.Context, id int64) (*AccountInfo, error) {
	account, err := s.accountRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	info := NewAccountInfo(account)
	return &info, nil
}

// Create adds a new account with an operator-chosen password and role
func (s *AccountService) Create(ctx context.Context, input CreateAccountInput) (*AccountInfo, error) {
	role, err := identity.ParseRole(input.Role)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "Role must be admin or user")
	}

	account, err := identity.NewAccount(
		input.FirstName,
		input.LastName,
		input.Gender,
		input.Username,
		input.Password,
		role,
	)
	if err != nil {
		return nil, err
	}

	if err := s.accountRepo.Create(ctx, account); err != nil {
		return nil, err
	}

	s.logger.Info("Account created",
		zap.Int64("account_id", account.ID),
		zap.String("username", account.Username),
		zap.String("role", account.Role.String()))

	info := NewAccountInfo(account)
	return &info, nil
}

// Update replaces an account's profile fields and optionally its password
func (s *AccountService) Update(ctx context.Context, id int64, input UpdateAccountInput) (*AccountInfo, error) {
	account, err := s.accountRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	role, err := identity.ParseRole(input.Role)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "Role must be admin or user")
	}

	account.FirstName = input.FirstName
	account.LastName = input.LastName
	account.Gender = input.Gender
	account.Username = input.Username
	account.Role = role
	if err := account.Validate(); err != nil {
		return nil, err
	}

	if input.Password != "" {
		if err := account.SetPassword(input.Password); err != nil {
			return nil, err
		}
	}

	account.Touch()
	if err := s.accountRepo.Update(ctx, account); err != nil {
		return nil, err
	}

	info := NewAccountInfo(account)
	return &info, nil
}

// Delete removes an account by id
func (s *AccountService) Delete(ctx context.Context, id int64) error {
	if err := s.accountRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("Account deleted", zap.Int64("account_id", id))
	return nil
}
