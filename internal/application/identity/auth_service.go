package identity

import (
	"context"
	"errors"
	"time"

	"github.com/tabledash/backend/internal/domain/identity"
	"github.com/tabledash/backend/internal/domain/shared"
	"github.com/tabledash/backend/internal/infrastructure/auth"
	"go.uber.org/zap"
)

// AuthService handles authentication and registration
type AuthService struct {
	accountRepo identity.AccountRepository
	tokens      *auth.TokenService
	blacklist   auth.TokenBlacklist
	mailer      Mailer // nil disables credential mail
	logger      *zap.Logger
}

// NewAuthService creates a new authentication service
func NewAuthService(
	accountRepo identity.AccountRepository,
	tokens *auth.TokenService,
	blacklist auth.TokenBlacklist,
	mailer Mailer,
	logger *zap.Logger,
) *AuthService {
	return &AuthService{
		accountRepo: accountRepo,
		tokens:      tokens,
		blacklist:   blacklist,
		mailer:      mailer,
		logger:      logger,
	}
}

// Login authenticates an account and issues a session token.
// Unknown usernames and wrong passwords produce the same error so the
// response never reveals which half of the credentials was bad.
func (s *AuthService) Login(ctx context.Context, input LoginInput) (*LoginResult, error) {
	account, err := s.accountRepo.FindByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			s.logger.Warn("Login attempt for unknown username",
				zap.String("username", input.Username),
				zap.String("ip", input.IP))
			return nil, shared.ErrInvalidCredentials
		}
		s.logger.Error("Failed to load account during login", zap.Error(err))
		return nil, err
	}

	if !account.VerifyPassword(input.Password) {
		s.logger.Warn("Invalid password attempt",
			zap.String("username", input.Username),
			zap.String("ip", input.IP))
		return nil, shared.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(account)
	if err != nil {
		s.logger.Error("Failed to issue session token", zap.Error(err))
		return nil, err
	}

	s.logger.Info("Login successful",
		zap.Int64("account_id", account.ID),
		zap.String("username", account.Username))

	return &LoginResult{
		Token:     token,
		ExpiresAt: time.Now().Add(s.tokens.Expiration()),
		Account:   NewAccountInfo(account),
	}, nil
}

// Logout revokes the session token by blacklisting its JTI until the
// token would have expired anyway. Revocation is best-effort: a
// blacklist outage does not fail the logout.
func (s *AuthService) Logout(ctx context.Context, input LogoutInput) {
	if s.blacklist == nil || input.TokenJTI == "" {
		return
	}
	ttl := time.Until(input.ExpiresAt)
	if ttl <= 0 {
		return
	}
	if err := s.blacklist.Revoke(ctx, input.TokenJTI, ttl); err != nil {
		s.logger.Warn("Failed to blacklist token on logout",
			zap.String("jti", input.TokenJTI),
			zap.Error(err))
	}
}

// CurrentAccount loads the account behind a verified token. The
// account is re-read from storage so a deleted account stops
// resolving even while its token is still valid.
func (s *AuthService) CurrentAccount(ctx context.Context, accountID int64) (*AccountInfo, error) {
	account, err := s.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	info := NewAccountInfo(account)
	return &info, nil
}

// Register creates a user-role account with a server-generated
// password, then attempts credential delivery. The account creation
// commits first; a failed mail only flips EmailSent to false. A new
// account does not get a session, registration is followed by an
// explicit login.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*RegisterResult, error) {
	password, err := GeneratePassword()
	if err != nil {
		s.logger.Error("Failed to generate password", zap.Error(err))
		return nil, err
	}

	account, err := identity.NewAccount(
		input.FirstName,
		input.LastName,
		input.Gender,
		input.Username,
		password,
		identity.RoleUser,
	)
	if err != nil {
		return nil, err
	}

	if err := s.accountRepo.Create(ctx, account); err != nil {
		return nil, err
	}

	s.logger.Info("Account registered",
		zap.Int64("account_id", account.ID),
		zap.String("username", account.Username))

	emailSent := false
	if s.mailer != nil && input.Email != "" {
		mail := CredentialMail{
			To:        input.Email,
			FirstName: account.FirstName,
			LastName:  account.LastName,
			Username:  account.Username,
			Password:  password,
		}
		if err := s.mailer.Send(ctx, mail); err != nil {
			s.logger.Warn("Failed to send credential mail",
				zap.Int64("account_id", account.ID),
				zap.Error(err))
		} else {
			emailSent = true
		}
	}

	return &RegisterResult{
		Account:   NewAccountInfo(account),
		EmailSent: emailSent,
	}, nil
}
