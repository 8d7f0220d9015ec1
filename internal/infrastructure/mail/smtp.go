// Package mail delivers credential mail over SMTP.
package mail

import (
	"context"
	"fmt"

	gomail "github.com/wneessen/go-mail"
	identityapp "github.com/tabledash/backend/internal/application/identity"
	"github.com/tabledash/backend/internal/infrastructure/config"
	"go.uber.org/zap"
)

// Ensure SMTPMailer implements Mailer
var _ identityapp.Mailer = (*SMTPMailer)(nil)

// SMTPMailer sends credential mail through an SMTP relay using go-mail
type SMTPMailer struct {
	client   *gomail.Client
	from     string
	fromName string
	loginURL string
	logger   *zap.Logger
}

// NewSMTPMailer creates an SMTPMailer from configuration
func NewSMTPMailer(cfg *config.MailConfig, logger *zap.Logger) (*SMTPMailer, error) {
	if cfg == nil {
		return nil, fmt.Errorf("mail configuration is required")
	}
	if cfg.Host == "" {
		return nil, fmt.Errorf("mail host is required")
	}
	if cfg.From == "" {
		return nil, fmt.Errorf("mail from address is required")
	}

	opts := []gomail.Option{
		gomail.WithPort(cfg.Port),
		gomail.WithTLSPortPolicy(gomail.TLSOpportunistic),
	}
	if cfg.Username != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(cfg.Username),
			gomail.WithPassword(cfg.Password),
		)
	}

	client, err := gomail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create mail client: %w", err)
	}

	if logger == nil {
		logger = zap.NewNop()
	}

	return &SMTPMailer{
		client:   client,
		from:     cfg.From,
		fromName: cfg.FromName,
		loginURL: cfg.LoginURL,
		logger:   logger,
	}, nil
}

// Send delivers the welcome mail carrying the generated password
func (m *SMTPMailer) Send(ctx context.Context, mail identityapp.CredentialMail) error {
	msg := gomail.NewMsg()
	if m.fromName != "" {
		if err := msg.FromFormat(m.fromName, m.from); err != nil {
			return fmt.Errorf("invalid from address: %w", err)
		}
	} else {
		if err := msg.From(m.from); err != nil {
			return fmt.Errorf("invalid from address: %w", err)
		}
	}
	if err := msg.To(mail.To); err != nil {
		return fmt.Errorf("invalid recipient address: %w", err)
	}

	msg.Subject("Your account is ready")
	msg.SetBodyString(gomail.TypeTextPlain, credentialBody(mail, m.loginURL))

	if err := m.client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("failed to send credential mail: %w", err)
	}

	m.logger.Info("Credential mail sent", zap.String("username", mail.Username))
	return nil
}

func credentialBody(mail identityapp.CredentialMail, loginURL string) string {
	body := fmt.Sprintf(
		"Hello %s %s,\n\nYour account has been created.\n\nUsername: %s\nPassword: %s\n\nPlease change your password after your first login.\n",
		mail.FirstName, mail.LastName, mail.Username, mail.Password,
	)
	if loginURL != "" {
		body += fmt.Sprintf("\nSign in at %s\n", loginURL)
	}
	return body
}
