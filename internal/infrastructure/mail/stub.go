// Package mail delivers credential mail over SMTP.
package mail

import (
	"context"
	"sync"

	identityapp "github.com/tabledash/backend/internal/application/identity"
)

// Ensure StubMailer implements Mailer
var _ identityapp.Mailer = (*StubMailer)(nil)

// StubMailer records mail instead of sending it.
// Use this for development and tests when SMTP is not configured.
type StubMailer struct {
	mu   sync.Mutex
	sent []identityapp.CredentialMail

	// Err, when set, is returned from every Send call
	Err error
}

// NewStubMailer creates a new StubMailer
func NewStubMailer() *StubMailer {
	return &StubMailer{}
}

// Send records the mail
func (m *StubMailer) Send(ctx context.Context, mail identityapp.CredentialMail) error {
	if m.Err != nil {
		return m.Err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, mail)
	return nil
}

// Sent returns a copy of all recorded mail
func (m *StubMailer) Sent() []identityapp.CredentialMail {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]identityapp.CredentialMail, len(m.sent))
	copy(out, m.sent)
	return out
}
