package identity

import "context"

// CredentialMail carries everything the welcome mail needs. The plain
// password only ever lives in this value; it is never persisted.
type CredentialMail struct {
	To        string
	FirstName string
	LastName  string
	Username  string
	Password  string
}

// Mailer delivers generated credentials to freshly registered accounts.
// Implementations live in infrastructure/mail. Delivery is best-effort:
// registration has already committed when Send is called, and a failed
// send is reported to the caller, not rolled back.
type Mailer interface {
	Send(ctx context.Context, mail CredentialMail) error
}
