package channel

import (
	"context"
	"log/slog"

	"github.com/glowdesk/notify/internal/notify"
)

// Mailer is the email transport seam. The production implementation is
// mailer.SMTP; tests use stubs.
type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

// Email delivers notifications to the user's email address with the full,
// untruncated content.
type Email struct {
	mailer Mailer
	logger *slog.Logger
}

// NewEmail creates the email channel over the given transport.
func NewEmail(mailer Mailer, logger *slog.Logger) *Email {
	return &Email{mailer: mailer, logger: logger}
}

func (e *Email) Medium() notify.Medium { return notify.MediumEmail }

// Recipient resolves to the user's email address.
func (e *Email) Recipient(c notify.Context) (string, error) {
	if c.UserEmail == "" {
		return "", &notify.RecipientError{Medium: notify.MediumEmail, Reason: "context has no user email"}
	}
	return c.UserEmail, nil
}

func (e *Email) Send(ctx context.Context, msg notify.Message) error {
	if err := e.mailer.Send(ctx, msg.To, msg.Subject, msg.Body); err != nil {
		return err
	}
	e.logger.Debug("email delivered", "to", msg.To, "subject", msg.Subject)
	return nil
}
