package channel

import (
	"context"
	"log/slog"

	"github.com/glowdesk/notify/internal/notify"
)

// TextSender is the SMS transport seam. The production implementation is
// smsgw.Client.
type TextSender interface {
	Send(ctx context.Context, phone, text string) error
}

// SMS delivers notifications to the user's phone number. Bodies are truncated
// to SMSBodyLimit runes; the subject is dropped since SMS has no subject line.
type SMS struct {
	sender TextSender
	logger *slog.Logger
}

// NewSMS creates the SMS channel over the given transport.
func NewSMS(sender TextSender, logger *slog.Logger) *SMS {
	return &SMS{sender: sender, logger: logger}
}

func (s *SMS) Medium() notify.Medium { return notify.MediumSMS }

// Recipient resolves to the user's phone number.
func (s *SMS) Recipient(c notify.Context) (string, error) {
	if c.UserPhone == "" {
		return "", &notify.RecipientError{Medium: notify.MediumSMS, Reason: "context has no user phone"}
	}
	return c.UserPhone, nil
}

func (s *SMS) Send(ctx context.Context, msg notify.Message) error {
	text := Truncate(msg.Body, SMSBodyLimit)
	if err := s.sender.Send(ctx, msg.To, text); err != nil {
		return err
	}
	s.logger.Debug("sms delivered", "to", msg.To, "chars", len(text))
	return nil
}
