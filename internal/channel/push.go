package channel

import (
	"context"
	"log/slog"

	"github.com/glowdesk/notify/internal/notify"
)

// PushSender is the mobile push transport seam. The production implementation
// is fcm.Sender.
type PushSender interface {
	Send(ctx context.Context, token, title, body string, data map[string]string) error
}

// Push delivers notifications as mobile push messages. Bodies are truncated
// to PushBodyLimit runes and event identifiers travel in the data payload so
// the app can deep-link.
type Push struct {
	sender PushSender
	logger *slog.Logger
}

// NewPush creates the push channel over the given transport.
func NewPush(sender PushSender, logger *slog.Logger) *Push {
	return &Push{sender: sender, logger: logger}
}

func (p *Push) Medium() notify.Medium { return notify.MediumPush }

// Recipient resolves to the stable user identifier, falling back to the
// email address when no separate id exists.
func (p *Push) Recipient(c notify.Context) (string, error) {
	if c.UserID != "" {
		return c.UserID, nil
	}
	if c.UserEmail != "" {
		return c.UserEmail, nil
	}
	return "", &notify.RecipientError{Medium: notify.MediumPush, Reason: "context has no user id or email"}
}

func (p *Push) Send(ctx context.Context, msg notify.Message) error {
	body := Truncate(msg.Body, PushBodyLimit)
	if err := p.sender.Send(ctx, msg.To, msg.Subject, body, pushData(msg)); err != nil {
		return err
	}
	p.logger.Debug("push delivered", "to", msg.To)
	return nil
}

// pushData builds the data payload from the identifiers present in the
// event context.
func pushData(msg notify.Message) map[string]string {
	data := map[string]string{"priority": string(msg.Priority)}
	if id := msg.Context.Payment.ID; id != "" {
		data["payment_id"] = id
	}
	if id := msg.Context.Booking.ID; id != "" {
		data["booking_id"] = id
	}
	if id := msg.Context.Refund.ID; id != "" {
		data["refund_id"] = id
	}
	return data
}
