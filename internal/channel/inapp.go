package channel

import (
	"context"
	"log/slog"

	"github.com/glowdesk/notify/internal/notify"
)

// InboxWriter is the in-app delivery seam: appending a message to the user's
// in-application inbox. The production implementation is
// storage.SQLiteInboxStore.
type InboxWriter interface {
	SaveMessage(ctx context.Context, userID, subject, body, priority string) error
}

// InApp delivers notifications to the user's in-application inbox with the
// full, untruncated content.
type InApp struct {
	inbox  InboxWriter
	logger *slog.Logger
}

// NewInApp creates the in-app channel over the given inbox store.
func NewInApp(inbox InboxWriter, logger *slog.Logger) *InApp {
	return &InApp{inbox: inbox, logger: logger}
}

func (a *InApp) Medium() notify.Medium { return notify.MediumInApp }

// Recipient resolves to the stable user identifier, falling back to the
// email address when no separate id exists.
func (a *InApp) Recipient(c notify.Context) (string, error) {
	if c.UserID != "" {
		return c.UserID, nil
	}
	if c.UserEmail != "" {
		return c.UserEmail, nil
	}
	return "", &notify.RecipientError{Medium: notify.MediumInApp, Reason: "context has no user id or email"}
}

func (a *InApp) Send(ctx context.Context, msg notify.Message) error {
	if err := a.inbox.SaveMessage(ctx, msg.To, msg.Subject, msg.Body, string(msg.Priority)); err != nil {
		return err
	}
	a.logger.Debug("in-app message stored", "user", msg.To)
	return nil
}
