package channel

import (
	"context"
	"log/slog"
)

// Logging transports: stand-ins for environments where a real gateway is not
// configured. They record the would-be delivery and succeed. Useful for local
// development and the CLI's dry runs.

// LogMailer is a Mailer that only logs.
type LogMailer struct {
	Logger *slog.Logger
}

func (m *LogMailer) Send(_ context.Context, to, subject, body string) error {
	m.Logger.Info("email (log only)", "to", to, "subject", subject, "body_chars", len(body))
	return nil
}

// LogTextSender is a TextSender that only logs.
type LogTextSender struct {
	Logger *slog.Logger
}

func (s *LogTextSender) Send(_ context.Context, phone, text string) error {
	s.Logger.Info("sms (log only)", "to", phone, "text", text)
	return nil
}

// LogPushSender is a PushSender that only logs.
type LogPushSender struct {
	Logger *slog.Logger
}

func (s *LogPushSender) Send(_ context.Context, token, title, body string, data map[string]string) error {
	s.Logger.Info("push (log only)", "to", token, "title", title, "data", data)
	return nil
}
