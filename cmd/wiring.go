package cmd

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/glowdesk/notify/internal/channel"
	"github.com/glowdesk/notify/internal/config"
	"github.com/glowdesk/notify/internal/fcm"
	"github.com/glowdesk/notify/internal/logger"
	"github.com/glowdesk/notify/internal/mailer"
	"github.com/glowdesk/notify/internal/notify"
	"github.com/glowdesk/notify/internal/smsgw"
	"github.com/glowdesk/notify/internal/storage"
)

// setup loads configuration, opens the database and builds the CLI logger.
func setup() (*config.AppConfig, *sql.DB, *slog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, nil, err
	}

	log := logger.NewCLILogger(cfg.SlogLevel())

	db, err := storage.NewSQLiteDB(cfg.DBPath())
	if err != nil {
		return nil, nil, nil, fmt.Errorf("opening database: %w", err)
	}
	return cfg, db, log, nil
}

// newDispatcher wires a Dispatcher with the built-in template catalog and a
// channel per medium. Transports without configuration fall back to log-only
// senders so a dispatch is always observable locally.
func newDispatcher(ctx context.Context, cfg *config.AppConfig, db *sql.DB, log *slog.Logger) (*notify.Dispatcher, error) {
	d := notify.NewDispatcher(notify.BuiltinRegistry(), log)

	var m channel.Mailer = &channel.LogMailer{Logger: log}
	if cfg.SMTPConfigured() {
		m = mailer.NewSMTP(cfg.SMTP())
	}
	d.RegisterChannel(channel.NewEmail(m, log))

	var sms channel.TextSender = &channel.LogTextSender{Logger: log}
	if cfg.SMSConfigured() {
		sms = smsgw.NewClient(cfg.SMS())
	}
	d.RegisterChannel(channel.NewSMS(sms, log))

	var push channel.PushSender = &channel.LogPushSender{Logger: log}
	if cfg.FCMConfigured() {
		sender, err := fcm.NewSender(ctx, cfg.FCM())
		if err != nil {
			return nil, fmt.Errorf("initializing fcm: %w", err)
		}
		push = sender
	}
	d.RegisterChannel(channel.NewPush(push, log))

	d.RegisterChannel(channel.NewInApp(storage.NewSQLiteInboxStore(db), log))
	return d, nil
}
