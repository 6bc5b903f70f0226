// Package config loads application configuration from environment variables.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/kelseyhightower/envconfig"

	"github.com/glowdesk/notify/internal/fcm"
	"github.com/glowdesk/notify/internal/mailer"
	"github.com/glowdesk/notify/internal/smsgw"
)

// AppConfig holds all application-level configuration loaded from
// environment variables. Transport sections are optional: a channel whose
// transport is not configured falls back to a log-only sender.
type AppConfig struct {
	// LogLevel sets the minimum log level (debug, info, warn, error). Defaults to info.
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	// DataDir is the root data directory for the SQLite database and log
	// files. Defaults to ~/.glowdesk-notify.
	DataDir string `envconfig:"NOTIFY_DATA_DIR"`

	// Business display attributes stamped on every outgoing notification.
	BusinessName    string `envconfig:"NOTIFY_BUSINESS_NAME" default:"GlowDesk"`
	BusinessAddress string `envconfig:"NOTIFY_BUSINESS_ADDRESS"`
	BusinessPhone   string `envconfig:"NOTIFY_BUSINESS_PHONE"`
	BusinessLogoURL string `envconfig:"NOTIFY_BUSINESS_LOGO_URL"`

	// SMTP transport for the email channel.
	SMTPHost       string `envconfig:"SMTP_HOST"`
	SMTPPort       int    `envconfig:"SMTP_PORT" default:"587"`
	SMTPUsername   string `envconfig:"SMTP_USERNAME"`
	SMTPPassword   string `envconfig:"SMTP_PASSWORD"`
	SMTPFromAddr   string `envconfig:"SMTP_FROM_ADDRESS"`
	SMTPEncryption string `envconfig:"SMTP_ENCRYPTION" default:"starttls"` // "none", "starttls", "ssl_tls"

	// Firebase Cloud Messaging transport for the push channel.
	FCMCredentialsPath string `envconfig:"FCM_CREDENTIALS_PATH"`
	FCMProjectID       string `envconfig:"FCM_PROJECT_ID"`

	// HTTP SMS gateway transport for the sms channel.
	SMSGatewayURL      string `envconfig:"SMS_GATEWAY_URL"`
	SMSGatewayUsername string `envconfig:"SMS_GATEWAY_USERNAME"`
	SMSGatewayPassword string `envconfig:"SMS_GATEWAY_PASSWORD"`
}

// Load reads AppConfig from environment variables using envconfig.
// DataDir defaults to ~/.glowdesk-notify if not set.
func Load() (*AppConfig, error) {
	var c AppConfig
	if err := envconfig.Process("", &c); err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if c.DataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolving home directory: %w", err)
		}
		c.DataDir = filepath.Join(home, ".glowdesk-notify")
	}
	return &c, nil
}

// DBPath returns the SQLite database location under the data directory.
func (c *AppConfig) DBPath() string {
	return filepath.Join(c.DataDir, "notify.db")
}

// SMTPConfigured reports whether the email transport is usable.
func (c *AppConfig) SMTPConfigured() bool { return c.SMTPHost != "" }

// SMTP returns the mailer configuration.
func (c *AppConfig) SMTP() mailer.Config {
	return mailer.Config{
		Host:       c.SMTPHost,
		Port:       c.SMTPPort,
		Username:   c.SMTPUsername,
		Password:   c.SMTPPassword,
		FromAddr:   c.SMTPFromAddr,
		FromName:   c.BusinessName,
		Encryption: c.SMTPEncryption,
	}
}

// FCMConfigured reports whether the push transport is usable.
func (c *AppConfig) FCMConfigured() bool {
	return c.FCMCredentialsPath != "" && c.FCMProjectID != ""
}

// FCM returns the push sender configuration.
func (c *AppConfig) FCM() fcm.Config {
	return fcm.Config{
		CredentialsPath: c.FCMCredentialsPath,
		ProjectID:       c.FCMProjectID,
	}
}

// SMSConfigured reports whether the sms transport is usable.
func (c *AppConfig) SMSConfigured() bool { return c.SMSGatewayURL != "" }

// SMS returns the sms gateway configuration.
func (c *AppConfig) SMS() smsgw.Config {
	return smsgw.Config{
		BaseURL:  c.SMSGatewayURL,
		Username: c.SMSGatewayUsername,
		Password: c.SMSGatewayPassword,
	}
}

// SlogLevel converts the LogLevel string to a slog.Level.
// Unknown values default to slog.LevelInfo.
func (c *AppConfig) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
