package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/glowdesk/notify/internal/config"
	"github.com/glowdesk/notify/internal/notify"
)

var sendCmd = &cobra.Command{
	Use:   "send",
	Short: "Dispatch a notification",
	Long: `Render a template and dispatch it across the requested mediums.

Transports are taken from the environment (SMTP_*, FCM_*, SMS_GATEWAY_*);
unconfigured transports log the delivery instead of sending.

Examples:
  glowdesk-notify send --template payment_confirmation --name Ana --email ana@example.com \
      --amount 100.00 --currency BRL --mediums email,push,in_app
  glowdesk-notify send --template booking_reminder --name Ana --phone +5511999990000 \
      --service "Hair color" --starts-at 2026-09-02T14:00:00Z --extra hours_before=24`,
	RunE: runSend,
}

func init() {
	f := sendCmd.Flags()
	f.String("template", "", "Template name (required)")
	f.String("mediums", "email,push,in_app", "Comma-separated mediums to fan out to")
	f.String("priority", "", "Priority override (low, normal, high, critical)")
	f.String("correlation-id", "", "Correlation id for tracing")

	f.String("name", "", "Recipient display name")
	f.String("email", "", "Recipient email address")
	f.String("phone", "", "Recipient phone number")
	f.String("user-id", "", "Recipient stable identifier for push/in-app")

	f.String("payment-id", "", "Payment identifier")
	f.Float64("amount", 0, "Payment amount")
	f.String("currency", "", "Payment currency code")
	f.String("method", "", "Payment method")

	f.String("booking-id", "", "Booking identifier")
	f.String("service", "", "Booked service")
	f.String("professional", "", "Professional name")
	f.String("starts-at", "", "Booking start time (RFC 3339)")

	f.String("refund-id", "", "Refund identifier")
	f.Float64("refund-amount", 0, "Refund amount")
	f.String("reason", "", "Refund reason")

	f.StringArray("extra", nil, "Extra key=value pairs for the template")

	_ = sendCmd.MarkFlagRequired("template")
}

func runSend(cmd *cobra.Command, _ []string) error {
	cfg, db, log, err := setup()
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	d, err := newDispatcher(cmd.Context(), cfg, db, log)
	if err != nil {
		return err
	}

	c, err := contextFromFlags(cmd, cfg)
	if err != nil {
		return err
	}

	template, _ := cmd.Flags().GetString("template")
	mediumsFlag, _ := cmd.Flags().GetString("mediums")
	priority, _ := cmd.Flags().GetString("priority")
	correlationID, _ := cmd.Flags().GetString("correlation-id")

	var mediums []notify.Medium
	for _, raw := range strings.Split(mediumsFlag, ",") {
		m := notify.Medium(strings.TrimSpace(raw))
		if !m.Valid() {
			return fmt.Errorf("unknown medium %q", m)
		}
		mediums = append(mediums, m)
	}

	res := d.Send(cmd.Context(), notify.Request{
		Template:        template,
		Context:         c,
		Mediums:         mediums,
		Priority:        notify.Priority(priority),
		CorrelationID:   correlationID,
		SendImmediately: true,
	})

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(res); err != nil {
		return fmt.Errorf("encoding result: %w", err)
	}
	if res.Status == notify.StatusFailed {
		return fmt.Errorf("dispatch failed: %s", res.Error)
	}
	return nil
}

// contextFromFlags assembles the notification context from CLI flags plus
// the configured business attributes.
func contextFromFlags(cmd *cobra.Command, cfg *config.AppConfig) (notify.Context, error) {
	f := cmd.Flags()

	str := func(name string) string {
		v, _ := f.GetString(name)
		return v
	}
	num := func(name string) float64 {
		v, _ := f.GetFloat64(name)
		return v
	}

	var startsAt time.Time
	if raw := str("starts-at"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return notify.Context{}, fmt.Errorf("parsing --starts-at: %w", err)
		}
		startsAt = t
	}

	extra := map[string]string{}
	extraPairs, _ := f.GetStringArray("extra")
	for _, pair := range extraPairs {
		k, v, ok := strings.Cut(pair, "=")
		if !ok {
			return notify.Context{}, fmt.Errorf("invalid --extra %q, want key=value", pair)
		}
		extra[k] = v
	}

	return notify.Context{
		UserName:  str("name"),
		UserEmail: str("email"),
		UserPhone: str("phone"),
		UserID:    str("user-id"),
		Business: notify.Business{
			Name:    cfg.BusinessName,
			Address: cfg.BusinessAddress,
			Phone:   cfg.BusinessPhone,
			LogoURL: cfg.BusinessLogoURL,
		},
		Payment: notify.Payment{
			ID:       str("payment-id"),
			Amount:   num("amount"),
			Currency: str("currency"),
			Method:   str("method"),
		},
		Booking: notify.Booking{
			ID:           str("booking-id"),
			Service:      str("service"),
			Professional: str("professional"),
			StartsAt:     startsAt,
		},
		Refund: notify.Refund{
			ID:     str("refund-id"),
			Amount: num("refund-amount"),
			Reason: str("reason"),
		},
		Extra: extra,
	}, nil
}
