package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/glowdesk/notify/internal/event"
	"github.com/glowdesk/notify/internal/eventbus"
	"github.com/glowdesk/notify/internal/notify"
	"github.com/glowdesk/notify/internal/storage"
)

var simulateCmd = &cobra.Command{
	Use:   "simulate <event-type>",
	Short: "Publish a business event and run it through the full pipeline",
	Long: `Publish a business event on the in-memory bus and let the notification
handler dispatch it, exactly as an embedding application would.

Known event types: payment.confirmed, payment.failed, refund.confirmed,
booking.reminder, booking.cancelled, user.registered.

Example:
  glowdesk-notify simulate payment.confirmed \
      --payload user_name=Ana --payload user_email=ana@example.com \
      --payload amount=100.00 --payload currency=BRL`,
	Args: cobra.ExactArgs(1),
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().StringArray("payload", nil, "Event payload key=value pairs")
}

func runSimulate(cmd *cobra.Command, args []string) error {
	cfg, db, log, err := setup()
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	d, err := newDispatcher(cmd.Context(), cfg, db, log)
	if err != nil {
		return err
	}

	business := notify.Business{
		Name:    cfg.BusinessName,
		Address: cfg.BusinessAddress,
		Phone:   cfg.BusinessPhone,
		LogoURL: cfg.BusinessLogoURL,
	}
	handler := event.NewHandler(d, storage.NewSQLiteDeliveryLogStore(db), business, log)

	payload := map[string]string{}
	pairs, _ := cmd.Flags().GetStringArray("payload")
	for _, pair := range pairs {
		k, v, ok := strings.Cut(pair, "=")
		if !ok {
			return fmt.Errorf("invalid --payload %q, want key=value", pair)
		}
		payload[k] = v
	}

	bus := eventbus.New(1, log)
	bus.Subscribe(handler.Handle)
	bus.Publish(args[0], payload)
	// Close drains the bus, so the dispatch has finished when it returns.
	bus.Close()

	fmt.Fprintln(cmd.OutOrStdout(), "event processed; see `glowdesk-notify deliveries` for the outcome")
	return nil
}
