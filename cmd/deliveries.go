package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/glowdesk/notify/internal/storage"
)

var deliveriesCmd = &cobra.Command{
	Use:   "deliveries",
	Short: "Show the most recent delivery log entries",
	RunE:  runDeliveries,
}

func init() {
	deliveriesCmd.Flags().Int("limit", 20, "Maximum number of entries to show")
}

func runDeliveries(cmd *cobra.Command, _ []string) error {
	_, db, _, err := setup()
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	limit, _ := cmd.Flags().GetInt("limit")
	store := storage.NewSQLiteDeliveryLogStore(db)

	entries, err := store.ListDeliveries(cmd.Context(), limit)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "delivery log is empty")
		return nil
	}

	for _, e := range entries {
		fmt.Fprintf(cmd.OutOrStdout(), "%s  %-22s %-8s sent=[%s] failed=[%s]",
			e.CreatedAt.Format("2006-01-02 15:04"), e.Template, e.Status, e.SentMediums, e.FailedMediums)
		if e.ErrorMsg != "" {
			fmt.Fprintf(cmd.OutOrStdout(), "  error=%q", e.ErrorMsg)
		}
		fmt.Fprintln(cmd.OutOrStdout())
	}
	return nil
}
