package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/glowdesk/notify/internal/storage"
)

var inboxCmd = &cobra.Command{
	Use:   "inbox <user-id>",
	Short: "Show a user's in-app inbox",
	Args:  cobra.ExactArgs(1),
	RunE:  runInbox,
}

func init() {
	inboxCmd.Flags().Int("limit", 20, "Maximum number of messages to show")
}

func runInbox(cmd *cobra.Command, args []string) error {
	_, db, _, err := setup()
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	limit, _ := cmd.Flags().GetInt("limit")
	store := storage.NewSQLiteInboxStore(db)

	messages, err := store.ListMessages(cmd.Context(), args[0], limit)
	if err != nil {
		return err
	}
	if len(messages) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "inbox is empty")
		return nil
	}

	for _, m := range messages {
		read := " "
		if !m.Read {
			read = "*"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s #%-5d %s  [%s]  %s\n",
			read, m.ID, m.CreatedAt.Format("2006-01-02 15:04"), m.Priority, m.Subject)
	}
	return nil
}
