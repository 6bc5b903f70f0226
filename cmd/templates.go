package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/glowdesk/notify/internal/notify"
)

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "List the registered templates",
	RunE:  runTemplates,
}

func runTemplates(cmd *cobra.Command, _ []string) error {
	registry := notify.BuiltinRegistry()
	for _, name := range registry.List() {
		t, err := registry.Get(name)
		if err != nil {
			return err
		}
		mediums := make([]string, 0, 4)
		for _, m := range t.Mediums() {
			mediums = append(mediums, string(m))
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%-24s priority=%-8s mediums=%s\n",
			name, t.Priority(), strings.Join(mediums, ","))
	}
	return nil
}
