package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cashflow-ng/cashflow-parser/internal/orchestrator"
	"github.com/cashflow-ng/cashflow-parser/internal/provider"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the active routing configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := buildStack()
		if err != nil {
			return err
		}

		out := struct {
			Router       string              `json:"router"`
			Orchestrator orchestrator.Status `json:"orchestrator"`
			Provider     provider.Status     `json:"provider"`
		}{
			Router:       st.cfg.Router,
			Orchestrator: st.orch.Status(),
			Provider:     st.client.Status(),
		}

		b, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return fmt.Errorf("encode status: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(b))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
