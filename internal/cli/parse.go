package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var parseCmd = &cobra.Command{
	Use:   "parse [transcript]",
	Short: "Parse one transcript into a transaction record",
	Example: `  cashflow parse "Sold 3 bags of rice for 15k cash"
  cashflow parse "I buy fuel for generator 3500"`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := buildStack()
		if err != nil {
			return err
		}

		transcript := strings.Join(args, " ")
		env := st.svc.ParseTransaction(context.Background(), transcript)

		out, err := json.MarshalIndent(env, "", "  ")
		if err != nil {
			return fmt.Errorf("encode result: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))

		if !env.Success {
			return fmt.Errorf("parse failed: %s", env.Error)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(parseCmd)
}
