package cli

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cashflow-ng/cashflow-parser/internal/export"
	"github.com/cashflow-ng/cashflow-parser/internal/transaction"
)

var (
	batchXLSXPath string
	batchStats    bool
)

var batchCmd = &cobra.Command{
	Use:   "batch <file>",
	Short: "Parse a file of transcripts, one per line",
	Long: `Reads transcripts one per line (blank lines and lines starting with #
are skipped), parses each, and prints one JSON envelope per line.
With --xlsx the parsed records are also written to an Excel workbook.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := buildStack()
		if err != nil {
			return err
		}

		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("open transcripts %s: %w", args[0], err)
		}
		defer f.Close()

		var records []*transaction.Parsed
		enc := json.NewEncoder(cmd.OutOrStdout())

		scanner := bufio.NewScanner(f)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" || strings.HasPrefix(line, "#") {
				continue
			}

			env := st.svc.ParseTransaction(context.Background(), line)
			if err := enc.Encode(env); err != nil {
				return fmt.Errorf("encode result: %w", err)
			}
			if env.Data != nil {
				records = append(records, env.Data)
			}
		}
		if err := scanner.Err(); err != nil {
			return fmt.Errorf("read transcripts %s: %w", args[0], err)
		}

		if batchXLSXPath != "" {
			buf, err := export.NewService(st.logger).BuildXLSX(records)
			if err != nil {
				return fmt.Errorf("build workbook: %w", err)
			}
			if err := os.WriteFile(batchXLSXPath, buf, 0o644); err != nil {
				return fmt.Errorf("write workbook %s: %w", batchXLSXPath, err)
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "wrote %d records to %s\n", len(records), batchXLSXPath)
		}

		if batchStats {
			out, err := json.MarshalIndent(st.svc.Stats(), "", "  ")
			if err != nil {
				return fmt.Errorf("encode stats: %w", err)
			}
			fmt.Fprintln(cmd.ErrOrStderr(), string(out))
		}
		return nil
	},
}

func init() {
	batchCmd.Flags().StringVar(&batchXLSXPath, "xlsx", "", "also write parsed records to an XLSX workbook at this path")
	batchCmd.Flags().BoolVar(&batchStats, "stats", false, "print aggregate parse statistics to stderr when done")
	rootCmd.AddCommand(batchCmd)
}
