package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/cashflow-ng/cashflow-parser/constants"
	"github.com/cashflow-ng/cashflow-parser/internal/transaction"
)

// compareCase is one fixture transcript with the fields a correct parse
// must recover. Unset expectations are not checked.
type compareCase struct {
	input    string
	wantType constants.TxType
	item     string
	quantity int
	amount   float64
	method   constants.Method
	person   string
}

var compareCases = []compareCase{
	{input: "Sold 3 bags of rice for 15k cash", wantType: constants.Income, item: "rice", quantity: 3, amount: 15000, method: constants.MethodCash},
	{input: "Bought stock for 10k from Iya Biliki", wantType: constants.Expense, item: "stock", amount: 10000, person: "Biliki"},
	{input: "Mama Ngozi owes me 12k", wantType: constants.Debt, amount: 12000, person: "Ngozi"},
	{input: "I collect 5k from Ngozi", wantType: constants.Income, amount: 5000, person: "Ngozi"},
	{input: "I buy market for 8k", wantType: constants.Expense, amount: 8000},
	{input: "Na him owe me 7k", wantType: constants.Debt, amount: 7000},
	{input: "Sold bag of rice 13k", wantType: constants.Income, item: "rice", amount: 13000},
	{input: "Took 2k as change", wantType: constants.Income, amount: 2000, item: "change"},
}

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Run both strategies over built-in fixtures and report accuracy",
	Long: `Runs the fixture transcripts through the regex strategy and, when a
remote credential is configured, through the huggingface strategy, then
reports pass counts and average latency per strategy.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := buildStack()
		if err != nil {
			return err
		}

		strategies := []string{constants.StrategyRegex}
		if st.remote.Ready() {
			strategies = append(strategies, constants.StrategyHuggingFace)
		} else {
			fmt.Fprintln(cmd.ErrOrStderr(), "remote credential not configured, comparing regex only")
		}

		for _, strategy := range strategies {
			client, err := st.client.WithStrategy(strategy)
			if err != nil {
				return err
			}

			passed := 0
			var total time.Duration
			fmt.Fprintf(cmd.OutOrStdout(), "\n%s:\n", strategy)

			for _, tc := range compareCases {
				start := time.Now()
				rec := client.Parse(context.Background(), tc.input)
				elapsed := time.Since(start)
				total += elapsed

				ok := matches(rec, tc)
				if ok {
					passed++
				}
				mark := "FAIL"
				if ok {
					mark = "ok"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "  %-4s %q (%dms)\n", mark, tc.input, elapsed.Milliseconds())
			}

			n := len(compareCases)
			fmt.Fprintf(cmd.OutOrStdout(), "  %d/%d passed (%.1f%%), avg %dms\n",
				passed, n, float64(passed)/float64(n)*100, (total / time.Duration(n)).Milliseconds())
		}
		return nil
	},
}

func matches(rec *transaction.Parsed, tc compareCase) bool {
	if rec == nil || rec.Type != tc.wantType {
		return false
	}
	if tc.item != "" && (rec.Item == nil || *rec.Item != tc.item) {
		return false
	}
	if tc.quantity != 0 && (rec.Quantity == nil || *rec.Quantity != tc.quantity) {
		return false
	}
	if tc.amount != 0 && (rec.Amount == nil || *rec.Amount != tc.amount) {
		return false
	}
	if tc.method != "" && (rec.Method == nil || *rec.Method != tc.method) {
		return false
	}
	if tc.person != "" && (rec.Person == nil || *rec.Person != tc.person) {
		return false
	}
	return true
}

func init() {
	rootCmd.AddCommand(compareCmd)
}
