package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/Vaishnavi212121/Personal-finance-agent/internal/export"
	"github.com/Vaishnavi212121/Personal-finance-agent/internal/pipeline"
)

var demoXLSX string

// sampleExpenses is the demo session input.
var sampleExpenses = []string{
	"Spent ₹500 on groceries at DMart",
	"Auto rickshaw ride ₹80",
	"Swiggy order ₹350 for dinner",
	"Netflix subscription ₹649",
	"Ola cab to office ₹250",
	"$45 for lunch at restaurant",
	"Flipkart shopping ₹1200 for clothes",
}

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run sample expenses through a session and print a spending summary",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := cfg.Validate("cli"); err != nil {
			return err
		}

		p, err := initPipeline(cfg, nil)
		if err != nil {
			return err
		}

		if err := runDemo(cmd.OutOrStdout(), p, sampleExpenses, cfg.Currency.Default); err != nil {
			return err
		}

		if demoXLSX != "" {
			if err := export.WriteXLSX(demoXLSX, p.Summary()); err != nil {
				return err
			}
			zap.L().Info("demo: ledger exported", zap.String("path", demoXLSX))
		}
		return nil
	},
}

// runDemo processes each sample and prints the per-expense outcome followed
// by the session totals. symbol prefixes the summary amounts.
func runDemo(w io.Writer, p *pipeline.Pipeline, samples []string, symbol string) error {
	rule := strings.Repeat("=", 60)
	title := cases.Title(language.English)

	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, "PERSONAL FINANCE AGENT - Demo")
	fmt.Fprintln(w, rule)

	for _, text := range samples {
		res, err := p.Process(text)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "\nProcessed: %s\n", text)
		fmt.Fprintf(w, "   Category: %s\n", res.Expense.Category)
		fmt.Fprintf(w, "   Amount: %s%s\n", res.Expense.Currency, res.Expense.Amount.String())
	}

	s := p.Summary()
	fmt.Fprintln(w)
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, "SPENDING SUMMARY")
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "\nTotal Spending: %s%s\n", symbol, s.Statistics.TotalSpending.StringFixed(2))
	fmt.Fprintf(w, "Total Expenses: %d\n", s.Statistics.TotalExpenses)
	fmt.Fprintln(w, "\nCategory Breakdown:")
	for _, ct := range p.CategoryTotals() {
		fmt.Fprintf(w, "   %s: %s%s\n", title.String(ct.Name), symbol, ct.Amount.StringFixed(2))
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, rule)

	return nil
}

func init() {
	demoCmd.Flags().StringVar(&demoXLSX, "xlsx", "", "export the session ledger to this workbook")
	rootCmd.AddCommand(demoCmd)
}
