package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/joshsymonds/budget-friendly/internal/cli"
	"github.com/joshsymonds/budget-friendly/internal/config"
	"github.com/joshsymonds/budget-friendly/internal/insights"
)

func summaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Show totals, insights, and goal progress",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			sess, store, err := initSession(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			current, _ := sess.Current()
			sum := insights.BuildSummary(sess.Transactions(), sess.Settings(), time.Now())
			symbol := config.CurrencySymbol()

			var b strings.Builder
			fmt.Fprintf(&b, "Balance:  %s%.2f\n", symbol, sum.Totals.Balance)
			fmt.Fprintf(&b, "%s\n", cli.IncomeStyle.Render(fmt.Sprintf("Income:   %s%.2f", symbol, sum.Totals.Income)))
			fmt.Fprintf(&b, "%s\n\n", cli.ExpenseStyle.Render(fmt.Sprintf("Expenses: %s%.2f", symbol, sum.Totals.Expense)))

			fmt.Fprintf(&b, "%s\n", sum.TopLabel)
			fmt.Fprintf(&b, "Goal: %s", sum.Goal.Meta())

			if sum.Warning != "" {
				fmt.Fprintf(&b, "\n\n%s", cli.FormatWarning(sum.Warning))
			}
			if sum.Motivation != "" {
				fmt.Fprintf(&b, "\n%s", cli.SuccessStyle.Render(sum.Motivation))
			}

			fmt.Println(cli.RenderBox(current.Name, b.String()))
			return nil
		},
	}
}
