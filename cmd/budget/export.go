package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/joshsymonds/budget-friendly/internal/cli"
	"github.com/joshsymonds/budget-friendly/internal/config"
	"github.com/joshsymonds/budget-friendly/internal/export"
	"github.com/joshsymonds/budget-friendly/internal/insights"
)

func exportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the current profile's data",
	}

	cmd.AddCommand(exportCSVCmd())
	cmd.AddCommand(exportReportCmd())

	return cmd
}

func exportCSVCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "csv",
		Short: "Export transactions as CSV",
		Long:  `Write the current profile's ledger as CSV, oldest transaction first. The filename defaults to <profile>-transactions.csv.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			sess, store, err := initSession(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			current, _ := sess.Current()
			if output == "" {
				output = export.CSVFilename(current.Name)
			}

			f, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("failed to create %s: %w", output, err)
			}
			defer f.Close()

			if err := export.WriteCSV(f, sess.Transactions()); err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Exported %d transactions to %s",
				len(sess.Transactions()), output)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <profile>-transactions.csv)")

	return cmd
}

func exportReportCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Export a summary report",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			sess, store, err := initSession(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			current, _ := sess.Current()
			now := time.Now()
			sum := insights.BuildSummary(sess.Transactions(), sess.Settings(), now)
			report := export.BuildReport(current.Name, config.CurrencySymbol(), sum, now)

			if output == "" {
				output = export.ReportFilename(current.Name)
			}

			if err := os.WriteFile(output, []byte(report.Render()), 0600); err != nil {
				return fmt.Errorf("failed to write %s: %w", output, err)
			}

			fmt.Println(cli.FormatSuccess("Exported report to " + output))
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <profile>-report.txt)")

	return cmd
}
