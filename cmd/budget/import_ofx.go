package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/joshsymonds/budget-friendly/internal/cli"
	"github.com/joshsymonds/budget-friendly/internal/ofx"
)

func importCmd() *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "import [files...]",
		Short: "Import transactions from OFX/QFX files",
		Long: `Import transactions from OFX or QFX (Quicken) statement files exported
from your bank into the current profile. Deposits become income and
withdrawals become expenses.

Examples:
  # Import a single file
  budget import ~/Downloads/chase_jan_2024.qfx

  # Import everything in a directory
  budget import ~/Downloads/*.qfx`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			// Expand globs and collect all files
			var allFiles []string
			for _, pattern := range args {
				matches, err := filepath.Glob(pattern)
				if err != nil {
					return fmt.Errorf("invalid pattern %s: %w", pattern, err)
				}
				if len(matches) == 0 {
					// If no glob matches, check if it's a direct file
					if _, err := os.Stat(pattern); err == nil {
						allFiles = append(allFiles, pattern)
					} else {
						slog.Warn("No files found matching pattern", "pattern", pattern)
					}
				} else {
					allFiles = append(allFiles, matches...)
				}
			}

			if len(allFiles) == 0 {
				return fmt.Errorf("no files found to import")
			}

			parser := ofx.NewParser()
			seen := make(map[string]bool) // FITID dedup across files
			var entries []ofx.Entry

			for _, filePath := range allFiles {
				f, err := os.Open(filePath)
				if err != nil {
					slog.Error("Failed to open file", "file", filePath, "error", err)
					continue
				}

				parsed, err := parser.ParseFile(ctx, f)
				f.Close()
				if err != nil {
					slog.Error("Failed to parse OFX file", "file", filePath, "error", err)
					continue
				}

				added := 0
				for _, e := range parsed {
					if e.FITID != "" && seen[e.FITID] {
						continue
					}
					seen[e.FITID] = true
					entries = append(entries, e)
					added++
				}

				slog.Info("Processed file",
					"file", filepath.Base(filePath),
					"found", len(parsed),
					"added", added,
					"duplicates", len(parsed)-added)
			}

			if len(entries) == 0 {
				fmt.Println(cli.SubtleStyle.Render("No transactions found in any file."))
				return nil
			}

			if dryRun {
				fmt.Println(cli.SubtleStyle.Render(fmt.Sprintf("Dry run: would import %d transactions.", len(entries))))
				return nil
			}

			sess, store, err := initSession(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			bar := progressbar.Default(int64(len(entries)), "importing")
			imported := 0
			for _, e := range entries {
				if _, err := sess.AddTransaction(ctx, e.Input); err != nil {
					slog.Warn("Skipped statement entry", "fitid", e.FITID, "error", err)
				} else {
					imported++
				}
				_ = bar.Add(1)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Imported %d of %d transactions", imported, len(entries))))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&dryRun, "dry-run", "d", false, "preview import without saving")

	return cmd
}
