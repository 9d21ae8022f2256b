// Package export renders the ledger and its summary for consumption
// outside the application: CSV for spreadsheets and a text report for
// the document collaborator.
package export

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/joshsymonds/budget-friendly/internal/model"
)

var csvHeader = []string{"Date", "Type", "Description", "Category", "Amount"}

// WriteCSV writes the ledger in export format: a header row followed by
// one row per transaction in ledger order (oldest first). Every field is
// quoted, with internal quotes doubled.
func WriteCSV(w io.Writer, txns []model.Transaction) error {
	if err := writeRow(w, csvHeader); err != nil {
		return err
	}
	for _, txn := range txns {
		row := []string{
			txn.Date,
			string(txn.Type),
			txn.Description,
			txn.Category,
			strconv.FormatFloat(txn.Amount, 'f', -1, 64),
		}
		if err := writeRow(w, row); err != nil {
			return err
		}
	}
	return nil
}

func writeRow(w io.Writer, fields []string) error {
	quoted := make([]string, len(fields))
	for i, f := range fields {
		quoted[i] = `"` + strings.ReplaceAll(f, `"`, `""`) + `"`
	}
	if _, err := fmt.Fprintln(w, strings.Join(quoted, ",")); err != nil {
		return fmt.Errorf("failed to write CSV row: %w", err)
	}
	return nil
}

// CSVFilename derives the export filename from the profile name.
func CSVFilename(profileName string) string {
	return safeName(profileName) + "-transactions.csv"
}

func safeName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return "budget"
	}
	replacer := strings.NewReplacer("/", "-", "\\", "-")
	return replacer.Replace(name)
}
