package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/joshsymonds/budget-friendly/internal/cli"
	"github.com/joshsymonds/budget-friendly/internal/common"
	"github.com/joshsymonds/budget-friendly/internal/model"
	"github.com/joshsymonds/budget-friendly/internal/session"
)

func txCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tx",
		Short: "Manage transactions",
		Long:  `Add, list, edit, and remove transactions in the current profile's ledger.`,
	}

	cmd.AddCommand(addTxCmd())
	cmd.AddCommand(listTxCmd())
	cmd.AddCommand(editTxCmd())
	cmd.AddCommand(removeTxCmd())

	return cmd
}

func addTxCmd() *cobra.Command {
	var (
		txType   string
		txDate   string
		category string
		color    string
	)

	cmd := &cobra.Command{
		Use:   "add <description> <amount>",
		Short: "Add a transaction to the current profile",
		Long: `Add a transaction. The amount's sign is ignored; whether it counts as
income or expense comes from --type. The date defaults to today.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			amount, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("%w: %q", common.ErrInvalidAmount, args[1])
			}

			sess, store, err := initSession(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			txn, err := sess.AddTransaction(ctx, session.TransactionInput{
				Description: args[0],
				Amount:      amount,
				Type:        model.TransactionType(txType),
				Date:        txDate,
				Category:    category,
				Color:       color,
			})
			if err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Added %s %s (%s)",
				txn.Type, formatAmount(txn), shortID(txn.ID))))
			return nil
		},
	}

	cmd.Flags().StringVar(&txType, "type", "expense", "transaction type (income, expense)")
	cmd.Flags().StringVar(&txDate, "date", "", "transaction date (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&category, "category", "", "category name (auto-registered on first use)")
	cmd.Flags().StringVar(&color, "color", "#2563eb", "category color token")

	return cmd
}

func listTxCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List transactions, most recent first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			sess, store, err := initSession(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			txns := sess.Transactions()
			if len(txns) == 0 {
				fmt.Println(cli.SubtleStyle.Render("No transactions yet. Use 'budget tx add' to create one."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()

			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t\n", "ID", "Date", "Description", "Category", "Amount")
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t\n",
				strings.Repeat("-", 8),
				strings.Repeat("-", 10),
				strings.Repeat("-", 24),
				strings.Repeat("-", 12),
				strings.Repeat("-", 10))

			// Ledger order is oldest first; display reverses it.
			for i := len(txns) - 1; i >= 0; i-- {
				txn := txns[i]
				amount := formatAmount(txn)
				if txn.Type == model.TypeExpense {
					amount = cli.ExpenseStyle.Render(amount)
				} else {
					amount = cli.IncomeStyle.Render(amount)
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t\n",
					shortID(txn.ID), txn.Date, txn.Description, txn.Category, amount)
			}
			return nil
		},
	}
}

func editTxCmd() *cobra.Command {
	var (
		description string
		amountStr   string
		txType      string
		txDate      string
		category    string
		color       string
	)

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a transaction",
		Long:  `Edit a transaction. Fields not given keep their current value; the same validation as 'tx add' applies.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			sess, store, err := initSession(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			id, err := resolveTransactionID(sess, args[0])
			if err != nil {
				return err
			}

			var existing model.Transaction
			for _, txn := range sess.Transactions() {
				if txn.ID == id {
					existing = txn
					break
				}
			}

			in := session.TransactionInput{
				Description: existing.Description,
				Amount:      existing.Amount,
				Type:        existing.Type,
				Date:        existing.Date,
				Category:    existing.Category,
				Color:       existing.Color,
			}
			if cmd.Flags().Changed("desc") {
				in.Description = description
			}
			if cmd.Flags().Changed("amount") {
				amount, parseErr := strconv.ParseFloat(amountStr, 64)
				if parseErr != nil {
					return fmt.Errorf("%w: %q", common.ErrInvalidAmount, amountStr)
				}
				in.Amount = amount
			}
			if cmd.Flags().Changed("type") {
				in.Type = model.TransactionType(txType)
			}
			if cmd.Flags().Changed("date") {
				in.Date = txDate
			}
			if cmd.Flags().Changed("category") {
				in.Category = category
			}
			if cmd.Flags().Changed("color") {
				in.Color = color
			}

			if err := sess.UpdateTransaction(ctx, id, in); err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Updated transaction %s", shortID(id))))
			return nil
		},
	}

	cmd.Flags().StringVar(&description, "desc", "", "new description")
	cmd.Flags().StringVar(&amountStr, "amount", "", "new amount")
	cmd.Flags().StringVar(&txType, "type", "", "new type (income, expense)")
	cmd.Flags().StringVar(&txDate, "date", "", "new date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&category, "category", "", "new category")
	cmd.Flags().StringVar(&color, "color", "", "new category color token")

	return cmd
}

func removeTxCmd() *cobra.Command {
	var skipConfirm bool

	cmd := &cobra.Command{
		Use:   "rm <id>",
		Short: "Remove a transaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			sess, store, err := initSession(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			id, err := resolveTransactionID(sess, args[0])
			if err != nil {
				return err
			}

			if !skipConfirm {
				ok, confirmErr := cli.NewConfirmer(nil, nil).Confirm("Delete this transaction?")
				if confirmErr != nil {
					return confirmErr
				}
				if !ok {
					fmt.Println(cli.SubtleStyle.Render("Cancelled."))
					return nil
				}
			}

			if err := sess.RemoveTransaction(ctx, id); err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Removed transaction %s", shortID(id))))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&skipConfirm, "yes", "y", false, "skip the confirmation prompt")

	return cmd
}
