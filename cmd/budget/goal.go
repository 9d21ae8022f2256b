package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/joshsymonds/budget-friendly/internal/cli"
	"github.com/joshsymonds/budget-friendly/internal/common"
	"github.com/joshsymonds/budget-friendly/internal/insights"
)

func goalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "goal",
		Short: "Manage the monthly spending goal",
	}

	cmd.AddCommand(setGoalCmd())
	cmd.AddCommand(showGoalCmd())

	return cmd
}

func setGoalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <amount>",
		Short: "Set the monthly spending goal (0 clears it)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			goal, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("%w: %q", common.ErrInvalidAmount, args[0])
			}

			sess, store, err := initSession(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			if err := sess.SetMonthlyGoal(ctx, goal); err != nil {
				return err
			}

			if goal == 0 {
				fmt.Println(cli.FormatSuccess("Cleared the monthly goal"))
			} else {
				fmt.Println(cli.FormatSuccess(fmt.Sprintf("Set monthly goal to %.2f", goal)))
			}
			return nil
		},
	}
}

func showGoalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show goal progress for the current month",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			sess, store, err := initSession(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			progress := insights.ComputeGoalProgress(
				sess.Transactions(),
				sess.Settings().MonthlyGoal,
				time.Now().Format("2006-01"))

			fmt.Println(progress.Meta())
			if msg := progress.Motivation(); msg != "" {
				fmt.Println(msg)
			}
			return nil
		},
	}
}
