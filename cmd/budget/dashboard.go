package main

import (
	"github.com/spf13/cobra"

	"github.com/joshsymonds/budget-friendly/internal/config"
	"github.com/joshsymonds/budget-friendly/internal/tui"
)

func dashboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Open the interactive dashboard",
		Long:  `Open a terminal dashboard showing the current profile's balance, goal progress, recent transactions, and insights.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			sess, store, err := initSession(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			return tui.Run(tui.Config{
				Session:        sess,
				Currency:       config.CurrencySymbol(),
				ThemeName:      sess.Theme(ctx),
				ShowOnboarding: !sess.Onboarded(ctx),
			})
		},
	}
}
