package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/joshsymonds/budget-friendly/internal/cli"
)

func profileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Manage profiles",
		Long:  `List, create, and switch between profiles. Each profile owns its own transactions, categories, and settings.`,
	}

	cmd.AddCommand(listProfilesCmd())
	cmd.AddCommand(createProfileCmd())
	cmd.AddCommand(switchProfileCmd())

	return cmd
}

func listProfilesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all profiles",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			sess, store, err := initSession(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			current, _ := sess.Current()

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()

			fmt.Fprintf(w, "%s\t%s\t\n", "ID", "Name")
			fmt.Fprintf(w, "%s\t%s\t\n", strings.Repeat("-", 8), strings.Repeat("-", 20))
			for _, p := range sess.Profiles() {
				marker := ""
				if p.ID == current.ID {
					marker = cli.SuccessStyle.Render(" (current)")
				}
				fmt.Fprintf(w, "%s\t%s%s\t\n", shortID(p.ID), p.Name, marker)
			}
			return nil
		},
	}
}

func createProfileCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "create <name>",
		Short: "Create a new profile and switch to it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			sess, store, err := initSession(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			profile, err := sess.CreateProfile(ctx, args[0])
			if err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Created profile %q and switched to it", profile.Name)))
			return nil
		},
	}
}

func switchProfileCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "switch <id>",
		Short: "Switch the current profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			sess, store, err := initSession(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			// Accept a short id prefix, as shown by profile list.
			id, err := resolveProfileID(sess, args[0])
			if err != nil {
				return err
			}

			if err := sess.SwitchProfile(ctx, id); err != nil {
				return err
			}

			current, _ := sess.Current()
			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Switched to profile %q", current.Name)))
			return nil
		},
	}
}
