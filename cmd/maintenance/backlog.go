package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	util "github.com/saulo-duarte/personal-lambda/internal/utils"
)

func newMarkMissedCmd(a *app) *cobra.Command {
	var (
		today  string
		dryRun bool
	)

	cmd := &cobra.Command{
		Use:   "mark-missed",
		Short: "Flag open backlog tasks whose due date has passed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if today == "" {
				today = util.Today(time.Now())
			}
			if !util.IsCivilDate(today) {
				return fmt.Errorf("--today must be YYYY-MM-DD, got %q", today)
			}

			svc := a.c.BacklogContainer.Service
			out := cmd.OutOrStdout()

			if dryRun {
				tasks, err := svc.Overdue(cmd.Context(), today)
				if err != nil {
					return err
				}
				for _, t := range tasks {
					fmt.Fprintf(out, "%s\t%s\t%s\n", t.ID.Hex(), t.DueDate, t.Name)
				}
				fmt.Fprintf(out, "%d task(s) would be marked missed as of %s\n", len(tasks), today)
				return nil
			}

			res, err := svc.MarkMissed(cmd.Context(), today)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "matched %d, marked %d task(s) missed as of %s\n", res.MatchedCount, res.ModifiedCount, today)
			return nil
		},
	}

	cmd.Flags().StringVar(&today, "today", "", "civil date to compare due dates against (default: today in New York)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "list the tasks without updating them")
	return cmd
}

func newSessionToSizeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "session-to-size",
		Short: "Replace the retired Session field with Size",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			migrations, err := a.c.BacklogContainer.Service.MigrateSessionToSize(cmd.Context())
			for _, m := range migrations {
				from := m.Session
				if from == "" {
					from = "(none)"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s -> %s: %d\n", from, m.Size, m.Modified)
			}
			return err
		},
	}
}
