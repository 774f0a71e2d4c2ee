package cli

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/pressly/goose/v3"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/localize-backend/internal/adapter/postgres"
)

func newMigrateCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the database schema",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			m, err := postgres.NewMigrator(ctx, e.cfg.Database.DSN)
			if err != nil {
				return err
			}
			defer m.Close()

			results, err := m.Up(ctx)
			for _, r := range results {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %-40s %s\n",
					okStyle.Render("applied"), filepath.Base(r.Source.Path), r.Duration.Round(time.Millisecond))
			}
			if err != nil {
				return err
			}
			if len(results) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "Schema is up to date")
			}
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "Show applied and pending migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			m, err := postgres.NewMigrator(ctx, e.cfg.Database.DSN)
			if err != nil {
				return err
			}
			defer m.Close()

			statuses, err := m.Status(ctx)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, headerStyle.Render(fmt.Sprintf("%-8s %-40s %-20s", "VERSION", "FILE", "APPLIED")))
			for _, st := range statuses {
				applied := mutedStyle.Render("pending")
				if st.State == goose.StateApplied {
					applied = st.AppliedAt.Local().Format("2006-01-02 15:04:05")
				}
				fmt.Fprintf(out, "%-8d %-40s %s\n", st.Source.Version, filepath.Base(st.Source.Path), applied)
			}
			return nil
		},
	})

	return cmd
}
