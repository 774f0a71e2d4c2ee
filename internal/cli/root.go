// Package cli implements localectl, the operator command line for the
// localization backend.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/localize-backend/internal/adapter/postgres"
	"github.com/heartmarshall/localize-backend/internal/app"
	"github.com/heartmarshall/localize-backend/internal/config"
	"github.com/heartmarshall/localize-backend/pkg/ctxutil"
)

// env is the state shared by subcommands. It is filled by the root
// command's PersistentPreRunE.
type env struct {
	cfg        *config.Config
	log        *slog.Logger
	configPath string
	userID     int64
}

// NewRootCmd builds the localectl command tree.
func NewRootCmd() *cobra.Command {
	e := &env{}

	root := &cobra.Command{
		Use:   "localectl",
		Short: "Operate the localization backend",
		Long: `localectl applies database migrations, imports and exports translation
documents and prints the project activity feed.

Configuration is read the same way the server reads it (CONFIG_PATH and
environment variables) unless --config names a file.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			load := config.Load
			if e.configPath != "" {
				load = func() (*config.Config, error) { return config.LoadFile(e.configPath) }
			}
			cfg, err := load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			e.cfg = cfg
			e.log = app.NewLoggerTo(cmd.ErrOrStderr(), cfg.Log)
			return nil
		},
	}

	root.PersistentFlags().StringVar(&e.configPath, "config", "", "config file (default: CONFIG_PATH or ./config.yaml)")
	root.PersistentFlags().Int64Var(&e.userID, "user-id", 0, "act as this user for access checks and revision authorship")

	root.AddCommand(newMigrateCmd(e))
	root.AddCommand(newImportCmd(e))
	root.AddCommand(newExportCmd(e))
	root.AddCommand(newActivityCmd(e))
	root.AddCommand(newVersionCmd())

	return root
}

// Execute runs localectl with the given context.
func Execute(ctx context.Context) error {
	return NewRootCmd().ExecuteContext(ctx)
}

// services connects to the database and wires the service layer. The
// returned func closes the pool.
func (e *env) services(ctx context.Context) (*app.Services, func(), error) {
	pool, err := postgres.NewPool(ctx, e.cfg.Database, e.log)
	if err != nil {
		return nil, nil, fmt.Errorf("connect to database: %w", err)
	}
	return app.NewServices(pool, e.cfg, e.log), pool.Close, nil
}

// actorContext attaches the --user-id identity. Project operations refuse
// anonymous callers.
func (e *env) actorContext(ctx context.Context) (context.Context, error) {
	if e.userID <= 0 {
		return nil, fmt.Errorf("--user-id is required")
	}
	return ctxutil.WithUserID(ctx, e.userID), nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the build version",
		// Skip config loading.
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		Run: func(cmd *cobra.Command, _ []string) {
			printVersion(cmd.OutOrStdout())
		},
	}
}

func printVersion(w io.Writer) {
	fmt.Fprintf(w, "localectl %s\n", app.BuildVersion())
}
