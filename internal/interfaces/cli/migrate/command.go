package migrate

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/EDUARX24/Tickets-AI/internal/infrastructure/database"
	"github.com/EDUARX24/Tickets-AI/internal/infrastructure/migration"
	"github.com/EDUARX24/Tickets-AI/internal/interfaces/cli/bootstrap"
	httpRouter "github.com/EDUARX24/Tickets-AI/internal/interfaces/http"
	"github.com/EDUARX24/Tickets-AI/internal/shared/logger"
)

type options struct {
	env   string
	steps int
}

// action runs against an open schema. The database is closed afterwards.
type action func(ctx context.Context, s migration.Strategy, log logger.Interface) error

func NewCommand() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the helpdesk schema",
		Long:  `Apply, roll back and inspect the embedded SQL migrations. Only SQL drivers carry a schema; the rest driver is managed by the hosted service.`,
	}
	cmd.PersistentFlags().StringVarP(&opts.env, "env", "e", "development", "Environment (development, test, production)")

	down := &cobra.Command{
		Use:   "down",
		Short: "Roll back the newest migrations",
		RunE:  opts.run(rollback(opts)),
	}
	down.Flags().IntVarP(&opts.steps, "steps", "n", 1, "Number of migrations to roll back")

	cmd.AddCommand(
		&cobra.Command{Use: "up", Short: "Apply pending migrations", RunE: opts.run(apply)},
		down,
		&cobra.Command{Use: "status", Short: "Print the schema version and migration list", RunE: opts.run(status)},
	)
	return cmd
}

func (o *options) run(fn action) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		cfg, log, err := bootstrap.Load(o.env)
		if err != nil {
			return err
		}

		_, db, err := httpRouter.OpenGateway(cfg, log)
		if err != nil {
			return err
		}
		if db == nil {
			return fmt.Errorf("driver %q has no schema to migrate", cfg.Database.Driver)
		}
		defer database.Close(db)

		strategy, err := migration.NewStrategy(cfg.Database.Driver, db, log)
		if err != nil {
			return err
		}
		log = log.With("environment", o.env, "strategy", strategy.Name())

		ctx := cmd.Context()
		if err := fn(ctx, strategy, log); err != nil {
			log.Errorw("migrate command failed", "command", cmd.Name(), "error", err)
			return fmt.Errorf("migrate %s: %w", cmd.Name(), err)
		}
		if cmd.Name() == "status" {
			return nil
		}
		version, err := strategy.Version(ctx)
		if err != nil {
			return fmt.Errorf("read schema version: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "schema at version %d\n", version)
		return nil
	}
}

func apply(ctx context.Context, s migration.Strategy, log logger.Interface) error {
	log.Infow("applying migrations")
	return s.Up(ctx)
}

func rollback(o *options) action {
	return func(ctx context.Context, s migration.Strategy, log logger.Interface) error {
		if o.steps < 1 {
			return fmt.Errorf("--steps must be at least 1, got %d", o.steps)
		}
		log.Infow("rolling back migrations", "steps", o.steps)
		return s.Down(ctx, o.steps)
	}
}

func status(ctx context.Context, s migration.Strategy, log logger.Interface) error {
	version, err := s.Version(ctx)
	if err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}
	log.Infow("schema version", "version", version)
	return s.Status(ctx)
}
