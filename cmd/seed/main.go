package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"prepai/config"
	"prepai/internal/errors"
	logs "prepai/internal/infra/log"
	"prepai/internal/infra/persistence/postgres"
	"prepai/internal/infra/seed"
	"prepai/internal/usecase"
	"prepai/internal/usecase/impl"

	"github.com/spf13/cobra"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const runTimeout = 5 * time.Minute

type options struct {
	env            string
	skipMigrations bool
}

// deps is what the seed commands pull out of the fx graph.
type deps struct {
	fx.In

	DB     *gorm.DB
	Logger *slog.Logger
	Seed   usecase.SeedUsecase
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:           "seed",
		Short:         "Apply migrations and load the sample practice content",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withDeps(cmd.Context(), opts, func(ctx context.Context, d deps) error {
				if !opts.skipMigrations {
					if err := migrate(ctx, d); err != nil {
						return err
					}
				}

				d.Logger.Info("Starting database seeding...")
				report, err := d.Seed.Seed(ctx)
				if err != nil {
					return err
				}
				d.Logger.Info("Database seeding completed!",
					slog.Int("problemsCreated", report.ProblemsCreated),
					slog.Int("problemsSkipped", report.ProblemsSkipped),
					slog.Int("questionsCreated", report.QuestionsCreated),
					slog.Int("questionsSkipped", report.QuestionsSkipped))

				return nil
			})
		},
	}

	cmd.PersistentFlags().StringVar(&opts.env, "env", "config", "config file name without extension")
	cmd.Flags().BoolVar(&opts.skipMigrations, "skip-migrations", false, "seed without applying migrations first")

	cmd.AddCommand(&cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations only",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withDeps(cmd.Context(), opts, migrate)
		},
	})

	return cmd
}

func migrate(ctx context.Context, d deps) error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return errors.Wrap(err, "failed to get sql.DB")
	}
	if err := postgres.RunMigrations(ctx, sqlDB); err != nil {
		return err
	}
	d.Logger.Info("Migrations applied")

	return nil
}

// cliOwnsMigrations turns off the start hook migration so only the commands decide when to migrate.
func cliOwnsMigrations(cfg *config.Config) *config.Config {
	if cfg.Database == nil {
		cfg.Database = &config.DatabaseConfig{}
	}
	cfg.Database.AutoMigrate = false

	return cfg
}

// withDeps starts a minimal fx graph, runs fn and always releases the database.
// Failures are logged as "Error during seeding" and returned so main exits non-zero.
func withDeps(parent context.Context, opts options, fn func(context.Context, deps) error) (err error) {
	ctx, cancel := context.WithTimeout(parent, runTimeout)
	defer cancel()

	var d deps
	app := fx.New(
		fx.NopLogger,
		fx.Provide(
			func() (*config.Config, error) { return config.NewForEnv(opts.env) },
			logs.New,
			postgres.New,
			postgres.NewUserRepository,
			postgres.NewAuthRepository,
			postgres.NewProblemRepository,
			postgres.NewQuestionRepository,
			postgres.NewTransactionManager,
			seed.NewEmbeddedDataset,
			impl.NewSeedService,
		),
		fx.Decorate(cliOwnsMigrations),
		fx.Invoke(func(resolved deps) { d = resolved }),
	)
	if err := app.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "Error during seeding: %v\n", err)

		return err
	}

	if err := app.Start(ctx); err != nil {
		d.logError(err)

		return err
	}
	defer func() {
		if stopErr := app.Stop(context.Background()); stopErr != nil && err == nil {
			err = stopErr
		}
	}()

	if err := fn(ctx, d); err != nil {
		d.logError(err)

		return err
	}

	return nil
}

func (d deps) logError(err error) {
	if d.Logger == nil {
		fmt.Fprintf(os.Stderr, "Error during seeding: %v\n", err)

		return
	}
	d.Logger.Error("Error during seeding", slog.Any("error", err))
}
