// Package migrate implements the CLI command that manages the schema.
package migrate

import (
	"fmt"

	"github.com/spf13/cobra"

	"larder/internal/infrastructure/config"
	"larder/internal/infrastructure/database"
	"larder/internal/infrastructure/migration"
	"larder/internal/shared/logger"
)

var env string

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration tools",
		Long:  `Bring the database schema up to date with the current models.`,
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	cmd.AddCommand(newUpCommand())

	return cmd
}

func newUpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Run schema migration",
		Long:  `Apply the schema for all models to the configured database.`,
		RunE:  runUp,
	}
}

func initEnv() (logger.Interface, error) {
	cfg, err := config.Load(env)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := database.Init(&cfg.Database); err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return logger.NewLogger(), nil
}

func runUp(cmd *cobra.Command, args []string) error {
	log, err := initEnv()
	if err != nil {
		return err
	}
	defer database.Close()

	log.Infow("running schema migration", "environment", env)

	if err := migration.Run(database.Get()); err != nil {
		log.Errorw("migration failed", "error", err)
		return fmt.Errorf("migration failed: %w", err)
	}

	log.Infow("migration completed successfully")
	return nil
}
