package migrate

import (
	"database/sql"
	"fmt"
	"path/filepath"

	"github.com/pressly/goose/v3"
	"github.com/spf13/cobra"

	"revu/internal/infrastructure/config"
	"revu/internal/infrastructure/database"
	"revu/internal/infrastructure/migration"
	"revu/internal/shared/logger"
)

var (
	env   string
	steps int
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration tools",
		Long:  `Manage database migrations: apply pending migrations, roll them back, and check status.`,
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	cmd.AddCommand(
		newUpCommand(),
		newDownCommand(),
		newStatusCommand(),
	)

	return cmd
}

func newUpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Run all pending migrations",
		RunE:  runUp,
	}
}

func newDownCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "down",
		Short: "Rollback migrations",
		RunE:  runDown,
	}

	cmd.Flags().IntVarP(&steps, "steps", "n", 1, "Number of migrations to rollback")

	return cmd
}

func newStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show migration status",
		RunE:  runStatus,
	}
}

func initEnv() (*sql.DB, string, error) {
	cfg, err := config.Load(env)
	if err != nil {
		return nil, "", fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger, cfg.Server.Mode); err != nil {
		return nil, "", fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := database.Init(&cfg.Database); err != nil {
		return nil, "", fmt.Errorf("failed to initialize database: %w", err)
	}

	sqlDB, err := database.Get().DB()
	if err != nil {
		return nil, "", fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	scriptsPath, err := filepath.Abs("./internal/infrastructure/migration/scripts")
	if err != nil {
		return nil, "", fmt.Errorf("failed to resolve scripts path: %w", err)
	}

	if err := goose.SetDialect("mysql"); err != nil {
		return nil, "", fmt.Errorf("failed to set goose dialect: %w", err)
	}

	return sqlDB, scriptsPath, nil
}

func runUp(cmd *cobra.Command, args []string) error {
	_, _, err := initEnv()
	if err != nil {
		return err
	}
	defer database.Close()

	manager := migration.NewManagerWithStrategy(
		migration.NewGooseStrategy(mustScriptsPath()),
	)
	if err := manager.Migrate(database.Get()); err != nil {
		return err
	}

	logger.Info("migrations applied")
	return nil
}

func runDown(cmd *cobra.Command, args []string) error {
	sqlDB, scriptsPath, err := initEnv()
	if err != nil {
		return err
	}
	defer database.Close()

	for i := 0; i < steps; i++ {
		if err := goose.Down(sqlDB, scriptsPath); err != nil {
			return fmt.Errorf("goose down failed: %w", err)
		}
	}

	version, err := goose.GetDBVersion(sqlDB)
	if err != nil {
		return fmt.Errorf("failed to read migration version: %w", err)
	}

	logger.Info("migrations rolled back", "steps", steps, "version", version)
	return nil
}

func runStatus(cmd *cobra.Command, args []string) error {
	sqlDB, scriptsPath, err := initEnv()
	if err != nil {
		return err
	}
	defer database.Close()

	if err := goose.Status(sqlDB, scriptsPath); err != nil {
		return fmt.Errorf("goose status failed: %w", err)
	}

	version, err := goose.GetDBVersion(sqlDB)
	if err != nil {
		return fmt.Errorf("failed to read migration version: %w", err)
	}

	logger.Info("current migration version", "version", version)
	return nil
}

func mustScriptsPath() string {
	scriptsPath, _ := filepath.Abs("./internal/infrastructure/migration/scripts")
	return scriptsPath
}
