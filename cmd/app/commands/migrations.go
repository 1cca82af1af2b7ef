package commands

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/mysql"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/database/sqlite"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/allisson/mediavault/internal/config"
)

// RunMigrations applies every pending migration for the configured driver.
// Returns nil if there is nothing to apply.
func RunMigrations(logger *slog.Logger, dbDriver, dbConnectionString string) error {
	logger.Info("running database migrations", slog.String("driver", dbDriver))

	sourceURL, databaseURL, err := migrationURLs(dbDriver, dbConnectionString)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}

	m, err := migrate.New(sourceURL, databaseURL)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}
	defer closeMigrate(m, logger)

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	logger.Info("migrations completed successfully")
	return nil
}

// migrationURLs returns the migration source directory and the database URL golang-migrate
// expects for the driver. MySQL DSNs and SQLite file paths are given a scheme when missing.
func migrationURLs(dbDriver, dbConnectionString string) (string, string, error) {
	switch dbDriver {
	case config.DriverPostgres:
		return "file://migrations/postgresql", dbConnectionString, nil
	case config.DriverMySQL:
		return "file://migrations/mysql", withScheme("mysql://", dbConnectionString), nil
	case config.DriverSQLite:
		return "file://migrations/sqlite", withScheme("sqlite://", dbConnectionString), nil
	default:
		return "", "", fmt.Errorf("unsupported database driver: %s", dbDriver)
	}
}

func withScheme(scheme, dsn string) string {
	if strings.HasPrefix(dsn, scheme) {
		return dsn
	}
	return scheme + dsn
}
