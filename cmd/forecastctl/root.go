package main

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"

	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/Dan9191/finance-service/internal/config"
	"github.com/Dan9191/finance-service/internal/repository"
	"github.com/Dan9191/finance-service/internal/service"
)

var (
	flagDB      string
	flagUser    int64
	flagVerbose bool
)

var rootCmd = &cobra.Command{
	Use:           "forecastctl",
	Short:         "Inspect forecasts and manual adjustments",
	Long:          "Operator tool that reads transactions and adjustments straight from the database and prints forecasts.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command and exits non-zero on failure
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDB, "db", os.Getenv("DB_CONN"), "PostgreSQL connection string (defaults to $DB_CONN)")
	rootCmd.PersistentFlags().Int64VarP(&flagUser, "user", "u", 0, "User ID")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log engine diagnostics to stderr")
}

// openService connects to the database and returns a service over it.
// The returned close func releases the connection.
func openService(ctx context.Context) (*service.Service, func() error, error) {
	if flagUser <= 0 {
		return nil, nil, fmt.Errorf("--user is required")
	}
	if flagDB == "" {
		return nil, nil, fmt.Errorf("--db or DB_CONN is required")
	}
	db, err := sql.Open("postgres", flagDB)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open database: %w", err)
	}
	repo := repository.NewRepository(db)
	if err := repo.Ping(ctx); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logger := logrus.New()
	logger.SetOutput(io.Discard)
	if flagVerbose {
		logger.SetOutput(os.Stderr)
		logger.SetLevel(logrus.DebugLevel)
	}
	return service.NewService(repo, logger, &config.Config{DBConn: flagDB}), db.Close, nil
}
