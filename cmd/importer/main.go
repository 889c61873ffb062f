package main

import (
	"fmt"
	"os"
	"time"

	"github.com/GoSim-25-26J-441/clan-api/config"
	"github.com/GoSim-25-26J-441/clan-api/internal/bootstrap"
	"github.com/GoSim-25-26J-441/clan-api/internal/clans/importer"
	"github.com/GoSim-25-26J-441/clan-api/internal/clans/repository"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	csvPath string
	logger  *zap.Logger
	cfg     *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "clan-import",
	Short: "Load clans from a CSV export into the clans table",
	Long: `Reads a CSV with name, region and optional created_at columns and inserts
one row per record. Rows without a name or region are skipped; regions are
uppercased. created_at values that cannot be parsed are replaced with the
import time.

Rows are inserted one at a time without a transaction: if an insert fails
the run stops and the rows written before it stay in the table.

Example:
  clan-import --file ./clan_sample_data.csv`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if cfg, err = config.Load(); err != nil {
			return err
		}
		logger, err = bootstrap.NewLogger(cfg.App.Environment, cfg.App.LogLevel)
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runImport,
}

func init() {
	rootCmd.Flags().StringVarP(&csvPath, "file", "f", "./clan_sample_data.csv", "path to the CSV file")
}

func runImport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	f, err := os.Open(csvPath)
	if err != nil {
		return fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()

	rows, stats, err := importer.ReadCSV(f, time.Now)
	if err != nil {
		return err
	}
	logger.Info("csv parsed",
		zap.String("file", csvPath),
		zap.Int("read", stats.Read),
		zap.Int("skipped", stats.Skipped),
		zap.Int("created_at_defaulted", stats.Defaulted),
	)

	db, err := bootstrap.OpenDB(ctx, &cfg.Database)
	if err != nil {
		return err
	}
	defer db.Close()

	inserted, err := importer.Run(ctx, repository.NewClanRepository(db), rows)
	logger.Info("inserted rows", zap.Int("inserted", inserted))
	return err
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
