package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/kriskaras/realtech-arv-v1/api"
	"github.com/kriskaras/realtech-arv-v1/config"
	"github.com/kriskaras/realtech-arv-v1/services"
	"github.com/kriskaras/realtech-arv-v1/storage"
	"github.com/kriskaras/realtech-arv-v1/utils"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "arv",
		Short: "ARV demo backend: sale ingestion and estimate API",
		Long: `arv is the backend for the after-repair-value demo. It seeds a
PostgreSQL store from a CSV of historical property sales and serves the
estimate and sales-listing endpoints used by the web view.`,
		SilenceUsage: true,
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Help()
		},
	}

	rootCmd.AddCommand(newSeedCmd(), newServeCmd())
	return rootCmd
}

func newSeedCmd() *cobra.Command {
	var csvPath string
	var batchSize int

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Replace the sales table with the contents of a CSV file",
		RunE: func(c *cobra.Command, args []string) error {
			cfg := config.Load()
			if csvPath != "" {
				cfg.CSVPath = csvPath
			}
			if batchSize > 0 {
				cfg.BatchSize = batchSize
			}
			return runSeed(cfg)
		},
	}

	cmd.Flags().StringVarP(&csvPath, "csv", "c", "", "Path to the sales CSV file")
	cmd.Flags().IntVarP(&batchSize, "batch-size", "b", 0, "Rows per insert batch")
	return cmd
}

func newServeCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the estimate and sales API",
		RunE: func(c *cobra.Command, args []string) error {
			cfg := config.Load()
			if addr != "" {
				cfg.HTTPAddr = addr
			}
			return runServe(cfg)
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", "", "Listen address")
	return cmd
}

func runSeed(cfg *config.Config) error {
	logger := utils.NewLogger()
	logger.Info("=== ARV sale seeder starting ===")
	logger.Info("Config — csv: %s | batch size: %d", cfg.CSVPath, cfg.BatchSize)

	rows, err := storage.ReadSalesCSV(cfg.CSVPath)
	if err != nil {
		logger.Error("Failed to read sales CSV: %v", err)
		return err
	}
	logger.Info("Read %d raw rows from %s", len(rows), cfg.CSVPath)

	normalizer := services.NewNormalizer(logger)
	sales := normalizer.Normalize(rows)

	store, err := storage.NewPostgresStore(cfg.DSN())
	if err != nil {
		logger.Error("Failed to connect to PostgreSQL: %v", err)
		logger.Error("Make sure Docker is running: docker compose up -d")
		return err
	}
	defer store.Close()

	seeder := services.NewSeeder(store, logger, cfg.BatchSize)
	count, err := seeder.Run(sales)
	if err != nil {
		logger.Error("Seeding failed: %v", err)
		return err
	}

	logger.Info("Seeded Sale rows: %d", count)

	insightSvc := services.NewInsightService(logger)
	insightSvc.Print(insightSvc.Generate(sales))
	return nil
}

func runServe(cfg *config.Config) error {
	logger := utils.NewLogger()
	logger.Info("=== ARV API server starting ===")

	store, err := storage.NewPostgresStore(cfg.DSN())
	if err != nil {
		logger.Error("Failed to connect to PostgreSQL: %v", err)
		return err
	}
	defer store.Close()

	server := api.NewServer(store, logger, cfg.SalesLimit)
	return server.ListenAndServe(cfg.HTTPAddr)
}
