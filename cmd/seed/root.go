package main

import (
	"fmt"
	"os"

	"hospital-records/internal/config"
	"hospital-records/internal/logger"

	"github.com/spf13/cobra"
)

var (
	cfg       *config.Config
	batchSize int
	logLevel  string

	rootCmd = &cobra.Command{
		Use:   "seed",
		Short: "Populate the hospital records database with synthetic data",
		Long:  "seed generates a referentially consistent synthetic dataset (hospitals, wards, staff, patients and clinical records) and writes it in a single transaction.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg = config.LoadConfig()
			if cmd.Flags().Changed("batch-size") {
				cfg.Seed.BatchSize = batchSize
			}
			if logLevel == "" {
				logLevel = cfg.Log.Level
			}
			if err := logger.InitLogger(logLevel, false); err != nil {
				return fmt.Errorf("init logger: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			logger.Sync()
		},
		SilenceUsage: true,
	}
)

func init() {
	rootCmd.PersistentFlags().IntVar(&batchSize, "batch-size", 200, "rows per INSERT statement (overrides SEED_BATCH_SIZE)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "debug, info, warn or error (overrides LOG_LEVEL)")

	rootCmd.AddCommand(quickCmd)
	rootCmd.AddCommand(largeCmd)
	rootCmd.AddCommand(customCmd)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
