package main

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"hospital-records/internal/database"
	"hospital-records/internal/logger"
	"hospital-records/internal/repository"
	"hospital-records/internal/seeder"
	"hospital-records/internal/service"

	"github.com/spf13/cobra"
)

var customCounts seeder.Counts

var quickCmd = &cobra.Command{
	Use:   "quick",
	Short: "Seed 100 hospitals, patients, doctors and nurses and 200 appointments",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSeed(cmd, func(ctx context.Context, svc *service.SeedService) (map[string]int, error) {
			return svc.SeedQuick(ctx, nil)
		})
	},
}

var largeCmd = &cobra.Command{
	Use:   "large",
	Short: "Seed 500 hospitals, patients, doctors and nurses and 1000 appointments",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSeed(cmd, func(ctx context.Context, svc *service.SeedService) (map[string]int, error) {
			return svc.SeedLarge(ctx, nil)
		})
	},
}

var customCmd = &cobra.Command{
	Use:   "custom",
	Short: "Seed caller supplied counts",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSeed(cmd, func(ctx context.Context, svc *service.SeedService) (map[string]int, error) {
			return svc.SeedCustom(ctx, customCounts, nil)
		})
	},
}

func init() {
	customCmd.Flags().IntVar(&customCounts.Hospitals, "hospitals", 10, "number of hospitals")
	customCmd.Flags().IntVar(&customCounts.Patients, "patients", 10, "number of patients")
	customCmd.Flags().IntVar(&customCounts.Doctors, "doctors", 10, "number of doctors")
	customCmd.Flags().IntVar(&customCounts.Nurses, "nurses", 10, "number of nurses")
	customCmd.Flags().IntVar(&customCounts.Appointments, "appointments", 20, "number of appointments")
}

func runSeed(cmd *cobra.Command, run func(context.Context, *service.SeedService) (map[string]int, error)) error {
	db, err := database.Connect(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = database.Close(db) }()

	if err := database.Migrate(db); err != nil {
		return err
	}

	store := repository.NewSeedStore(db, cfg.Seed.BatchSize)
	svc := service.NewSeedService(
		seeder.New(store, seeder.WithLogger(logger.L())),
		repository.NewAuditRepo(db),
	)

	start := time.Now()
	results, err := run(cmd.Context(), svc)
	if err != nil {
		return fmt.Errorf("seed failed: %w", err)
	}

	printResults(cmd.OutOrStdout(), results, time.Since(start))
	return nil
}

func printResults(out io.Writer, results map[string]int, elapsed time.Duration) {
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "KIND\tCOUNT")
	for _, kind := range seeder.Kinds {
		fmt.Fprintf(tw, "%s\t%d\n", kind, results[kind])
	}
	_ = tw.Flush()
	fmt.Fprintf(out, "done in %s\n", elapsed.Round(time.Millisecond))
}
