package service

import (
	"context"
	"fmt"
	"time"

	"hospital-records/internal/logger"
	"hospital-records/internal/metrics"
	"hospital-records/internal/seeder"

	"github.com/google/uuid"
)

// Seeding presets
const (
	PresetQuick  = "quick"
	PresetLarge  = "large"
	PresetCustom = "custom"
)

var (
	QuickCounts = seeder.Counts{Hospitals: 100, Patients: 100, Doctors: 100, Nurses: 100, Appointments: 200}
	LargeCounts = seeder.Counts{Hospitals: 500, Patients: 500, Doctors: 500, Nurses: 500, Appointments: 1000}
)

type bulkSeeder interface {
	Seed(ctx context.Context, counts seeder.Counts) (map[string]int, error)
}

type SeedService struct {
	seeder    bulkSeeder
	auditRepo auditRecorder
}

func NewSeedService(s bulkSeeder, auditRepo auditRecorder) *SeedService {
	return &SeedService{
		seeder:    s,
		auditRepo: auditRepo,
	}
}

// SeedQuick populates a small dataset
func (s *SeedService) SeedQuick(ctx context.Context, userID *uuid.UUID) (map[string]int, error) {
	return s.run(ctx, PresetQuick, QuickCounts, userID)
}

// SeedLarge populates a larger dataset
func (s *SeedService) SeedLarge(ctx context.Context, userID *uuid.UUID) (map[string]int, error) {
	return s.run(ctx, PresetLarge, LargeCounts, userID)
}

// SeedCustom populates a dataset with caller supplied counts
func (s *SeedService) SeedCustom(ctx context.Context, counts seeder.Counts, userID *uuid.UUID) (map[string]int, error) {
	return s.run(ctx, PresetCustom, counts, userID)
}

func (s *SeedService) run(ctx context.Context, preset string, counts seeder.Counts, userID *uuid.UUID) (map[string]int, error) {
	start := time.Now()
	results, err := s.seeder.Seed(ctx, counts)
	elapsed := time.Since(start)
	metrics.ObserveSeed(preset, elapsed.Seconds(), results, err)

	if err != nil {
		logger.L().Errorw("bulk seed failed", "preset", preset, "counts", counts, "error", err)
		return nil, err
	}

	logger.L().Infow("bulk seed finished", "preset", preset, "results", results, "duration", elapsed)
	details := fmt.Sprintf("Seeded %s preset in %s: %v", preset, elapsed.Round(time.Millisecond), results)
	_ = s.auditRepo.CreateAuditLog(ctx, userID, "bulk_seed", details)

	return results, nil
}
