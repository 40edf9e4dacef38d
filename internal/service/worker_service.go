package service

import (
	"context"
	"time"

	"hospital-records/internal/logger"
	"hospital-records/internal/metrics"
)

// RowCounter reports the number of rows of one record kind
type RowCounter interface {
	Count(ctx context.Context) (int64, error)
}

// WorkerService periodically publishes table sizes as Prometheus gauges
type WorkerService struct {
	counters map[string]RowCounter
	interval time.Duration
}

func NewWorkerService(counters map[string]RowCounter, interval time.Duration) *WorkerService {
	return &WorkerService{
		counters: counters,
		interval: interval,
	}
}

// Start begins the background worker. It returns when ctx is cancelled.
func (w *WorkerService) Start(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	logger.L().Infow("record count worker started", "interval", w.interval)
	w.refresh(ctx)

	for {
		select {
		case <-ctx.Done():
			logger.L().Info("record count worker stopped")
			return
		case <-ticker.C:
			w.refresh(ctx)
		}
	}
}

func (w *WorkerService) refresh(ctx context.Context) {
	for kind, counter := range w.counters {
		n, err := counter.Count(ctx)
		if err != nil {
			logger.L().Warnw("failed to count records", "kind", kind, "error", err)
			continue
		}
		metrics.RecordsTotal.WithLabelValues(kind).Set(float64(n))
	}
}
