package service

import (
	"context"
	"fmt"
	"time"

	"github.com/blaisecz/health-tracker/internal/domain"
	"github.com/blaisecz/health-tracker/internal/fit"
	"github.com/blaisecz/health-tracker/internal/sleep"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// DefaultSyncDays is the history window fetched when the request does not
// specify one.
const DefaultSyncDays = 30

// FitSource provides the raw provider data the sync pipeline consumes.
// The production implementation is fit.Client; tests substitute a stub.
type FitSource interface {
	WeightSamples(ctx context.Context, from, to time.Time) ([]fit.WeightSample, error)
	SleepSegments(ctx context.Context, from, to time.Time) ([]sleep.Segment, error)
}

// SyncService pulls weight samples and sleep segments from the fitness
// provider, aggregates sleep into nights, and bulk-saves the resulting
// records.
type SyncService interface {
	SyncFromFit(ctx context.Context, src FitSource, userID string, days int) (*domain.SyncSummary, error)
}

type syncService struct {
	store      RecordStore
	aggregator *sleep.Aggregator
}

func NewSyncService(store RecordStore, aggregator *sleep.Aggregator) SyncService {
	return &syncService{
		store:      store,
		aggregator: aggregator,
	}
}

func (s *syncService) SyncFromFit(ctx context.Context, src FitSource, userID string, days int) (*domain.SyncSummary, error) {
	if days <= 0 {
		days = DefaultSyncDays
	}
	now := time.Now().UTC()
	from := now.AddDate(0, 0, -days)

	tracer := otel.Tracer("health-tracker-api/sync")
	ctx, span := tracer.Start(ctx, "SyncService.SyncFromFit",
		trace.WithAttributes(
			attribute.String("user.id", userID),
			attribute.Int("window.days", days),
		),
	)
	defer span.End()

	summary := &domain.SyncSummary{}

	samples, err := src.WeightSamples(ctx, from, now)
	if err != nil {
		return nil, fmt.Errorf("fetch weight samples: %w", err)
	}
	for _, sample := range samples {
		rec := domain.NewWeightRecord(
			fmt.Sprintf("%sw-%d", domain.ExternalIDPrefix, sample.Date.UnixMilli()),
			userID,
			sample.Date,
			sample.WeightKg,
		)
		if _, err := s.store.Save(ctx, rec, false); err != nil {
			return nil, fmt.Errorf("save weight record: %w", err)
		}
		summary.WeightRecords++
	}

	// Extend the sleep window a day past each edge, anchored at noon, so
	// a night spanning midnight at either boundary is fetched whole.
	sleepFrom := noonUTC(from).AddDate(0, 0, -1)
	sleepTo := noonUTC(now).AddDate(0, 0, 1)

	segments, err := src.SleepSegments(ctx, sleepFrom, sleepTo)
	if err != nil {
		return nil, fmt.Errorf("fetch sleep segments: %w", err)
	}
	for _, night := range s.aggregator.Nights(segments) {
		rec := domain.NewSleepRecord(
			fmt.Sprintf("%ss-%d", domain.ExternalIDPrefix, night.Date.UnixMilli()),
			userID,
			night.Date,
			night.Stages,
		)
		if _, err := s.store.Save(ctx, rec, false); err != nil {
			return nil, fmt.Errorf("save sleep record: %w", err)
		}
		summary.SleepRecords++
	}

	span.SetAttributes(
		attribute.Int("sync.weight_records", summary.WeightRecords),
		attribute.Int("sync.sleep_records", summary.SleepRecords),
	)
	return summary, nil
}

func noonUTC(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 12, 0, 0, 0, time.UTC)
}
