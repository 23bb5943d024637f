package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/blaisecz/health-tracker/internal/domain"
	"github.com/blaisecz/health-tracker/internal/store"
	"github.com/google/uuid"
)

// RecordStore is the store surface the services depend on.
type RecordStore interface {
	Save(ctx context.Context, rec domain.Record, overwrite bool) (store.SaveResult, error)
	Records(ctx context.Context) []domain.Record
	Delete(ctx context.Context, id string) (bool, error)
	OverwriteAll(ctx context.Context, candidates []json.RawMessage) (domain.ImportSummary, error)
	Export(ctx context.Context) ([]byte, error)
}

type RecordService interface {
	// Save constructs a typed record from the request and saves it. The
	// returned result distinguishes created/updated/replaced from a
	// pending daily-uniqueness collision that needs confirmation.
	Save(ctx context.Context, req *domain.SaveRecordRequest) (*domain.Record, store.SaveResult, error)
	List(ctx context.Context) ([]domain.Record, error)
	Delete(ctx context.Context, id string) error
	Import(ctx context.Context, candidates []json.RawMessage) (domain.ImportSummary, error)
	Export(ctx context.Context) ([]byte, error)
}

type recordService struct {
	store RecordStore
}

func NewRecordService(store RecordStore) RecordService {
	return &recordService{store: store}
}

func (s *recordService) Save(ctx context.Context, req *domain.SaveRecordRequest) (*domain.Record, store.SaveResult, error) {
	rec, err := buildRecord(req)
	if err != nil {
		return nil, store.SaveResult{}, err
	}

	result, err := s.store.Save(ctx, rec, req.Overwrite)
	if err != nil {
		return nil, store.SaveResult{}, err
	}
	return &rec, result, nil
}

func buildRecord(req *domain.SaveRecordRequest) (domain.Record, error) {
	id := req.ID
	if id == "" {
		id = uuid.New().String()
	}

	switch req.Kind {
	case domain.KindWeight:
		if req.Weight == nil {
			return domain.Record{}, fmt.Errorf("weight payload missing: %w", domain.ErrInvalidInput)
		}
		return domain.NewWeightRecord(id, req.UserID, req.Date, *req.Weight), nil

	case domain.KindSleep:
		stages := make(map[domain.SleepStage]int, len(req.StageDurations))
		for label, mins := range req.StageDurations {
			stage, ok := domain.ParseSleepStage(label)
			if !ok {
				return domain.Record{}, fmt.Errorf("unknown sleep stage %q: %w", label, domain.ErrInvalidInput)
			}
			stages[stage] = mins
		}
		return domain.NewSleepRecord(id, req.UserID, req.Date, stages), nil

	case domain.KindFood:
		if req.MealType == nil || req.Calories == nil {
			return domain.Record{}, fmt.Errorf("food payload missing: %w", domain.ErrInvalidInput)
		}
		description := ""
		if req.Description != nil {
			description = *req.Description
		}
		return domain.NewFoodRecord(id, req.UserID, req.Date, *req.MealType, description, *req.Calories), nil
	}

	return domain.Record{}, fmt.Errorf("unknown record kind %q: %w", req.Kind, domain.ErrInvalidInput)
}

func (s *recordService) List(ctx context.Context) ([]domain.Record, error) {
	return s.store.Records(ctx), nil
}

func (s *recordService) Delete(ctx context.Context, id string) error {
	// A missing id is a no-op by contract; destructive confirmation is
	// the caller's responsibility before invoking this.
	_, err := s.store.Delete(ctx, id)
	return err
}

func (s *recordService) Import(ctx context.Context, candidates []json.RawMessage) (domain.ImportSummary, error) {
	return s.store.OverwriteAll(ctx, candidates)
}

func (s *recordService) Export(ctx context.Context) ([]byte, error) {
	return s.store.Export(ctx)
}
