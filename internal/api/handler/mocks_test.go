package handler

import (
	"context"
	"encoding/json"

	"github.com/blaisecz/health-tracker/internal/domain"
	"github.com/blaisecz/health-tracker/internal/service"
	"github.com/blaisecz/health-tracker/internal/store"
)

// MockRecordService is a mock implementation of RecordService
type MockRecordService struct {
	saveFunc   func(ctx context.Context, req *domain.SaveRecordRequest) (*domain.Record, store.SaveResult, error)
	listFunc   func(ctx context.Context) ([]domain.Record, error)
	deleteFunc func(ctx context.Context, id string) error
	importFunc func(ctx context.Context, candidates []json.RawMessage) (domain.ImportSummary, error)
	exportFunc func(ctx context.Context) ([]byte, error)
}

func (m *MockRecordService) Save(ctx context.Context, req *domain.SaveRecordRequest) (*domain.Record, store.SaveResult, error) {
	if m.saveFunc != nil {
		return m.saveFunc(ctx, req)
	}
	rec := domain.NewWeightRecord("w1", req.UserID, req.Date, 80)
	return &rec, store.SaveResult{Status: store.SaveCreated}, nil
}

func (m *MockRecordService) List(ctx context.Context) ([]domain.Record, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return nil, nil
}

func (m *MockRecordService) Delete(ctx context.Context, id string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}

func (m *MockRecordService) Import(ctx context.Context, candidates []json.RawMessage) (domain.ImportSummary, error) {
	if m.importFunc != nil {
		return m.importFunc(ctx, candidates)
	}
	return domain.ImportSummary{}, nil
}

func (m *MockRecordService) Export(ctx context.Context) ([]byte, error) {
	if m.exportFunc != nil {
		return m.exportFunc(ctx)
	}
	return []byte("[]"), nil
}

// MockSyncService is a mock implementation of SyncService
type MockSyncService struct {
	syncFunc func(ctx context.Context, src service.FitSource, userID string, days int) (*domain.SyncSummary, error)
}

func (m *MockSyncService) SyncFromFit(ctx context.Context, src service.FitSource, userID string, days int) (*domain.SyncSummary, error) {
	if m.syncFunc != nil {
		return m.syncFunc(ctx, src, userID, days)
	}
	return &domain.SyncSummary{}, nil
}

// MockAdviceService is a mock implementation of AdviceService
type MockAdviceService struct {
	generateFunc func(ctx context.Context) (*domain.AdviceResponse, error)
}

func (m *MockAdviceService) Generate(ctx context.Context) (*domain.AdviceResponse, error) {
	if m.generateFunc != nil {
		return m.generateFunc(ctx)
	}
	return &domain.AdviceResponse{Advice: "ok"}, nil
}
