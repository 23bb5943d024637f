package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/blaisecz/health-tracker/internal/domain"
	"github.com/blaisecz/health-tracker/internal/fit"
	"github.com/blaisecz/health-tracker/internal/sleep"
	"github.com/blaisecz/health-tracker/internal/store"
)

// MockRecordStore is a mock implementation of RecordStore
type MockRecordStore struct {
	records    []domain.Record
	saved      []domain.Record
	overwrites []bool
	deleted    []string
	saveResult store.SaveResult
	summary    domain.ImportSummary
	exportData []byte
	err        error
}

func (m *MockRecordStore) Save(ctx context.Context, rec domain.Record, overwrite bool) (store.SaveResult, error) {
	if m.err != nil {
		return store.SaveResult{}, m.err
	}
	m.saved = append(m.saved, rec)
	m.overwrites = append(m.overwrites, overwrite)
	return m.saveResult, nil
}

func (m *MockRecordStore) Records(ctx context.Context) []domain.Record {
	return m.records
}

func (m *MockRecordStore) Delete(ctx context.Context, id string) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	m.deleted = append(m.deleted, id)
	return true, nil
}

func (m *MockRecordStore) OverwriteAll(ctx context.Context, candidates []json.RawMessage) (domain.ImportSummary, error) {
	if m.err != nil {
		return domain.ImportSummary{}, m.err
	}
	return m.summary, nil
}

func (m *MockRecordStore) Export(ctx context.Context) ([]byte, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.exportData, nil
}

// MockFitSource is a mock implementation of FitSource
type MockFitSource struct {
	samples    []fit.WeightSample
	segments   []sleep.Segment
	weightErr  error
	sleepErr   error
	sleepFrom  time.Time
	sleepTo    time.Time
	weightFrom time.Time
	weightTo   time.Time
}

func (m *MockFitSource) WeightSamples(ctx context.Context, from, to time.Time) ([]fit.WeightSample, error) {
	m.weightFrom, m.weightTo = from, to
	if m.weightErr != nil {
		return nil, m.weightErr
	}
	return m.samples, nil
}

func (m *MockFitSource) SleepSegments(ctx context.Context, from, to time.Time) ([]sleep.Segment, error) {
	m.sleepFrom, m.sleepTo = from, to
	if m.sleepErr != nil {
		return nil, m.sleepErr
	}
	return m.segments, nil
}

// MockAdviceLLM is a mock implementation of llm.AdviceLLM
type MockAdviceLLM struct {
	advice string
	err    error
	seen   []domain.Record
}

func (m *MockAdviceLLM) GenerateAdvice(ctx context.Context, records []domain.Record) (string, error) {
	m.seen = records
	if m.err != nil {
		return "", m.err
	}
	return m.advice, nil
}
