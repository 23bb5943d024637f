package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/blaisecz/health-tracker/internal/domain"
	"github.com/blaisecz/health-tracker/internal/store"
)

// Mocks are defined in mocks_test.go

func floatPtr(f float64) *float64 { return &f }
func intPtr(i int) *int           { return &i }
func mealPtr(m domain.MealType) *domain.MealType {
	return &m
}

func TestRecordService_Save(t *testing.T) {
	date := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		req      *domain.SaveRecordRequest
		wantKind domain.RecordKind
		wantErr  error
	}{
		{
			name: "weight record",
			req: &domain.SaveRecordRequest{
				UserID: "u1",
				Date:   date,
				Kind:   domain.KindWeight,
				Weight: floatPtr(80.5),
			},
			wantKind: domain.KindWeight,
		},
		{
			name: "sleep record",
			req: &domain.SaveRecordRequest{
				UserID:         "u1",
				Date:           date,
				Kind:           domain.KindSleep,
				StageDurations: map[string]int{"deep": 90, "LIGHT": 200},
			},
			wantKind: domain.KindSleep,
		},
		{
			name: "food record",
			req: &domain.SaveRecordRequest{
				UserID:      "u1",
				Date:        date,
				Kind:        domain.KindFood,
				MealType:    mealPtr(domain.MealLunch),
				Calories:    intPtr(400),
				Description: nil,
			},
			wantKind: domain.KindFood,
		},
		{
			name: "unknown sleep stage rejected",
			req: &domain.SaveRecordRequest{
				UserID:         "u1",
				Date:           date,
				Kind:           domain.KindSleep,
				StageDurations: map[string]int{"coma": 90},
			},
			wantErr: domain.ErrInvalidInput,
		},
		{
			name: "weight payload missing",
			req: &domain.SaveRecordRequest{
				UserID: "u1",
				Date:   date,
				Kind:   domain.KindWeight,
			},
			wantErr: domain.ErrInvalidInput,
		},
		{
			name: "food payload missing",
			req: &domain.SaveRecordRequest{
				UserID: "u1",
				Date:   date,
				Kind:   domain.KindFood,
			},
			wantErr: domain.ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockStore := &MockRecordStore{saveResult: store.SaveResult{Status: store.SaveCreated}}
			svc := NewRecordService(mockStore)

			rec, result, err := svc.Save(context.Background(), tt.req)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Save() error = %v, want %v", err, tt.wantErr)
				}
				if len(mockStore.saved) != 0 {
					t.Errorf("store written despite invalid request")
				}
				return
			}
			if err != nil {
				t.Fatalf("Save() error = %v", err)
			}
			if rec.Kind != tt.wantKind {
				t.Errorf("Save() kind = %v, want %v", rec.Kind, tt.wantKind)
			}
			if rec.ID == "" {
				t.Error("Save() did not assign an id")
			}
			if result.Status != store.SaveCreated {
				t.Errorf("Save() status = %v", result.Status)
			}
		})
	}
}

func TestRecordService_SaveKeepsProvidedID(t *testing.T) {
	mockStore := &MockRecordStore{saveResult: store.SaveResult{Status: store.SaveUpdated}}
	svc := NewRecordService(mockStore)

	req := &domain.SaveRecordRequest{
		ID:     "existing-id",
		UserID: "u1",
		Date:   time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC),
		Kind:   domain.KindWeight,
		Weight: floatPtr(79),
	}
	rec, _, err := svc.Save(context.Background(), req)
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if rec.ID != "existing-id" {
		t.Errorf("Save() replaced provided id with %q", rec.ID)
	}
}

func TestRecordService_SavePassesOverwriteFlag(t *testing.T) {
	mockStore := &MockRecordStore{saveResult: store.SaveResult{Status: store.SaveReplacedDay}}
	svc := NewRecordService(mockStore)

	req := &domain.SaveRecordRequest{
		UserID:    "u1",
		Date:      time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC),
		Kind:      domain.KindWeight,
		Weight:    floatPtr(79),
		Overwrite: true,
	}
	if _, _, err := svc.Save(context.Background(), req); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if len(mockStore.overwrites) != 1 || !mockStore.overwrites[0] {
		t.Errorf("overwrite flag not forwarded: %v", mockStore.overwrites)
	}
}

func TestRecordService_Delete(t *testing.T) {
	mockStore := &MockRecordStore{}
	svc := NewRecordService(mockStore)

	if err := svc.Delete(context.Background(), "w1"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if len(mockStore.deleted) != 1 || mockStore.deleted[0] != "w1" {
		t.Errorf("delete not forwarded: %v", mockStore.deleted)
	}
}

func TestRecordService_Import(t *testing.T) {
	mockStore := &MockRecordStore{summary: domain.ImportSummary{Imported: 2, Skipped: 1}}
	svc := NewRecordService(mockStore)

	summary, err := svc.Import(context.Background(), nil)
	if err != nil {
		t.Fatalf("Import() error = %v", err)
	}
	if summary.Imported != 2 || summary.Skipped != 1 {
		t.Errorf("Import() summary = %+v", summary)
	}
}
