package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/blaisecz/health-tracker/internal/domain"
	"github.com/blaisecz/health-tracker/internal/store"
	"github.com/go-chi/chi/v5"
)

func TestRecordHandler_Save(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		mockService    *MockRecordService
		wantStatusCode int
	}{
		{
			name: "new weight record",
			body: `{"userId": "u1", "date": "2024-03-01T08:00:00Z", "kind": "weight", "weight": 80.5}`,
			mockService: &MockRecordService{
				saveFunc: func(ctx context.Context, req *domain.SaveRecordRequest) (*domain.Record, store.SaveResult, error) {
					rec := domain.NewWeightRecord("w1", req.UserID, req.Date, *req.Weight)
					return &rec, store.SaveResult{Status: store.SaveCreated}, nil
				},
			},
			wantStatusCode: http.StatusCreated,
		},
		{
			name: "edit returns 200",
			body: `{"id": "w1", "userId": "u1", "date": "2024-03-01T08:00:00Z", "kind": "weight", "weight": 79}`,
			mockService: &MockRecordService{
				saveFunc: func(ctx context.Context, req *domain.SaveRecordRequest) (*domain.Record, store.SaveResult, error) {
					rec := domain.NewWeightRecord(req.ID, req.UserID, req.Date, *req.Weight)
					return &rec, store.SaveResult{Status: store.SaveUpdated}, nil
				},
			},
			wantStatusCode: http.StatusOK,
		},
		{
			name: "daily collision returns 409",
			body: `{"userId": "u1", "date": "2024-03-01T08:00:00Z", "kind": "weight", "weight": 79}`,
			mockService: &MockRecordService{
				saveFunc: func(ctx context.Context, req *domain.SaveRecordRequest) (*domain.Record, store.SaveResult, error) {
					existing := domain.NewWeightRecord("w0", "u1", req.Date, 80)
					rec := domain.NewWeightRecord("w1", req.UserID, req.Date, *req.Weight)
					return &rec, store.SaveResult{Status: store.SaveNeedsConfirmation, Existing: &existing}, nil
				},
			},
			wantStatusCode: http.StatusConflict,
		},
		{
			name: "confirmed overwrite returns 200",
			body: `{"userId": "u1", "date": "2024-03-01T08:00:00Z", "kind": "weight", "weight": 79, "overwrite": true}`,
			mockService: &MockRecordService{
				saveFunc: func(ctx context.Context, req *domain.SaveRecordRequest) (*domain.Record, store.SaveResult, error) {
					rec := domain.NewWeightRecord("w1", req.UserID, req.Date, *req.Weight)
					return &rec, store.SaveResult{Status: store.SaveReplacedDay}, nil
				},
			},
			wantStatusCode: http.StatusOK,
		},
		{
			name:           "malformed JSON",
			body:           `{nope`,
			mockService:    &MockRecordService{},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name:           "missing userId fails validation",
			body:           `{"date": "2024-03-01T08:00:00Z", "kind": "weight", "weight": 80}`,
			mockService:    &MockRecordService{},
			wantStatusCode: http.StatusUnprocessableEntity,
		},
		{
			name:           "unknown kind fails validation",
			body:           `{"userId": "u1", "date": "2024-03-01T08:00:00Z", "kind": "mood"}`,
			mockService:    &MockRecordService{},
			wantStatusCode: http.StatusUnprocessableEntity,
		},
		{
			name:           "weight payload missing fails validation",
			body:           `{"userId": "u1", "date": "2024-03-01T08:00:00Z", "kind": "weight"}`,
			mockService:    &MockRecordService{},
			wantStatusCode: http.StatusUnprocessableEntity,
		},
		{
			name: "invalid input from service",
			body: `{"userId": "u1", "date": "2024-03-01T08:00:00Z", "kind": "sleep", "stageDurations": {"coma": 90}}`,
			mockService: &MockRecordService{
				saveFunc: func(ctx context.Context, req *domain.SaveRecordRequest) (*domain.Record, store.SaveResult, error) {
					return nil, store.SaveResult{}, domain.ErrInvalidInput
				},
			},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name: "persistence failure",
			body: `{"userId": "u1", "date": "2024-03-01T08:00:00Z", "kind": "weight", "weight": 80}`,
			mockService: &MockRecordService{
				saveFunc: func(ctx context.Context, req *domain.SaveRecordRequest) (*domain.Record, store.SaveResult, error) {
					return nil, store.SaveResult{}, errors.New("disk full")
				},
			},
			wantStatusCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewRecordHandler(tt.mockService)

			req := httptest.NewRequest(http.MethodPost, "/v1/records", bytes.NewBufferString(tt.body))
			resp := httptest.NewRecorder()
			h.Save(resp, req)

			if resp.Code != tt.wantStatusCode {
				t.Errorf("Save() status = %d, want %d (body: %s)", resp.Code, tt.wantStatusCode, resp.Body.String())
			}
		})
	}
}

func TestRecordHandler_SaveResponseBody(t *testing.T) {
	h := NewRecordHandler(&MockRecordService{})

	body := `{"userId": "u1", "date": "2024-03-01T08:00:00Z", "kind": "weight", "weight": 80.5}`
	req := httptest.NewRequest(http.MethodPost, "/v1/records", bytes.NewBufferString(body))
	resp := httptest.NewRecorder()
	h.Save(resp, req)

	var decoded domain.RecordResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if decoded.ID == "" || decoded.Kind != domain.KindWeight {
		t.Errorf("unexpected response payload: %+v", decoded)
	}
}

func TestRecordHandler_List(t *testing.T) {
	date := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
	mockService := &MockRecordService{
		listFunc: func(ctx context.Context) ([]domain.Record, error) {
			return []domain.Record{
				domain.NewWeightRecord("w1", "u1", date, 80),
				domain.NewFoodRecord("f1", "u1", date, domain.MealLunch, "salad", 400),
			}, nil
		},
	}
	h := NewRecordHandler(mockService)

	req := httptest.NewRequest(http.MethodGet, "/v1/records", nil)
	resp := httptest.NewRecorder()
	h.List(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("List() status = %d", resp.Code)
	}
	var decoded domain.RecordListResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if decoded.Count != 2 || len(decoded.Data) != 2 {
		t.Errorf("List() = %+v, want 2 records", decoded)
	}
}

func TestRecordHandler_Delete(t *testing.T) {
	tests := []struct {
		name           string
		mockService    *MockRecordService
		wantStatusCode int
	}{
		{
			name:           "removes record",
			mockService:    &MockRecordService{},
			wantStatusCode: http.StatusNoContent,
		},
		{
			name: "persistence failure",
			mockService: &MockRecordService{
				deleteFunc: func(ctx context.Context, id string) error {
					return errors.New("disk full")
				},
			},
			wantStatusCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewRecordHandler(tt.mockService)

			r := chi.NewRouter()
			r.Delete("/v1/records/{recordId}", h.Delete)

			req := httptest.NewRequest(http.MethodDelete, "/v1/records/w1", nil)
			resp := httptest.NewRecorder()
			r.ServeHTTP(resp, req)

			if resp.Code != tt.wantStatusCode {
				t.Errorf("Delete() status = %d, want %d", resp.Code, tt.wantStatusCode)
			}
		})
	}
}

func TestRecordHandler_Import(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		mockService    *MockRecordService
		wantStatusCode int
	}{
		{
			name: "valid array",
			body: `[{"id":"w1","userId":"u1","date":"2024-03-01","weight":80}]`,
			mockService: &MockRecordService{
				importFunc: func(ctx context.Context, candidates []json.RawMessage) (domain.ImportSummary, error) {
					return domain.ImportSummary{Imported: 1}, nil
				},
			},
			wantStatusCode: http.StatusOK,
		},
		{
			name:           "not an array",
			body:           `{"id":"w1"}`,
			mockService:    &MockRecordService{},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name: "persistence failure",
			body: `[]`,
			mockService: &MockRecordService{
				importFunc: func(ctx context.Context, candidates []json.RawMessage) (domain.ImportSummary, error) {
					return domain.ImportSummary{}, errors.New("disk full")
				},
			},
			wantStatusCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewRecordHandler(tt.mockService)

			req := httptest.NewRequest(http.MethodPost, "/v1/records/import", bytes.NewBufferString(tt.body))
			resp := httptest.NewRecorder()
			h.Import(resp, req)

			if resp.Code != tt.wantStatusCode {
				t.Errorf("Import() status = %d, want %d", resp.Code, tt.wantStatusCode)
			}
		})
	}
}

func TestRecordHandler_Export(t *testing.T) {
	mockService := &MockRecordService{
		exportFunc: func(ctx context.Context) ([]byte, error) {
			return []byte(`[{"id":"w1","userId":"u1","date":"2024-03-01T08:00:00Z","weight":80}]`), nil
		},
	}
	h := NewRecordHandler(mockService)

	req := httptest.NewRequest(http.MethodGet, "/v1/records/export", nil)
	resp := httptest.NewRecorder()
	h.Export(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("Export() status = %d", resp.Code)
	}
	if got := resp.Header().Get("Content-Disposition"); got == "" {
		t.Error("Export() missing Content-Disposition header")
	}
	var decoded []json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		t.Fatalf("export body is not a JSON array: %v", err)
	}
	if len(decoded) != 1 {
		t.Errorf("export body has %d entries, want 1", len(decoded))
	}
}
