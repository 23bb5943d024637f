package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/blaisecz/health-tracker/internal/api/validation"
	"github.com/blaisecz/health-tracker/internal/domain"
	"github.com/blaisecz/health-tracker/internal/service"
	"github.com/blaisecz/health-tracker/internal/store"
	"github.com/blaisecz/health-tracker/pkg/problem"
	"github.com/go-chi/chi/v5"
)

type RecordHandler struct {
	service service.RecordService
}

func NewRecordHandler(service service.RecordService) *RecordHandler {
	return &RecordHandler{service: service}
}

// Save handles POST /v1/records
// @Summary Save a health record
// @Description Save a weight, sleep, or food record. Re-submitting with the same id edits the record. A manual weight/sleep record colliding with an existing one on the same calendar day returns 409; retry with overwrite=true after the user confirms.
// @Tags records
// @Accept json
// @Produce json
// @Param request body domain.SaveRecordRequest true "Record data"
// @Success 201 {object} domain.RecordResponse "New record created"
// @Success 200 {object} domain.RecordResponse "Existing record replaced"
// @Failure 400 {object} problem.Problem "Invalid request body"
// @Failure 409 {object} problem.Problem "Daily-uniqueness collision, confirmation required"
// @Failure 422 {object} problem.Problem "Validation errors"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /records [post]
func (h *RecordHandler) Save(w http.ResponseWriter, r *http.Request) {
	var req domain.SaveRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	rec, result, err := h.service.Save(r.Context(), &req)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			problem.BadRequest(err.Error()).Write(w)
			return
		}
		problem.InternalError("Failed to save record").Write(w)
		return
	}

	if result.Status == store.SaveNeedsConfirmation {
		detail := "A manual record of this kind already exists for this day; retry with overwrite=true to replace it"
		problem.Conflict(detail).Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if result.Status == store.SaveCreated {
		w.WriteHeader(http.StatusCreated)
	} else {
		w.WriteHeader(http.StatusOK)
	}
	json.NewEncoder(w).Encode(rec.ToResponse())
}

// List handles GET /v1/records
// @Summary List all records
// @Tags records
// @Produce json
// @Success 200 {object} domain.RecordListResponse "All stored records"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /records [get]
func (h *RecordHandler) List(w http.ResponseWriter, r *http.Request) {
	records, err := h.service.List(r.Context())
	if err != nil {
		problem.InternalError("Failed to list records").Write(w)
		return
	}

	resp := domain.RecordListResponse{
		Data:  make([]domain.RecordResponse, len(records)),
		Count: len(records),
	}
	for i, rec := range records {
		resp.Data[i] = rec.ToResponse()
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// Delete handles DELETE /v1/records/{recordId}
// @Summary Delete a record
// @Description Remove the record with the given id. Deleting an unknown id is a no-op. Callers are expected to confirm with the user first.
// @Tags records
// @Param recordId path string true "Record id"
// @Success 204 "Deleted (or id not present)"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /records/{recordId} [delete]
func (h *RecordHandler) Delete(w http.ResponseWriter, r *http.Request) {
	recordID := chi.URLParam(r, "recordId")

	if err := h.service.Delete(r.Context(), recordID); err != nil {
		problem.InternalError("Failed to delete record").Write(w)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Import handles POST /v1/records/import
// @Summary Import records
// @Description Replace the entire collection with the valid subset of the posted JSON array. Invalid entries are skipped and counted. Callers are expected to confirm this destructive operation first.
// @Tags records
// @Accept json
// @Produce json
// @Param request body []object true "Array of tagged record structures"
// @Success 200 {object} domain.ImportSummary "Import counts"
// @Failure 400 {object} problem.Problem "Body is not a JSON array"
// @Failure 500 {object} problem.Problem "Persistence failure, collection unchanged"
// @Router /records/import [post]
func (h *RecordHandler) Import(w http.ResponseWriter, r *http.Request) {
	var candidates []json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&candidates); err != nil {
		problem.BadRequest("Body must be a JSON array of records").Write(w)
		return
	}

	summary, err := h.service.Import(r.Context(), candidates)
	if err != nil {
		problem.InternalError("Failed to persist imported records").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(summary)
}

// Export handles GET /v1/records/export
// @Summary Export records
// @Description Download the verbatim serialized store contents.
// @Tags records
// @Produce json
// @Success 200 {array} object "Tagged record structures"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /records/export [get]
func (h *RecordHandler) Export(w http.ResponseWriter, r *http.Request) {
	data, err := h.service.Export(r.Context())
	if err != nil {
		problem.InternalError("Failed to export records").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", `attachment; filename="health-records.json"`)
	w.Write(data)
}
