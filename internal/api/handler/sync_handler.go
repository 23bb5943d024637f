package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/blaisecz/health-tracker/internal/api/validation"
	"github.com/blaisecz/health-tracker/internal/domain"
	"github.com/blaisecz/health-tracker/internal/service"
	"github.com/blaisecz/health-tracker/pkg/problem"
)

// FitSourceFactory builds a FitSource authorized by the caller's access
// token. Injected so tests can stub the provider.
type FitSourceFactory func(r *http.Request, accessToken string) service.FitSource

type SyncHandler struct {
	service   service.SyncService
	newSource FitSourceFactory
}

func NewSyncHandler(service service.SyncService, newSource FitSourceFactory) *SyncHandler {
	return &SyncHandler{service: service, newSource: newSource}
}

// SyncFit handles POST /v1/sync/fit
// @Summary Sync from the fitness provider
// @Description Fetch weight samples and sleep segments with the caller's bearer token, stitch sleep into nights, and save the resulting records. Synced ids carry the gf- prefix and are deduplicated by id.
// @Tags sync
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer access token for the fitness API"
// @Param request body domain.SyncFitRequest true "Sync parameters"
// @Success 200 {object} domain.SyncSummary "Records produced"
// @Failure 400 {object} problem.Problem "Invalid request body"
// @Failure 401 {object} problem.Problem "Missing bearer token"
// @Failure 422 {object} problem.Problem "Validation errors"
// @Failure 502 {object} problem.Problem "Fitness provider request failed"
// @Router /sync/fit [post]
func (h *SyncHandler) SyncFit(w http.ResponseWriter, r *http.Request) {
	token := bearerToken(r)
	if token == "" {
		problem.Unauthorized("Missing bearer token for the fitness provider").Write(w)
		return
	}

	var req domain.SyncFitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	src := h.newSource(r, token)
	summary, err := h.service.SyncFromFit(r.Context(), src, req.UserID, req.Days)
	if err != nil {
		problem.BadGateway("Fitness provider sync failed").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(summary)
}

func bearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if !strings.HasPrefix(auth, prefix) {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(auth, prefix))
}
