package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/blaisecz/health-tracker/internal/domain"
	"github.com/blaisecz/health-tracker/internal/llm"
	"github.com/blaisecz/health-tracker/internal/service"
	"github.com/blaisecz/health-tracker/pkg/problem"
)

type AdviceHandler struct {
	service service.AdviceService
}

func NewAdviceHandler(service service.AdviceService) *AdviceHandler {
	return &AdviceHandler{service: service}
}

// Generate handles POST /v1/advice
// @Summary Generate health advice
// @Description Feed the full record collection to the language-model provider and return its free-text advice. Requires at least 3 records.
// @Tags advice
// @Produce json
// @Success 200 {object} domain.AdviceResponse "Generated advice"
// @Failure 422 {object} problem.Problem "Too few records"
// @Failure 502 {object} problem.Problem "Provider request failed"
// @Failure 503 {object} problem.Problem "Provider not configured"
// @Router /advice [post]
func (h *AdviceHandler) Generate(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.Generate(r.Context())
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrTooFewRecords):
			problem.UnprocessableEntity("At least 3 records are required for advice").Write(w)
		case errors.Is(err, llm.ErrUnavailable):
			problem.ServiceUnavailable("Advice provider is not configured").Write(w)
		default:
			problem.BadGateway("Advice provider request failed").Write(w)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}
