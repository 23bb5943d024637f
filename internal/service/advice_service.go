package service

import (
	"context"
	"time"

	"github.com/blaisecz/health-tracker/internal/domain"
	"github.com/blaisecz/health-tracker/internal/llm"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
)

// MinAdviceRecords is the smallest collection the advice provider will be
// asked about.
const MinAdviceRecords = 3

// AdviceService turns the record collection into free-text advice via the
// configured language-model provider.
type AdviceService interface {
	Generate(ctx context.Context) (*domain.AdviceResponse, error)
}

type adviceService struct {
	store     RecordStore
	llmClient llm.AdviceLLM
}

func NewAdviceService(store RecordStore, llmClient llm.AdviceLLM) AdviceService {
	return &adviceService{
		store:     store,
		llmClient: llmClient,
	}
}

func (s *adviceService) Generate(ctx context.Context) (*domain.AdviceResponse, error) {
	tracer := otel.Tracer("health-tracker-api/advice")
	ctx, span := tracer.Start(ctx, "AdviceService.Generate")
	defer span.End()

	records := s.store.Records(ctx)
	span.SetAttributes(attribute.Int("advice.record_count", len(records)))
	if len(records) < MinAdviceRecords {
		return nil, domain.ErrTooFewRecords
	}

	advice, err := s.llmClient.GenerateAdvice(ctx, records)
	if err != nil {
		return nil, err
	}

	return &domain.AdviceResponse{
		Advice:      advice,
		RecordCount: len(records),
		GeneratedAt: time.Now().UTC(),
	}, nil
}
