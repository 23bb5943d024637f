package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/blaisecz/health-tracker/internal/domain"
	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

var (
	// ErrUnavailable indicates the advice provider is not configured or unavailable.
	ErrUnavailable = errors.New("advice provider unavailable")
	// ErrRequest indicates an error during the provider API request.
	ErrRequest = errors.New("advice request failed")
	// ErrResponse indicates an empty or unusable provider response.
	ErrResponse = errors.New("advice response unusable")
)

const systemPrompt = `You are a supportive, non-medical health advisor.

You receive a user's recent health records: body weight, nightly sleep broken down by stage, and meals with calories.

Your goals:
- Point out encouraging trends across weight, sleep, and eating.
- Connect the data where it plausibly relates (e.g. short sleep and next-day weight).
- Give one or two concrete, positive suggestions the user can act on today.

Rules:
- Do NOT provide medical advice or diagnoses.
- Do NOT mention diseases, disorders, doctors, or treatment.
- Keep a friendly, motivating tone.
- Respond as plain text, around 150 words, no markdown, no lists.`

const userPromptTemplate = `Here are the user's health records, one per line:

%s

Based on these records, give your advice.`

// AdviceLLM generates free-text advice from a user's record collection.
type AdviceLLM interface {
	GenerateAdvice(ctx context.Context, records []domain.Record) (string, error)
}

// OpenAIClient implements AdviceLLM using the OpenAI API.
type OpenAIClient struct {
	client openai.Client
	model  string
}

// NewOpenAIClient creates a client for generating advice. Returns nil if
// apiKey is empty.
func NewOpenAIClient(apiKey, model string) *OpenAIClient {
	if apiKey == "" {
		return nil
	}
	if model == "" {
		model = "gpt-4o-mini"
	}

	client := openai.NewClient(option.WithAPIKey(apiKey))

	return &OpenAIClient{
		client: client,
		model:  model,
	}
}

// GenerateAdvice calls the provider with a textual rendering of the
// records and returns its free-text answer.
func (c *OpenAIClient) GenerateAdvice(ctx context.Context, records []domain.Record) (string, error) {
	if c == nil {
		return "", ErrUnavailable
	}

	userPrompt := fmt.Sprintf(userPromptTemplate, FormatRecords(records))

	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: c.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(userPrompt),
		},
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrRequest, err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: no choices in response", ErrResponse)
	}
	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	if content == "" {
		return "", fmt.Errorf("%w: empty completion", ErrResponse)
	}
	return content, nil
}

// FormatRecords renders records as one prompt line each.
func FormatRecords(records []domain.Record) string {
	lines := make([]string, 0, len(records))
	for _, rec := range records {
		date := rec.Date.Format("2006-01-02")
		switch rec.Kind {
		case domain.KindWeight:
			lines = append(lines, fmt.Sprintf("Date: %s, Weight: %.1f kg", date, rec.Weight))
		case domain.KindSleep:
			hours := float64(rec.TotalSleepMinutes()) / 60
			lines = append(lines, fmt.Sprintf("Date: %s, Sleep: %.1fh (%s)", date, hours, formatStages(rec.Stages)))
		case domain.KindFood:
			lines = append(lines, fmt.Sprintf("Date: %s, Meal (%s): %s (%d kcal)", date, rec.Meal, rec.Description, rec.Calories))
		}
	}
	return strings.Join(lines, "\n")
}

func formatStages(stages map[domain.SleepStage]int) string {
	order := []domain.SleepStage{domain.StageDeep, domain.StageLight, domain.StageRem, domain.StageAwake}
	parts := make([]string, 0, len(stages))
	for _, stage := range order {
		if mins, ok := stages[stage]; ok {
			parts = append(parts, fmt.Sprintf("%s %dm", stage, mins))
		}
	}
	if len(parts) == 0 {
		return "no stage data"
	}
	return strings.Join(parts, ", ")
}
