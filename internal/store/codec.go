package store

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/blaisecz/health-tracker/internal/domain"
)

// storedRecord is the wire shape for one persisted/exported record. The
// variant is disambiguated by which payload fields are present: weight for
// weight records, stageDurations for sleep records, and
// mealType/description/calories for food records.
type storedRecord struct {
	ID             string         `json:"id"`
	UserID         string         `json:"userId"`
	Date           string         `json:"date"`
	Weight         *float64       `json:"weight,omitempty"`
	StageDurations map[string]int `json:"stageDurations,omitempty"`
	MealType       *string        `json:"mealType,omitempty"`
	Description    *string        `json:"description,omitempty"`
	Calories       *int           `json:"calories,omitempty"`
}

func encodeRecord(rec domain.Record) storedRecord {
	out := storedRecord{
		ID:     rec.ID,
		UserID: rec.UserID,
		Date:   rec.Date.Format(time.RFC3339),
	}
	switch rec.Kind {
	case domain.KindWeight:
		w := rec.Weight
		out.Weight = &w
	case domain.KindSleep:
		out.StageDurations = make(map[string]int, len(rec.Stages))
		for stage, mins := range rec.Stages {
			out.StageDurations[string(stage)] = mins
		}
	case domain.KindFood:
		meal := string(rec.Meal)
		desc := rec.Description
		cals := rec.Calories
		out.MealType = &meal
		out.Description = &desc
		out.Calories = &cals
	}
	return out
}

func encodeRecords(recs []domain.Record) ([]byte, error) {
	wire := make([]storedRecord, len(recs))
	for i, rec := range recs {
		wire[i] = encodeRecord(rec)
	}
	return json.Marshal(wire)
}

// decodeRecord reconstructs a typed record from one loosely-typed
// candidate. It rejects candidates missing id or userId, candidates whose
// date does not parse, and candidates matching no variant.
func decodeRecord(raw json.RawMessage) (domain.Record, error) {
	var sr storedRecord
	if err := json.Unmarshal(raw, &sr); err != nil {
		return domain.Record{}, fmt.Errorf("malformed candidate: %w", err)
	}
	if sr.ID == "" || sr.UserID == "" {
		return domain.Record{}, fmt.Errorf("candidate missing id or userId: %w", domain.ErrInvalidInput)
	}
	date, err := parseDate(sr.Date)
	if err != nil {
		return domain.Record{}, fmt.Errorf("candidate date %q: %w", sr.Date, domain.ErrInvalidInput)
	}

	switch {
	case sr.Weight != nil:
		if *sr.Weight <= 0 {
			return domain.Record{}, fmt.Errorf("weight must be positive: %w", domain.ErrInvalidInput)
		}
		return domain.NewWeightRecord(sr.ID, sr.UserID, date, *sr.Weight), nil

	case sr.StageDurations != nil:
		stages := make(map[domain.SleepStage]int, len(sr.StageDurations))
		for label, mins := range sr.StageDurations {
			stage, ok := domain.ParseSleepStage(label)
			if !ok || mins < 0 {
				return domain.Record{}, fmt.Errorf("stage %q=%d: %w", label, mins, domain.ErrInvalidInput)
			}
			stages[stage] = mins
		}
		return domain.NewSleepRecord(sr.ID, sr.UserID, date, stages), nil

	case sr.MealType != nil && sr.Description != nil && sr.Calories != nil:
		meal := domain.MealType(*sr.MealType)
		if !domain.ValidMealType(meal) || *sr.Calories < 0 {
			return domain.Record{}, fmt.Errorf("meal %q (%d kcal): %w", *sr.MealType, *sr.Calories, domain.ErrInvalidInput)
		}
		return domain.NewFoodRecord(sr.ID, sr.UserID, date, meal, *sr.Description, *sr.Calories), nil
	}

	return domain.Record{}, fmt.Errorf("candidate matches no record variant: %w", domain.ErrInvalidInput)
}

// decodeRecords runs every candidate through decodeRecord, keeping the
// valid ones and counting the rest. Item-level rejection never aborts the
// whole batch.
func decodeRecords(raw []json.RawMessage) (records []domain.Record, skipped int) {
	records = make([]domain.Record, 0, len(raw))
	for _, candidate := range raw {
		rec, err := decodeRecord(candidate)
		if err != nil {
			skipped++
			continue
		}
		records = append(records, rec)
	}
	return records, skipped
}

// parseDate accepts RFC3339 timestamps and bare calendar dates.
func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}
