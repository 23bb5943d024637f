package domain

import (
	"strings"
	"time"
)

// ExternalIDPrefix marks records synchronized from the external fitness
// provider. Such ids are deduplicated purely by equality and are exempt
// from the one-manual-entry-per-day rule.
const ExternalIDPrefix = "gf-"

// RecordKind discriminates the Record variants.
type RecordKind string

const (
	KindWeight RecordKind = "weight"
	KindSleep  RecordKind = "sleep"
	KindFood   RecordKind = "food"
)

// SleepStage is one of the four canonical sleep stages.
type SleepStage string

const (
	StageDeep  SleepStage = "deep"
	StageLight SleepStage = "light"
	StageRem   SleepStage = "rem"
	StageAwake SleepStage = "awake"
)

// ParseSleepStage maps a raw stage label onto the canonical vocabulary.
// Matching is case-insensitive; unknown labels return ok=false.
func ParseSleepStage(label string) (SleepStage, bool) {
	switch SleepStage(strings.ToLower(label)) {
	case StageDeep:
		return StageDeep, true
	case StageLight:
		return StageLight, true
	case StageRem:
		return StageRem, true
	case StageAwake:
		return StageAwake, true
	}
	return "", false
}

// MealType categorizes a food record.
type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealDinner    MealType = "dinner"
	MealSnack     MealType = "snack"
)

// ValidMealType reports whether m is one of the fixed meal categories.
func ValidMealType(m MealType) bool {
	switch m {
	case MealBreakfast, MealLunch, MealDinner, MealSnack:
		return true
	}
	return false
}

// Record is a dated health observation. Kind selects which payload fields
// are meaningful: Weight for KindWeight, Stages for KindSleep, and
// Meal/Description/Calories for KindFood. The id is immutable after
// creation; edits are full replacements under the same id.
type Record struct {
	ID     string
	UserID string
	Date   time.Time
	Kind   RecordKind

	// KindWeight: body weight in kilograms, positive.
	Weight float64

	// KindSleep: minutes spent per stage. Absent stages mean zero.
	Stages map[SleepStage]int

	// KindFood
	Meal        MealType
	Description string
	Calories    int
}

func NewWeightRecord(id, userID string, date time.Time, weightKg float64) Record {
	return Record{ID: id, UserID: userID, Date: date, Kind: KindWeight, Weight: weightKg}
}

func NewSleepRecord(id, userID string, date time.Time, stages map[SleepStage]int) Record {
	return Record{ID: id, UserID: userID, Date: date, Kind: KindSleep, Stages: stages}
}

func NewFoodRecord(id, userID string, date time.Time, meal MealType, description string, calories int) Record {
	return Record{
		ID:          id,
		UserID:      userID,
		Date:        date,
		Kind:        KindFood,
		Meal:        meal,
		Description: description,
		Calories:    calories,
	}
}

// ExternallySourced reports whether the record came from the external
// fitness provider, based on the reserved id prefix. The prefix convention
// stands in for a real provenance field; ids violating it would look like
// manual entries and could produce duplicate-looking days.
func (r Record) ExternallySourced() bool {
	return strings.HasPrefix(r.ID, ExternalIDPrefix)
}

// TotalSleepMinutes sums the present stage durations. Zero for non-sleep
// records.
func (r Record) TotalSleepMinutes() int {
	total := 0
	for _, mins := range r.Stages {
		total += mins
	}
	return total
}

// SameCalendarDay compares year/month/day components, independent of
// time-of-day.
func SameCalendarDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// Clone returns a deep copy so callers cannot mutate store state through
// the Stages map.
func (r Record) Clone() Record {
	out := r
	if r.Stages != nil {
		out.Stages = make(map[SleepStage]int, len(r.Stages))
		for stage, mins := range r.Stages {
			out.Stages[stage] = mins
		}
	}
	return out
}

// RecordResponse is the response body for record endpoints. Payload fields
// are emitted only for the matching variant, mirroring the export format.
type RecordResponse struct {
	ID             string         `json:"id"`
	UserID         string         `json:"userId"`
	Date           time.Time      `json:"date"`
	Kind           RecordKind     `json:"kind"`
	Weight         *float64       `json:"weight,omitempty"`
	StageDurations map[string]int `json:"stageDurations,omitempty"`
	MealType       *MealType      `json:"mealType,omitempty"`
	Description    *string        `json:"description,omitempty"`
	Calories       *int           `json:"calories,omitempty"`
}

func (r Record) ToResponse() RecordResponse {
	resp := RecordResponse{
		ID:     r.ID,
		UserID: r.UserID,
		Date:   r.Date,
		Kind:   r.Kind,
	}
	switch r.Kind {
	case KindWeight:
		w := r.Weight
		resp.Weight = &w
	case KindSleep:
		resp.StageDurations = make(map[string]int, len(r.Stages))
		for stage, mins := range r.Stages {
			resp.StageDurations[string(stage)] = mins
		}
	case KindFood:
		meal := r.Meal
		desc := r.Description
		cals := r.Calories
		resp.MealType = &meal
		resp.Description = &desc
		resp.Calories = &cals
	}
	return resp
}

// RecordListResponse is the response body for listing records.
type RecordListResponse struct {
	Data  []RecordResponse `json:"data"`
	Count int              `json:"count"`
}

// SaveRecordRequest is the request body for saving a record. An empty ID
// means a new manual record; a populated ID re-saves (edits) an existing
// one. Overwrite acknowledges a daily-uniqueness collision reported by a
// previous attempt.
type SaveRecordRequest struct {
	ID     string     `json:"id,omitempty" validate:"omitempty,max=128"`
	UserID string     `json:"userId" validate:"required,max=128"`
	Date   time.Time  `json:"date" validate:"required"`
	Kind   RecordKind `json:"kind" validate:"required,oneof=weight sleep food"`

	Weight         *float64       `json:"weight,omitempty" validate:"required_if=Kind weight,omitempty,gt=0"`
	StageDurations map[string]int `json:"stageDurations,omitempty" validate:"required_if=Kind sleep,omitempty,dive,gte=0"`
	MealType       *MealType      `json:"mealType,omitempty" validate:"required_if=Kind food,omitempty,oneof=breakfast lunch dinner snack"`
	Description    *string        `json:"description,omitempty" validate:"omitempty,max=500"`
	Calories       *int           `json:"calories,omitempty" validate:"required_if=Kind food,omitempty,gte=0"`

	Overwrite bool `json:"overwrite,omitempty"`
}

// SyncFitRequest is the request body for the fitness sync endpoint.
type SyncFitRequest struct {
	UserID string `json:"userId" validate:"required,max=128"`
	// Days of history to fetch (defaults to 30).
	Days int `json:"days,omitempty" validate:"omitempty,min=1,max=365"`
}

// SyncSummary reports how many records a sync produced.
type SyncSummary struct {
	WeightRecords int `json:"weight_records"`
	SleepRecords  int `json:"sleep_records"`
}

// ImportSummary reports the outcome of a bulk import.
type ImportSummary struct {
	Imported int `json:"imported"`
	Skipped  int `json:"skipped"`
}

// AdviceResponse is the response body for the advice endpoint.
type AdviceResponse struct {
	Advice      string    `json:"advice"`
	RecordCount int       `json:"record_count"`
	GeneratedAt time.Time `json:"generated_at"`
}
