package seed

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/blaisecz/health-tracker/internal/domain"
	"github.com/blaisecz/health-tracker/internal/store"
)

const (
	seededDays = 14
	seedUserID = "seed-user"
)

var seedMeals = []struct {
	meal        domain.MealType
	description string
}{
	{domain.MealBreakfast, "Oatmeal with berries"},
	{domain.MealLunch, "Chicken salad"},
	{domain.MealDinner, "Salmon with rice"},
	{domain.MealSnack, "Greek yogurt"},
}

// Run fills the store with sample records. Ids are fixed, so repeated
// runs update the same records instead of duplicating them.
func Run(ctx context.Context, s *store.RecordStore) error {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	now := time.Now().UTC()

	for i := 0; i < seededDays; i++ {
		date := now.AddDate(0, 0, -i)

		weight := domain.NewWeightRecord(
			fmt.Sprintf("seed-weight-%d", i),
			seedUserID,
			date,
			72.0+rng.Float64()*4,
		)
		if _, err := s.Save(ctx, weight, true); err != nil {
			return fmt.Errorf("failed to seed weight record: %w", err)
		}

		sleep := domain.NewSleepRecord(
			fmt.Sprintf("seed-sleep-%d", i),
			seedUserID,
			date,
			map[domain.SleepStage]int{
				domain.StageDeep:  70 + rng.Intn(40),
				domain.StageLight: 180 + rng.Intn(60),
				domain.StageRem:   80 + rng.Intn(40),
				domain.StageAwake: 10 + rng.Intn(20),
			},
		)
		if _, err := s.Save(ctx, sleep, true); err != nil {
			return fmt.Errorf("failed to seed sleep record: %w", err)
		}

		meal := seedMeals[rng.Intn(len(seedMeals))]
		food := domain.NewFoodRecord(
			fmt.Sprintf("seed-food-%d", i),
			seedUserID,
			date,
			meal.meal,
			meal.description,
			300+rng.Intn(500),
		)
		if _, err := s.Save(ctx, food, true); err != nil {
			return fmt.Errorf("failed to seed food record: %w", err)
		}
	}

	log.Println("Seed completed")
	return nil
}
