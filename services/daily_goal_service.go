package services

import (
	"errors"
	"fmt"

	"github.com/defenstration/diet-tracker-app/models"

	"gorm.io/gorm"
)

// Default targets for users who never set their own; the calorie figure is
// the one the dashboard charts against.
const (
	DefaultCalorieTarget = 2000
	DefaultProteinTarget = 120
	DefaultCarbsTarget   = 275
	DefaultFatTarget     = 70
)

type DailyGoalService struct {
	db     *gorm.DB
	logSvc *FoodLogService
}

func NewDailyGoalService(db *gorm.DB, logSvc *FoodLogService) *DailyGoalService {
	return &DailyGoalService{db: db, logSvc: logSvc}
}

type NutrientProgress struct {
	Consumed float64 `json:"consumed"`
	Goal     float64 `json:"goal"`
	Percent  float64 `json:"percent"`
}

type DailySummary struct {
	Totals   DailyTotals      `json:"totals"`
	Calories NutrientProgress `json:"calories"`
	Protein  NutrientProgress `json:"protein"`
	Carbs    NutrientProgress `json:"carbs"`
	Fat      NutrientProgress `json:"fat"`
}

func (s *DailyGoalService) GetGoal(userID uint) (*models.DailyGoal, error) {
	if userID == 0 {
		return nil, ErrUnauthenticated
	}

	var goal models.DailyGoal
	err := s.db.Where("user_id = ?", userID).First(&goal).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &models.DailyGoal{
				UserID:   userID,
				Calories: DefaultCalorieTarget,
				Protein:  DefaultProteinTarget,
				Carbs:    DefaultCarbsTarget,
				Fat:      DefaultFatTarget,
			}, nil
		}
		return nil, fmt.Errorf("%w: fetching goal: %v", ErrPersistence, err)
	}
	return &goal, nil
}

func (s *DailyGoalService) UpsertGoal(userID uint, calories, protein, carbs, fat float64) (*models.DailyGoal, error) {
	if userID == 0 {
		return nil, ErrUnauthenticated
	}

	var goal models.DailyGoal
	err := s.db.Where("user_id = ?", userID).First(&goal).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		goal = models.DailyGoal{
			UserID:   userID,
			Calories: calories,
			Protein:  protein,
			Carbs:    carbs,
			Fat:      fat,
		}
		if err := s.db.Create(&goal).Error; err != nil {
			return nil, fmt.Errorf("%w: creating goal: %v", ErrPersistence, err)
		}
		return &goal, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: fetching goal: %v", ErrPersistence, err)
	}

	goal.Calories = calories
	goal.Protein = protein
	goal.Carbs = carbs
	goal.Fat = fat
	if err := s.db.Save(&goal).Error; err != nil {
		return nil, fmt.Errorf("%w: updating goal: %v", ErrPersistence, err)
	}
	return &goal, nil
}

// TodaysSummary reads back today's entries, reduces them, and pairs the
// totals with the user's targets.
func (s *DailyGoalService) TodaysSummary(userID uint) (*DailySummary, error) {
	goal, err := s.GetGoal(userID)
	if err != nil {
		return nil, err
	}

	entries, err := s.logSvc.TodaysEntries(userID)
	if err != nil {
		return nil, err
	}

	totals := SumDailyTotals(entries)
	return &DailySummary{
		Totals:   totals,
		Calories: NutrientProgress{Consumed: totals.Calories, Goal: goal.Calories, Percent: progressPct(totals.Calories, goal.Calories)},
		Protein:  NutrientProgress{Consumed: totals.Protein, Goal: goal.Protein, Percent: progressPct(totals.Protein, goal.Protein)},
		Carbs:    NutrientProgress{Consumed: totals.Carbs, Goal: goal.Carbs, Percent: progressPct(totals.Carbs, goal.Carbs)},
		Fat:      NutrientProgress{Consumed: totals.Fat, Goal: goal.Fat, Percent: progressPct(totals.Fat, goal.Fat)},
	}, nil
}

func progressPct(consumed, target float64) float64 {
	if target <= 0 {
		return 0
	}
	p := consumed / target
	if p > 1 {
		return 1
	}
	return p
}
