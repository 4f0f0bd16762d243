package services

import (
	"fmt"
	"time"

	"github.com/defenstration/diet-tracker-app/logger"
	"github.com/defenstration/diet-tracker-app/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type FoodLogService struct {
	db *gorm.DB
}

func NewFoodLogService(db *gorm.DB) *FoodLogService {
	return &FoodLogService{db: db}
}

// FoodData is the nutrient snapshot embedded in a returned log entry. It
// comes from the catalog row, which is never updated after its first
// write, so historical totals do not drift when the provider's data does.
type FoodData struct {
	FdcID       string    `json:"fdcId"`
	Description string    `json:"description"`
	Nutrients   Nutrients `json:"nutrients"`
}

type FoodLogEntry struct {
	ID        uint            `json:"id"`
	CreatedAt time.Time       `json:"created_at"`
	FoodID    uint            `json:"food_id"`
	UserID    uint            `json:"user_id"`
	Date      string          `json:"date"` // YYYY-MM-DD
	MealType  models.MealSlot `json:"meal_type"`
	Quantity  float64         `json:"quantity"`
	FoodData  FoodData        `json:"food_data"`
}

type DailyTotals struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

func dayStartLocal(t time.Time) time.Time {
	loc := time.Local
	tt := t.In(loc)
	return time.Date(tt.Year(), tt.Month(), tt.Day(), 0, 0, 0, 0, loc)
}

// LogEntry stores one (food, quantity, meal) event against today's date.
// The catalog row is resolved with an idempotent insert keyed by the
// food's FDC identifier: first write wins, concurrent loggers of the same
// food converge on one row. The two writes are independent — a failed log
// insert leaves the catalog row in place.
func (s *FoodLogService) LogEntry(userID uint, food FoodItem, quantity float64, meal models.MealSlot) (*FoodLogEntry, error) {
	if userID == 0 {
		return nil, ErrUnauthenticated
	}
	if food.FdcID == "" {
		return nil, fmt.Errorf("food has no catalog identifier")
	}
	if !meal.Valid() {
		return nil, fmt.Errorf("invalid meal slot %q", meal)
	}
	if quantity < 0.25 || quantity > 99 {
		return nil, fmt.Errorf("quantity %v out of range [0.25, 99]", quantity)
	}

	row := models.Food{
		Name:     food.Description,
		Calories: food.Nutrients.Calories,
		Protein:  food.Nutrients.Protein,
		Carbs:    food.Nutrients.Carbohydrates,
		Fat:      food.Nutrients.Fat,
		Barcode:  food.FdcID,
		UserID:   userID,
	}
	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "barcode"}},
		DoNothing: true,
	}).Create(&row).Error
	if err != nil {
		return nil, fmt.Errorf("%w: storing food: %v", ErrPersistence, err)
	}

	// On conflict the insert is a no-op and row.ID stays zero; re-read to
	// get the winning row either way.
	var stored models.Food
	if err := s.db.Where("barcode = ?", food.FdcID).First(&stored).Error; err != nil {
		return nil, fmt.Errorf("%w: reading food row: %v", ErrPersistence, err)
	}

	entry := models.FoodLog{
		FoodID:   stored.ID,
		UserID:   userID,
		Date:     dayStartLocal(time.Now()),
		MealType: meal,
		Quantity: quantity,
	}
	if err := s.db.Create(&entry).Error; err != nil {
		return nil, fmt.Errorf("%w: logging food: %v", ErrPersistence, err)
	}

	out := toEntry(entry, stored)
	return &out, nil
}

// TodaysEntries returns the user's log entries for the current date,
// oldest first, each joined to its catalog row. Entries whose catalog row
// has gone missing are dropped from the result with a warning rather than
// failing the whole read.
func (s *FoodLogService) TodaysEntries(userID uint) ([]FoodLogEntry, error) {
	if userID == 0 {
		return nil, ErrUnauthenticated
	}

	today := dayStartLocal(time.Now())

	var logs []models.FoodLog
	err := s.db.
		Where("user_id = ? AND date = ?", userID, today).
		Order("created_at ASC").
		Find(&logs).Error
	if err != nil {
		return nil, fmt.Errorf("%w: fetching food logs: %v", ErrPersistence, err)
	}
	if len(logs) == 0 {
		return []FoodLogEntry{}, nil
	}

	foodIDs := make([]uint, 0, len(logs))
	for _, l := range logs {
		foodIDs = append(foodIDs, l.FoodID)
	}

	var foods []models.Food
	if err := s.db.Where("id IN ?", foodIDs).Find(&foods).Error; err != nil {
		return nil, fmt.Errorf("%w: fetching foods: %v", ErrPersistence, err)
	}
	foodByID := make(map[uint]models.Food, len(foods))
	for _, f := range foods {
		foodByID[f.ID] = f
	}

	entries := make([]FoodLogEntry, 0, len(logs))
	for _, l := range logs {
		f, ok := foodByID[l.FoodID]
		if !ok {
			logger.L().Warn("dropping log entry with missing food row",
				zap.Uint("log_id", l.ID),
				zap.Uint("food_id", l.FoodID),
				zap.Uint("user_id", l.UserID))
			continue
		}
		entries = append(entries, toEntry(l, f))
	}
	return entries, nil
}

// SumDailyTotals reduces entries into quantity-scaled nutrient sums. Pure
// and order-independent; an empty input sums to all zeros.
func SumDailyTotals(entries []FoodLogEntry) DailyTotals {
	var totals DailyTotals
	for _, e := range entries {
		n := e.FoodData.Nutrients
		totals.Calories += n.Calories * e.Quantity
		totals.Protein += n.Protein * e.Quantity
		totals.Carbs += n.Carbohydrates * e.Quantity
		totals.Fat += n.Fat * e.Quantity
	}
	return totals
}

func toEntry(l models.FoodLog, f models.Food) FoodLogEntry {
	return FoodLogEntry{
		ID:        l.ID,
		CreatedAt: l.CreatedAt,
		FoodID:    l.FoodID,
		UserID:    l.UserID,
		Date:      l.Date.Format("2006-01-02"),
		MealType:  l.MealType,
		Quantity:  l.Quantity,
		FoodData: FoodData{
			FdcID:       f.Barcode,
			Description: f.Name,
			Nutrients: Nutrients{
				Calories:      f.Calories,
				Protein:       f.Protein,
				Carbohydrates: f.Carbs,
				Fat:           f.Fat,
			},
		},
	}
}
