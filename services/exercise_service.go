package services

import (
	"fmt"
	"time"

	"github.com/defenstration/diet-tracker-app/models"

	"gorm.io/gorm"
)

type ExerciseService struct {
	db *gorm.DB
}

func NewExerciseService(db *gorm.DB) *ExerciseService {
	return &ExerciseService{db: db}
}

func (s *ExerciseService) Log(userID uint, exerciseType string, duration, caloriesBurned float64, notes string) (*models.ExerciseLog, error) {
	if userID == 0 {
		return nil, ErrUnauthenticated
	}

	entry := models.ExerciseLog{
		UserID:         userID,
		Date:           dayStartLocal(time.Now()),
		ExerciseType:   exerciseType,
		Duration:       duration,
		CaloriesBurned: caloriesBurned,
		Notes:          notes,
	}
	if err := s.db.Create(&entry).Error; err != nil {
		return nil, fmt.Errorf("%w: storing exercise log: %v", ErrPersistence, err)
	}
	return &entry, nil
}

func (s *ExerciseService) TodaysLogs(userID uint) ([]models.ExerciseLog, error) {
	if userID == 0 {
		return nil, ErrUnauthenticated
	}

	var logs []models.ExerciseLog
	err := s.db.
		Where("user_id = ? AND date = ?", userID, dayStartLocal(time.Now())).
		Order("created_at ASC").
		Find(&logs).Error
	if err != nil {
		return nil, fmt.Errorf("%w: fetching exercise logs: %v", ErrPersistence, err)
	}
	return logs, nil
}

// SumCaloriesBurned is the exercise-side counterpart of SumDailyTotals.
func SumCaloriesBurned(logs []models.ExerciseLog) float64 {
	var total float64
	for _, l := range logs {
		total += l.CaloriesBurned
	}
	return total
}
