package services

import (
	"fmt"
	"time"

	"github.com/defenstration/diet-tracker-app/models"

	"gorm.io/gorm"
)

type WeightService struct {
	db *gorm.DB
}

func NewWeightService(db *gorm.DB) *WeightService {
	return &WeightService{db: db}
}

func (s *WeightService) Record(userID uint, date time.Time, weight float64, notes string) (*models.WeightRecord, error) {
	if userID == 0 {
		return nil, ErrUnauthenticated
	}

	rec := models.WeightRecord{
		UserID: userID,
		Date:   dayStartLocal(date),
		Weight: weight,
		Notes:  notes,
	}
	if err := s.db.Create(&rec).Error; err != nil {
		return nil, fmt.Errorf("%w: storing weight record: %v", ErrPersistence, err)
	}
	return &rec, nil
}

func (s *WeightService) History(userID uint) ([]models.WeightRecord, error) {
	if userID == 0 {
		return nil, ErrUnauthenticated
	}

	var recs []models.WeightRecord
	err := s.db.
		Where("user_id = ?", userID).
		Order("date DESC").
		Find(&recs).Error
	if err != nil {
		return nil, fmt.Errorf("%w: fetching weight records: %v", ErrPersistence, err)
	}
	return recs, nil
}
