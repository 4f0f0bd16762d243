package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/defenstration/diet-tracker-app/models"

	"gorm.io/gorm"
)

type MilestoneService struct {
	db *gorm.DB
}

func NewMilestoneService(db *gorm.DB) *MilestoneService {
	return &MilestoneService{db: db}
}

func (s *MilestoneService) Create(userID uint, title, description string, targetDate time.Time) (*models.Milestone, error) {
	if userID == 0 {
		return nil, ErrUnauthenticated
	}

	m := models.Milestone{
		UserID:      userID,
		Title:       title,
		Description: description,
		TargetDate:  targetDate,
	}
	if err := s.db.Create(&m).Error; err != nil {
		return nil, fmt.Errorf("%w: storing milestone: %v", ErrPersistence, err)
	}
	return &m, nil
}

func (s *MilestoneService) List(userID uint) ([]models.Milestone, error) {
	if userID == 0 {
		return nil, ErrUnauthenticated
	}

	var ms []models.Milestone
	err := s.db.
		Where("user_id = ?", userID).
		Order("target_date ASC").
		Find(&ms).Error
	if err != nil {
		return nil, fmt.Errorf("%w: fetching milestones: %v", ErrPersistence, err)
	}
	return ms, nil
}

// Complete marks a milestone done, stamping the completion time once.
func (s *MilestoneService) Complete(userID, milestoneID uint) (*models.Milestone, error) {
	if userID == 0 {
		return nil, ErrUnauthenticated
	}

	var m models.Milestone
	err := s.db.Where("id = ? AND user_id = ?", milestoneID, userID).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: milestone %d", ErrNotFound, milestoneID)
		}
		return nil, fmt.Errorf("%w: fetching milestone: %v", ErrPersistence, err)
	}

	if !m.Completed {
		now := time.Now()
		m.Completed = true
		m.CompletedAt = &now
		if err := s.db.Save(&m).Error; err != nil {
			return nil, fmt.Errorf("%w: updating milestone: %v", ErrPersistence, err)
		}
	}
	return &m, nil
}

func (s *MilestoneService) Delete(userID, milestoneID uint) error {
	if userID == 0 {
		return ErrUnauthenticated
	}

	result := s.db.Where("id = ? AND user_id = ?", milestoneID, userID).Delete(&models.Milestone{})
	if result.Error != nil {
		return fmt.Errorf("%w: deleting milestone: %v", ErrPersistence, result.Error)
	}
	return nil
}
