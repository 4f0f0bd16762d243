package models

import "gorm.io/gorm"

// DailyGoal holds each user's daily nutrient-intake targets.
type DailyGoal struct {
    gorm.Model
    UserID   uint    `gorm:"uniqueIndex;not null"`
    Calories float64 // e.g. 2000 kcal
    Protein  float64 // e.g. 120 g
    Carbs    float64 // e.g. 275 g
    Fat      float64 // e.g. 70 g
}
