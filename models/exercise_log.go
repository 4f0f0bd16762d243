package models

import (
    "time"

    "gorm.io/gorm"
)

type ExerciseLog struct {
    gorm.Model
    UserID         uint      `gorm:"index;not null"`
    Date           time.Time `gorm:"index;not null"`
    ExerciseType   string    `gorm:"not null"`
    Duration       float64   // minutes
    CaloriesBurned float64
    Notes          string
}
