package models

import (
    "time"

    "gorm.io/gorm"
)

type Milestone struct {
    gorm.Model
    UserID      uint      `gorm:"index;not null"`
    Title       string    `gorm:"not null"`
    Description string
    TargetDate  time.Time
    Completed   bool
    CompletedAt *time.Time
}
