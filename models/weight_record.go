package models

import (
    "time"

    "gorm.io/gorm"
)

type WeightRecord struct {
    gorm.Model
    UserID uint      `gorm:"index;not null"`
    Date   time.Time `gorm:"index;not null"`
    Weight float64   `gorm:"not null"` // kg
    Notes  string
}
