package models

import (
    "time"

    "gorm.io/gorm"
)

type MealSlot string

const (
    MealBreakfast MealSlot = "breakfast"
    MealLunch     MealSlot = "lunch"
    MealDinner    MealSlot = "dinner"
    MealSnack     MealSlot = "snack"
)

func (m MealSlot) Valid() bool {
    switch m {
    case MealBreakfast, MealLunch, MealDinner, MealSnack:
        return true
    }
    return false
}

// One logged serving of a catalog food. Date is the calendar day at local
// midnight; CreatedAt (from gorm.Model) orders the day's entries.
type FoodLog struct {
    gorm.Model
    FoodID   uint      `gorm:"index;not null"`
    UserID   uint      `gorm:"index;not null"`
    Date     time.Time `gorm:"index;not null"`
    MealType MealSlot  `gorm:"type:varchar(16);not null"`
    Quantity float64   `gorm:"not null"` // servings, [0.25, 99]
}
