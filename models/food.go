package models

import "gorm.io/gorm"

// A catalog row resolved from the USDA food database. Nutrient values are
// per one serving; rows are never updated after the first write, so log
// entries that reference them keep their original snapshot.
type Food struct {
    gorm.Model
    Name     string `gorm:"not null"`
    Calories float64
    Protein  float64
    Carbs    float64
    Fat      float64
    Barcode  string `gorm:"type:varchar(255);uniqueIndex;not null"` // USDA fdcId
    UserID   uint   `gorm:"index"`
}
