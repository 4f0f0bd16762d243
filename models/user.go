package models

import (
    "time"

    "gorm.io/gorm"
)

type User struct {
    gorm.Model
    Email          string `gorm:"uniqueIndex;not null"`
    FullName       string
    SignInToken    string `gorm:"index"`
    SignInTokenExp time.Time
}
