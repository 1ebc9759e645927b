package models

import (
	"gorm.io/gorm"
)

// Service is one entry of the salon catalog. Price is in whole currency
// units, Duration in minutes.
type Service struct {
	gorm.Model
	Name     string `json:"name" gorm:"unique"`
	Price    int64  `json:"price"`
	Duration int    `json:"duration"`
}
