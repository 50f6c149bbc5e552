package models

import (
	"time"

	"gorm.io/gorm"
)

// Batch groups students admitted together, e.g. "Batch 2026-A".
type Batch struct {
	gorm.Model
	Name        string    `json:"name" gorm:"uniqueIndex;not null"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
	Description string    `json:"description" gorm:"default:''"`
	IsActive    bool      `json:"is_active" gorm:"default:true"`
	IsDeleted   bool      `gorm:"default:false"`
}
