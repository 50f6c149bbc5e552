package models

import "gorm.io/gorm"

// Announcement is shown to all students when IsGlobal is set, otherwise only
// to students of the linked batch.
type Announcement struct {
	gorm.Model
	Title     string `json:"title" gorm:"not null"`
	Content   string `json:"content"`
	BatchID   *uint  `json:"batch_id" gorm:"index"`
	IsGlobal  bool   `json:"is_global" gorm:"default:false"`
	IsActive  bool   `json:"is_active" gorm:"default:true"`
	IsDeleted bool   `gorm:"default:false"`
}
