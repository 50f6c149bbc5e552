package models

import "gorm.io/gorm"

// GalleryImage is a campus photo shown on the public gallery page.
type GalleryImage struct {
	gorm.Model
	Image     string `json:"image" gorm:"not null"`
	Caption   string `json:"caption" gorm:"default:''"`
	IsDeleted bool   `gorm:"default:false"`
}
