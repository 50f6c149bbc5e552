package models

import "gorm.io/gorm"

// Branch is a physical campus of the institute.
type Branch struct {
	gorm.Model
	Name        string `json:"name" gorm:"not null"`
	Image       string `json:"image" gorm:"default:''"`
	PhoneNumber string `json:"phone_number" gorm:"default:''"`
	Address     string `json:"address" gorm:"default:''"`
	MapLink     string `json:"map_link" gorm:"default:''"`
	IsActive    bool   `json:"is_active" gorm:"default:true"`
	IsDeleted   bool   `gorm:"default:false"`
}

// BranchPhone is an extra labelled contact number shown in the site footer.
type BranchPhone struct {
	gorm.Model
	Label        string `json:"label" gorm:"not null"` // e.g. Office, Support
	PhoneNumber  string `json:"phone_number" gorm:"not null"`
	DisplayOrder int    `json:"display_order" gorm:"default:0"`
	IsActive     bool   `json:"is_active" gorm:"default:true"`
	IsDeleted    bool   `gorm:"default:false"`
}
