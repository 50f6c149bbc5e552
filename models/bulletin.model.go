package models

import "gorm.io/gorm"

// Bulletin is the scrolling ticker text on the public pages. Several rows may
// be active at once; the display layer always takes the most recently updated
// active row.
type Bulletin struct {
	gorm.Model
	Text      string `json:"text" gorm:"not null"`
	IsActive  bool   `json:"is_active" gorm:"default:true"`
	IsDeleted bool   `gorm:"default:false"`
}
