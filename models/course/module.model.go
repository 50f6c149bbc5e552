package course

import "gorm.io/gorm"

// Module represents a unit of course content. AdminCompleted is the
// institute-wide completion switch: when set, the module counts as completed
// for every enrolled student.
type Module struct {
	gorm.Model
	CourseID       uint   `json:"course_id" gorm:"uniqueIndex:idx_course_order;not null"`
	Title          string `json:"title" gorm:"not null"`
	Description    string `json:"description"`
	OrderIndex     int    `json:"order_index" gorm:"uniqueIndex:idx_course_order;default:0"`
	Content        string `json:"content"`
	VideoURL       string `json:"video_url" gorm:"default:''"`
	IsPublished    bool   `json:"is_published" gorm:"default:false"`
	AdminCompleted bool   `json:"admin_completed" gorm:"default:false"`
	IsDeleted      bool   `gorm:"default:false"`
}
