package course

import "gorm.io/gorm"

// Course represents a training course offered by the institute
type Course struct {
	gorm.Model
	Title       string `json:"title" gorm:"not null"`
	Description string `json:"description"`
	Thumbnail   string `json:"thumbnail" gorm:"default:''"`
	Duration    string `json:"duration" gorm:"default:'12 Weeks'"`
	IsActive    bool   `json:"is_active" gorm:"default:true"`
	IsDeleted   bool   `gorm:"default:false"`
}

// CourseBatch links a course to a batch it is offered to
type CourseBatch struct {
	gorm.Model
	CourseID  uint `json:"course_id" gorm:"uniqueIndex:idx_course_batch;not null"`
	BatchID   uint `json:"batch_id" gorm:"uniqueIndex:idx_course_batch;not null"`
	IsDeleted bool `gorm:"default:false"`
}
