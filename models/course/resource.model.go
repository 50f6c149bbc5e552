package course

import "gorm.io/gorm"

// Resource is a downloadable file attached to a course and optionally to one
// of its modules. Downloads are restricted to enrolled students.
type Resource struct {
	gorm.Model
	CourseID     uint   `json:"course_id" gorm:"index;not null"`
	ModuleID     *uint  `json:"module_id" gorm:"index"`
	Title        string `json:"title" gorm:"not null"`
	Description  string `json:"description" gorm:"default:''"`
	FilePath     string `json:"file_path" gorm:"not null"`
	ResourceType string `json:"resource_type" gorm:"default:'PDF'"` // PDF, DOC, PPT, OTHER
	IsActive     bool   `json:"is_active" gorm:"default:true"`
	IsDeleted    bool   `gorm:"default:false"`
}
