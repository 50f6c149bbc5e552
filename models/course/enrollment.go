package course

import "gorm.io/gorm"

// Enrollment links a student to a course. Enrollment is assigned by an
// administrator, never self-service.
type Enrollment struct {
	gorm.Model
	StudentID uint `json:"student_id" gorm:"uniqueIndex:idx_student_course;not null"`
	CourseID  uint `json:"course_id" gorm:"uniqueIndex:idx_student_course;not null"`
	IsDeleted bool `gorm:"default:false"`
}
