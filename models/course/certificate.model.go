package course

import (
	"time"

	"gorm.io/gorm"
)

// Certificate represents an issued course-completion certificate. A student
// holds at most one certificate per course; the number and issue date are
// fixed at first generation, only the rendered PDF file may be replaced.
type Certificate struct {
	gorm.Model
	StudentID         uint      `json:"student_id" gorm:"uniqueIndex:idx_student_cert;not null"`
	CourseID          uint      `json:"course_id" gorm:"uniqueIndex:idx_student_cert;not null"`
	CertificateNumber string    `json:"certificate_number" gorm:"uniqueIndex;not null"`
	IssueDate         time.Time `json:"issue_date"`
	PDFPath           string    `json:"pdf_path" gorm:"default:''"`
	IsDeleted         bool      `gorm:"default:false"`
}
