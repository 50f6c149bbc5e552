package course

import (
	"time"

	"gorm.io/gorm"
)

// ModuleCompletion records that a student has seen a module. A row is created
// the first time a student opens a module and is marked completed when an
// administrator completes the module. Certificate eligibility is derived from
// the module-level AdminCompleted flag, never from these rows.
type ModuleCompletion struct {
	gorm.Model
	StudentID   uint       `json:"student_id" gorm:"uniqueIndex:idx_student_module;not null"`
	ModuleID    uint       `json:"module_id" gorm:"uniqueIndex:idx_student_module;not null"`
	Completed   bool       `json:"completed" gorm:"default:false"`
	CompletedAt *time.Time `json:"completed_at"`
	IsDeleted   bool       `gorm:"default:false"`
}
