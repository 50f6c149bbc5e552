package models

import (
	"time"

	"gorm.io/gorm"
)

// StudentProfile extends a User account with institute registration data.
// A profile starts unverified; an administrator must verify it before the
// student can log in.
type StudentProfile struct {
	gorm.Model
	UserID         uint       `json:"user_id" gorm:"uniqueIndex;not null"`
	User           User       `json:"user" gorm:"foreignKey:UserID"`
	StudentID      string     `json:"student_id" gorm:"uniqueIndex;not null"` // public registration number
	Phone          string     `json:"phone" gorm:"default:''"`
	BatchID        *uint      `json:"batch_id" gorm:"index"`
	DateOfBirth    *time.Time `json:"date_of_birth"`
	Address        string     `json:"address" gorm:"default:''"`
	ProfilePicture string     `json:"profile_picture" gorm:"default:''"`
	IsActive       bool       `json:"is_active" gorm:"default:true"`
	IsVerified     bool       `json:"is_verified" gorm:"default:false"`
	VerifiedAt     *time.Time `json:"verified_at"`
	IsDeleted      bool       `gorm:"default:false"`
}
