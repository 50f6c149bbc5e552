package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Username  string     `json:"username" gorm:"unique;not null"`
	Email     string     `json:"email" gorm:"index;default:''"`
	FirstName string     `json:"first_name" gorm:"default:''"`
	LastName  string     `json:"last_name" gorm:"default:''"`
	Password  string     `json:"-" gorm:"not null"`
	IsStaff   bool       `json:"is_staff" gorm:"default:false"`
	LastLogin *time.Time `json:"last_login"`
	IsDeleted bool       `gorm:"default:false"`
}

// FullName returns the display name used on dashboards and certificates.
func (u *User) FullName() string {
	if u.FirstName == "" && u.LastName == "" {
		return u.Username
	}
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}
