package controllers

import (
	"pmti/models"
	courseModels "pmti/models/course"

	"gorm.io/gorm"
)

// CourseProgress reports a student's completion counts for a course.
// total is the number of published modules; completed is the number of
// published modules the admin has marked completed. Eligibility for a
// certificate requires completed == total with total > 0. The per-student
// ModuleCompletion rows are never consulted here; the module-level flag is
// the single source of truth.
func CourseProgress(db *gorm.DB, courseID uint) (completed int64, total int64, err error) {
	if err = db.Model(&courseModels.Module{}).
		Where("course_id = ? AND is_published = ? AND is_deleted = ?", courseID, true, false).
		Count(&total).Error; err != nil {
		return 0, 0, err
	}

	if err = db.Model(&courseModels.Module{}).
		Where("course_id = ? AND is_published = ? AND admin_completed = ? AND is_deleted = ?", courseID, true, true, false).
		Count(&completed).Error; err != nil {
		return 0, 0, err
	}

	return completed, total, nil
}

// IsEligibleForCertificate applies the completion gate.
func IsEligibleForCertificate(db *gorm.DB, courseID uint) (bool, error) {
	completed, total, err := CourseProgress(db, courseID)
	if err != nil {
		return false, err
	}
	return total > 0 && completed == total, nil
}

// IsEnrolled reports whether the student holds an enrollment in the course.
func IsEnrolled(db *gorm.DB, studentID, courseID uint) bool {
	var enrollment courseModels.Enrollment
	return db.Where("student_id = ? AND course_id = ? AND is_deleted = ?", studentID, courseID, false).
		First(&enrollment).Error == nil
}

// getStudentProfile loads the student profile for an authenticated account.
func getStudentProfile(db *gorm.DB, userID uint) (*models.StudentProfile, error) {
	var profile models.StudentProfile
	if err := db.Preload("User").
		Where("user_id = ? AND is_deleted = ?", userID, false).
		First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

// enrolledCourseIDs returns the ids of a student's enrolled courses.
func enrolledCourseIDs(db *gorm.DB, studentID uint) ([]uint, error) {
	var ids []uint
	err := db.Model(&courseModels.Enrollment{}).
		Where("student_id = ? AND is_deleted = ?", studentID, false).
		Pluck("course_id", &ids).Error
	return ids, err
}
