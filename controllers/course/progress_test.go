package controllers_test

import (
	"testing"

	controllers "pmti/controllers/course"
	courseModels "pmti/models/course"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCourseProgress(t *testing.T) {
	db := setupTest(t)

	t.Run("counts only published modules", func(t *testing.T) {
		crs := createCourseWithModules(t, db, "Nursing Basics", 3, 2)

		// A draft module must not affect either count
		draft := courseModels.Module{CourseID: crs.ID, Title: "Draft", OrderIndex: 99, AdminCompleted: true}
		require.NoError(t, db.Create(&draft).Error)

		completed, total, err := controllers.CourseProgress(db, crs.ID)
		require.NoError(t, err)
		assert.EqualValues(t, 3, total)
		assert.EqualValues(t, 2, completed)
	})

	t.Run("ignores soft deleted modules", func(t *testing.T) {
		crs := createCourseWithModules(t, db, "Lab Technician", 2, 2)
		require.NoError(t, db.Model(&courseModels.Module{}).
			Where("course_id = ? AND order_index = ?", crs.ID, 2).
			Update("is_deleted", true).Error)

		completed, total, err := controllers.CourseProgress(db, crs.ID)
		require.NoError(t, err)
		assert.EqualValues(t, 1, total)
		assert.EqualValues(t, 1, completed)
	})
}

func TestIsEligibleForCertificate(t *testing.T) {
	db := setupTest(t)

	t.Run("all modules completed", func(t *testing.T) {
		crs := createCourseWithModules(t, db, "Midwifery", 3, 3)
		eligible, err := controllers.IsEligibleForCertificate(db, crs.ID)
		require.NoError(t, err)
		assert.True(t, eligible)
	})

	t.Run("one module outstanding", func(t *testing.T) {
		crs := createCourseWithModules(t, db, "Pharmacy Assistant", 3, 2)
		eligible, err := controllers.IsEligibleForCertificate(db, crs.ID)
		require.NoError(t, err)
		assert.False(t, eligible)
	})

	t.Run("course without published modules", func(t *testing.T) {
		crs := createCourseWithModules(t, db, "Empty Course", 0, 0)
		eligible, err := controllers.IsEligibleForCertificate(db, crs.ID)
		require.NoError(t, err)
		assert.False(t, eligible, "a course with no published modules is never complete")
	})
}

func TestIsEnrolled(t *testing.T) {
	db := setupTest(t)

	profile, _ := createStudent(t, db, "enrolltest", "EN1")
	crs := createCourseWithModules(t, db, "Radiology", 1, 0)

	assert.False(t, controllers.IsEnrolled(db, profile.ID, crs.ID))

	enroll(t, db, profile.ID, crs.ID)
	assert.True(t, controllers.IsEnrolled(db, profile.ID, crs.ID))

	// A soft-deleted enrollment no longer counts
	require.NoError(t, db.Model(&courseModels.Enrollment{}).
		Where("student_id = ? AND course_id = ?", profile.ID, crs.ID).
		Update("is_deleted", true).Error)
	assert.False(t, controllers.IsEnrolled(db, profile.ID, crs.ID))
}
