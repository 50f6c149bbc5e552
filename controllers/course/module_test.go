package controllers_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	courseModels "pmti/models/course"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetModuleDetail(t *testing.T) {
	db := setupTest(t)
	app := newTestApp()

	crs := createCourseWithModules(t, db, "Microbiology", 2, 0)
	var module courseModels.Module
	require.NoError(t, db.Where("course_id = ? AND order_index = ?", crs.ID, 1).First(&module).Error)

	moduleURL := fmt.Sprintf("/course/%d/module/%d", crs.ID, module.ID)

	t.Run("opening records a completion row", func(t *testing.T) {
		profile, token := createStudent(t, db, "mod_enrolled", "M1")
		enroll(t, db, profile.ID, crs.ID)

		req := httptest.NewRequest(http.MethodGet, moduleURL, nil)
		req.Header.Set("Authorization", "Bearer "+token)
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var completion courseModels.ModuleCompletion
		require.NoError(t, db.Where("student_id = ? AND module_id = ?", profile.ID, module.ID).First(&completion).Error)
		assert.False(t, completion.Completed, "viewing a module must not mark it completed")
	})

	t.Run("unenrolled student sees not found", func(t *testing.T) {
		_, token := createStudent(t, db, "mod_outsider", "M2")

		req := httptest.NewRequest(http.MethodGet, moduleURL, nil)
		req.Header.Set("Authorization", "Bearer "+token)
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("unpublished module is hidden", func(t *testing.T) {
		draft := courseModels.Module{CourseID: crs.ID, Title: "Draft", OrderIndex: 50}
		require.NoError(t, db.Create(&draft).Error)

		profile, token := createStudent(t, db, "mod_draft", "M3")
		enroll(t, db, profile.ID, crs.ID)

		req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/course/%d/module/%d", crs.ID, draft.ID), nil)
		req.Header.Set("Authorization", "Bearer "+token)
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestCompleteModule(t *testing.T) {
	db := setupTest(t)
	app := newTestApp()

	crs := createCourseWithModules(t, db, "Biochemistry", 1, 0)
	var module courseModels.Module
	require.NoError(t, db.Where("course_id = ?", crs.ID).First(&module).Error)

	p1, _ := createStudent(t, db, "complete_a", "C1")
	p2, _ := createStudent(t, db, "complete_b", "C2")
	enroll(t, db, p1.ID, crs.ID)
	enroll(t, db, p2.ID, crs.ID)

	staffToken := createStaff(t, db, "complete_admin")

	req := httptest.NewRequest(http.MethodPost,
		fmt.Sprintf("/admin/module/%d/complete", module.ID),
		strings.NewReader(`{"admin_completed": true}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+staffToken)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var updated courseModels.Module
	require.NoError(t, db.Where("id = ?", module.ID).First(&updated).Error)
	assert.True(t, updated.AdminCompleted)

	// Every enrolled student gets a completed row
	for _, profileID := range []uint{p1.ID, p2.ID} {
		var completion courseModels.ModuleCompletion
		require.NoError(t, db.Where("student_id = ? AND module_id = ?", profileID, module.ID).First(&completion).Error)
		assert.True(t, completion.Completed)
		assert.NotNil(t, completion.CompletedAt)
	}
}

func TestCompleteModuleRequiresStaff(t *testing.T) {
	db := setupTest(t)
	app := newTestApp()

	crs := createCourseWithModules(t, db, "Pathology", 1, 0)
	var module courseModels.Module
	require.NoError(t, db.Where("course_id = ?", crs.ID).First(&module).Error)

	_, token := createStudent(t, db, "complete_student", "C3")

	req := httptest.NewRequest(http.MethodPost,
		fmt.Sprintf("/admin/module/%d/complete", module.ID),
		strings.NewReader(`{"admin_completed": true}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}
