package controllers_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	courseModels "pmti/models/course"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDownloadResource(t *testing.T) {
	db := setupTest(t)
	app := newTestApp()

	crs := createCourseWithModules(t, db, "Anatomy", 1, 0)

	dir := t.TempDir()
	filePath := filepath.Join(dir, "notes.pdf")
	require.NoError(t, os.WriteFile(filePath, []byte("%PDF-1.4 test"), 0644))

	resource := courseModels.Resource{
		CourseID: crs.ID,
		Title:    "Lecture Notes",
		FilePath: filePath,
		IsActive: true,
	}
	require.NoError(t, db.Create(&resource).Error)

	download := func(token string) *http.Response {
		req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/resource/%d/download", resource.ID), nil)
		req.Header.Set("Authorization", "Bearer "+token)
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		return resp
	}

	t.Run("enrolled student gets the file", func(t *testing.T) {
		profile, token := createStudent(t, db, "res_enrolled", "R1")
		enroll(t, db, profile.ID, crs.ID)

		resp := download(token)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Contains(t, resp.Header.Get("Content-Disposition"), "notes.pdf")
	})

	t.Run("non enrolled student sees not found", func(t *testing.T) {
		_, token := createStudent(t, db, "res_outsider", "R2")

		resp := download(token)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("staff bypasses enrollment", func(t *testing.T) {
		token := createStaff(t, db, "res_admin")

		resp := download(token)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("inactive resource is hidden", func(t *testing.T) {
		require.NoError(t, db.Model(&resource).Update("is_active", false).Error)
		defer db.Model(&resource).Update("is_active", true)

		profile, token := createStudent(t, db, "res_inactive", "R3")
		enroll(t, db, profile.ID, crs.ID)

		resp := download(token)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("anonymous request is rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/resource/%d/download", resource.ID), nil)
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})
}
