package controllers_test

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	controllers "pmti/controllers/course"
	courseModels "pmti/models/course"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func certificateRequest(t *testing.T, courseID uint, token string) *http.Request {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/course/%d/certificate", courseID), nil)
	req.Header.Set("Authorization", "Bearer "+token)
	return req
}

func TestGenerateCertificate(t *testing.T) {
	db := setupTest(t)
	app := newTestApp()

	t.Run("issues pdf for completed course", func(t *testing.T) {
		profile, token := createStudent(t, db, "cert_complete", "S1")
		crs := createCourseWithModules(t, db, "Community Health", 2, 2)
		enroll(t, db, profile.ID, crs.ID)

		resp, err := app.Test(certificateRequest(t, crs.ID, token), -1)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))

		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.True(t, len(body) > 0)
		assert.Equal(t, "%PDF", string(body[:4]))

		var cert courseModels.Certificate
		require.NoError(t, db.Where("student_id = ? AND course_id = ?", profile.ID, crs.ID).First(&cert).Error)
		wantNumber := fmt.Sprintf("NCC-%d-S1", time.Now().Year())
		assert.Equal(t, wantNumber, cert.CertificateNumber)
		assert.NotEmpty(t, cert.PDFPath)
	})

	t.Run("refuses while a module is outstanding", func(t *testing.T) {
		profile, token := createStudent(t, db, "cert_incomplete", "S2")
		crs := createCourseWithModules(t, db, "First Aid", 3, 2)
		enroll(t, db, profile.ID, crs.ID)

		resp, err := app.Test(certificateRequest(t, crs.ID, token), -1)
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		// No row may exist after a refused request
		var count int64
		db.Model(&courseModels.Certificate{}).
			Where("student_id = ? AND course_id = ?", profile.ID, crs.ID).Count(&count)
		assert.EqualValues(t, 0, count)
	})

	t.Run("repeat request reuses number and issue date", func(t *testing.T) {
		profile, token := createStudent(t, db, "cert_repeat", "S3")
		crs := createCourseWithModules(t, db, "Patient Care", 1, 1)
		enroll(t, db, profile.ID, crs.ID)

		resp, err := app.Test(certificateRequest(t, crs.ID, token), -1)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var first courseModels.Certificate
		require.NoError(t, db.Where("student_id = ? AND course_id = ?", profile.ID, crs.ID).First(&first).Error)

		resp, err = app.Test(certificateRequest(t, crs.ID, token), -1)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var second courseModels.Certificate
		require.NoError(t, db.Where("student_id = ? AND course_id = ?", profile.ID, crs.ID).First(&second).Error)
		assert.Equal(t, first.CertificateNumber, second.CertificateNumber)
		assert.WithinDuration(t, first.IssueDate, second.IssueDate, time.Second)

		var count int64
		db.Model(&courseModels.Certificate{}).
			Where("student_id = ? AND course_id = ?", profile.ID, crs.ID).Count(&count)
		assert.EqualValues(t, 1, count)
	})

	t.Run("hidden from students not enrolled", func(t *testing.T) {
		_, token := createStudent(t, db, "cert_outsider", "S4")
		crs := createCourseWithModules(t, db, "Physiotherapy", 1, 1)

		resp, err := app.Test(certificateRequest(t, crs.ID, token), -1)
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestRegenerateCertificate(t *testing.T) {
	db := setupTest(t)
	app := newTestApp()

	profile, token := createStudent(t, db, "cert_regen", "S5")
	crs := createCourseWithModules(t, db, "Dental Hygiene", 1, 1)
	enroll(t, db, profile.ID, crs.ID)

	resp, err := app.Test(certificateRequest(t, crs.ID, token), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var before courseModels.Certificate
	require.NoError(t, db.Where("student_id = ? AND course_id = ?", profile.ID, crs.ID).First(&before).Error)

	staffToken := createStaff(t, db, "regen_admin")
	req := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/admin/certificate/%d/regenerate", before.ID), nil)
	req.Header.Set("Authorization", "Bearer "+staffToken)
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var after courseModels.Certificate
	require.NoError(t, db.Where("id = ?", before.ID).First(&after).Error)
	assert.Equal(t, before.CertificateNumber, after.CertificateNumber)
	assert.WithinDuration(t, before.IssueDate, after.IssueDate, time.Second)
	assert.NotEmpty(t, after.PDFPath)
}

func TestRenderAndStoreCertificatePreservesNumber(t *testing.T) {
	db := setupTest(t)

	profile, _ := createStudent(t, db, "cert_render", "S6")
	crs := createCourseWithModules(t, db, "Optometry", 1, 1)

	cert := courseModels.Certificate{
		StudentID:         profile.ID,
		CourseID:          crs.ID,
		CertificateNumber: "NCC-2025-S6",
		IssueDate:         time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, db.Create(&cert).Error)

	pdfBytes, err := controllers.RenderAndStoreCertificate(&cert, profile, crs)
	require.NoError(t, err)
	assert.True(t, len(pdfBytes) > 0)

	var stored courseModels.Certificate
	require.NoError(t, db.Where("id = ?", cert.ID).First(&stored).Error)
	assert.Equal(t, "NCC-2025-S6", stored.CertificateNumber)
	assert.Equal(t, 2025, stored.IssueDate.Year())
	assert.NotEmpty(t, stored.PDFPath)
}
