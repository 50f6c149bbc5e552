package utils

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCertificateNumber(t *testing.T) {
	assert.Equal(t, "NCC-2026-S1", CertificateNumber("NCC", 2026, "S1"))
	assert.Equal(t, "PMTI-2025-REG-042", CertificateNumber("PMTI", 2025, "REG-042"))
}

func TestRenderCertificatePDF(t *testing.T) {
	data := CertificateData{
		StudentName:       "Asha Rai",
		StudentID:         "S1",
		CourseTitle:       "Community Health",
		CertificateNumber: "NCC-2026-S1",
		IssueDate:         time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		SiteName:          "Premier Medical And Technical Institute",
	}

	pdfBytes, err := RenderCertificatePDF(data)
	require.NoError(t, err)
	require.True(t, len(pdfBytes) > 0)
	assert.Equal(t, "%PDF", string(pdfBytes[:4]))
}

func TestSaveCertificatePDF(t *testing.T) {
	dir := t.TempDir()
	data := CertificateData{
		StudentName:       "Bibek Thapa",
		StudentID:         "S2",
		CourseTitle:       "First Aid",
		CertificateNumber: "NCC-2026-S2",
		IssueDate:         time.Now(),
		SiteName:          "Premier Medical And Technical Institute",
	}

	filePath, pdfBytes, err := SaveCertificatePDF(data, dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "certificate_NCC-2026-S2.pdf"), filePath)

	stored, err := os.ReadFile(filePath)
	require.NoError(t, err)
	assert.Equal(t, pdfBytes, stored)
}

func TestSaveCertificatePDFCreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "certificates")
	data := CertificateData{
		StudentName:       "Test",
		StudentID:         "S3",
		CertificateNumber: "NCC-2026-S3",
		IssueDate:         time.Now(),
	}

	filePath, _, err := SaveCertificatePDF(data, dir)
	require.NoError(t, err)
	assert.FileExists(t, filePath)
}
