package utils

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"
)

// CertificateData carries everything the renderer needs. Both the student
// endpoint and the admin regenerate action go through this one renderer.
type CertificateData struct {
	StudentName       string
	StudentID         string
	CourseTitle       string
	CertificateNumber string
	IssueDate         time.Time
	SiteName          string
}

// CertificateNumber builds the public certificate number for a student and
// issue year, e.g. "NCC-2026-S1".
func CertificateNumber(prefix string, year int, studentID string) string {
	return fmt.Sprintf("%s-%d-%s", prefix, year, studentID)
}

// RenderCertificatePDF renders the single-page A4 completion certificate and
// returns the PDF bytes.
func RenderCertificatePDF(data CertificateData) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pageW, pageH := pdf.GetPageSize()

	// Outer border
	pdf.SetDrawColor(30, 58, 138)
	pdf.SetLineWidth(1.0)
	pdf.Rect(10, 10, pageW-20, pageH-20, "D")

	// Inner border
	pdf.SetDrawColor(59, 130, 246)
	pdf.SetLineWidth(0.3)
	pdf.Rect(14, 14, pageW-28, pageH-28, "D")

	// Title
	pdf.SetY(32)
	pdf.SetFont("Helvetica", "B", 32)
	pdf.SetTextColor(30, 58, 138)
	pdf.CellFormat(0, 14, "CERTIFICATE OF COMPLETION", "", 1, "C", false, 0, "")

	// Subtitle
	pdf.Ln(6)
	pdf.SetFont("Helvetica", "", 16)
	pdf.SetTextColor(0, 0, 0)
	pdf.CellFormat(0, 8, "This is to certify that", "", 1, "C", false, 0, "")

	// Student name
	pdf.Ln(10)
	pdf.SetFont("Helvetica", "B", 28)
	pdf.SetTextColor(30, 58, 138)
	pdf.CellFormat(0, 12, strings.ToUpper(data.StudentName), "", 1, "C", false, 0, "")

	// Student ID
	pdf.SetFont("Helvetica", "", 14)
	pdf.SetTextColor(0, 0, 0)
	pdf.CellFormat(0, 8, fmt.Sprintf("Registration No: %s", data.StudentID), "", 1, "C", false, 0, "")

	// Course completion text
	pdf.Ln(10)
	pdf.SetFont("Helvetica", "", 16)
	pdf.CellFormat(0, 8, "has successfully completed the course", "", 1, "C", false, 0, "")

	// Course name
	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 22)
	pdf.SetTextColor(30, 58, 138)
	pdf.CellFormat(0, 10, data.CourseTitle, "", 1, "C", false, 0, "")

	// Issue date and certificate number
	pdf.Ln(18)
	pdf.SetFont("Helvetica", "", 14)
	pdf.SetTextColor(0, 0, 0)
	pdf.CellFormat(0, 8, fmt.Sprintf("Date of Issue: %s", data.IssueDate.Format("January 02, 2006")), "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, fmt.Sprintf("Certificate No: %s", data.CertificateNumber), "", 1, "C", false, 0, "")

	// Signature line
	pdf.SetY(pageH - 60)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 6, "___________________________", "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 6, "Principal's Signature", "", 1, "C", false, 0, "")

	// Institution name
	pdf.SetY(pageH - 35)
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetTextColor(30, 58, 138)
	pdf.CellFormat(0, 8, data.SiteName, "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// SaveCertificatePDF renders the certificate and writes it under destDir,
// returning the stored path along with the PDF bytes.
func SaveCertificatePDF(data CertificateData, destDir string) (string, []byte, error) {
	pdfBytes, err := RenderCertificatePDF(data)
	if err != nil {
		return "", nil, err
	}

	if err := os.MkdirAll(destDir, 0755); err != nil {
		return "", nil, err
	}

	filePath := filepath.Join(destDir, fmt.Sprintf("certificate_%s.pdf", data.CertificateNumber))
	if err := os.WriteFile(filePath, pdfBytes, 0644); err != nil {
		return "", nil, err
	}

	return filePath, pdfBytes, nil
}
