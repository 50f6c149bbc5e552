package controllers

import (
	"fmt"
	"log"
	"path/filepath"
	"pmti/config"
	"pmti/database"
	"pmti/middleware"
	"pmti/models"
	courseModels "pmti/models/course"
	"pmti/utils"
	"time"

	"github.com/gofiber/fiber/v2"
)

// getOrCreateCertificate returns the certificate row for a student and
// course, creating it on first issue. The unique (student, course) index is
// the arbiter under concurrent requests: if the insert loses the race, the
// winner's row is fetched and returned instead of failing.
func getOrCreateCertificate(profile *models.StudentProfile, crs *courseModels.Course) (*courseModels.Certificate, bool, error) {
	db := database.Database.Db

	var existing courseModels.Certificate
	if err := db.Where("student_id = ? AND course_id = ? AND is_deleted = ?", profile.ID, crs.ID, false).
		First(&existing).Error; err == nil {
		return &existing, false, nil
	}

	cert := courseModels.Certificate{
		StudentID:         profile.ID,
		CourseID:          crs.ID,
		CertificateNumber: utils.CertificateNumber(config.Site().CertificatePrefix, time.Now().Year(), profile.StudentID),
		IssueDate:         time.Now(),
	}
	if err := db.Create(&cert).Error; err != nil {
		// Lost a concurrent insert race; take the existing row
		if err2 := db.Where("student_id = ? AND course_id = ? AND is_deleted = ?", profile.ID, crs.ID, false).
			First(&existing).Error; err2 == nil {
			return &existing, false, nil
		}
		return nil, false, err
	}
	return &cert, true, nil
}

// RenderAndStoreCertificate renders the PDF for an issued certificate and
// saves it under the media root, updating the row's file path. The number and
// issue date never change across re-renders. Used by the student endpoint and
// the admin regenerate action.
func RenderAndStoreCertificate(cert *courseModels.Certificate, profile *models.StudentProfile, crs *courseModels.Course) ([]byte, error) {
	data := utils.CertificateData{
		StudentName:       profile.User.FullName(),
		StudentID:         profile.StudentID,
		CourseTitle:       crs.Title,
		CertificateNumber: cert.CertificateNumber,
		IssueDate:         cert.IssueDate,
		SiteName:          config.Site().SiteName,
	}

	destDir := filepath.Join(config.AppConfig.MediaRoot, "certificates")
	filePath, pdfBytes, err := utils.SaveCertificatePDF(data, destDir)
	if err != nil {
		return nil, err
	}

	cert.PDFPath = filePath
	if err := database.Database.Db.Save(cert).Error; err != nil {
		return nil, err
	}

	return pdfBytes, nil
}

// GenerateCertificate issues (or re-renders) a completion certificate and
// streams the PDF. Eligibility is checked before any row or file is created.
func GenerateCertificate(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	db := database.Database.Db
	courseID := c.Locals("courseID").(int)

	profile, err := getStudentProfile(db, userID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Student profile not found!", nil)
	}

	var crs courseModels.Course
	if err := db.Where("id = ? AND is_deleted = ?", courseID, false).First(&crs).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	if !IsEnrolled(db, profile.ID, crs.ID) {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	eligible, err := IsEligibleForCertificate(db, crs.ID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to check course progress!", nil)
	}
	if !eligible {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "You must complete all modules before getting a certificate!", nil)
	}

	cert, created, err := getOrCreateCertificate(profile, &crs)
	if err != nil {
		log.Printf("Error creating certificate: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to issue certificate!", nil)
	}

	pdfBytes, err := RenderAndStoreCertificate(cert, profile, &crs)
	if err != nil {
		log.Printf("Error rendering certificate PDF: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to render certificate!", nil)
	}

	if created && profile.User.Email != "" {
		utils.SendCertificateIssuedEmail(profile.User.Email, profile.User.FullName(), crs.Title, cert.CertificateNumber)
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="certificate_%s.pdf"`, cert.CertificateNumber))
	return c.Send(pdfBytes)
}
