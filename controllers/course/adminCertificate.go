package controllers

import (
	"log"
	"pmti/database"
	"pmti/middleware"
	"pmti/models"
	courseModels "pmti/models/course"

	"github.com/gofiber/fiber/v2"
)

// AdminListCertificates lists all issued certificates (admin)
func AdminListCertificates(c *fiber.Ctx) error {
	db := database.Database.Db

	var certificates []courseModels.Certificate
	if err := db.Where("is_deleted = ?", false).Order("issue_date desc").Find(&certificates).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch certificates!", nil)
	}

	type CertificateDetail struct {
		courseModels.Certificate
		StudentNumber string `json:"student_number"`
		StudentName   string `json:"student_name"`
		CourseTitle   string `json:"course_title"`
	}

	result := make([]CertificateDetail, len(certificates))
	for i, cert := range certificates {
		result[i] = CertificateDetail{Certificate: cert}

		var profile models.StudentProfile
		if err := db.Preload("User").Where("id = ?", cert.StudentID).First(&profile).Error; err == nil {
			result[i].StudentNumber = profile.StudentID
			result[i].StudentName = profile.User.FullName()
		}
		var crs courseModels.Course
		if err := db.Where("id = ?", cert.CourseID).First(&crs).Error; err == nil {
			result[i].CourseTitle = crs.Title
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Certificates fetched successfully!", fiber.Map{
		"certificates": result,
		"total":        len(result),
	})
}

// RegenerateCertificate re-renders an issued certificate's PDF (admin). The
// certificate number and original issue date are preserved; only the stored
// file is replaced.
func RegenerateCertificate(c *fiber.Ctx) error {
	db := database.Database.Db
	certificateID := c.Locals("certificateID").(int)

	var cert courseModels.Certificate
	if err := db.Where("id = ? AND is_deleted = ?", certificateID, false).First(&cert).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Certificate not found!", nil)
	}

	var profile models.StudentProfile
	if err := db.Preload("User").Where("id = ?", cert.StudentID).First(&profile).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Student profile not found!", nil)
	}

	var crs courseModels.Course
	if err := db.Where("id = ?", cert.CourseID).First(&crs).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	if _, err := RenderAndStoreCertificate(&cert, &profile, &crs); err != nil {
		log.Printf("Error regenerating certificate PDF: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to render certificate!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Certificate regenerated successfully!", cert)
}
