package adminController

import (
	"pmti/config"
	"pmti/database"
	"pmti/middleware"
	"pmti/models"
	courseModels "pmti/models/course"

	"github.com/gofiber/fiber/v2"
)

// Dashboard returns headline counts for the admin landing page
func Dashboard(c *fiber.Ctx) error {
	db := database.Database.Db

	var totalStudents, pendingVerification, activeBatches int64
	var totalCourses, totalCertificates, activeBranches int64

	db.Model(&models.StudentProfile{}).Where("is_deleted = ?", false).Count(&totalStudents)
	db.Model(&models.StudentProfile{}).Where("is_deleted = ? AND is_verified = ?", false, false).Count(&pendingVerification)
	db.Model(&models.Batch{}).Where("is_deleted = ? AND is_active = ?", false, true).Count(&activeBatches)
	db.Model(&courseModels.Course{}).Where("is_deleted = ?", false).Count(&totalCourses)
	db.Model(&courseModels.Certificate{}).Where("is_deleted = ?", false).Count(&totalCertificates)
	db.Model(&models.Branch{}).Where("is_deleted = ? AND is_active = ?", false, true).Count(&activeBranches)

	var recentStudents []models.StudentProfile
	db.Preload("User").Where("is_deleted = ?", false).
		Order("created_at desc").Limit(5).Find(&recentStudents)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Dashboard fetched successfully!", fiber.Map{
		"total_students":       totalStudents,
		"pending_verification": pendingVerification,
		"active_batches":       activeBatches,
		"total_courses":        totalCourses,
		"total_certificates":   totalCertificates,
		"active_branches":      activeBranches,
		"recent_students":      recentStudents,
	})
}

// GetSiteConfig returns the current site settings (admin)
func GetSiteConfig(c *fiber.Ctx) error {
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Site config fetched successfully!", config.Site())
}

// ReloadSiteConfig re-reads site settings from the environment (admin).
// Certificates issued after a prefix change use the new prefix; existing
// certificate numbers are never rewritten.
func ReloadSiteConfig(c *fiber.Ctx) error {
	config.ReloadSiteConfig()
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Site config reloaded successfully!", config.Site())
}
