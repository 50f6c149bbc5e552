package controllers

import (
	"pmti/database"
	"pmti/middleware"
	courseModels "pmti/models/course"

	"github.com/gofiber/fiber/v2"
)

// GetModuleDetail returns a published module's content for an enrolled
// student. Opening a module records a ModuleCompletion row for the pair if
// one does not exist yet; that row tracks exposure, not eligibility.
func GetModuleDetail(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	db := database.Database.Db
	moduleID := c.Locals("moduleID").(int)

	var module courseModels.Module
	if err := db.Where("id = ? AND is_published = ? AND is_deleted = ?", moduleID, true, false).First(&module).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Module not found!", nil)
	}

	isStaff, _ := c.Locals("isStaff").(bool)
	if isStaff {
		// Staff preview: no completion row is recorded
		var resources []courseModels.Resource
		db.Where("module_id = ? AND is_active = ? AND is_deleted = ?", module.ID, true, false).Find(&resources)
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Module fetched successfully!", fiber.Map{
			"module":    module,
			"resources": resources,
		})
	}

	profile, err := getStudentProfile(db, userID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Student profile not found!", nil)
	}

	// Unenrolled students get the same response as a missing module
	if !IsEnrolled(db, profile.ID, module.CourseID) {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Module not found!", nil)
	}

	var completion courseModels.ModuleCompletion
	if err := db.Where(courseModels.ModuleCompletion{StudentID: profile.ID, ModuleID: module.ID}).
		FirstOrCreate(&completion).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to record module view!", nil)
	}

	var resources []courseModels.Resource
	db.Where("module_id = ? AND is_active = ? AND is_deleted = ?", module.ID, true, false).Find(&resources)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Module fetched successfully!", fiber.Map{
		"module":     module,
		"completion": completion,
		"resources":  resources,
	})
}
