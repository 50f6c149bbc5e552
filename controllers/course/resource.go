package controllers

import (
	"path/filepath"
	"pmti/database"
	"pmti/middleware"
	courseModels "pmti/models/course"

	"github.com/gofiber/fiber/v2"
)

// DownloadResource streams a resource file as an attachment. Access requires
// enrollment in the resource's course; any refusal looks identical to a
// missing resource so existence is not disclosed.
func DownloadResource(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	db := database.Database.Db
	resourceID := c.Locals("resourceID").(int)

	var resource courseModels.Resource
	if err := db.Where("id = ? AND is_active = ? AND is_deleted = ?", resourceID, true, false).First(&resource).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Resource not found!", nil)
	}

	isStaff, _ := c.Locals("isStaff").(bool)
	if !isStaff {
		profile, err := getStudentProfile(db, userID)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Student profile not found!", nil)
		}
		if !IsEnrolled(db, profile.ID, resource.CourseID) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Resource not found!", nil)
		}
	}

	return c.Download(resource.FilePath, filepath.Base(resource.FilePath))
}
