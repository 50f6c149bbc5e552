package controllers

import (
	"log"
	"path/filepath"
	"pmti/config"
	"pmti/database"
	"pmti/middleware"
	courseModels "pmti/models/course"
	"pmti/utils"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// UploadResource stores a new downloadable file for a course (admin).
// Multipart form: file, title, resource_type, optional module_id, description.
func UploadResource(c *fiber.Ctx) error {
	db := database.Database.Db
	courseID := c.Locals("courseID").(int)

	var course courseModels.Course
	if err := db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	file, err := c.FormFile("file")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Resource file is required!", nil)
	}

	title := c.FormValue("title")
	if title == "" {
		return middleware.ValidationErrorResponse(c, map[string]string{"title": "Title is required!"})
	}

	resourceType := c.FormValue("resource_type", "PDF")
	switch resourceType {
	case "PDF", "DOC", "PPT", "OTHER":
	default:
		return middleware.ValidationErrorResponse(c, map[string]string{"resource_type": "Resource type must be PDF, DOC, PPT or OTHER!"})
	}

	var moduleID *uint
	if raw := c.FormValue("module_id"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return middleware.ValidationErrorResponse(c, map[string]string{"module_id": "Module id must be a number!"})
		}
		var module courseModels.Module
		if err := db.Where("id = ? AND course_id = ? AND is_deleted = ?", parsed, courseID, false).First(&module).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Module not found in this course!", nil)
		}
		moduleID = &module.ID
	}

	filePath, err := utils.SaveUploadedFile(file, filepath.Join(config.AppConfig.MediaRoot, "resources"))
	if err != nil {
		log.Printf("Error saving resource file: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save resource file!", nil)
	}

	resource := courseModels.Resource{
		CourseID:     course.ID,
		ModuleID:     moduleID,
		Title:        title,
		Description:  c.FormValue("description"),
		FilePath:     filePath,
		ResourceType: resourceType,
	}
	if err := db.Create(&resource).Error; err != nil {
		log.Printf("Error creating resource: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create resource!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Resource uploaded successfully!", resource)
}

// UpdateResource edits resource metadata or toggles its active flag (admin)
func UpdateResource(c *fiber.Ctx) error {
	db := database.Database.Db
	resourceID := c.Locals("resourceID").(int)

	var resource courseModels.Resource
	if err := db.Where("id = ? AND is_deleted = ?", resourceID, false).First(&resource).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Resource not found!", nil)
	}

	reqData := new(struct {
		Title       *string `json:"title"`
		Description *string `json:"description"`
		IsActive    *bool   `json:"is_active"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	if reqData.Title != nil {
		resource.Title = *reqData.Title
	}
	if reqData.Description != nil {
		resource.Description = *reqData.Description
	}
	if reqData.IsActive != nil {
		resource.IsActive = *reqData.IsActive
	}

	if err := db.Save(&resource).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update resource!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Resource updated successfully!", resource)
}

// DeleteResource soft-deletes a resource (admin)
func DeleteResource(c *fiber.Ctx) error {
	db := database.Database.Db
	resourceID := c.Locals("resourceID").(int)

	var resource courseModels.Resource
	if err := db.Where("id = ? AND is_deleted = ?", resourceID, false).First(&resource).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Resource not found!", nil)
	}

	resource.IsDeleted = true
	resource.IsActive = false
	if err := db.Save(&resource).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete resource!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Resource deleted successfully!", nil)
}
