package controllers

import (
	"log"
	"pmti/database"
	"pmti/middleware"
	courseModels "pmti/models/course"
	"time"

	"github.com/gofiber/fiber/v2"
)

// CreateModule adds a module to a course (admin). The (course, order) pair is
// unique; a clash is reported as a validation error.
func CreateModule(c *fiber.Ctx) error {
	db := database.Database.Db
	courseID := c.Locals("courseID").(int)

	reqData, ok := c.Locals("validatedModule").(*struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		OrderIndex  int    `json:"order_index"`
		Content     string `json:"content"`
		VideoURL    string `json:"video_url"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	var course courseModels.Course
	if err := db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	var clash courseModels.Module
	if err := db.Where("course_id = ? AND order_index = ? AND is_deleted = ?", courseID, reqData.OrderIndex, false).
		First(&clash).Error; err == nil {
		return middleware.ValidationErrorResponse(c, map[string]string{
			"order_index": "A module with this order already exists in the course!",
		})
	}

	module := courseModels.Module{
		CourseID:    course.ID,
		Title:       reqData.Title,
		Description: reqData.Description,
		OrderIndex:  reqData.OrderIndex,
		Content:     reqData.Content,
		VideoURL:    reqData.VideoURL,
	}
	if err := db.Create(&module).Error; err != nil {
		log.Printf("Error creating module: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create module!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Module created successfully!", module)
}

// UpdateModule edits a module's content fields (admin)
func UpdateModule(c *fiber.Ctx) error {
	db := database.Database.Db
	moduleID := c.Locals("moduleID").(int)

	var module courseModels.Module
	if err := db.Where("id = ? AND is_deleted = ?", moduleID, false).First(&module).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Module not found!", nil)
	}

	reqData := new(struct {
		Title       *string `json:"title"`
		Description *string `json:"description"`
		Content     *string `json:"content"`
		VideoURL    *string `json:"video_url"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	if reqData.Title != nil {
		module.Title = *reqData.Title
	}
	if reqData.Description != nil {
		module.Description = *reqData.Description
	}
	if reqData.Content != nil {
		module.Content = *reqData.Content
	}
	if reqData.VideoURL != nil {
		module.VideoURL = *reqData.VideoURL
	}

	if err := db.Save(&module).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update module!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Module updated successfully!", module)
}

// PublishModule toggles a module's published flag (admin)
func PublishModule(c *fiber.Ctx) error {
	db := database.Database.Db
	moduleID := c.Locals("moduleID").(int)

	reqData := new(struct {
		IsPublished bool `json:"is_published"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	var module courseModels.Module
	if err := db.Where("id = ? AND is_deleted = ?", moduleID, false).First(&module).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Module not found!", nil)
	}

	module.IsPublished = reqData.IsPublished
	if err := db.Save(&module).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update module!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Module publication updated successfully!", module)
}

// CompleteModule flips the institute-wide completion flag of a module
// (admin). Marking a module completed also marks the completion row of every
// enrolled student of the course, so per-student records always agree with
// the module flag.
func CompleteModule(c *fiber.Ctx) error {
	db := database.Database.Db
	moduleID := c.Locals("moduleID").(int)

	reqData := new(struct {
		AdminCompleted bool `json:"admin_completed"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	var module courseModels.Module
	if err := db.Where("id = ? AND is_deleted = ?", moduleID, false).First(&module).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Module not found!", nil)
	}

	module.AdminCompleted = reqData.AdminCompleted
	if err := db.Save(&module).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update module!", nil)
	}

	var studentIDs []uint
	if err := db.Model(&courseModels.Enrollment{}).
		Where("course_id = ? AND is_deleted = ?", module.CourseID, false).
		Pluck("student_id", &studentIDs).Error; err != nil {
		log.Printf("Error fetching enrollments for module completion: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update completions!", nil)
	}

	now := time.Now()
	for _, studentID := range studentIDs {
		var completion courseModels.ModuleCompletion
		if err := db.Where(courseModels.ModuleCompletion{StudentID: studentID, ModuleID: module.ID}).
			FirstOrCreate(&completion).Error; err != nil {
			log.Printf("Error upserting completion for student %d: %v", studentID, err)
			continue
		}
		completion.Completed = reqData.AdminCompleted
		if reqData.AdminCompleted {
			completion.CompletedAt = &now
		} else {
			completion.CompletedAt = nil
		}
		db.Save(&completion)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Module completion updated successfully!", module)
}

// AdminListModules lists all modules of a course including drafts (admin)
func AdminListModules(c *fiber.Ctx) error {
	db := database.Database.Db
	courseID := c.Locals("courseID").(int)

	var course courseModels.Course
	if err := db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	var modules []courseModels.Module
	if err := db.Where("course_id = ? AND is_deleted = ?", courseID, false).
		Order("order_index asc").Find(&modules).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch modules!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Modules fetched successfully!", fiber.Map{
		"course":  course,
		"modules": modules,
		"total":   len(modules),
	})
}

// DeleteModule soft-deletes a module (admin)
func DeleteModule(c *fiber.Ctx) error {
	db := database.Database.Db
	moduleID := c.Locals("moduleID").(int)

	var module courseModels.Module
	if err := db.Where("id = ? AND is_deleted = ?", moduleID, false).First(&module).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Module not found!", nil)
	}

	module.IsDeleted = true
	module.IsPublished = false
	if err := db.Save(&module).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete module!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Module deleted successfully!", nil)
}
