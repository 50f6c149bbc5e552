package adminController

import (
	"log"
	"pmti/database"
	"pmti/middleware"
	"pmti/models"

	"github.com/gofiber/fiber/v2"
)

// CreateAnnouncement posts an announcement, global or batch-scoped (admin)
func CreateAnnouncement(c *fiber.Ctx) error {
	db := database.Database.Db

	reqData, ok := c.Locals("validatedAnnouncement").(*struct {
		Title    string `json:"title"`
		Content  string `json:"content"`
		BatchID  *uint  `json:"batch_id"`
		IsGlobal bool   `json:"is_global"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	if !reqData.IsGlobal && reqData.BatchID == nil {
		return middleware.ValidationErrorResponse(c, map[string]string{
			"batch_id": "A non-global announcement needs a batch!",
		})
	}
	if reqData.BatchID != nil {
		var batch models.Batch
		if err := db.Where("id = ? AND is_deleted = ?", *reqData.BatchID, false).First(&batch).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Batch not found!", nil)
		}
	}

	announcement := models.Announcement{
		Title:    reqData.Title,
		Content:  reqData.Content,
		BatchID:  reqData.BatchID,
		IsGlobal: reqData.IsGlobal,
	}
	if err := db.Create(&announcement).Error; err != nil {
		log.Printf("Error creating announcement: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create announcement!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Announcement created successfully!", announcement)
}

// ListAnnouncements lists all announcements newest first (admin)
func ListAnnouncements(c *fiber.Ctx) error {
	db := database.Database.Db

	var announcements []models.Announcement
	if err := db.Where("is_deleted = ?", false).Order("created_at desc").Find(&announcements).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch announcements!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Announcements fetched successfully!", fiber.Map{
		"announcements": announcements,
		"total":         len(announcements),
	})
}

// UpdateAnnouncement edits an announcement or toggles its active flag (admin)
func UpdateAnnouncement(c *fiber.Ctx) error {
	db := database.Database.Db
	announcementID := c.Locals("announcementID").(int)

	var announcement models.Announcement
	if err := db.Where("id = ? AND is_deleted = ?", announcementID, false).First(&announcement).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Announcement not found!", nil)
	}

	reqData := new(struct {
		Title    *string `json:"title"`
		Content  *string `json:"content"`
		IsActive *bool   `json:"is_active"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	if reqData.Title != nil {
		announcement.Title = *reqData.Title
	}
	if reqData.Content != nil {
		announcement.Content = *reqData.Content
	}
	if reqData.IsActive != nil {
		announcement.IsActive = *reqData.IsActive
	}

	if err := db.Save(&announcement).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update announcement!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Announcement updated successfully!", announcement)
}

// DeleteAnnouncement soft-deletes an announcement (admin)
func DeleteAnnouncement(c *fiber.Ctx) error {
	db := database.Database.Db
	announcementID := c.Locals("announcementID").(int)

	var announcement models.Announcement
	if err := db.Where("id = ? AND is_deleted = ?", announcementID, false).First(&announcement).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Announcement not found!", nil)
	}

	announcement.IsDeleted = true
	announcement.IsActive = false
	if err := db.Save(&announcement).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete announcement!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Announcement deleted successfully!", nil)
}
