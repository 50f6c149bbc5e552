package adminController

import (
	"pmti/database"
	"pmti/middleware"
	"pmti/models"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// CreateBulletin adds a ticker line for the public pages (admin)
func CreateBulletin(c *fiber.Ctx) error {
	db := database.Database.Db

	reqData := new(struct {
		Text string `json:"text"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}
	if strings.TrimSpace(reqData.Text) == "" {
		return middleware.ValidationErrorResponse(c, map[string]string{"text": "Bulletin text is required!"})
	}

	bulletin := models.Bulletin{Text: reqData.Text}
	if err := db.Create(&bulletin).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create bulletin!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Bulletin created successfully!", bulletin)
}

// ListBulletins lists all bulletins, most recently updated first (admin)
func ListBulletins(c *fiber.Ctx) error {
	db := database.Database.Db

	var bulletins []models.Bulletin
	if err := db.Where("is_deleted = ?", false).Order("updated_at desc").Find(&bulletins).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch bulletins!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Bulletins fetched successfully!", fiber.Map{
		"bulletins": bulletins,
		"total":     len(bulletins),
	})
}

// UpdateBulletin edits the text or active flag. Saving touches updated_at, so
// an edited bulletin becomes the one shown on the public pages.
func UpdateBulletin(c *fiber.Ctx) error {
	db := database.Database.Db
	bulletinID := c.Locals("bulletinID").(int)

	var bulletin models.Bulletin
	if err := db.Where("id = ? AND is_deleted = ?", bulletinID, false).First(&bulletin).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Bulletin not found!", nil)
	}

	reqData := new(struct {
		Text     *string `json:"text"`
		IsActive *bool   `json:"is_active"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	if reqData.Text != nil {
		bulletin.Text = *reqData.Text
	}
	if reqData.IsActive != nil {
		bulletin.IsActive = *reqData.IsActive
	}

	if err := db.Save(&bulletin).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update bulletin!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Bulletin updated successfully!", bulletin)
}

// DeleteBulletin soft-deletes a bulletin (admin)
func DeleteBulletin(c *fiber.Ctx) error {
	db := database.Database.Db
	bulletinID := c.Locals("bulletinID").(int)

	var bulletin models.Bulletin
	if err := db.Where("id = ? AND is_deleted = ?", bulletinID, false).First(&bulletin).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Bulletin not found!", nil)
	}

	bulletin.IsDeleted = true
	bulletin.IsActive = false
	if err := db.Save(&bulletin).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete bulletin!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Bulletin deleted successfully!", nil)
}
