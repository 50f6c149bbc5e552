package adminController

import (
	"log"
	"path/filepath"
	"pmti/config"
	"pmti/database"
	"pmti/middleware"
	"pmti/models"
	"pmti/utils"

	"github.com/gofiber/fiber/v2"
)

// UploadGalleryImage adds a campus photo to the public gallery (admin).
// Multipart form: image, optional caption.
func UploadGalleryImage(c *fiber.Ctx) error {
	db := database.Database.Db

	file, err := c.FormFile("image")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Image file is required!", nil)
	}

	filePath, err := utils.SaveUploadedFile(file, filepath.Join(config.AppConfig.MediaRoot, "gallery"))
	if err != nil {
		log.Printf("Error saving gallery image: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save image!", nil)
	}

	image := models.GalleryImage{
		Image:   filePath,
		Caption: c.FormValue("caption"),
	}
	if err := db.Create(&image).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create gallery image!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Gallery image uploaded successfully!", fiber.Map{
		"image": image,
		"url":   utils.GetFileURL(filePath),
	})
}

// ListGalleryImages lists all gallery images newest first (admin)
func ListGalleryImages(c *fiber.Ctx) error {
	db := database.Database.Db

	var images []models.GalleryImage
	if err := db.Where("is_deleted = ?", false).Order("created_at desc").Find(&images).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch gallery!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Gallery fetched successfully!", fiber.Map{
		"images": images,
		"total":  len(images),
	})
}

// DeleteGalleryImage soft-deletes a gallery image (admin)
func DeleteGalleryImage(c *fiber.Ctx) error {
	db := database.Database.Db
	imageID := c.Locals("imageID").(int)

	var image models.GalleryImage
	if err := db.Where("id = ? AND is_deleted = ?", imageID, false).First(&image).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Image not found!", nil)
	}

	image.IsDeleted = true
	if err := db.Save(&image).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete image!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Gallery image deleted successfully!", nil)
}
