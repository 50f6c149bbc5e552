package publicController

import (
	"pmti/config"
	"pmti/database"
	"pmti/middleware"
	"pmti/models"
	courseModels "pmti/models/course"
	"pmti/utils"

	"github.com/gofiber/fiber/v2"
)

func siteBlock() fiber.Map {
	site := config.Site()
	return fiber.Map{
		"site_name":       site.SiteName,
		"logo":            site.Logo,
		"hero_background": site.HeroBackground,
		"whatsapp_number": site.WhatsappNumber,
		"facebook_url":    site.FacebookURL,
		"contact_phone":   site.ContactPhone,
	}
}

// Home returns the landing page data: featured courses, gallery preview,
// branches, the current bulletin and site settings.
func Home(c *fiber.Ctx) error {
	db := database.Database.Db

	var courses []courseModels.Course
	db.Where("is_active = ? AND is_deleted = ?", true, false).
		Order("title asc").Limit(6).Find(&courses)

	var images []models.GalleryImage
	db.Where("is_deleted = ?", false).Order("created_at desc").Limit(6).Find(&images)

	var branches []models.Branch
	db.Where("is_active = ? AND is_deleted = ?", true, false).Order("name asc").Find(&branches)

	// Several bulletins may be active; the most recently updated one wins
	var bulletin models.Bulletin
	response := fiber.Map{
		"courses":  courses,
		"gallery":  images,
		"branches": branches,
		"site":     siteBlock(),
	}
	if err := db.Where("is_active = ? AND is_deleted = ?", true, false).
		Order("updated_at desc").First(&bulletin).Error; err == nil {
		response["bulletin"] = bulletin
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Home fetched successfully!", response)
}

// Gallery lists all campus photos, newest first
func Gallery(c *fiber.Ctx) error {
	db := database.Database.Db

	var images []models.GalleryImage
	if err := db.Where("is_deleted = ?", false).Order("created_at desc").Find(&images).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch gallery!", nil)
	}

	type GalleryItem struct {
		models.GalleryImage
		URL string `json:"url"`
	}
	result := make([]GalleryItem, len(images))
	for i, img := range images {
		result[i] = GalleryItem{GalleryImage: img, URL: utils.GetFileURL(img.Image)}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Gallery fetched successfully!", fiber.Map{
		"images": result,
		"total":  len(result),
	})
}

// Branches lists active campuses
func Branches(c *fiber.Ctx) error {
	db := database.Database.Db

	var branches []models.Branch
	if err := db.Where("is_active = ? AND is_deleted = ?", true, false).
		Order("name asc").Find(&branches).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch branches!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Branches fetched successfully!", fiber.Map{
		"branches": branches,
		"total":    len(branches),
	})
}

// Contact returns site contact settings plus the labelled footer numbers
func Contact(c *fiber.Ctx) error {
	db := database.Database.Db

	var phones []models.BranchPhone
	db.Where("is_active = ? AND is_deleted = ?", true, false).
		Order("display_order asc").Find(&phones)

	var branches []models.Branch
	db.Where("is_active = ? AND is_deleted = ?", true, false).Order("name asc").Find(&branches)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Contact info fetched successfully!", fiber.Map{
		"site":     siteBlock(),
		"phones":   phones,
		"branches": branches,
	})
}
