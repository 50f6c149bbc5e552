package adminController

import (
	"log"
	"path/filepath"
	"pmti/config"
	"pmti/database"
	"pmti/middleware"
	"pmti/models"
	"pmti/utils"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// CreateBranch adds a campus branch (admin). Multipart form: name, address,
// phone_number, map_link, optional image.
func CreateBranch(c *fiber.Ctx) error {
	db := database.Database.Db

	name := strings.TrimSpace(c.FormValue("name"))
	if name == "" {
		return middleware.ValidationErrorResponse(c, map[string]string{"name": "Branch name is required!"})
	}

	branch := models.Branch{
		Name:        name,
		Address:     c.FormValue("address"),
		PhoneNumber: c.FormValue("phone_number"),
		MapLink:     c.FormValue("map_link"),
	}

	if file, err := c.FormFile("image"); err == nil {
		filePath, err := utils.SaveUploadedFile(file, filepath.Join(config.AppConfig.MediaRoot, "branches"))
		if err != nil {
			log.Printf("Error saving branch image: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save branch image!", nil)
		}
		branch.Image = filePath
	}

	if err := db.Create(&branch).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create branch!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Branch created successfully!", branch)
}

// ListBranches lists all branches including inactive ones (admin)
func ListBranches(c *fiber.Ctx) error {
	db := database.Database.Db

	var branches []models.Branch
	if err := db.Where("is_deleted = ?", false).Order("name asc").Find(&branches).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch branches!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Branches fetched successfully!", fiber.Map{
		"branches": branches,
		"total":    len(branches),
	})
}

// UpdateBranch edits branch fields or toggles its active flag (admin)
func UpdateBranch(c *fiber.Ctx) error {
	db := database.Database.Db
	branchID := c.Locals("branchID").(int)

	var branch models.Branch
	if err := db.Where("id = ? AND is_deleted = ?", branchID, false).First(&branch).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Branch not found!", nil)
	}

	reqData := new(struct {
		Name        *string `json:"name"`
		Address     *string `json:"address"`
		PhoneNumber *string `json:"phone_number"`
		MapLink     *string `json:"map_link"`
		IsActive    *bool   `json:"is_active"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	if reqData.Name != nil {
		branch.Name = *reqData.Name
	}
	if reqData.Address != nil {
		branch.Address = *reqData.Address
	}
	if reqData.PhoneNumber != nil {
		branch.PhoneNumber = *reqData.PhoneNumber
	}
	if reqData.MapLink != nil {
		branch.MapLink = *reqData.MapLink
	}
	if reqData.IsActive != nil {
		branch.IsActive = *reqData.IsActive
	}

	if err := db.Save(&branch).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update branch!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Branch updated successfully!", branch)
}

// DeleteBranch soft-deletes a branch (admin)
func DeleteBranch(c *fiber.Ctx) error {
	db := database.Database.Db
	branchID := c.Locals("branchID").(int)

	var branch models.Branch
	if err := db.Where("id = ? AND is_deleted = ?", branchID, false).First(&branch).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Branch not found!", nil)
	}

	branch.IsDeleted = true
	branch.IsActive = false
	if err := db.Save(&branch).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete branch!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Branch deleted successfully!", nil)
}

// CreateBranchPhone adds a labelled footer contact number (admin)
func CreateBranchPhone(c *fiber.Ctx) error {
	db := database.Database.Db

	reqData := new(struct {
		Label        string `json:"label"`
		PhoneNumber  string `json:"phone_number"`
		DisplayOrder int    `json:"display_order"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	fieldErrors := make(map[string]string)
	if strings.TrimSpace(reqData.Label) == "" {
		fieldErrors["label"] = "Label is required!"
	}
	if strings.TrimSpace(reqData.PhoneNumber) == "" {
		fieldErrors["phone_number"] = "Phone number is required!"
	}
	if len(fieldErrors) > 0 {
		return middleware.ValidationErrorResponse(c, fieldErrors)
	}

	phone := models.BranchPhone{
		Label:        reqData.Label,
		PhoneNumber:  reqData.PhoneNumber,
		DisplayOrder: reqData.DisplayOrder,
	}
	if err := db.Create(&phone).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create contact number!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Contact number created successfully!", phone)
}

// DeleteBranchPhone soft-deletes a footer contact number (admin)
func DeleteBranchPhone(c *fiber.Ctx) error {
	db := database.Database.Db
	phoneID := c.Locals("phoneID").(int)

	var phone models.BranchPhone
	if err := db.Where("id = ? AND is_deleted = ?", phoneID, false).First(&phone).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Contact number not found!", nil)
	}

	phone.IsDeleted = true
	phone.IsActive = false
	if err := db.Save(&phone).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete contact number!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Contact number deleted successfully!", nil)
}
