package adminController

import (
	"log"
	"pmti/database"
	"pmti/middleware"
	"pmti/models"
	"time"

	"github.com/gofiber/fiber/v2"
)

// CreateBatch creates a student batch (admin)
func CreateBatch(c *fiber.Ctx) error {
	db := database.Database.Db

	reqData, ok := c.Locals("validatedBatch").(*struct {
		Name        string    `json:"name"`
		StartDate   time.Time `json:"start_date"`
		EndDate     time.Time `json:"end_date"`
		Description string    `json:"description"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	var existing models.Batch
	if err := db.Where("name = ? AND is_deleted = ?", reqData.Name, false).First(&existing).Error; err == nil {
		return middleware.ValidationErrorResponse(c, map[string]string{
			"name": "A batch with this name already exists!",
		})
	}

	batch := models.Batch{
		Name:        reqData.Name,
		StartDate:   reqData.StartDate,
		EndDate:     reqData.EndDate,
		Description: reqData.Description,
	}
	if err := db.Create(&batch).Error; err != nil {
		log.Printf("Error creating batch: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create batch!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Batch created successfully!", batch)
}

// ListBatches lists all batches with member counts (admin)
func ListBatches(c *fiber.Ctx) error {
	db := database.Database.Db

	var batches []models.Batch
	if err := db.Where("is_deleted = ?", false).Order("start_date desc").Find(&batches).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch batches!", nil)
	}

	type BatchDetail struct {
		models.Batch
		StudentCount int64 `json:"student_count"`
	}

	result := make([]BatchDetail, len(batches))
	for i, batch := range batches {
		result[i] = BatchDetail{Batch: batch}
		db.Model(&models.StudentProfile{}).
			Where("batch_id = ? AND is_deleted = ?", batch.ID, false).
			Count(&result[i].StudentCount)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Batches fetched successfully!", fiber.Map{
		"batches": result,
		"total":   len(result),
	})
}

// UpdateBatch edits batch fields or toggles its active flag (admin)
func UpdateBatch(c *fiber.Ctx) error {
	db := database.Database.Db
	batchID := c.Locals("batchID").(int)

	var batch models.Batch
	if err := db.Where("id = ? AND is_deleted = ?", batchID, false).First(&batch).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Batch not found!", nil)
	}

	reqData := new(struct {
		Name        *string    `json:"name"`
		StartDate   *time.Time `json:"start_date"`
		EndDate     *time.Time `json:"end_date"`
		Description *string    `json:"description"`
		IsActive    *bool      `json:"is_active"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	if reqData.Name != nil {
		batch.Name = *reqData.Name
	}
	if reqData.StartDate != nil {
		batch.StartDate = *reqData.StartDate
	}
	if reqData.EndDate != nil {
		batch.EndDate = *reqData.EndDate
	}
	if reqData.Description != nil {
		batch.Description = *reqData.Description
	}
	if reqData.IsActive != nil {
		batch.IsActive = *reqData.IsActive
	}

	if err := db.Save(&batch).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update batch!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Batch updated successfully!", batch)
}

// DeleteBatch soft-deletes a batch (admin). Students keep their profile but
// lose the batch link.
func DeleteBatch(c *fiber.Ctx) error {
	db := database.Database.Db
	batchID := c.Locals("batchID").(int)

	var batch models.Batch
	if err := db.Where("id = ? AND is_deleted = ?", batchID, false).First(&batch).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Batch not found!", nil)
	}

	batch.IsDeleted = true
	batch.IsActive = false
	if err := db.Save(&batch).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete batch!", nil)
	}

	if err := db.Model(&models.StudentProfile{}).
		Where("batch_id = ?", batch.ID).
		Update("batch_id", nil).Error; err != nil {
		log.Printf("Error detaching students from batch %d: %v", batch.ID, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Batch deleted successfully!", nil)
}
