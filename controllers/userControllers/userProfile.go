package userControllers

import (
	"log"
	"path/filepath"
	"pmti/config"
	"pmti/database"
	"pmti/middleware"
	"pmti/models"
	courseModels "pmti/models/course"
	"pmti/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func loadProfile(db *gorm.DB, userID uint) (*models.StudentProfile, error) {
	var profile models.StudentProfile
	if err := db.Preload("User").
		Where("user_id = ? AND is_deleted = ?", userID, false).
		First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

func profileResponse(db *gorm.DB, profile *models.StudentProfile) fiber.Map {
	var courseIDs []uint
	db.Model(&courseModels.Enrollment{}).
		Where("student_id = ? AND is_deleted = ?", profile.ID, false).
		Pluck("course_id", &courseIDs)

	var courses []courseModels.Course
	if len(courseIDs) > 0 {
		db.Where("id IN ? AND is_deleted = ?", courseIDs, false).
			Order("title asc").Find(&courses)
	}

	var totalModules, completedModules int64
	if len(courseIDs) > 0 {
		db.Model(&courseModels.Module{}).
			Where("course_id IN ? AND is_published = ? AND is_deleted = ?", courseIDs, true, false).
			Count(&totalModules)
		db.Model(&courseModels.Module{}).
			Where("course_id IN ? AND is_published = ? AND admin_completed = ? AND is_deleted = ?", courseIDs, true, true, false).
			Count(&completedModules)
	}

	var certificates []courseModels.Certificate
	db.Where("student_id = ? AND is_deleted = ?", profile.ID, false).
		Order("issue_date desc").Find(&certificates)

	response := fiber.Map{
		"student":           profile,
		"courses":           courses,
		"total_modules":     totalModules,
		"completed_modules": completedModules,
		"certificates":      certificates,
	}
	if profile.ProfilePicture != "" {
		response["profile_picture_url"] = utils.GetFileURL(profile.ProfilePicture)
	}
	if profile.BatchID != nil {
		var batch models.Batch
		if err := db.Where("id = ? AND is_deleted = ?", *profile.BatchID, false).First(&batch).Error; err == nil {
			response["batch"] = batch
		}
	}
	return response
}

// GetProfile returns the logged-in student's profile with enrollments,
// progress counts and issued certificates.
func GetProfile(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	db := database.Database.Db
	profile, err := loadProfile(db, userID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Student profile not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile fetched successfully!", profileResponse(db, profile))
}

// GetProfileByID returns any student's profile (staff only; enforced by the
// route middleware).
func GetProfileByID(c *fiber.Ctx) error {
	db := database.Database.Db
	studentID := c.Locals("studentID").(int)

	var profile models.StudentProfile
	if err := db.Preload("User").
		Where("id = ? AND is_deleted = ?", studentID, false).
		First(&profile).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Student profile not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile fetched successfully!", profileResponse(db, &profile))
}

// UpdateProfile lets a student edit their own contact fields
func UpdateProfile(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	db := database.Database.Db
	profile, err := loadProfile(db, userID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Student profile not found!", nil)
	}

	reqData := new(struct {
		Phone     *string `json:"phone"`
		Address   *string `json:"address"`
		FirstName *string `json:"first_name"`
		LastName  *string `json:"last_name"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	if reqData.Phone != nil {
		profile.Phone = *reqData.Phone
	}
	if reqData.Address != nil {
		profile.Address = *reqData.Address
	}
	if err := db.Save(profile).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update profile!", nil)
	}

	if reqData.FirstName != nil || reqData.LastName != nil {
		if reqData.FirstName != nil {
			profile.User.FirstName = *reqData.FirstName
		}
		if reqData.LastName != nil {
			profile.User.LastName = *reqData.LastName
		}
		if err := db.Save(&profile.User).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update profile!", nil)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile updated successfully!", profile)
}

// UploadProfilePicture stores a new avatar for the logged-in student
func UploadProfilePicture(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	db := database.Database.Db
	profile, err := loadProfile(db, userID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Student profile not found!", nil)
	}

	file, err := c.FormFile("picture")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Picture file is required!", nil)
	}

	filePath, err := utils.SaveUploadedFile(file, filepath.Join(config.AppConfig.MediaRoot, "profile_pictures"))
	if err != nil {
		log.Printf("Error saving profile picture: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save picture!", nil)
	}

	profile.ProfilePicture = filePath
	if err := db.Save(profile).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update profile!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile picture updated successfully!", fiber.Map{
		"profile_picture_url": utils.GetFileURL(filePath),
	})
}

// GetAnnouncements lists announcements visible to the logged-in student:
// global ones plus those targeted at the student's batch.
func GetAnnouncements(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	db := database.Database.Db
	profile, err := loadProfile(db, userID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Student profile not found!", nil)
	}

	query := db.Where("is_active = ? AND is_deleted = ?", true, false)
	if profile.BatchID != nil {
		query = query.Where("is_global = ? OR batch_id = ?", true, *profile.BatchID)
	} else {
		query = query.Where("is_global = ?", true)
	}

	var announcements []models.Announcement
	if err := query.Order("created_at desc").Find(&announcements).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch announcements!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Announcements fetched successfully!", fiber.Map{
		"announcements": announcements,
		"total":         len(announcements),
	})
}
