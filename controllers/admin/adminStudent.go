package adminController

import (
	"log"
	"pmti/database"
	"pmti/middleware"
	"pmti/models"
	courseModels "pmti/models/course"
	"pmti/utils"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

// ListStudents returns student profiles with optional filters (admin).
// Query params: verified=true|false, batch_id, search (name / username /
// student number substring), page, limit.
func ListStudents(c *fiber.Ctx) error {
	db := database.Database.Db

	page := c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}
	limit := c.QueryInt("limit", 20)
	if limit < 1 || limit > 100 {
		limit = 20
	}

	query := db.Model(&models.StudentProfile{}).Preload("User").
		Where("student_profiles.is_deleted = ?", false)

	if verified := c.Query("verified"); verified != "" {
		query = query.Where("student_profiles.is_verified = ?", verified == "true")
	}
	if batchID := c.QueryInt("batch_id", 0); batchID > 0 {
		query = query.Where("student_profiles.batch_id = ?", batchID)
	}
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		query = query.Joins("JOIN users ON users.id = student_profiles.user_id").
			Where("LOWER(users.username) LIKE ? OR LOWER(users.first_name) LIKE ? OR LOWER(users.last_name) LIKE ? OR LOWER(student_profiles.student_id) LIKE ?",
				pattern, pattern, pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch students!", nil)
	}

	var students []models.StudentProfile
	if err := query.Order("student_profiles.created_at desc").
		Offset((page - 1) * limit).Limit(limit).Find(&students).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch students!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Students fetched successfully!", fiber.Map{
		"students": students,
		"total":    total,
		"page":     page,
		"limit":    limit,
	})
}

// GetStudent returns one student profile with enrollments (admin)
func GetStudent(c *fiber.Ctx) error {
	db := database.Database.Db
	studentID := c.Locals("studentID").(int)

	var profile models.StudentProfile
	if err := db.Preload("User").Where("id = ? AND is_deleted = ?", studentID, false).
		First(&profile).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Student not found!", nil)
	}

	var enrollments []courseModels.Enrollment
	db.Where("student_id = ? AND is_deleted = ?", profile.ID, false).Find(&enrollments)

	var certificates []courseModels.Certificate
	db.Where("student_id = ? AND is_deleted = ?", profile.ID, false).Find(&certificates)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Student fetched successfully!", fiber.Map{
		"student":      profile,
		"enrollments":  enrollments,
		"certificates": certificates,
	})
}

// VerifyStudent marks a pending registration as verified so the student can
// log in (admin). Verifying an already-verified student is a no-op.
func VerifyStudent(c *fiber.Ctx) error {
	db := database.Database.Db
	studentID := c.Locals("studentID").(int)

	var profile models.StudentProfile
	if err := db.Preload("User").Where("id = ? AND is_deleted = ?", studentID, false).
		First(&profile).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Student not found!", nil)
	}

	if !profile.IsVerified {
		now := time.Now()
		profile.IsVerified = true
		profile.VerifiedAt = &now
		if err := db.Save(&profile).Error; err != nil {
			log.Printf("Error verifying student %d: %v", profile.ID, err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to verify student!", nil)
		}
		if profile.User.Email != "" {
			utils.SendAccountVerifiedEmail(profile.User.Email, profile.User.FullName())
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Student verified successfully!", profile)
}

// UnverifyStudent revokes verification, blocking further logins (admin)
func UnverifyStudent(c *fiber.Ctx) error {
	db := database.Database.Db
	studentID := c.Locals("studentID").(int)

	var profile models.StudentProfile
	if err := db.Where("id = ? AND is_deleted = ?", studentID, false).First(&profile).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Student not found!", nil)
	}

	profile.IsVerified = false
	profile.VerifiedAt = nil
	if err := db.Save(&profile).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update student!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Student verification revoked!", profile)
}

// UpdateStudent edits profile fields or toggles the active flag (admin)
func UpdateStudent(c *fiber.Ctx) error {
	db := database.Database.Db
	studentID := c.Locals("studentID").(int)

	var profile models.StudentProfile
	if err := db.Where("id = ? AND is_deleted = ?", studentID, false).First(&profile).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Student not found!", nil)
	}

	reqData := new(struct {
		Phone    *string `json:"phone"`
		Address  *string `json:"address"`
		BatchID  *uint   `json:"batch_id"`
		IsActive *bool   `json:"is_active"`
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
	if reqData.BatchID != nil {
		var batch models.Batch
		if err := db.Where("id = ? AND is_deleted = ?", *reqData.BatchID, false).First(&batch).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Batch not found!", nil)
		}
		profile.BatchID = reqData.BatchID
	}
	if reqData.IsActive != nil {
		profile.IsActive = *reqData.IsActive
	}

	if err := db.Save(&profile).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update student!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Student updated successfully!", profile)
}

// EnrollStudent links a student to a course (admin). Re-enrolling an already
// enrolled student returns the existing link.
func EnrollStudent(c *fiber.Ctx) error {
	db := database.Database.Db
	studentID := c.Locals("studentID").(int)

	reqData := new(struct {
		CourseID uint `json:"course_id"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	var profile models.StudentProfile
	if err := db.Where("id = ? AND is_deleted = ?", studentID, false).First(&profile).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Student not found!", nil)
	}

	var crs courseModels.Course
	if err := db.Where("id = ? AND is_deleted = ?", reqData.CourseID, false).First(&crs).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	var enrollment courseModels.Enrollment
	if err := db.Where(courseModels.Enrollment{StudentID: profile.ID, CourseID: crs.ID}).
		FirstOrCreate(&enrollment).Error; err != nil {
		log.Printf("Error enrolling student %d in course %d: %v", profile.ID, crs.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to enroll student!", nil)
	}

	// Re-enrollment after an unenroll revives the soft-deleted link
	if enrollment.IsDeleted {
		enrollment.IsDeleted = false
		if err := db.Save(&enrollment).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to enroll student!", nil)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Student enrolled successfully!", enrollment)
}

// UnenrollStudent removes a student's course link (admin)
func UnenrollStudent(c *fiber.Ctx) error {
	db := database.Database.Db
	studentID := c.Locals("studentID").(int)

	reqData := new(struct {
		CourseID uint `json:"course_id"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	var enrollment courseModels.Enrollment
	if err := db.Where("student_id = ? AND course_id = ? AND is_deleted = ?", studentID, reqData.CourseID, false).
		First(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Enrollment not found!", nil)
	}

	enrollment.IsDeleted = true
	if err := db.Save(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to unenroll student!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Student unenrolled successfully!", nil)
}
