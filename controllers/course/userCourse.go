package controllers

import (
	"pmti/database"
	"pmti/middleware"
	"pmti/models"
	courseModels "pmti/models/course"

	"github.com/gofiber/fiber/v2"
)

// GetAllCourses lists active courses. Public: no enrollment data is included.
func GetAllCourses(c *fiber.Ctx) error {
	db := database.Database.Db

	var courses []courseModels.Course
	if err := db.Where("is_active = ? AND is_deleted = ?", true, false).
		Order("title asc").Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	type CourseWithCounts struct {
		courseModels.Course
		ModuleCount   int64 `json:"module_count"`
		ResourceCount int64 `json:"resource_count"`
	}

	result := make([]CourseWithCounts, len(courses))
	for i, crs := range courses {
		result[i] = CourseWithCounts{Course: crs}
		db.Model(&courseModels.Module{}).
			Where("course_id = ? AND is_published = ? AND is_deleted = ?", crs.ID, true, false).
			Count(&result[i].ModuleCount)
		db.Model(&courseModels.Resource{}).
			Where("course_id = ? AND is_active = ? AND is_deleted = ?", crs.ID, true, false).
			Count(&result[i].ResourceCount)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", fiber.Map{
		"courses": result,
		"total":   len(result),
	})
}

// GetCourseDetails returns the public course overview. Completion status,
// enrollment flag and the certificate link appear only for an authenticated,
// enrolled student.
func GetCourseDetails(c *fiber.Ctx) error {
	db := database.Database.Db
	courseID := c.Locals("courseID").(int)

	var course courseModels.Course
	if err := db.Where("id = ? AND is_active = ? AND is_deleted = ?", courseID, true, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	var modules []courseModels.Module
	db.Where("course_id = ? AND is_published = ? AND is_deleted = ?", courseID, true, false).
		Order("order_index asc").Find(&modules)

	var resources []courseModels.Resource
	db.Where("course_id = ? AND is_active = ? AND is_deleted = ?", courseID, true, false).
		Order("created_at desc").Find(&resources)

	response := fiber.Map{
		"course":    course,
		"modules":   modules,
		"resources": resources,
	}

	// Gated fields for logged-in students only
	if userID, ok := c.Locals("userId").(uint); ok {
		if profile, err := getStudentProfile(db, userID); err == nil {
			enrolled := IsEnrolled(db, profile.ID, course.ID)
			response["is_enrolled"] = enrolled

			if enrolled {
				completed, total, err := CourseProgress(db, course.ID)
				if err == nil {
					response["completed_count"] = completed
					response["total_count"] = total
					response["is_completed"] = total > 0 && completed == total
				}

				var completedIDs []uint
				db.Model(&courseModels.Module{}).
					Where("course_id = ? AND is_published = ? AND admin_completed = ? AND is_deleted = ?", course.ID, true, true, false).
					Pluck("id", &completedIDs)
				response["completed_module_ids"] = completedIDs

				var certificate courseModels.Certificate
				if err := db.Where("student_id = ? AND course_id = ? AND is_deleted = ?", profile.ID, course.ID, false).
					First(&certificate).Error; err == nil {
					response["certificate"] = certificate
				}
			}
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course details fetched successfully!", response)
}

// Dashboard returns the student landing data: enrolled courses, recent
// announcements and the completed-module count.
func Dashboard(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	db := database.Database.Db
	profile, err := getStudentProfile(db, userID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Student profile not found!", nil)
	}

	courseIDs, err := enrolledCourseIDs(db, profile.ID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch enrollments!", nil)
	}

	var courses []courseModels.Course
	if len(courseIDs) > 0 {
		db.Where("id IN ? AND is_active = ? AND is_deleted = ?", courseIDs, true, false).
			Order("title asc").Find(&courses)
	}

	// Announcements: global, or targeted at the student's batch
	var announcements []models.Announcement
	query := db.Where("is_active = ? AND is_deleted = ?", true, false)
	if profile.BatchID != nil {
		query = query.Where("is_global = ? OR batch_id = ?", true, *profile.BatchID)
	} else {
		query = query.Where("is_global = ?", true)
	}
	query.Order("created_at desc").Limit(5).Find(&announcements)

	var completedModules int64
	if len(courseIDs) > 0 {
		db.Model(&courseModels.Module{}).
			Where("course_id IN ? AND is_published = ? AND admin_completed = ? AND is_deleted = ?", courseIDs, true, true, false).
			Count(&completedModules)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Dashboard fetched successfully!", fiber.Map{
		"student":           profile,
		"courses":           courses,
		"announcements":     announcements,
		"completed_modules": completedModules,
	})
}
