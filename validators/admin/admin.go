package adminValidator

import (
	"pmti/middleware"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

func idParam(param, localKey, message string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.Atoi(c.Params(param))
		if err != nil || id < 1 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, message, nil)
		}
		c.Locals(localKey, id)
		return c.Next()
	}
}

// StudentID validator middleware
func StudentID() fiber.Handler {
	return idParam("studentId", "studentID", "Invalid student id!")
}

// BatchID validator middleware
func BatchID() fiber.Handler {
	return idParam("batchId", "batchID", "Invalid batch id!")
}

// AnnouncementID validator middleware
func AnnouncementID() fiber.Handler {
	return idParam("announcementId", "announcementID", "Invalid announcement id!")
}

// BulletinID validator middleware
func BulletinID() fiber.Handler {
	return idParam("bulletinId", "bulletinID", "Invalid bulletin id!")
}

// ImageID validator middleware
func ImageID() fiber.Handler {
	return idParam("imageId", "imageID", "Invalid image id!")
}

// BranchID validator middleware
func BranchID() fiber.Handler {
	return idParam("branchId", "branchID", "Invalid branch id!")
}

// PhoneID validator middleware
func PhoneID() fiber.Handler {
	return idParam("phoneId", "phoneID", "Invalid contact number id!")
}

// CreateBatch validator middleware
func CreateBatch() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Name        string    `json:"name"`
			StartDate   time.Time `json:"start_date"`
			EndDate     time.Time `json:"end_date"`
			Description string    `json:"description"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)
		if len(strings.TrimSpace(reqData.Name)) < 3 {
			errors["name"] = "Batch name must be at least 3 characters long!"
		}
		if reqData.StartDate.IsZero() {
			errors["start_date"] = "Start date is required!"
		}
		if reqData.EndDate.IsZero() {
			errors["end_date"] = "End date is required!"
		} else if !reqData.StartDate.IsZero() && reqData.EndDate.Before(reqData.StartDate) {
			errors["end_date"] = "End date must be after the start date!"
		}
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedBatch", reqData)
		return c.Next()
	}
}

// CreateAnnouncement validator middleware
func CreateAnnouncement() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title    string `json:"title"`
			Content  string `json:"content"`
			BatchID  *uint  `json:"batch_id"`
			IsGlobal bool   `json:"is_global"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)
		if len(strings.TrimSpace(reqData.Title)) < 3 {
			errors["title"] = "Title must be at least 3 characters long!"
		}
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedAnnouncement", reqData)
		return c.Next()
	}
}
