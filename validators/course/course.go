package courseValidator

import (
	"pmti/middleware"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// idParam parses a positive integer route parameter into Locals
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

// CourseID validator middleware
func CourseID() fiber.Handler {
	return idParam("courseId", "courseID", "Invalid course id!")
}

// ModuleID validator middleware
func ModuleID() fiber.Handler {
	return idParam("moduleId", "moduleID", "Invalid module id!")
}

// ResourceID validator middleware
func ResourceID() fiber.Handler {
	return idParam("resourceId", "resourceID", "Invalid resource id!")
}

// CertificateID validator middleware
func CertificateID() fiber.Handler {
	return idParam("certificateId", "certificateID", "Invalid certificate id!")
}

// CreateCourse validator middleware
func CreateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title       string `json:"title"`
			Description string `json:"description"`
			Duration    string `json:"duration"`
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

		c.Locals("validatedCourse", reqData)
		return c.Next()
	}
}

// CreateModule validator middleware
func CreateModule() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title       string `json:"title"`
			Description string `json:"description"`
			OrderIndex  int    `json:"order_index"`
			Content     string `json:"content"`
			VideoURL    string `json:"video_url"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)
		if len(strings.TrimSpace(reqData.Title)) < 3 {
			errors["title"] = "Title must be at least 3 characters long!"
		}
		if reqData.OrderIndex < 1 {
			errors["order_index"] = "Order must be greater than 0!"
		}
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedModule", reqData)
		return c.Next()
	}
}
