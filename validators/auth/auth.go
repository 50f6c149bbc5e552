package authValidator

import (
	"pmti/middleware"

	authController "pmti/controllers/auth"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// registerMessages maps failed field validations to user-facing messages
func registerMessages(err error) map[string]string {
	errors := make(map[string]string)
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		errors["body"] = "Invalid request body!"
		return errors
	}
	for _, fieldErr := range validationErrors {
		switch fieldErr.Field() {
		case "Username":
			errors["username"] = "Username must be between 4 and 150 characters!"
		case "Password":
			errors["password"] = "Password must be at least 8 characters long!"
		case "FirstName":
			errors["first_name"] = "First name is required!"
		case "Email":
			errors["email"] = "Invalid email!"
		case "StudentID":
			errors["student_id"] = "Registration No is required!"
		case "Phone":
			errors["phone"] = "Invalid phone number!"
		case "BatchID":
			errors["batch_id"] = "Batch is required!"
		case "DateOfBirth":
			errors["date_of_birth"] = "Date of birth must be in YYYY-MM-DD format!"
		}
	}
	return errors
}

// Register validator middleware
func Register() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(authController.RegisterRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, registerMessages(err))
		}

		c.Locals("validatedRegister", reqData)
		return c.Next()
	}
}

// Login validator middleware
func Login() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Username string `json:"username"`
			Password string `json:"password"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)
		if reqData.Username == "" {
			errors["username"] = "Username is required!"
		}
		if reqData.Password == "" {
			errors["password"] = "Password is required!"
		}
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		return c.Next()
	}
}
