package userRoutes

import (
	courseControllers "pmti/controllers/course"
	userControllers "pmti/controllers/userControllers"
	"pmti/middleware"
	adminValidators "pmti/validators/admin"

	"github.com/gofiber/fiber/v2"
)

func SetupUserRoutes(app *fiber.App) {
	userGroup := app.Group("/user", middleware.JWTMiddleware)

	userGroup.Get("/dashboard", courseControllers.Dashboard)
	userGroup.Get("/profile", userControllers.GetProfile)
	userGroup.Put("/profile", userControllers.UpdateProfile)
	userGroup.Post("/profile/picture", userControllers.UploadProfilePicture)
	userGroup.Get("/announcements", userControllers.GetAnnouncements)

	// Staff can look up any student's profile
	userGroup.Get("/profile/:studentId", middleware.StaffMiddleware, adminValidators.StudentID(), userControllers.GetProfileByID)
}
