package authRoutes

import (
	authControllers "pmti/controllers/auth"
	authValidators "pmti/validators/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App) {
	authGroup := app.Group("/auth")

	authGroup.Post("/register", authValidators.Register(), authControllers.Register)
	authGroup.Post("/login", authValidators.Login(), authControllers.Login)
	authGroup.Post("/logout", authControllers.Logout)
	authGroup.Post("/firebase/login", authControllers.FirebaseLogin)
	authGroup.Post("/firebase/register", authControllers.FirebaseRegister)
}
