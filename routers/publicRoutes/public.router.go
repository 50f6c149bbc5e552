package publicRoutes

import (
	publicControllers "pmti/controllers/public"

	"github.com/gofiber/fiber/v2"
)

func SetupPublicRoutes(app *fiber.App) {
	app.Get("/home", publicControllers.Home)
	app.Get("/gallery", publicControllers.Gallery)
	app.Get("/branches", publicControllers.Branches)
	app.Get("/contact", publicControllers.Contact)
}
