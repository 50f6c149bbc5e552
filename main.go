package main

import (
	"log"
	"path/filepath"
	"pmti/config"
	"pmti/database"
	adminRoutes "pmti/routers/adminRoutes"
	authRoutes "pmti/routers/authRoutes"
	courseRoutes "pmti/routers/courseRoutes"
	publicRoutes "pmti/routers/publicRoutes"
	userRoutes "pmti/routers/userRoutes"
	"pmti/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	// Public uploads are served directly. Resources and certificates are NOT
	// under these mounts; they go through access-checked handlers only.
	app.Static("/media/course_thumbnails", filepath.Join(config.AppConfig.MediaRoot, "course_thumbnails"))
	app.Static("/media/gallery", filepath.Join(config.AppConfig.MediaRoot, "gallery"))
	app.Static("/media/profile_pictures", filepath.Join(config.AppConfig.MediaRoot, "profile_pictures"))
	app.Static("/media/branches", filepath.Join(config.AppConfig.MediaRoot, "branches"))

	publicRoutes.SetupPublicRoutes(app)
	authRoutes.SetupAuthRoutes(app)
	courseRoutes.SetupCourseRoutes(app)
	courseRoutes.SetupAdminCourseRoutes(app)
	userRoutes.SetupUserRoutes(app)
	adminRoutes.SetupAdminRoutes(app)

	// Nightly job deactivates batches past their end date
	scheduler := utils.InitializeBatchScheduler()
	defer scheduler.Stop()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
