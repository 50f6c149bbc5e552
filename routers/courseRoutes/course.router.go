package courseRoutes

import (
	controllers "pmti/controllers/course"
	"pmti/middleware"
	validators "pmti/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes sets up the student-facing course routes
func SetupCourseRoutes(app *fiber.App) {
	courseGroup := app.Group("/course")

	// Listing and details are public; logged-in students see extra fields
	courseGroup.Get("/list", middleware.OptionalJWTMiddleware, controllers.GetAllCourses)
	courseGroup.Get("/:courseId", middleware.OptionalJWTMiddleware, validators.CourseID(), controllers.GetCourseDetails)

	// Module content, downloads and certificates need a verified login
	courseGroup.Get("/:courseId/module/:moduleId", middleware.JWTMiddleware, validators.CourseID(), validators.ModuleID(), controllers.GetModuleDetail)
	courseGroup.Get("/:courseId/certificate", middleware.JWTMiddleware, validators.CourseID(), controllers.GenerateCertificate)

	resourceGroup := app.Group("/resource")
	resourceGroup.Get("/:resourceId/download", middleware.JWTMiddleware, validators.ResourceID(), controllers.DownloadResource)
}

// SetupAdminCourseRoutes sets up course management for staff
func SetupAdminCourseRoutes(app *fiber.App) {
	adminGroup := app.Group("/admin/course", middleware.JWTMiddleware, middleware.StaffMiddleware)

	// Course CRUD
	adminGroup.Post("/create", validators.CreateCourse(), controllers.CreateCourse)
	adminGroup.Get("/list", controllers.AdminListCourses)
	adminGroup.Put("/:courseId", validators.CourseID(), controllers.UpdateCourse)
	adminGroup.Delete("/:courseId", validators.CourseID(), controllers.DeleteCourse)
	adminGroup.Post("/:courseId/thumbnail", validators.CourseID(), controllers.UploadCourseThumbnail)
	adminGroup.Post("/:courseId/batch", validators.CourseID(), controllers.AssignCourseBatch)

	// Module management
	adminGroup.Post("/:courseId/module", validators.CourseID(), validators.CreateModule(), controllers.CreateModule)
	adminGroup.Get("/:courseId/modules", validators.CourseID(), controllers.AdminListModules)

	moduleGroup := app.Group("/admin/module", middleware.JWTMiddleware, middleware.StaffMiddleware)
	moduleGroup.Put("/:moduleId", validators.ModuleID(), controllers.UpdateModule)
	moduleGroup.Delete("/:moduleId", validators.ModuleID(), controllers.DeleteModule)
	moduleGroup.Post("/:moduleId/publish", validators.ModuleID(), controllers.PublishModule)
	moduleGroup.Post("/:moduleId/complete", validators.ModuleID(), controllers.CompleteModule)

	// Resource management
	adminGroup.Post("/:courseId/resource", validators.CourseID(), controllers.UploadResource)

	resourceGroup := app.Group("/admin/resource", middleware.JWTMiddleware, middleware.StaffMiddleware)
	resourceGroup.Put("/:resourceId", validators.ResourceID(), controllers.UpdateResource)
	resourceGroup.Delete("/:resourceId", validators.ResourceID(), controllers.DeleteResource)

	// Certificate management
	certGroup := app.Group("/admin/certificate", middleware.JWTMiddleware, middleware.StaffMiddleware)
	certGroup.Get("/list", controllers.AdminListCertificates)
	certGroup.Post("/:certificateId/regenerate", validators.CertificateID(), controllers.RegenerateCertificate)
}
