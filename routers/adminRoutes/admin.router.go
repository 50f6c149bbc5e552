package adminRoutes

import (
	adminControllers "pmti/controllers/admin"
	"pmti/middleware"
	validators "pmti/validators/admin"

	"github.com/gofiber/fiber/v2"
)

// SetupAdminRoutes sets up student, batch, content and site management for
// staff. Every route requires a staff token.
func SetupAdminRoutes(app *fiber.App) {
	adminGroup := app.Group("/admin", middleware.JWTMiddleware, middleware.StaffMiddleware)

	adminGroup.Get("/dashboard", adminControllers.Dashboard)
	adminGroup.Get("/site", adminControllers.GetSiteConfig)
	adminGroup.Post("/site/reload", adminControllers.ReloadSiteConfig)

	// Student management
	studentGroup := adminGroup.Group("/student")
	studentGroup.Get("/list", adminControllers.ListStudents)
	studentGroup.Get("/:studentId", validators.StudentID(), adminControllers.GetStudent)
	studentGroup.Put("/:studentId", validators.StudentID(), adminControllers.UpdateStudent)
	studentGroup.Post("/:studentId/verify", validators.StudentID(), adminControllers.VerifyStudent)
	studentGroup.Post("/:studentId/unverify", validators.StudentID(), adminControllers.UnverifyStudent)
	studentGroup.Post("/:studentId/enroll", validators.StudentID(), adminControllers.EnrollStudent)
	studentGroup.Post("/:studentId/unenroll", validators.StudentID(), adminControllers.UnenrollStudent)

	// Batch management
	batchGroup := adminGroup.Group("/batch")
	batchGroup.Post("/create", validators.CreateBatch(), adminControllers.CreateBatch)
	batchGroup.Get("/list", adminControllers.ListBatches)
	batchGroup.Put("/:batchId", validators.BatchID(), adminControllers.UpdateBatch)
	batchGroup.Delete("/:batchId", validators.BatchID(), adminControllers.DeleteBatch)

	// Announcements
	announcementGroup := adminGroup.Group("/announcement")
	announcementGroup.Post("/create", validators.CreateAnnouncement(), adminControllers.CreateAnnouncement)
	announcementGroup.Get("/list", adminControllers.ListAnnouncements)
	announcementGroup.Put("/:announcementId", validators.AnnouncementID(), adminControllers.UpdateAnnouncement)
	announcementGroup.Delete("/:announcementId", validators.AnnouncementID(), adminControllers.DeleteAnnouncement)

	// Bulletins
	bulletinGroup := adminGroup.Group("/bulletin")
	bulletinGroup.Post("/create", adminControllers.CreateBulletin)
	bulletinGroup.Get("/list", adminControllers.ListBulletins)
	bulletinGroup.Put("/:bulletinId", validators.BulletinID(), adminControllers.UpdateBulletin)
	bulletinGroup.Delete("/:bulletinId", validators.BulletinID(), adminControllers.DeleteBulletin)

	// Gallery
	galleryGroup := adminGroup.Group("/gallery")
	galleryGroup.Post("/upload", adminControllers.UploadGalleryImage)
	galleryGroup.Get("/list", adminControllers.ListGalleryImages)
	galleryGroup.Delete("/:imageId", validators.ImageID(), adminControllers.DeleteGalleryImage)

	// Branches and footer contact numbers
	branchGroup := adminGroup.Group("/branch")
	branchGroup.Post("/create", adminControllers.CreateBranch)
	branchGroup.Get("/list", adminControllers.ListBranches)
	branchGroup.Put("/:branchId", validators.BranchID(), adminControllers.UpdateBranch)
	branchGroup.Delete("/:branchId", validators.BranchID(), adminControllers.DeleteBranch)
	branchGroup.Post("/phone", adminControllers.CreateBranchPhone)
	branchGroup.Delete("/phone/:phoneId", validators.PhoneID(), adminControllers.DeleteBranchPhone)
}
