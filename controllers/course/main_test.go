package controllers_test

import (
	"fmt"
	"strings"
	"testing"

	"pmti/config"
	"pmti/database"
	"pmti/middleware"
	"pmti/models"
	courseModels "pmti/models/course"
	courseRoutes "pmti/routers/courseRoutes"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTest wires an isolated in-memory database and test config
func setupTest(t *testing.T) *gorm.DB {
	t.Helper()

	config.AppConfig = &config.Config{
		JWTKey:    "test-secret",
		SaltRound: 4,
		MediaRoot: t.TempDir(),
	}
	config.LoadSiteConfig()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get database instance: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	database.RunMigrations(db)
	database.Database = database.DbInstance{Db: db}

	t.Cleanup(func() { sqlDB.Close() })
	return db
}

func newTestApp() *fiber.App {
	app := fiber.New()
	courseRoutes.SetupCourseRoutes(app)
	courseRoutes.SetupAdminCourseRoutes(app)
	return app
}

// createStudent inserts a verified student account and returns the profile
// with a ready-to-use bearer token.
func createStudent(t *testing.T, db *gorm.DB, username, studentNumber string) (*models.StudentProfile, string) {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), 4)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	user := models.User{
		Username:  username,
		Email:     username + "@example.com",
		FirstName: "Test",
		LastName:  "Student",
		Password:  string(hashed),
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	profile := models.StudentProfile{
		UserID:     user.ID,
		User:       user,
		StudentID:  studentNumber,
		IsVerified: true,
	}
	if err := db.Create(&profile).Error; err != nil {
		t.Fatalf("failed to create student profile: %v", err)
	}

	token, err := middleware.GenerateJWT(user.ID, user.Username, false)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}
	return &profile, token
}

func createStaff(t *testing.T, db *gorm.DB, username string) string {
	t.Helper()

	hashed, _ := bcrypt.GenerateFromPassword([]byte("password123"), 4)
	user := models.User{
		Username: username,
		Password: string(hashed),
		IsStaff:  true,
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("failed to create staff user: %v", err)
	}
	token, err := middleware.GenerateJWT(user.ID, user.Username, true)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}
	return token
}

// createCourseWithModules inserts a course and n published modules; completed
// of them carry the admin completion flag.
func createCourseWithModules(t *testing.T, db *gorm.DB, title string, n, completed int) *courseModels.Course {
	t.Helper()

	crs := courseModels.Course{Title: title, IsActive: true}
	if err := db.Create(&crs).Error; err != nil {
		t.Fatalf("failed to create course: %v", err)
	}
	for i := 1; i <= n; i++ {
		module := courseModels.Module{
			CourseID:       crs.ID,
			Title:          fmt.Sprintf("Module %d", i),
			OrderIndex:     i,
			IsPublished:    true,
			AdminCompleted: i <= completed,
		}
		if err := db.Create(&module).Error; err != nil {
			t.Fatalf("failed to create module: %v", err)
		}
	}
	return &crs
}

func enroll(t *testing.T, db *gorm.DB, studentID, courseID uint) {
	t.Helper()
	if err := db.Create(&courseModels.Enrollment{StudentID: studentID, CourseID: courseID}).Error; err != nil {
		t.Fatalf("failed to enroll student: %v", err)
	}
}
