package authController_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"pmti/config"
	"pmti/database"
	"pmti/models"
	authRoutes "pmti/routers/authRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTest(t *testing.T) (*gorm.DB, *fiber.App) {
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

	app := fiber.New()
	authRoutes.SetupAuthRoutes(app)
	return db, app
}

func jsonRequest(method, path, body string) *http.Request {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decodeBody(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func createBatch(t *testing.T, db *gorm.DB, name string) *models.Batch {
	t.Helper()
	batch := models.Batch{
		Name:      name,
		StartDate: time.Now(),
		EndDate:   time.Now().AddDate(1, 0, 0),
		IsActive:  true,
	}
	require.NoError(t, db.Create(&batch).Error)
	return &batch
}

func registerBody(username, email, studentID string, batchID uint) string {
	return fmt.Sprintf(`{
		"username": %q,
		"password": "secret-password",
		"first_name": "Asha",
		"last_name": "Rai",
		"email": %q,
		"student_id": %q,
		"phone": "9800000000",
		"batch_id": %d
	}`, username, email, studentID, batchID)
}

func TestRegister(t *testing.T) {
	db, app := setupTest(t)
	batch := createBatch(t, db, "Batch 2026-A")

	t.Run("creates unverified account", func(t *testing.T) {
		resp, err := app.Test(jsonRequest(http.MethodPost, "/auth/register",
			registerBody("asha.rai", "asha@example.com", "S100", batch.ID)), -1)
		require.NoError(t, err)
		assert.Equal(t, http.StatusCreated, resp.StatusCode)

		var profile models.StudentProfile
		require.NoError(t, db.Where("student_id = ?", "S100").First(&profile).Error)
		assert.False(t, profile.IsVerified)
		assert.Nil(t, profile.VerifiedAt)
	})

	t.Run("rejects duplicate username student id and email", func(t *testing.T) {
		resp, err := app.Test(jsonRequest(http.MethodPost, "/auth/register",
			registerBody("asha.rai", "asha@example.com", "S100", batch.ID)), -1)
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

		body := decodeBody(t, resp)
		fieldErrors, ok := body["data"].(map[string]interface{})
		require.True(t, ok)
		assert.Contains(t, fieldErrors, "username")
		assert.Contains(t, fieldErrors, "email")
		assert.Contains(t, fieldErrors, "student_id")
	})

	t.Run("rejects inactive batch", func(t *testing.T) {
		closed := createBatch(t, db, "Batch 2020-Z")
		require.NoError(t, db.Model(closed).Update("is_active", false).Error)

		resp, err := app.Test(jsonRequest(http.MethodPost, "/auth/register",
			registerBody("bibek.thapa", "bibek@example.com", "S101", closed.ID)), -1)
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	})

	t.Run("rejects short password", func(t *testing.T) {
		resp, err := app.Test(jsonRequest(http.MethodPost, "/auth/register", fmt.Sprintf(`{
			"username": "short.pass",
			"password": "abc",
			"first_name": "Short",
			"student_id": "S102",
			"batch_id": %d
		}`, batch.ID)), -1)
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

		// Nothing may be written on a failed registration
		var count int64
		db.Model(&models.User{}).Where("username = ?", "short.pass").Count(&count)
		assert.EqualValues(t, 0, count)
	})
}

func TestLogin(t *testing.T) {
	db, app := setupTest(t)

	hashed, err := bcrypt.GenerateFromPassword([]byte("secret-password"), 4)
	require.NoError(t, err)
	user := models.User{Username: "pending.student", Password: string(hashed)}
	require.NoError(t, db.Create(&user).Error)
	profile := models.StudentProfile{UserID: user.ID, StudentID: "S200"}
	require.NoError(t, db.Create(&profile).Error)

	login := func(username, password string) *http.Response {
		resp, err := app.Test(jsonRequest(http.MethodPost, "/auth/login",
			fmt.Sprintf(`{"username": %q, "password": %q}`, username, password)), -1)
		require.NoError(t, err)
		return resp
	}

	t.Run("unverified account gets no token", func(t *testing.T) {
		resp := login("pending.student", "secret-password")
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)

		body := decodeBody(t, resp)
		data, ok := body["data"].(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, true, data["pending_verification"])
		assert.NotContains(t, data, "token")
	})

	t.Run("wrong password is a credential error", func(t *testing.T) {
		resp := login("pending.student", "wrong-password")
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("verified account logs in", func(t *testing.T) {
		now := time.Now()
		require.NoError(t, db.Model(&profile).
			Updates(map[string]interface{}{"is_verified": true, "verified_at": now}).Error)

		resp := login("pending.student", "secret-password")
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		body := decodeBody(t, resp)
		data, ok := body["data"].(map[string]interface{})
		require.True(t, ok)
		assert.NotEmpty(t, data["token"])
	})

	t.Run("deactivated account is refused", func(t *testing.T) {
		require.NoError(t, db.Model(&profile).Update("is_active", false).Error)
		defer db.Model(&profile).Update("is_active", true)

		resp := login("pending.student", "secret-password")
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	t.Run("staff account needs no profile", func(t *testing.T) {
		staff := models.User{Username: "principal", Password: string(hashed), IsStaff: true}
		require.NoError(t, db.Create(&staff).Error)

		resp := login("principal", "secret-password")
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})
}
