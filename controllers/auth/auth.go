package authController

import (
	"log"
	"pmti/config"
	"pmti/database"
	"pmti/middleware"
	"pmti/models"
	"pmti/utils"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// RegisterRequest is the validated registration payload
type RegisterRequest struct {
	Username    string `json:"username" validate:"required,min=4,max=150"`
	Password    string `json:"password" validate:"required,min=8"`
	FirstName   string `json:"first_name" validate:"required"`
	LastName    string `json:"last_name"`
	Email       string `json:"email" validate:"omitempty,email"`
	StudentID   string `json:"student_id" validate:"required,min=2,max=30"`
	Phone       string `json:"phone" validate:"omitempty,min=7,max=15"`
	BatchID     uint   `json:"batch_id" validate:"required"`
	DateOfBirth string `json:"date_of_birth" validate:"omitempty,datetime=2006-01-02"`
	Address     string `json:"address"`
}

func Register(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedRegister").(*RegisterRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	db := database.Database.Db
	errors := make(map[string]string)

	// Uniqueness checks run before any row is written
	if err := db.Where("username = ?", reqData.Username).First(&models.User{}).Error; err == nil {
		errors["username"] = "This username is already taken!"
	}
	email := strings.ToLower(strings.TrimSpace(reqData.Email))
	if email != "" {
		if err := db.Where("LOWER(email) = ?", email).First(&models.User{}).Error; err == nil {
			errors["email"] = "This email is already registered!"
		}
	}
	if err := db.Where("student_id = ?", reqData.StudentID).First(&models.StudentProfile{}).Error; err == nil {
		errors["student_id"] = "This Registration No is already registered!"
	}

	var batch models.Batch
	if err := db.Where("id = ? AND is_active = ? AND is_deleted = ?", reqData.BatchID, true, false).First(&batch).Error; err != nil {
		errors["batch_id"] = "Selected batch does not exist or is inactive!"
	}

	if len(errors) > 0 {
		return middleware.ValidationErrorResponse(c, errors)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.Password), config.AppConfig.SaltRound)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}

	newUser := models.User{
		Username:  reqData.Username,
		Email:     email,
		FirstName: reqData.FirstName,
		LastName:  reqData.LastName,
		Password:  string(hashedPassword),
	}

	var dob *time.Time
	if reqData.DateOfBirth != "" {
		if parsed, err := time.Parse("2006-01-02", reqData.DateOfBirth); err == nil {
			dob = &parsed
		}
	}

	// User and profile are created together or not at all
	tx := db.Begin()
	if err := tx.Create(&newUser).Error; err != nil {
		tx.Rollback()
		log.Printf("Error saving user to database: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to register!", nil)
	}

	profile := models.StudentProfile{
		UserID:      newUser.ID,
		StudentID:   reqData.StudentID,
		Phone:       reqData.Phone,
		BatchID:     &batch.ID,
		DateOfBirth: dob,
		Address:     reqData.Address,
	}
	if err := tx.Create(&profile).Error; err != nil {
		tx.Rollback()
		log.Printf("Error saving student profile: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to register!", nil)
	}
	tx.Commit()

	if newUser.Email != "" {
		utils.SendWelcomeEmail(newUser.Email, newUser.FullName())
	}

	newUser.Password = ""
	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Registration successful! Your account is pending verification by the administrator.", fiber.Map{
		"user":    newUser,
		"profile": profile,
	})
}

func Login(c *fiber.Ctx) error {
	reqData := new(struct {
		Username string `json:"username"`
		Password string `json:"password"`
	})

	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Failed to parse request body!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("username = ? AND is_deleted = ?", reqData.Username, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid username or password!", nil)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(reqData.Password)); err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid username or password!", nil)
	}

	// Staff accounts have no student profile and log in directly
	if !user.IsStaff {
		var profile models.StudentProfile
		if err := database.Database.Db.Where("user_id = ? AND is_deleted = ?", user.ID, false).First(&profile).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusForbidden, false, "This account is not a student account!", nil)
		}

		// Pending verification is a warning, not a credential error: correct
		// credentials still never produce a token here.
		if !profile.IsVerified {
			return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Your account is pending verification by the administrator. Please wait for approval.", fiber.Map{
				"pending_verification": true,
			})
		}
		if !profile.IsActive {
			return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Your account has been deactivated.", nil)
		}
	}

	token, err := middleware.GenerateJWT(user.ID, user.Username, user.IsStaff)
	if err != nil {
		log.Printf("Error generating token: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to login!", nil)
	}

	now := time.Now()
	user.LastLogin = &now
	database.Database.Db.Save(&user)

	user.Password = ""
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Welcome back, "+user.FullName()+"!", fiber.Map{
		"token": token,
		"user":  user,
	})
}

// Logout acknowledges the client discarding its token. Sessions are stateless
// JWTs, so there is nothing to revoke server-side.
func Logout(c *fiber.Ctx) error {
	return middleware.JsonResponse(c, fiber.StatusOK, true, "You have been logged out successfully.", nil)
}

// FirebaseLogin exchanges a Firebase ID token for a local session token.
func FirebaseLogin(c *fiber.Ctx) error {
	reqData := new(struct {
		IDToken string `json:"id_token"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Failed to parse request body!", nil)
	}

	fbUser, err := utils.VerifyFirebaseToken(reqData.IDToken)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Identity verification failed!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("LOWER(email) = ? AND is_deleted = ?", strings.ToLower(fbUser.Email), false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "No account found for this identity. Complete registration first.", fiber.Map{
			"registration_required": true,
		})
	}

	if !user.IsStaff {
		var profile models.StudentProfile
		if err := database.Database.Db.Where("user_id = ? AND is_deleted = ?", user.ID, false).First(&profile).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusForbidden, false, "This account is not a student account!", nil)
		}
		if !profile.IsVerified {
			return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Your account is pending verification by the administrator. Please wait for approval.", fiber.Map{
				"pending_verification": true,
			})
		}
	}

	token, err := middleware.GenerateJWT(user.ID, user.Username, user.IsStaff)
	if err != nil {
		log.Printf("Error generating token: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to login!", nil)
	}

	now := time.Now()
	user.LastLogin = &now
	database.Database.Db.Save(&user)

	user.Password = ""
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Welcome back, "+user.FullName()+"!", fiber.Map{
		"token": token,
		"user":  user,
	})
}

// FirebaseRegister completes a pending registration for an identity-provider
// account. The resulting profile still requires admin verification.
func FirebaseRegister(c *fiber.Ctx) error {
	reqData := new(struct {
		IDToken   string `json:"id_token"`
		StudentID string `json:"student_id"`
		Phone     string `json:"phone"`
		BatchID   uint   `json:"batch_id"`
		FirstName string `json:"first_name"`
		LastName  string `json:"last_name"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Failed to parse request body!", nil)
	}

	fbUser, err := utils.VerifyFirebaseToken(reqData.IDToken)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Identity verification failed!", nil)
	}

	db := database.Database.Db
	errors := make(map[string]string)

	email := strings.ToLower(fbUser.Email)
	if email == "" {
		errors["id_token"] = "Identity provider account has no email!"
	} else if err := db.Where("LOWER(email) = ?", email).First(&models.User{}).Error; err == nil {
		errors["email"] = "This email is already registered!"
	}
	if strings.TrimSpace(reqData.StudentID) == "" {
		errors["student_id"] = "Registration No is required!"
	} else if err := db.Where("student_id = ?", reqData.StudentID).First(&models.StudentProfile{}).Error; err == nil {
		errors["student_id"] = "This Registration No is already registered!"
	}

	var batch models.Batch
	if err := db.Where("id = ? AND is_active = ? AND is_deleted = ?", reqData.BatchID, true, false).First(&batch).Error; err != nil {
		errors["batch_id"] = "Selected batch does not exist or is inactive!"
	}

	if len(errors) > 0 {
		return middleware.ValidationErrorResponse(c, errors)
	}

	// Password auth stays possible via reset; generate an unguessable one
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(uuid.New().String()), config.AppConfig.SaltRound)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}

	firstName := reqData.FirstName
	if firstName == "" {
		firstName = fbUser.DisplayName
	}

	newUser := models.User{
		Username:  email,
		Email:     email,
		FirstName: firstName,
		LastName:  reqData.LastName,
		Password:  string(hashedPassword),
	}

	tx := db.Begin()
	if err := tx.Create(&newUser).Error; err != nil {
		tx.Rollback()
		log.Printf("Error saving user to database: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to register!", nil)
	}
	profile := models.StudentProfile{
		UserID:    newUser.ID,
		StudentID: reqData.StudentID,
		Phone:     reqData.Phone,
		BatchID:   &batch.ID,
	}
	if err := tx.Create(&profile).Error; err != nil {
		tx.Rollback()
		log.Printf("Error saving student profile: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to register!", nil)
	}
	tx.Commit()

	if newUser.Email != "" {
		utils.SendWelcomeEmail(newUser.Email, newUser.FullName())
	}

	newUser.Password = ""
	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Registration successful! Your account is pending verification by the administrator.", fiber.Map{
		"user":    newUser,
		"profile": profile,
	})
}
