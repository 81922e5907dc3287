package controllers

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"lingua/backend/config"
	"lingua/backend/models"
	"lingua/backend/utils"
)

type AuthController struct {
	DB     *gorm.DB
	Cfg    *config.Config
	Mailer utils.Mailer
}

func NewAuthController(db *gorm.DB, cfg *config.Config, mailer utils.Mailer) *AuthController {
	return &AuthController{DB: db, Cfg: cfg, Mailer: mailer}
}

// Register godoc
// @Summary Register a new user
// @Description Creates an unverified account and emails a verification link
// @Tags auth
// @Router /auth/register [post]
func (ac *AuthController) Register(c *fiber.Ctx) error {
	type RegisterInput struct {
		Username       string `json:"username"`
		Email          string `json:"email"`
		Password       string `json:"password"`
		NativeLanguage string `json:"native_language"`
		TargetLanguage string `json:"target_language"`
	}

	var input RegisterInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if input.Username == "" || input.Email == "" || input.Password == "" {
		return utils.BadRequest(c, "username, email and password are required")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return utils.InternalServerError(c, "Could not hash password")
	}

	user := models.User{
		Username:         input.Username,
		Email:            input.Email,
		PasswordHash:     string(hashedPassword),
		VerificationCode: uuid.NewString(),
		NativeLanguage:   input.NativeLanguage,
		TargetLanguage:   input.TargetLanguage,
	}
	if err := ac.DB.Create(&user).Error; err != nil {
		return utils.InternalServerError(c, "Could not create user")
	}

	verifyURL := fmt.Sprintf("%s/api/auth/verify?code=%s", ac.Cfg.BaseURL, user.VerificationCode)
	if err := ac.Mailer.Send(user.Email, "Verify your Lingua account", "Open this link to verify your account: "+verifyURL); err != nil {
		// Account stays usable for re-sending; registration itself succeeded.
		return utils.InternalServerError(c, "Could not send verification email")
	}

	return c.JSON(fiber.Map{
		"message": "Verification email sent",
		"user": fiber.Map{
			"id":       user.ID,
			"username": user.Username,
			"email":    user.Email,
		},
	})
}

// VerifyEmail marks the account matching the emailed code as verified.
func (ac *AuthController) VerifyEmail(c *fiber.Ctx) error {
	code := c.Query("code")
	if code == "" {
		return utils.BadRequest(c, "Missing verification code")
	}

	var user models.User
	if err := ac.DB.Where("verification_code = ? AND verified = false", code).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Invalid or already used verification code")
		}
		return utils.InternalServerError(c, "Could not query database")
	}

	user.Verified = true
	user.VerificationCode = ""
	if err := ac.DB.Save(&user).Error; err != nil {
		return utils.InternalServerError(c, "Could not update user")
	}

	return c.JSON(fiber.Map{"message": "Email verified"})
}

// Login godoc
// @Summary User login
// @Description Authenticate a verified user and return a JWT token
// @Tags auth
// @Router /auth/login [post]
func (ac *AuthController) Login(c *fiber.Ctx) error {
	type LoginInput struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}

	var input LoginInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	var user models.User
	if err := ac.DB.Where("username = ?", input.Username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.Unauthorized(c, "Invalid credentials")
		}
		return utils.InternalServerError(c, "Could not query database")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return utils.Unauthorized(c, "Invalid credentials")
	}

	if !user.Verified {
		return utils.Unauthorized(c, "Email not verified")
	}

	token, err := utils.GenerateJWTToken(user.ID, ac.Cfg)
	if err != nil {
		return utils.InternalServerError(c, "Could not generate token")
	}

	ac.DB.Create(&models.LoginHistory{
		UserID:    user.ID,
		LoginTime: time.Now(),
	})

	return c.JSON(fiber.Map{
		"token": token,
		"user": fiber.Map{
			"id":       user.ID,
			"username": user.Username,
			"email":    user.Email,
		},
	})
}

// ForgotPassword issues a reset code and emails it. Always answers 200 so
// the endpoint cannot be used to probe which emails are registered.
func (ac *AuthController) ForgotPassword(c *fiber.Ctx) error {
	type ForgotInput struct {
		Email string `json:"email"`
	}

	var input ForgotInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if input.Email == "" {
		return utils.BadRequest(c, "email is required")
	}

	var user models.User
	if err := ac.DB.Where("email = ?", input.Email).First(&user).Error; err == nil {
		reset := models.PasswordReset{
			UserID:    user.ID,
			Code:      uuid.NewString(),
			ExpiresAt: time.Now().Add(time.Hour),
		}
		if err := ac.DB.Create(&reset).Error; err != nil {
			return utils.InternalServerError(c, "Could not create reset code")
		}
		if err := ac.Mailer.Send(user.Email, "Reset your Lingua password", "Your password reset code: "+reset.Code); err != nil {
			return utils.InternalServerError(c, "Could not send reset email")
		}
	}

	return c.JSON(fiber.Map{"message": "If the address is registered, a reset email has been sent"})
}

// ResetPassword consumes a reset code and sets a new password.
func (ac *AuthController) ResetPassword(c *fiber.Ctx) error {
	type ResetInput struct {
		Code        string `json:"code"`
		NewPassword string `json:"new_password"`
	}

	var input ResetInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if input.Code == "" || input.NewPassword == "" {
		return utils.BadRequest(c, "code and new_password are required")
	}

	var reset models.PasswordReset
	if err := ac.DB.Where("code = ? AND used = false", input.Code).First(&reset).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Invalid reset code")
		}
		return utils.InternalServerError(c, "Could not query database")
	}
	if time.Now().After(reset.ExpiresAt) {
		return utils.BadRequest(c, "Reset code expired")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return utils.InternalServerError(c, "Could not hash password")
	}

	if err := ac.DB.Model(&models.User{}).Where("id = ?", reset.UserID).
		Update("password_hash", string(hashedPassword)).Error; err != nil {
		return utils.InternalServerError(c, "Could not update password")
	}

	reset.Used = true
	ac.DB.Save(&reset)

	return c.JSON(fiber.Map{"message": "Password updated"})
}
