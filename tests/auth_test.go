package tests

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"

	"lingua/backend/models"
)

func TestRegisterAndVerify(t *testing.T) {
	registerData := map[string]string{
		"username":        "newuser",
		"email":           "newuser@example.com",
		"password":        "password123",
		"native_language": "en",
		"target_language": "es",
	}
	jsonData, _ := json.Marshal(registerData)

	req := httptest.NewRequest("POST", "/api/auth/register", bytes.NewBuffer(jsonData))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, mailer.Sent, "newuser@example.com")

	// Login is refused until the email is verified.
	loginData, _ := json.Marshal(map[string]string{
		"username": "newuser",
		"password": "password123",
	})
	loginReq := httptest.NewRequest("POST", "/api/auth/login", bytes.NewBuffer(loginData))
	loginReq.Header.Set("Content-Type", "application/json")
	loginResp, err := app.Test(loginReq)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, loginResp.StatusCode)

	var user models.User
	db.Where("username = ?", "newuser").First(&user)
	assert.False(t, user.Verified)
	assert.NotEmpty(t, user.VerificationCode)

	verifyReq := httptest.NewRequest("GET", "/api/auth/verify?code="+user.VerificationCode, nil)
	verifyResp, err := app.Test(verifyReq)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, verifyResp.StatusCode)

	loginReq = httptest.NewRequest("POST", "/api/auth/login", bytes.NewBuffer(loginData))
	loginReq.Header.Set("Content-Type", "application/json")
	loginResp, err = app.Test(loginReq)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, loginResp.StatusCode)

	var result map[string]interface{}
	json.NewDecoder(loginResp.Body).Decode(&result)
	assert.NotEmpty(t, result["token"])
}

func TestLogin(t *testing.T) {
	loginData := map[string]string{
		"username": "testuser",
		"password": "password",
	}
	jsonData, _ := json.Marshal(loginData)

	req := httptest.NewRequest("POST", "/api/auth/login", bytes.NewBuffer(jsonData))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var result map[string]interface{}
	json.NewDecoder(resp.Body).Decode(&result)
	assert.NotEmpty(t, result["token"])
	assert.NotEmpty(t, result["user"])
}

func TestPasswordReset(t *testing.T) {
	forgotData, _ := json.Marshal(map[string]string{"email": "test@example.com"})
	req := httptest.NewRequest("POST", "/api/auth/forgot-password", bytes.NewBuffer(forgotData))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var reset models.PasswordReset
	db.Where("user_id = ? AND used = false", testUser.ID).Order("id desc").First(&reset)
	assert.NotEmpty(t, reset.Code)

	resetData, _ := json.Marshal(map[string]string{
		"code":         reset.Code,
		"new_password": "betterpassword",
	})
	resetReq := httptest.NewRequest("POST", "/api/auth/reset-password", bytes.NewBuffer(resetData))
	resetReq.Header.Set("Content-Type", "application/json")
	resetResp, err := app.Test(resetReq)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resetResp.StatusCode)

	loginData, _ := json.Marshal(map[string]string{
		"username": "testuser",
		"password": "betterpassword",
	})
	loginReq := httptest.NewRequest("POST", "/api/auth/login", bytes.NewBuffer(loginData))
	loginReq.Header.Set("Content-Type", "application/json")
	loginResp, err := app.Test(loginReq)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, loginResp.StatusCode)
}

func TestGetProfile(t *testing.T) {
	req := httptest.NewRequest("GET", "/api/user/profile", nil)
	req.Header.Set("Authorization", jwtToken)

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var result map[string]interface{}
	json.NewDecoder(resp.Body).Decode(&result)
	assert.Equal(t, "testuser", result["username"])
	assert.Equal(t, "test@example.com", result["email"])

	// The Bearer scheme is accepted too.
	bearerReq := httptest.NewRequest("GET", "/api/user/profile", nil)
	bearerReq.Header.Set("Authorization", "Bearer "+jwtToken)
	bearerResp, err := app.Test(bearerReq)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, bearerResp.StatusCode)
}
