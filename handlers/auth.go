package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"growlife/services/auth"
	"growlife/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthHandler serves signup, login and the OTP verification gate.
type AuthHandler struct {
	Service   auth.AuthService
	UploadDir string
}

// NewAuthHandler builds an AuthHandler and makes sure the upload directory exists.
func NewAuthHandler(service auth.AuthService, uploadDir string) *AuthHandler {
	if err := os.MkdirAll(uploadDir, 0o755); err != nil {
		utils.GetLogger().Error("Failed to create upload directory", zap.String("dir", uploadDir), zap.Error(err))
	}
	return &AuthHandler{Service: service, UploadDir: uploadDir}
}

// SendOTPHandler handles POST /api/send-otp.
func (h *AuthHandler) SendOTPHandler(c *gin.Context) {
	var req struct {
		Email string `json:"email" binding:"required,email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Email is required"})
		return
	}

	if err := h.Service.SendOTP(c.Request.Context(), req.Email); err != nil {
		utils.GetLogger().Error("Error sending OTP email", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to send OTP"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "OTP sent successfully"})
}

// VerifyOTPHandler handles POST /api/verify-otp.
func (h *AuthHandler) VerifyOTPHandler(c *gin.Context) {
	var req struct {
		Email string `json:"email" binding:"required"`
		OTP   string `json:"otp" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Email and OTP are required"})
		return
	}

	err := h.Service.VerifyOTP(c.Request.Context(), req.Email, req.OTP)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"message": "Email verified successfully"})
	case errors.Is(err, auth.ErrOTPNotFound):
		c.JSON(http.StatusBadRequest, gin.H{"message": "No OTP found. Request a new OTP."})
	case errors.Is(err, auth.ErrOTPExpired):
		c.JSON(http.StatusBadRequest, gin.H{"message": "OTP expired, request a new one."})
	case errors.Is(err, auth.ErrOTPInvalid):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid OTP. Try again."})
	default:
		utils.GetLogger().Error("OTP verification failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to verify OTP"})
	}
}

// SignupHandler handles POST /api/signup. The payload arrives as a multipart
// form with an optional supporting document stored to local disk.
func (h *AuthHandler) SignupHandler(c *gin.Context) {
	username := c.PostForm("username")
	mobile := c.PostForm("mobile")
	email := c.PostForm("email")
	password := c.PostForm("password")
	if username == "" || mobile == "" || email == "" || password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required signup fields."})
		return
	}

	var dob *time.Time
	if raw := c.PostForm("dateofbirth"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date of birth."})
			return
		}
		dob = &parsed
	}

	var storedName string
	if file, err := c.FormFile("file"); err == nil {
		storedName = fmt.Sprintf("%d-%s", time.Now().UnixMilli(), filepath.Base(file.Filename))
		if err := c.SaveUploadedFile(file, filepath.Join(h.UploadDir, storedName)); err != nil {
			utils.GetLogger().Error("Failed to store uploaded file", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store uploaded file"})
			return
		}
	}

	user, err := h.Service.Signup(c.Request.Context(), auth.SignupInput{
		Username:    username,
		DateOfBirth: dob,
		Mobile:      mobile,
		Email:       email,
		Password:    password,
		File:        storedName,
	})
	switch {
	case err == nil:
		c.JSON(http.StatusCreated, gin.H{
			"message": "User registered successfully!",
			"user": gin.H{
				"username": user.Username,
				"email":    user.Email,
				"mobile":   user.Mobile,
			},
		})
	case errors.Is(err, auth.ErrEmailNotVerified):
		c.JSON(http.StatusPreconditionFailed, gin.H{"error": "Email not verified. Please verify your email using OTP."})
	case errors.Is(err, auth.ErrUsernameTaken):
		c.JSON(http.StatusConflict, gin.H{"error": "Username already exists. Please choose another."})
	case errors.Is(err, auth.ErrEmailTaken):
		c.JSON(http.StatusConflict, gin.H{"error": "Email already registered. Try logging in."})
	default:
		utils.GetLogger().Error("Signup error", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register user"})
	}
}

// LoginHandler handles POST /api/login.
func (h *AuthHandler) LoginHandler(c *gin.Context) {
	var req struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username and password are required."})
		return
	}

	user, token, err := h.Service.Login(req.Username, req.Password)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{
			"message": "Login successful!",
			"user": gin.H{
				"id":       user.ID,
				"username": user.Username,
				"email":    user.Email,
				"mobile":   user.Mobile,
				"role":     user.Role,
			},
			"token": token,
		})
	case errors.Is(err, auth.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid username or password"})
	default:
		utils.GetLogger().Error("Login error", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error during login"})
	}
}
