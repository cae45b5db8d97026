package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/NIKHILESHGOWDAUS/AG-Signup-AjayKumar/internal/models"
	"github.com/NIKHILESHGOWDAUS/AG-Signup-AjayKumar/internal/service"
	"github.com/NIKHILESHGOWDAUS/AG-Signup-AjayKumar/internal/storage"
)

// profileImageField is the multipart form field for the optional
// signup upload.
const profileImageField = "profileImage"

type AuthController struct {
	authService service.AuthService
	fileStore   *storage.FileStore
}

func NewAuthController(authService service.AuthService, fileStore *storage.FileStore) *AuthController {
	return &AuthController{
		authService: authService,
		fileStore:   fileStore,
	}
}

// Signup handles POST /api/signup (multipart form)
func (ac *AuthController) Signup(c *gin.Context) {
	var req models.SignupRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request body",
		})
		return
	}

	// A missing file part is a no-op, not an error
	var profileImage *string
	if file, err := c.FormFile(profileImageField); err == nil {
		profileImage, err = ac.fileStore.Save(file)
		if err != nil {
			log.Printf("Signup error: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Failed to create user",
			})
			return
		}
	}

	response, err := ac.authService.Signup(&req, profileImage)
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			c.JSON(http.StatusConflict, gin.H{
				"error": err.Error(),
			})
			return
		}
		log.Printf("Signup error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to create user",
		})
		return
	}

	c.JSON(http.StatusCreated, response)
}

// Login handles POST /api/login
func (ac *AuthController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request body",
		})
		return
	}

	response, err := ac.authService.Login(&req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid credentials",
			})
			return
		}
		log.Printf("Login error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to login",
		})
		return
	}

	c.JSON(http.StatusOK, response)
}

// ForgotPassword handles POST /api/forgot
func (ac *AuthController) ForgotPassword(c *gin.Context) {
	var req models.ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request body",
		})
		return
	}

	if err := ac.authService.ForgotPassword(req.Email); err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "User not found",
			})
			return
		}
		log.Printf("Forgot password error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to process request",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Password reset link sent",
	})
}

// CheckEmail handles POST /check-email-data
func (ac *AuthController) CheckEmail(c *gin.Context) {
	var req models.EmailCheckRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Email is required",
		})
		return
	}

	exists, err := ac.authService.CheckEmail(req.Email)
	if err != nil {
		log.Printf("Email check error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, models.EmailCheckResponse{Exists: exists})
}
