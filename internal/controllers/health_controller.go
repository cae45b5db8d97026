package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/NIKHILESHGOWDAUS/AG-Signup-AjayKumar/internal/models"
	"github.com/NIKHILESHGOWDAUS/AG-Signup-AjayKumar/internal/repository"
)

type HealthController struct {
	userRepo repository.UserRepository
}

func NewHealthController(userRepo repository.UserRepository) *HealthController {
	return &HealthController{userRepo: userRepo}
}

// Health handles GET /api/health - liveness probe against the store
func (hc *HealthController) Health(c *gin.Context) {
	if err := hc.userRepo.Ping(); err != nil {
		c.JSON(http.StatusServiceUnavailable, models.HealthResponse{
			Status:   "unhealthy",
			Database: "disconnected",
			Error:    err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.HealthResponse{
		Status:    "healthy",
		Database:  "connected",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}
