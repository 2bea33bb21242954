package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/statusping/api-backend/internal/models"
	"github.com/statusping/api-backend/internal/validators"
)

const (
	// HealthStatusOK is the status literal liveness probes match on
	HealthStatusOK = "OK"

	// HealthMessage is the canonical health check message
	HealthMessage = "Server is running"
)

// HealthCheck handles GET /health
// @Summary Health check
// @Description Liveness probe. Always succeeds and returns the current server time.
// @Tags health
// @Produce json
// @Success 200 {object} models.HealthResponse "Server is alive"
// @Router /health [get]
func HealthCheck(c *gin.Context) {
	response := models.HealthResponse{
		Status:    HealthStatusOK,
		Message:   HealthMessage,
		Timestamp: validators.FormatUTCTimestamp(time.Now()),
	}

	c.JSON(http.StatusOK, response)
}
