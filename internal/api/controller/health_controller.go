package controller

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/leon37/StudentHub/internal/api/response"
)

const serviceName = "studenthub-api"

// Pinger is satisfied by *sql.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type HealthController struct {
	db Pinger
}

func NewHealthController(db Pinger) *HealthController {
	return &HealthController{db: db}
}

type HealthResponse struct {
	Status   string `json:"status"`
	Service  string `json:"service"`
	Database string `json:"database"`
}

// Health 健康检查
// @Summary 健康检查
// @Tags Health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /health [get]
func (ctrl *HealthController) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := ctrl.db.PingContext(ctx); err != nil {
		slog.Error("health check failed", "error", err)
		response.JSON(c, http.StatusServiceUnavailable, HealthResponse{Status: "degraded", Service: serviceName, Database: "down"})
		return
	}
	response.JSON(c, http.StatusOK, HealthResponse{Status: "ok", Service: serviceName, Database: "up"})
}
