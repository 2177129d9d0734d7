package health

import (
	"context"
	"net/http"
	"time"

	"pet-blog-api/mongodb"
	"pet-blog-api/pkg/response"

	"github.com/gin-gonic/gin"
)

var startTime = time.Now()

// HealthController 健康检查控制器
type HealthController struct{}

// NewHealthController 创建健康检查控制器
func NewHealthController() *HealthController {
	return &HealthController{}
}

// CheckHealth 基础健康检查
func (h *HealthController) CheckHealth(c *gin.Context) {
	response.JSON(c, gin.H{
		"status":  "OK",
		"message": "Pet Blog Server is running!",
	})
}

// CheckReadiness 就绪性检查，探测MongoDB连通性
func (h *HealthController) CheckReadiness(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := mongodb.Ping(ctx); err != nil {
		response.Error(c, http.StatusServiceUnavailable, "service not ready: "+err.Error())
		return
	}

	response.JSON(c, gin.H{
		"status": "ready",
		"uptime": time.Since(startTime).String(),
	})
}
