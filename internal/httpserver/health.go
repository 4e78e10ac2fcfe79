package httpserver

import (
	"github.com/gin-gonic/gin"

	"antique-assistant/pkg/response"
)

// Health response constants (single source for version and service identity).
const (
	HealthMessage = "文鉴通助手服务运行正常"
	HealthVersion = "1.0.0"
	ServiceName   = "antique-assistant"
	ProviderName  = "百练 Baichuan"
)

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is healthy"
// @Router /api/health [get]
func (srv *HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "OK",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}

// testCheck handles connectivity test requests
// @Summary Connectivity Test
// @Description Static check that the backend answers requests
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "Backend reachable"
// @Router /api/test [get]
func (srv *HTTPServer) testCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"success":     true,
		"message":     "文鉴通助手后端服务测试成功",
		"ai_provider": ProviderName,
	})
}
