package httpserver

import (
	"errors"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"antique-assistant/pkg/baichuan"
	"antique-assistant/pkg/response"
)

// recentWindow is the activity window reported as "recent" sessions.
const recentWindow = 30 * time.Minute

// aiStatus probes the remote provider
// @Summary AI Provider Status
// @Description Check whether the Baichuan API is reachable
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "Provider status"
// @Router /api/ai-status [get]
func (srv *HTTPServer) aiStatus(c *gin.Context) {
	err := srv.provider.Status(c.Request.Context())
	switch {
	case errors.Is(err, baichuan.ErrAPIKeyMissing):
		response.OK(c, gin.H{
			"status":   "error",
			"message":  "百练 API 密钥未配置",
			"provider": ProviderName,
		})
	case err != nil:
		response.OK(c, gin.H{
			"status":   "error",
			"message":  fmt.Sprintf("百练 API 连接失败: %v", err),
			"provider": ProviderName,
		})
	default:
		response.OK(c, gin.H{
			"status":   "connected",
			"message":  "百练 API 连接正常",
			"provider": ProviderName,
			"model":    srv.provider.Model(),
		})
	}
}

// systemHealth reports session statistics and uptime
// @Summary System Health
// @Description Session statistics and process uptime
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "System health"
// @Router /api/system/health [get]
func (srv *HTTPServer) systemHealth(c *gin.Context) {
	now := time.Now()
	response.OK(c, gin.H{
		"status":          "healthy",
		"timestamp":       now.Format(time.RFC3339),
		"active_sessions": srv.stats.Size(),
		"recent_sessions": srv.stats.CountActiveSince(recentWindow),
		"server_uptime":   now.Sub(srv.startTime).Truncate(time.Second).String(),
		"ai_provider":     ProviderName,
		"features":        []string{"AI回复", "对话记忆", "会话清理", "系统监控"},
	})
}

// debugInfo reports a compact diagnostic document
// @Summary Debug Info
// @Description Compact diagnostic snapshot
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "Debug info"
// @Router /api/debug [get]
func (srv *HTTPServer) debugInfo(c *gin.Context) {
	response.OK(c, gin.H{
		"status":          "healthy",
		"timestamp":       time.Now().Format(time.RFC3339),
		"active_sessions": srv.stats.Size(),
		"ai_provider":     ProviderName,
		"api_configured":  srv.apiConfigured,
	})
}
