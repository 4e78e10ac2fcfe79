package httpserver

import (
	"context"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"antique-assistant/internal/model"
)

func (srv *HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()
	srv.registerDomainRoutes()
	srv.registerFrontend()
	return nil
}

func (srv *HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())
	srv.gin.Use(srv.corsMiddleware())

	ctx := context.Background()
	if srv.environment == string(model.EnvironmentProduction) {
		srv.l.Infof(ctx, "CORS mode: production")
	} else {
		srv.l.Infof(ctx, "CORS mode: %s", srv.environment)
	}
}

// corsMiddleware mirrors the permissive dev setup the frontend expects.
func (srv *HTTPServer) corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/api/health", srv.healthCheck)
	srv.gin.GET("/api/test", srv.testCheck)
	srv.gin.GET("/api/ai-status", srv.aiStatus)
	srv.gin.GET("/api/system/health", srv.systemHealth)
	srv.gin.GET("/api/debug", srv.debugInfo)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes.
func (srv *HTTPServer) registerDomainRoutes() {
	srv.gin.POST("/api/chat", srv.chatHandler.Chat)
	srv.l.Infof(context.Background(), "Chat route registered at POST /api/chat")
}

// registerFrontend serves the static frontend for every unmatched path so
// API routes always win.
func (srv *HTTPServer) registerFrontend() {
	if srv.frontendDir == "" {
		return
	}

	srv.gin.NoRoute(func(c *gin.Context) {
		path := filepath.Join(srv.frontendDir, filepath.Clean("/"+c.Request.URL.Path))
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			c.File(path)
			return
		}
		c.File(filepath.Join(srv.frontendDir, "index.html"))
	})
	srv.l.Infof(context.Background(), "Serving frontend from %s", srv.frontendDir)
}
