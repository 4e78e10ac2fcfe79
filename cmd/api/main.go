package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"antique-assistant/config"
	_ "antique-assistant/docs" // Swagger docs
	chatDelivery "antique-assistant/internal/chat/delivery/http"
	"antique-assistant/internal/chat/usecase"
	"antique-assistant/internal/httpserver"
	"antique-assistant/internal/session"
	"antique-assistant/pkg/baichuan"
	"antique-assistant/pkg/log"
)

// @title       Antique Assistant API
// @description Conversational relay for the 文鉴通 antique-appraisal assistant, backed by the Baichuan API with a rule-based fallback.
// @version     1
// @host        localhost:8000
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Antique Assistant...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	if cfg.Baichuan.APIKey != "" {
		logger.Infof(ctx, "Remote provider: %s configured", cfg.Baichuan.Model)
	} else {
		logger.Warn(ctx, "BAICHUAN_API_KEY not set, running with rule-based replies only")
	}

	// 3. Remote completion client
	llm := baichuan.New(baichuan.Config{
		APIKey:      cfg.Baichuan.APIKey,
		Model:       cfg.Baichuan.Model,
		BaseURL:     cfg.Baichuan.BaseURL,
		MaxTokens:   cfg.Baichuan.MaxTokens,
		Temperature: cfg.Baichuan.Temperature,
		HTTPClient:  &http.Client{Timeout: cfg.Baichuan.Timeout},
	})

	// 4. Session store + reaper
	store := session.New(cfg.Session.MaxHistoryTurns)
	reaper := session.NewReaper(logger, store, cfg.Session.ReaperInterval, cfg.Session.IdleTimeout)
	if err := reaper.Start(); err != nil {
		logger.Error(ctx, "Failed to start session reaper: ", err)
		return
	}
	defer reaper.Stop()

	// 5. Chat domain
	chatUC := usecase.New(logger, llm, store)
	chatHandler := chatDelivery.New(logger, chatUC)

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:        logger,
		Port:          cfg.HTTPServer.Port,
		Mode:          cfg.HTTPServer.Mode,
		Environment:   cfg.Environment.Name,
		ChatHandler:   chatHandler,
		Stats:         store,
		Provider:      llm,
		APIConfigured: cfg.Baichuan.APIKey != "",
		FrontendDir:   cfg.Frontend.Dir,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
