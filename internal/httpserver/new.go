package httpserver

import (
	"context"
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	chatHTTP "antique-assistant/internal/chat/delivery/http"
	pkgLog "antique-assistant/pkg/log"
)

// SessionStats is the read-only statistics surface of the session store.
type SessionStats interface {
	Size() int
	CountActiveSince(window time.Duration) int
}

// ProviderStatus is the health surface of the remote completion client.
type ProviderStatus interface {
	Status(ctx context.Context) error
	Model() string
}

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	gin         *gin.Engine
	l           pkgLog.Logger
	port        int
	mode        string
	environment string

	chatHandler   chatHTTP.Handler
	stats         SessionStats
	provider      ProviderStatus
	apiConfigured bool
	frontendDir   string
	startTime     time.Time
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      pkgLog.Logger
	Port        int
	Mode        string
	Environment string

	ChatHandler   chatHTTP.Handler
	Stats         SessionStats
	Provider      ProviderStatus
	APIConfigured bool
	FrontendDir   string
}

// New creates a new HTTPServer instance.
func New(logger pkgLog.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:             logger,
		gin:           gin.New(),
		port:          cfg.Port,
		mode:          cfg.Mode,
		environment:   cfg.Environment,
		chatHandler:   cfg.ChatHandler,
		stats:         cfg.Stats,
		provider:      cfg.Provider,
		apiConfigured: cfg.APIConfigured,
		frontendDir:   cfg.FrontendDir,
		startTime:     time.Now(),
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.chatHandler == nil {
		return errors.New("chat handler is required")
	}
	if srv.stats == nil {
		return errors.New("session stats are required")
	}
	if srv.provider == nil {
		return errors.New("provider status is required")
	}
	return nil
}
