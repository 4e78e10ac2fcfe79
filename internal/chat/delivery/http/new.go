package http

import (
	"github.com/gin-gonic/gin"

	"antique-assistant/internal/chat"
	pkgLog "antique-assistant/pkg/log"
)

// Handler is the interface for the chat HTTP delivery handler.
type Handler interface {
	Chat(c *gin.Context)
}

// New creates a new chat delivery handler.
func New(l pkgLog.Logger, uc chat.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}

type handler struct {
	l  pkgLog.Logger
	uc chat.UseCase
}
