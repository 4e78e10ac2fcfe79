package usecase

import (
	"antique-assistant/internal/chat"
	"antique-assistant/internal/session"
	"antique-assistant/pkg/baichuan"
	pkgLog "antique-assistant/pkg/log"
)

type implUseCase struct {
	l     pkgLog.Logger
	llm   baichuan.IBaichuan
	store *session.Store
}

// New creates a new chat UseCase instance.
func New(l pkgLog.Logger, llm baichuan.IBaichuan, store *session.Store) chat.UseCase {
	return &implUseCase{
		l:     l,
		llm:   llm,
		store: store,
	}
}
