package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"antique-assistant/internal/chat"
	"antique-assistant/internal/fallback"
	"antique-assistant/internal/model"
	"antique-assistant/pkg/baichuan"
)

// HandleMessage processes one chat turn: remote model first, rule-based
// fallback when the provider fails for any reason.
func (uc *implUseCase) HandleMessage(ctx context.Context, input chat.HandleMessageInput) (chat.ChatResult, error) {
	if strings.TrimSpace(input.Message) == "" {
		return chat.ChatResult{}, chat.ErrEmptyMessage
	}

	// Anonymous callers get a fresh ID each request and therefore no memory
	// across turns; the session still goes through the store so the reaper
	// lifecycle is uniform.
	userID := input.UserID
	if userID == "" {
		userID = uuid.NewString()[:8]
	}

	sess := uc.store.GetOrCreate(userID)
	uc.l.Infof(ctx, "User %s sent a message, %d turn(s) of history", userID, len(sess.History))

	reply, err := uc.llm.Complete(ctx, input.Message, toProviderMessages(sess.History))
	if err == nil {
		uc.store.AppendExchange(userID, input.Message, reply)
		return chat.ChatResult{Success: true, Response: reply, Source: chat.SourceRemote}, nil
	}

	switch {
	case errors.Is(err, baichuan.ErrAPIKeyMissing):
		uc.l.Debug(ctx, "Remote provider unconfigured, using rule-based reply")
	case errors.Is(err, baichuan.ErrUnparseableResponse):
		// The error carries the truncated raw dump; it stays in the logs and
		// is never surfaced as the chat reply.
		uc.l.Warnf(ctx, "Remote reply unusable: %v", err)
	default:
		uc.l.Warnf(ctx, "Remote provider unavailable: %v", err)
	}

	reply = fallback.Respond(strings.ToLower(input.Message), input.Message)
	uc.store.AppendExchange(userID, input.Message, reply)
	return chat.ChatResult{Success: true, Response: reply, Source: chat.SourceFallback}, nil
}

func toProviderMessages(history []model.ConversationTurn) []baichuan.Message {
	if len(history) == 0 {
		return nil
	}
	out := make([]baichuan.Message, len(history))
	for i, turn := range history {
		out[i] = baichuan.Message{Role: string(turn.Role), Content: turn.Content}
	}
	return out
}
