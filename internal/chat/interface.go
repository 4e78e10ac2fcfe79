package chat

import "context"

// UseCase defines the business logic interface for the chat domain.
type UseCase interface {
	// HandleMessage resolves the user's session, asks the remote model with
	// the session history, and degrades to the rule-based responder when the
	// provider is unavailable.
	HandleMessage(ctx context.Context, input HandleMessageInput) (ChatResult, error)
}
