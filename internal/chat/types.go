package chat

// Source tells which responder produced the reply.
type Source string

const (
	SourceRemote   Source = "remote"
	SourceFallback Source = "fallback"
)

// HandleMessageInput is the input for one chat turn.
type HandleMessageInput struct {
	UserID  string // optional; a short anonymous ID is synthesized when empty
	Message string
}

// ChatResult is the outcome of one chat turn.
type ChatResult struct {
	Success  bool
	Response string
	Source   Source // empty when Success is false
}
