package session

import "time"

const (
	// DefaultMaxTurns bounds history to 3 user/assistant pairs.
	DefaultMaxTurns = 6

	// DefaultIdleTimeout is how long a session may sit idle before eviction.
	DefaultIdleTimeout = time.Hour

	// DefaultReaperInterval is how often idle sessions are swept.
	DefaultReaperInterval = 5 * time.Minute
)
