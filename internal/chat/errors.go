package chat

import "errors"

// ErrEmptyMessage is returned when the inbound message is blank.
var ErrEmptyMessage = errors.New("message must not be empty")

// ApologyReply is the caller-facing reply for unexpected internal failures.
const ApologyReply = "抱歉，服务暂时不可用，请稍后重试"
