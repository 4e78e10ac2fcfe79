package baichuan

import "time"

const (
	// DefaultModel is the default Baichuan model
	DefaultModel = "Baichuan3-Turbo"

	// DefaultBaseURL is the default Baichuan API endpoint
	DefaultBaseURL = "https://api.baichuan-ai.com/v1"

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 30 * time.Second

	// DefaultMaxTokens bounds the completion length
	DefaultMaxTokens = 1500

	// DefaultTemperature is the default sampling temperature
	DefaultTemperature = 0.7

	// statusProbeMessage is sent by Status to verify the API is reachable
	statusProbeMessage = "你好，请简单回复'测试成功'"

	statusProbeTimeout   = 10 * time.Second
	statusProbeMaxTokens = 50

	// rawDumpLimit caps the diagnostic dump of unrecognized responses
	rawDumpLimit = 300
)
