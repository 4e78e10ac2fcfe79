package baichuan

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// Complete sends the system persona, the conversation history and the new
// user message to the chat-completions endpoint and returns the reply text.
func (b *baichuanImpl) Complete(ctx context.Context, message string, history []Message) (string, error) {
	if b.apiKey == "" {
		return "", ErrAPIKeyMissing
	}

	messages := make([]Message, 0, len(history)+2)
	messages = append(messages, Message{Role: "system", Content: systemPrompt})
	messages = append(messages, history...)
	messages = append(messages, Message{Role: "user", Content: message})

	req := chatRequest{
		Model:       b.model,
		Messages:    messages,
		MaxTokens:   b.maxTokens,
		Temperature: b.temperature,
		Stream:      false,
	}

	raw, err := b.callAPI(ctx, req)
	if err != nil {
		return "", err
	}

	return ExtractContent(raw)
}

// Status probes the API with a short test message and a tight timeout.
func (b *baichuanImpl) Status(ctx context.Context) error {
	if b.apiKey == "" {
		return ErrAPIKeyMissing
	}

	ctx, cancel := context.WithTimeout(ctx, statusProbeTimeout)
	defer cancel()

	req := chatRequest{
		Model:       b.model,
		Messages:    []Message{{Role: "user", Content: statusProbeMessage}},
		MaxTokens:   statusProbeMaxTokens,
		Temperature: b.temperature,
	}

	_, err := b.callAPI(ctx, req)
	return err
}

// Model returns the model being used
func (b *baichuanImpl) Model() string {
	return b.model
}

// callAPI posts the request and returns the raw response body on 200.
func (b *baichuanImpl) callAPI(ctx context.Context, req chatRequest) ([]byte, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("baichuan: failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		b.baseURL+"/chat/completions", bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("baichuan: failed to create request: %w", err)
	}

	httpReq.Header.Set("Authorization", "Bearer "+b.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := b.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("baichuan: API call failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("baichuan: failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("baichuan: API error %d: %s", resp.StatusCode, truncate(raw, rawDumpLimit))
	}

	return raw, nil
}

func truncate(raw []byte, limit int) string {
	if len(raw) <= limit {
		return string(raw)
	}
	return string(raw[:limit])
}
