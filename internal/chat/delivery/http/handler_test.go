package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"antique-assistant/internal/chat"
	chatHTTP "antique-assistant/internal/chat/delivery/http"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, args ...any)  {}

type mockUseCase struct {
	result chat.ChatResult
	err    error
	got    chat.HandleMessageInput
}

func (m *mockUseCase) HandleMessage(ctx context.Context, input chat.HandleMessageInput) (chat.ChatResult, error) {
	m.got = input
	return m.result, m.err
}

func doChat(t *testing.T, uc chat.UseCase, body string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	chatHTTP.New(&mockLogger{}, uc).Chat(c)
	return w
}

func TestChatSuccess(t *testing.T) {
	uc := &mockUseCase{result: chat.ChatResult{Success: true, Response: "测试成功", Source: chat.SourceRemote}}

	w := doChat(t, uc, `{"message":"ping","user_id":"u1"}`)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body struct {
		Success  bool   `json:"success"`
		Response string `json:"response"`
		Source   string `json:"source"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unexpected error decoding body: %v", err)
	}
	if !body.Success || body.Response != "测试成功" || body.Source != "remote" {
		t.Errorf("unexpected body: %+v", body)
	}
	if uc.got.UserID != "u1" || uc.got.Message != "ping" {
		t.Errorf("usecase received wrong input: %+v", uc.got)
	}
}

func TestChatMissingMessage(t *testing.T) {
	uc := &mockUseCase{}

	w := doChat(t, uc, `{"user_id":"u1"}`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing message, got %d", w.Code)
	}
}

func TestChatInternalFailureBecomesApology(t *testing.T) {
	uc := &mockUseCase{err: errors.New("session store exploded")}

	w := doChat(t, uc, `{"message":"你好"}`)

	if w.Code != http.StatusOK {
		t.Fatalf("internal failures must not surface as transport errors, got %d", w.Code)
	}
	var body struct {
		Success  bool   `json:"success"`
		Response string `json:"response"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unexpected error decoding body: %v", err)
	}
	if body.Success {
		t.Error("expected success=false")
	}
	if body.Response != chat.ApologyReply {
		t.Errorf("expected the generic apology, got %q", body.Response)
	}
}

func TestChatEmptyMessageIsClientError(t *testing.T) {
	uc := &mockUseCase{err: chat.ErrEmptyMessage}

	w := doChat(t, uc, `{"message":"   "}`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for blank message, got %d", w.Code)
	}
}
