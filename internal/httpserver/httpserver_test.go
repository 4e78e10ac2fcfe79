package httpserver

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"antique-assistant/pkg/baichuan"
)

type nopLogger struct{}

func (nopLogger) Debug(ctx context.Context, args ...any)                    {}
func (nopLogger) Debugf(ctx context.Context, template string, args ...any)  {}
func (nopLogger) Info(ctx context.Context, args ...any)                     {}
func (nopLogger) Infof(ctx context.Context, template string, args ...any)   {}
func (nopLogger) Warn(ctx context.Context, args ...any)                     {}
func (nopLogger) Warnf(ctx context.Context, template string, args ...any)   {}
func (nopLogger) Error(ctx context.Context, args ...any)                    {}
func (nopLogger) Errorf(ctx context.Context, template string, args ...any)  {}
func (nopLogger) Fatal(ctx context.Context, args ...any)                    {}
func (nopLogger) Fatalf(ctx context.Context, template string, args ...any)  {}
func (nopLogger) DPanic(ctx context.Context, args ...any)                   {}
func (nopLogger) DPanicf(ctx context.Context, template string, args ...any) {}
func (nopLogger) Panic(ctx context.Context, args ...any)                    {}
func (nopLogger) Panicf(ctx context.Context, template string, args ...any)  {}

type fakeStats struct {
	size   int
	recent int
}

func (f fakeStats) Size() int                            { return f.size }
func (f fakeStats) CountActiveSince(_ time.Duration) int { return f.recent }

type fakeProvider struct {
	err error
}

func (f fakeProvider) Status(_ context.Context) error { return f.err }
func (f fakeProvider) Model() string                  { return "Baichuan3-Turbo" }

type fakeChatHandler struct{}

func (fakeChatHandler) Chat(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func newTestServer(t *testing.T, provider fakeProvider, stats fakeStats) *HTTPServer {
	t.Helper()
	srv, err := New(nopLogger{}, Config{
		Logger:      nopLogger{},
		Port:        8000,
		Mode:        gin.TestMode,
		Environment: "development",
		ChatHandler: fakeChatHandler{},
		Stats:       stats,
		Provider:    provider,
	})
	if err != nil {
		t.Fatalf("unexpected error building server: %v", err)
	}
	if err := srv.mapHandlers(); err != nil {
		t.Fatalf("unexpected error mapping handlers: %v", err)
	}
	return srv
}

func get(srv *HTTPServer, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	srv.gin.ServeHTTP(w, req)
	return w
}

func dataOf(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body struct {
		Data map[string]any `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unexpected error decoding body: %v", err)
	}
	return body.Data
}

func TestHealthEndpoint(t *testing.T) {
	srv := newTestServer(t, fakeProvider{}, fakeStats{})

	w := get(srv, "/api/health")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	data := dataOf(t, w)
	if data["status"] != "OK" || data["service"] != ServiceName {
		t.Errorf("unexpected health document: %v", data)
	}
}

func TestAIStatusStates(t *testing.T) {
	t.Run("unconfigured", func(t *testing.T) {
		srv := newTestServer(t, fakeProvider{err: baichuan.ErrAPIKeyMissing}, fakeStats{})
		data := dataOf(t, get(srv, "/api/ai-status"))
		if data["status"] != "error" || data["message"] != "百练 API 密钥未配置" {
			t.Errorf("unexpected status document: %v", data)
		}
	})

	t.Run("connected", func(t *testing.T) {
		srv := newTestServer(t, fakeProvider{}, fakeStats{})
		data := dataOf(t, get(srv, "/api/ai-status"))
		if data["status"] != "connected" || data["model"] != "Baichuan3-Turbo" {
			t.Errorf("unexpected status document: %v", data)
		}
	})
}

func TestSystemHealthReportsSessionStats(t *testing.T) {
	srv := newTestServer(t, fakeProvider{}, fakeStats{size: 7, recent: 3})

	data := dataOf(t, get(srv, "/api/system/health"))
	if data["active_sessions"] != float64(7) {
		t.Errorf("expected 7 active sessions, got %v", data["active_sessions"])
	}
	if data["recent_sessions"] != float64(3) {
		t.Errorf("expected 3 recent sessions, got %v", data["recent_sessions"])
	}
}

func TestCORSPreflight(t *testing.T) {
	srv := newTestServer(t, fakeProvider{}, fakeStats{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodOptions, "/api/chat", nil)
	srv.gin.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204 for preflight, got %d", w.Code)
	}
	if w.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Errorf("missing CORS allow-origin header")
	}
}

func TestUnknownRouteWithoutFrontend(t *testing.T) {
	srv := newTestServer(t, fakeProvider{}, fakeStats{})

	if w := get(srv, "/definitely-not-here"); w.Code != http.StatusNotFound {
		t.Errorf("expected 404 without a frontend dir, got %d", w.Code)
	}
}
