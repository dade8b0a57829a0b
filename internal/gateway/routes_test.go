package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/ziadkadry99/chunlian/internal/generation"
	"github.com/ziadkadry99/chunlian/internal/llm"
	"github.com/ziadkadry99/chunlian/internal/model"
)

type mockProvider struct {
	content string
	err     error
	calls   int
	last    llm.CompletionRequest
}

func (m *mockProvider) Name() string { return "mock" }

func (m *mockProvider) Complete(ctx context.Context, req llm.CompletionRequest) (*llm.CompletionResponse, error) {
	m.calls++
	m.last = req
	if m.err != nil {
		return nil, m.err
	}
	return &llm.CompletionResponse{Content: m.content}, nil
}

func setupRouter(t *testing.T, provider llm.Provider) chi.Router {
	t.Helper()
	r := chi.NewRouter()
	RegisterRoutes(r, generation.New(provider, "deepseek-chat"))
	return r
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal error body %q: %v", w.Body.String(), err)
	}
	return body["error"]
}

func TestNotConfigured(t *testing.T) {
	r := setupRouter(t, nil)

	for _, path := range []string{"/api/couplet", "/api/fortune"} {
		t.Run(path, func(t *testing.T) {
			req := httptest.NewRequest("POST", path, strings.NewReader(`{"theme":"马年"}`))
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != http.StatusInternalServerError {
				t.Fatalf("expected 500, got %d", w.Code)
			}
			if got := decodeError(t, w); got != MsgNotConfigured {
				t.Errorf("expected %q, got %q", MsgNotConfigured, got)
			}
		})
	}
}

func TestCoupletSuccess(t *testing.T) {
	mock := &mockProvider{content: "```json\n{\"upper\":\"龙马精神迎新岁\",\"lower\":\"春风得意报佳音\",\"horizontal\":\"万象更新\",\"explanation\":\"吉祥\"}\n```"}
	r := setupRouter(t, mock)

	req := httptest.NewRequest("POST", "/api/couplet", strings.NewReader(`{"theme":"马年","style":"modern"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("unexpected content type %q", ct)
	}

	var result model.CoupletResult
	if err := json.Unmarshal(w.Body.Bytes(), &result); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if result.Horizontal != "万象更新" {
		t.Errorf("unexpected horizontal %q", result.Horizontal)
	}
	if !strings.Contains(mock.last.Messages[0].Content, "modern") {
		t.Error("expected style in prompt")
	}
}

func TestCoupletMalformedBodyTreatedAsEmpty(t *testing.T) {
	mock := &mockProvider{content: `{"upper":"a","lower":"b","horizontal":"c"}`}
	r := setupRouter(t, mock)

	req := httptest.NewRequest("POST", "/api/couplet", strings.NewReader(`not json`))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if mock.calls != 1 {
		t.Errorf("expected upstream to be called once, got %d", mock.calls)
	}
}

func TestCoupletMalformedReply(t *testing.T) {
	r := setupRouter(t, &mockProvider{content: "对不起，我无法完成"})

	req := httptest.NewRequest("POST", "/api/couplet", strings.NewReader(`{"theme":"x"}`))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	if got := decodeError(t, w); got != MsgCoupletFailed {
		t.Errorf("expected %q, got %q", MsgCoupletFailed, got)
	}
}

func TestFortuneSuccess(t *testing.T) {
	mock := &mockProvider{content: `{"id":"f1","title":"上上签","content":"马到功成","blessing":"诸事顺遂","type":"career","upper_trigram":"乾","lower_trigram":"震"}`}
	r := setupRouter(t, mock)

	req := httptest.NewRequest("POST", "/api/fortune", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var card model.FortuneCard
	if err := json.Unmarshal(w.Body.Bytes(), &card); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if card.ID != "f1" || card.Type != model.FortuneCareer {
		t.Errorf("unexpected card %+v", card)
	}
}

func TestFortuneUpstreamFailure(t *testing.T) {
	r := setupRouter(t, &mockProvider{err: errors.New("timeout")})

	req := httptest.NewRequest("POST", "/api/fortune", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	if got := decodeError(t, w); got != MsgFortuneFailed {
		t.Errorf("expected %q, got %q", MsgFortuneFailed, got)
	}
	if strings.Contains(w.Body.String(), "timeout") {
		t.Error("upstream cause leaked to client")
	}
}
