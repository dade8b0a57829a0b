package generation

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/ziadkadry99/chunlian/internal/llm"
	"github.com/ziadkadry99/chunlian/internal/model"
)

type mockProvider struct {
	mu      sync.Mutex
	calls   []llm.CompletionRequest
	content string
	err     error
}

func (m *mockProvider) Name() string { return "mock" }

func (m *mockProvider) Complete(ctx context.Context, req llm.CompletionRequest) (*llm.CompletionResponse, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, req)
	if m.err != nil {
		return nil, m.err
	}
	return &llm.CompletionResponse{Content: m.content, Model: req.Model, FinishReason: "stop"}, nil
}

const coupletJSON = `{"upper":"春风得意马蹄疾","lower":"紫气东来福运长","horizontal":"马到成功","explanation":"寓意新年顺遂"}`

func TestStripFences(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", `{"a":1}`, `{"a":1}`},
		{"fenced", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"fenced no newline", "```json{\"a\":1}```", `{"a":1}`},
		{"whitespace", "  \n{\"a\":1}\n  ", `{"a":1}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripFences(tt.in); got != tt.want {
				t.Errorf("StripFences(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestCoupletFencedAndPlainAgree(t *testing.T) {
	plain := &mockProvider{content: coupletJSON}
	fenced := &mockProvider{content: "```json\n" + coupletJSON + "\n```"}

	a, err := New(plain, "deepseek-chat").Couplet(context.Background(), model.CoupletRequest{Theme: "马年"})
	if err != nil {
		t.Fatalf("plain: %v", err)
	}
	b, err := New(fenced, "deepseek-chat").Couplet(context.Background(), model.CoupletRequest{Theme: "马年"})
	if err != nil {
		t.Fatalf("fenced: %v", err)
	}
	if *a != *b {
		t.Errorf("fenced and plain replies differ: %+v vs %+v", a, b)
	}
	if a.Horizontal != "马到成功" {
		t.Errorf("unexpected horizontal %q", a.Horizontal)
	}
}

func TestCoupletPromptCarriesThemeAndStyle(t *testing.T) {
	mock := &mockProvider{content: coupletJSON}
	g := New(mock, "deepseek-chat")

	if _, err := g.Couplet(context.Background(), model.CoupletRequest{Theme: "事业有成", Style: model.StyleHumorous}); err != nil {
		t.Fatalf("Couplet: %v", err)
	}
	if len(mock.calls) != 1 {
		t.Fatalf("expected 1 call, got %d", len(mock.calls))
	}
	req := mock.calls[0]
	if req.Model != "deepseek-chat" {
		t.Errorf("expected model deepseek-chat, got %q", req.Model)
	}
	if len(req.Messages) != 1 || req.Messages[0].Role != llm.RoleUser {
		t.Fatalf("expected a single user message, got %+v", req.Messages)
	}
	prompt := req.Messages[0].Content
	if !strings.Contains(prompt, "事业有成") || !strings.Contains(prompt, "humorous") {
		t.Errorf("prompt missing theme or style: %s", prompt)
	}
}

func TestCoupletPromptDefaultsStyle(t *testing.T) {
	if p := CoupletPrompt("平安", ""); !strings.Contains(p, "traditional") {
		t.Errorf("expected traditional style in prompt: %s", p)
	}
}

func TestNotConfigured(t *testing.T) {
	g := New(nil, "deepseek-chat")
	if g.Configured() {
		t.Error("expected Configured() false for nil provider")
	}
	if _, err := g.Couplet(context.Background(), model.CoupletRequest{Theme: "x"}); !errors.Is(err, ErrNotConfigured) {
		t.Errorf("Couplet: expected ErrNotConfigured, got %v", err)
	}
	if _, err := g.Fortune(context.Background()); !errors.Is(err, ErrNotConfigured) {
		t.Errorf("Fortune: expected ErrNotConfigured, got %v", err)
	}
}

func TestUpstreamError(t *testing.T) {
	g := New(&mockProvider{err: errors.New("connection refused")}, "m")
	if _, err := g.Fortune(context.Background()); !errors.Is(err, ErrUpstream) {
		t.Errorf("expected ErrUpstream, got %v", err)
	}
}

func TestParseCoupletMalformed(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"not json", "春风得意"},
		{"missing lower", `{"upper":"a","horizontal":"c"}`},
		{"wrong type", `{"upper":1,"lower":"b","horizontal":"c"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseCouplet(tt.content); !errors.Is(err, ErrMalformedResponse) {
				t.Errorf("expected ErrMalformedResponse, got %v", err)
			}
		})
	}
}

func TestParseCoupletAllowsEmptyExplanation(t *testing.T) {
	c, err := ParseCouplet(`{"upper":"a","lower":"b","horizontal":"c"}`)
	if err != nil {
		t.Fatalf("ParseCouplet: %v", err)
	}
	if c.Explanation != "" {
		t.Errorf("expected empty explanation, got %q", c.Explanation)
	}
}

func TestFortune(t *testing.T) {
	mock := &mockProvider{content: "```json\n" + `{"id":"abc","title":"上上签","content":"一马当先","blessing":"万事顺遂","type":"wealth","upper_trigram":"离","lower_trigram":"坎"}` + "\n```"}
	f, err := New(mock, "m").Fortune(context.Background())
	if err != nil {
		t.Fatalf("Fortune: %v", err)
	}
	if f.ID != "abc" || f.Type != model.FortuneWealth {
		t.Errorf("unexpected card: %+v", f)
	}
	if f.UpperTrigram != model.TrigramLi || f.LowerTrigram != model.TrigramKan {
		t.Errorf("unexpected trigrams %q/%q", f.UpperTrigram, f.LowerTrigram)
	}
}

func TestParseFortuneFillsID(t *testing.T) {
	f, err := ParseFortune(`{"title":"大吉","content":"c","blessing":"b","type":"love"}`)
	if err != nil {
		t.Fatalf("ParseFortune: %v", err)
	}
	if f.ID == "" {
		t.Error("expected generated id")
	}
	if f.UpperTrigram != "" {
		t.Errorf("expected empty trigram passthrough, got %q", f.UpperTrigram)
	}
}

func TestParseFortuneKeepsUnknownTrigram(t *testing.T) {
	f, err := ParseFortune(`{"title":"大吉","content":"c","blessing":"b","type":"health","upper_trigram":"火"}`)
	if err != nil {
		t.Fatalf("ParseFortune: %v", err)
	}
	if f.UpperTrigram != "火" {
		t.Errorf("expected trigram passthrough, got %q", f.UpperTrigram)
	}
}

func TestParseFortuneRejectsUnknownType(t *testing.T) {
	_, err := ParseFortune(`{"title":"大吉","content":"c","blessing":"b","type":"luck"}`)
	if !errors.Is(err, ErrMalformedResponse) {
		t.Errorf("expected ErrMalformedResponse, got %v", err)
	}
}

func TestFortunePromptIsFixed(t *testing.T) {
	mock := &mockProvider{content: `{"title":"t","content":"c","blessing":"b","type":"career"}`}
	g := New(mock, "m")
	for i := 0; i < 2; i++ {
		if _, err := g.Fortune(context.Background()); err != nil {
			t.Fatalf("Fortune: %v", err)
		}
	}
	if mock.calls[0].Messages[0].Content != mock.calls[1].Messages[0].Content {
		t.Error("expected identical fortune prompts")
	}
}
