package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func anthropicServer(t *testing.T, status int, body any) *AnthropicProvider {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		json.NewEncoder(w).Encode(body)
	}))
	t.Cleanup(srv.Close)
	p, err := NewAnthropicProvider(ProviderConfig{APIKey: "test-key", Model: "claude-haiku", BaseURL: srv.URL})
	if err != nil {
		t.Fatalf("new provider: %v", err)
	}
	return p
}

func TestAnthropicProvider_HappyPath(t *testing.T) {
	p := anthropicServer(t, http.StatusOK, map[string]any{
		"id":   "msg_test",
		"type": "message",
		"role": "assistant",
		"content": []map[string]any{
			{"type": "text", "text": `{"summary":"ok","tips":[]}`},
		},
		"model":       "claude-haiku-4-5-20251001",
		"stop_reason": "end_turn",
		"usage":       map[string]any{"input_tokens": 50, "output_tokens": 30},
	})
	if p.Model() != "claude-haiku-4-5-20251001" {
		t.Fatalf("alias not resolved: %q", p.Model())
	}

	c, err := p.Generate(context.Background(), Prompt{User: "hi", MaxTokens: 256, Schema: testSchema})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Usage.InputTokens != 50 || c.Usage.OutputTokens != 30 {
		t.Fatalf("usage = %+v", c.Usage)
	}
	if c.Finish != "end" {
		t.Fatalf("finish = %q", c.Finish)
	}
}

func TestAnthropicProvider_ServerError(t *testing.T) {
	p := anthropicServer(t, http.StatusInternalServerError, map[string]any{
		"type":  "error",
		"error": map[string]any{"type": "api_error", "message": "boom"},
	})
	_, err := p.Generate(context.Background(), Prompt{User: "hi", MaxTokens: 16})
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected ErrProviderUnavailable, got %T: %v", err, err)
	}
}
