package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func fastRetry() RetryConfig {
	return RetryConfig{
		MaxAttempts: 3,
		InitialWait: time.Millisecond,
		MaxWait:     5 * time.Millisecond,
		Multiplier:  2,
	}
}

func TestRetry_TransientThenSuccess(t *testing.T) {
	mock := NewMockProvider(
		MockReply{Err: &ErrProviderUnavailable{Err: errors.New("down")}},
		MockReply{Content: json.RawMessage(`"ok"`)},
	)
	c, err := WithRetry(mock, fastRetry()).Generate(context.Background(), Prompt{User: "hi"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(c.Content) != `"ok"` {
		t.Fatalf("content = %s", c.Content)
	}
	if mock.Calls() != 2 {
		t.Fatalf("calls = %d, want 2", mock.Calls())
	}
}

func TestRetry_GivesUpAfterMaxAttempts(t *testing.T) {
	mock := NewMockProvider(
		MockReply{Err: &ErrRateLimit{Err: errors.New("429")}},
		MockReply{Err: &ErrRateLimit{Err: errors.New("429")}},
		MockReply{Err: &ErrRateLimit{Err: errors.New("429")}},
		MockReply{Content: json.RawMessage(`"never"`)},
	)
	_, err := WithRetry(mock, fastRetry()).Generate(context.Background(), Prompt{})
	var rl *ErrRateLimit
	if !errors.As(err, &rl) {
		t.Fatalf("expected ErrRateLimit, got %v", err)
	}
	if mock.Calls() != 3 {
		t.Fatalf("calls = %d, want 3", mock.Calls())
	}
}

func TestRetry_InvalidResponseRetriedOnce(t *testing.T) {
	mock := NewMockProvider(
		MockReply{Err: &ErrInvalidResponse{Err: errors.New("bad")}},
		MockReply{Err: &ErrInvalidResponse{Err: errors.New("bad again")}},
		MockReply{Content: json.RawMessage(`"ok"`)},
	)
	_, err := WithRetry(mock, fastRetry()).Generate(context.Background(), Prompt{})
	var inv *ErrInvalidResponse
	if !errors.As(err, &inv) {
		t.Fatalf("expected ErrInvalidResponse, got %v", err)
	}
	if mock.Calls() != 2 {
		t.Fatalf("calls = %d, want 2", mock.Calls())
	}
}

func TestRetry_ContextCanceledNotRetried(t *testing.T) {
	mock := NewMockProvider(MockReply{Err: context.Canceled})
	_, err := WithRetry(mock, fastRetry()).Generate(context.Background(), Prompt{})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if mock.Calls() != 1 {
		t.Fatalf("calls = %d, want 1", mock.Calls())
	}
}
