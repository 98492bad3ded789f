package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
)

var testSchema = &Schema{
	Name: "test-summary",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"summary": map[string]any{"type": "string"},
			"tips": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
		},
		"required":             []string{"summary", "tips"},
		"additionalProperties": false,
	},
}

func TestValidateResponse(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{"valid", `{"summary":"ok","tips":["a"]}`, false},
		{"missing field", `{"summary":"ok"}`, true},
		{"wrong type", `{"summary":1,"tips":[]}`, true},
		{"extra field", `{"summary":"ok","tips":[],"x":1}`, true},
		{"not json", `summary: ok`, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateResponse(testSchema, json.RawMessage(tt.raw))
			if (err != nil) != tt.wantErr {
				t.Fatalf("validateResponse() error = %v, wantErr %v", err, tt.wantErr)
			}
			var inv *ErrInvalidResponse
			if err != nil && !errors.As(err, &inv) {
				t.Fatalf("expected ErrInvalidResponse, got %T", err)
			}
		})
	}
}

func TestMockProvider_ChecksSchema(t *testing.T) {
	mock := NewMockProvider(MockReply{Content: json.RawMessage(`{"summary":"x"}`)})
	_, err := mock.Generate(context.Background(), Prompt{Schema: testSchema})
	var inv *ErrInvalidResponse
	if !errors.As(err, &inv) {
		t.Fatalf("expected ErrInvalidResponse, got %v", err)
	}

	_, err = mock.Generate(context.Background(), Prompt{})
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected ErrProviderUnavailable on empty queue, got %v", err)
	}
}
